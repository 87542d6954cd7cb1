package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lattice-ca/internal/config"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"layout.txt"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	want := config.Default()
	want.Input = "layout.txt"
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim: cubes\ndims: 3\ngenerations: 2\nchart: a.html\n"), 0o600))

	cfg, _, err := Parse([]string{"-config", path, "-dims", "4", "-birth", "3,6", "-survive", "23", "-print", "seed.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, config.SimCubes, cfg.Sim)
	assert.Equal(t, 4, cfg.Dims)
	assert.Equal(t, 2, cfg.Generations)
	assert.Equal(t, "a.html", cfg.Chart)
	assert.Equal(t, []int{3, 6}, cfg.Birth)
	assert.Equal(t, []int{2, 3}, cfg.Survive)
	assert.True(t, cfg.Print)
	assert.Equal(t, "seed.txt", cfg.Input)
}

func TestParseUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":   {"-bogus"},
		"two inputs":     {"a.txt", "b.txt"},
		"bad birth":      {"-sim", "cubes", "-birth", "x"},
		"bad sim":        {"-sim", "ecology"},
		"bad log format": {"-log-format", "xml"},
		"missing config": {"-config", "/nonexistent/run.yaml"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse(args, &bytes.Buffer{})
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "want ExitError, got %v", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.NotEmpty(t, exitErr.Error())
		})
	}
}

func TestParseExplicitZeroAndFalseOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim: cubes\ngenerations: 2\nprint: true\nbirth: [3]\n"), 0o600))

	cfg, _, err := Parse([]string{"-config", path, "-generations", "0", "-print=false", "-birth", ""}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Zero(t, cfg.Generations)
	assert.False(t, cfg.Print)
	assert.Equal(t, []int{}, cfg.Birth)

	cfg, _, err = Parse([]string{"-config", path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Generations)
	assert.True(t, cfg.Print)
	assert.Equal(t, []int{3}, cfg.Birth)
}
