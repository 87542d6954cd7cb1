package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lattice-ca/internal/cli"
)

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_Cubes(t *testing.T) {
	path := writeInput(t, ".#.\n..#\n###\n")
	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-sim", "cubes", "-log-level", "error", path}))
	assert.Equal(t, "112\n", out.String())

	out.Reset()
	require.NoError(t, run(out, []string{"-sim", "cubes", "-dims", "4", "-log-level", "error", path}))
	assert.Equal(t, "848\n", out.String())
}

func TestRun_Seating(t *testing.T) {
	path := writeInput(t, "L.LL.LL.LL\nLLLLLLL.LL\nL.L.L..L..\nLLLL.LL.LL\nL.LL.LL.LL\nL.LLLLL.LL\n..L.L.....\nLLLLLLLLLL\nL.LLLLLL.L\nL.LLLLL.LL\n")
	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-rule", "los", "-log-level", "error", path}))
	assert.Equal(t, "26\n", out.String())
}

func TestRun_UsageError(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"-sim", "ecology"})
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_RuntimeError(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"-log-level", "error", filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr))
}
