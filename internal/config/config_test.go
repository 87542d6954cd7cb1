package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lattice-ca/internal/lattice"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	body := `
sim: cubes
input: seed.txt
dims: 4
generations: 6
birth: [3]
survive: [2, 3]
chart: out.html
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	want := File{
		Sim:         SimCubes,
		Input:       "seed.txt",
		Dims:        4,
		Generations: 6,
		Birth:       []int{3},
		Survive:     []int{2, 3},
		Chart:       "out.html",
		LogLevel:    "debug",
		LogFormat:   "text",
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, f.Validate())
}

func TestParseEmptyIsDefault(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
	assert.NoError(t, f.Validate())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("sim: seating\nwraparound: true\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMerge(t *testing.T) {
	base := Default()
	base.Chart = "file.html"
	base.Print = true
	sim, dims, show := SimCubes, 4, false
	got := base.Merge(Overrides{Sim: &sim, Dims: &dims, Survive: []int{}, Print: &show})

	assert.Equal(t, SimCubes, got.Sim)
	assert.Equal(t, 4, got.Dims)
	assert.Equal(t, "file.html", got.Chart)
	assert.Equal(t, []int{}, got.Survive)
	assert.Nil(t, got.Birth)
	assert.False(t, got.Print)
	assert.Equal(t, "info", got.LogLevel)
}

func TestMergeAppliesExplicitZero(t *testing.T) {
	zero := 0
	got := Default().Merge(Overrides{Generations: &zero, MaxGenerations: &zero})
	assert.Zero(t, got.Generations)
	assert.Zero(t, got.MaxGenerations)

	assert.Equal(t, Default(), Default().Merge(Overrides{}))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*File)
		msg  string
	}{
		{"unknown sim", func(f *File) { f.Sim = "ecology" }, "unknown sim"},
		{"seating rule", func(f *File) { f.Rule = "diagonal" }, "rule"},
		{"negative max", func(f *File) { f.MaxGenerations = -1 }, "max_generations"},
		{"dims", func(f *File) { f.Sim = SimCubes; f.Dims = 7 }, "dims"},
		{"generations", func(f *File) { f.Sim = SimCubes; f.Generations = -2 }, "generations"},
		{"cubes rule", func(f *File) { f.Sim = SimCubes; f.Rule = "S23" }, "rule"},
		{"negative birth", func(f *File) { f.Sim = SimCubes; f.Birth = []int{-1} }, "rule"},
		{"log level", func(f *File) { f.LogLevel = "trace" }, "log_level"},
		{"log format", func(f *File) { f.LogFormat = "xml" }, "log_format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Default()
			tc.edit(&f)
			err := f.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLatticeRule(t *testing.T) {
	f := Default()
	r, err := f.LatticeRule()
	require.NoError(t, err)
	assert.Equal(t, lattice.Conway(), r)

	f.Rule = "B36/S23"
	r, err = f.LatticeRule()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, r.Birth)

	f.Birth = []int{2}
	r, err = f.LatticeRule()
	require.NoError(t, err)
	assert.Equal(t, []int{2}, r.Birth)
	assert.Nil(t, r.Survive)
}

func TestParseLevelAndFormat(t *testing.T) {
	lvl, err := ParseLevel("Warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("trace")
	assert.ErrorIs(t, err, ErrInvalid)

	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, FormatText, f)
}
