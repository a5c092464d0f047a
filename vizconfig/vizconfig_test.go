package vizconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aneeshsunganahalli/PathVisualiser/search"
	"github.com/aneeshsunganahalli/PathVisualiser/vizconfig"
)

// TestLoad_MissingFileYieldsDefaults: absence is not an error.
func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := vizconfig.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, vizconfig.Default(), cfg)
}

// TestLoad_File parses, validates and fills gaps from defaults.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathvis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"rows: 15\ncols: 25\nseed: 12345\nalgorithms: [BFS, IDA*]\n",
	), 0o644))

	cfg, err := vizconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Rows)
	assert.Equal(t, 25, cfg.Cols)
	assert.Equal(t, int64(12345), cfg.Seed)
	assert.Equal(t, vizconfig.DefaultSpeed, cfg.Speed, "missing speed falls back to default")

	lineup, err := cfg.Lineup()
	require.NoError(t, err)
	assert.Equal(t, []search.Algorithm{search.BFS, search.IDAStar}, lineup)
}

// TestLoad_Invalid surfaces malformed files and bad values.
func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows: [not a number"), 0o644))
	_, err := vizconfig.Load(bad)
	assert.Error(t, err)

	tiny := filepath.Join(dir, "tiny.yaml")
	require.NoError(t, os.WriteFile(tiny, []byte("rows: 2\ncols: 2\n"), 0o644))
	_, err = vizconfig.Load(tiny)
	assert.ErrorIs(t, err, vizconfig.ErrBadValue)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("algorithms: [Dijkstra]\n"), 0o644))
	_, err = vizconfig.Load(unknown)
	assert.ErrorIs(t, err, vizconfig.ErrBadAlgorithm)
}

// TestParseAlgorithm round-trips every engine name.
func TestParseAlgorithm(t *testing.T) {
	for a := search.Algorithm(0); a.Valid(); a++ {
		got, err := vizconfig.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := vizconfig.ParseAlgorithm("Dijkstra")
	assert.ErrorIs(t, err, vizconfig.ErrBadAlgorithm)
}
