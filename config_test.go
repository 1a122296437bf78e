package towerstack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3.0, cfg.BoxSize)
	assert.Equal(t, 0.5, cfg.BoxHeight)
	assert.Equal(t, 0.15, cfg.Speed)
	assert.Equal(t, 0.1, cfg.PerfectThreshold)
	assert.Equal(t, 20, cfg.FoundationLayers)
	assert.Equal(t, 40, cfg.Physics.Iterations)
}

func TestParseConfigEmptyYieldsDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
speed: 0.2
seed: 99
debug: true
physics:
  iterations: 10
`))
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Speed)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 10, cfg.Physics.Iterations)
	// Untouched fields keep their defaults.
	assert.Equal(t, 3.0, cfg.BoxSize)
	assert.Equal(t, 10.0, cfg.Physics.Gravity)
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseConfig([]byte("box_sise: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "box_sise")
}

func TestParseConfigReportsEveryProblem(t *testing.T) {
	_, err := ParseConfig([]byte("box_size: -1\nmarker_frames: 0\nspeed: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "box_size")
	assert.Contains(t, err.Error(), "marker_frames")
	assert.Contains(t, err.Error(), "speed")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "towerstack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("foundation_layers: 5\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.FoundationLayers)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
