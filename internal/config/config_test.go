package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noise-rooms/internal/logger"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  speed: 5\nsphere:\n  segments_x: 16\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(5), cfg.Camera.Speed)
	assert.Equal(t, 16, cfg.Sphere.SegmentsX)
	assert.Equal(t, 32, cfg.Sphere.SegmentsY)
	assert.Equal(t, int32(1280), cfg.Window.Width)
	assert.True(t, cfg.Shaders.Strict)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  near: 10\n  far: 1\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "near/far")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "rooms.yaml")
	cfg := Default()
	cfg.Debug.ShowFPS = true

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.Debug.ShowFPS)
}

func TestValidateSphereLimit(t *testing.T) {
	cfg := Default()
	cfg.Sphere.SegmentsX = 512
	cfg.Sphere.SegmentsY = 512
	assert.ErrorContains(t, cfg.Validate(), "65536")
}

func TestDefaultLogPath(t *testing.T) {
	assert.Equal(t, logger.DefaultPath, Default().LogPath)
}

func TestAspect(t *testing.T) {
	assert.InDelta(t, 1280.0/720.0, Default().Window.Aspect(), 1e-6)
}
