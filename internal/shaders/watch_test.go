package shaders

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noise-rooms/internal/logger"
)

func TestWatchFlagsEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube1.fs")
	require.NoError(t, os.WriteFile(path, []byte("#version 330\n"), 0644))

	w, err := Watch(dir, logger.New(""))
	require.NoError(t, err)
	defer w.Close()
	assert.False(t, w.Changed())

	require.NoError(t, os.WriteFile(path, []byte("#version 330\n// edited\n"), 0644))
	assert.Eventually(t, w.Changed, 2*time.Second, 10*time.Millisecond)
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope"), logger.New(""))
	assert.Error(t, err)
}
