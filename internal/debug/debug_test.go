package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHUD(fps int32) *Debug {
	d := New()
	d.fps = func() int32 { return fps }
	return d
}

func TestCameraLinesAlwaysShown(t *testing.T) {
	d := newHUD(60)
	lines := d.Lines(Info{Mode: "captured", Room: 2})
	assert.Equal(t, []string{"Mode: captured", "Room: 2"}, lines)

	lines = d.Lines(Info{Mode: "free"})
	assert.Equal(t, []string{"Mode: free", "Room: corridor"}, lines)
}

func TestCountersFromToggles(t *testing.T) {
	d := newHUD(58)
	d.SetShowFPS(true)
	d.SetShowMemAlloc(true)

	lines := d.Lines(Info{Mode: "captured", Room: 1})
	require.Len(t, lines, 4)
	assert.Equal(t, "FPS: 58", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Mem: "))
	assert.True(t, strings.HasSuffix(lines[1], " MiB"))
	assert.Equal(t, 2, d.counters())
}

func TestFPSTextRefreshesOnInterval(t *testing.T) {
	fps := int32(60)
	d := New()
	d.fps = func() int32 { return fps }
	d.SetShowFPS(true)

	assert.Equal(t, "FPS: 60", d.Lines(Info{})[0])
	fps = 30
	for range updateInterval - 2 {
		assert.Equal(t, "FPS: 60", d.Lines(Info{})[0])
	}
	// Frame updateInterval refreshes.
	assert.Equal(t, "FPS: 30", d.Lines(Info{})[0])
}
