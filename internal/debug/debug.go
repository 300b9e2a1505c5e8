package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Info is the per-frame camera state shown by the HUD.
type Info struct {
	Mode     string
	Room     int // 0 when the camera is outside every room
	Position [3]float32
}

// Debug draws the top-right HUD: optional FPS and heap counters, then the camera mode and room.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	fps          func() int32
}

// New returns a HUD with the FPS and heap counters hidden.
func New() *Debug {
	return &Debug{fps: rl.GetFPS}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn under FPS.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Lines returns the HUD text for this frame, top to bottom. Call once per frame.
func (d *Debug) Lines(info Info) []string {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	var lines []string
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", d.fps())
		}
		lines = append(lines, d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		lines = append(lines, d.lastMemText)
	}
	lines = append(lines, "Mode: "+info.Mode, RoomLabel(info.Room))
	return lines
}

// RoomLabel names the room for the HUD.
func RoomLabel(room int) string {
	if room == 0 {
		return "Room: corridor"
	}
	return fmt.Sprintf("Room: %d", room)
}

// Draw renders the HUD right-aligned at the top of the screen. Call after the panel and console.
func (d *Debug) Draw(screenW int32, info Info) {
	y := int32(padding)
	for i, text := range d.Lines(info) {
		color := rl.RayWhite
		if i < d.counters() {
			color = rl.Green
		}
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, color)
		y += lineHeight
	}
}

func (d *Debug) counters() int {
	n := 0
	if d.ShowFPS {
		n++
	}
	if d.ShowMemAlloc {
		n++
	}
	return n
}
