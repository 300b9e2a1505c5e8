package app

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"noise-rooms/internal/config"
	"noise-rooms/internal/terminal"
	"noise-rooms/internal/ui"
)

// Background is the clear color (0.2, 0.3, 0.3).
var Background = rl.NewColor(51, 77, 77, 255)

// Raylib is the windowed platform. ESC closes the window; F1 toggles the console.
type Raylib struct {
	win config.Window
}

// NewRaylib returns a platform for win. Call Open before the loop.
func NewRaylib(win config.Window) *Raylib {
	return &Raylib{win: win}
}

// Open creates the window and GL context.
func (r *Raylib) Open() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(r.win.Width, r.win.Height, r.win.Title)
	if !rl.IsWindowReady() {
		return errors.New("platform: window or GL context could not be created")
	}
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(r.win.TargetFPS)
	return nil
}

func (r *Raylib) ShouldClose() bool  { return rl.WindowShouldClose() }
func (r *Raylib) FrameTime() float32 { return rl.GetFrameTime() }

func (r *Raylib) Poll() Input {
	mouse := rl.GetMousePosition()
	in := Input{
		Forward:    rl.IsKeyDown(rl.KeyW),
		Back:       rl.IsKeyDown(rl.KeyS),
		Left:       rl.IsKeyDown(rl.KeyA),
		Right:      rl.IsKeyDown(rl.KeyD),
		ToggleHeld: rl.IsKeyDown(rl.KeyTab),
		Pointer:    mgl32.Vec2{mouse.X, mouse.Y},
		Mouse: ui.Pointer{
			Pos:     mouse,
			Down:    rl.IsMouseButtonDown(rl.MouseButtonLeft),
			Pressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
			Wheel:   rl.GetMouseWheelMove(),
		},
		Console: terminal.Input{
			Toggle:    rl.IsKeyPressed(rl.KeyF1),
			Backspace: rl.IsKeyPressed(rl.KeyBackspace),
			Enter:     rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter),
			Recall:    rl.IsKeyPressed(rl.KeyUp),
		},
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		in.Console.Text = rl.GetClipboardText()
		for rl.GetCharPressed() != 0 {
		}
		return in
	}
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		in.Console.Text += string(rune(c))
	}
	return in
}

func (r *Raylib) SetCursorCaptured(captured bool) {
	if captured {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}

func (r *Raylib) ScreenSize() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

func (r *Raylib) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(Background)
}

// Begin3D enables depth testing for the scene pass. The room shell is seen from inside, so faces
// are drawn from both sides.
func (r *Raylib) Begin3D(eye, target, up mgl32.Vec3, fovY float32) {
	rl.BeginMode3D(rl.Camera3D{
		Position:   rl.NewVector3(eye.X(), eye.Y(), eye.Z()),
		Target:     rl.NewVector3(target.X(), target.Y(), target.Z()),
		Up:         rl.NewVector3(up.X(), up.Y(), up.Z()),
		Fovy:       fovY,
		Projection: rl.CameraPerspective,
	})
	rl.DisableBackfaceCulling()
}

func (r *Raylib) End3D() {
	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

func (r *Raylib) Overlay(draw func(w, h int32)) {
	draw(r.ScreenSize())
}

func (r *Raylib) EndFrame() { rl.EndDrawing() }
func (r *Raylib) Close()    { rl.CloseWindow() }

var _ Platform = (*Raylib)(nil)
