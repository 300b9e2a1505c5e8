// Package app runs the viewer: it owns every subsystem and drives the per-frame loop.
package app

import (
	"errors"
	"fmt"

	"noise-rooms/internal/camera"
	"noise-rooms/internal/commands"
	"noise-rooms/internal/config"
	"noise-rooms/internal/debug"
	"noise-rooms/internal/geometry"
	"noise-rooms/internal/gpu"
	"noise-rooms/internal/logger"
	"noise-rooms/internal/material"
	"noise-rooms/internal/render"
	"noise-rooms/internal/shaders"
	"noise-rooms/internal/terminal"
	"noise-rooms/internal/ui"
)

// State is the application lifecycle state.
type State int

const (
	Uninitialized State = iota
	Running
	ShuttingDown
	Terminated
)

var stateNames = [...]string{"uninitialized", "running", "shutting down", "terminated"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// ErrNotRunning is returned when the loop is driven outside the Running state.
var ErrNotRunning = errors.New("app: not running")

// App is the viewer context. Everything the loop touches hangs off it.
type App struct {
	cfg      config.Config
	cfgPath  string
	platform Platform
	log      *logger.Logger

	Geometry   *geometry.Registry
	Store      *material.Store
	Camera     *camera.Controller
	Dispatcher *render.Dispatcher
	Panel      *ui.Panel
	Console    *terminal.Terminal
	HUD        *debug.Debug
	Commands   *commands.Registry

	watch  Changer
	state  State
	frames int
	draws  int
}

// Changer reports pending shader source edits, e.g. a shaders.Watcher.
type Changer interface {
	Changed() bool
}

// New assembles the subsystems from cfg. Nothing touches the GPU until Init. cfgPath is where the
// console persists preference changes; empty disables persisting.
func New(p Platform, backend gpu.Backend, src *shaders.Loader, log *logger.Logger, cfg config.Config, cfgPath string) (*App, error) {
	engine := ui.New()
	if cfg.UI.Stylesheet != "" {
		if err := engine.LoadCSS(cfg.UI.Stylesheet); err != nil {
			return nil, fmt.Errorf("app: stylesheet: %w", err)
		}
	} else {
		engine.SetStylesheet(ui.DefaultStylesheet())
	}

	reg := geometry.Build(geometry.Options{
		SphereSegmentsX: cfg.Sphere.SegmentsX,
		SphereSegmentsY: cfg.Sphere.SegmentsY,
	})
	store := material.NewStore()
	a := &App{
		cfg:      cfg,
		cfgPath:  cfgPath,
		platform: p,
		log:      log,
		Geometry: reg,
		Store:    store,
		Camera: camera.New(camera.Options{
			Speed:       cfg.Camera.Speed,
			Sensitivity: cfg.Camera.Sensitivity,
			FovY:        cfg.Camera.FovY,
			Near:        cfg.Camera.Near,
			Far:         cfg.Camera.Far,
		}),
		Dispatcher: render.New(backend, reg, store, src, log),
		Panel:      ui.NewPanel(engine, store),
		HUD:        debug.New(),
		Commands:   commands.NewRegistry(),
	}
	a.HUD.SetShowFPS(cfg.Debug.ShowFPS)
	a.HUD.SetShowMemAlloc(cfg.Debug.ShowMemAlloc)
	a.Console = terminal.New(log, a.Commands)
	a.registerCommands()
	return a, nil
}

// WatchShaders makes the loop recompile every variant whenever c reports a change.
func (a *App) WatchShaders(c Changer) { a.watch = c }

// State returns the lifecycle state.
func (a *App) State() State { return a.state }

// Frames returns the number of completed frames.
func (a *App) Frames() int { return a.frames }

// LastDraws returns the draw calls issued by the last frame.
func (a *App) LastDraws() int { return a.draws }

// Init uploads geometry, compiles every variant and checks the uniform contract. A load failure,
// or a contract mismatch when shaders are strict, releases everything and terminates.
func (a *App) Init() error {
	if a.state != Uninitialized {
		return fmt.Errorf("app: init in state %s", a.state)
	}
	if err := a.Dispatcher.Load(); err != nil {
		a.state = Terminated
		return fmt.Errorf("app: %w", err)
	}
	if err := a.Dispatcher.Validate(); err != nil {
		if a.cfg.Shaders.Strict {
			a.Dispatcher.Close()
			a.state = Terminated
			return fmt.Errorf("app: %w", err)
		}
		a.log.Logf("app: continuing with uniform mismatches: %v", err)
	}
	a.platform.SetCursorCaptured(a.Camera.Mode() == camera.Captured)
	a.state = Running
	a.log.Logf("app: running with %d programs", len(a.Dispatcher.Programs()))
	return nil
}

// Run initializes if needed, steps until the platform asks to close, then shuts down.
func (a *App) Run() error {
	if a.state == Uninitialized {
		if err := a.Init(); err != nil {
			return err
		}
	}
	if a.state != Running {
		return ErrNotRunning
	}
	for a.state == Running {
		if err := a.Step(); err != nil {
			return err
		}
	}
	a.Shutdown()
	return nil
}

// Step runs one iteration of the loop: delta time, input, camera, clear, panel, scene, overlay,
// present. A close request moves the app to ShuttingDown without drawing.
func (a *App) Step() error {
	if a.state != Running {
		return ErrNotRunning
	}
	if a.platform.ShouldClose() {
		a.state = ShuttingDown
		return nil
	}
	if a.watch != nil && a.watch.Changed() {
		_ = a.reloadShaders()
	}
	dt := a.platform.FrameTime()
	in := a.platform.Poll()

	a.Console.Update(in.Console)
	a.updateCamera(in, dt)

	a.platform.BeginFrame()
	w, h := a.platform.ScreenSize()
	if a.Camera.Mode() == camera.Free && !a.Console.IsOpen() {
		a.Panel.Update(in.Mouse, float32(h))
	}

	frame := a.frame(w, h)
	a.platform.Begin3D(frame.CameraPos, frame.CameraPos.Add(a.Camera.Front()), a.Camera.Up(), a.Camera.Options().FovY)
	a.draws = a.Dispatcher.RenderFrame(frame)
	a.platform.End3D()

	a.platform.Overlay(a.drawOverlay)
	a.platform.EndFrame()
	a.frames++
	return nil
}

// reloadShaders recompiles every variant, keeping the running set when any fails. Contract
// mismatches in the new set are logged, never fatal.
func (a *App) reloadShaders() error {
	if err := a.Dispatcher.Reload(); err != nil {
		a.log.Log(err.Error())
		return err
	}
	if err := a.Dispatcher.Validate(); err != nil {
		a.log.Logf("app: reloaded shaders have uniform mismatches: %v", err)
	}
	return nil
}

func (a *App) updateCamera(in Input, dt float32) {
	cin := camera.Input{
		Forward: in.Forward,
		Back:    in.Back,
		Left:    in.Left,
		Right:   in.Right,
		Toggle:  in.ToggleHeld,
		Pointer: in.Pointer,
	}
	if a.Console.IsOpen() {
		cin.Forward, cin.Back, cin.Left, cin.Right, cin.Toggle = false, false, false, false, false
	}
	if a.Camera.Update(cin, dt) {
		a.platform.SetCursorCaptured(a.Camera.Mode() == camera.Captured)
		a.log.Logf("camera: %s", a.Camera.Mode())
	}
}

func (a *App) frame(w, h int32) render.Frame {
	aspect := a.cfg.Window.Aspect()
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	return render.Frame{
		View:       a.Camera.View(),
		Projection: a.Camera.Projection(aspect),
		CameraPos:  a.Camera.Position,
	}
}

func (a *App) drawOverlay(w, h int32) {
	a.Panel.Draw(float32(h))
	a.Console.Draw(w, h)
	a.HUD.Draw(w, a.hudInfo())
}

func (a *App) hudInfo() debug.Info {
	room, _ := geometry.RoomAt(a.Camera.Position.X())
	return debug.Info{
		Mode:     a.Camera.Mode().String(),
		Room:     room,
		Position: [3]float32(a.Camera.Position),
	}
}

// Shutdown releases GPU resources and closes the platform. Only the first call has any effect.
func (a *App) Shutdown() {
	if a.state == Terminated {
		return
	}
	a.state = ShuttingDown
	a.Dispatcher.Close()
	a.platform.SetCursorCaptured(false)
	a.platform.Close()
	a.state = Terminated
	a.log.Logf("app: terminated after %d frames", a.frames)
}
