package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"noise-rooms/internal/terminal"
	"noise-rooms/internal/ui"
)

// Input is one frame of polled input.
type Input struct {
	Forward, Back, Left, Right bool // movement keys held
	ToggleHeld                 bool // camera mode key held; edges are detected by the camera

	// Pointer is the absolute pointer position the camera derives look deltas from.
	Pointer mgl32.Vec2
	Mouse   ui.Pointer
	Console terminal.Input
}

// Platform is the window, clock, input and frame boundary the loop runs against.
type Platform interface {
	ShouldClose() bool
	FrameTime() float32
	Poll() Input
	SetCursorCaptured(captured bool)
	ScreenSize() (w, h int32)

	// BeginFrame starts a frame and clears it to the background color.
	BeginFrame()
	Begin3D(eye, target, up mgl32.Vec3, fovY float32)
	End3D()
	// Overlay runs draw for the 2D layer on top of the scene.
	Overlay(draw func(w, h int32))
	EndFrame()
	Close()
}
