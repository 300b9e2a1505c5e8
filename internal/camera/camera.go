package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode gates whether pointer motion and movement keys drive the camera.
type Mode int

const (
	// Captured maps pointer motion to look direction and movement keys to translation.
	Captured Mode = iota
	// Free releases the pointer for the control panel; the camera is frozen.
	Free
)

func (m Mode) String() string {
	if m == Free {
		return "free"
	}
	return "captured"
}

// MaxPitch bounds pitch in degrees so the look direction never flips through the vertical.
const MaxPitch = 89

// Input is one frame of sampled controls. Toggle is the held state of the capture key; the
// controller detects its press edge itself. Pointer is the absolute cursor position in pixels.
type Input struct {
	Forward, Back, Left, Right bool
	Toggle                     bool
	Pointer                    mgl32.Vec2
}

// Options are the tuning constants of a Controller.
type Options struct {
	Speed       float32 // world units per second
	Sensitivity float32 // degrees per pixel
	FovY        float32 // degrees
	Near, Far   float32
}

// DefaultOptions returns speed 2.5, sensitivity 0.1 and a 45 degree, 0.1..100 perspective.
func DefaultOptions() Options {
	return Options{Speed: 2.5, Sensitivity: 0.1, FovY: 45, Near: 0.1, Far: 100}
}

var worldUp = mgl32.Vec3{0, 1, 0}

// Controller is a first-person camera. The zero value is not usable; call New.
type Controller struct {
	opts Options

	Position   mgl32.Vec3
	Yaw, Pitch float32 // degrees

	mode       Mode
	last       mgl32.Vec2
	firstMouse bool
	togglePrev bool
}

// New returns a controller at the origin looking down -Z (yaw -90) in Captured mode.
// The first pointer sample it sees only seeds the last position.
func New(opts Options) *Controller {
	return &Controller{opts: opts, Yaw: -90, mode: Captured, firstMouse: true}
}

// Mode returns the current input mode.
func (c *Controller) Mode() Mode { return c.mode }

// Options returns the controller's tuning constants.
func (c *Controller) Options() Options { return c.opts }

// Update applies one frame of input. It returns true when the mode changed this frame so the
// caller can capture or release the OS cursor.
func (c *Controller) Update(in Input, dt float32) bool {
	toggled := in.Toggle && !c.togglePrev
	c.togglePrev = in.Toggle
	if toggled {
		if c.mode == Captured {
			c.mode = Free
		} else {
			c.mode = Captured
			c.last = in.Pointer
			c.firstMouse = false
		}
	}

	if c.mode == Captured {
		c.look(in.Pointer)
		c.move(in, dt)
	}
	c.Pitch = clampPitch(c.Pitch)
	return toggled
}

func (c *Controller) look(p mgl32.Vec2) {
	if c.firstMouse {
		c.last = p
		c.firstMouse = false
	}
	dx := (p.X() - c.last.X()) * c.opts.Sensitivity
	dy := (c.last.Y() - p.Y()) * c.opts.Sensitivity
	c.last = p
	c.Yaw += dx
	c.Pitch = clampPitch(c.Pitch + dy)
}

func (c *Controller) move(in Input, dt float32) {
	step := c.opts.Speed * dt
	front := c.Front()
	right := c.Right()
	if in.Forward {
		c.Position = c.Position.Add(front.Mul(step))
	}
	if in.Back {
		c.Position = c.Position.Sub(front.Mul(step))
	}
	if in.Left {
		c.Position = c.Position.Sub(right.Mul(step))
	}
	if in.Right {
		c.Position = c.Position.Add(right.Mul(step))
	}
}

func clampPitch(p float32) float32 {
	return min(max(p, -MaxPitch), MaxPitch)
}

// Front returns the unit look direction derived from yaw and pitch.
func (c *Controller) Front() mgl32.Vec3 {
	yaw, pitch := mgl32.DegToRad(c.Yaw), mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Right returns the unit strafe direction, normalize(front x worldUp).
func (c *Controller) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

// Up returns the camera's up vector.
func (c *Controller) Up() mgl32.Vec3 { return worldUp }

// View returns lookAt(position, position+front, up).
func (c *Controller) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// Projection returns the perspective transform for the given viewport aspect ratio.
func (c *Controller) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.opts.FovY), aspect, c.opts.Near, c.opts.Far)
}

// Teleport moves the camera without touching orientation or mode.
func (c *Controller) Teleport(p mgl32.Vec3) { c.Position = p }
