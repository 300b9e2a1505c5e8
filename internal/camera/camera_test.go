package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d of %v", i, got)
	}
}

func TestInitialState(t *testing.T) {
	c := New(DefaultOptions())
	assert.Equal(t, Captured, c.Mode())
	assert.Equal(t, mgl32.Vec3{}, c.Position)
	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Right())
}

func TestFirstPointerSampleIsAbsorbed(t *testing.T) {
	c := New(DefaultOptions())
	c.Update(Input{Pointer: mgl32.Vec2{640, 360}}, 0.016)
	assert.Equal(t, float32(-90), c.Yaw)
	assert.Equal(t, float32(0), c.Pitch)

	c.Update(Input{Pointer: mgl32.Vec2{650, 350}}, 0.016)
	assert.InDelta(t, -89, c.Yaw, 1e-5)
	assert.InDelta(t, 1, c.Pitch, 1e-5)
}

func TestPitchClampIsIdempotent(t *testing.T) {
	c := New(DefaultOptions())
	c.Update(Input{Pointer: mgl32.Vec2{0, 0}}, 0)
	// 10000 px up is 1000 degrees at sensitivity 0.1.
	c.Update(Input{Pointer: mgl32.Vec2{0, -10000}}, 0)
	assert.Equal(t, float32(MaxPitch), c.Pitch)
	c.Update(Input{Pointer: mgl32.Vec2{0, -20000}}, 0)
	assert.Equal(t, float32(MaxPitch), c.Pitch)

	c.Update(Input{Pointer: mgl32.Vec2{0, 40000}}, 0)
	assert.Equal(t, float32(-MaxPitch), c.Pitch)

	c.Pitch = 300
	c.Update(Input{Pointer: mgl32.Vec2{0, 40000}}, 0)
	assert.Equal(t, float32(MaxPitch), c.Pitch)
}

func TestForwardDisplacementIsSpeedTimesTime(t *testing.T) {
	opts := DefaultOptions()
	c := New(opts)
	front := c.Front()
	dts := []float32{0.016, 0.033, 0.1, 0.001, 0.25}
	var total float32
	for _, dt := range dts {
		c.Update(Input{Forward: true}, dt)
		total += dt
	}
	assertVec(t, front.Mul(opts.Speed*total), c.Position)
	assert.InDelta(t, opts.Speed*total, c.Position.Len(), 1e-4)
}

func TestStrafeAndBack(t *testing.T) {
	c := New(DefaultOptions())
	c.Update(Input{Right: true}, 1)
	assertVec(t, mgl32.Vec3{2.5, 0, 0}, c.Position)
	c.Update(Input{Left: true, Back: true}, 1)
	assertVec(t, mgl32.Vec3{0, 0, 2.5}, c.Position)
}

func TestToggleIsEdgeTriggered(t *testing.T) {
	c := New(DefaultOptions())
	assert.True(t, c.Update(Input{Toggle: true}, 0))
	assert.Equal(t, Free, c.Mode())

	// Holding the key does not toggle again.
	for range 10 {
		assert.False(t, c.Update(Input{Toggle: true}, 0))
	}
	assert.Equal(t, Free, c.Mode())

	c.Update(Input{}, 0)
	assert.True(t, c.Update(Input{Toggle: true}, 0))
	assert.Equal(t, Captured, c.Mode())
}

func TestFreeModeFreezesCamera(t *testing.T) {
	c := New(DefaultOptions())
	c.Update(Input{Pointer: mgl32.Vec2{100, 100}}, 0)
	c.Update(Input{Toggle: true, Pointer: mgl32.Vec2{100, 100}}, 0)
	require.Equal(t, Free, c.Mode())

	c.Update(Input{Forward: true, Right: true, Pointer: mgl32.Vec2{900, 700}}, 1)
	assert.Equal(t, mgl32.Vec3{}, c.Position)
	assert.Equal(t, float32(-90), c.Yaw)
	assert.Equal(t, float32(0), c.Pitch)
}

func TestRecaptureResyncsPointer(t *testing.T) {
	c := New(DefaultOptions())
	c.Update(Input{Pointer: mgl32.Vec2{100, 100}}, 0)
	c.Update(Input{Toggle: true, Pointer: mgl32.Vec2{100, 100}}, 0)
	c.Update(Input{Pointer: mgl32.Vec2{900, 700}}, 0)

	// Re-entering Captured far from the old position must not jump.
	c.Update(Input{Toggle: true, Pointer: mgl32.Vec2{900, 700}}, 0)
	require.Equal(t, Captured, c.Mode())
	assert.Equal(t, float32(-90), c.Yaw)
	assert.Equal(t, float32(0), c.Pitch)

	c.Update(Input{Pointer: mgl32.Vec2{910, 700}}, 0)
	assert.InDelta(t, -89, c.Yaw, 1e-5)
}

func TestViewAndProjection(t *testing.T) {
	c := New(DefaultOptions())
	c.Position = mgl32.Vec3{1, 2, 3}
	v := c.View()
	// The eye maps to the view-space origin.
	eye := v.Mul4x1(c.Position.Vec4(1))
	assertVec(t, mgl32.Vec3{}, eye.Vec3())
	// A point ahead lies on -Z in view space.
	ahead := v.Mul4x1(c.Position.Add(c.Front()).Vec4(1))
	assertVec(t, mgl32.Vec3{0, 0, -1}, ahead.Vec3())

	want := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100)
	assert.Equal(t, want, c.Projection(16.0/9.0))
}
