package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"noise-rooms/internal/geometry"
	"noise-rooms/internal/material"
)

// Variant is one shader program: its vertex and fragment source files and whether it takes the
// lighting uniforms.
type Variant struct {
	Name     string
	Vertex   string
	Fragment string
	Lit      bool
}

// Uniform names shared by every variant.
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
	UniformLightPos   = "lightPos"
	UniformViewPos    = "viewPos"
)

// LightPos is the fixed world-space point light.
var LightPos = mgl32.Vec3{0, 10, 0}

func flat(name string) Variant {
	return Variant{Name: name, Vertex: "flat.vs", Fragment: name + ".fs"}
}

func lit(name string) Variant {
	return Variant{Name: name, Vertex: "lit.vs", Fragment: name + ".fs", Lit: true}
}

// SurfaceVariants shades each room-shell surface. The door overlay reuses the left surface's program.
var SurfaceVariants = [geometry.SurfaceCount]Variant{
	geometry.Front:   flat("room_front"),
	geometry.Back:    flat("room_back"),
	geometry.Left:    flat("room_left"),
	geometry.Right:   flat("room_right"),
	geometry.Ceiling: flat("room_ceiling"),
	geometry.Floor:   flat("room_floor"),
}

// CorridorVariant shades both corridors.
var CorridorVariant = lit("corridor")

// DoorSurface is the shell surface whose program draws the door overlay.
const DoorSurface = geometry.Left

// PrimitiveVariants maps every (primitive, room) pair to its noise variant.
var PrimitiveVariants = map[material.Key]Variant{
	{Primitive: material.Cube, Room: material.Room1}:    lit("cube1"),
	{Primitive: material.Sphere, Room: material.Room1}:  lit("sphere1"),
	{Primitive: material.Pyramid, Room: material.Room1}: lit("pyramid1"),
	{Primitive: material.Cube, Room: material.Room2}:    lit("cube2"),
	{Primitive: material.Sphere, Room: material.Room2}:  lit("sphere2"),
	{Primitive: material.Pyramid, Room: material.Room2}: lit("pyramid2"),
	{Primitive: material.Cube, Room: material.Room3}:    lit("cube3"),
	{Primitive: material.Sphere, Room: material.Room3}:  lit("sphere3"),
	{Primitive: material.Pyramid, Room: material.Room3}: lit("pyramid3"),
}

// Placement is a primitive's fixed world position and uniform scale inside a room.
type Placement struct {
	Key         material.Key
	Position    mgl32.Vec3
	Scale       float32
	Translucent bool // drawn after every opaque surface
}

// Model returns translate(Position) * scale(Scale).
func (p Placement) Model() mgl32.Mat4 {
	return mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
		Mul4(mgl32.Scale3D(p.Scale, p.Scale, p.Scale))
}

func place(prim material.Primitive, room material.Room, x, y, z, scale float32) Placement {
	return Placement{Key: material.Key{Primitive: prim, Room: room}, Position: mgl32.Vec3{x, y, z}, Scale: scale}
}

// Placements lists every primitive instance.
var Placements = []Placement{
	place(material.Cube, material.Room1, -3, -3, 3, 1),
	place(material.Sphere, material.Room1, 0, -3, 0, 1),
	place(material.Pyramid, material.Room1, -3, -3, -3, 1),

	place(material.Cube, material.Room2, 12, -3, 3, 1),
	place(material.Sphere, material.Room2, 15, -3, 0, 1),
	place(material.Pyramid, material.Room2, 18, -3, -3, 1),

	translucent(place(material.Cube, material.Room3, 32, -3, 2.5, 2.5)),
	place(material.Sphere, material.Room3, 32, -3, -2.5, 1.75),
	translucent(place(material.Pyramid, material.Room3, 28, -3, 0, 1.5)),
}

func translucent(p Placement) Placement {
	p.Translucent = true
	return p
}

func primitiveFamily(p material.Primitive) geometry.Family {
	switch p {
	case material.Sphere:
		return geometry.Sphere
	case material.Pyramid:
		return geometry.Pyramid
	}
	return geometry.Cube
}
