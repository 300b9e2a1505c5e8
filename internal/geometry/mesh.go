package geometry

import "fmt"

// Family identifies one of the fixed mesh kinds the viewer draws.
type Family int

const (
	RoomShell Family = iota
	Corridor
	DoorOverlay
	Cube
	Sphere
	Pyramid
)

var familyNames = [...]string{"room-shell", "corridor", "door-overlay", "cube", "sphere", "pyramid"}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("family(%d)", int(f))
	}
	return familyNames[f]
}

// Layout is the per-vertex attribute layout of a mesh.
type Layout int

const (
	// PositionNormal carries a position and a normal per vertex.
	PositionNormal Layout = iota
	// PositionOnly carries positions only (flat-shaded surfaces).
	PositionOnly
)

// Mesh is immutable vertex and index data. Positions and Normals are packed xyz triples;
// Normals is nil for PositionOnly meshes.
type Mesh struct {
	Family    Family
	Name      string
	Layout    Layout
	Positions []float32
	Normals   []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) [3]float32 {
	return [3]float32{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

// Normal returns the normal of vertex i, or zero for position-only meshes.
func (m *Mesh) Normal(i int) [3]float32 {
	if m.Normals == nil {
		return [3]float32{}
	}
	return [3]float32{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}

// builder accumulates vertices and indices relative to the current vertex base.
type builder struct {
	mesh Mesh
}

func newBuilder(family Family, name string, layout Layout) *builder {
	return &builder{mesh: Mesh{Family: family, Name: name, Layout: layout}}
}

func (b *builder) base() uint16 {
	return uint16(b.mesh.VertexCount())
}

func (b *builder) vertex(p [3]float32) {
	b.mesh.Positions = append(b.mesh.Positions, p[0], p[1], p[2])
}

func (b *builder) vertexNormal(p, n [3]float32) {
	b.vertex(p)
	b.mesh.Normals = append(b.mesh.Normals, n[0], n[1], n[2])
}

// tris appends indices offset by base.
func (b *builder) tris(base uint16, idx ...uint16) {
	for _, i := range idx {
		b.mesh.Indices = append(b.mesh.Indices, base+i)
	}
}

func (b *builder) build() *Mesh {
	m := b.mesh
	return &m
}
