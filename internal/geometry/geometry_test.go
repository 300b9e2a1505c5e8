package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(a, b [3]float32) [3]float32 { return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

func dot(a, b [3]float32) float32 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func requireIndicesInRange(t *testing.T, m *Mesh) {
	t.Helper()
	require.Zero(t, len(m.Indices)%3, "%s: index count not a multiple of 3", m.Name)
	for _, i := range m.Indices {
		require.Less(t, int(i), m.VertexCount(), "%s: index out of range", m.Name)
	}
	if m.Layout == PositionNormal {
		require.Len(t, m.Normals, len(m.Positions), "%s: normals", m.Name)
	} else {
		require.Nil(t, m.Normals, "%s: position-only mesh has normals", m.Name)
	}
}

func TestFixedMeshCounts(t *testing.T) {
	tests := []struct {
		mesh     *Mesh
		family   Family
		layout   Layout
		vertices int
		indices  int
	}{
		{NewCube(), Cube, PositionNormal, 24, 36},
		{NewPyramid(), Pyramid, PositionNormal, 16, 18},
		{NewCorridor(), Corridor, PositionNormal, 32, 48},
		{NewDoorOverlay(), DoorOverlay, PositionOnly, 16, 24},
	}
	for _, tt := range tests {
		t.Run(tt.mesh.Name, func(t *testing.T) {
			assert.Equal(t, tt.family, tt.mesh.Family)
			assert.Equal(t, tt.layout, tt.mesh.Layout)
			assert.Equal(t, tt.vertices, tt.mesh.VertexCount())
			assert.Len(t, tt.mesh.Indices, tt.indices)
			requireIndicesInRange(t, tt.mesh)
		})
	}
}

func TestSphereTopology(t *testing.T) {
	for _, seg := range [][2]int{{32, 32}, {8, 4}, {3, 2}} {
		m := NewSphere(seg[0], seg[1])
		assert.Equal(t, (seg[0]+1)*(seg[1]+1), m.VertexCount())
		assert.Len(t, m.Indices, 6*seg[0]*seg[1])
		requireIndicesInRange(t, m)
	}
}

func TestSphereClampsSegments(t *testing.T) {
	m := NewSphere(0, 0)
	assert.Equal(t, 4*3, m.VertexCount())
}

func TestSphereCapsOversizedSegments(t *testing.T) {
	m := NewSphere(1000, 1000)
	assert.Equal(t, 256*256, m.VertexCount())
	requireIndicesInRange(t, m)

	// Long thin spheres that still fit keep their counts.
	m = NewSphere(1000, 10)
	assert.Equal(t, 1001*11, m.VertexCount())

	r := Build(Options{SphereSegmentsX: 1 << 20, SphereSegmentsY: 1 << 20})
	assert.LessOrEqual(t, r.Sphere.VertexCount(), MaxSphereVertices)
	requireIndicesInRange(t, r.Sphere)
}

func TestSphereNormalsEqualUnitPositions(t *testing.T) {
	m := NewSphere(DefaultSphereSegments, DefaultSphereSegments)
	for i := 0; i < m.VertexCount(); i++ {
		p, n := m.Vertex(i), m.Normal(i)
		assert.Equal(t, p, n)
		assert.InDelta(t, 1, math32.Sqrt(dot(p, p)), 1e-5)
	}
	// Poles.
	assert.InDelta(t, 1, m.Vertex(0)[1], 1e-6)
	assert.InDelta(t, -1, m.Vertex(m.VertexCount()-1)[1], 1e-6)
}

func TestSphereWindingIsOutward(t *testing.T) {
	m := NewSphere(DefaultSphereSegments, DefaultSphereSegments)
	degenerate := 0
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Vertex(int(m.Indices[i])), m.Vertex(int(m.Indices[i+1])), m.Vertex(int(m.Indices[i+2]))
		n := cross(sub(b, a), sub(c, a))
		if dot(n, n) < 1e-12 {
			degenerate++
			continue
		}
		centroid := [3]float32{(a[0] + b[0] + c[0]) / 3, (a[1] + b[1] + c[1]) / 3, (a[2] + b[2] + c[2]) / 3}
		require.Greater(t, dot(n, centroid), float32(0), "triangle %d wound inward", i/3)
	}
	// Only the pole rows collapse to slivers.
	assert.LessOrEqual(t, degenerate, 2*DefaultSphereSegments)
}

func TestPyramidSidesOutwardAndNormalized(t *testing.T) {
	m := NewPyramid()
	for tri := 2; tri < m.TriangleCount(); tri++ {
		i := tri * 3
		a, b, c := m.Vertex(int(m.Indices[i])), m.Vertex(int(m.Indices[i+1])), m.Vertex(int(m.Indices[i+2]))
		n := m.Normal(int(m.Indices[i]))
		assert.InDelta(t, 1, math32.Sqrt(dot(n, n)), 1e-5)
		assert.InDelta(t, 0, dot(n, sub(b, a)), 1e-5)
		assert.InDelta(t, 0, dot(n, sub(c, a)), 1e-5)
		assert.Greater(t, dot(n, a), float32(0))
	}
}

func TestCubeNormalsMatchFaces(t *testing.T) {
	m := NewCube()
	for i := 0; i < m.VertexCount(); i++ {
		p, n := m.Vertex(i), m.Normal(i)
		// Each vertex lies on the face its normal points out of.
		assert.InDelta(t, 0.5, dot(p, n), 1e-6)
	}
}

func TestRoomShellTopology(t *testing.T) {
	shell := NewRoomShell()
	want := map[Surface][2]int{
		Front:   {12, 18},
		Back:    {12, 18},
		Left:    {24, 42},
		Right:   {24, 42},
		Ceiling: {12, 18},
		Floor:   {12, 18},
	}
	total := 0
	for s, m := range shell {
		require.NotNil(t, m)
		assert.Equal(t, RoomShell, m.Family)
		assert.Equal(t, PositionOnly, m.Layout)
		assert.Equal(t, want[Surface(s)][0], m.VertexCount(), Surface(s).String())
		assert.Len(t, m.Indices, want[Surface(s)][1], Surface(s).String())
		requireIndicesInRange(t, m)
		total += len(m.Indices)
	}
	assert.Equal(t, 156, total)
}

func TestDoorWallLeavesDoorwayOpen(t *testing.T) {
	shell := NewRoomShell()
	right := shell[Right]
	// Point in room 1's doorway on its right wall (x=5).
	p := [3]float32{5, -4, 0}
	for i := 0; i < len(right.Indices); i += 3 {
		a, b, c := right.Vertex(int(right.Indices[i])), right.Vertex(int(right.Indices[i+1])), right.Vertex(int(right.Indices[i+2]))
		if a[0] != 5 {
			continue
		}
		assert.False(t, insideYZ(p, a, b, c), "doorway covered by triangle %d", i/3)
	}
}

// insideYZ reports whether p lies strictly inside triangle abc projected on the YZ plane.
func insideYZ(p, a, b, c [3]float32) bool {
	side := func(p1, p2, p3 [3]float32) float32 {
		return (p1[2]-p3[2])*(p2[1]-p3[1]) - (p2[2]-p3[2])*(p1[1]-p3[1])
	}
	d1, d2, d3 := side(p, a, b), side(p, b, c), side(p, c, a)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos) && d1 != 0 && d2 != 0 && d3 != 0
}

func TestRoomAt(t *testing.T) {
	tests := []struct {
		x    float32
		room int
		ok   bool
	}{
		{0, 1, true},
		{-5, 1, true},
		{7.5, 0, false},
		{15, 2, true},
		{22, 0, false},
		{32, 3, true},
		{40, 0, false},
	}
	for _, tt := range tests {
		room, ok := RoomAt(tt.x)
		assert.Equal(t, tt.room, room, "x=%v", tt.x)
		assert.Equal(t, tt.ok, ok, "x=%v", tt.x)
	}
}

func TestRegistryBuild(t *testing.T) {
	r := Build(Options{})
	all := r.All()
	assert.Len(t, all, int(SurfaceCount)+5)
	assert.Same(t, r.Cube, r.Primitive(Cube))
	assert.Same(t, r.Sphere, r.Primitive(Sphere))
	assert.Same(t, r.Pyramid, r.Primitive(Pyramid))
	assert.Nil(t, r.Primitive(Corridor))
	assert.Equal(t, 33*33, r.Sphere.VertexCount())

	small := Build(Options{SphereSegmentsX: 8, SphereSegmentsY: 6})
	assert.Equal(t, 9*7, small.Sphere.VertexCount())
}
