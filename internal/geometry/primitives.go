package geometry

import "github.com/chewxy/math32"

// DefaultSphereSegments is the latitude and longitude subdivision used when none is configured.
const DefaultSphereSegments = 32

// cubeFaces lists each face's outward normal and its four corners in fan order.
var cubeFaces = []struct {
	normal  [3]float32
	corners [4][3]float32
}{
	{[3]float32{0, 0, -1}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
	{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
	{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}}},
	{[3]float32{1, 0, 0}, [4][3]float32{{0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}}},
	{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
}

// NewCube returns a unit cube centered at the origin: 24 vertices (4 per face, flat normals) and 36 indices.
func NewCube() *Mesh {
	b := newBuilder(Cube, "cube", PositionNormal)
	for _, f := range cubeFaces {
		base := b.base()
		for _, c := range f.corners {
			b.vertexNormal(c, f.normal)
		}
		b.tris(base, 0, 1, 2, 0, 2, 3)
	}
	return b.build()
}

// NewPyramid returns a unit square pyramid centered at the origin with its apex at +0.5 on Y:
// a two-triangle base plus four sides, 16 vertices and 18 indices. Side triangles are wound
// counter-clockwise seen from outside and carry their face normal.
func NewPyramid() *Mesh {
	b := newBuilder(Pyramid, "pyramid", PositionNormal)
	apex := [3]float32{0, 0.5, 0}

	down := [3]float32{0, -1, 0}
	b.vertexNormal([3]float32{-0.5, -0.5, -0.5}, down)
	b.vertexNormal([3]float32{0.5, -0.5, -0.5}, down)
	b.vertexNormal([3]float32{0.5, -0.5, 0.5}, down)
	b.vertexNormal([3]float32{-0.5, -0.5, 0.5}, down)
	b.tris(0, 0, 1, 2, 0, 2, 3)

	// Base edges in order around the pyramid, seen from above going clockwise.
	edges := [][2][3]float32{
		{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}},
		{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}},
		{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}},
		{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}},
	}
	for _, e := range edges {
		n := faceNormal(e[0], e[1], apex)
		base := b.base()
		b.vertexNormal(e[0], n)
		b.vertexNormal(e[1], n)
		b.vertexNormal(apex, n)
		b.tris(base, 0, 1, 2)
	}
	return b.build()
}

// faceNormal returns the unit normal of triangle abc following its winding.
func faceNormal(a, b, c [3]float32) [3]float32 {
	u := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n := [3]float32{u[1]*v[2] - u[2]*v[1], u[2]*v[0] - u[0]*v[2], u[0]*v[1] - u[1]*v[0]}
	l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l == 0 {
		return n
	}
	return [3]float32{n[0] / l, n[1] / l, n[2] / l}
}

// MaxSphereVertices is the most vertices a sphere may have: every index must fit in 16 bits.
const MaxSphereVertices = 1 << 16

// NewSphere returns a unit sphere built by latitude/longitude subdivision. For x in [0,segX] and y in [0,segY],
// u=x/segX and v=y/segY map to (cos(2πu)·sin(πv), cos(πv), sin(2πu)·sin(πv)); normals equal positions.
// Each quad between adjacent rings becomes two triangles wound counter-clockwise seen from outside.
// Segment counts below 3 (X) or 2 (Y) are raised to those minimums. Counts that would exceed
// MaxSphereVertices are capped at 255 each.
func NewSphere(segX, segY int) *Mesh {
	segX = min(max(segX, 3), MaxSphereVertices)
	segY = min(max(segY, 2), MaxSphereVertices)
	if (segX+1)*(segY+1) > MaxSphereVertices {
		segX, segY = min(segX, 255), min(segY, 255)
	}
	b := newBuilder(Sphere, "sphere", PositionNormal)
	for y := 0; y <= segY; y++ {
		for x := 0; x <= segX; x++ {
			u := float32(x) / float32(segX)
			v := float32(y) / float32(segY)
			sinV := math32.Sin(v * math32.Pi)
			p := [3]float32{
				math32.Cos(2*math32.Pi*u) * sinV,
				math32.Cos(v * math32.Pi),
				math32.Sin(2*math32.Pi*u) * sinV,
			}
			b.vertexNormal(p, p)
		}
	}
	row := uint16(segX + 1)
	for y := 0; y < segY; y++ {
		for x := 0; x < segX; x++ {
			i := uint16(y)*row + uint16(x)
			b.tris(i, 0, 1, row, row, 1, row+1)
		}
	}
	return b.build()
}
