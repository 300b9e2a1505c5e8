package geometry

// Surface is one face group of the room shell. Each surface spans all three rooms and is drawn
// with a single shading variant.
type Surface int

const (
	Front Surface = iota
	Back
	Left
	Right
	Ceiling
	Floor
	SurfaceCount
)

var surfaceNames = [...]string{"front", "back", "left", "right", "ceiling", "floor"}

func (s Surface) String() string {
	if s < 0 || s >= SurfaceCount {
		return "surface?"
	}
	return surfaceNames[s]
}

// Shell extents shared by every room, and the doorway cut into connecting walls.
const (
	wallMinY      = -5
	wallMaxY      = 5
	wallMinZ      = -5
	wallMaxZ      = 5
	doorHalfWidth = 0.8
	doorTop       = -2.5
)

// roomSpan is one room's X extent and which of its side walls open onto a corridor.
type roomSpan struct {
	minX, maxX          float32
	doorLeft, doorRight bool
}

// roomSpans are rooms 1, 2 and 3 from -X to +X. Corridors fill the gaps between them.
var roomSpans = [3]roomSpan{
	{minX: -5, maxX: 5, doorRight: true},
	{minX: 10, maxX: 20, doorLeft: true, doorRight: true},
	{minX: 25, maxX: 35, doorLeft: true},
}

// RoomAt returns the 1-based room whose floor contains world coordinate x, or false in a corridor or outside.
func RoomAt(x float32) (int, bool) {
	for i, r := range roomSpans {
		if x >= r.minX && x <= r.maxX {
			return i + 1, true
		}
	}
	return 0, false
}

// RoomCenter returns the center of the given 1-based room's floor plan at eye height 0.
func RoomCenter(room int) ([3]float32, bool) {
	if room < 1 || room > len(roomSpans) {
		return [3]float32{}, false
	}
	r := roomSpans[room-1]
	return [3]float32{(r.minX + r.maxX) / 2, 0, 0}, true
}

// quad appends four corners as two triangles (0,1,2)(0,2,3).
func (b *builder) quad(c [4][3]float32) {
	base := b.base()
	for _, p := range c {
		b.vertex(p)
	}
	b.tris(base, 0, 1, 2, 0, 2, 3)
}

// litQuad is quad with one normal shared by the four corners.
func (b *builder) litQuad(c [4][3]float32, n [3]float32) {
	base := b.base()
	for _, p := range c {
		b.vertexNormal(p, n)
	}
	b.tris(base, 0, 1, 2, 0, 2, 3)
}

// sideWall appends the wall in the plane X=x. Without a door it is one quad; with a door it is
// ten vertices and six triangles leaving the doorway and the section above it open
// (the door overlay covers the part above the doorway).
func (b *builder) sideWall(x float32, door bool) {
	if !door {
		b.quad([4][3]float32{{x, wallMinY, wallMinZ}, {x, wallMinY, wallMaxZ}, {x, wallMaxY, wallMaxZ}, {x, wallMaxY, wallMinZ}})
		return
	}
	base := b.base()
	for _, p := range [][3]float32{
		{x, wallMinY, wallMinZ}, {x, wallMinY, -doorHalfWidth}, {x, wallMinY, doorHalfWidth}, {x, wallMinY, wallMaxZ},
		{x, doorTop, -doorHalfWidth}, {x, doorTop, doorHalfWidth},
		{x, wallMaxY, wallMinZ}, {x, wallMaxY, -doorHalfWidth}, {x, wallMaxY, doorHalfWidth}, {x, wallMaxY, wallMaxZ},
	} {
		b.vertex(p)
	}
	b.tris(base,
		0, 1, 4, 0, 4, 6, 4, 7, 6, // beside the door, -Z
		3, 2, 5, 3, 5, 9, 5, 8, 9, // beside the door, +Z
	)
}

// NewRoomShell returns the six position-only surface meshes of the three rooms, indexed by Surface.
// Meshes are defined in world space.
func NewRoomShell() [SurfaceCount]*Mesh {
	var out [SurfaceCount]*Mesh
	for s := Front; s < SurfaceCount; s++ {
		b := newBuilder(RoomShell, "room-"+s.String(), PositionOnly)
		for _, r := range roomSpans {
			switch s {
			case Front:
				b.quad([4][3]float32{{r.minX, wallMinY, wallMaxZ}, {r.maxX, wallMinY, wallMaxZ}, {r.maxX, wallMaxY, wallMaxZ}, {r.minX, wallMaxY, wallMaxZ}})
			case Back:
				b.quad([4][3]float32{{r.minX, wallMinY, wallMinZ}, {r.maxX, wallMinY, wallMinZ}, {r.maxX, wallMaxY, wallMinZ}, {r.minX, wallMaxY, wallMinZ}})
			case Left:
				b.sideWall(r.minX, r.doorLeft)
			case Right:
				b.sideWall(r.maxX, r.doorRight)
			case Ceiling:
				b.quad([4][3]float32{{r.minX, wallMaxY, wallMinZ}, {r.maxX, wallMaxY, wallMinZ}, {r.maxX, wallMaxY, wallMaxZ}, {r.minX, wallMaxY, wallMaxZ}})
			case Floor:
				b.quad([4][3]float32{{r.minX, wallMinY, wallMinZ}, {r.maxX, wallMinY, wallMinZ}, {r.maxX, wallMinY, wallMaxZ}, {r.minX, wallMinY, wallMaxZ}})
			}
		}
		out[s] = b.build()
	}
	return out
}

// corridorSpans are the X extents of the two corridors (rooms 1–2 and rooms 2–3).
var corridorSpans = [][2]float32{{5, 10}, {20, 25}}

// NewCorridor returns both corridors as one lit mesh: per corridor two side walls, a ceiling
// at the door top and a floor, each an inward-facing quad (32 vertices, 48 indices).
func NewCorridor() *Mesh {
	b := newBuilder(Corridor, "corridor", PositionNormal)
	for _, c := range corridorSpans {
		x0, x1 := c[0], c[1]
		b.litQuad([4][3]float32{{x0, wallMinY, doorHalfWidth}, {x1, wallMinY, doorHalfWidth}, {x1, doorTop, doorHalfWidth}, {x0, doorTop, doorHalfWidth}}, [3]float32{0, 0, -1})
		b.litQuad([4][3]float32{{x0, wallMinY, -doorHalfWidth}, {x1, wallMinY, -doorHalfWidth}, {x1, doorTop, -doorHalfWidth}, {x0, doorTop, -doorHalfWidth}}, [3]float32{0, 0, 1})
		b.litQuad([4][3]float32{{x0, doorTop, -doorHalfWidth}, {x1, doorTop, -doorHalfWidth}, {x1, doorTop, doorHalfWidth}, {x0, doorTop, doorHalfWidth}}, [3]float32{0, -1, 0})
		b.litQuad([4][3]float32{{x0, wallMinY, -doorHalfWidth}, {x1, wallMinY, -doorHalfWidth}, {x1, wallMinY, doorHalfWidth}, {x0, wallMinY, doorHalfWidth}}, [3]float32{0, 1, 0})
	}
	return b.build()
}

// doorWalls are the X planes of every wall with a doorway.
var doorWalls = []float32{5, 10, 20, 25}

// NewDoorOverlay returns the position-only panels filling each doorway wall above the door
// (16 vertices, 24 indices).
func NewDoorOverlay() *Mesh {
	b := newBuilder(DoorOverlay, "door-overlay", PositionOnly)
	for _, x := range doorWalls {
		base := b.base()
		b.vertex([3]float32{x, doorTop, -doorHalfWidth})
		b.vertex([3]float32{x, doorTop, doorHalfWidth})
		b.vertex([3]float32{x, wallMaxY, -doorHalfWidth})
		b.vertex([3]float32{x, wallMaxY, doorHalfWidth})
		b.tris(base, 0, 1, 2, 1, 3, 2)
	}
	return b.build()
}
