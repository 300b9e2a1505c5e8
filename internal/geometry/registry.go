package geometry

// Options controls the procedural meshes. Zero segment counts use DefaultSphereSegments.
type Options struct {
	SphereSegmentsX int
	SphereSegmentsY int
}

// Registry owns every mesh the viewer draws. It is built once at startup and never mutated;
// GPU upload and release belong to the render package.
type Registry struct {
	Shell       [SurfaceCount]*Mesh
	Corridor    *Mesh
	DoorOverlay *Mesh
	Cube        *Mesh
	Sphere      *Mesh
	Pyramid     *Mesh
}

// Build creates all meshes.
func Build(opts Options) *Registry {
	segX, segY := opts.SphereSegmentsX, opts.SphereSegmentsY
	if segX <= 0 {
		segX = DefaultSphereSegments
	}
	if segY <= 0 {
		segY = DefaultSphereSegments
	}
	return &Registry{
		Shell:       NewRoomShell(),
		Corridor:    NewCorridor(),
		DoorOverlay: NewDoorOverlay(),
		Cube:        NewCube(),
		Sphere:      NewSphere(segX, segY),
		Pyramid:     NewPyramid(),
	}
}

// All returns every mesh in build order: shell surfaces, corridor, door overlay, cube, sphere, pyramid.
func (r *Registry) All() []*Mesh {
	out := make([]*Mesh, 0, len(r.Shell)+5)
	out = append(out, r.Shell[:]...)
	return append(out, r.Corridor, r.DoorOverlay, r.Cube, r.Sphere, r.Pyramid)
}

// Primitive returns the object-space mesh for a primitive family, or nil for world-space families.
func (r *Registry) Primitive(f Family) *Mesh {
	switch f {
	case Cube:
		return r.Cube
	case Sphere:
		return r.Sphere
	case Pyramid:
		return r.Pyramid
	}
	return nil
}
