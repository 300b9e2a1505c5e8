// Package render binds shading variants and draws the scene each frame.
package render

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"noise-rooms/internal/geometry"
	"noise-rooms/internal/gpu"
	"noise-rooms/internal/logger"
	"noise-rooms/internal/material"
	"noise-rooms/internal/shaders"
)

// ErrUniformMismatch marks a uniform a variant is bound with but its program does not declare.
var ErrUniformMismatch = errors.New("uniform mismatch")

// Frame is the camera state one frame is rendered with.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	CameraPos  mgl32.Vec3
}

type resource struct {
	name    string
	mesh    gpu.MeshHandle
	program gpu.Program
	variant Variant
	isMesh  bool
}

// Dispatcher owns the GPU copies of the registry's meshes and one program per variant.
// Uniforms are written every frame from the store's current values.
type Dispatcher struct {
	backend gpu.Backend
	reg     *geometry.Registry
	store   *material.Store
	src     *shaders.Loader
	log     *logger.Logger

	programs map[string]gpu.Program
	meshes   map[*geometry.Mesh]gpu.MeshHandle
	acquired []resource
	loaded   bool
}

// New returns a dispatcher; nothing touches the GPU until Load.
func New(backend gpu.Backend, reg *geometry.Registry, store *material.Store, src *shaders.Loader, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		backend:  backend,
		reg:      reg,
		store:    store,
		src:      src,
		log:      log,
		programs: make(map[string]gpu.Program),
		meshes:   make(map[*geometry.Mesh]gpu.MeshHandle),
	}
}

// Load uploads every mesh and compiles every variant: shell, cube, sphere, pyramid, corridor, door
// overlay. The first failure releases what was acquired and is returned.
func (d *Dispatcher) Load() error {
	if d.loaded {
		return errors.New("render: already loaded")
	}
	if err := d.load(); err != nil {
		d.release()
		return err
	}
	d.loaded = true
	return nil
}

func (d *Dispatcher) load() error {
	for s, mesh := range d.reg.Shell {
		if err := d.uploadMesh(mesh); err != nil {
			return err
		}
		if err := d.compile(SurfaceVariants[s]); err != nil {
			return err
		}
	}
	for _, prim := range material.Primitives {
		if err := d.uploadMesh(d.reg.Primitive(primitiveFamily(prim))); err != nil {
			return err
		}
		for _, room := range material.Rooms {
			v, ok := PrimitiveVariants[material.Key{Primitive: prim, Room: room}]
			if !ok {
				return fmt.Errorf("no variant for %s in %s", prim, room)
			}
			if err := d.compile(v); err != nil {
				return err
			}
		}
	}
	if err := d.uploadMesh(d.reg.Corridor); err != nil {
		return err
	}
	if err := d.compile(CorridorVariant); err != nil {
		return err
	}
	return d.uploadMesh(d.reg.DoorOverlay)
}

func (d *Dispatcher) uploadMesh(m *geometry.Mesh) error {
	if m == nil {
		return errors.New("render: registry mesh missing")
	}
	h, err := d.backend.UploadMesh(m)
	if err != nil {
		return err
	}
	d.meshes[m] = h
	d.acquired = append(d.acquired, resource{name: m.Name, mesh: h, isMesh: true})
	d.log.Logf("render: uploaded %s (%d vertices, %d triangles)", m.Name, m.VertexCount(), m.TriangleCount())
	return nil
}

func (d *Dispatcher) compile(v Variant) error {
	if _, ok := d.programs[v.Name]; ok {
		return nil
	}
	p, err := d.compileFresh(v)
	if err != nil {
		return err
	}
	d.programs[v.Name] = p
	d.acquired = append(d.acquired, resource{name: v.Name, program: p, variant: v})
	return nil
}

// Reload recompiles every variant from the current sources. If any variant fails, the programs
// compiled so far are released and the running set stays in place.
func (d *Dispatcher) Reload() error {
	if !d.loaded {
		return errors.New("render: reload before load")
	}
	var fresh []gpu.Program
	for _, r := range d.acquired {
		if r.isMesh {
			continue
		}
		p, err := d.compileFresh(r.variant)
		if err != nil {
			for _, p := range slices.Backward(fresh) {
				d.backend.ReleaseProgram(p)
			}
			return fmt.Errorf("render: reload: %w", err)
		}
		fresh = append(fresh, p)
	}
	next := 0
	for i, r := range d.acquired {
		if r.isMesh {
			continue
		}
		d.backend.ReleaseProgram(r.program)
		d.acquired[i].program = fresh[next]
		d.programs[r.name] = fresh[next]
		next++
	}
	d.log.Logf("render: reloaded %d programs", len(fresh))
	return nil
}

func (d *Dispatcher) compileFresh(v Variant) (gpu.Program, error) {
	src, err := d.src.Load(v.Vertex, v.Fragment)
	if err != nil {
		return 0, fmt.Errorf("variant %s: %w", v.Name, err)
	}
	p, err := d.backend.CompileProgram(v.Name, src.Vertex, src.Fragment)
	if err != nil {
		return 0, fmt.Errorf("variant %s: %w", v.Name, err)
	}
	return p, nil
}

func standardUniforms(v Variant) []string {
	names := []string{UniformModel, UniformView, UniformProjection}
	if v.Lit {
		names = append(names, UniformLightPos, UniformViewPos)
	}
	return names
}

// Validate checks that every program declares every uniform it will be bound with. Each mismatch
// is logged once; all are returned joined.
func (d *Dispatcher) Validate() error {
	var errs []error
	check := func(v Variant, names []string) {
		p, ok := d.programs[v.Name]
		if !ok {
			errs = append(errs, fmt.Errorf("variant %s: not loaded", v.Name))
			return
		}
		for _, name := range names {
			if d.backend.HasUniform(p, name) {
				continue
			}
			err := fmt.Errorf("%w: variant %s has no uniform %q", ErrUniformMismatch, v.Name, name)
			d.log.Once(v.Name+"."+name, "render: "+err.Error())
			errs = append(errs, err)
		}
	}
	for _, v := range SurfaceVariants {
		check(v, standardUniforms(v))
	}
	check(CorridorVariant, standardUniforms(CorridorVariant))
	for _, pl := range Placements {
		v := PrimitiveVariants[pl.Key]
		names := standardUniforms(v)
		set, ok := d.store.Set(pl.Key)
		if !ok {
			errs = append(errs, fmt.Errorf("variant %s: no parameter set for %s", v.Name, pl.Key))
			continue
		}
		for _, f := range set.Fields() {
			names = append(names, f.Uniform)
		}
		check(v, names)
	}
	return errors.Join(errs...)
}

// RenderFrame draws the shell, corridors and door overlay, then every opaque primitive, then every
// translucent one. It returns the number of draw calls issued.
func (d *Dispatcher) RenderFrame(f Frame) int {
	if !d.loaded {
		return 0
	}
	draws := 0
	for s, mesh := range d.reg.Shell {
		d.drawStatic(SurfaceVariants[s], mesh, f)
		draws++
	}
	d.drawStatic(CorridorVariant, d.reg.Corridor, f)
	d.drawStatic(SurfaceVariants[DoorSurface], d.reg.DoorOverlay, f)
	draws += 2

	for _, translucentPass := range []bool{false, true} {
		for _, pl := range Placements {
			if pl.Translucent != translucentPass {
				continue
			}
			if d.drawPrimitive(pl, f) {
				draws++
			}
		}
	}
	return draws
}

func (d *Dispatcher) drawStatic(v Variant, mesh *geometry.Mesh, f Frame) {
	p := d.programs[v.Name]
	d.backend.UseProgram(p)
	d.bindStandard(v, p, mgl32.Ident4(), f)
	d.backend.DrawMesh(p, d.meshes[mesh])
}

func (d *Dispatcher) drawPrimitive(pl Placement, f Frame) bool {
	v := PrimitiveVariants[pl.Key]
	set, ok := d.store.Set(pl.Key)
	if !ok {
		d.log.Once("set."+pl.Key.String(), "render: no parameter set for "+pl.Key.String())
		return false
	}
	p := d.programs[v.Name]
	d.backend.UseProgram(p)
	d.bindStandard(v, p, pl.Model(), f)
	for _, field := range set.Fields() {
		d.checkBound(v, field.Uniform, d.bindField(p, field))
	}
	d.backend.DrawMesh(p, d.meshes[d.reg.Primitive(primitiveFamily(pl.Key.Primitive))])
	return true
}

func (d *Dispatcher) bindStandard(v Variant, p gpu.Program, model mgl32.Mat4, f Frame) {
	d.checkBound(v, UniformModel, d.backend.SetMat4(p, UniformModel, model))
	d.checkBound(v, UniformView, d.backend.SetMat4(p, UniformView, f.View))
	d.checkBound(v, UniformProjection, d.backend.SetMat4(p, UniformProjection, f.Projection))
	if v.Lit {
		d.checkBound(v, UniformLightPos, d.backend.SetVec3(p, UniformLightPos, LightPos))
		d.checkBound(v, UniformViewPos, d.backend.SetVec3(p, UniformViewPos, f.CameraPos))
	}
}

func (d *Dispatcher) bindField(p gpu.Program, f material.Field) bool {
	switch f.Kind {
	case material.Float:
		return d.backend.SetFloat(p, f.Uniform, *f.F)
	case material.Int:
		return d.backend.SetInt(p, f.Uniform, *f.I)
	case material.Color:
		return d.backend.SetVec3(p, f.Uniform, *f.C)
	}
	return false
}

func (d *Dispatcher) checkBound(v Variant, uniform string, ok bool) {
	if !ok {
		d.log.Once(v.Name+"."+uniform, fmt.Sprintf("render: %s: uniform %q not bound", v.Name, uniform))
	}
}

// Close releases every mesh and program in reverse acquisition order. It is safe to call twice.
func (d *Dispatcher) Close() {
	d.release()
	d.loaded = false
}

func (d *Dispatcher) release() {
	for _, r := range slices.Backward(d.acquired) {
		if r.isMesh {
			d.backend.ReleaseMesh(r.mesh)
		} else {
			d.backend.ReleaseProgram(r.program)
		}
	}
	d.acquired = nil
	clear(d.programs)
	clear(d.meshes)
}

// Programs returns the loaded variant names in acquisition order.
func (d *Dispatcher) Programs() []string {
	var out []string
	for _, r := range d.acquired {
		if !r.isMesh {
			out = append(out, r.name)
		}
	}
	return out
}
