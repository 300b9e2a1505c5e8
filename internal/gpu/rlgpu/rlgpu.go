// Package rlgpu implements gpu.Backend on raylib's shader and mesh API. It needs cgo and a live window.
package rlgpu

import (
	"fmt"
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"noise-rooms/internal/geometry"
	"noise-rooms/internal/gpu"
)

type program struct {
	name     string
	material rl.Material
	uniforms map[string]int32
}

// location resolves a uniform once and caches the result, including misses.
func (p *program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := rl.GetShaderLocation(p.material.Shader, name)
	p.uniforms[name] = loc
	return loc
}

// Backend is a gpu.Backend on top of raylib. It needs a live window (GL context).
type Backend struct {
	programs map[gpu.Program]*program
	meshes   map[gpu.MeshHandle]rl.Mesh
	next     int
}

// New returns an empty backend. Call after the window is open.
func New() *Backend {
	return &Backend{
		programs: make(map[gpu.Program]*program),
		meshes:   make(map[gpu.MeshHandle]rl.Mesh),
	}
}

func (r *Backend) CompileProgram(name, vertex, fragment string) (gpu.Program, error) {
	if vertex == "" || fragment == "" {
		// raylib substitutes its default shader for empty code.
		return 0, fmt.Errorf("%s: %w: empty source", name, gpu.ErrCompile)
	}
	shader := rl.LoadShaderFromMemory(vertex, fragment)
	if !rl.IsShaderValid(shader) {
		return 0, fmt.Errorf("%s: %w (see raylib log for the GLSL error)", name, gpu.ErrCompile)
	}
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = shader

	r.next++
	h := gpu.Program(r.next)
	r.programs[h] = &program{name: name, material: mtl, uniforms: make(map[string]int32)}
	return h, nil
}

func (r *Backend) HasUniform(p gpu.Program, name string) bool {
	prg, ok := r.programs[p]
	return ok && prg.location(name) >= 0
}

// UseProgram is a no-op: raylib binds the shader on every uniform write and draw.
func (r *Backend) UseProgram(gpu.Program) {}

func (r *Backend) set(p gpu.Program, name string, v []float32, typ rl.ShaderUniformDataType) bool {
	prg, ok := r.programs[p]
	if !ok {
		return false
	}
	loc := prg.location(name)
	if loc < 0 {
		return false
	}
	rl.SetShaderValue(prg.material.Shader, loc, v, typ)
	return true
}

func (r *Backend) SetFloat(p gpu.Program, name string, v float32) bool {
	return r.set(p, name, []float32{v}, rl.ShaderUniformFloat)
}

func (r *Backend) SetInt(p gpu.Program, name string, v int32) bool {
	// SetShaderValue takes the raw 32 bits; reinterpret rather than convert.
	return r.set(p, name, []float32{math.Float32frombits(uint32(v))}, rl.ShaderUniformInt)
}

func (r *Backend) SetVec3(p gpu.Program, name string, v [3]float32) bool {
	return r.set(p, name, v[:], rl.ShaderUniformVec3)
}

func (r *Backend) SetMat4(p gpu.Program, name string, m mgl32.Mat4) bool {
	prg, ok := r.programs[p]
	if !ok {
		return false
	}
	loc := prg.location(name)
	if loc < 0 {
		return false
	}
	rl.SetShaderValueMatrix(prg.material.Shader, loc, toMatrix(m))
	return true
}

// toMatrix maps column-major mgl32 storage onto raylib's named fields (Mi is element i column-major).
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// UploadMesh copies the mesh into raylib-owned memory so UnloadMesh can free it.
func (r *Backend) UploadMesh(m *geometry.Mesh) (gpu.MeshHandle, error) {
	if m.VertexCount() == 0 || len(m.Indices) == 0 {
		return 0, fmt.Errorf("upload %s: empty mesh", m.Name)
	}
	if m.VertexCount() > math.MaxUint16+1 {
		return 0, fmt.Errorf("upload %s: %d vertices exceed 16-bit indices", m.Name, m.VertexCount())
	}
	mesh := rl.Mesh{
		VertexCount:   int32(m.VertexCount()),
		TriangleCount: int32(m.TriangleCount()),
		Vertices:      cFloats(m.Positions),
		Normals:       cFloats(m.Normals),
		Indices:       cIndices(m.Indices),
	}
	rl.UploadMesh(&mesh, false)
	if mesh.VaoID == 0 {
		rl.UnloadMesh(&mesh)
		return 0, fmt.Errorf("upload %s: no vertex array", m.Name)
	}
	r.next++
	h := gpu.MeshHandle(r.next)
	r.meshes[h] = mesh
	return h, nil
}

func cFloats(src []float32) *float32 {
	if len(src) == 0 {
		return nil
	}
	dst := unsafe.Slice((*float32)(rl.MemAlloc(uint32(len(src)*4))), len(src))
	copy(dst, src)
	return &dst[0]
}

func cIndices(src []uint16) *uint16 {
	if len(src) == 0 {
		return nil
	}
	dst := unsafe.Slice((*uint16)(rl.MemAlloc(uint32(len(src)*2))), len(src))
	copy(dst, src)
	return &dst[0]
}

func (r *Backend) DrawMesh(p gpu.Program, m gpu.MeshHandle) {
	prg, ok := r.programs[p]
	mesh, found := r.meshes[m]
	if !ok || !found {
		return
	}
	// The programs take model/view/projection as their own uniforms; raylib's transform stays identity.
	rl.DrawMesh(mesh, prg.material, rl.MatrixIdentity())
}

func (r *Backend) ReleaseMesh(m gpu.MeshHandle) {
	mesh, ok := r.meshes[m]
	if !ok {
		return
	}
	rl.UnloadMesh(&mesh)
	delete(r.meshes, m)
}

func (r *Backend) ReleaseProgram(p gpu.Program) {
	prg, ok := r.programs[p]
	if !ok {
		return
	}
	rl.UnloadMaterial(prg.material)
	delete(r.programs, p)
}

var _ gpu.Backend = (*Backend)(nil)
