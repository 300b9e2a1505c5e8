// Package gputest provides a recording gpu.Backend for tests.
package gputest

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"

	"noise-rooms/internal/geometry"
	"noise-rooms/internal/gpu"
)

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)

// DeclaredUniforms returns the uniform names declared at top level in a GLSL source.
func DeclaredUniforms(src string) []string {
	var out []string
	for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
		out = append(out, m[1])
	}
	return out
}

// Program is a fake compiled program. Uniforms are the names declared in either stage;
// Values holds the last value written to each.
type Program struct {
	Name     string
	Uniforms map[string]bool
	Values   map[string]any
}

// Draw is one recorded draw call with the program's uniform values at that moment.
type Draw struct {
	Program string
	Mesh    string
	Values  map[string]any
}

// Backend records every call. Programs declare exactly the uniforms found in their sources.
type Backend struct {
	Programs map[gpu.Program]*Program
	Meshes   map[gpu.MeshHandle]*geometry.Mesh

	// CompileErrors fails CompileProgram for the named programs.
	CompileErrors map[string]error

	Draws    []Draw
	Misses   []string // "program.uniform" for every write to an undeclared name
	Released []string // "mesh:<name>" and "program:<name>" in release order
	Bound    []string // program names passed to UseProgram

	next int
}

// New returns an empty recording backend.
func New() *Backend {
	return &Backend{
		Programs:      make(map[gpu.Program]*Program),
		Meshes:        make(map[gpu.MeshHandle]*geometry.Mesh),
		CompileErrors: make(map[string]error),
	}
}

func (b *Backend) CompileProgram(name, vertex, fragment string) (gpu.Program, error) {
	if err, ok := b.CompileErrors[name]; ok {
		return 0, fmt.Errorf("%s: %w: %w", name, gpu.ErrCompile, err)
	}
	if vertex == "" || fragment == "" {
		return 0, fmt.Errorf("%s: %w: empty source", name, gpu.ErrCompile)
	}
	p := &Program{Name: name, Uniforms: make(map[string]bool), Values: make(map[string]any)}
	for _, u := range DeclaredUniforms(vertex) {
		p.Uniforms[u] = true
	}
	for _, u := range DeclaredUniforms(fragment) {
		p.Uniforms[u] = true
	}
	b.next++
	h := gpu.Program(b.next)
	b.Programs[h] = p
	return h, nil
}

// ProgramByName returns the live program compiled under name.
func (b *Backend) ProgramByName(name string) (*Program, bool) {
	for _, p := range b.Programs {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

func (b *Backend) HasUniform(p gpu.Program, name string) bool {
	prg, ok := b.Programs[p]
	return ok && prg.Uniforms[name]
}

func (b *Backend) UseProgram(p gpu.Program) {
	if prg, ok := b.Programs[p]; ok {
		b.Bound = append(b.Bound, prg.Name)
	}
}

func (b *Backend) set(p gpu.Program, name string, v any) bool {
	prg, ok := b.Programs[p]
	if !ok {
		return false
	}
	if !prg.Uniforms[name] {
		b.Misses = append(b.Misses, prg.Name+"."+name)
		return false
	}
	prg.Values[name] = v
	return true
}

func (b *Backend) SetFloat(p gpu.Program, name string, v float32) bool { return b.set(p, name, v) }
func (b *Backend) SetInt(p gpu.Program, name string, v int32) bool     { return b.set(p, name, v) }
func (b *Backend) SetVec3(p gpu.Program, name string, v [3]float32) bool {
	return b.set(p, name, v)
}
func (b *Backend) SetMat4(p gpu.Program, name string, m mgl32.Mat4) bool { return b.set(p, name, m) }

func (b *Backend) UploadMesh(m *geometry.Mesh) (gpu.MeshHandle, error) {
	if m.VertexCount() == 0 || len(m.Indices) == 0 {
		return 0, fmt.Errorf("upload %s: empty mesh", m.Name)
	}
	b.next++
	h := gpu.MeshHandle(b.next)
	b.Meshes[h] = m
	return h, nil
}

func (b *Backend) DrawMesh(p gpu.Program, m gpu.MeshHandle) {
	prg, ok := b.Programs[p]
	mesh, found := b.Meshes[m]
	if !ok || !found {
		return
	}
	b.Draws = append(b.Draws, Draw{Program: prg.Name, Mesh: mesh.Name, Values: maps.Clone(prg.Values)})
}

func (b *Backend) ReleaseMesh(m gpu.MeshHandle) {
	if mesh, ok := b.Meshes[m]; ok {
		b.Released = append(b.Released, "mesh:"+mesh.Name)
		delete(b.Meshes, m)
	}
}

func (b *Backend) ReleaseProgram(p gpu.Program) {
	if prg, ok := b.Programs[p]; ok {
		b.Released = append(b.Released, "program:"+prg.Name)
		delete(b.Programs, p)
	}
}

// Reset clears the recorded draws and misses, keeping resources.
func (b *Backend) Reset() {
	b.Draws = nil
	b.Misses = nil
	b.Bound = nil
}

var _ gpu.Backend = (*Backend)(nil)
