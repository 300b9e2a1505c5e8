// Package gpu is the narrow slice of the graphics API the renderer needs: compiled programs addressed
// by handle, named uniform writes, and indexed mesh upload and draw. rlgpu is the raylib implementation
// the viewer runs on; gputest provides a recording fake. This package stays free of cgo.
package gpu

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"noise-rooms/internal/geometry"
)

// ErrCompile wraps every shader compile or link failure.
var ErrCompile = errors.New("shader compile failed")

// Program is a handle to a compiled, linked shader program.
type Program int

// MeshHandle is a handle to an uploaded mesh.
type MeshHandle int

// Backend owns GPU resources. Uniform setters write to the named uniform of p and return false when
// the program has no active uniform by that name; the write is then a no-op.
type Backend interface {
	CompileProgram(name, vertex, fragment string) (Program, error)
	HasUniform(p Program, name string) bool
	UseProgram(p Program)

	SetFloat(p Program, name string, v float32) bool
	SetInt(p Program, name string, v int32) bool
	SetVec3(p Program, name string, v [3]float32) bool
	SetMat4(p Program, name string, m mgl32.Mat4) bool

	UploadMesh(m *geometry.Mesh) (MeshHandle, error)
	DrawMesh(p Program, m MeshHandle)

	ReleaseMesh(m MeshHandle)
	ReleaseProgram(p Program)
}
