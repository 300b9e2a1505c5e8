// Package shaders holds the GLSL sources of every shading variant. Sources are embedded in the
// binary; a directory on disk can override them for live editing.
package shaders

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed glsl
var embedded embed.FS

// ErrMissingSource is returned for a source file that does not exist or is empty.
var ErrMissingSource = errors.New("missing shader source")

const includeDirective = "#include"

// Loader reads shader sources from a file system rooted at the glsl directory.
type Loader struct {
	fsys fs.FS
}

// New returns a loader over dir, or over the embedded sources when dir is empty.
func New(dir string) *Loader {
	if dir == "" {
		sub, err := fs.Sub(embedded, "glsl")
		if err != nil {
			panic(err) // embedded tree is fixed at build time
		}
		return &Loader{fsys: sub}
	}
	return &Loader{fsys: os.DirFS(dir)}
}

// NewFS returns a loader over an arbitrary file system.
func NewFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Source returns the named file with its #include lines expanded. Included files may not include.
func (l *Loader) Source(name string) (string, error) {
	src, err := l.read(name)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	sc := bufio.NewScanner(strings.NewReader(src))
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if !strings.HasPrefix(trimmed, includeDirective) {
			out.WriteString(text)
			out.WriteByte('\n')
			continue
		}
		inc := strings.Trim(strings.TrimSpace(strings.TrimPrefix(trimmed, includeDirective)), `"`)
		if inc == "" {
			return "", fmt.Errorf("%s:%d: empty include", name, line)
		}
		body, err := l.read(path.Join(path.Dir(name), inc))
		if err != nil {
			return "", fmt.Errorf("%s:%d: %w", name, line, err)
		}
		if strings.Contains(body, includeDirective) {
			return "", fmt.Errorf("%s:%d: nested include in %s", name, line, inc)
		}
		out.WriteString(body)
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return out.String(), nil
}

func (l *Loader) read(name string) (string, error) {
	b, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissingSource, name)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrMissingSource, name)
	}
	return string(b), nil
}

// Pair is the expanded vertex and fragment source of one program.
type Pair struct {
	Vertex   string
	Fragment string
}

// Load reads and expands a vertex and fragment source.
func (l *Loader) Load(vertex, fragment string) (Pair, error) {
	vs, err := l.Source(vertex)
	if err != nil {
		return Pair{}, err
	}
	fsrc, err := l.Source(fragment)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Vertex: vs, Fragment: fsrc}, nil
}
