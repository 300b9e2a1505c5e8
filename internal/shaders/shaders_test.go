package shaders

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)

func programSources(t *testing.T) []string {
	t.Helper()
	var names []string
	err := fs.WalkDir(embedded, "glsl", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasSuffix(p, ".vs") || strings.HasSuffix(p, ".fs") {
			names = append(names, strings.TrimPrefix(p, "glsl/"))
		}
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, names)
	return names
}

func TestEmbeddedSourcesExpand(t *testing.T) {
	l := New("")
	for _, name := range programSources(t) {
		src, err := l.Source(name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 330"), name)
		assert.NotContains(t, src, includeDirective, name)
	}
}

// An unused uniform is stripped by the GLSL compiler and then silently ignored on write.
func TestEveryDeclaredUniformIsUsed(t *testing.T) {
	l := New("")
	for _, name := range programSources(t) {
		src, err := l.Source(name)
		require.NoError(t, err)
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			use := regexp.MustCompile(`\b` + m[1] + `\b`)
			assert.GreaterOrEqual(t, len(use.FindAllStringIndex(src, -1)), 2, "%s: uniform %s declared but unused", name, m[1])
		}
	}
}

func TestMissingAndEmptySources(t *testing.T) {
	l := NewFS(fstest.MapFS{
		"empty.fs":   {Data: []byte("  \n")},
		"bad_inc.fs": {Data: []byte("#version 330\n#include \"nope.glsl\"\n")},
		"nested.fs":  {Data: []byte("#include \"a.glsl\"\n")},
		"a.glsl":     {Data: []byte("#include \"b.glsl\"\n")},
		"ok.vs":      {Data: []byte("#version 330\nvoid main() {}\n")},
	})

	_, err := l.Source("missing.fs")
	assert.ErrorIs(t, err, ErrMissingSource)

	_, err = l.Source("empty.fs")
	assert.ErrorIs(t, err, ErrMissingSource)

	_, err = l.Source("bad_inc.fs")
	assert.ErrorIs(t, err, ErrMissingSource)
	assert.ErrorContains(t, err, "bad_inc.fs:2")

	_, err = l.Source("nested.fs")
	assert.ErrorContains(t, err, "nested include")

	_, err = l.Load("ok.vs", "missing.fs")
	assert.ErrorIs(t, err, ErrMissingSource)

	p, err := l.Load("ok.vs", "ok.vs")
	require.NoError(t, err)
	assert.Equal(t, p.Vertex, p.Fragment)
}

func TestIncludeIsSpliced(t *testing.T) {
	l := NewFS(fstest.MapFS{
		"main.fs":  {Data: []byte("#version 330\n  #include \"lib.glsl\"\nvoid main() {}\n")},
		"lib.glsl": {Data: []byte("float f() { return 1.0; }\n")},
	})
	src, err := l.Source("main.fs")
	require.NoError(t, err)
	assert.Equal(t, "#version 330\nfloat f() { return 1.0; }\nvoid main() {}\n", src)
}

func TestDirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	_, err := l.Source("lit.vs")
	assert.ErrorIs(t, err, ErrMissingSource)
}
