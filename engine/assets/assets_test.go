package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingImporter struct {
	calls int
	graph *SceneGraph
	err   error
}

func (c *countingImporter) Import(path string, flags ImportFlags) (*SceneGraph, error) {
	c.calls++
	return c.graph, c.err
}

func triangleGraph() *SceneGraph {
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	faces := [][3]uint32{{0, 1, 2}}
	return &SceneGraph{
		Meshes: []Mesh{{
			Name:      "tri",
			Positions: positions,
			Normals:   GenerateNormals(positions, faces),
			Faces:     faces,
		}},
		Materials: []Material{{Name: "m", Diffuse: mgl32.Vec3{1, 0, 0}, Opacity: 1}},
		Lights:    []Light{{Position: mgl32.Vec3{0, 2, 0}, Intensity: 1, Radius: 3}},
	}
}

func TestGenerateNormals(t *testing.T) {
	g := triangleGraph()
	for _, n := range g.Meshes[0].Normals {
		assert.True(t, n.ApproxEqual(mgl32.Vec3{0, 0, 1}))
	}
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.IndexCount())
}

func TestCachedImporterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(src, []byte("v 0 0 0"), 0o644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(src, past, past))

	inner := &countingImporter{graph: triangleGraph()}
	ci := NewCachedImporter(inner, filepath.Join(dir, "cache"))

	first, err := ci.Import(src, GenNormals)
	require.NoError(t, err)
	second, err := ci.Import(src, GenNormals)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first, second)

	// different flags use a different cache entry
	_, err = ci.Import(src, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedImporterStaleCache(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(src, []byte("v 0 0 0"), 0o644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(src, past, past))

	inner := &countingImporter{graph: triangleGraph()}
	ci := NewCachedImporter(inner, filepath.Join(dir, "cache"))
	_, err := ci.Import(src, 0)
	require.NoError(t, err)

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(src, future, future))
	_, err = ci.Import(src, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedImporterPropagatesErrors(t *testing.T) {
	inner := &countingImporter{err: errors.New("boom")}
	ci := NewCachedImporter(inner, t.TempDir())
	ci.Stat = func(string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }

	_, err := ci.Import("missing.obj", 0)
	assert.EqualError(t, err, "boom")
}

func TestCachedImporterDisabled(t *testing.T) {
	inner := &countingImporter{graph: triangleGraph()}
	ci := NewCachedImporter(inner, "")
	_, _ = ci.Import("a.obj", 0)
	_, _ = ci.Import("a.obj", 0)
	assert.Equal(t, 2, inner.calls)
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, AssetTypeShader, TypeOf("shaders/forward.frag"))
	assert.Equal(t, AssetTypeShader, TypeOf("a/b.comp"))
	assert.Equal(t, AssetTypeModel, TypeOf("box.obj"))
	assert.Equal(t, AssetTypeMaterial, TypeOf("box.mtl"))
	assert.Equal(t, AssetTypeNone, TypeOf("notes.txt"))
}

func TestWatcherReportsShaderWrites(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "tiled")
	require.NoError(t, os.Mkdir(sub, 0o755))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.AddRecursive(dir))

	target := filepath.Join(sub, "light_culling.comp")
	require.NoError(t, os.WriteFile(target, []byte("#version 460"), 0o644))

	select {
	case c := <-w.Changes():
		assert.Equal(t, filepath.ToSlash(target), c.Path)
		assert.Equal(t, AssetTypeShader, c.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Error(t, w.AddRecursive(t.TempDir()))

	_, open := <-w.Changes()
	assert.False(t, open)
}
