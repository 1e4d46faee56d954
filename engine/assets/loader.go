package assets

import "github.com/go-gl/mathgl/mgl32"

type ImportFlags uint32

const (
	// Triangulate splits polygons into triangles.
	Triangulate ImportFlags = 1 << iota
	// GenNormals computes flat vertex normals when the source has none.
	GenNormals
)

// Importer turns a model file into a SceneGraph.
type Importer interface {
	Import(path string, flags ImportFlags) (*SceneGraph, error)
}

// SceneGraph is the flat, renderer-agnostic result of an import.
type SceneGraph struct {
	Meshes    []Mesh
	Materials []Material
	Lights    []Light
}

type Mesh struct {
	Name          string
	Positions     []mgl32.Vec3
	Normals       []mgl32.Vec3
	Faces         [][3]uint32
	MaterialIndex uint32
}

type Material struct {
	Name      string
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Emissive  mgl32.Vec3
	Shininess float32
	Opacity   float32
}

type Light struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Radius    float32
}

// VertexCount sums the vertices of every mesh.
func (g *SceneGraph) VertexCount() int {
	n := 0
	for i := range g.Meshes {
		n += len(g.Meshes[i].Positions)
	}
	return n
}

// IndexCount sums three indices per face over every mesh.
func (g *SceneGraph) IndexCount() int {
	n := 0
	for i := range g.Meshes {
		n += 3 * len(g.Meshes[i].Faces)
	}
	return n
}

// GenerateNormals averages the face normals around every vertex. On a mesh
// whose faces share no vertices the result is flat shading.
func GenerateNormals(positions []mgl32.Vec3, faces [][3]uint32) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(positions))
	for _, f := range faces {
		a, b, c := positions[f[0]], positions[f[1]], positions[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		for _, i := range f {
			normals[i] = normals[i].Add(n)
		}
	}
	for i, n := range normals {
		if l := n.Len(); l > 0 {
			normals[i] = n.Mul(1 / l)
		}
	}
	return normals
}
