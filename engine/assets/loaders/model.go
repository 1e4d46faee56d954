package loaders

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"

	"github.com/spaghettifunk/rtdemo/engine/assets"
	"github.com/spaghettifunk/rtdemo/engine/core"
)

// OBJImporter loads Wavefront OBJ files and their material library from a
// file system. One mesh is produced per material group. Meshes with an
// emissive material also become point lights at their centre.
type OBJImporter struct {
	FS fs.FS
}

func NewOBJImporter(fsys fs.FS) *OBJImporter {
	return &OBJImporter{FS: fsys}
}

func (oi *OBJImporter) Import(name string, flags assets.ImportFlags) (*assets.SceneGraph, error) {
	data, err := fs.ReadFile(oi.FS, name)
	if err != nil {
		return nil, err
	}
	obj, err := gwob.NewObjFromReader(name, bufio.NewReader(bytes.NewReader(data)), &gwob.ObjParserOptions{
		Logger: func(msg string) { core.LogDebug("obj %s: %s", name, msg) },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	graph := &assets.SceneGraph{}
	materialIndex := map[string]uint32{}
	if obj.Mtllib != "" {
		lib := path.Join(path.Dir(name), obj.Mtllib)
		f, err := oi.FS.Open(lib)
		if err != nil {
			return nil, fmt.Errorf("failed to open material library %s: %w", lib, err)
		}
		materials, err := parseMTL(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", lib, err)
		}
		for i, m := range materials {
			materialIndex[m.Name] = uint32(i)
		}
		graph.Materials = materials
	}
	if len(graph.Materials) == 0 {
		graph.Materials = append(graph.Materials, assets.Material{
			Name:      "default",
			Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
			Shininess: 1,
			Opacity:   1,
		})
	}

	floatsPerVertex := obj.StrideSize / 4
	positionOffset := obj.StrideOffsetPosition / 4
	normalOffset := obj.StrideOffsetNormal / 4

	// generated normals are flat, so every face gets its own corners
	weld := obj.NormCoordFound || flags&assets.GenNormals == 0

	for _, g := range obj.Groups {
		if g.IndexCount < 3 {
			continue
		}
		mesh := assets.Mesh{Name: g.Name, MaterialIndex: materialIndex[g.Usemtl]}
		remap := map[int]uint32{}
		for i := g.IndexBegin; i+2 < g.IndexBegin+g.IndexCount; i += 3 {
			var face [3]uint32
			for k := 0; k < 3; k++ {
				src := obj.Indices[i+k]
				local, ok := remap[src]
				if !ok || !weld {
					local = uint32(len(mesh.Positions))
					remap[src] = local
					base := src * floatsPerVertex
					p := obj.Coord[base+positionOffset:]
					mesh.Positions = append(mesh.Positions, mgl32.Vec3{p[0], p[1], p[2]})
					if obj.NormCoordFound {
						n := obj.Coord[base+normalOffset:]
						mesh.Normals = append(mesh.Normals, mgl32.Vec3{n[0], n[1], n[2]})
					}
				}
				face[k] = local
			}
			mesh.Faces = append(mesh.Faces, face)
		}
		if !obj.NormCoordFound {
			if flags&assets.GenNormals != 0 {
				mesh.Normals = assets.GenerateNormals(mesh.Positions, mesh.Faces)
			} else {
				mesh.Normals = make([]mgl32.Vec3, len(mesh.Positions))
			}
		}
		graph.Meshes = append(graph.Meshes, mesh)

		if m := graph.Materials[mesh.MaterialIndex]; m.Emissive.Len() > 0 {
			graph.Lights = append(graph.Lights, emissiveLight(&mesh, m))
		}
	}

	if len(graph.Meshes) == 0 {
		return nil, fmt.Errorf("%s contains no triangles", name)
	}
	core.LogDebug("imported %s: %d meshes, %d materials, %d lights", name, len(graph.Meshes), len(graph.Materials), len(graph.Lights))
	return graph, nil
}

func emissiveLight(mesh *assets.Mesh, m assets.Material) assets.Light {
	var center mgl32.Vec3
	for _, p := range mesh.Positions {
		center = center.Add(p)
	}
	center = center.Mul(1 / float32(len(mesh.Positions)))

	intensity := m.Emissive.Len()
	return assets.Light{
		// nudge below the emitter so it lights the room rather than itself
		Position:  center.Sub(mgl32.Vec3{0, 0.05, 0}),
		Color:     m.Emissive.Mul(1 / intensity),
		Intensity: intensity,
		Radius:    4,
	}
}
