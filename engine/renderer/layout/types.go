package layout

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the interleaved scene vertex format.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Camera mirrors the std140 camera block.
type Camera struct {
	ViewProj    mgl32.Mat4
	View        mgl32.Mat4
	Proj        mgl32.Mat4
	ViewProjInv mgl32.Mat4
	ViewInv     mgl32.Mat4
	ProjInv     mgl32.Mat4
	// Range is (width, height, near, far).
	Range     mgl32.Vec4
	PositionW mgl32.Vec3
	_         float32
}

type ResourceIndex struct {
	MaterialIndex uint32
}

type Material struct {
	Ambient       mgl32.Vec3
	_             float32
	Diffuse       mgl32.Vec3
	_             float32
	Specular      mgl32.Vec3
	SpecularPower float32
}

type PointLight struct {
	PositionW mgl32.Vec3
	Radius    float32
	Color     mgl32.Vec3
	Intensity float32
}

type ShadowCaster struct {
	ViewProj mgl32.Mat4
}

// DrawCommand matches DrawElementsIndirectCommand.
type DrawCommand struct {
	Count         uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    int32
	BaseInstance  uint32
}

// TileSize is the edge of one screen tile in the tiled light assignment.
const TileSize = 32

// MaxLightsPerTile bounds the per-tile light index list.
const MaxLightsPerTile = 200

// TileCount returns the tile grid dimensions covering width x height.
func TileCount(width, height uint32) (uint32, uint32) {
	return (width + TileSize - 1) / TileSize, (height + TileSize - 1) / TileSize
}
