// Package layout is the single source of truth for binding points and the
// memory layout of records shared between scenes, techniques and shaders.
package layout

// Uniform buffer binding points.
const (
	UniformCamera            uint32 = 0
	UniformTechniqueConstant uint32 = 15
)

// Shader storage buffer binding points.
const (
	StorageResourceIndex uint32 = 0
	StorageMaterial      uint32 = 1
	StorageLight         uint32 = 2
	StorageShadowCaster  uint32 = 3
	StorageLightGrid     uint32 = 20
	StorageLightIndex    uint32 = 21
)

// Image units.
const (
	ImageFroxelScattering uint32 = 4
	ImageFroxelLighting   uint32 = 5
)

// Texture units.
const (
	TextureGBufferDepth   uint32 = 0
	TextureGBuffer0       uint32 = 1
	TextureShadowMap      uint32 = 6
	TextureFroxelLighting uint32 = 8
)

// Explicit uniform locations.
const (
	LocationDrawID     int32 = 10
	LocationDebugView  int32 = 11
	LocationShadowBias int32 = 12
)

// Vertex attribute locations.
const (
	AttribPosition uint32 = 0
	AttribNormal   uint32 = 1
)
