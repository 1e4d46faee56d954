package layout

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestRecordSizesMatchShaderBlocks(t *testing.T) {
	assert.Equal(t, uintptr(24), unsafe.Sizeof(Vertex{}))
	assert.Equal(t, uintptr(6*64+16+16), unsafe.Sizeof(Camera{}))
	assert.Equal(t, uintptr(48), unsafe.Sizeof(Material{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(PointLight{}))
	assert.Equal(t, uintptr(64), unsafe.Sizeof(ShadowCaster{}))
	assert.Equal(t, uintptr(20), unsafe.Sizeof(DrawCommand{}))
}

func TestTileCount(t *testing.T) {
	x, y := TileCount(1280, 720)
	assert.Equal(t, uint32(40), x)
	assert.Equal(t, uint32(23), y)

	x, y = TileCount(32, 1)
	assert.Equal(t, uint32(1), x)
	assert.Equal(t, uint32(1), y)
}
