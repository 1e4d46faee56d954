package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaultLooksDownNegativeZ(t *testing.T) {
	c := NewCamera()
	c.SetViewport(1280, 720)

	block := c.Block()
	assert.False(t, c.IsDirty)
	assert.True(t, block.PositionW.ApproxEqual(mgl32.Vec3{0, 1, 3.5}))
	assert.Equal(t, mgl32.Vec4{1280, 720, 0.1, 100}, block.Range)

	// the target projects to the centre of the screen
	clip := block.ViewProj.Mul4x1(c.Target.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	assert.InDelta(t, 0, ndc.X(), 1e-5)
	assert.InDelta(t, 0, ndc.Y(), 1e-5)
}

func TestCameraInversesAreConsistent(t *testing.T) {
	c := NewCamera()
	c.Orbit(0.7, 0.3)
	block := c.Block()

	id := block.ViewProj.Mul4(block.ViewProjInv)
	assert.True(t, id.ApproxEqualThreshold(mgl32.Ident4(), 1e-4))
}

func TestCameraPitchIsClamped(t *testing.T) {
	c := NewCamera()
	c.Orbit(0, 10)
	assert.InDelta(t, 1.55334306, c.Pitch, 1e-6)
	c.Orbit(0, -20)
	assert.InDelta(t, -1.55334306, c.Pitch, 1e-6)
}

func TestCameraDirtyTracking(t *testing.T) {
	c := NewCamera()
	c.Block()
	c.SetViewport(1, 1)
	assert.False(t, c.IsDirty)
	c.Zoom(1)
	assert.True(t, c.IsDirty)
}
