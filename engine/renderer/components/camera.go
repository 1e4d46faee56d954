package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/rtdemo/engine/renderer/layout"
)

/**
 * @brief An orbiting perspective camera. It looks at Target from
 * Distance away, rotated by Yaw and Pitch (radians).
 */
type Camera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
	/** @brief Vertical field of view in degrees. */
	FovY float32
	Near float32
	Far  float32
	/** @brief Internal flag used to determine when the matrices need to be rebuilt. */
	IsDirty bool

	width, height uint32
	block         layout.Camera
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Target = mgl32.Vec3{0, 1, 0}
	c.Distance = 3.5
	c.Yaw = 0
	c.Pitch = 0
	c.FovY = 60
	c.Near = 0.1
	c.Far = 100
	c.width, c.height = 1, 1
	c.IsDirty = true
}

func (c *Camera) SetViewport(width, height uint32) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.IsDirty = true
}

func (c *Camera) SetTarget(target mgl32.Vec3) {
	c.Target = target
	c.IsDirty = true
}

func (c *Camera) Orbit(yaw, pitch float32) {
	c.Yaw += yaw
	c.Pitch += pitch

	// Clamp to avoid Gimbal lock.
	limit := float32(1.55334306) // 89 degrees
	c.Pitch = mgl32.Clamp(c.Pitch, -limit, limit)
	c.IsDirty = true
}

func (c *Camera) Zoom(amount float32) {
	c.Distance = mgl32.Clamp(c.Distance+amount, c.Near*2, c.Far/2)
	c.IsDirty = true
}

func (c *Camera) Position() mgl32.Vec3 {
	cp, sp := float32(math.Cos(float64(c.Pitch))), float32(math.Sin(float64(c.Pitch)))
	cy, sy := float32(math.Cos(float64(c.Yaw))), float32(math.Sin(float64(c.Yaw)))
	offset := mgl32.Vec3{cp * sy, sp, cp * cy}.Mul(c.Distance)
	return c.Target.Add(offset)
}

// Block returns the uniform block contents, rebuilding them when dirty.
func (c *Camera) Block() *layout.Camera {
	if !c.IsDirty {
		return &c.block
	}
	pos := c.Position()
	view := mgl32.LookAtV(pos, c.Target, mgl32.Vec3{0, 1, 0})
	aspect := float32(c.width) / float32(c.height)
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
	viewProj := proj.Mul4(view)

	c.block = layout.Camera{
		ViewProj:    viewProj,
		View:        view,
		Proj:        proj,
		ViewProjInv: viewProj.Inv(),
		ViewInv:     view.Inv(),
		ProjInv:     proj.Inv(),
		Range:       mgl32.Vec4{float32(c.width), float32(c.height), c.Near, c.Far},
		PositionW:   pos,
	}
	c.IsDirty = false
	return &c.block
}
