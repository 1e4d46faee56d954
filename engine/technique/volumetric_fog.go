package technique

import (
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/layout"
	"github.com/spaghettifunk/rtdemo/engine/scene"
)

// Froxel grid resolution. The compute shaders run 8x8 work groups.
const (
	FroxelsX     = 64
	FroxelsY     = 64
	FroxelsZ     = 64
	froxelGroupX = 8
	froxelGroupY = 8
)

// fogConstant mirrors the std140 block at UniformTechniqueConstant.
type fogConstant struct {
	FroxelCount [3]uint32
	Mode        uint32
	DepthScale  float32
	DepthOffset float32
	FogHeight   float32
	_           float32
}

var fogViews = []string{"Default", "Position", "Normal", "Ambient", "Diffuse", "Specular", "SpecularPower", "VTexCoord", "Scattering", "Transmittance"}

const froxelBarrier = gpu.SHADER_IMAGE_ACCESS_BARRIER_BIT | gpu.TEXTURE_FETCH_BARRIER_BIT

// VolumetricFog voxelises participating media into a froxel volume,
// integrates in-scattered light along each view ray and applies the result
// while shading.
type VolumetricFog struct {
	status
	renderer    *renderer.Renderer
	scatterPass gpu.Program
	lightPass   gpu.Program
	shadePass   gpu.Program
	scattering  gpu.Texture
	lighting    gpu.Texture
	sampler     gpu.Sampler
	constant    gpu.Buffer

	mode        int32
	depthScale  float32
	depthOffset float32
	fogHeight   float32
}

func NewVolumetricFog(r *renderer.Renderer) *VolumetricFog {
	t := &VolumetricFog{
		status:   status{name: "VolumetricFog", log: notAvailable},
		renderer: r,
	}
	t.resetConstants()
	return t
}

func (t *VolumetricFog) resetConstants() {
	t.depthScale = 10
	t.depthOffset = 1
	t.fogHeight = 1
}

func (t *VolumetricFog) Restore() (err error) {
	defer func() {
		if err != nil {
			t.Invalidate()
			t.failed(err)
		}
	}()
	dev := t.renderer.Device

	if err := t.renderer.BuildComputeProgram(&t.scatterPass, "volumetric_fog/p0.comp"); err != nil {
		return err
	}
	if err := t.renderer.BuildComputeProgram(&t.lightPass, "volumetric_fog/p1.comp"); err != nil {
		return err
	}
	if err := t.renderer.BuildGraphicsProgram(&t.shadePass, "volumetric_fog/p2.vert", "volumetric_fog/p2.frag"); err != nil {
		return err
	}

	if !t.constant.Gen(dev) {
		return allocErr("fog constants")
	}
	t.constant.Storage(gpu.UNIFORM_BUFFER, gpu.SizeOf[fogConstant](), nil, gpu.DYNAMIC_STORAGE_BIT)

	for _, tex := range []*gpu.Texture{&t.scattering, &t.lighting} {
		if !tex.Gen(dev) {
			return allocErr("froxel volume")
		}
		tex.Storage3D(gpu.TEXTURE_3D, 1, gpu.RGBA32F, FroxelsX, FroxelsY, FroxelsZ)
	}

	ok := gpu.NewSamplerBuilder().
		MinFilter(gpu.LINEAR).
		MagFilter(gpu.LINEAR).
		Wrap(gpu.CLAMP_TO_EDGE).
		Build(dev, &t.sampler)
	if !ok {
		return allocErr("froxel sampler")
	}

	t.resetConstants()
	t.succeeded()
	return nil
}

func (t *VolumetricFog) Invalidate() error {
	t.scatterPass.Delete()
	t.lightPass.Delete()
	t.shadePass.Delete()
	t.scattering.Delete()
	t.lighting.Delete()
	t.sampler.Delete()
	t.constant.Delete()
	t.invalidated()
	return nil
}

// Update uploads the panel values.
func (t *VolumetricFog) Update() {
	if !t.constant.Valid() {
		return
	}
	c := fogConstant{
		FroxelCount: [3]uint32{FroxelsX, FroxelsY, FroxelsZ},
		Mode:        uint32(t.mode),
		DepthScale:  t.depthScale,
		DepthOffset: t.depthOffset,
		FogHeight:   t.fogHeight,
	}
	t.constant.SubData(gpu.UNIFORM_BUFFER, 0, gpu.BytesOf(&c))
}

func (t *VolumetricFog) UpdateGUI() {
	ui := t.renderer.UI
	if ui.Begin("VolumetricFog") {
		ui.Combo("debug view", &t.mode, fogViews)
		ui.SliderFloat("depth scale", &t.depthScale, 1, 100)
		ui.SliderFloat("depth offset", &t.depthOffset, 0, 100)
		ui.SliderFloat("fog height", &t.fogHeight, -10, 10)
		t.draw(ui)
	}
	ui.End()
}

func (t *VolumetricFog) Apply(s scene.Scene) {
	if !t.constant.Valid() {
		return
	}
	dev := t.renderer.Device

	// voxelisation
	t.scatterPass.Use()
	t.constant.BindBase(gpu.UNIFORM_BUFFER, layout.UniformTechniqueConstant)
	t.scattering.BindImage(layout.ImageFroxelScattering, gpu.WRITE_ONLY, gpu.RGBA32F)
	s.Apply(scene.NoShade)
	dev.DispatchCompute(FroxelsX/froxelGroupX, FroxelsY/froxelGroupY, FroxelsZ)
	dev.MemoryBarrier(froxelBarrier)

	// in-scattering, accumulated front to back per column
	t.lightPass.Use()
	t.constant.BindBase(gpu.UNIFORM_BUFFER, layout.UniformTechniqueConstant)
	t.scattering.BindImage(layout.ImageFroxelScattering, gpu.READ_ONLY, gpu.RGBA32F)
	t.lighting.BindImage(layout.ImageFroxelLighting, gpu.WRITE_ONLY, gpu.RGBA32F)
	s.Apply(scene.Light)
	dev.DispatchCompute(FroxelsX/froxelGroupX, FroxelsY/froxelGroupY, 1)
	dev.MemoryBarrier(froxelBarrier)

	// shading
	gpu.BindDefault(dev, gpu.DRAW_FRAMEBUFFER)
	t.renderer.Viewport().Apply(dev)
	t.shadePass.Use()
	renderer.DefaultRasterization().Apply(dev)
	renderer.AlphaBlending().Apply(dev)
	renderer.DepthTest().Apply(dev)
	t.constant.BindBase(gpu.UNIFORM_BUFFER, layout.UniformTechniqueConstant)
	t.lighting.Active(layout.TextureFroxelLighting, gpu.TEXTURE_3D)
	t.sampler.Bind(layout.TextureFroxelLighting)
	s.Apply(scene.Shade)
	s.Draw(scene.Opaque)
}
