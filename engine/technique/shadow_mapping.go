package technique

import (
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/layout"
	"github.com/spaghettifunk/rtdemo/engine/scene"
)

// ShadowMapSize is the edge of the square shadow map.
const ShadowMapSize = 1024

var shadowViews = []string{"Default", "Shadowed", "Caster"}

// ShadowMapping renders scene depth from the first shadow caster, then
// shades the scene comparing against that depth.
type ShadowMapping struct {
	status
	renderer   *renderer.Renderer
	depthPass  gpu.Program
	shadePass  gpu.Program
	shadowMap  gpu.Texture
	target     gpu.Framebuffer
	sampler    gpu.Sampler
	debugView  int32
	shadowBias float32
}

func NewShadowMapping(r *renderer.Renderer) *ShadowMapping {
	return &ShadowMapping{
		status:     status{name: "ShadowMapping", log: notAvailable},
		renderer:   r,
		shadowBias: 0.05,
	}
}

// shadowRasterization pushes depth away from the light to avoid acne.
func shadowRasterization() gpu.RasterizationState {
	return gpu.NewRasterizationStateBuilder().EnableDepthBias(1, 0, 2).Build()
}

func (t *ShadowMapping) Restore() (err error) {
	defer func() {
		if err != nil {
			t.Invalidate()
			t.failed(err)
		}
	}()
	dev := t.renderer.Device

	var depthPass, shadePass gpu.Program
	var shadowMap gpu.Texture
	var target gpu.Framebuffer
	var sampler gpu.Sampler
	defer depthPass.Delete()
	defer shadePass.Delete()
	defer shadowMap.Delete()
	defer target.Delete()
	defer sampler.Delete()

	if err := t.renderer.BuildVertexProgram(&depthPass, "shadow_mapping_p0.vert"); err != nil {
		return err
	}
	if err := t.renderer.BuildGraphicsProgram(&shadePass, "shadow_mapping_p1.vert", "shadow_mapping_p1.frag"); err != nil {
		return err
	}

	if !shadowMap.Gen(dev) {
		return allocErr("shadow map")
	}
	shadowMap.Storage2D(gpu.TEXTURE_2D, 1, gpu.DEPTH_COMPONENT16, ShadowMapSize, ShadowMapSize)
	if !gpu.NewFramebufferBuilder().DepthTexture(&shadowMap, 0).Build(dev, &target) {
		return incompleteErr("shadow map target")
	}

	// outside the map nothing is in shadow
	ok := gpu.NewSamplerBuilder().
		MinFilter(gpu.NEAREST).
		MagFilter(gpu.NEAREST).
		WrapS(gpu.CLAMP_TO_BORDER).
		WrapT(gpu.CLAMP_TO_BORDER).
		BorderColor(1, 1, 1, 1).
		Build(dev, &sampler)
	if !ok {
		return allocErr("shadow map sampler")
	}

	t.depthPass.Take(&depthPass)
	t.shadePass.Take(&shadePass)
	t.shadowMap.Take(&shadowMap)
	t.target.Take(&target)
	t.sampler.Take(&sampler)
	t.succeeded()
	return nil
}

func (t *ShadowMapping) Invalidate() error {
	t.sampler.Delete()
	t.target.Delete()
	t.shadowMap.Delete()
	t.depthPass.Delete()
	t.shadePass.Delete()
	t.invalidated()
	return nil
}

func (t *ShadowMapping) Update() {}

func (t *ShadowMapping) UpdateGUI() {
	ui := t.renderer.UI
	if ui.Begin("ShadowMapping") {
		ui.Combo("debug view", &t.debugView, shadowViews)
		ui.DragFloat("Bias * 100", &t.shadowBias, 0.01, -1, 1)
		t.draw(ui)
	}
	ui.End()
}

func (t *ShadowMapping) Apply(s scene.Scene) {
	if !t.depthPass.Valid() {
		return
	}
	dev := t.renderer.Device

	// shadow
	t.target.Bind(gpu.DRAW_FRAMEBUFFER)
	gpu.Viewport{Width: ShadowMapSize, Height: ShadowMapSize}.Apply(dev)
	gpu.ClearDepthOnly().Apply(dev)
	t.depthPass.Use()
	shadowRasterization().Apply(dev)
	renderer.DefaultBlend().Apply(dev)
	renderer.DepthTest().Apply(dev)
	s.Apply(scene.Shadow)
	s.Draw(scene.Opaque)

	// shading
	gpu.BindDefault(dev, gpu.DRAW_FRAMEBUFFER)
	t.renderer.Viewport().Apply(dev)
	t.shadePass.Use()
	t.shadowMap.Active(layout.TextureShadowMap, gpu.TEXTURE_2D)
	t.sampler.Bind(layout.TextureShadowMap)
	renderer.DefaultRasterization().Apply(dev)
	renderer.AlphaBlending().Apply(dev)
	renderer.DepthTest().Apply(dev)
	dev.Uniform1ui(layout.LocationDebugView, uint32(t.debugView))
	dev.Uniform1f(layout.LocationShadowBias, t.shadowBias*0.01)
	s.Apply(scene.Shade)
	s.Draw(scene.Opaque)
}
