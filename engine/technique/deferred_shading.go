package technique

import (
	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/layout"
	"github.com/spaghettifunk/rtdemo/engine/scene"
)

// gbufferFormats are albedo, normal, position and specular.
var gbufferFormats = [...]gpu.Enum{gpu.RGBA8, gpu.RGBA16F, gpu.RGBA16F, gpu.RGBA8}

type gbuffer struct {
	width  uint32
	height uint32
	depth  gpu.Texture
	colors [len(gbufferFormats)]gpu.Texture
	fbo    gpu.Framebuffer
}

// create (re)allocates every target at the given size. On failure the
// gbuffer is left empty.
func (g *gbuffer) create(dev gpu.Device, width, height uint32) error {
	g.delete()
	w, h := int32(width), int32(height)

	if !g.depth.Gen(dev) {
		return allocErr("gbuffer depth")
	}
	g.depth.Storage2D(gpu.TEXTURE_2D, 1, gpu.DEPTH24_STENCIL8, w, h)

	b := gpu.NewFramebufferBuilder().DepthStencilTexture(&g.depth, 0)
	for i := range g.colors {
		if !g.colors[i].Gen(dev) {
			g.delete()
			return allocErr("gbuffer colour target")
		}
		g.colors[i].Storage2D(gpu.TEXTURE_2D, 1, gbufferFormats[i], w, h)
		b.ColorTexture(uint32(i), &g.colors[i], 0)
	}
	if !b.Build(dev, &g.fbo) {
		g.delete()
		return incompleteErr("gbuffer")
	}
	g.width, g.height = width, height
	return nil
}

func (g *gbuffer) delete() {
	g.fbo.Delete()
	g.depth.Delete()
	for i := range g.colors {
		g.colors[i].Delete()
	}
	g.width, g.height = 0, 0
}

var deferredViews = []string{"Default", "Depth", "Albedo", "Normal", "Position", "Specular"}

// DeferredShading writes surface attributes into a G-buffer, then adds
// every light's contribution by drawing one screen-space quad per light.
// Transparent geometry is not drawn.
type DeferredShading struct {
	status
	renderer  *renderer.Renderer
	geometry  gpu.Program
	lighting  gpu.Program
	sampler   gpu.Sampler
	gbuffer   gbuffer
	debugView int32
}

func NewDeferredShading(r *renderer.Renderer) *DeferredShading {
	return &DeferredShading{
		status:   status{name: "DeferredShading", log: notAvailable},
		renderer: r,
	}
}

func (t *DeferredShading) Restore() (err error) {
	defer func() {
		if err != nil {
			t.Invalidate()
			t.failed(err)
		}
	}()

	var geometry, lighting gpu.Program
	var sampler gpu.Sampler
	defer geometry.Delete()
	defer lighting.Delete()
	defer sampler.Delete()

	if err := t.renderer.BuildGraphicsProgram(&geometry, "deferred_shading_p0.vert", "deferred_shading_p0.frag"); err != nil {
		return err
	}
	if err := t.renderer.BuildGraphicsProgram(&lighting, "deferred_shading_p1.vert", "deferred_shading_p1.frag"); err != nil {
		return err
	}
	ok := gpu.NewSamplerBuilder().
		MinFilter(gpu.NEAREST).
		MagFilter(gpu.NEAREST).
		Wrap(gpu.CLAMP_TO_EDGE).
		Build(t.renderer.Device, &sampler)
	if !ok {
		return allocErr("gbuffer sampler")
	}
	width, height := t.renderer.ScreenSize()
	if err := t.gbuffer.create(t.renderer.Device, width, height); err != nil {
		return err
	}

	t.geometry.Take(&geometry)
	t.lighting.Take(&lighting)
	t.sampler.Take(&sampler)
	t.succeeded()
	return nil
}

func (t *DeferredShading) Invalidate() error {
	t.geometry.Delete()
	t.lighting.Delete()
	t.sampler.Delete()
	t.gbuffer.delete()
	t.invalidated()
	return nil
}

// Update follows the backbuffer size.
func (t *DeferredShading) Update() {
	if !t.geometry.Valid() {
		return
	}
	w, h := t.renderer.ScreenSize()
	if w == t.gbuffer.width && h == t.gbuffer.height {
		return
	}
	if err := t.gbuffer.create(t.renderer.Device, w, h); err != nil {
		core.LogError("failed to resize the gbuffer: %s", err)
		t.Invalidate()
		t.log = err.Error()
	}
}

func (t *DeferredShading) UpdateGUI() {
	ui := t.renderer.UI
	if ui.Begin("DeferredShading") {
		ui.Combo("debug view", &t.debugView, deferredViews)
		t.draw(ui)
	}
	ui.End()
}

func (t *DeferredShading) Apply(s scene.Scene) {
	if !t.geometry.Valid() {
		return
	}
	dev := t.renderer.Device

	// geometry
	t.gbuffer.fbo.Bind(gpu.DRAW_FRAMEBUFFER)
	gpu.ScreenViewport(t.gbuffer.width, t.gbuffer.height).Apply(dev)
	gpu.ClearAll(0, 0, 0, 0).Apply(dev)
	t.geometry.Use()
	renderer.DefaultRasterization().Apply(dev)
	renderer.DefaultBlend().Apply(dev)
	renderer.DepthTest().Apply(dev)
	s.Apply(scene.Shade)
	s.Draw(scene.Opaque)

	// lighting
	gpu.BindDefault(dev, gpu.DRAW_FRAMEBUFFER)
	t.renderer.Viewport().Apply(dev)
	t.lighting.Use()
	t.gbuffer.depth.Active(layout.TextureGBufferDepth, gpu.TEXTURE_2D)
	t.sampler.Bind(layout.TextureGBufferDepth)
	for i := range t.gbuffer.colors {
		unit := layout.TextureGBuffer0 + uint32(i)
		t.gbuffer.colors[i].Active(unit, gpu.TEXTURE_2D)
		t.sampler.Bind(unit)
	}
	dev.Uniform1ui(layout.LocationDebugView, uint32(t.debugView))
	renderer.NoCullRasterization().Apply(dev)
	renderer.Additive().Apply(dev)
	renderer.DefaultDepthStencil().Apply(dev)
	s.Apply(scene.Light)
	s.Draw(scene.LightVolume)
}
