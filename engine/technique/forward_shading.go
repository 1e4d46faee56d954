package technique

import (
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/scene"
)

// ForwardShading shades every opaque mesh in one pass, then blends the
// transparent ones over it.
type ForwardShading struct {
	status
	renderer *renderer.Renderer
	program  gpu.Program
}

func NewForwardShading(r *renderer.Renderer) *ForwardShading {
	return &ForwardShading{
		status:   status{name: "ForwardShading", log: notAvailable},
		renderer: r,
	}
}

func (t *ForwardShading) Restore() (err error) {
	defer func() {
		if err != nil {
			t.Invalidate()
			t.failed(err)
		}
	}()

	var program gpu.Program
	defer program.Delete()
	if err := t.renderer.BuildGraphicsProgram(&program, "forward_shading.vert", "forward_shading.frag"); err != nil {
		return err
	}

	t.program.Take(&program)
	t.succeeded()
	return nil
}

func (t *ForwardShading) Invalidate() error {
	t.program.Delete()
	t.invalidated()
	return nil
}

func (t *ForwardShading) Update() {}

func (t *ForwardShading) UpdateGUI() {
	ui := t.renderer.UI
	if ui.Begin("ForwardShading") {
		t.draw(ui)
	}
	ui.End()
}

func (t *ForwardShading) Apply(s scene.Scene) {
	if !t.program.Valid() {
		return
	}
	dev := t.renderer.Device
	gpu.BindDefault(dev, gpu.DRAW_FRAMEBUFFER)
	t.renderer.Viewport().Apply(dev)
	t.program.Use()

	renderer.DefaultRasterization().Apply(dev)
	renderer.DefaultBlend().Apply(dev)
	renderer.DepthTest().Apply(dev)
	s.Apply(scene.Shade)
	s.Draw(scene.Opaque)

	renderer.AlphaBlending().Apply(dev)
	renderer.DepthTestNoWrite().Apply(dev)
	s.Draw(scene.Transparent)
}
