package technique

import (
	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/layout"
	"github.com/spaghettifunk/rtdemo/engine/scene"
)

// gridCell is one tile's slice of the light index list.
type gridCell struct {
	Offset uint32
	Count  uint32
}

var tiledViews = []string{"Default", "Position", "Normal", "Ambient", "Diffuse", "Specular", "SpecularPower", "TileIndex"}

// TiledForwardShading lays down depth, assigns lights to screen tiles in a
// compute pass and then shades each fragment with its tile's lights only.
type TiledForwardShading struct {
	status
	renderer   *renderer.Renderer
	depthPass  gpu.Program
	cullPass   gpu.Program
	shadePass  gpu.Program
	lightGrid  gpu.Buffer
	lightIndex gpu.Buffer
	tilesX     uint32
	tilesY     uint32
	debugView  int32
}

func NewTiledForwardShading(r *renderer.Renderer) *TiledForwardShading {
	return &TiledForwardShading{
		status:   status{name: "TiledForwardShading", log: notAvailable},
		renderer: r,
	}
}

// Tiles is the size of the light grid, zero while invalid.
func (t *TiledForwardShading) Tiles() (uint32, uint32) {
	return t.tilesX, t.tilesY
}

func (t *TiledForwardShading) Restore() (err error) {
	defer func() {
		if err != nil {
			t.Invalidate()
			t.failed(err)
		}
	}()

	if err := t.renderer.BuildGraphicsProgram(&t.depthPass, "tiled_forward_shading_p0.vert", "tiled_forward_shading_p0.frag"); err != nil {
		return err
	}
	if err := t.renderer.BuildComputeProgram(&t.cullPass, "tiled_forward_shading_p1.comp"); err != nil {
		return err
	}
	if err := t.renderer.BuildGraphicsProgram(&t.shadePass, "tiled_forward_shading_p2.vert", "tiled_forward_shading_p2.frag"); err != nil {
		return err
	}
	if err := t.createGrid(); err != nil {
		return err
	}
	t.succeeded()
	return nil
}

// createGrid sizes the tile buffers for the current backbuffer.
func (t *TiledForwardShading) createGrid() error {
	t.lightGrid.Delete()
	t.lightIndex.Delete()
	t.tilesX, t.tilesY = 0, 0

	dev := t.renderer.Device
	tilesX, tilesY := layout.TileCount(t.renderer.ScreenSize())
	tiles := int(tilesX * tilesY)

	if !t.lightGrid.Gen(dev) {
		return allocErr("light grid")
	}
	t.lightGrid.Storage(gpu.SHADER_STORAGE_BUFFER, tiles*gpu.SizeOf[gridCell](), nil, 0)
	if !t.lightIndex.Gen(dev) {
		return allocErr("light index list")
	}
	t.lightIndex.Storage(gpu.SHADER_STORAGE_BUFFER, tiles*layout.MaxLightsPerTile*4, nil, 0)

	t.tilesX, t.tilesY = tilesX, tilesY
	return nil
}

func (t *TiledForwardShading) Invalidate() error {
	t.depthPass.Delete()
	t.cullPass.Delete()
	t.shadePass.Delete()
	t.lightGrid.Delete()
	t.lightIndex.Delete()
	t.tilesX, t.tilesY = 0, 0
	t.invalidated()
	return nil
}

func (t *TiledForwardShading) Update() {
	if !t.lightGrid.Valid() {
		return
	}
	x, y := layout.TileCount(t.renderer.ScreenSize())
	if x == t.tilesX && y == t.tilesY {
		return
	}
	if err := t.createGrid(); err != nil {
		core.LogError("failed to resize the light grid: %s", err)
		t.Invalidate()
		t.log = err.Error()
	}
}

func (t *TiledForwardShading) UpdateGUI() {
	ui := t.renderer.UI
	if ui.Begin("TiledForwardShading") {
		ui.Combo("debug view", &t.debugView, tiledViews)
		ui.Text("%dx%d tiles", t.tilesX, t.tilesY)
		t.draw(ui)
	}
	ui.End()
}

func (t *TiledForwardShading) Apply(s scene.Scene) {
	if !t.lightGrid.Valid() {
		return
	}
	dev := t.renderer.Device
	gpu.BindDefault(dev, gpu.DRAW_FRAMEBUFFER)
	t.renderer.Viewport().Apply(dev)

	// pre-z
	t.depthPass.Use()
	renderer.DefaultRasterization().Apply(dev)
	gpu.NewColorBlendStateBuilder().WriteMask(0, false, false, false, false).Build().Apply(dev)
	renderer.DepthTest().Apply(dev)
	s.Apply(scene.NoShade)
	s.Draw(scene.Opaque)

	// light assignment
	t.cullPass.Use()
	t.lightGrid.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageLightGrid)
	t.lightIndex.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageLightIndex)
	s.Apply(scene.Light)
	dev.DispatchCompute(t.tilesX, t.tilesY, 1)
	dev.MemoryBarrier(gpu.SHADER_STORAGE_BARRIER_BIT)

	// shading
	t.shadePass.Use()
	dev.Uniform1ui(layout.LocationDebugView, uint32(t.debugView))
	t.lightGrid.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageLightGrid)
	t.lightIndex.BindBase(gpu.SHADER_STORAGE_BUFFER, layout.StorageLightIndex)
	renderer.DefaultRasterization().Apply(dev)
	renderer.AlphaBlending().Apply(dev)
	renderer.DepthTestNoWrite().Apply(dev)
	s.Apply(scene.Shade)
	s.Draw(scene.Opaque)
}
