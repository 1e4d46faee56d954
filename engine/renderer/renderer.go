// Package renderer holds what scenes and techniques share: the device, the
// asset loaders, the debug UI, the screen size and a small cache of
// full-screen geometry.
package renderer

import (
	"fmt"

	"github.com/spaghettifunk/rtdemo/engine/assets"
	"github.com/spaghettifunk/rtdemo/engine/assets/loaders"
	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/gui"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/layout"
)

// ClearColor is the backbuffer colour at the start of every frame.
var ClearColor = [4]float32{0.05, 0.05, 0.08, 1}

type Renderer struct {
	Device   gpu.Device
	Shaders  *loaders.ShaderLoader
	Importer assets.Importer
	UI       gui.UI

	width  uint32
	height uint32

	screenQuad    gpu.VertexArray
	lightQuad     gpu.VertexArray
	lightQuadData gpu.Buffer
}

func New(dev gpu.Device, shaders *loaders.ShaderLoader, importer assets.Importer, ui gui.UI, width, height uint32) *Renderer {
	if ui == nil {
		ui = gui.Nop{}
	}
	return &Renderer{
		Device:   dev,
		Shaders:  shaders,
		Importer: importer,
		UI:       ui,
		width:    width,
		height:   height,
	}
}

func (r *Renderer) ScreenSize() (uint32, uint32) {
	return r.width, r.height
}

// Resize records a new backbuffer size. Zero sizes (minimised windows) are
// ignored.
func (r *Renderer) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	if width != r.width || height != r.height {
		core.LogDebug("renderer resized to %dx%d", width, height)
	}
	r.width, r.height = width, height
}

// Viewport covers the whole backbuffer.
func (r *Renderer) Viewport() gpu.Viewport {
	return gpu.ScreenViewport(r.width, r.height)
}

// BeginFrame binds and clears the backbuffer.
func (r *Renderer) BeginFrame() {
	gpu.BindDefault(r.Device, gpu.FRAMEBUFFER)
	r.Viewport().Apply(r.Device)
	DefaultDepthStencil().Apply(r.Device)
	DefaultBlend().Apply(r.Device)
	gpu.ClearAll(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3]).Apply(r.Device)
}

// EndFrame puts the pipeline back into its default state so the overlay
// draws on the backbuffer no matter what the technique left bound.
func (r *Renderer) EndFrame() {
	gpu.BindDefault(r.Device, gpu.FRAMEBUFFER)
	r.Viewport().Apply(r.Device)
	DefaultRasterization().Apply(r.Device)
	DefaultDepthStencil().Apply(r.Device)
	r.Device.UseProgram(0)
	r.Device.BindVertexArray(0)
}

// ScreenQuad returns an attribute-less vertex array. Draw it as three
// vertices; the vertex shader derives a covering triangle from gl_VertexID.
func (r *Renderer) ScreenQuad() *gpu.VertexArray {
	if !r.screenQuad.Valid() {
		if !gpu.NewVertexArrayBuilder().Build(r.Device, &r.screenQuad) {
			core.LogError("failed to create the screen quad")
		}
	}
	return &r.screenQuad
}

// LightQuad returns a unit quad in [-1, 1] at AttribPosition, drawn as a
// four vertex triangle strip and instanced once per light.
func (r *Renderer) LightQuad() *gpu.VertexArray {
	if r.lightQuad.Valid() {
		return &r.lightQuad
	}
	corners := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	var vbo gpu.Buffer
	if !vbo.Gen(r.Device) {
		core.LogError("failed to create the light quad buffer")
		return &r.lightQuad
	}
	vbo.Storage(gpu.ARRAY_BUFFER, len(corners)*4, gpu.Bytes(corners), 0)

	ok := gpu.NewVertexArrayBuilder().
		VertexBuffer(&vbo).
		Attribute(gpu.VertexAttribute{Location: layout.AttribPosition, Size: 2, Type: gpu.FLOAT, Stride: 8}).
		Build(r.Device, &r.lightQuad)
	if !ok {
		core.LogError("failed to create the light quad")
		vbo.Delete()
		return &r.lightQuad
	}
	r.lightQuadData.Take(&vbo)
	return &r.lightQuad
}

// Shutdown releases the cached geometry.
func (r *Renderer) Shutdown() {
	r.screenQuad.Delete()
	r.lightQuad.Delete()
	r.lightQuadData.Delete()
}

// LoadShader reads and compiles one stage into dst. dst is only replaced on
// success.
func LoadShader[S gpu.Stage](r *Renderer, name string, dst *gpu.Shader[S]) error {
	src, err := r.Shaders.ReadText(name)
	if err != nil {
		return err
	}
	var shader gpu.Shader[S]
	if !shader.Gen(r.Device) {
		return fmt.Errorf("shader %s: %w", name, core.ErrAllocation)
	}
	if !shader.Compile(src) {
		info := shader.InfoLog(gpu.InfoLogLength)
		shader.Delete()
		return fmt.Errorf("%s: %w\n%s", name, core.ErrShaderCompile, info)
	}
	dst.Take(&shader)
	return nil
}

// BuildGraphicsProgram compiles and links a vertex and fragment stage into
// dst. The intermediate shaders are released either way.
func (r *Renderer) BuildGraphicsProgram(dst *gpu.Program, vert, frag string) error {
	var vs gpu.VertexShader
	var fs gpu.FragmentShader
	defer vs.Delete()
	defer fs.Delete()

	if err := LoadShader(r, vert, &vs); err != nil {
		return err
	}
	if err := LoadShader(r, frag, &fs); err != nil {
		return err
	}
	return r.link(dst, vert+"+"+frag, func(p *gpu.Program) bool { return p.LinkGraphics(&vs, &fs) })
}

// BuildVertexProgram links a program with only a vertex stage, for depth
// only passes.
func (r *Renderer) BuildVertexProgram(dst *gpu.Program, vert string) error {
	var vs gpu.VertexShader
	defer vs.Delete()

	if err := LoadShader(r, vert, &vs); err != nil {
		return err
	}
	return r.link(dst, vert, func(p *gpu.Program) bool { return p.LinkVertex(&vs) })
}

func (r *Renderer) BuildComputeProgram(dst *gpu.Program, comp string) error {
	var cs gpu.ComputeShader
	defer cs.Delete()

	if err := LoadShader(r, comp, &cs); err != nil {
		return err
	}
	return r.link(dst, comp, func(p *gpu.Program) bool { return p.LinkCompute(&cs) })
}

func (r *Renderer) link(dst *gpu.Program, name string, link func(*gpu.Program) bool) error {
	var program gpu.Program
	if !program.Gen(r.Device) {
		return fmt.Errorf("program %s: %w", name, core.ErrAllocation)
	}
	if !link(&program) {
		info := program.InfoLog(gpu.InfoLogLength)
		program.Delete()
		return fmt.Errorf("%s: %w\n%s", name, core.ErrProgramLink, info)
	}
	dst.Take(&program)
	return nil
}
