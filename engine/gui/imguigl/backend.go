// Package imguigl implements gui.UI with Dear ImGui and renders its draw
// lists through the gpu handle layer.
package imguigl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	imgui "github.com/inkyblackness/imgui-go/v4"

	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/gui"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
)

// Vertex attribute and uniform slots used by imgui.vert / imgui.frag.
const (
	attribPosition   = 0
	attribUV         = 1
	attribColor      = 2
	locationProjMtx  = 0
	fontTextureUnit  = 0
	defaultDeltaTime = 1.0 / 60.0
)

// Backend owns the ImGui context and the GPU objects used to draw it.
type Backend struct {
	renderer *renderer.Renderer
	context  *imgui.Context
	io       imgui.IO

	program gpu.Program
	vbo     gpu.Buffer
	ibo     gpu.Buffer
	vao     gpu.VertexArray
	font    gpu.Texture
	sampler gpu.Sampler
}

// New creates the ImGui context and its GPU resources. On error nothing
// stays allocated.
func New(r *renderer.Renderer) (*Backend, error) {
	b := &Backend{
		renderer: r,
		context:  imgui.CreateContext(nil),
	}
	b.io = imgui.CurrentIO()
	if err := b.restore(); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

func (b *Backend) restore() error {
	dev := b.renderer.Device
	if err := b.renderer.BuildGraphicsProgram(&b.program, "imgui.vert", "imgui.frag"); err != nil {
		return err
	}
	if !b.vbo.Gen(dev) || !b.ibo.Gen(dev) {
		return fmt.Errorf("imgui buffers: %w", core.ErrAllocation)
	}

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	ok := gpu.NewVertexArrayBuilder().
		IndexBuffer(&b.ibo).
		VertexBuffer(&b.vbo).
		Attribute(gpu.VertexAttribute{Location: attribPosition, Size: 2, Type: gpu.FLOAT, Stride: int32(vertexSize), Offset: posOffset}).
		Attribute(gpu.VertexAttribute{Location: attribUV, Size: 2, Type: gpu.FLOAT, Stride: int32(vertexSize), Offset: uvOffset}).
		Attribute(gpu.VertexAttribute{Location: attribColor, Size: 4, Type: gpu.UNSIGNED_BYTE, Normalized: true, Stride: int32(vertexSize), Offset: colOffset}).
		Build(dev, &b.vao)
	if !ok {
		return fmt.Errorf("imgui vertex array: %w", core.ErrAllocation)
	}

	ok = gpu.NewSamplerBuilder().
		MinFilter(gpu.LINEAR).
		MagFilter(gpu.LINEAR).
		Wrap(gpu.CLAMP_TO_EDGE).
		Build(dev, &b.sampler)
	if !ok {
		return fmt.Errorf("imgui sampler: %w", core.ErrAllocation)
	}

	image := b.io.Fonts().TextureDataRGBA32()
	if !b.font.Gen(dev) {
		return fmt.Errorf("imgui font atlas: %w", core.ErrAllocation)
	}
	w, h := int32(image.Width), int32(image.Height)
	b.font.Storage2D(gpu.TEXTURE_2D, 1, gpu.RGBA8, w, h)
	b.font.SubImage2D(0, 0, 0, w, h, gpu.RGBA, gpu.UNSIGNED_BYTE, unsafe.Slice((*byte)(image.Pixels), image.Width*image.Height*4))
	b.io.Fonts().SetTextureID(imgui.TextureID(b.font.ID()))
	return nil
}

// Destroy releases the GPU resources and the context.
func (b *Backend) Destroy() {
	b.font.Delete()
	b.sampler.Delete()
	b.vao.Delete()
	b.ibo.Delete()
	b.vbo.Delete()
	b.program.Delete()
	if b.context != nil {
		b.context.Destroy()
		b.context = nil
	}
}

// IO is the input side of the context, fed by the platform.
func (b *Backend) IO() imgui.IO {
	return b.io
}

// WantCaptureMouse reports whether ImGui uses the mouse this frame.
func (b *Backend) WantCaptureMouse() bool {
	return b.io.WantCaptureMouse()
}

// NewFrame starts a frame the size of the renderer's backbuffer.
func (b *Backend) NewFrame(deltaTime float64) {
	if deltaTime <= 0 {
		deltaTime = defaultDeltaTime
	}
	w, h := b.renderer.ScreenSize()
	b.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})
	b.io.SetDeltaTime(float32(deltaTime))
	imgui.NewFrame()
}

// Render ends the frame and draws it over the default framebuffer.
func (b *Backend) Render() {
	imgui.Render()
	b.draw(imgui.RenderedDrawData())
}

func (b *Backend) draw(data imgui.DrawData) {
	w, h := b.renderer.ScreenSize()
	if w == 0 || h == 0 || !b.program.Valid() {
		return
	}
	dev := b.renderer.Device

	gpu.BindDefault(dev, gpu.DRAW_FRAMEBUFFER)
	b.renderer.Viewport().Apply(dev)
	renderer.NoCullRasterization().Apply(dev)
	renderer.AlphaBlending().Apply(dev)
	renderer.DefaultDepthStencil().Apply(dev)
	dev.Enable(gpu.SCISSOR_TEST)

	b.program.Use()
	proj := mgl32.Ortho2D(0, float32(w), float32(h), 0)
	dev.UniformMatrix4fv(locationProjMtx, (*[16]float32)(&proj))
	b.sampler.Bind(fontTextureUnit)
	dev.ActiveTexture(fontTextureUnit)
	b.vao.Bind()

	indexSize := imgui.IndexBufferLayout()
	indexType := gpu.UNSIGNED_SHORT
	if indexSize == 4 {
		indexType = gpu.UNSIGNED_INT
	}

	for _, list := range data.CommandLists() {
		vertices, vertexBytes := list.VertexBuffer()
		b.vbo.Data(gpu.ARRAY_BUFFER, unsafe.Slice((*byte)(vertices), vertexBytes), gpu.STREAM_DRAW)
		indices, indexBytes := list.IndexBuffer()
		b.ibo.Data(gpu.ELEMENT_ARRAY_BUFFER, unsafe.Slice((*byte)(indices), indexBytes), gpu.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			clip := cmd.ClipRect()
			dev.Scissor(int32(clip.X), int32(h)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
			dev.BindTexture(gpu.TEXTURE_2D, uint32(cmd.TextureID()))
			dev.DrawElementsBaseVertex(gpu.TRIANGLES, int32(cmd.ElementCount()), indexType, cmd.IndexOffset()*indexSize, int32(cmd.VertexOffset()))
		}
	}

	dev.Disable(gpu.SCISSOR_TEST)
	dev.BindVertexArray(0)
	dev.UseProgram(0)
}

func (b *Backend) Begin(title string) bool {
	return imgui.Begin(title)
}

func (b *Backend) End() {
	imgui.End()
}

func (b *Backend) Text(format string, args ...any) {
	imgui.Text(fmt.Sprintf(format, args...))
}

func (b *Backend) Button(label string) bool {
	return imgui.Button(label)
}

func (b *Backend) Checkbox(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

func (b *Backend) SliderFloat(label string, v *float32, min, max float32) bool {
	return imgui.SliderFloat(label, v, min, max)
}

func (b *Backend) DragFloat(label string, v *float32, speed, min, max float32) bool {
	return imgui.DragFloatV(label, v, speed, min, max, "%.3f", imgui.SliderFlagsNone)
}

// Combo shows the items in a drop-down and reports whether the user picked
// a different one.
func (b *Backend) Combo(label string, current *int32, items []string) bool {
	preview := ""
	if *current >= 0 && int(*current) < len(items) {
		preview = items[*current]
	}
	if !imgui.BeginCombo(label, preview) {
		return false
	}
	changed := false
	for i, item := range items {
		selected := int32(i) == *current
		if imgui.SelectableV(item, selected, imgui.SelectableFlagsNone, imgui.Vec2{}) && !selected {
			*current = int32(i)
			changed = true
		}
	}
	imgui.EndCombo()
	return changed
}

var _ gui.UI = (*Backend)(nil)
