package gpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu/gputest"
)

func TestVertexArrayBuilderReplaysBindings(t *testing.T) {
	dev := gputest.New()

	var vbo, ibo gpu.Buffer
	require.True(t, vbo.Gen(dev))
	require.True(t, ibo.Gen(dev))
	dev.Reset()

	var vao gpu.VertexArray
	ok := gpu.NewVertexArrayBuilder().
		IndexBuffer(&ibo).
		VertexBuffer(&vbo).
		Attribute(gpu.VertexAttribute{Location: 0, Size: 3, Type: gpu.FLOAT, Stride: 24, Offset: 0}).
		Attribute(gpu.VertexAttribute{Location: 1, Size: 3, Type: gpu.FLOAT, Stride: 24, Offset: 12, Divisor: 1}).
		Build(dev, &vao)
	require.True(t, ok)
	assert.True(t, vao.Valid())

	assert.Equal(t, []string{
		"Genvertex_array",
		"BindVertexArray",
		"BindBuffer",
		"BindBuffer",
		"EnableVertexAttribArray",
		"VertexAttribPointer",
		"EnableVertexAttribArray",
		"VertexAttribPointer",
		"VertexAttribDivisor",
		"BindVertexArray",
		"BindBuffer",
	}, dev.Ops())
	assert.Equal(t, []any{gpu.ELEMENT_ARRAY_BUFFER, ibo.ID()}, dev.Calls()[2].Args)
	assert.Equal(t, []any{uint32(0)}, dev.Calls()[9].Args)
}

func TestVertexArrayBuilderRejectsAttributeWithoutSource(t *testing.T) {
	dev := gputest.New()

	var vao gpu.VertexArray
	ok := gpu.NewVertexArrayBuilder().
		Attribute(gpu.VertexAttribute{Location: 0, Size: 3, Type: gpu.FLOAT}).
		Build(dev, &vao)
	assert.False(t, ok)
	assert.Zero(t, dev.Live())
}

func TestVertexArrayBuilderWithoutAttributes(t *testing.T) {
	dev := gputest.New()

	var vao gpu.VertexArray
	require.True(t, gpu.NewVertexArrayBuilder().Build(dev, &vao))
	assert.Equal(t, 1, dev.LiveOf(gputest.KindVertexArray))
}

func TestFramebufferBuilderDrawBuffers(t *testing.T) {
	dev := gputest.New()

	var depth, c0, c2 gpu.Texture
	require.True(t, depth.Gen(dev))
	require.True(t, c0.Gen(dev))
	require.True(t, c2.Gen(dev))

	b := gpu.NewFramebufferBuilder().
		DepthStencilTexture(&depth, 0).
		ColorTexture(0, &c0, 0).
		ColorTexture(2, &c2, 0)
	assert.Equal(t, []gpu.Enum{gpu.COLOR_ATTACHMENT0, gpu.NONE, gpu.COLOR_ATTACHMENT0 + 2}, b.DrawBuffers())

	var fbo gpu.Framebuffer
	require.True(t, b.Build(dev, &fbo))
	assert.True(t, fbo.Valid())

	draw := dev.Find("DrawBuffers")
	require.Len(t, draw, 1)
	assert.Equal(t, b.DrawBuffers(), draw[0].Args[0])

	binds := dev.Find("BindFramebuffer")
	require.Len(t, binds, 2)
	assert.Equal(t, uint32(0), binds[1].Args[1])
}

func TestFramebufferBuilderDepthOnly(t *testing.T) {
	dev := gputest.New()

	var depth gpu.Texture
	require.True(t, depth.Gen(dev))

	b := gpu.NewFramebufferBuilder().DepthTexture(&depth, 0)
	assert.Equal(t, []gpu.Enum{gpu.NONE}, b.DrawBuffers())

	var fbo gpu.Framebuffer
	assert.True(t, b.Build(dev, &fbo))
}

func TestFramebufferBuilderLayerAndFace(t *testing.T) {
	dev := gputest.New()

	var arr, cube gpu.Texture
	require.True(t, arr.Gen(dev))
	require.True(t, cube.Gen(dev))

	var fbo gpu.Framebuffer
	ok := gpu.NewFramebufferBuilder().
		DepthTextureLayer(&arr, 0, 3).
		ColorTexture2D(0, gpu.TEXTURE_CUBE_MAP_POSITIVE_X+1, &cube, 1).
		Build(dev, &fbo)
	require.True(t, ok)

	layer := dev.Find("FramebufferTextureLayer")
	require.Len(t, layer, 1)
	assert.Equal(t, []any{gpu.DEPTH_ATTACHMENT, arr.ID(), int32(0), int32(3)}, layer[0].Args)

	face := dev.Find("FramebufferTexture2D")
	require.Len(t, face, 1)
	assert.Equal(t, []any{gpu.COLOR_ATTACHMENT0, gpu.TEXTURE_CUBE_MAP_POSITIVE_X + 1, cube.ID(), int32(1)}, face[0].Args)
}

func TestFramebufferBuilderIncompleteReleasesObject(t *testing.T) {
	dev := gputest.New()
	dev.Incomplete = true

	var color gpu.Texture
	require.True(t, color.Gen(dev))

	var fbo gpu.Framebuffer
	assert.False(t, gpu.NewFramebufferBuilder().ColorTexture(0, &color, 0).Build(dev, &fbo))
	assert.False(t, fbo.Valid())
	assert.Zero(t, dev.LiveOf(gputest.KindFramebuffer))
}

func TestFramebufferBuilderRejectsOutOfRangeSlot(t *testing.T) {
	dev := gputest.New()

	var color gpu.Texture
	require.True(t, color.Gen(dev))

	var fbo gpu.Framebuffer
	assert.False(t, gpu.NewFramebufferBuilder().ColorTexture(gpu.MaxColorAttachments, &color, 0).Build(dev, &fbo))
	assert.Zero(t, dev.LiveOf(gputest.KindFramebuffer))
}

func TestFramebufferBuildReplacesPreviousTarget(t *testing.T) {
	dev := gputest.New()

	var depth gpu.Texture
	require.True(t, depth.Gen(dev))

	var fbo gpu.Framebuffer
	require.True(t, gpu.NewFramebufferBuilder().DepthTexture(&depth, 0).Build(dev, &fbo))
	first := fbo.ID()
	require.True(t, gpu.NewFramebufferBuilder().DepthTexture(&depth, 0).Build(dev, &fbo))
	assert.Equal(t, 1, dev.DestroyCount(gputest.KindFramebuffer, first))
	assert.Equal(t, 1, dev.LiveOf(gputest.KindFramebuffer))
}

func TestSamplerBuilder(t *testing.T) {
	dev := gputest.New()

	var s gpu.Sampler
	ok := gpu.NewSamplerBuilder().
		MinFilter(gpu.LINEAR).
		MagFilter(gpu.LINEAR).
		Wrap(gpu.CLAMP_TO_BORDER).
		BorderColor(1, 1, 1, 1).
		Build(dev, &s)
	require.True(t, ok)

	assert.Equal(t, 5, dev.Count("SamplerParameteri"))
	border := dev.Find("SamplerParameterfv")
	require.Len(t, border, 1)
	assert.Equal(t, []any{s.ID(), gpu.TEXTURE_BORDER_COLOR, []float32{1, 1, 1, 1}}, border[0].Args)
}
