package imguigl_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rtdemo/engine/assets/loaders"
	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/gui/imguigl"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu/gputest"
)

func newRenderer(dev *gputest.Device) *renderer.Renderer {
	shaders := loaders.NewShaderLoader(fstest.MapFS{
		"imgui.vert": {Data: []byte("#version 460\n// imgui.vert\n")},
		"imgui.frag": {Data: []byte("#version 460\n// imgui.frag\n")},
	})
	return renderer.New(dev, shaders, nil, nil, 640, 480)
}

func TestBackendLifecycle(t *testing.T) {
	dev := gputest.New()
	b, err := imguigl.New(newRenderer(dev))
	require.NoError(t, err)

	// program, two buffers, vertex array, sampler and font atlas
	assert.Equal(t, 6, dev.Live())
	assert.Zero(t, dev.LiveOf(gputest.KindShader))
	assert.Equal(t, 1, dev.Count("TexSubImage2D"))

	b.Destroy()
	assert.Zero(t, dev.Live())
}

func TestBackendCompileFailure(t *testing.T) {
	dev := gputest.New()
	dev.FailCompile = gputest.FailSourcesContaining("imgui.frag")

	_, err := imguigl.New(newRenderer(dev))
	assert.ErrorIs(t, err, core.ErrShaderCompile)
	assert.Zero(t, dev.Live())
}

func TestBackendDrawsWindow(t *testing.T) {
	dev := gputest.New()
	b, err := imguigl.New(newRenderer(dev))
	require.NoError(t, err)
	defer b.Destroy()
	dev.Reset()

	b.NewFrame(0)
	if b.Begin("stats") {
		b.Text("%d fps", 60)
		b.Button("reload")
	}
	b.End()
	b.Render()

	assert.Positive(t, dev.Count("DrawElementsBaseVertex"))
	assert.Less(t, dev.Index("Enable", 0), dev.Index("DrawElementsBaseVertex", 0))
	assert.Equal(t, "UseProgram", dev.Calls()[len(dev.Calls())-1].Op)

	uploads := dev.Find("BufferData")
	require.NotEmpty(t, uploads)
	assert.Equal(t, gpu.ARRAY_BUFFER, uploads[0].Args[0])
	assert.Equal(t, gpu.STREAM_DRAW, uploads[0].Args[2])
}
