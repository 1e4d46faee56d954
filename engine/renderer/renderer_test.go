package renderer_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rtdemo/engine/assets/loaders"
	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/gui/guitest"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu/gputest"
)

func newRenderer(t *testing.T) (*renderer.Renderer, *gputest.Device) {
	t.Helper()
	shaders := loaders.NewShaderLoader(fstest.MapFS{
		"shaders/mesh.vert":  {Data: []byte("#version 460\n// mesh vertex\n")},
		"shaders/mesh.frag":  {Data: []byte("#version 460\n// mesh fragment\n")},
		"shaders/cull.comp":  {Data: []byte("#version 460\n// culling\n")},
		"shaders/depth.vert": {Data: []byte("#version 460\n// depth\n")},
	})
	shaders.SetRoot("shaders")
	dev := gputest.New()
	return renderer.New(dev, shaders, nil, guitest.New(), 1280, 720), dev
}

func TestBuildGraphicsProgramReleasesStages(t *testing.T) {
	r, dev := newRenderer(t)

	var program gpu.Program
	require.NoError(t, r.BuildGraphicsProgram(&program, "mesh.vert", "mesh.frag"))
	assert.True(t, program.Valid())
	assert.Equal(t, 1, dev.Live())
	assert.Equal(t, 1, dev.LiveOf(gputest.KindProgram))
	assert.Equal(t, 2, dev.Count("Deleteshader"))
}

func TestBuildProgramsForEveryStageCombination(t *testing.T) {
	r, dev := newRenderer(t)

	var depth, cull gpu.Program
	require.NoError(t, r.BuildVertexProgram(&depth, "depth.vert"))
	require.NoError(t, r.BuildComputeProgram(&cull, "cull.comp"))
	assert.Equal(t, 2, dev.Live())
}

func TestBuildProgramCompileFailure(t *testing.T) {
	r, dev := newRenderer(t)
	dev.FailCompile = gputest.FailSourcesContaining("mesh fragment")

	var program gpu.Program
	err := r.BuildGraphicsProgram(&program, "mesh.vert", "mesh.frag")
	require.ErrorIs(t, err, core.ErrShaderCompile)
	assert.Contains(t, err.Error(), "mesh.frag")
	assert.Contains(t, err.Error(), dev.CompileLog)
	assert.False(t, program.Valid())
	assert.Zero(t, dev.Live())
}

func TestBuildProgramLinkFailureKeepsPrevious(t *testing.T) {
	r, dev := newRenderer(t)

	var program gpu.Program
	require.NoError(t, r.BuildGraphicsProgram(&program, "mesh.vert", "mesh.frag"))
	old := program.ID()

	dev.FailLink = true
	err := r.BuildGraphicsProgram(&program, "mesh.vert", "mesh.frag")
	require.ErrorIs(t, err, core.ErrProgramLink)
	assert.Equal(t, old, program.ID())
	assert.Equal(t, 1, dev.Live())
}

func TestBuildProgramReplacesPrevious(t *testing.T) {
	r, dev := newRenderer(t)

	var program gpu.Program
	require.NoError(t, r.BuildComputeProgram(&program, "cull.comp"))
	old := program.ID()
	require.NoError(t, r.BuildComputeProgram(&program, "cull.comp"))

	assert.NotEqual(t, old, program.ID())
	assert.Equal(t, 1, dev.DestroyCount(gputest.KindProgram, old))
	assert.Equal(t, 1, dev.Live())
}

func TestBuildProgramMissingSource(t *testing.T) {
	r, dev := newRenderer(t)

	var program gpu.Program
	assert.Error(t, r.BuildGraphicsProgram(&program, "mesh.vert", "missing.frag"))
	assert.Zero(t, dev.Live())
}

func TestBuildProgramAllocationFailure(t *testing.T) {
	r, dev := newRenderer(t)
	dev.FailAlloc[gputest.KindProgram] = true

	var program gpu.Program
	assert.ErrorIs(t, r.BuildGraphicsProgram(&program, "mesh.vert", "mesh.frag"), core.ErrAllocation)
	assert.Zero(t, dev.Live())
}

func TestSharedQuadsAreLazyAndCached(t *testing.T) {
	r, dev := newRenderer(t)
	assert.Zero(t, dev.Live())

	light := r.LightQuad()
	require.True(t, light.Valid())
	screen := r.ScreenQuad()
	require.True(t, screen.Valid())
	live := dev.Live()
	assert.Equal(t, 3, live)

	assert.Same(t, light, r.LightQuad())
	assert.Same(t, screen, r.ScreenQuad())
	assert.Equal(t, live, dev.Live())

	r.Shutdown()
	assert.Zero(t, dev.Live())
}

func TestLightQuadAllocationFailure(t *testing.T) {
	r, dev := newRenderer(t)
	dev.FailAlloc[gputest.KindVertexArray] = true

	assert.False(t, r.LightQuad().Valid())
	assert.Zero(t, dev.Live())
}

func TestResizeIgnoresEmptySize(t *testing.T) {
	r, _ := newRenderer(t)
	r.Resize(0, 400)
	w, h := r.ScreenSize()
	assert.Equal(t, uint32(1280), w)
	assert.Equal(t, uint32(720), h)

	r.Resize(800, 600)
	w, h = r.ScreenSize()
	assert.Equal(t, uint32(800), w)
	assert.Equal(t, uint32(600), h)
	assert.Equal(t, gpu.Viewport{Width: 800, Height: 600}, r.Viewport())
}

func TestBeginFrameClearsBackbuffer(t *testing.T) {
	r, dev := newRenderer(t)
	r.BeginFrame()

	bind := dev.Index("BindFramebuffer", 0)
	clear := dev.Index("Clear", 0)
	require.GreaterOrEqual(t, bind, 0)
	assert.Greater(t, clear, bind)
	assert.Equal(t, []any{gpu.FRAMEBUFFER, uint32(0)}, dev.Calls()[bind].Args)
}

func TestCannedBlendStates(t *testing.T) {
	alpha := renderer.AlphaBlending()
	assert.True(t, alpha.Attachments[0].BlendEnable)
	assert.Equal(t, gpu.SRC_ALPHA, alpha.Attachments[0].SrcColorBlendFactor)
	assert.False(t, alpha.Attachments[1].BlendEnable)

	add := renderer.Additive()
	assert.Equal(t, gpu.ONE, add.Attachments[0].DstColorBlendFactor)

	assert.False(t, renderer.DefaultBlend().Attachments[0].BlendEnable)
}

func TestCannedDepthStates(t *testing.T) {
	assert.True(t, renderer.DepthTest().DepthWriteEnable)
	assert.Equal(t, gpu.LESS, renderer.DepthTest().DepthCompareOp)

	noWrite := renderer.DepthTestNoWrite()
	assert.True(t, noWrite.DepthTestEnable)
	assert.False(t, noWrite.DepthWriteEnable)
	assert.Equal(t, gpu.LEQUAL, noWrite.DepthCompareOp)

	assert.False(t, renderer.DefaultDepthStencil().DepthTestEnable)
	assert.True(t, renderer.DiscardRasterization().RasterizerDiscardEnable)
	assert.Equal(t, gpu.NONE, renderer.NoCullRasterization().CullMode)
}
