package gpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu/gputest"
)

func TestRasterizationStateAppliesEveryField(t *testing.T) {
	dev := gputest.New()

	gpu.NewRasterizationStateBuilder().
		CullMode(gpu.NONE).
		PolygonMode(gpu.LINE).
		EnableDepthBias(1, 0, 2).
		Build().
		Apply(dev)

	assert.Contains(t, dev.Calls(), gputest.Call{Op: "Disable", Args: []any{gpu.CULL_FACE}})
	assert.Contains(t, dev.Calls(), gputest.Call{Op: "PolygonMode", Args: []any{gpu.FRONT_AND_BACK, gpu.LINE}})
	assert.Contains(t, dev.Calls(), gputest.Call{Op: "Enable", Args: []any{gpu.POLYGON_OFFSET_FILL}})
	assert.Contains(t, dev.Calls(), gputest.Call{Op: "PolygonOffsetClamp", Args: []any{float32(2), float32(1), float32(0)}})
	assert.Equal(t, 0, dev.Count("CullFace"))
	assert.Equal(t, 1, dev.Count("FrontFace"))
	assert.Equal(t, 1, dev.Count("LineWidth"))
}

func TestRasterizationStateDefaultCullsBack(t *testing.T) {
	dev := gputest.New()
	gpu.NewRasterizationStateBuilder().Build().Apply(dev)

	assert.Contains(t, dev.Calls(), gputest.Call{Op: "Enable", Args: []any{gpu.CULL_FACE}})
	assert.Contains(t, dev.Calls(), gputest.Call{Op: "CullFace", Args: []any{gpu.BACK}})
	assert.Contains(t, dev.Calls(), gputest.Call{Op: "Disable", Args: []any{gpu.RASTERIZER_DISCARD}})
}

func TestColorBlendSlotsAreIndependent(t *testing.T) {
	dev := gputest.New()

	state := gpu.NewColorBlendStateBuilder().
		Enable(0, gpu.SRC_ALPHA, gpu.ONE_MINUS_SRC_ALPHA, gpu.FUNC_ADD, gpu.ONE, gpu.ZERO, gpu.FUNC_ADD).
		Build()
	state.Apply(dev)

	enabled := dev.Find("Enablei")
	require.Len(t, enabled, 1)
	assert.Equal(t, []any{gpu.BLEND, uint32(0)}, enabled[0].Args)

	disabled := dev.Find("Disablei")
	require.Len(t, disabled, gpu.MaxColorAttachments-1)
	for i, c := range disabled {
		assert.Equal(t, []any{gpu.BLEND, uint32(i + 1)}, c.Args)
	}

	funcs := dev.Find("BlendFuncSeparatei")
	require.Len(t, funcs, 1)
	assert.Equal(t, []any{uint32(0), gpu.SRC_ALPHA, gpu.ONE_MINUS_SRC_ALPHA, gpu.ONE, gpu.ZERO}, funcs[0].Args)
	assert.Equal(t, gpu.MaxColorAttachments, dev.Count("ColorMaski"))
}

func TestColorBlendBuilderIgnoresOutOfRangeSlots(t *testing.T) {
	state := gpu.NewColorBlendStateBuilder().
		Enable(gpu.MaxColorAttachments, gpu.ONE, gpu.ONE, gpu.FUNC_ADD, gpu.ONE, gpu.ONE, gpu.FUNC_ADD).
		Enable(-1, gpu.ONE, gpu.ONE, gpu.FUNC_ADD, gpu.ONE, gpu.ONE, gpu.FUNC_ADD).
		Build()
	for _, a := range state.Attachments {
		assert.False(t, a.BlendEnable)
	}
}

func TestColorBlendDisableKeepsWriteMask(t *testing.T) {
	state := gpu.NewColorBlendStateBuilder().
		WriteMask(1, true, false, true, false).
		Enable(1, gpu.ONE, gpu.ONE, gpu.FUNC_ADD, gpu.ONE, gpu.ONE, gpu.FUNC_ADD).
		Disable(1).
		Build()
	assert.False(t, state.Attachments[1].BlendEnable)
	assert.Equal(t, [4]bool{true, false, true, false}, state.Attachments[1].ColorWriteMask)
}

func TestDepthBoundsForcedWhenDisabled(t *testing.T) {
	b := gpu.NewDepthStencilStateBuilder().EnableDepthTest(gpu.LESS)
	b.EnableDepthBoundsTest(0.25, 0.5)
	assert.Equal(t, float32(0.25), b.Build().MinDepthBounds)

	state := gpu.NewDepthStencilStateBuilder().EnableDepthTest(gpu.LEQUAL).Build()
	assert.Equal(t, float32(0), state.MinDepthBounds)
	assert.Equal(t, float32(1), state.MaxDepthBounds)

	dev := gputest.New()
	state.Apply(dev)
	assert.Contains(t, dev.Calls(), gputest.Call{Op: "DepthBounds", Args: []any{0.0, 1.0}})
	assert.Contains(t, dev.Calls(), gputest.Call{Op: "Disable", Args: []any{gpu.DEPTH_BOUNDS_TEST_EXT}})
	assert.Contains(t, dev.Calls(), gputest.Call{Op: "DepthFunc", Args: []any{gpu.LEQUAL}})
	assert.Contains(t, dev.Calls(), gputest.Call{Op: "DepthMask", Args: []any{false}})
}

func TestStencilFacesAreSeparate(t *testing.T) {
	front := gpu.DefaultStencilOpState()
	front.PassOp = gpu.INCR_WRAP
	front.Reference = 1
	back := gpu.DefaultStencilOpState()
	back.PassOp = gpu.DECR_WRAP

	dev := gputest.New()
	gpu.NewDepthStencilStateBuilder().EnableStencilTest(front, back).Build().Apply(dev)

	ops := dev.Find("StencilOpSeparate")
	require.Len(t, ops, 2)
	assert.Equal(t, []any{gpu.FRONT, gpu.KEEP, gpu.KEEP, gpu.INCR_WRAP}, ops[0].Args)
	assert.Equal(t, []any{gpu.BACK, gpu.KEEP, gpu.KEEP, gpu.DECR_WRAP}, ops[1].Args)

	funcs := dev.Find("StencilFuncSeparate")
	require.Len(t, funcs, 2)
	assert.Equal(t, []any{gpu.FRONT, gpu.ALWAYS, int32(1), uint32(0xFFFFFFFF)}, funcs[0].Args)
}

func TestClearState(t *testing.T) {
	dev := gputest.New()
	gpu.ClearDepthOnly().Apply(dev)
	assert.Equal(t, []string{"DepthMask", "ClearDepth", "Clear"}, dev.Ops())
	assert.Equal(t, []any{gpu.DEPTH_BUFFER_BIT}, dev.Calls()[2].Args)

	dev.Reset()
	gpu.ScreenViewport(640, 480).Apply(dev)
	assert.Equal(t, []any{int32(0), int32(0), int32(640), int32(480)}, dev.Calls()[0].Args)
}
