package renderer

import "github.com/spaghettifunk/rtdemo/engine/renderer/gpu"

func DefaultRasterization() gpu.RasterizationState {
	return gpu.NewRasterizationStateBuilder().Build()
}

// DiscardRasterization drops every primitive before rasterization.
func DiscardRasterization() gpu.RasterizationState {
	return gpu.NewRasterizationStateBuilder().EnableRasterizerDiscard().Build()
}

// NoCullRasterization draws both faces, for light volumes and full-screen
// passes.
func NoCullRasterization() gpu.RasterizationState {
	return gpu.NewRasterizationStateBuilder().CullMode(gpu.NONE).Build()
}

func DefaultBlend() gpu.ColorBlendState {
	return gpu.NewColorBlendStateBuilder().Build()
}

// AlphaBlending is straight alpha "over" blending on slot 0.
func AlphaBlending() gpu.ColorBlendState {
	return gpu.NewColorBlendStateBuilder().
		Enable(0, gpu.SRC_ALPHA, gpu.ONE_MINUS_SRC_ALPHA, gpu.FUNC_ADD, gpu.ONE, gpu.ONE_MINUS_SRC_ALPHA, gpu.FUNC_ADD).
		Build()
}

// Additive accumulates light contributions on slot 0.
func Additive() gpu.ColorBlendState {
	return gpu.NewColorBlendStateBuilder().
		Enable(0, gpu.ONE, gpu.ONE, gpu.FUNC_ADD, gpu.ONE, gpu.ONE, gpu.FUNC_ADD).
		Build()
}

func DefaultDepthStencil() gpu.DepthStencilState {
	return gpu.NewDepthStencilStateBuilder().Build()
}

func DepthTest() gpu.DepthStencilState {
	return gpu.NewDepthStencilStateBuilder().EnableDepthTest(gpu.LESS).EnableDepthWrite().Build()
}

// DepthTestNoWrite tests against a depth buffer filled by an earlier pass.
func DepthTestNoWrite() gpu.DepthStencilState {
	return gpu.NewDepthStencilStateBuilder().EnableDepthTest(gpu.LEQUAL).Build()
}
