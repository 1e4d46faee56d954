package gpu

// RasterizationState is applied as a whole; every field is written on Apply.
type RasterizationState struct {
	DepthClampEnable        bool
	RasterizerDiscardEnable bool
	PolygonMode             Enum
	// CullMode NONE disables face culling.
	CullMode                Enum
	FrontFace               Enum
	DepthBiasEnable         bool
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

func (s RasterizationState) Apply(dev Device) {
	toggle(dev, DEPTH_CLAMP, s.DepthClampEnable)
	toggle(dev, RASTERIZER_DISCARD, s.RasterizerDiscardEnable)
	dev.PolygonMode(FRONT_AND_BACK, s.PolygonMode)
	if s.CullMode == NONE {
		dev.Disable(CULL_FACE)
	} else {
		dev.Enable(CULL_FACE)
		dev.CullFace(s.CullMode)
	}
	dev.FrontFace(s.FrontFace)
	toggle(dev, POLYGON_OFFSET_FILL, s.DepthBiasEnable)
	toggle(dev, POLYGON_OFFSET_LINE, s.DepthBiasEnable)
	toggle(dev, POLYGON_OFFSET_POINT, s.DepthBiasEnable)
	dev.PolygonOffsetClamp(s.DepthBiasSlopeFactor, s.DepthBiasConstantFactor, s.DepthBiasClamp)
	dev.LineWidth(s.LineWidth)
}

func toggle(dev Device, capability Enum, on bool) {
	if on {
		dev.Enable(capability)
	} else {
		dev.Disable(capability)
	}
}

type RasterizationStateBuilder struct {
	state RasterizationState
}

// NewRasterizationStateBuilder starts from filled, back-face culled,
// counter-clockwise triangles with no depth bias.
func NewRasterizationStateBuilder() *RasterizationStateBuilder {
	return &RasterizationStateBuilder{state: RasterizationState{
		PolygonMode: FILL,
		CullMode:    BACK,
		FrontFace:   CCW,
		LineWidth:   1,
	}}
}

func (b *RasterizationStateBuilder) EnableDepthClamp() *RasterizationStateBuilder {
	b.state.DepthClampEnable = true
	return b
}

func (b *RasterizationStateBuilder) EnableRasterizerDiscard() *RasterizationStateBuilder {
	b.state.RasterizerDiscardEnable = true
	return b
}

func (b *RasterizationStateBuilder) PolygonMode(mode Enum) *RasterizationStateBuilder {
	b.state.PolygonMode = mode
	return b
}

func (b *RasterizationStateBuilder) CullMode(mode Enum) *RasterizationStateBuilder {
	b.state.CullMode = mode
	return b
}

func (b *RasterizationStateBuilder) FrontFace(winding Enum) *RasterizationStateBuilder {
	b.state.FrontFace = winding
	return b
}

func (b *RasterizationStateBuilder) EnableDepthBias(constantFactor, clamp, slopeFactor float32) *RasterizationStateBuilder {
	b.state.DepthBiasEnable = true
	b.state.DepthBiasConstantFactor = constantFactor
	b.state.DepthBiasClamp = clamp
	b.state.DepthBiasSlopeFactor = slopeFactor
	return b
}

func (b *RasterizationStateBuilder) LineWidth(width float32) *RasterizationStateBuilder {
	b.state.LineWidth = width
	return b
}

func (b *RasterizationStateBuilder) Build() RasterizationState {
	return b.state
}
