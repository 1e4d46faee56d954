package gpu

type StencilOpState struct {
	FailOp      Enum
	PassOp      Enum
	DepthFailOp Enum
	CompareOp   Enum
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// DefaultStencilOpState keeps every value and always passes.
func DefaultStencilOpState() StencilOpState {
	return StencilOpState{
		FailOp:      KEEP,
		PassOp:      KEEP,
		DepthFailOp: KEEP,
		CompareOp:   ALWAYS,
		CompareMask: 0xFFFFFFFF,
		WriteMask:   0xFFFFFFFF,
	}
}

// DepthStencilState has independent front and back stencil configuration.
// With DepthBoundsTestEnable false the bounds are always [0, 1].
type DepthStencilState struct {
	DepthTestEnable       bool
	DepthWriteEnable      bool
	DepthCompareOp        Enum
	DepthBoundsTestEnable bool
	StencilTestEnable     bool
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

func (s DepthStencilState) Apply(dev Device) {
	toggle(dev, DEPTH_TEST, s.DepthTestEnable)
	dev.DepthFunc(s.DepthCompareOp)
	dev.DepthMask(s.DepthWriteEnable)
	toggle(dev, DEPTH_BOUNDS_TEST_EXT, s.DepthBoundsTestEnable)
	dev.DepthBounds(float64(s.MinDepthBounds), float64(s.MaxDepthBounds))
	toggle(dev, STENCIL_TEST, s.StencilTestEnable)
	applyStencil(dev, FRONT, s.Front)
	applyStencil(dev, BACK, s.Back)
}

func applyStencil(dev Device, face Enum, op StencilOpState) {
	dev.StencilOpSeparate(face, op.FailOp, op.DepthFailOp, op.PassOp)
	dev.StencilFuncSeparate(face, op.CompareOp, int32(op.Reference), op.CompareMask)
	dev.StencilMaskSeparate(face, op.WriteMask)
}

type DepthStencilStateBuilder struct {
	state DepthStencilState
}

// NewDepthStencilStateBuilder starts with every test disabled and depth
// writes off.
func NewDepthStencilStateBuilder() *DepthStencilStateBuilder {
	return &DepthStencilStateBuilder{state: DepthStencilState{
		DepthCompareOp: LESS,
		Front:          DefaultStencilOpState(),
		Back:           DefaultStencilOpState(),
		MaxDepthBounds: 1,
	}}
}

func (b *DepthStencilStateBuilder) EnableDepthTest(compare Enum) *DepthStencilStateBuilder {
	b.state.DepthTestEnable = true
	b.state.DepthCompareOp = compare
	return b
}

func (b *DepthStencilStateBuilder) EnableDepthWrite() *DepthStencilStateBuilder {
	b.state.DepthWriteEnable = true
	return b
}

func (b *DepthStencilStateBuilder) EnableDepthBoundsTest(min, max float32) *DepthStencilStateBuilder {
	b.state.DepthBoundsTestEnable = true
	b.state.MinDepthBounds = min
	b.state.MaxDepthBounds = max
	return b
}

func (b *DepthStencilStateBuilder) EnableStencilTest(front, back StencilOpState) *DepthStencilStateBuilder {
	b.state.StencilTestEnable = true
	b.state.Front = front
	b.state.Back = back
	return b
}

func (b *DepthStencilStateBuilder) Build() DepthStencilState {
	s := b.state
	if !s.DepthBoundsTestEnable {
		s.MinDepthBounds, s.MaxDepthBounds = 0, 1
	}
	return s
}
