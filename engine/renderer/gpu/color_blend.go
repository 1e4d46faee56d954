package gpu

type ColorBlendAttachmentState struct {
	BlendEnable         bool
	SrcColorBlendFactor Enum
	DstColorBlendFactor Enum
	ColorBlendOp        Enum
	SrcAlphaBlendFactor Enum
	DstAlphaBlendFactor Enum
	AlphaBlendOp        Enum
	// ColorWriteMask is r, g, b, a.
	ColorWriteMask [4]bool
}

// ColorBlendState holds one independent blend configuration per colour
// attachment slot.
type ColorBlendState struct {
	Attachments [MaxColorAttachments]ColorBlendAttachmentState
}

func defaultBlendAttachment() ColorBlendAttachmentState {
	return ColorBlendAttachmentState{
		SrcColorBlendFactor: ONE,
		DstColorBlendFactor: ZERO,
		ColorBlendOp:        FUNC_ADD,
		SrcAlphaBlendFactor: ONE,
		DstAlphaBlendFactor: ZERO,
		AlphaBlendOp:        FUNC_ADD,
		ColorWriteMask:      [4]bool{true, true, true, true},
	}
}

func (s ColorBlendState) Apply(dev Device) {
	for i, a := range s.Attachments {
		slot := uint32(i)
		if a.BlendEnable {
			dev.Enablei(BLEND, slot)
			dev.BlendFuncSeparatei(slot, a.SrcColorBlendFactor, a.DstColorBlendFactor, a.SrcAlphaBlendFactor, a.DstAlphaBlendFactor)
			dev.BlendEquationSeparatei(slot, a.ColorBlendOp, a.AlphaBlendOp)
		} else {
			dev.Disablei(BLEND, slot)
		}
		m := a.ColorWriteMask
		dev.ColorMaski(slot, m[0], m[1], m[2], m[3])
	}
}

type ColorBlendStateBuilder struct {
	state ColorBlendState
}

// NewColorBlendStateBuilder starts with blending off and full write masks
// on every slot.
func NewColorBlendStateBuilder() *ColorBlendStateBuilder {
	b := &ColorBlendStateBuilder{}
	for i := range b.state.Attachments {
		b.state.Attachments[i] = defaultBlendAttachment()
	}
	return b
}

// Enable turns blending on for one slot. Out-of-range slots are ignored.
func (b *ColorBlendStateBuilder) Enable(slot int, srcColor, dstColor, colorOp, srcAlpha, dstAlpha, alphaOp Enum) *ColorBlendStateBuilder {
	if slot < 0 || slot >= MaxColorAttachments {
		return b
	}
	a := &b.state.Attachments[slot]
	a.BlendEnable = true
	a.SrcColorBlendFactor = srcColor
	a.DstColorBlendFactor = dstColor
	a.ColorBlendOp = colorOp
	a.SrcAlphaBlendFactor = srcAlpha
	a.DstAlphaBlendFactor = dstAlpha
	a.AlphaBlendOp = alphaOp
	return b
}

func (b *ColorBlendStateBuilder) Disable(slot int) *ColorBlendStateBuilder {
	if slot < 0 || slot >= MaxColorAttachments {
		return b
	}
	mask := b.state.Attachments[slot].ColorWriteMask
	b.state.Attachments[slot] = defaultBlendAttachment()
	b.state.Attachments[slot].ColorWriteMask = mask
	return b
}

func (b *ColorBlendStateBuilder) WriteMask(slot int, r, g, bl, a bool) *ColorBlendStateBuilder {
	if slot < 0 || slot >= MaxColorAttachments {
		return b
	}
	b.state.Attachments[slot].ColorWriteMask = [4]bool{r, g, bl, a}
	return b
}

func (b *ColorBlendStateBuilder) Build() ColorBlendState {
	return b.state
}
