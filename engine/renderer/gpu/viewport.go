package gpu

// Viewport sets the viewport and scissor rectangle together.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

func ScreenViewport(width, height uint32) Viewport {
	return Viewport{Width: int32(width), Height: int32(height)}
}

func (v Viewport) Apply(dev Device) {
	dev.Viewport(v.X, v.Y, v.Width, v.Height)
	dev.Scissor(v.X, v.Y, v.Width, v.Height)
}

// ClearState clears the bound framebuffer. Buffers with a false flag are
// left alone.
type ClearState struct {
	Color        [4]float32
	Depth        float32
	Stencil      int32
	ClearColor   bool
	ClearDepth   bool
	ClearStencil bool
}

func ClearAll(r, g, b, a float32) ClearState {
	return ClearState{Color: [4]float32{r, g, b, a}, Depth: 1, ClearColor: true, ClearDepth: true, ClearStencil: true}
}

func ClearDepthOnly() ClearState {
	return ClearState{Depth: 1, ClearDepth: true}
}

func (c ClearState) Apply(dev Device) {
	var mask Enum
	if c.ClearColor {
		dev.ClearColor(c.Color[0], c.Color[1], c.Color[2], c.Color[3])
		mask |= COLOR_BUFFER_BIT
	}
	if c.ClearDepth {
		dev.DepthMask(true)
		dev.ClearDepth(c.Depth)
		mask |= DEPTH_BUFFER_BIT
	}
	if c.ClearStencil {
		dev.StencilMaskSeparate(FRONT_AND_BACK, 0xFFFFFFFF)
		dev.ClearStencil(c.Stencil)
		mask |= STENCIL_BUFFER_BIT
	}
	if mask != 0 {
		dev.Clear(mask)
	}
}
