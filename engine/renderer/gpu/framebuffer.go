package gpu

type framebufferKind struct{}

func (framebufferKind) gen(dev Device) uint32     { return dev.GenFramebuffer() }
func (framebufferKind) del(dev Device, id uint32) { dev.DeleteFramebuffer(id) }

type Framebuffer struct {
	Object[framebufferKind]
}

func (f *Framebuffer) Bind(target Enum) {
	if f.Valid() {
		f.dev.BindFramebuffer(target, f.id)
	}
}

// BindDefault binds the window framebuffer on dev.
func BindDefault(dev Device, target Enum) {
	dev.BindFramebuffer(target, 0)
}

type attachment struct {
	point     Enum
	texTarget Enum
	texture   uint32
	level     int32
	layer     int32
	mode      attachMode
}

type attachMode uint8

const (
	attachWhole attachMode = iota
	attachFace
	attachLayer
)

// FramebufferBuilder records attachments and the colour slots they use.
// Build applies them to a new framebuffer and sets the draw buffers to the
// recorded slots (NONE when only depth is attached).
type FramebufferBuilder struct {
	attachments []attachment
	colors      [MaxColorAttachments]bool
	invalid     bool
}

func NewFramebufferBuilder() *FramebufferBuilder {
	return &FramebufferBuilder{}
}

func (b *FramebufferBuilder) color(index uint32, a attachment) *FramebufferBuilder {
	if index >= MaxColorAttachments {
		b.invalid = true
		return b
	}
	a.point = COLOR_ATTACHMENT0 + Enum(index)
	b.colors[index] = true
	return b.add(a)
}

func (b *FramebufferBuilder) add(a attachment) *FramebufferBuilder {
	if a.texture == 0 {
		b.invalid = true
	}
	b.attachments = append(b.attachments, a)
	return b
}

func (b *FramebufferBuilder) ColorTexture(index uint32, tex *Texture, level int32) *FramebufferBuilder {
	return b.color(index, attachment{texture: tex.ID(), level: level})
}

// ColorTexture2D attaches one face of a cubemap (or any 2D target).
func (b *FramebufferBuilder) ColorTexture2D(index uint32, texTarget Enum, tex *Texture, level int32) *FramebufferBuilder {
	return b.color(index, attachment{texture: tex.ID(), texTarget: texTarget, level: level, mode: attachFace})
}

func (b *FramebufferBuilder) ColorTextureLayer(index uint32, tex *Texture, level, layer int32) *FramebufferBuilder {
	return b.color(index, attachment{texture: tex.ID(), level: level, layer: layer, mode: attachLayer})
}

func (b *FramebufferBuilder) DepthTexture(tex *Texture, level int32) *FramebufferBuilder {
	return b.add(attachment{point: DEPTH_ATTACHMENT, texture: tex.ID(), level: level})
}

func (b *FramebufferBuilder) DepthTexture2D(texTarget Enum, tex *Texture, level int32) *FramebufferBuilder {
	return b.add(attachment{point: DEPTH_ATTACHMENT, texture: tex.ID(), texTarget: texTarget, level: level, mode: attachFace})
}

func (b *FramebufferBuilder) DepthTextureLayer(tex *Texture, level, layer int32) *FramebufferBuilder {
	return b.add(attachment{point: DEPTH_ATTACHMENT, texture: tex.ID(), level: level, layer: layer, mode: attachLayer})
}

func (b *FramebufferBuilder) DepthStencilTexture(tex *Texture, level int32) *FramebufferBuilder {
	return b.add(attachment{point: DEPTH_STENCIL_ATTACHMENT, texture: tex.ID(), level: level})
}

// DrawBuffers is the draw buffer list Build will set.
func (b *FramebufferBuilder) DrawBuffers() []Enum {
	last := -1
	for i, used := range b.colors {
		if used {
			last = i
		}
	}
	if last < 0 {
		return []Enum{NONE}
	}
	bufs := make([]Enum, last+1)
	for i := 0; i <= last; i++ {
		if b.colors[i] {
			bufs[i] = COLOR_ATTACHMENT0 + Enum(i)
		} else {
			bufs[i] = NONE
		}
	}
	return bufs
}

// Build reports whether the framebuffer is complete. An incomplete
// framebuffer is released and dst keeps what it held.
func (b *FramebufferBuilder) Build(dev Device, dst *Framebuffer) bool {
	if b.invalid {
		return false
	}
	var fbo Framebuffer
	if !fbo.Gen(dev) {
		return false
	}
	dev.BindFramebuffer(FRAMEBUFFER, fbo.id)
	for _, a := range b.attachments {
		switch a.mode {
		case attachFace:
			dev.FramebufferTexture2D(FRAMEBUFFER, a.point, a.texTarget, a.texture, a.level)
		case attachLayer:
			dev.FramebufferTextureLayer(FRAMEBUFFER, a.point, a.texture, a.level, a.layer)
		default:
			dev.FramebufferTexture(FRAMEBUFFER, a.point, a.texture, a.level)
		}
	}
	dev.DrawBuffers(b.DrawBuffers())
	complete := dev.CheckFramebufferStatus(FRAMEBUFFER) == FRAMEBUFFER_COMPLETE
	dev.BindFramebuffer(FRAMEBUFFER, 0)
	if !complete {
		fbo.Delete()
		return false
	}
	dst.Take(&fbo)
	return true
}
