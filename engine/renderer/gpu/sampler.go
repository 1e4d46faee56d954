package gpu

type samplerKind struct{}

func (samplerKind) gen(dev Device) uint32     { return dev.GenSampler() }
func (samplerKind) del(dev Device, id uint32) { dev.DeleteSampler(id) }

type Sampler struct {
	Object[samplerKind]
}

func (s *Sampler) Bind(unit uint32) {
	if s.Valid() {
		s.dev.BindSampler(unit, s.id)
	}
}

// SamplerBuilder collects sampler parameters. Only the parameters that were
// set are written; everything else keeps the GL default.
type SamplerBuilder struct {
	ints   []samplerInt
	floats []samplerFloat
	border *[4]float32
}

type samplerInt struct {
	pname Enum
	value int32
}

type samplerFloat struct {
	pname Enum
	value float32
}

func NewSamplerBuilder() *SamplerBuilder {
	return &SamplerBuilder{}
}

func (b *SamplerBuilder) seti(pname, value Enum) *SamplerBuilder {
	b.ints = append(b.ints, samplerInt{pname, int32(value)})
	return b
}

func (b *SamplerBuilder) MinFilter(filter Enum) *SamplerBuilder {
	return b.seti(TEXTURE_MIN_FILTER, filter)
}

func (b *SamplerBuilder) MagFilter(filter Enum) *SamplerBuilder {
	return b.seti(TEXTURE_MAG_FILTER, filter)
}

func (b *SamplerBuilder) WrapS(mode Enum) *SamplerBuilder { return b.seti(TEXTURE_WRAP_S, mode) }
func (b *SamplerBuilder) WrapT(mode Enum) *SamplerBuilder { return b.seti(TEXTURE_WRAP_T, mode) }
func (b *SamplerBuilder) WrapR(mode Enum) *SamplerBuilder { return b.seti(TEXTURE_WRAP_R, mode) }

// Wrap sets all three wrap modes at once.
func (b *SamplerBuilder) Wrap(mode Enum) *SamplerBuilder {
	return b.WrapS(mode).WrapT(mode).WrapR(mode)
}

func (b *SamplerBuilder) LOD(min, max float32) *SamplerBuilder {
	b.floats = append(b.floats, samplerFloat{TEXTURE_MIN_LOD, min}, samplerFloat{TEXTURE_MAX_LOD, max})
	return b
}

func (b *SamplerBuilder) LODBias(bias float32) *SamplerBuilder {
	b.floats = append(b.floats, samplerFloat{TEXTURE_LOD_BIAS, bias})
	return b
}

func (b *SamplerBuilder) BorderColor(r, g, bl, a float32) *SamplerBuilder {
	b.border = &[4]float32{r, g, bl, a}
	return b
}

// Compare turns the sampler into a depth comparison sampler.
func (b *SamplerBuilder) Compare(fn Enum) *SamplerBuilder {
	return b.seti(TEXTURE_COMPARE_MODE, COMPARE_REF_TO_TEXTURE).seti(TEXTURE_COMPARE_FUNC, fn)
}

func (b *SamplerBuilder) Build(dev Device, dst *Sampler) bool {
	var s Sampler
	if !s.Gen(dev) {
		return false
	}
	for _, p := range b.ints {
		dev.SamplerParameteri(s.id, p.pname, p.value)
	}
	for _, p := range b.floats {
		dev.SamplerParameterf(s.id, p.pname, p.value)
	}
	if b.border != nil {
		dev.SamplerParameterfv(s.id, TEXTURE_BORDER_COLOR, b.border[:])
	}
	dst.Take(&s)
	return true
}
