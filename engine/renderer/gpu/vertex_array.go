package gpu

type vertexArrayKind struct{}

func (vertexArrayKind) gen(dev Device) uint32     { return dev.GenVertexArray() }
func (vertexArrayKind) del(dev Device, id uint32) { dev.DeleteVertexArray(id) }

type VertexArray struct {
	Object[vertexArrayKind]
}

func (v *VertexArray) Bind() {
	if v.Valid() {
		v.dev.BindVertexArray(v.id)
	}
}

// VertexAttribute describes one shader input sourced from the vertex buffer
// selected before it. Integer attributes skip float conversion.
type VertexAttribute struct {
	Location   uint32
	Size       int32
	Type       Enum
	Normalized bool
	Integer    bool
	Stride     int32
	Offset     int
	Divisor    uint32
}

// VertexArrayBuilder records buffer and attribute bindings and replays them
// into a fresh vertex array on Build.
type VertexArrayBuilder struct {
	ops          []func(dev Device)
	vertexBuffer bool
	invalid      bool
}

func NewVertexArrayBuilder() *VertexArrayBuilder {
	return &VertexArrayBuilder{}
}

func (b *VertexArrayBuilder) IndexBuffer(buf *Buffer) *VertexArrayBuilder {
	id := buf.ID()
	if id == 0 {
		b.invalid = true
	}
	b.ops = append(b.ops, func(dev Device) {
		dev.BindBuffer(ELEMENT_ARRAY_BUFFER, id)
	})
	return b
}

// VertexBuffer selects the source of every following Attribute.
func (b *VertexArrayBuilder) VertexBuffer(buf *Buffer) *VertexArrayBuilder {
	id := buf.ID()
	if id == 0 {
		b.invalid = true
	}
	b.vertexBuffer = true
	b.ops = append(b.ops, func(dev Device) {
		dev.BindBuffer(ARRAY_BUFFER, id)
	})
	return b
}

func (b *VertexArrayBuilder) Attribute(a VertexAttribute) *VertexArrayBuilder {
	if !b.vertexBuffer {
		b.invalid = true
	}
	b.ops = append(b.ops, func(dev Device) {
		dev.EnableVertexAttribArray(a.Location)
		if a.Integer {
			dev.VertexAttribIPointer(a.Location, a.Size, a.Type, a.Stride, a.Offset)
		} else {
			dev.VertexAttribPointer(a.Location, a.Size, a.Type, a.Normalized, a.Stride, a.Offset)
		}
		if a.Divisor != 0 {
			dev.VertexAttribDivisor(a.Location, a.Divisor)
		}
	})
	return b
}

// Build creates the vertex array and moves it into dst. On failure dst is
// left untouched and nothing stays allocated.
func (b *VertexArrayBuilder) Build(dev Device, dst *VertexArray) bool {
	if b.invalid {
		return false
	}
	var vao VertexArray
	if !vao.Gen(dev) {
		return false
	}
	dev.BindVertexArray(vao.id)
	for _, op := range b.ops {
		op(dev)
	}
	dev.BindVertexArray(0)
	dev.BindBuffer(ARRAY_BUFFER, 0)
	dst.Take(&vao)
	return true
}
