package gpu

type bufferKind struct{}

func (bufferKind) gen(dev Device) uint32     { return dev.GenBuffer() }
func (bufferKind) del(dev Device, id uint32) { dev.DeleteBuffer(id) }

type Buffer struct {
	Object[bufferKind]
}

func (b *Buffer) Bind(target Enum) {
	if b.Valid() {
		b.dev.BindBuffer(target, b.id)
	}
}

func (b *Buffer) BindBase(target Enum, index uint32) {
	if b.Valid() {
		b.dev.BindBufferBase(target, index, b.id)
	}
}

func (b *Buffer) BindRange(target Enum, index uint32, offset, size int) {
	if b.Valid() {
		b.dev.BindBufferRange(target, index, b.id, offset, size)
	}
}

// Storage binds the buffer to target and allocates immutable storage.
// data may be nil to leave the contents undefined.
func (b *Buffer) Storage(target Enum, size int, data []byte, flags Enum) {
	if !b.Valid() {
		return
	}
	b.dev.BindBuffer(target, b.id)
	b.dev.BufferStorage(target, size, data, flags)
}

// Data (re)allocates mutable storage, used for per-frame streams.
func (b *Buffer) Data(target Enum, data []byte, usage Enum) {
	if !b.Valid() {
		return
	}
	b.dev.BindBuffer(target, b.id)
	b.dev.BufferData(target, len(data), data, usage)
}

// SubData updates a range of a buffer created with DYNAMIC_STORAGE_BIT.
func (b *Buffer) SubData(target Enum, offset int, data []byte) {
	if !b.Valid() {
		return
	}
	b.dev.BindBuffer(target, b.id)
	b.dev.BufferSubData(target, offset, data)
}
