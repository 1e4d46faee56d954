package gpu

import "unsafe"

// kind supplies the allocation and release entry points of one GL object type.
type kind interface {
	gen(dev Device) uint32
	del(dev Device, id uint32)
}

// owner is anything embedding an Object of kind K.
type owner[K kind] interface {
	object() *Object[K]
}

// noCopy makes `go vet` report handles passed or assigned by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Object exclusively owns one GL object name. The zero value is empty.
//
// Ownership moves with Take; a handle must never be copied. Releasing a
// handle that holds nothing is a no-op.
type Object[K kind] struct {
	noCopy noCopy
	dev    Device
	id     uint32
}

// Gen allocates a fresh object, releasing the one held before.
// It reports whether the allocation produced a non-zero name.
func (o *Object[K]) Gen(dev Device) bool {
	o.Delete()
	var k K
	if id := k.gen(dev); id != 0 {
		o.dev, o.id = dev, id
	}
	return o.Valid()
}

// Delete releases the held object, if any, and leaves the handle empty.
func (o *Object[K]) Delete() {
	if o.id == 0 {
		return
	}
	var k K
	k.del(o.dev, o.id)
	o.dev, o.id = nil, 0
}

// Take moves ownership from src into o. Whatever o held is destroyed first;
// src is left empty. Taking from itself does nothing.
func (o *Object[K]) Take(src owner[K]) {
	s := src.object()
	if s == o {
		return
	}
	o.Delete()
	o.dev, o.id = s.dev, s.id
	s.dev, s.id = nil, 0
}

func (o *Object[K]) Valid() bool {
	return o.id != 0
}

func (o *Object[K]) ID() uint32 {
	return o.id
}

func (o *Object[K]) Device() Device {
	return o.dev
}

func (o *Object[K]) object() *Object[K] {
	return o
}

// Bytes reinterprets a slice of plain values as raw bytes for uploads.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

// BytesOf is Bytes for a single value.
func BytesOf[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(unsafe.Sizeof(*v)))
}

// SizeOf is the byte size of T.
func SizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}
