// Package gputest provides a recording gpu.Device for tests. It allocates
// names, tracks which objects are alive and can be told to fail.
package gputest

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
)

type Kind string

const (
	KindShader      Kind = "shader"
	KindProgram     Kind = "program"
	KindBuffer      Kind = "buffer"
	KindVertexArray Kind = "vertex_array"
	KindTexture     Kind = "texture"
	KindSampler     Kind = "sampler"
	KindFramebuffer Kind = "framebuffer"
)

// Call is one recorded device entry point.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

type objectKey struct {
	kind Kind
	id   uint32
}

type Device struct {
	calls     []Call
	nextID    uint32
	live      map[objectKey]bool
	destroyed map[objectKey]int
	sources   map[uint32]string

	// FailCompile makes CompileShader fail for matching sources.
	FailCompile func(src string) bool
	// FailLink makes every LinkProgram fail.
	FailLink bool
	// FailAlloc makes allocation of the given kind return 0. The counter
	// variant fails only the n-th allocation (1-based) across all kinds.
	FailAlloc   map[Kind]bool
	FailAllocAt int
	allocs      int
	// Incomplete makes CheckFramebufferStatus report an incomplete target.
	Incomplete bool
	// CompileLog is returned by ShaderInfoLog for failed compiles.
	CompileLog string
}

func New() *Device {
	return &Device{
		live:       map[objectKey]bool{},
		destroyed:  map[objectKey]int{},
		sources:    map[uint32]string{},
		FailAlloc:  map[Kind]bool{},
		CompileLog: "0:1(1): error: syntax error",
	}
}

func (d *Device) record(op string, args ...any) {
	d.calls = append(d.calls, Call{Op: op, Args: args})
}

func (d *Device) alloc(k Kind) uint32 {
	d.allocs++
	if d.FailAlloc[k] || d.allocs == d.FailAllocAt {
		d.record("Gen"+string(k), uint32(0))
		return 0
	}
	d.nextID++
	id := d.nextID
	d.live[objectKey{k, id}] = true
	d.record("Gen"+string(k), id)
	return id
}

func (d *Device) free(k Kind, id uint32) {
	key := objectKey{k, id}
	d.destroyed[key]++
	delete(d.live, key)
	d.record("Delete"+string(k), id)
}

// Mark records a call that did not reach the device, so fakes built on top
// of it can be ordered against real GPU calls.
func (d *Device) Mark(op string, args ...any) {
	d.record(op, args...)
}

// Calls returns every recorded call in order.
func (d *Device) Calls() []Call {
	return d.calls
}

// Ops returns the names of the recorded calls in order.
func (d *Device) Ops() []string {
	ops := make([]string, len(d.calls))
	for i, c := range d.calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset forgets recorded calls but keeps object bookkeeping.
func (d *Device) Reset() {
	d.calls = nil
}

// Index returns the position of the first call named op at or after from,
// or -1.
func (d *Device) Index(op string, from int) int {
	for i := from; i < len(d.calls); i++ {
		if d.calls[i].Op == op {
			return i
		}
	}
	return -1
}

// LastIndex returns the position of the last call named op, or -1.
func (d *Device) LastIndex(op string) int {
	for i := len(d.calls) - 1; i >= 0; i-- {
		if d.calls[i].Op == op {
			return i
		}
	}
	return -1
}

// Count returns how many calls named op were recorded.
func (d *Device) Count(op string) int {
	n := 0
	for _, c := range d.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Find returns the recorded calls named op.
func (d *Device) Find(op string) []Call {
	var out []Call
	for _, c := range d.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Live is the number of objects currently allocated, all kinds together.
func (d *Device) Live() int {
	return len(d.live)
}

func (d *Device) LiveOf(k Kind) int {
	n := 0
	for key := range d.live {
		if key.kind == k {
			n++
		}
	}
	return n
}

func (d *Device) IsLive(k Kind, id uint32) bool {
	return d.live[objectKey{k, id}]
}

// DestroyCount is how often the object was released.
func (d *Device) DestroyCount(k Kind, id uint32) int {
	return d.destroyed[objectKey{k, id}]
}

// FailSourcesContaining is a FailCompile helper.
func FailSourcesContaining(marker string) func(string) bool {
	return func(src string) bool { return strings.Contains(src, marker) }
}

var _ gpu.Device = (*Device)(nil)

func (d *Device) CreateShader(stage gpu.Enum) uint32 { return d.alloc(KindShader) }
func (d *Device) DeleteShader(id uint32)              { d.free(KindShader, id) }

func (d *Device) ShaderSource(id uint32, src []byte) {
	d.sources[id] = string(src)
	d.record("ShaderSource", id)
}

func (d *Device) CompileShader(id uint32) bool {
	ok := d.FailCompile == nil || !d.FailCompile(d.sources[id])
	d.record("CompileShader", id, ok)
	return ok
}

func (d *Device) ShaderInfoLog(id uint32, maxLength int) string {
	log := ""
	if d.FailCompile != nil && d.FailCompile(d.sources[id]) {
		log = d.CompileLog
	}
	if len(log) > maxLength {
		log = log[:maxLength]
	}
	return log
}

func (d *Device) CreateProgram() uint32    { return d.alloc(KindProgram) }
func (d *Device) DeleteProgram(id uint32)  { d.free(KindProgram, id) }
func (d *Device) AttachShader(p, s uint32) { d.record("AttachShader", p, s) }
func (d *Device) DetachShader(p, s uint32) { d.record("DetachShader", p, s) }

func (d *Device) LinkProgram(id uint32) bool {
	d.record("LinkProgram", id, !d.FailLink)
	return !d.FailLink
}

func (d *Device) ProgramInfoLog(id uint32, maxLength int) string {
	if !d.FailLink {
		return ""
	}
	log := "error: linking failed"
	if len(log) > maxLength {
		log = log[:maxLength]
	}
	return log
}

func (d *Device) UseProgram(id uint32) { d.record("UseProgram", id) }

func (d *Device) UniformBlockBinding(program, blockIndex, binding uint32) {
	d.record("UniformBlockBinding", program, blockIndex, binding)
}

func (d *Device) ShaderStorageBlockBinding(program, blockIndex, binding uint32) {
	d.record("ShaderStorageBlockBinding", program, blockIndex, binding)
}

func (d *Device) Uniform1i(location int32, v int32)   { d.record("Uniform1i", location, v) }
func (d *Device) Uniform1ui(location int32, v uint32) { d.record("Uniform1ui", location, v) }
func (d *Device) Uniform1f(location int32, v float32) { d.record("Uniform1f", location, v) }

func (d *Device) UniformMatrix4fv(location int32, m *[16]float32) {
	d.record("UniformMatrix4fv", location, *m)
}

func (d *Device) GenBuffer() uint32       { return d.alloc(KindBuffer) }
func (d *Device) DeleteBuffer(id uint32)  { d.free(KindBuffer, id) }
func (d *Device) BindBuffer(target gpu.Enum, id uint32) {
	d.record("BindBuffer", target, id)
}

func (d *Device) BindBufferBase(target gpu.Enum, index, id uint32) {
	d.record("BindBufferBase", target, index, id)
}

func (d *Device) BindBufferRange(target gpu.Enum, index, id uint32, offset, size int) {
	d.record("BindBufferRange", target, index, id, offset, size)
}

func (d *Device) BufferStorage(target gpu.Enum, size int, data []byte, flags gpu.Enum) {
	d.record("BufferStorage", target, size, flags)
}

func (d *Device) BufferData(target gpu.Enum, size int, data []byte, usage gpu.Enum) {
	d.record("BufferData", target, size, usage)
}

func (d *Device) BufferSubData(target gpu.Enum, offset int, data []byte) {
	d.record("BufferSubData", target, offset, len(data))
}

func (d *Device) GenVertexArray() uint32      { return d.alloc(KindVertexArray) }
func (d *Device) DeleteVertexArray(id uint32) { d.free(KindVertexArray, id) }
func (d *Device) BindVertexArray(id uint32)   { d.record("BindVertexArray", id) }

func (d *Device) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
}

func (d *Device) VertexAttribPointer(index uint32, size int32, typ gpu.Enum, normalized bool, stride int32, offset int) {
	d.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (d *Device) VertexAttribIPointer(index uint32, size int32, typ gpu.Enum, stride int32, offset int) {
	d.record("VertexAttribIPointer", index, size, typ, stride, offset)
}

func (d *Device) VertexAttribDivisor(index, divisor uint32) {
	d.record("VertexAttribDivisor", index, divisor)
}

func (d *Device) GenTexture() uint32      { return d.alloc(KindTexture) }
func (d *Device) DeleteTexture(id uint32) { d.free(KindTexture, id) }

func (d *Device) BindTexture(target gpu.Enum, id uint32) { d.record("BindTexture", target, id) }
func (d *Device) ActiveTexture(unit uint32)              { d.record("ActiveTexture", unit) }

func (d *Device) TexStorage2D(target gpu.Enum, levels int32, format gpu.Enum, width, height int32) {
	d.record("TexStorage2D", target, levels, format, width, height)
}

func (d *Device) TexStorage3D(target gpu.Enum, levels int32, format gpu.Enum, width, height, depth int32) {
	d.record("TexStorage3D", target, levels, format, width, height, depth)
}

func (d *Device) TexSubImage2D(target gpu.Enum, level, x, y, width, height int32, format, typ gpu.Enum, pixels []byte) {
	d.record("TexSubImage2D", target, level, x, y, width, height)
}

func (d *Device) BindImageTexture(unit, id uint32, level int32, layered bool, layer int32, access, format gpu.Enum) {
	d.record("BindImageTexture", unit, id, level, layered, layer, access, format)
}

func (d *Device) GenSampler() uint32             { return d.alloc(KindSampler) }
func (d *Device) DeleteSampler(id uint32)        { d.free(KindSampler, id) }
func (d *Device) BindSampler(unit, id uint32)    { d.record("BindSampler", unit, id) }

func (d *Device) SamplerParameteri(id uint32, pname gpu.Enum, v int32) {
	d.record("SamplerParameteri", id, pname, v)
}

func (d *Device) SamplerParameterf(id uint32, pname gpu.Enum, v float32) {
	d.record("SamplerParameterf", id, pname, v)
}

func (d *Device) SamplerParameterfv(id uint32, pname gpu.Enum, v []float32) {
	d.record("SamplerParameterfv", id, pname, append([]float32(nil), v...))
}

func (d *Device) GenFramebuffer() uint32      { return d.alloc(KindFramebuffer) }
func (d *Device) DeleteFramebuffer(id uint32) { d.free(KindFramebuffer, id) }

func (d *Device) BindFramebuffer(target gpu.Enum, id uint32) {
	d.record("BindFramebuffer", target, id)
}

func (d *Device) FramebufferTexture(target, attachment gpu.Enum, texture uint32, level int32) {
	d.record("FramebufferTexture", attachment, texture, level)
}

func (d *Device) FramebufferTexture2D(target, attachment, texTarget gpu.Enum, texture uint32, level int32) {
	d.record("FramebufferTexture2D", attachment, texTarget, texture, level)
}

func (d *Device) FramebufferTextureLayer(target, attachment gpu.Enum, texture uint32, level, layer int32) {
	d.record("FramebufferTextureLayer", attachment, texture, level, layer)
}

func (d *Device) DrawBuffers(bufs []gpu.Enum) {
	d.record("DrawBuffers", append([]gpu.Enum(nil), bufs...))
}

func (d *Device) CheckFramebufferStatus(target gpu.Enum) gpu.Enum {
	if d.Incomplete {
		return 0x8CD6 // FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	}
	return gpu.FRAMEBUFFER_COMPLETE
}

func (d *Device) Enable(capability gpu.Enum)  { d.record("Enable", capability) }
func (d *Device) Disable(capability gpu.Enum) { d.record("Disable", capability) }

func (d *Device) Enablei(capability gpu.Enum, index uint32) {
	d.record("Enablei", capability, index)
}

func (d *Device) Disablei(capability gpu.Enum, index uint32) {
	d.record("Disablei", capability, index)
}

func (d *Device) PolygonMode(face, mode gpu.Enum) { d.record("PolygonMode", face, mode) }
func (d *Device) CullFace(mode gpu.Enum)          { d.record("CullFace", mode) }
func (d *Device) FrontFace(mode gpu.Enum)         { d.record("FrontFace", mode) }

func (d *Device) PolygonOffsetClamp(factor, units, clamp float32) {
	d.record("PolygonOffsetClamp", factor, units, clamp)
}

func (d *Device) LineWidth(width float32) { d.record("LineWidth", width) }

func (d *Device) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha gpu.Enum) {
	d.record("BlendFuncSeparatei", buf, srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (d *Device) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha gpu.Enum) {
	d.record("BlendEquationSeparatei", buf, modeRGB, modeAlpha)
}

func (d *Device) ColorMaski(buf uint32, r, g, b, a bool) {
	d.record("ColorMaski", buf, r, g, b, a)
}

func (d *Device) DepthFunc(fn gpu.Enum)          { d.record("DepthFunc", fn) }
func (d *Device) DepthMask(write bool)           { d.record("DepthMask", write) }
func (d *Device) DepthBounds(min, max float64)   { d.record("DepthBounds", min, max) }

func (d *Device) StencilOpSeparate(face, sfail, dpfail, dppass gpu.Enum) {
	d.record("StencilOpSeparate", face, sfail, dpfail, dppass)
}

func (d *Device) StencilFuncSeparate(face, fn gpu.Enum, ref int32, mask uint32) {
	d.record("StencilFuncSeparate", face, fn, ref, mask)
}

func (d *Device) StencilMaskSeparate(face gpu.Enum, mask uint32) {
	d.record("StencilMaskSeparate", face, mask)
}

func (d *Device) Viewport(x, y, width, height int32) { d.record("Viewport", x, y, width, height) }
func (d *Device) Scissor(x, y, width, height int32)  { d.record("Scissor", x, y, width, height) }

func (d *Device) ClearColor(r, g, b, a float32) { d.record("ClearColor", r, g, b, a) }
func (d *Device) ClearDepth(depth float32)      { d.record("ClearDepth", depth) }
func (d *Device) ClearStencil(s int32)          { d.record("ClearStencil", s) }
func (d *Device) Clear(mask gpu.Enum)           { d.record("Clear", mask) }

func (d *Device) DrawArrays(mode gpu.Enum, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}

func (d *Device) DrawArraysInstanced(mode gpu.Enum, first, count, instances int32) {
	d.record("DrawArraysInstanced", mode, first, count, instances)
}

func (d *Device) DrawElementsBaseVertex(mode gpu.Enum, count int32, typ gpu.Enum, offset int, baseVertex int32) {
	d.record("DrawElementsBaseVertex", mode, count, typ, offset, baseVertex)
}

func (d *Device) DrawElementsInstancedBaseVertexBaseInstance(mode gpu.Enum, count int32, typ gpu.Enum, offset int, instances, baseVertex int32, baseInstance uint32) {
	d.record("DrawElementsInstancedBaseVertexBaseInstance", mode, count, typ, offset, instances, baseVertex, baseInstance)
}

func (d *Device) DrawElementsIndirect(mode, typ gpu.Enum, offset int) {
	d.record("DrawElementsIndirect", mode, typ, offset)
}

func (d *Device) DispatchCompute(x, y, z uint32) { d.record("DispatchCompute", x, y, z) }
func (d *Device) MemoryBarrier(barriers gpu.Enum) { d.record("MemoryBarrier", barriers) }
