// Package opengl implements gpu.Device on top of the go-gl 4.6 core
// bindings. Every call must happen on the thread owning the context.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
)

type Device struct {
	version  string
	renderer string
}

// New loads the GL entry points for the current context.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize opengl: %w", err)
	}
	d := &Device{
		version:  gl.GoStr(gl.GetString(gl.VERSION)),
		renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	core.LogInfo("OpenGL %s on %s", d.version, d.renderer)
	return d, nil
}

func (d *Device) Version() string  { return d.version }
func (d *Device) Renderer() string { return d.renderer }

var _ gpu.Device = (*Device)(nil)

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func infoLog(length int32, maxLength int, get func(bufSize int32, length *int32, log *uint8)) string {
	if length <= 1 {
		return ""
	}
	if int(length) > maxLength+1 {
		length = int32(maxLength + 1)
	}
	buf := make([]uint8, length)
	var written int32
	get(length, &written, &buf[0])
	return strings.TrimRight(string(buf[:written]), "\x00")
}

func (d *Device) CreateShader(stage gpu.Enum) uint32 { return gl.CreateShader(uint32(stage)) }
func (d *Device) DeleteShader(id uint32)              { gl.DeleteShader(id) }

func (d *Device) ShaderSource(id uint32, src []byte) {
	csources, free := gl.Strs(string(src) + "\x00")
	defer free()
	gl.ShaderSource(id, 1, csources, nil)
}

func (d *Device) CompileShader(id uint32) bool {
	gl.CompileShader(id)
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ShaderInfoLog(id uint32, maxLength int) string {
	var length int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &length)
	return infoLog(length, maxLength, func(bufSize int32, l *int32, log *uint8) {
		gl.GetShaderInfoLog(id, bufSize, l, log)
	})
}

func (d *Device) CreateProgram() uint32    { return gl.CreateProgram() }
func (d *Device) DeleteProgram(id uint32)  { gl.DeleteProgram(id) }
func (d *Device) AttachShader(p, s uint32) { gl.AttachShader(p, s) }
func (d *Device) DetachShader(p, s uint32) { gl.DetachShader(p, s) }

func (d *Device) LinkProgram(id uint32) bool {
	gl.LinkProgram(id)
	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ProgramInfoLog(id uint32, maxLength int) string {
	var length int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &length)
	return infoLog(length, maxLength, func(bufSize int32, l *int32, log *uint8) {
		gl.GetProgramInfoLog(id, bufSize, l, log)
	})
}

func (d *Device) UseProgram(id uint32) { gl.UseProgram(id) }

func (d *Device) UniformBlockBinding(program, blockIndex, binding uint32) {
	gl.UniformBlockBinding(program, blockIndex, binding)
}

func (d *Device) ShaderStorageBlockBinding(program, blockIndex, binding uint32) {
	gl.ShaderStorageBlockBinding(program, blockIndex, binding)
}

func (d *Device) Uniform1i(location int32, v int32)   { gl.Uniform1i(location, v) }
func (d *Device) Uniform1ui(location int32, v uint32) { gl.Uniform1ui(location, v) }
func (d *Device) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (d *Device) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *Device) DeleteBuffer(id uint32)                 { gl.DeleteBuffers(1, &id) }
func (d *Device) BindBuffer(target gpu.Enum, id uint32) { gl.BindBuffer(uint32(target), id) }

func (d *Device) BindBufferBase(target gpu.Enum, index, id uint32) {
	gl.BindBufferBase(uint32(target), index, id)
}

func (d *Device) BindBufferRange(target gpu.Enum, index, id uint32, offset, size int) {
	gl.BindBufferRange(uint32(target), index, id, offset, size)
}

func (d *Device) BufferStorage(target gpu.Enum, size int, data []byte, flags gpu.Enum) {
	gl.BufferStorage(uint32(target), size, ptr(data), uint32(flags))
}

func (d *Device) BufferData(target gpu.Enum, size int, data []byte, usage gpu.Enum) {
	gl.BufferData(uint32(target), size, ptr(data), uint32(usage))
}

func (d *Device) BufferSubData(target gpu.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(data), gl.Ptr(data))
}

func (d *Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *Device) DeleteVertexArray(id uint32)           { gl.DeleteVertexArrays(1, &id) }
func (d *Device) BindVertexArray(id uint32)             { gl.BindVertexArray(id) }
func (d *Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (d *Device) VertexAttribPointer(index uint32, size int32, typ gpu.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(typ), normalized, stride, uintptr(offset))
}

func (d *Device) VertexAttribIPointer(index uint32, size int32, typ gpu.Enum, stride int32, offset int) {
	gl.VertexAttribIPointerWithOffset(index, size, uint32(typ), stride, uintptr(offset))
}

func (d *Device) VertexAttribDivisor(index, divisor uint32) { gl.VertexAttribDivisor(index, divisor) }

func (d *Device) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (d *Device) DeleteTexture(id uint32)                 { gl.DeleteTextures(1, &id) }
func (d *Device) BindTexture(target gpu.Enum, id uint32) { gl.BindTexture(uint32(target), id) }
func (d *Device) ActiveTexture(unit uint32)              { gl.ActiveTexture(gl.TEXTURE0 + unit) }

func (d *Device) TexStorage2D(target gpu.Enum, levels int32, format gpu.Enum, width, height int32) {
	gl.TexStorage2D(uint32(target), levels, uint32(format), width, height)
}

func (d *Device) TexStorage3D(target gpu.Enum, levels int32, format gpu.Enum, width, height, depth int32) {
	gl.TexStorage3D(uint32(target), levels, uint32(format), width, height, depth)
}

func (d *Device) TexSubImage2D(target gpu.Enum, level, x, y, width, height int32, format, typ gpu.Enum, pixels []byte) {
	gl.TexSubImage2D(uint32(target), level, x, y, width, height, uint32(format), uint32(typ), ptr(pixels))
}

func (d *Device) BindImageTexture(unit, id uint32, level int32, layered bool, layer int32, access, format gpu.Enum) {
	gl.BindImageTexture(unit, id, level, layered, layer, uint32(access), uint32(format))
}

func (d *Device) GenSampler() uint32 {
	var id uint32
	gl.GenSamplers(1, &id)
	return id
}

func (d *Device) DeleteSampler(id uint32)     { gl.DeleteSamplers(1, &id) }
func (d *Device) BindSampler(unit, id uint32) { gl.BindSampler(unit, id) }

func (d *Device) SamplerParameteri(id uint32, pname gpu.Enum, v int32) {
	gl.SamplerParameteri(id, uint32(pname), v)
}

func (d *Device) SamplerParameterf(id uint32, pname gpu.Enum, v float32) {
	gl.SamplerParameterf(id, uint32(pname), v)
}

func (d *Device) SamplerParameterfv(id uint32, pname gpu.Enum, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.SamplerParameterfv(id, uint32(pname), &v[0])
}

func (d *Device) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (d *Device) DeleteFramebuffer(id uint32) { gl.DeleteFramebuffers(1, &id) }

func (d *Device) BindFramebuffer(target gpu.Enum, id uint32) {
	gl.BindFramebuffer(uint32(target), id)
}

func (d *Device) FramebufferTexture(target, attachment gpu.Enum, texture uint32, level int32) {
	gl.FramebufferTexture(uint32(target), uint32(attachment), texture, level)
}

func (d *Device) FramebufferTexture2D(target, attachment, texTarget gpu.Enum, texture uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), texture, level)
}

func (d *Device) FramebufferTextureLayer(target, attachment gpu.Enum, texture uint32, level, layer int32) {
	gl.FramebufferTextureLayer(uint32(target), uint32(attachment), texture, level, layer)
}

func (d *Device) DrawBuffers(bufs []gpu.Enum) {
	if len(bufs) == 0 {
		return
	}
	raw := make([]uint32, len(bufs))
	for i, b := range bufs {
		raw[i] = uint32(b)
	}
	gl.DrawBuffers(int32(len(raw)), &raw[0])
}

func (d *Device) CheckFramebufferStatus(target gpu.Enum) gpu.Enum {
	return gpu.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (d *Device) Enable(capability gpu.Enum) {
	// the core bindings do not expose EXT_depth_bounds_test
	if capability == gpu.DEPTH_BOUNDS_TEST_EXT {
		return
	}
	gl.Enable(uint32(capability))
}

func (d *Device) Disable(capability gpu.Enum) {
	if capability == gpu.DEPTH_BOUNDS_TEST_EXT {
		return
	}
	gl.Disable(uint32(capability))
}

func (d *Device) Enablei(capability gpu.Enum, index uint32)  { gl.Enablei(uint32(capability), index) }
func (d *Device) Disablei(capability gpu.Enum, index uint32) { gl.Disablei(uint32(capability), index) }

func (d *Device) PolygonMode(face, mode gpu.Enum) { gl.PolygonMode(uint32(face), uint32(mode)) }
func (d *Device) CullFace(mode gpu.Enum)          { gl.CullFace(uint32(mode)) }
func (d *Device) FrontFace(mode gpu.Enum)         { gl.FrontFace(uint32(mode)) }

func (d *Device) PolygonOffsetClamp(factor, units, clamp float32) {
	gl.PolygonOffsetClamp(factor, units, clamp)
}

func (d *Device) LineWidth(width float32) { gl.LineWidth(width) }

func (d *Device) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha gpu.Enum) {
	gl.BlendFuncSeparatei(buf, uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (d *Device) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha gpu.Enum) {
	gl.BlendEquationSeparatei(buf, uint32(modeRGB), uint32(modeAlpha))
}

func (d *Device) ColorMaski(buf uint32, r, g, b, a bool) { gl.ColorMaski(buf, r, g, b, a) }
func (d *Device) DepthFunc(fn gpu.Enum)                  { gl.DepthFunc(uint32(fn)) }
func (d *Device) DepthMask(write bool)                   { gl.DepthMask(write) }

// DepthBounds is a no-op: glDepthBoundsEXT is not part of the core profile.
func (d *Device) DepthBounds(min, max float64) {}

func (d *Device) StencilOpSeparate(face, sfail, dpfail, dppass gpu.Enum) {
	gl.StencilOpSeparate(uint32(face), uint32(sfail), uint32(dpfail), uint32(dppass))
}

func (d *Device) StencilFuncSeparate(face, fn gpu.Enum, ref int32, mask uint32) {
	gl.StencilFuncSeparate(uint32(face), uint32(fn), ref, mask)
}

func (d *Device) StencilMaskSeparate(face gpu.Enum, mask uint32) {
	gl.StencilMaskSeparate(uint32(face), mask)
}

func (d *Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (d *Device) Scissor(x, y, width, height int32)  { gl.Scissor(x, y, width, height) }

func (d *Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (d *Device) ClearDepth(depth float32)      { gl.ClearDepthf(depth) }
func (d *Device) ClearStencil(s int32)          { gl.ClearStencil(s) }
func (d *Device) Clear(mask gpu.Enum)           { gl.Clear(uint32(mask)) }

func (d *Device) DrawArrays(mode gpu.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (d *Device) DrawArraysInstanced(mode gpu.Enum, first, count, instances int32) {
	gl.DrawArraysInstanced(uint32(mode), first, count, instances)
}

func (d *Device) DrawElementsBaseVertex(mode gpu.Enum, count int32, typ gpu.Enum, offset int, baseVertex int32) {
	gl.DrawElementsBaseVertex(uint32(mode), count, uint32(typ), gl.PtrOffset(offset), baseVertex)
}

func (d *Device) DrawElementsInstancedBaseVertexBaseInstance(mode gpu.Enum, count int32, typ gpu.Enum, offset int, instances, baseVertex int32, baseInstance uint32) {
	gl.DrawElementsInstancedBaseVertexBaseInstance(uint32(mode), count, uint32(typ), gl.PtrOffset(offset), instances, baseVertex, baseInstance)
}

func (d *Device) DrawElementsIndirect(mode, typ gpu.Enum, offset int) {
	gl.DrawElementsIndirect(uint32(mode), uint32(typ), gl.PtrOffset(offset))
}

func (d *Device) DispatchCompute(x, y, z uint32)  { gl.DispatchCompute(x, y, z) }
func (d *Device) MemoryBarrier(barriers gpu.Enum) { gl.MemoryBarrier(uint32(barriers)) }
