package gpu

// Device is the slice of the OpenGL 4.6 core API the renderer talks to.
// Handles, builders and state objects only reach the GPU through it.
type Device interface {
	// shaders and programs
	CreateShader(stage Enum) uint32
	DeleteShader(id uint32)
	ShaderSource(id uint32, src []byte)
	CompileShader(id uint32) bool
	ShaderInfoLog(id uint32, maxLength int) string
	CreateProgram() uint32
	DeleteProgram(id uint32)
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(id uint32) bool
	ProgramInfoLog(id uint32, maxLength int) string
	UseProgram(id uint32)
	UniformBlockBinding(program, blockIndex, binding uint32)
	ShaderStorageBlockBinding(program, blockIndex, binding uint32)
	Uniform1i(location int32, v int32)
	Uniform1ui(location int32, v uint32)
	Uniform1f(location int32, v float32)
	UniformMatrix4fv(location int32, m *[16]float32)

	// buffers
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target Enum, id uint32)
	BindBufferBase(target Enum, index, id uint32)
	BindBufferRange(target Enum, index, id uint32, offset, size int)
	BufferStorage(target Enum, size int, data []byte, flags Enum)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)

	// vertex arrays
	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int)
	VertexAttribIPointer(index uint32, size int32, typ Enum, stride int32, offset int)
	VertexAttribDivisor(index, divisor uint32)

	// textures and samplers
	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(target Enum, id uint32)
	ActiveTexture(unit uint32)
	TexStorage2D(target Enum, levels int32, format Enum, width, height int32)
	TexStorage3D(target Enum, levels int32, format Enum, width, height, depth int32)
	TexSubImage2D(target Enum, level, x, y, width, height int32, format, typ Enum, pixels []byte)
	BindImageTexture(unit, id uint32, level int32, layered bool, layer int32, access, format Enum)
	GenSampler() uint32
	DeleteSampler(id uint32)
	BindSampler(unit, id uint32)
	SamplerParameteri(id uint32, pname Enum, v int32)
	SamplerParameterf(id uint32, pname Enum, v float32)
	SamplerParameterfv(id uint32, pname Enum, v []float32)

	// framebuffers
	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	BindFramebuffer(target Enum, id uint32)
	FramebufferTexture(target, attachment Enum, texture uint32, level int32)
	FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int32)
	FramebufferTextureLayer(target, attachment Enum, texture uint32, level, layer int32)
	DrawBuffers(bufs []Enum)
	CheckFramebufferStatus(target Enum) Enum

	// fixed function state
	Enable(capability Enum)
	Disable(capability Enum)
	Enablei(capability Enum, index uint32)
	Disablei(capability Enum, index uint32)
	PolygonMode(face, mode Enum)
	CullFace(mode Enum)
	FrontFace(mode Enum)
	PolygonOffsetClamp(factor, units, clamp float32)
	LineWidth(width float32)
	BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha Enum)
	ColorMaski(buf uint32, r, g, b, a bool)
	DepthFunc(fn Enum)
	DepthMask(write bool)
	DepthBounds(min, max float64)
	StencilOpSeparate(face, sfail, dpfail, dppass Enum)
	StencilFuncSeparate(face, fn Enum, ref int32, mask uint32)
	StencilMaskSeparate(face Enum, mask uint32)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)

	// frame and draw
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float32)
	ClearStencil(s int32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int32)
	DrawArraysInstanced(mode Enum, first, count, instances int32)
	DrawElementsBaseVertex(mode Enum, count int32, typ Enum, offset int, baseVertex int32)
	DrawElementsInstancedBaseVertexBaseInstance(mode Enum, count int32, typ Enum, offset int, instances, baseVertex int32, baseInstance uint32)
	DrawElementsIndirect(mode, typ Enum, offset int)
	DispatchCompute(x, y, z uint32)
	MemoryBarrier(barriers Enum)
}
