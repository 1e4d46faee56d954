package gpu

type programKind struct{}

func (programKind) gen(dev Device) uint32     { return dev.CreateProgram() }
func (programKind) del(dev Device, id uint32)   { dev.DeleteProgram(id) }

type Program struct {
	Object[programKind]
}

// LinkGraphics links a vertex and a fragment stage.
func (p *Program) LinkGraphics(vs *VertexShader, fs *FragmentShader) bool {
	return p.link(vs.ID(), fs.ID())
}

// LinkVertex links a vertex-only program, e.g. for depth passes.
func (p *Program) LinkVertex(vs *VertexShader) bool {
	return p.link(vs.ID())
}

func (p *Program) LinkCompute(cs *ComputeShader) bool {
	return p.link(cs.ID())
}

func (p *Program) link(shaders ...uint32) bool {
	if !p.Valid() {
		return false
	}
	for _, s := range shaders {
		if s == 0 {
			return false
		}
	}
	for _, s := range shaders {
		p.dev.AttachShader(p.id, s)
	}
	ok := p.dev.LinkProgram(p.id)
	for _, s := range shaders {
		p.dev.DetachShader(p.id, s)
	}
	return ok
}

func (p *Program) InfoLog(maxLength int) string {
	if !p.Valid() {
		return ""
	}
	return p.dev.ProgramInfoLog(p.id, maxLength)
}

func (p *Program) Use() {
	if p.Valid() {
		p.dev.UseProgram(p.id)
	}
}

func (p *Program) UniformBlockBinding(blockIndex, binding uint32) {
	if p.Valid() {
		p.dev.UniformBlockBinding(p.id, blockIndex, binding)
	}
}

func (p *Program) ShaderStorageBlockBinding(blockIndex, binding uint32) {
	if p.Valid() {
		p.dev.ShaderStorageBlockBinding(p.id, blockIndex, binding)
	}
}
