package gpu

// Stage selects the pipeline stage of a Shader at compile time.
type Stage interface {
	stage() Enum
}

type VertexStage struct{}
type FragmentStage struct{}
type ComputeStage struct{}

func (VertexStage) stage() Enum   { return VERTEX_SHADER }
func (FragmentStage) stage() Enum { return FRAGMENT_SHADER }
func (ComputeStage) stage() Enum  { return COMPUTE_SHADER }

type shaderKind[S Stage] struct{}

func (shaderKind[S]) gen(dev Device) uint32 {
	var s S
	return dev.CreateShader(s.stage())
}

func (shaderKind[S]) del(dev Device, id uint32) { dev.DeleteShader(id) }

type Shader[S Stage] struct {
	Object[shaderKind[S]]
}

type (
	VertexShader   = Shader[VertexStage]
	FragmentShader = Shader[FragmentStage]
	ComputeShader  = Shader[ComputeStage]
)

// Compile uploads src and compiles it, returning the compile status.
func (s *Shader[S]) Compile(src []byte) bool {
	if !s.Valid() {
		return false
	}
	s.dev.ShaderSource(s.id, src)
	return s.dev.CompileShader(s.id)
}

// InfoLog returns at most maxLength bytes of the compiler diagnostic.
func (s *Shader[S]) InfoLog(maxLength int) string {
	if !s.Valid() {
		return ""
	}
	return s.dev.ShaderInfoLog(s.id, maxLength)
}
