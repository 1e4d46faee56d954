package gpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu/gputest"
)

func TestShaderCompile(t *testing.T) {
	dev := gputest.New()
	dev.FailCompile = gputest.FailSourcesContaining("broken")

	var vs gpu.VertexShader
	require.True(t, vs.Gen(dev))
	assert.True(t, vs.Compile([]byte("void main() {}")))
	assert.Empty(t, vs.InfoLog(gpu.InfoLogLength))

	var fs gpu.FragmentShader
	require.True(t, fs.Gen(dev))
	assert.False(t, fs.Compile([]byte("broken")))
	assert.Equal(t, dev.CompileLog, fs.InfoLog(gpu.InfoLogLength))
	assert.Len(t, fs.InfoLog(5), 5)

	stages := dev.Find("Genshader")
	require.Len(t, stages, 2)
}

func TestShaderStageFollowsType(t *testing.T) {
	rec := &stageRecorder{Device: gputest.New()}

	var vs gpu.VertexShader
	var fs gpu.FragmentShader
	var cs gpu.ComputeShader
	vs.Gen(rec)
	fs.Gen(rec)
	cs.Gen(rec)
	assert.Equal(t, []gpu.Enum{gpu.VERTEX_SHADER, gpu.FRAGMENT_SHADER, gpu.COMPUTE_SHADER}, rec.stages)
}

type stageRecorder struct {
	*gputest.Device
	stages []gpu.Enum
}

func (r *stageRecorder) CreateShader(stage gpu.Enum) uint32 {
	r.stages = append(r.stages, stage)
	return r.Device.CreateShader(stage)
}

func TestProgramLinkAttachesAndDetaches(t *testing.T) {
	dev := gputest.New()

	var vs gpu.VertexShader
	var fs gpu.FragmentShader
	var p gpu.Program
	require.True(t, vs.Gen(dev))
	require.True(t, fs.Gen(dev))
	require.True(t, p.Gen(dev))

	dev.Reset()
	assert.True(t, p.LinkGraphics(&vs, &fs))
	assert.Equal(t, []string{"AttachShader", "AttachShader", "LinkProgram", "DetachShader", "DetachShader"}, dev.Ops())
}

func TestProgramLinkFailure(t *testing.T) {
	dev := gputest.New()
	dev.FailLink = true

	var cs gpu.ComputeShader
	var p gpu.Program
	require.True(t, cs.Gen(dev))
	require.True(t, p.Gen(dev))
	assert.False(t, p.LinkCompute(&cs))
	assert.NotEmpty(t, p.InfoLog(gpu.InfoLogLength))
}

func TestProgramLinkRejectsEmptyStage(t *testing.T) {
	dev := gputest.New()

	var vs gpu.VertexShader
	var p gpu.Program
	require.True(t, p.Gen(dev))
	assert.False(t, p.LinkVertex(&vs))
	assert.Zero(t, dev.Count("LinkProgram"))
}

func TestBufferStorageBindsFirst(t *testing.T) {
	dev := gputest.New()

	var b gpu.Buffer
	require.True(t, b.Gen(dev))
	dev.Reset()
	b.Storage(gpu.SHADER_STORAGE_BUFFER, 64, nil, gpu.DYNAMIC_STORAGE_BIT)
	b.SubData(gpu.SHADER_STORAGE_BUFFER, 16, make([]byte, 16))
	b.BindRange(gpu.SHADER_STORAGE_BUFFER, 3, 0, 32)

	calls := dev.Calls()
	require.Len(t, calls, 5)
	assert.Equal(t, "BindBuffer", calls[0].Op)
	assert.Equal(t, []any{gpu.SHADER_STORAGE_BUFFER, 64, gpu.DYNAMIC_STORAGE_BIT}, calls[1].Args)
	assert.Equal(t, []any{gpu.SHADER_STORAGE_BUFFER, 16, 16}, calls[3].Args)
	assert.Equal(t, []any{gpu.SHADER_STORAGE_BUFFER, uint32(3), b.ID(), 0, 32}, calls[4].Args)
}
