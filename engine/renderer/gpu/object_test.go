package gpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu"
	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu/gputest"
)

func TestZeroHandleIsEmpty(t *testing.T) {
	var b gpu.Buffer
	assert.False(t, b.Valid())
	assert.Zero(t, b.ID())

	// releasing an empty handle never reaches the device
	dev := gputest.New()
	b.Delete()
	assert.Empty(t, dev.Calls())
}

func TestTakeMovesOwnershipExactlyOnce(t *testing.T) {
	dev := gputest.New()

	var a, b gpu.Buffer
	require.True(t, a.Gen(dev))
	id := a.ID()

	b.Take(&a)
	assert.False(t, a.Valid())
	assert.Equal(t, id, b.ID())

	a.Delete()
	b.Delete()
	assert.Equal(t, 1, dev.DestroyCount(gputest.KindBuffer, id))
	assert.Zero(t, dev.Live())
}

func TestTakeDestroysPreviousResourceFirst(t *testing.T) {
	dev := gputest.New()

	var a, b gpu.Texture
	require.True(t, a.Gen(dev))
	require.True(t, b.Gen(dev))
	old, moved := a.ID(), b.ID()

	a.Take(&b)
	assert.Equal(t, 1, dev.DestroyCount(gputest.KindTexture, old))
	assert.Equal(t, moved, a.ID())
	assert.True(t, dev.IsLive(gputest.KindTexture, moved))
	assert.Equal(t, 1, dev.Live())
}

func TestTakeFromSelfIsNoop(t *testing.T) {
	dev := gputest.New()

	var p gpu.Program
	require.True(t, p.Gen(dev))
	id := p.ID()

	p.Take(&p)
	assert.Equal(t, id, p.ID())
	assert.Zero(t, dev.DestroyCount(gputest.KindProgram, id))
}

func TestGenReleasesHeldObject(t *testing.T) {
	dev := gputest.New()

	var s gpu.Sampler
	require.True(t, s.Gen(dev))
	first := s.ID()
	require.True(t, s.Gen(dev))

	assert.NotEqual(t, first, s.ID())
	assert.Equal(t, 1, dev.DestroyCount(gputest.KindSampler, first))
	assert.Equal(t, 1, dev.Live())
}

func TestGenFailureLeavesHandleEmpty(t *testing.T) {
	dev := gputest.New()
	dev.FailAlloc[gputest.KindFramebuffer] = true

	var f gpu.Framebuffer
	assert.False(t, f.Gen(dev))
	assert.False(t, f.Valid())
	f.Delete()
	assert.Zero(t, dev.Count("Deleteframebuffer"))
}

func TestDeleteIsIdempotent(t *testing.T) {
	dev := gputest.New()

	var v gpu.VertexArray
	require.True(t, v.Gen(dev))
	id := v.ID()
	v.Delete()
	v.Delete()
	assert.Equal(t, 1, dev.DestroyCount(gputest.KindVertexArray, id))
}

func TestOperationsOnEmptyHandlesAreNoops(t *testing.T) {
	dev := gputest.New()

	var b gpu.Buffer
	var tex gpu.Texture
	var p gpu.Program
	b.Bind(gpu.ARRAY_BUFFER)
	b.BindBase(gpu.UNIFORM_BUFFER, 0)
	tex.Active(0, gpu.TEXTURE_2D)
	p.Use()
	assert.Empty(t, dev.Calls())
}

func TestBytes(t *testing.T) {
	assert.Nil(t, gpu.Bytes([]float32{}))
	assert.Len(t, gpu.Bytes([]float32{1, 2, 3}), 12)

	v := struct{ A, B uint32 }{1, 2}
	assert.Len(t, gpu.BytesOf(&v), 8)
	assert.Equal(t, 16, gpu.SizeOf[[4]float32]())
}
