package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listener struct {
	handled bool
	got     []EventContext
}

func (l *listener) onEvent(code EventCode, sender any, inst any, ctx EventContext) bool {
	l.got = append(l.got, ctx)
	return l.handled
}

func TestEventBusDispatchOrder(t *testing.T) {
	bus := NewEventBus()
	first := &listener{handled: true}
	second := &listener{}

	require.True(t, bus.Register(EventCodeResized, first, first.onEvent))
	require.True(t, bus.Register(EventCodeResized, second, second.onEvent))
	assert.False(t, bus.Register(EventCodeResized, first, first.onEvent))

	assert.True(t, bus.Fire(EventCodeResized, nil, EventContext{Width: 800, Height: 600}))
	assert.Len(t, first.got, 1)
	assert.Empty(t, second.got)

	require.True(t, bus.Unregister(EventCodeResized, first))
	assert.False(t, bus.Unregister(EventCodeResized, first))
	assert.False(t, bus.Fire(EventCodeResized, nil, EventContext{Width: 1, Height: 1}))
	require.Len(t, second.got, 1)
	assert.Equal(t, uint32(1), second.got[0].Width)
}

func TestEventBusShutdown(t *testing.T) {
	bus := NewEventBus()
	l := &listener{}
	bus.Register(EventCodeApplicationQuit, l, l.onEvent)
	bus.Shutdown()
	bus.Fire(EventCodeApplicationQuit, nil, EventContext{})
	assert.Empty(t, l.got)
}

func TestInputKeyTransitions(t *testing.T) {
	bus := NewEventBus()
	pressed := &listener{}
	released := &listener{}
	bus.Register(EventCodeKeyPressed, pressed, pressed.onEvent)
	bus.Register(EventCodeKeyReleased, released, released.onEvent)
	in := NewInput(bus)

	in.ProcessKey(KEY_F5, true)
	in.ProcessKey(KEY_F5, true)
	assert.True(t, in.KeyPressed(KEY_F5))
	require.Len(t, pressed.got, 1)
	assert.Equal(t, KEY_F5, pressed.got[0].Key)

	in.Update()
	assert.True(t, in.IsKeyDown(KEY_F5))
	assert.False(t, in.KeyPressed(KEY_F5))

	in.ProcessKey(KEY_F5, false)
	assert.Len(t, released.got, 1)
	assert.True(t, in.WasKeyDown(KEY_F5))
}

func TestInputMouse(t *testing.T) {
	in := NewInput(nil)
	in.ProcessMouseMove(10, 20)
	in.ProcessButton(BUTTON_RIGHT, true)
	in.ProcessButton(BUTTON_MAX_BUTTONS, true)

	x, y := in.MousePosition()
	assert.Equal(t, int32(10), x)
	assert.Equal(t, int32(20), y)
	assert.True(t, in.IsButtonDown(BUTTON_RIGHT))
	assert.False(t, in.WasButtonDown(BUTTON_RIGHT))

	in.Update()
	in.ProcessMouseMove(15, 20)
	px, _ := in.PreviousMousePosition()
	assert.Equal(t, int32(10), px)
	assert.True(t, in.WasButtonDown(BUTTON_RIGHT))
}
