package core

// EventCode identifies what happened. Application codes start at
// EventCodeUser.
type EventCode uint16

const (
	// Closes the window at the end of the frame.
	EventCodeApplicationQuit EventCode = iota + 1

	// Context usage: Key.
	EventCodeKeyPressed
	EventCodeKeyReleased

	// Context usage: Button.
	EventCodeButtonPressed
	EventCodeButtonReleased

	// Context usage: X, Y in window coordinates.
	EventCodeMouseMoved

	// Context usage: Scroll, positive away from the user.
	EventCodeMouseWheel

	// Framebuffer size changed. Context usage: Width, Height.
	EventCodeResized

	// A watched asset changed on disk. Context usage: Path.
	EventCodeAssetChanged

	EventCodeUser EventCode = 0x100
)

// EventContext is the payload of an event; which fields are meaningful
// depends on the code.
type EventContext struct {
	Key    KeyCode
	Button Button
	X, Y   int32
	Scroll float32
	Width  uint32
	Height uint32
	Path   string
}

// FnOnEvent returns true when it handled the event; listeners registered
// after it are then skipped.
type FnOnEvent func(code EventCode, sender any, listener any, ctx EventContext) bool

type registeredEvent struct {
	listener any
	callback FnOnEvent
}

// EventBus dispatches events synchronously on the calling goroutine, in
// registration order.
type EventBus struct {
	registered map[EventCode][]registeredEvent
}

func NewEventBus() *EventBus {
	return &EventBus{registered: map[EventCode][]registeredEvent{}}
}

// Register adds onEvent for code. A listener can register once per code;
// a second registration returns false.
func (b *EventBus) Register(code EventCode, listener any, onEvent FnOnEvent) bool {
	for _, e := range b.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event %d", code)
			return false
		}
	}
	b.registered[code] = append(b.registered[code], registeredEvent{listener: listener, callback: onEvent})
	return true
}

// Unregister removes listener from code and reports whether it was there.
func (b *EventBus) Unregister(code EventCode, listener any) bool {
	events := b.registered[code]
	for i, e := range events {
		if e.listener == listener {
			b.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// Fire reports whether a listener handled the event.
func (b *EventBus) Fire(code EventCode, sender any, ctx EventContext) bool {
	for _, e := range b.registered[code] {
		if e.callback(code, sender, e.listener, ctx) {
			return true
		}
	}
	return false
}

// Shutdown drops every registration.
func (b *EventBus) Shutdown() {
	clear(b.registered)
}
