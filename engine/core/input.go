package core

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// KeyCode uses virtual-key values. Only the keys the demo reacts to are
// named; the platform drops the rest.
type KeyCode uint16

const (
	KEY_TAB    KeyCode = 0x09
	KEY_ENTER  KeyCode = 0x0D
	KEY_ESCAPE KeyCode = 0x1B
	KEY_SPACE  KeyCode = 0x20
	KEY_F1     KeyCode = 0x70
	KEY_F5     KeyCode = 0x74
	KEY_F6     KeyCode = 0x75

	KEYS_MAX_KEYS KeyCode = 0x100
)

type MouseState struct {
	X       int32
	Y       int32
	Buttons [BUTTON_MAX_BUTTONS]bool
}

type KeyboardState struct {
	Keys [256]bool
}

// Input holds the current and previous frame state of keyboard and mouse.
// State changes are also fired on the bus, if any.
type Input struct {
	bus              *EventBus
	keyboardCurrent  KeyboardState
	keyboardPrevious KeyboardState
	mouseCurrent     MouseState
	mousePrevious    MouseState
}

func NewInput(bus *EventBus) *Input {
	return &Input{bus: bus}
}

// Update makes the current state the previous one. Call once per frame
// after everything read it.
func (in *Input) Update() {
	in.keyboardPrevious = in.keyboardCurrent
	in.mousePrevious = in.mouseCurrent
}

func (in *Input) IsKeyDown(key KeyCode) bool  { return in.keyboardCurrent.Keys[key] }
func (in *Input) WasKeyDown(key KeyCode) bool { return in.keyboardPrevious.Keys[key] }

// KeyPressed is true on the first frame a key is down.
func (in *Input) KeyPressed(key KeyCode) bool {
	return in.IsKeyDown(key) && !in.WasKeyDown(key)
}

func (in *Input) IsButtonDown(button Button) bool  { return in.mouseCurrent.Buttons[button] }
func (in *Input) WasButtonDown(button Button) bool { return in.mousePrevious.Buttons[button] }

func (in *Input) MousePosition() (int32, int32) {
	return in.mouseCurrent.X, in.mouseCurrent.Y
}

func (in *Input) PreviousMousePosition() (int32, int32) {
	return in.mousePrevious.X, in.mousePrevious.Y
}

func (in *Input) ProcessKey(key KeyCode, pressed bool) {
	if in.keyboardCurrent.Keys[key] == pressed {
		return
	}
	in.keyboardCurrent.Keys[key] = pressed
	code := EventCodeKeyReleased
	if pressed {
		code = EventCodeKeyPressed
	}
	in.fire(code, EventContext{Key: key})
}

func (in *Input) ProcessButton(button Button, pressed bool) {
	if button >= BUTTON_MAX_BUTTONS || in.mouseCurrent.Buttons[button] == pressed {
		return
	}
	in.mouseCurrent.Buttons[button] = pressed
	code := EventCodeButtonReleased
	if pressed {
		code = EventCodeButtonPressed
	}
	in.fire(code, EventContext{Button: button})
}

func (in *Input) ProcessMouseMove(x, y int32) {
	if in.mouseCurrent.X == x && in.mouseCurrent.Y == y {
		return
	}
	in.mouseCurrent.X, in.mouseCurrent.Y = x, y
	in.fire(EventCodeMouseMoved, EventContext{X: x, Y: y})
}

func (in *Input) ProcessMouseWheel(delta float32) {
	in.fire(EventCodeMouseWheel, EventContext{Scroll: delta})
}

func (in *Input) fire(code EventCode, ctx EventContext) {
	if in.bus != nil {
		in.bus.Fire(code, in, ctx)
	}
}
