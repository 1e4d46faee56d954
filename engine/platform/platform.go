package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	imgui "github.com/inkyblackness/imgui-go/v4"

	"github.com/spaghettifunk/rtdemo/engine/config"
	"github.com/spaghettifunk/rtdemo/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the window and its OpenGL 4.6 core context. Window input
// goes to the engine's Input and, once attached, to the GUI.
type Platform struct {
	Window *glfw.Window

	bus   *core.EventBus
	input *core.Input
	gui   *imgui.IO
}

func New(bus *core.EventBus, input *core.Input) *Platform {
	return &Platform{bus: bus, input: input}
}

// Startup creates the window and makes its context current on the calling
// thread.
func (p *Platform) Startup(cfg config.Window) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(cfg.Width), int(cfg.Height), cfg.Title, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		glfw.Terminate()
		return err
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	p.Window = window

	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetCharCallback(p.charCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetCursorPosCallback(p.cursorPosCallback)
	p.Window.SetScrollCallback(p.scrollCallback)
	p.Window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	p.Window.SetPos(int(cfg.PosX), int(cfg.PosY))
	p.Window.Show()
	return nil
}

// AttachGUI routes input to io and installs the GUI key map.
func (p *Platform) AttachGUI(io imgui.IO) {
	p.gui = &io
	keys := map[int]glfw.Key{
		imgui.KeyTab:        glfw.KeyTab,
		imgui.KeyLeftArrow:  glfw.KeyLeft,
		imgui.KeyRightArrow: glfw.KeyRight,
		imgui.KeyUpArrow:    glfw.KeyUp,
		imgui.KeyDownArrow:  glfw.KeyDown,
		imgui.KeyPageUp:     glfw.KeyPageUp,
		imgui.KeyPageDown:   glfw.KeyPageDown,
		imgui.KeyHome:       glfw.KeyHome,
		imgui.KeyEnd:        glfw.KeyEnd,
		imgui.KeyInsert:     glfw.KeyInsert,
		imgui.KeyDelete:     glfw.KeyDelete,
		imgui.KeyBackspace:  glfw.KeyBackspace,
		imgui.KeySpace:      glfw.KeySpace,
		imgui.KeyEnter:      glfw.KeyEnter,
		imgui.KeyEscape:     glfw.KeyEscape,
		imgui.KeyA:          glfw.KeyA,
		imgui.KeyC:          glfw.KeyC,
		imgui.KeyV:          glfw.KeyV,
		imgui.KeyX:          glfw.KeyX,
		imgui.KeyY:          glfw.KeyY,
		imgui.KeyZ:          glfw.KeyZ,
	}
	for guiKey, key := range keys {
		io.KeyMap(guiKey, int(key))
	}
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

// PumpMessages processes pending window events; callbacks run from here.
func (p *Platform) PumpMessages() {
	glfw.PollEvents()
}

func (p *Platform) ShouldClose() bool {
	return p.Window.ShouldClose()
}

func (p *Platform) Close() {
	p.Window.SetShouldClose(true)
}

func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

// FramebufferSize is the drawable size in pixels.
func (p *Platform) FramebufferSize() (uint32, uint32) {
	w, h := p.Window.GetFramebufferSize()
	return uint32(w), uint32(h)
}

// Time is the number of seconds since Startup.
func (p *Platform) Time() float64 {
	return glfw.GetTime()
}

var keyCodes = map[glfw.Key]core.KeyCode{
	glfw.KeyTab:    core.KEY_TAB,
	glfw.KeyEnter:  core.KEY_ENTER,
	glfw.KeyEscape: core.KEY_ESCAPE,
	glfw.KeySpace:  core.KEY_SPACE,
	glfw.KeyF1:     core.KEY_F1,
	glfw.KeyF5:     core.KEY_F5,
	glfw.KeyF6:     core.KEY_F6,
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	pressed := action == glfw.Press
	if p.gui != nil && key >= 0 {
		if pressed {
			p.gui.KeyPress(int(key))
		} else {
			p.gui.KeyRelease(int(key))
		}
		p.gui.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
		p.gui.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
		p.gui.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
		p.gui.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
	}
	if code, ok := keyCodes[key]; ok {
		p.input.ProcessKey(code, pressed)
	}
}

func (p *Platform) charCallback(w *glfw.Window, char rune) {
	if p.gui != nil {
		p.gui.AddInputCharacters(string(char))
	}
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	var b core.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = core.BUTTON_LEFT
	case glfw.MouseButtonRight:
		b = core.BUTTON_RIGHT
	case glfw.MouseButtonMiddle:
		b = core.BUTTON_MIDDLE
	default:
		return
	}
	pressed := action == glfw.Press
	if p.gui != nil {
		p.gui.SetMouseButtonDown(int(b), pressed)
	}
	p.input.ProcessButton(b, pressed)
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if p.gui != nil {
		p.gui.SetMousePosition(imgui.Vec2{X: float32(xpos), Y: float32(ypos)})
	}
	p.input.ProcessMouseMove(int32(xpos), int32(ypos))
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if p.gui != nil {
		p.gui.AddMouseWheelDelta(float32(xoff), float32(yoff))
	}
	p.input.ProcessMouseWheel(float32(yoff))
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	p.bus.Fire(core.EventCodeResized, p, core.EventContext{Width: uint32(width), Height: uint32(height)})
}
