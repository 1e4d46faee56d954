// Package gui is the immediate-mode debug interface scenes, techniques and
// the application draw their panels with.
package gui

// UI is a small immediate-mode widget set. Every call is only valid between
// a Begin that returned true and the matching End. Widgets that edit a value
// report whether the user changed it this frame.
type UI interface {
	Begin(title string) bool
	End()
	Text(format string, args ...any)
	Button(label string) bool
	Checkbox(label string, v *bool) bool
	SliderFloat(label string, v *float32, min, max float32) bool
	DragFloat(label string, v *float32, speed, min, max float32) bool
	// Combo selects one of items; current is updated in place.
	Combo(label string, current *int32, items []string) bool
}

// Nop ignores every widget. It is used when the application runs without a
// debug overlay.
type Nop struct{}

func (Nop) Begin(string) bool                                          { return false }
func (Nop) End()                                                       {}
func (Nop) Text(string, ...any)                                        {}
func (Nop) Button(string) bool                                         { return false }
func (Nop) Checkbox(string, *bool) bool                                { return false }
func (Nop) SliderFloat(string, *float32, float32, float32) bool        { return false }
func (Nop) DragFloat(string, *float32, float32, float32, float32) bool { return false }
func (Nop) Combo(string, *int32, []string) bool                        { return false }

var _ UI = Nop{}
