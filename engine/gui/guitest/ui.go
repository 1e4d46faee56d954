// Package guitest provides a scripted gui.UI for tests.
package guitest

import (
	"fmt"

	"github.com/spaghettifunk/rtdemo/engine/gui"
)

// UI records every widget and plays back scripted interactions. A scripted
// value is consumed by the next widget with that label.
type UI struct {
	// Widgets lists the labels drawn, in order, since the last Reset.
	Widgets []string
	// Texts holds the formatted Text calls.
	Texts []string

	combos   map[string][]int32
	presses  map[string]int
	checks   map[string][]bool
	floats   map[string][]float32
	windows  int
	Disabled bool
}

func New() *UI {
	return &UI{
		combos:  map[string][]int32{},
		presses: map[string]int{},
		checks:  map[string][]bool{},
		floats:  map[string][]float32{},
	}
}

// SelectCombo queues a selection for the combo with the given label.
func (u *UI) SelectCombo(label string, index int32) {
	u.combos[label] = append(u.combos[label], index)
}

// PressButton makes the next Button call with label return true.
func (u *UI) PressButton(label string) {
	u.presses[label]++
}

func (u *UI) SetCheckbox(label string, v bool) {
	u.checks[label] = append(u.checks[label], v)
}

// SetFloat queues a value for the next slider or drag with label.
func (u *UI) SetFloat(label string, v float32) {
	u.floats[label] = append(u.floats[label], v)
}

// Reset forgets what was drawn.
func (u *UI) Reset() {
	u.Widgets = nil
	u.Texts = nil
}

// Open is the number of windows begun but not yet ended.
func (u *UI) Open() int {
	return u.windows
}

func (u *UI) Begin(title string) bool {
	u.Widgets = append(u.Widgets, "window:"+title)
	u.windows++
	return !u.Disabled
}

func (u *UI) End() {
	u.windows--
}

func (u *UI) Text(format string, args ...any) {
	u.Texts = append(u.Texts, fmt.Sprintf(format, args...))
}

func (u *UI) Button(label string) bool {
	u.Widgets = append(u.Widgets, label)
	if u.presses[label] > 0 {
		u.presses[label]--
		return true
	}
	return false
}

func (u *UI) Checkbox(label string, v *bool) bool {
	u.Widgets = append(u.Widgets, label)
	q := u.checks[label]
	if len(q) == 0 {
		return false
	}
	*v, u.checks[label] = q[0], q[1:]
	return true
}

func (u *UI) SliderFloat(label string, v *float32, min, max float32) bool {
	return u.float(label, v, min, max)
}

func (u *UI) DragFloat(label string, v *float32, speed, min, max float32) bool {
	return u.float(label, v, min, max)
}

func (u *UI) float(label string, v *float32, min, max float32) bool {
	u.Widgets = append(u.Widgets, label)
	q := u.floats[label]
	if len(q) == 0 {
		return false
	}
	f := q[0]
	u.floats[label] = q[1:]
	if min < max {
		f = clamp(f, min, max)
	}
	*v = f
	return true
}

func (u *UI) Combo(label string, current *int32, items []string) bool {
	u.Widgets = append(u.Widgets, label)
	q := u.combos[label]
	if len(q) == 0 {
		return false
	}
	sel := q[0]
	u.combos[label] = q[1:]
	if sel < 0 || int(sel) >= len(items) || sel == *current {
		return false
	}
	*current = sel
	return true
}

// Has reports whether a widget with label was drawn.
func (u *UI) Has(label string) bool {
	for _, w := range u.Widgets {
		if w == label {
			return true
		}
	}
	return false
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

var _ gui.UI = (*UI)(nil)
