// Package technique implements the shading techniques the demo can switch
// between at runtime.
package technique

import (
	"fmt"

	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/gui"
	"github.com/spaghettifunk/rtdemo/engine/scene"
)

// Technique owns programs, render targets and constants of one way of
// rendering a scene.
//
// Restore creates every resource; on failure nothing it created stays
// allocated. Invalidate releases everything, may be called any number of
// times and on a technique that was never restored. Apply does nothing
// while the technique is not restored.
type Technique interface {
	Restore() error
	Invalidate() error
	Update()
	UpdateGUI()
	Apply(s scene.Scene)
}

const notAvailable = "not available"

// status is the message shown in a technique's panel: the last restore
// error, or a short summary.
type status struct {
	name string
	log  string
}

func (st *status) succeeded() {
	st.log = "succeeded"
	core.LogInfo("restored technique %s", st.name)
}

func (st *status) failed(err error) {
	st.log = err.Error()
	core.LogError("failed to restore technique %s: %s", st.name, err)
}

func (st *status) invalidated() {
	st.log = notAvailable
}

func (st *status) draw(ui gui.UI) {
	ui.Text("%s", st.log)
}

// Log returns the panel message.
func (st *status) Log() string {
	return st.log
}

func allocErr(what string) error {
	return fmt.Errorf("%s: %w", what, core.ErrAllocation)
}

func incompleteErr(what string) error {
	return fmt.Errorf("%s: %w", what, core.ErrFramebufferIncomplete)
}
