// Package techniquetest provides a Technique that records its lifecycle
// into a gputest device, so tests can check ordering against scene calls.
package techniquetest

import (
	"errors"

	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu/gputest"
	"github.com/spaghettifunk/rtdemo/engine/scene"
	"github.com/spaghettifunk/rtdemo/engine/technique"
)

var ErrRestore = errors.New("technique restore failed")

// Technique draws the opaque geometry of whatever scene it is applied to.
type Technique struct {
	Device      *gputest.Device
	FailRestore bool

	Restored    bool
	Restores    int
	Invalidates int
	Updates     int
	GUIUpdates  int
	Applies     int
}

func New(dev *gputest.Device) *Technique {
	return &Technique{Device: dev}
}

func (t *Technique) Restore() error {
	t.Restores++
	t.Device.Mark("Technique.Restore")
	if t.FailRestore {
		return ErrRestore
	}
	t.Restored = true
	return nil
}

func (t *Technique) Invalidate() error {
	t.Invalidates++
	t.Device.Mark("Technique.Invalidate")
	t.Restored = false
	return nil
}

func (t *Technique) Update() {
	t.Updates++
	t.Device.Mark("Technique.Update")
}

func (t *Technique) UpdateGUI() {
	t.GUIUpdates++
}

func (t *Technique) Apply(s scene.Scene) {
	t.Applies++
	t.Device.Mark("Technique.Apply")
	s.Apply(scene.Shade)
	s.Draw(scene.Opaque)
}

var _ technique.Technique = (*Technique)(nil)
