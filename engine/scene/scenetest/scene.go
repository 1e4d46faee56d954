// Package scenetest provides a scene.Scene that records what a technique
// asks of it.
package scenetest

import (
	"errors"

	"github.com/spaghettifunk/rtdemo/engine/renderer/gpu/gputest"
	"github.com/spaghettifunk/rtdemo/engine/scene"
)

var ErrRestore = errors.New("scenetest: restore failed")

// Scene marks every call on Device as "Scene.<Method>" with the kind as the
// only argument.
type Scene struct {
	Device *gputest.Device
	// FailRestore makes Restore return ErrRestore.
	FailRestore bool

	Restored    bool
	Restores    int
	Invalidates int
	Updates     int
	GUIUpdates  int
	Applied     []scene.ApplyType
	Drawn       []scene.DrawType
}

func New(dev *gputest.Device) *Scene {
	return &Scene{Device: dev}
}

func (s *Scene) Restore() error {
	s.Restores++
	s.Device.Mark("Scene.Restore")
	if s.FailRestore {
		return ErrRestore
	}
	s.Restored = true
	return nil
}

func (s *Scene) Invalidate() error {
	s.Invalidates++
	s.Device.Mark("Scene.Invalidate")
	s.Restored = false
	return nil
}

func (s *Scene) Update() {
	s.Updates++
	s.Device.Mark("Scene.Update")
}

func (s *Scene) UpdateGUI() {
	s.GUIUpdates++
}

func (s *Scene) Apply(kind scene.ApplyType) {
	s.Applied = append(s.Applied, kind)
	s.Device.Mark("Scene.Apply", kind)
}

func (s *Scene) Draw(kind scene.DrawType) {
	s.Drawn = append(s.Drawn, kind)
	s.Device.Mark("Scene.Draw", kind)
}

var _ scene.Scene = (*Scene)(nil)
