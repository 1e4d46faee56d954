// Package app keeps the registered scenes and techniques and drives the
// selected pair every frame.
package app

import (
	"fmt"

	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/scene"
	"github.com/spaghettifunk/rtdemo/engine/technique"
)

// Entry is a named instance. The registry does not own the instance.
type Entry[T any] struct {
	Name  string
	Value T
}

// Registry collects scenes and techniques in registration order. Names
// are unique per list.
type Registry struct {
	scenes     []Entry[scene.Scene]
	techniques []Entry[technique.Technique]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterScene adds s under name. A duplicate name is rejected and the
// first entry stays.
func (r *Registry) RegisterScene(name string, s scene.Scene) error {
	entries, err := register(r.scenes, name, s)
	if err != nil {
		return err
	}
	r.scenes = entries
	return nil
}

// RegisterTechnique adds t under name. A duplicate name is rejected and
// the first entry stays.
func (r *Registry) RegisterTechnique(name string, t technique.Technique) error {
	entries, err := register(r.techniques, name, t)
	if err != nil {
		return err
	}
	r.techniques = entries
	return nil
}

func (r *Registry) Scenes() []Entry[scene.Scene] {
	return r.scenes
}

func (r *Registry) Techniques() []Entry[technique.Technique] {
	return r.techniques
}

func register[T any](entries []Entry[T], name string, value T) ([]Entry[T], error) {
	if indexOf(entries, name) >= 0 {
		core.LogWarn("%s is already registered, ignoring", name)
		return entries, fmt.Errorf("%s: %w", name, core.ErrDuplicateName)
	}
	return append(entries, Entry[T]{Name: name, Value: value}), nil
}

func indexOf[T any](entries []Entry[T], name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func names[T any](entries []Entry[T]) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
