package app

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/gui"
	"github.com/spaghettifunk/rtdemo/engine/scene"
	"github.com/spaghettifunk/rtdemo/engine/technique"
)

// Application owns the current scene and technique selection. Only an
// instance whose last Restore succeeded is updated or applied.
type Application struct {
	registry *Registry
	ui       gui.UI

	startScene     string
	startTechnique string

	sceneNames     []string
	techniqueNames []string
	sceneIndex     int32
	techniqueIndex int32

	scene          *Entry[scene.Scene]
	technique      *Entry[technique.Technique]
	sceneReady     bool
	techniqueReady bool
}

// New creates an application over reg. Empty start names select the first
// registered entry.
func New(reg *Registry, ui gui.UI, startScene, startTechnique string) *Application {
	if ui == nil {
		ui = gui.Nop{}
	}
	return &Application{
		registry:       reg,
		ui:             ui,
		startScene:     startScene,
		startTechnique: startTechnique,
	}
}

// Init selects the start scene and technique and restores them, scene
// first.
func (a *Application) Init() error {
	scenes, techniques := a.registry.Scenes(), a.registry.Techniques()
	if len(scenes) == 0 {
		return fmt.Errorf("scenes: %w", core.ErrEmptyRegistry)
	}
	if len(techniques) == 0 {
		return fmt.Errorf("techniques: %w", core.ErrEmptyRegistry)
	}
	a.sceneNames = names(scenes)
	a.techniqueNames = names(techniques)

	si, err := startIndex(scenes, a.startScene)
	if err != nil {
		return err
	}
	ti, err := startIndex(techniques, a.startTechnique)
	if err != nil {
		return err
	}

	// a failed instance still becomes current
	return errors.Join(a.selectScene(si), a.selectTechnique(ti))
}

func startIndex[T any](entries []Entry[T], name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	i := indexOf(entries, name)
	if i < 0 {
		return 0, fmt.Errorf("%s: %w", name, core.ErrNotFound)
	}
	return i, nil
}

// selectScene invalidates the current scene, restores the one at index i
// and makes it current even when its restore fails.
func (a *Application) selectScene(i int) error {
	if a.scene != nil {
		core.LogInfo("leaving scene %s", a.scene.Name)
		a.scene.Value.Invalidate()
	}
	e := a.registry.Scenes()[i]
	a.scene = &e
	a.sceneIndex = int32(i)

	err := e.Value.Restore()
	a.sceneReady = err == nil
	if err != nil {
		return fmt.Errorf("scene %s: %w", e.Name, err)
	}
	core.LogInfo("scene %s is current", e.Name)
	return nil
}

func (a *Application) selectTechnique(i int) error {
	if a.technique != nil {
		core.LogInfo("leaving technique %s", a.technique.Name)
		a.technique.Value.Invalidate()
	}
	e := a.registry.Techniques()[i]
	a.technique = &e
	a.techniqueIndex = int32(i)

	err := e.Value.Restore()
	a.techniqueReady = err == nil
	if err != nil {
		return fmt.Errorf("technique %s: %w", e.Name, err)
	}
	core.LogInfo("technique %s is current", e.Name)
	return nil
}

// Update runs one frame: selection panel, switches, panels of the current
// instances, then update and apply when both are ready.
func (a *Application) Update() {
	if a.scene == nil || a.technique == nil {
		return
	}

	ui := a.ui
	if ui.Begin("Application") {
		if ui.Combo("current scene", &a.sceneIndex, a.sceneNames) {
			if err := a.selectScene(int(a.sceneIndex)); err != nil {
				core.LogError("%s", err)
			}
		}
		if ui.Combo("current technique", &a.techniqueIndex, a.techniqueNames) {
			if err := a.selectTechnique(int(a.techniqueIndex)); err != nil {
				core.LogError("%s", err)
			}
		}
		if ui.Button("reload scene") {
			if err := a.ReloadScene(); err != nil {
				core.LogError("%s", err)
			}
		}
		if ui.Button("reload technique") {
			if err := a.ReloadTechnique(); err != nil {
				core.LogError("%s", err)
			}
		}
	}
	ui.End()

	a.scene.Value.UpdateGUI()
	a.technique.Value.UpdateGUI()

	if !a.sceneReady || !a.techniqueReady {
		return
	}
	a.scene.Value.Update()
	a.technique.Value.Update()
	a.technique.Value.Apply(a.scene.Value)
}

// ReloadScene invalidates and restores the current scene.
func (a *Application) ReloadScene() error {
	if a.scene == nil {
		return core.ErrNotRestored
	}
	return a.selectScene(int(a.sceneIndex))
}

// ReloadTechnique invalidates and restores the current technique. The
// engine calls it when a shader file changes.
func (a *Application) ReloadTechnique() error {
	if a.technique == nil {
		return core.ErrNotRestored
	}
	return a.selectTechnique(int(a.techniqueIndex))
}

// Shutdown invalidates the current instances.
func (a *Application) Shutdown() {
	if a.technique != nil {
		a.technique.Value.Invalidate()
	}
	if a.scene != nil {
		a.scene.Value.Invalidate()
	}
	a.sceneReady, a.techniqueReady = false, false
}

// CurrentScene returns the name of the current scene and whether it is
// restored.
func (a *Application) CurrentScene() (string, bool) {
	if a.scene == nil {
		return "", false
	}
	return a.scene.Name, a.sceneReady
}

// CurrentTechnique returns the name of the current technique and whether
// it is restored.
func (a *Application) CurrentTechnique() (string, bool) {
	if a.technique == nil {
		return "", false
	}
	return a.technique.Name, a.techniqueReady
}
