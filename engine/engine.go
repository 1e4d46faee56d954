package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/spaghettifunk/rtdemo/engine/app"
	"github.com/spaghettifunk/rtdemo/engine/assets"
	"github.com/spaghettifunk/rtdemo/engine/assets/loaders"
	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/gui/imguigl"
	"github.com/spaghettifunk/rtdemo/engine/platform"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/renderer/opengl"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    atomic.Bool

	bus      *core.EventBus
	input    *core.Input
	platform *platform.Platform
	device   *opengl.Device
	gui      *imguigl.Backend
	renderer *renderer.Renderer
	app      *app.Application
	watcher  *assets.Watcher
	clock    *core.Clock
	metrics  *core.Metrics
	lastTime float64

	showStats       bool
	reloadTechnique bool
	reloadScene     bool
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.Config == nil {
		return nil, errors.New("a game with a configuration is required")
	}
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	bus := core.NewEventBus()
	input := core.NewInput(bus)
	e := &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		bus:          bus,
		input:        input,
		platform:     platform.New(bus, input),
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		showStats:    true,
	}
	e.isRunning.Store(true)
	return e, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.Config

	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		return err
	}
	core.LogInfo("session %s", core.SessionID())

	if err := e.platform.Startup(cfg.Window); err != nil {
		return err
	}
	dev, err := opengl.New()
	if err != nil {
		return err
	}
	e.device = dev

	fsys := os.DirFS(cfg.Assets.Root)
	shaders := loaders.NewShaderLoader(fsys)
	shaders.SetRoot(cfg.ShaderRoot())

	var importer assets.Importer = loaders.NewOBJImporter(fsys)
	if dir := cfg.CacheDir(); dir != "" {
		cached := assets.NewCachedImporter(importer, dir)
		cached.Stat = func(name string) (fs.FileInfo, error) { return fs.Stat(fsys, name) }
		importer = cached
	}

	width, height := e.platform.FramebufferSize()
	e.renderer = renderer.New(dev, shaders, importer, nil, width, height)

	gui, err := imguigl.New(e.renderer)
	if err != nil {
		return fmt.Errorf("failed to create the debug ui: %w", err)
	}
	e.gui = gui
	e.renderer.UI = gui
	e.platform.AttachGUI(gui.IO())

	reg := app.NewRegistry()
	if e.gameInstance.FnRegister != nil {
		if err := e.gameInstance.FnRegister(reg, e.renderer); err != nil {
			return err
		}
	}
	e.app = app.New(reg, gui, cfg.Startup.Scene, cfg.Startup.Technique)
	if err := e.app.Init(); err != nil {
		if errors.Is(err, core.ErrEmptyRegistry) || errors.Is(err, core.ErrNotFound) {
			return err
		}
		// the failing instance can be fixed and reloaded while running
		core.LogError("initial selection failed: %s", err)
	}

	e.bus.Register(core.EventCodeApplicationQuit, e, e.onEvent)
	e.bus.Register(core.EventCodeKeyPressed, e, e.onKey)
	e.bus.Register(core.EventCodeResized, e, e.onResized)
	e.bus.Register(core.EventCodeAssetChanged, e, e.onAssetChanged)

	if cfg.Assets.Watch {
		e.startWatcher(
			filepath.Join(cfg.Assets.Root, cfg.Assets.Shaders),
			filepath.Join(cfg.Assets.Root, filepath.Dir(cfg.Assets.Scene)),
		)
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) startWatcher(dirs ...string) {
	w, err := assets.NewWatcher()
	if err != nil {
		core.LogWarn("asset watching disabled: %s", err)
		return
	}
	for _, dir := range dirs {
		if err := w.AddRecursive(dir); err != nil {
			core.LogWarn("failed to watch %s: %s", dir, err)
		}
	}
	e.watcher = w
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning.Load() {
		e.platform.PumpMessages()
		if e.platform.ShouldClose() {
			break
		}
		e.drainAssetChanges()

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		e.lastTime = currentTime
		e.metrics.Update(delta)

		if fn := e.gameInstance.FnUpdate; fn != nil {
			if err := fn(delta); err != nil {
				core.LogError("game update failed, shutting down: %s", err)
				break
			}
		}

		e.renderer.BeginFrame()
		e.gui.NewFrame(delta)
		e.drawStats()
		e.app.Update()
		e.renderer.EndFrame()
		e.gui.Render()
		e.platform.SwapBuffers()

		// Input state is copied last so every reader this frame saw the
		// transitions.
		e.input.Update()
	}
	return nil
}

// Stop ends Run after the current frame. It may be called from any
// goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.watcher != nil {
		e.watcher.Close()
	}
	if e.app != nil {
		e.app.Shutdown()
	}
	if fn := e.gameInstance.FnShutdown; fn != nil {
		if err := fn(); err != nil {
			core.LogError("game shutdown failed: %s", err)
		}
	}
	if e.gui != nil {
		e.gui.Destroy()
	}
	if e.renderer != nil {
		e.renderer.Shutdown()
	}
	e.bus.Shutdown()
	return e.platform.Shutdown()
}

func (e *Engine) drawStats() {
	if !e.showStats {
		return
	}
	ui := e.gui
	if ui.Begin("Stats") {
		fps, ms := e.metrics.Frame()
		ui.Text("%.2f ms/frame (%.1f fps)", ms, fps)
		width, height := e.renderer.ScreenSize()
		ui.Text("%dx%d", width, height)
		ui.Text("OpenGL %s", e.device.Version())
		ui.Text("%s", e.device.Renderer())
		ui.Text("F1 stats, F5 reload technique, F6 reload scene")
	}
	ui.End()
}

// drainAssetChanges forwards everything the watcher reported since the
// last frame without blocking, then reloads at most once per kind.
func (e *Engine) drainAssetChanges() {
	if e.watcher == nil {
		return
	}
	changes := e.watcher.Changes()
drain:
	for {
		select {
		case c, ok := <-changes:
			if !ok {
				e.watcher = nil
				break drain
			}
			e.bus.Fire(core.EventCodeAssetChanged, e.watcher, core.EventContext{Path: c.Path})
		default:
			break drain
		}
	}

	if e.reloadTechnique {
		e.reloadTechnique = false
		if err := e.app.ReloadTechnique(); err != nil {
			core.LogError("technique reload failed: %s", err)
		}
	}
	if e.reloadScene {
		e.reloadScene = false
		if err := e.app.ReloadScene(); err != nil {
			core.LogError("scene reload failed: %s", err)
		}
	}
}

func (e *Engine) onEvent(code core.EventCode, sender any, listener any, ctx core.EventContext) bool {
	switch code {
	case core.EventCodeApplicationQuit:
		core.LogInfo("quit requested, shutting down")
		e.platform.Close()
		return true
	}
	return false
}

func (e *Engine) onKey(code core.EventCode, sender any, listener any, ctx core.EventContext) bool {
	switch ctx.Key {
	case core.KEY_ESCAPE:
		e.bus.Fire(core.EventCodeApplicationQuit, e, core.EventContext{})
	case core.KEY_F1:
		e.showStats = !e.showStats
	case core.KEY_F5:
		e.reloadTechnique = true
	case core.KEY_F6:
		e.reloadScene = true
	default:
		return false
	}
	return true
}

func (e *Engine) onResized(code core.EventCode, sender any, listener any, ctx core.EventContext) bool {
	e.renderer.Resize(ctx.Width, ctx.Height)
	if fn := e.gameInstance.FnOnResize; fn != nil {
		if err := fn(ctx.Width, ctx.Height); err != nil {
			core.LogError("game resize failed: %s", err)
		}
	}
	return true
}

func (e *Engine) onAssetChanged(code core.EventCode, sender any, listener any, ctx core.EventContext) bool {
	switch assets.TypeOf(ctx.Path) {
	case assets.AssetTypeShader:
		e.reloadTechnique = true
	case assets.AssetTypeModel, assets.AssetTypeMaterial:
		e.reloadScene = true
	default:
		return false
	}
	core.LogInfo("asset changed: %s", ctx.Path)
	return true
}
