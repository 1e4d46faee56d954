package testbed

import (
	"errors"

	"github.com/spaghettifunk/rtdemo/engine"
	"github.com/spaghettifunk/rtdemo/engine/app"
	"github.com/spaghettifunk/rtdemo/engine/config"
	"github.com/spaghettifunk/rtdemo/engine/core"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
	"github.com/spaghettifunk/rtdemo/engine/scene"
	"github.com/spaghettifunk/rtdemo/engine/technique"
)

// TestGame registers the Cornell box scene and every rendering technique.
type TestGame struct {
	*engine.Game

	width  uint32
	height uint32
}

func NewTestGame(cfg *config.Config) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{Config: cfg},
	}
	tg.FnRegister = tg.Register
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown
	return tg
}

func (g *TestGame) Register(reg *app.Registry, r *renderer.Renderer) error {
	core.LogInfo("registering scenes and techniques...")
	g.width, g.height = r.ScreenSize()

	var errs []error
	errs = append(errs, reg.RegisterScene("StaticScene", scene.NewStaticScene(r, g.Config.Assets.Scene)))

	errs = append(errs,
		reg.RegisterTechnique("ForwardShading", technique.NewForwardShading(r)),
		reg.RegisterTechnique("DeferredShading", technique.NewDeferredShading(r)),
		reg.RegisterTechnique("ShadowMapping", technique.NewShadowMapping(r)),
		reg.RegisterTechnique("TiledForwardShading", technique.NewTiledForwardShading(r)),
		reg.RegisterTechnique("VolumetricFog", technique.NewVolumetricFog(r)),
	)
	// duplicates keep the first registration and are not fatal
	if err := errors.Join(errs...); err != nil {
		core.LogWarn("registration: %s", err)
	}
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	g.width = width
	g.height = height
	core.LogDebug("testbed resized to %dx%d", width, height)
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("shutting down testbed...")
	return nil
}
