package engine

import (
	"github.com/spaghettifunk/rtdemo/engine/app"
	"github.com/spaghettifunk/rtdemo/engine/config"
	"github.com/spaghettifunk/rtdemo/engine/renderer"
)

// Game is what the engine runs: a configuration and the hooks that fill
// the registry and react to the frame.
type Game struct {
	Config     *config.Config
	FnRegister Register
	FnUpdate   Update
	FnOnResize OnResize
	FnShutdown Shutdown
}

// Register adds scenes and techniques once the renderer exists.
type Register func(reg *app.Registry, r *renderer.Renderer) error
type Update func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
