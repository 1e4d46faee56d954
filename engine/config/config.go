package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Window struct {
	Title  string `toml:"title"`
	PosX   uint32 `toml:"pos_x"`
	PosY   uint32 `toml:"pos_y"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

type Log struct {
	Level string `toml:"level"`
}

type Assets struct {
	// Root is the directory every other asset path is relative to.
	Root    string `toml:"root"`
	Shaders string `toml:"shaders"`
	Scene   string `toml:"scene"`
	// Cache holds lz4 compressed scene graphs. Empty disables caching.
	Cache string `toml:"cache"`
	Watch bool   `toml:"watch"`
}

type Startup struct {
	Scene     string `toml:"scene"`
	Technique string `toml:"technique"`
}

type Config struct {
	Window  Window  `toml:"window"`
	Log     Log     `toml:"log"`
	Assets  Assets  `toml:"assets"`
	Startup Startup `toml:"startup"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "rtdemo",
			PosX:   100,
			PosY:   100,
			Width:  1280,
			Height: 720,
		},
		Log: Log{Level: "info"},
		Assets: Assets{
			Root:    "assets",
			Shaders: "shaders",
			Scene:   "scenes/cornellbox/CornellBox-Original.obj",
			Cache:   ".cache",
			Watch:   true,
		},
	}
}

// Load reads a TOML file on top of Default. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("window size must be non-zero, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Assets.Root == "" {
		return errors.New("assets.root must be set")
	}
	return nil
}

// ShaderRoot is the shader directory relative to the asset root.
func (c *Config) ShaderRoot() string {
	return filepath.ToSlash(c.Assets.Shaders)
}

// CacheDir is empty when scene caching is disabled.
func (c *Config) CacheDir() string {
	if c.Assets.Cache == "" {
		return ""
	}
	return filepath.Join(c.Assets.Root, c.Assets.Cache)
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
