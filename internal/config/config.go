// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Faultbox/orbitfall/internal/engine/mesh"
)

// Scene names accepted by the scene setting.
const (
	SceneAstronaut = "astronaut"
	SceneTemple    = "temple"
)

// Scenes lists every scene in switching order.
var Scenes = []string{SceneAstronaut, SceneTemple}

// ErrUnknownScene is returned for a scene name that is not in Scenes.
var ErrUnknownScene = errors.New("config: unknown scene")

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Textures TexturesConfig `yaml:"textures"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Samples    int  `yaml:"samples"`

	// ScreenshotDir receives the PNG captures taken with F12.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SceneConfig selects the scene and its start-up state.
type SceneConfig struct {
	Name   string `yaml:"name"`
	Paused bool   `yaml:"paused"`

	// Seed for the starfield; 0 picks a new seed every run.
	Seed      uint64 `yaml:"seed"`
	StarCount int    `yaml:"star_count"`
}

// MeshConfig holds the tessellation of the curved primitives.
type MeshConfig struct {
	Sphere   int `yaml:"sphere"`
	Cylinder int `yaml:"cylinder"`
	Cone     int `yaml:"cone"`
}

// Resolution converts the settings for the mesh generators.
func (m MeshConfig) Resolution() mesh.Resolution {
	return mesh.Resolution{
		Sphere:   m.Sphere,
		Cylinder: m.Cylinder,
		Cone:     m.Cone,
	}
}

// TexturesConfig maps texture names to image files under Dir.
type TexturesConfig struct {
	Dir     string            `yaml:"dir"`
	Files   map[string]string `yaml:"files"`
	MaxSize int               `yaml:"max_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	res := mesh.DefaultResolution()
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     1024,
			Fullscreen: false,
			VSync:      true,
			Samples:    4,

			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Name:      SceneAstronaut,
			StarCount: 30,
		},
		Mesh: MeshConfig{
			Sphere:   res.Sphere,
			Cylinder: res.Cylinder,
			Cone:     res.Cone,
		},
		Textures: TexturesConfig{
			Dir: "assets",
			Files: map[string]string{
				"box":   "box.png",
				"water": "water.jpg",
				"orb":   "orb.png",
			},
			MaxSize: 2048,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if !slices.Contains(Scenes, c.Scene.Name) {
		return fmt.Errorf("scene %q (want one of %v): %w", c.Scene.Name, Scenes, ErrUnknownScene)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Scene.StarCount < 0 {
		return fmt.Errorf("star_count %d must not be negative", c.Scene.StarCount)
	}
	for name, n := range map[string]int{
		"sphere":   c.Mesh.Sphere,
		"cylinder": c.Mesh.Cylinder,
		"cone":     c.Mesh.Cone,
	} {
		if n < mesh.MinResolution {
			return fmt.Errorf("mesh.%s = %d: %w", name, n, mesh.ErrResolution)
		}
	}
	return nil
}
