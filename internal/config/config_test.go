package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/orbitfall/internal/engine/mesh"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 1024 {
		t.Errorf("expected 1024x1024, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Scene.Name != SceneAstronaut {
		t.Errorf("expected scene %q, got %q", SceneAstronaut, cfg.Scene.Name)
	}
	if cfg.Scene.Paused {
		t.Error("expected animation to run by default")
	}
	if cfg.Scene.StarCount != 30 {
		t.Errorf("expected 30 stars, got %d", cfg.Scene.StarCount)
	}
	if got, want := cfg.Mesh.Resolution(), mesh.DefaultResolution(); got != want {
		t.Errorf("expected resolution %+v, got %+v", want, got)
	}
	if cfg.Textures.Files["orb"] != "orb.png" {
		t.Errorf("expected orb texture orb.png, got %q", cfg.Textures.Files["orb"])
	}
	if cfg.Graphics.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %q", cfg.Graphics.ScreenshotDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  name: temple
  paused: true
  seed: 42
  star_count: 12

mesh:
  sphere: 64

textures:
  dir: /opt/orbitfall/assets
  files:
    water: lake.webp

logging:
  level: "debug"
  log_file: "orbitfall.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Scene.Name != SceneTemple || !cfg.Scene.Paused {
		t.Errorf("expected paused temple scene, got %+v", cfg.Scene)
	}
	if cfg.Scene.Seed != 42 || cfg.Scene.StarCount != 12 {
		t.Errorf("expected seed 42 and 12 stars, got %+v", cfg.Scene)
	}
	if cfg.Mesh.Sphere != 64 {
		t.Errorf("expected sphere resolution 64, got %d", cfg.Mesh.Sphere)
	}
	if cfg.Mesh.Cone != 20 {
		t.Errorf("unset cone resolution should keep its default, got %d", cfg.Mesh.Cone)
	}
	if cfg.Textures.Files["water"] != "lake.webp" {
		t.Errorf("expected water override, got %q", cfg.Textures.Files["water"])
	}
	if cfg.Textures.Files["box"] != "box.png" {
		t.Errorf("texture entries missing from the file should keep their default, got %q", cfg.Textures.Files["box"])
	}
	if cfg.Logging.LogFile != "orbitfall.log" {
		t.Errorf("expected log file 'orbitfall.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      "graphics:\n  width: not a number\n  invalid syntax here\n",
		"unknown key": "graphics:\n  widht: 800\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should keep defaults, got %v", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	err := loadFromFile(Default(), "/nonexistent/path/config.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"unknown scene", func(c *Config) { c.Scene.Name = "beach" }, ErrUnknownScene},
		{"coarse sphere", func(c *Config) { c.Mesh.Sphere = 2 }, mesh.ErrResolution},
		{"coarse cone", func(c *Config) { c.Mesh.Cone = 0 }, mesh.ErrResolution},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, nil},
		{"negative stars", func(c *Config) { c.Scene.StarCount = -1 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("config.yaml", []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "scene flag",
			setup: func() { *flagScene = SceneTemple },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Name != SceneTemple {
					t.Errorf("expected scene temple, got %s", cfg.Scene.Name)
				}
			},
			teardown: func() { *flagScene = "" },
		},
		{
			name:  "paused flag",
			setup: func() { *flagPaused = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Scene.Paused {
					t.Error("expected paused with --paused")
				}
			},
			teardown: func() { *flagPaused = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
graphics:
  width: 1600
  height: 900
scene:
  name: temple
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// flag beats file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	// file beats default
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Scene.Name != SceneTemple {
		t.Errorf("expected scene temple from file, got %s", cfg.Scene.Name)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	*flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { *flagConfig = "" }()
	if _, err := Load(); err == nil {
		t.Error("expected error for a missing explicit config file")
	}

	*flagConfig = ""
	*flagScene = "beach"
	defer func() { *flagScene = "" }()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := Load(); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Name = SceneTemple
	cfg.Mesh.Sphere = 48
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Scene.Name != SceneTemple || loaded.Mesh.Sphere != 48 {
		t.Errorf("saved settings not restored: %+v %+v", loaded.Scene, loaded.Mesh)
	}
}
