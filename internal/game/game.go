// Package game implements the main loop: window, renderer, input and the
// scene states.
package game

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitfall/internal/config"
	"github.com/Faultbox/orbitfall/internal/engine/debug"
	"github.com/Faultbox/orbitfall/internal/engine/input"
	"github.com/Faultbox/orbitfall/internal/engine/lighting"
	"github.com/Faultbox/orbitfall/internal/engine/mesh"
	"github.com/Faultbox/orbitfall/internal/engine/renderer"
	"github.com/Faultbox/orbitfall/internal/engine/scene"
	"github.com/Faultbox/orbitfall/internal/engine/texture"
	"github.com/Faultbox/orbitfall/internal/engine/window"
	"github.com/Faultbox/orbitfall/internal/game/entity"
	"github.com/Faultbox/orbitfall/internal/game/states"
	"github.com/Faultbox/orbitfall/internal/logger"
)

// Title is the window title prefix.
const Title = "Orbitfall"

// ErrUnbalancedFrame is returned when a frame ends with transforms still
// pushed.
var ErrUnbalancedFrame = errors.New("game: unbalanced transform stack")

// idleWait bounds how long a paused loop blocks waiting for events.
const idleWait = 100 * time.Millisecond

const checkerboardSize = 8

// Game is the main game instance.
type Game struct {
	config *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	painter  *scene.Painter
	states   *states.Manager
	clock    *Clock
	shots    *debug.ScreenshotCapture

	scene   string
	seed    uint64
	running bool
	redraw  bool
	capture bool
}

// New opens the window, builds the GPU resources and selects the
// configured scene.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("scene", cfg.Scene.Name))

	g := &Game{
		config: cfg,
		clock:  NewClock(!cfg.Scene.Paused),
		seed:   cfg.Scene.Seed,
		shots:  debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "orbitfall"),
	}
	if g.seed == 0 {
		g.seed = rand.Uint64()
	}

	geometry, err := mesh.BuildAll(cfg.Mesh.Resolution())
	if err != nil {
		return nil, fmt.Errorf("building meshes: %w", err)
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	for _, shape := range mesh.Shapes {
		g.renderer.UploadMesh(geometry[shape])
	}

	g.input = input.New()
	g.painter = scene.NewPainter(g.renderer, lighting.AstronautScene())
	g.states = states.NewManager()
	g.states.Resize(width, height)
	g.switchScene(cfg.Scene.Name)

	logger.Info("game initialized successfully", zap.Uint64("seed", g.seed))
	return g, nil
}

// Run loads the textures and drives frames until the window closes or ctx
// ends.
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := g.loadTextures(ctx); err != nil {
		return err
	}

	g.running = true
	g.redraw = true
	frames := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop", zap.Bool("paused", !g.clock.Running()))

	for g.running && ctx.Err() == nil {
		var quit bool
		if g.clock.Running() || g.redraw {
			quit = g.input.Update()
		} else {
			quit = g.input.Wait(idleWait)
		}
		if quit {
			break
		}
		g.handleEvents()
		if !g.running {
			break
		}

		if g.clock.Running() {
			if err := g.states.Update(g.clock.Tick()); err != nil {
				return fmt.Errorf("update error: %w", err)
			}
		} else if !g.redraw {
			continue
		}

		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if g.capture {
			g.capture = false
			g.screenshot()
		}
		g.window.SwapBuffers()
		g.redraw = false

		frames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frames),
				zap.Duration("elapsed", g.clock.Elapsed()))
			g.updateTitle()
			frames = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// loadTextures decodes every configured texture in parallel and uploads
// the ones that succeeded. A missing texture only costs its object the
// texturing.
func (g *Game) loadTextures(ctx context.Context) error {
	tc := g.config.Textures
	opts := texture.Options{MaxSize: tc.MaxSize}

	futures := []*texture.Future{
		texture.Generated(entity.TextureCheckerboard, &texture.Image{
			RGBA:  texture.Checkerboard(checkerboardSize),
			Clamp: true,
		}),
	}
	for _, name := range slices.Sorted(maps.Keys(tc.Files)) {
		path := filepath.Join(tc.Dir, tc.Files[name])
		futures = append(futures, texture.Load(ctx, name, path, opts))
	}

	start := time.Now()
	if err := texture.Join(ctx, futures...); err != nil {
		return fmt.Errorf("loading textures: %w", err)
	}

	loaded := 0
	for _, f := range futures {
		img, err := f.Wait(ctx)
		if err != nil {
			logger.Warn("texture unavailable, drawing flat colour",
				zap.String("texture", f.Name()),
				zap.Error(err))
			continue
		}
		g.renderer.UploadTexture(img)
		loaded++
	}
	logger.Info("textures loaded",
		zap.Int("loaded", loaded),
		zap.Int("total", len(futures)),
		zap.Duration("took", time.Since(start)))
	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			width, height := g.window.DrawableSize()
			g.renderer.Resize(width, height)
			g.states.Resize(width, height)
			g.redraw = true
		case input.EventWindowExposed:
			g.redraw = true
		}
	}

	switch {
	case g.input.IsKeyPressed(sdl.SCANCODE_ESCAPE):
		g.running = false
	case g.input.IsKeyPressed(sdl.SCANCODE_SPACE):
		running := g.clock.Toggle()
		logger.Info("animation toggled", zap.Bool("running", running))
		g.updateTitle()
		g.redraw = true
	case g.input.IsKeyPressed(sdl.SCANCODE_F12):
		g.capture = true
		g.redraw = true
	case g.input.IsKeyPressed(sdl.SCANCODE_1):
		g.switchScene(config.SceneAstronaut)
	case g.input.IsKeyPressed(sdl.SCANCODE_2):
		g.switchScene(config.SceneTemple)
	}
}

func (g *Game) switchScene(name string) {
	if name == g.scene {
		return
	}
	var next states.State
	switch name {
	case config.SceneTemple:
		next = states.NewTempleState()
	default:
		next = states.NewAstronautState(states.AstronautConfig{
			StarCount: g.config.Scene.StarCount,
			Seed:      g.seed,
		})
	}
	g.scene = name
	g.states.Change(next)
	g.redraw = true
}

// render draws one frame into the back buffer.
func (g *Game) render() error {
	g.renderer.Begin()
	g.painter.Reset()

	if err := g.states.Render(g.painter); err != nil {
		return err
	}
	if depth := g.painter.Depth(); depth != 0 {
		return fmt.Errorf("%w: %d transforms left after %s", ErrUnbalancedFrame, depth, g.scene)
	}
	if g.redraw {
		g.updateTitle()
	}
	return nil
}

// screenshot saves the frame just rendered. Failures are only logged.
func (g *Game) screenshot() {
	pixels, width, height := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (g *Game) updateTitle() {
	title := Title + " - " + g.states.Status()
	if !g.clock.Running() {
		title += " (paused)"
	}
	g.window.SetTitle(title)
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.states != nil {
		if err := g.states.Close(); err != nil {
			logger.Warn("closing scene", zap.Error(err))
		}
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
