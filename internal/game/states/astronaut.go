package states

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitfall/internal/engine/camera"
	"github.com/Faultbox/orbitfall/internal/engine/lighting"
	"github.com/Faultbox/orbitfall/internal/engine/scene"
	"github.com/Faultbox/orbitfall/internal/game/entity"
	"github.com/Faultbox/orbitfall/internal/logger"
)

// AstronautConfig configures the astronaut scene.
type AstronautConfig struct {
	StarCount int
	Seed      uint64
}

// AstronautState is the spacewalk scene: an astronaut drifting in an
// orthographic view with a jelly circling and stars streaming past.
type AstronautState struct {
	config AstronautConfig
	light  lighting.Config

	camera *camera.Camera
	stars  *entity.Starfield

	time    float32
	started bool
}

// NewAstronautState creates the astronaut scene.
func NewAstronautState(cfg AstronautConfig) *AstronautState {
	return &AstronautState{
		config: cfg,
		light:  lighting.AstronautScene(),
	}
}

func (s *AstronautState) Name() string { return "astronaut" }

// Enter resets the scene to its rest pose with a fresh starfield.
func (s *AstronautState) Enter() error {
	logger.Info("entering astronaut scene",
		zap.Int("stars", s.config.StarCount),
		zap.Uint64("seed", s.config.Seed))

	s.camera = camera.NewOrtho(-6, 6, -6, 6, 1, 100, mgl32.Vec3{0, 0, 10})
	rng := rand.New(rand.NewPCG(s.config.Seed, s.config.Seed^0x9e3779b97f4a7c15))
	s.stars = entity.NewStarfield(s.config.StarCount, entity.DefaultStarBounds, rng)
	s.time = 0
	s.started = false
	return nil
}

func (s *AstronautState) Exit() error {
	logger.Debug("leaving astronaut scene", zap.Float32("time", s.time))
	return nil
}

func (s *AstronautState) Update(dt float64) error {
	s.started = true
	s.time += float32(dt)
	s.stars.Update(float32(dt))
	return nil
}

// Resize keeps the orthographic box; the view stretches with the window.
func (s *AstronautState) Resize(width, height int) {
	s.camera.SetViewport(width, height)
}

func (s *AstronautState) Render(p *scene.Painter) error {
	p.SetLighting(s.light)
	p.SetCamera(s.camera.View(), s.camera.Projection())

	pose := entity.RestAstronautPose()
	if s.started {
		pose = entity.AstronautPoseAt(s.time)
	}

	entity.DrawStarfield(p, s.stars)
	entity.DrawAstronaut(p, pose)
	entity.DrawSpaceJelly(p, entity.SpaceJellyPoseAt(s.time))
	return nil
}

func (s *AstronautState) Status() string {
	if !s.started {
		return "rest"
	}
	return ""
}

// Time returns the animation time in seconds.
func (s *AstronautState) Time() float32 { return s.time }
