package states

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitfall/internal/engine/camera"
	"github.com/Faultbox/orbitfall/internal/engine/lighting"
	"github.com/Faultbox/orbitfall/internal/engine/scene"
	"github.com/Faultbox/orbitfall/internal/game/entity"
	"github.com/Faultbox/orbitfall/internal/logger"
)

// Temple camera framing.
var (
	templeTarget    = mgl32.Vec3{0, 1.5, 0}
	templeChaseEye  = mgl32.Vec3{0, 10, 20}
	templeCamRadius = float32(20)
	templeCamHeight = float32(10)
	templeCamSpeed  = float32(0.3)
)

// TempleState is the chase scene: a flying human circles a temple, then
// hunts down the jellyfish and the orb above it.
type TempleState struct {
	light lighting.Config

	camera *camera.Camera
	chase  *entity.Chase

	time float32
}

// NewTempleState creates the temple scene.
func NewTempleState() *TempleState {
	return &TempleState{
		light: lighting.TempleScene(),
	}
}

func (s *TempleState) Name() string { return "temple" }

func (s *TempleState) Enter() error {
	logger.Info("entering temple scene")
	s.camera = camera.NewPerspective(45, 1, 0.1, 200)
	s.chase = entity.NewChase()
	s.time = 0
	s.aim()
	return nil
}

func (s *TempleState) Exit() error {
	logger.Debug("leaving temple scene",
		zap.Float32("time", s.time),
		zap.Stringer("phase", s.chase.Phase()))
	return nil
}

func (s *TempleState) Update(dt float64) error {
	s.time += float32(dt)
	if ev := s.chase.Update(s.time); ev != entity.EventNone {
		logger.Info("chase event",
			zap.Stringer("event", ev),
			zap.Float32("time", s.time))
	}
	s.aim()
	return nil
}

// aim orbits the camera around the temple, and freezes it in front once
// the chase starts.
func (s *TempleState) aim() {
	if s.chase.Phase() == entity.PhaseChase {
		s.camera.Eye = templeChaseEye
		s.camera.At = templeTarget
		return
	}
	s.camera.Orbit(mgl32.Vec3{}, templeCamRadius, templeCamHeight, templeCamSpeed*s.time, templeTarget)
}

func (s *TempleState) Resize(width, height int) {
	s.camera.SetViewport(width, height)
}

func (s *TempleState) Render(p *scene.Painter) error {
	p.SetLighting(s.light)
	p.SetCamera(s.camera.View(), s.camera.Projection())

	entity.DrawTemple(p)
	entity.DrawWater(p)
	if !s.chase.OrbDefeated() {
		entity.DrawOrb(p, s.time)
	}
	entity.DrawHuman(p, entity.DefaultHumanPose(s.chase.Human()))
	if !s.chase.JellyfishDefeated() {
		entity.DrawJellyfish(p, s.chase.Jellyfish(s.time), s.time)
	}
	return nil
}

func (s *TempleState) Status() string {
	switch {
	case s.chase.Done():
		return "cleared"
	case s.chase.JellyfishDefeated():
		return "chasing the orb"
	}
	return fmt.Sprintf("%s %.0fs", s.chase.Phase(), s.time)
}

// Chase exposes the scene's state machine.
func (s *TempleState) Chase() *entity.Chase { return s.chase }

// Camera exposes the scene's camera.
func (s *TempleState) Camera() *camera.Camera { return s.camera }
