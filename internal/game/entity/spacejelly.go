package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitfall/internal/engine/scene"
)

const (
	spaceJellyOrbitRadius = 5.0
	// SpaceJellyOrbitSpeed is the orbit rate in radians per second.
	SpaceJellyOrbitSpeed = 0.5

	tentacleWaveFreq = 3.0
	tentacleWaveAmp  = 20.0
)

// SpaceJellyPose places the drifting jelly of the astronaut scene.
type SpaceJellyPose struct {
	// OrbitAngle is the position on the orbit around the astronaut, in
	// radians.
	OrbitAngle float32
	// Time drives the tentacle wave, in seconds.
	Time float32
}

// SpaceJellyPoseAt returns the pose after t seconds of animation.
func SpaceJellyPoseAt(t float32) SpaceJellyPose {
	return SpaceJellyPose{OrbitAngle: SpaceJellyOrbitSpeed * t, Time: t}
}

// DrawSpaceJelly draws the jelly on its orbit, always facing along it,
// with three waving tentacles.
func DrawSpaceJelly(p *scene.Painter, pose SpaceJellyPose) {
	a := pose.OrbitAngle
	p.Group(func() {
		p.Translate(spaceJellyOrbitRadius*cos(a), 0, spaceJellyOrbitRadius*sin(a))
		p.Rotate(mgl32.RadToDeg(a)+90, 0, 1, 0)

		p.SetColor(SpaceJelly)
		p.Group(func() {
			p.ScaleUniform(0.4)
			p.DrawSphere()
		})
		p.Group(func() {
			p.Translate(0, -0.6, 0)
			p.ScaleUniform(0.3)
			p.DrawSphere()
		})

		for i := 0; i < 3; i++ {
			p.Group(func() {
				p.Rotate(120*float32(i), 0, 1, 0)
				p.Translate(0.4, -0.3, 0)
				drawSpaceJellyTentacle(p, pose.Time)
			})
		}
	})
}

func drawSpaceJellyTentacle(p *scene.Painter, t float32) {
	p.SetColor(Tentacle)
	for i := 0; i < 5; i++ {
		p.Group(func() {
			wave := tentacleWaveAmp * sin(tentacleWaveFreq*t+float32(i)*0.5)
			p.Rotate(wave, 1, 0, 0)
			p.Translate(0, -0.2*float32(i), 0)
			p.Scale(0.08, 0.15, 0.08)
			p.DrawSphere()
		})
	}
}
