package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitfall/internal/engine/scene"
)

// AstronautPose holds the joint angles (degrees) and drift offset of the
// astronaut for one frame.
type AstronautPose struct {
	X, Y float32

	LeftArm, RightArm   float32
	LeftHip, RightHip   float32
	LeftKnee, RightKnee float32
}

// RestAstronautPose is shown until the animation first runs: arms spread,
// legs straight.
func RestAstronautPose() AstronautPose {
	return AstronautPose{
		LeftArm:  275,
		RightArm: 80,
	}
}

// AstronautPoseAt returns the pose after t seconds of animation.
func AstronautPoseAt(t float32) AstronautPose {
	const drift = 0.3
	return AstronautPose{
		X:         drift * cos(t),
		Y:         drift * cos(t),
		LeftArm:   20 * sin(2*t),
		RightArm:  -20 * sin(2*t),
		LeftHip:   15 * sin(1.5*t),
		RightHip:  -15 * sin(1.5*t),
		LeftKnee:  10 * sin(1.5*t+1),
		RightKnee: 10 * sin(1.5*t+2),
	}
}

// shoulderAxis is the tilted axis both arms swing around.
var shoulderAxis = mgl32.Vec3{70, -30, -40}

// DrawAstronaut draws the astronaut: helmet, visor, torso, two arms, two
// jointed legs and the chest badge.
func DrawAstronaut(p *scene.Painter, pose AstronautPose) {
	p.Group(func() {
		p.Translate(pose.X, pose.Y, 0)
		p.ScaleUniform(0.75)

		// helmet
		p.Group(func() {
			p.ScaleUniform(0.9)
			p.Translate(0, 3.85, 0)
			p.SetColor(White)
			p.DrawSphere()
		})

		p.Group(func() {
			p.Translate(-0.15, 3.5, 1)
			p.Scale(0.9, 0.6, 0.4)
			p.SetColor(Visor)
			p.DrawSphere()
		})

		// torso
		p.Group(func() {
			p.Rotate(-30, 0, 9, 0.3)
			p.Translate(0.2, 1.05, 0.5)
			p.Scale(1.1, 1.6, 0.5)
			p.SetColor(White)
			p.DrawCube()
		})

		drawAstronautArm(p, -2, pose.LeftArm)
		drawAstronautArm(p, 2, pose.RightArm)

		drawAstronautLeg(p, -0.4, pose.LeftHip, pose.LeftKnee)
		drawAstronautLeg(p, 0.4, pose.RightHip, pose.RightKnee)

		p.Group(func() {
			p.Translate(-0.75, 1.9, 1)
			p.ScaleUniform(0.2)
			p.SetColor(Badge)
			p.DrawSphere()
		})
	})
}

func drawAstronautArm(p *scene.Painter, x, angle float32) {
	p.Group(func() {
		p.Translate(x, 2.1, 1)
		p.Rotate(angle, shoulderAxis.X(), shoulderAxis.Y(), shoulderAxis.Z())
		p.Scale(1, 0.3, 0.3)
		p.SetColor(White)
		p.DrawCube()
	})
}

// drawAstronautLeg draws thigh, shin and foot. Joint angles are damped so
// the suit only sways.
func drawAstronautLeg(p *scene.Painter, x, hip, knee float32) {
	const damping = 0.2

	p.Group(func() {
		p.Translate(x, -0.5, 0)
		p.Rotate(hip*damping, 0, 0, 1)
		p.Group(func() {
			p.Scale(0.35, 1.2, 0.35)
			p.DrawCube()
		})

		p.Translate(0, -1.3, 0)
		p.Rotate(knee*damping, 0, 0, 1)
		p.Group(func() {
			p.Scale(0.35, 1, 0.35)
			p.DrawCube()
		})

		p.Group(func() {
			p.Translate(0, -0.6, 0.5)
			p.Scale(0.35, 0.1, 0.5)
			p.DrawCube()
		})
	})
}
