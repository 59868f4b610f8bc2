package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitfall/internal/engine/scene"
)

// HumanPose positions the flying human of the temple scene. Angles are in
// degrees.
type HumanPose struct {
	Position mgl32.Vec3
	// Rotation is applied X, then Y, then Z.
	Rotation mgl32.Vec3

	ArmPitch float32
	ArmRoll  float32
	LegSwing float32
	KneeBend float32
}

// DefaultHumanPose lies the body flat with both arms raised overhead, as
// if flying.
func DefaultHumanPose(pos mgl32.Vec3) HumanPose {
	return HumanPose{
		Position: pos,
		Rotation: mgl32.Vec3{90, 0, 0},
		ArmPitch: 180,
	}
}

var (
	humanShoulder = mgl32.Vec3{0.55, 0.3, 0}
	humanHip      = mgl32.Vec3{0.3, -1, 0}
	humanHead     = mgl32.Vec3{0, 1.15, 0}
)

// DrawHuman draws body, arms, legs with boots, and head. Right limbs are
// drawn before left ones.
func DrawHuman(p *scene.Painter, pose HumanPose) {
	p.DisableTexture()

	p.Group(func() {
		p.Translate(pose.Position.X(), pose.Position.Y(), pose.Position.Z())
		p.Rotate(pose.Rotation.X(), 1, 0, 0)
		p.Rotate(pose.Rotation.Y(), 0, 1, 0)
		p.Rotate(pose.Rotation.Z(), 0, 0, 1)

		p.SetColor(Suit)
		p.Group(func() {
			p.Scale(0.4, 0.8, 0.5)
			p.DrawCube()
		})

		drawHumanArm(p, pose, -1)
		drawHumanArm(p, pose, 1)
		drawHumanLeg(p, pose, 1)
		drawHumanLeg(p, pose, -1)

		p.SetColor(Skin)
		p.Group(func() {
			p.Translate(humanHead.X(), humanHead.Y(), humanHead.Z())
			p.ScaleUniform(0.333)
			p.DrawSphere()
		})
	})
}

// drawHumanArm draws upper arm and forearm. side is -1 for the right arm
// and +1 for the left one.
func drawHumanArm(p *scene.Painter, pose HumanPose, side float32) {
	p.Group(func() {
		p.SetColor(Suit)
		p.Translate(side*humanShoulder.X(), humanShoulder.Y(), humanShoulder.Z())
		p.Rotate(side*pose.ArmRoll, 0, 0, 1)
		p.Rotate(-pose.ArmPitch, 1, 0, 0)

		p.Group(func() {
			p.Scale(0.1, 0.3, 0.2)
			p.DrawCube()
		})
		p.Group(func() {
			p.Translate(0, -0.5, 0)
			p.Scale(0.1, 0.3, 0.2)
			p.DrawCube()
		})
	})
}

// drawHumanLeg draws thigh, bent shin and boot. side is +1 for the right
// leg and -1 for the left one.
func drawHumanLeg(p *scene.Painter, pose HumanPose, side float32) {
	p.Group(func() {
		p.SetColor(Suit)
		p.Translate(side*humanHip.X(), humanHip.Y(), humanHip.Z())
		p.Rotate(side*pose.LegSwing, 1, 0, 0)

		p.Group(func() {
			p.Scale(0.1, 0.5, 0.2)
			p.DrawCube()
		})
		p.Group(func() {
			p.Translate(0, -0.375, 0)
			p.Rotate(pose.KneeBend, 1, 0, 0)
			p.Translate(0, -0.375, 0)
			p.Scale(0.1, 0.4, 0.2)
			p.DrawCube()
		})

		p.SetColor(Boots)
		p.Group(func() {
			p.Translate(0, -1, 0.3)
			p.Scale(0.08, 0.08, 0.1)
			p.DrawCube()
		})
	})
}
