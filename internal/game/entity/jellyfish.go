package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitfall/internal/engine/scene"
)

const (
	jellyfishOrbitRadius = 4.0
	jellyfishOrbitSpeed  = 0.1
	jellyfishHeight      = 8.0
	jellyfishTentacles   = 12
)

// JellyfishBob is the vertical bobbing offset at time t.
func JellyfishBob(t float32) float32 {
	return 0.2 * sin(5*t)
}

// JellyfishOrbit returns the jellyfish's orbit position around the orb at
// time t, without bobbing.
func JellyfishOrbit(t float32) mgl32.Vec3 {
	a := jellyfishOrbitSpeed * t
	return mgl32.Vec3{
		jellyfishOrbitRadius * cos(a),
		jellyfishHeight,
		jellyfishOrbitRadius * sin(a),
	}
}

// DrawJellyfish draws the flattened bell at pos, bobbing with t, with a
// ring of waving tentacles below it.
func DrawJellyfish(p *scene.Painter, pos mgl32.Vec3, t float32) {
	p.DisableTexture()

	p.Group(func() {
		p.SetColor(JellyfishRed)
		p.Translate(pos.X(), pos.Y()+JellyfishBob(t), pos.Z())
		p.Rotate(90, 1, 0, 0)

		p.Group(func() {
			p.Scale(1, 0.5, 1)
			p.DrawSphere()
		})

		p.Translate(0, -0.5, 0)
		for i := 0; i < jellyfishTentacles; i++ {
			drawJellyfishTentacle(p, 360/jellyfishTentacles*float32(i), t)
		}
	})
}

func drawJellyfishTentacle(p *scene.Painter, angle, t float32) {
	p.Group(func() {
		p.Rotate(angle, 0, 1, 0)
		// the phase offset is the angle in degrees taken as radians
		wave := 0.1 * sin(5*t+angle)
		p.Translate(0.4+wave, 0, 0)

		for i := 0; i < 5; i++ {
			p.Group(func() {
				p.Translate(0, -0.25*float32(i), 0)
				p.Rotate(5*sin(10*t+float32(i)), 0, 0, 1)
				p.Scale(0.05, 0.15, 0.05)
				p.DrawSphere()
			})
		}
	})
}
