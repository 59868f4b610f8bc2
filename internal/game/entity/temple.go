package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitfall/internal/engine/scene"
)

// DrawTemple draws the stepped temple: three gold tiers, a stone top tier
// and a stone cone roof.
func DrawTemple(p *scene.Painter) {
	p.DisableTexture()

	p.Group(func() {
		p.SetColor(Gold)
		tier(p, 0, 4, 1, 4)
		tier(p, 1, 3, 2, 3)
		tier(p, 3, 2, 1, 2)

		p.SetColor(Stone)
		tier(p, 4, 1.5, 1, 1.5)

		p.Group(func() {
			p.Translate(0, 5.8, 0)
			p.Rotate(-90, 1, 0, 0)
			p.ScaleUniform(1.5)
			p.DrawCone()
		})
	})
}

func tier(p *scene.Painter, y, sx, sy, sz float32) {
	p.Group(func() {
		p.Translate(0, y, 0)
		p.Scale(sx, sy, sz)
		p.DrawCube()
	})
}

// DrawWater draws the flat water plane the temple stands in.
func DrawWater(p *scene.Painter) {
	p.UseTexture(TextureWater)
	p.Group(func() {
		p.SetColor(White)
		p.Translate(0, -1, 0)
		p.Scale(50, 0.1, 50)
		p.DrawCube()
	})
	p.DisableTexture()
}

// OrbPosition is where the orb hovers above the temple.
var OrbPosition = mgl32.Vec3{0, 8, 0}

// OrbScale pulses the orb over time.
func OrbScale(t float32) float32 {
	return 0.5 + 0.1*abs(sin(5*t))
}

// DrawOrb draws the glowing orb above the temple.
func DrawOrb(p *scene.Painter, t float32) {
	p.UseTexture(TextureOrb)
	p.Group(func() {
		p.SetColor(OrbGlow)
		p.Translate(OrbPosition.X(), OrbPosition.Y(), OrbPosition.Z())
		p.ScaleUniform(OrbScale(t))
		p.DrawSphere()
	})
	p.DisableTexture()
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
