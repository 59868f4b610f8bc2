// Package lighting holds the light and material constants a scene is lit
// with and derives the per-colour Phong products the shader consumes.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitfall/pkg/math"
)

// Config is an immutable description of a single point light and the
// shared material. It is passed by value into the painter.
type Config struct {
	Ambient          mgl32.Vec4
	Diffuse          mgl32.Vec4
	Specular         mgl32.Vec4
	MaterialSpecular mgl32.Vec4

	// Position is homogeneous; w = 1 marks a point light.
	Position  mgl32.Vec4
	Shininess float32
}

// Products are the colour-dependent terms uploaded with every SetColor.
type Products struct {
	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4
}

// Products modulates the light terms by a material colour. The specular
// term does not depend on the colour: highlights keep the light's tint.
func (c Config) Products(color mgl32.Vec4) Products {
	return Products{
		Ambient:  math.MulComponents(c.Ambient, color),
		Diffuse:  math.MulComponents(c.Diffuse, color),
		Specular: math.MulComponents(c.Specular, c.MaterialSpecular),
	}
}

func grey(v float32) mgl32.Vec4 {
	return mgl32.Vec4{v, v, v, 1}
}

// AstronautScene returns the lighting of the space scene: a dim ambient
// term and a light placed far in front of the camera.
func AstronautScene() Config {
	return Config{
		Ambient:          grey(0.2),
		Diffuse:          grey(1),
		Specular:         grey(1),
		MaterialSpecular: grey(0.4),
		Position:         mgl32.Vec4{0, 0, 100, 1},
		Shininess:        30,
	}
}

// TempleScene returns the lighting of the temple scene: a bright overhead
// light and a broad, soft highlight.
func TempleScene() Config {
	return Config{
		Ambient:          grey(0.5),
		Diffuse:          grey(1),
		Specular:         grey(1),
		MaterialSpecular: grey(0.4),
		Position:         mgl32.Vec4{0, 30, 0, 1},
		Shininess:        10,
	}
}
