// Package entity holds the animated bodies of both scenes: their per-frame
// poses, the small simulations that drive them, and the composers that
// draw them through a scene.Painter.
//
// Composers are plain call sequences on the painter. Every one of them
// leaves the transform stack as it found it.
package entity

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Material colours.
var (
	White        = mgl32.Vec4{1, 1, 1, 1}
	Visor        = mgl32.Vec4{1, 0.6, 0, 1}
	Badge        = mgl32.Vec4{0, 0, 1, 1}
	SpaceJelly   = mgl32.Vec4{1, 0.2, 0.6, 1}
	Tentacle     = mgl32.Vec4{1, 0.6, 1, 1}
	Gold         = mgl32.Vec4{1, 0.84, 0, 1}
	Stone        = mgl32.Vec4{0.75, 0.75, 0.75, 1}
	OrbGlow      = mgl32.Vec4{0, 1, 0, 1}
	Suit         = mgl32.Vec4{0, 0, 1, 1}
	Boots        = mgl32.Vec4{1, 0, 0, 1}
	Skin         = mgl32.Vec4{1, 0.8, 0.6, 1}
	JellyfishRed = mgl32.Vec4{0.9, 0.2, 0.6, 1}
)

// Texture names registered with the renderer.
const (
	TextureCheckerboard = "checkerboard"
	TextureWater        = "water"
	TextureOrb          = "orb"
)

func sin(x float32) float32 { return math32.Sin(x) }
func cos(x float32) float32 { return math32.Cos(x) }
