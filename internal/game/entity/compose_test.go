package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orbitfall/internal/engine/lighting"
	"github.com/Faultbox/orbitfall/internal/engine/mesh"
	"github.com/Faultbox/orbitfall/internal/engine/scene"
	"github.com/Faultbox/orbitfall/internal/engine/scene/scenetest"
	"github.com/Faultbox/orbitfall/pkg/math"
)

const eps = 1e-4

func newPainter(textures ...string) (*scene.Painter, *scenetest.Recorder) {
	rec := scenetest.NewRecorder(textures...)
	p := scene.NewPainter(rec, lighting.TempleScene())
	p.Reset()
	return p, rec
}

func TestComposersBalanced(t *testing.T) {
	sf := NewStarfield(12, DefaultStarBounds, rand.New(rand.NewPCG(3, 4)))

	tests := []struct {
		name   string
		draw   func(p *scene.Painter)
		counts map[mesh.Shape]int
	}{
		{"starfield", func(p *scene.Painter) { DrawStarfield(p, sf) },
			map[mesh.Shape]int{mesh.Sphere: 12}},
		{"astronaut rest", func(p *scene.Painter) { DrawAstronaut(p, RestAstronautPose()) },
			map[mesh.Shape]int{mesh.Sphere: 3, mesh.Cube: 9}},
		{"astronaut moving", func(p *scene.Painter) { DrawAstronaut(p, AstronautPoseAt(4.2)) },
			map[mesh.Shape]int{mesh.Sphere: 3, mesh.Cube: 9}},
		{"space jelly", func(p *scene.Painter) { DrawSpaceJelly(p, SpaceJellyPoseAt(2)) },
			map[mesh.Shape]int{mesh.Sphere: 17}},
		{"temple", DrawTemple,
			map[mesh.Shape]int{mesh.Cube: 4, mesh.Cone: 1}},
		{"water", DrawWater,
			map[mesh.Shape]int{mesh.Cube: 1}},
		{"orb", func(p *scene.Painter) { DrawOrb(p, 1) },
			map[mesh.Shape]int{mesh.Sphere: 1}},
		{"human", func(p *scene.Painter) { DrawHuman(p, DefaultHumanPose(HumanOrbit(3))) },
			map[mesh.Shape]int{mesh.Cube: 11, mesh.Sphere: 1}},
		{"jellyfish", func(p *scene.Painter) { DrawJellyfish(p, JellyfishOrbit(3), 3) },
			map[mesh.Shape]int{mesh.Sphere: 61}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec := newPainter()
			p.Translate(1, 2, 3)
			before := p.Model()

			tt.draw(p)

			assert.Equal(t, 0, p.Depth())
			assert.Equal(t, before, p.Model(), "composer must restore the transform")
			for _, s := range mesh.Shapes {
				assert.Equal(t, tt.counts[s], rec.Count(s), "%s draws", s)
			}
		})
	}
}

func TestStarfieldPlacement(t *testing.T) {
	sf := NewStarfield(5, DefaultStarBounds, rand.New(rand.NewPCG(9, 9)))
	p, rec := newPainter()
	DrawStarfield(p, sf)

	require.Len(t, rec.Draws, 5)
	for i, d := range rec.Draws {
		s := sf.Stars[i]
		assert.True(t, math.Near(d.Origin(), mgl32.Vec3{s.X, s.Y, starDepth}, eps))
		assert.InDelta(t, s.DrawScale(), d.ModelView.Col(0).Vec3().Len(), eps)
		assert.Equal(t, White, d.Diffuse)
	}
}

func TestSpaceJellyOrbits(t *testing.T) {
	for _, tm := range []float32{0, 1, 5, 12} {
		p, rec := newPainter()
		pose := SpaceJellyPoseAt(tm)
		DrawSpaceJelly(p, pose)

		a := pose.OrbitAngle
		want := mgl32.Vec3{5 * cos(a), 0, 5 * sin(a)}
		body := rec.Draws[0]
		assert.True(t, math.Near(body.Origin(), want, eps), "t=%v body at %v", tm, body.Origin())
		assert.Equal(t, SpaceJelly, body.Diffuse)
		assert.Equal(t, Tentacle, rec.Draws[len(rec.Draws)-1].Diffuse)
	}
}

func TestAstronautRestPose(t *testing.T) {
	rest := RestAstronautPose()
	assert.Equal(t, float32(275), rest.LeftArm)
	assert.Equal(t, float32(80), rest.RightArm)
	assert.Zero(t, rest.X)
	assert.Zero(t, rest.LeftKnee)

	moving := AstronautPoseAt(0)
	assert.InDelta(t, 0.3, moving.X, eps)
	assert.Zero(t, moving.LeftArm)
}

func TestTempleMaterials(t *testing.T) {
	p, rec := newPainter(TextureWater)
	DrawTemple(p)
	DrawWater(p)

	require.Len(t, rec.Draws, 6)
	for _, d := range rec.Draws[:3] {
		assert.Equal(t, Gold, d.Diffuse)
		assert.False(t, d.Textured)
	}
	assert.Equal(t, Stone, rec.Draws[3].Diffuse)
	assert.Equal(t, mesh.Cone, rec.Draws[4].Shape)
	assert.Equal(t, Stone, rec.Draws[4].Diffuse)

	water := rec.Draws[5]
	assert.True(t, water.Textured)
	assert.Equal(t, TextureWater, water.Texture)
	assert.True(t, math.Near(water.Origin(), mgl32.Vec3{0, -1, 0}, eps))
}

func TestMissingTextureFallsBackToColour(t *testing.T) {
	p, rec := newPainter()
	DrawOrb(p, 0)

	require.Len(t, rec.Draws, 1)
	orb := rec.Draws[0]
	assert.False(t, orb.Textured)
	assert.Equal(t, OrbGlow, orb.Diffuse)
	assert.True(t, math.Near(orb.Origin(), OrbPosition, eps))
}

func TestOrbPulse(t *testing.T) {
	for _, tm := range []float32{0, 0.1, 0.7, 3} {
		s := OrbScale(tm)
		assert.GreaterOrEqual(t, s, float32(0.5))
		assert.LessOrEqual(t, s, float32(0.6))
	}
}

func TestHumanPlacement(t *testing.T) {
	pos := mgl32.Vec3{3, 2, -1}
	p, rec := newPainter()
	DrawHuman(p, DefaultHumanPose(pos))

	body := rec.Draws[0]
	assert.True(t, math.Near(body.Origin(), pos, eps))
	assert.Equal(t, Suit, body.Diffuse)

	head := rec.Draws[len(rec.Draws)-1]
	assert.Equal(t, mesh.Sphere, head.Shape)
	assert.Equal(t, Skin, head.Diffuse)
	// lying flat: the head offset along local Y ends up along world Z
	assert.True(t, math.Near(head.Origin(), pos.Add(mgl32.Vec3{0, 0, 1.15}), eps), "head at %v", head.Origin())

	var boots int
	for _, d := range rec.Draws {
		if d.Diffuse == Boots {
			boots++
		}
	}
	assert.Equal(t, 2, boots)
}

func TestJellyfishBobs(t *testing.T) {
	pos := JellyfishOrbit(2)
	for _, tm := range []float32{0, 0.3, 1} {
		p, rec := newPainter()
		DrawJellyfish(p, pos, tm)

		bell := rec.Draws[0]
		want := pos.Add(mgl32.Vec3{0, JellyfishBob(tm), 0})
		assert.True(t, math.Near(bell.Origin(), want, eps), "t=%v bell at %v", tm, bell.Origin())
		assert.Equal(t, JellyfishRed, bell.Diffuse)
	}
}
