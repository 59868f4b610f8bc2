package entity

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/orbitfall/internal/engine/scene"
)

// Bounds is the visible rectangle stars travel through. Stars enter from
// the left and bottom edges and leave through the right and top ones.
type Bounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// DefaultStarBounds matches the orthographic view of the astronaut scene.
var DefaultStarBounds = Bounds{MinX: -6, MaxX: 8, MinY: -6, MaxY: 8}

const (
	starDepth    = -3.0
	starMaxScale = 0.15
	starSpeed    = 1.0
)

// Star is one particle of the pool.
type Star struct {
	X, Y           float32
	SpeedX, SpeedY float32
	BaseScale      float32
}

// DrawScale grows the star as it nears the centre, between its base scale
// and a fixed cap.
func (s Star) DrawScale() float32 {
	dist := math32.Sqrt(s.X*s.X + s.Y*s.Y)
	scale := s.BaseScale + 0.01*(6-dist)
	return min(max(scale, s.BaseScale), starMaxScale)
}

// Starfield is a fixed-size pool of stars drifting diagonally up-right.
// Stars that leave the bounds are recycled in place.
type Starfield struct {
	Bounds Bounds
	Stars  []Star

	rng *rand.Rand
}

// NewStarfield scatters count stars over the whole of bounds.
func NewStarfield(count int, bounds Bounds, rng *rand.Rand) *Starfield {
	sf := &Starfield{
		Bounds: bounds,
		Stars:  make([]Star, count),
		rng:    rng,
	}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X:         sf.between(bounds.MinX, bounds.MaxX),
			Y:         sf.between(bounds.MinY, bounds.MaxY),
			SpeedX:    starSpeed,
			SpeedY:    starSpeed,
			BaseScale: sf.baseScale(),
		}
	}
	return sf
}

func (sf *Starfield) between(lo, hi float32) float32 {
	return lo + sf.rng.Float32()*(hi-lo)
}

func (sf *Starfield) baseScale() float32 {
	return 0.02 + sf.rng.Float32()*0.03
}

// spawn places a star just outside the left or bottom edge.
func (sf *Starfield) spawn() Star {
	b := sf.Bounds
	s := Star{SpeedX: starSpeed, SpeedY: starSpeed}
	if sf.rng.IntN(2) == 0 {
		s.X = sf.between(b.MinX-1, b.MinX)
		s.Y = sf.between(b.MinY, b.MaxY)
	} else {
		s.X = sf.between(b.MinX, b.MaxX)
		s.Y = sf.between(b.MinY-1, b.MinY)
	}
	s.BaseScale = sf.baseScale()
	return s
}

// Update moves every star by dt seconds and respawns the ones that left
// through the right or top edge.
func (sf *Starfield) Update(dt float32) {
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.X += s.SpeedX * dt
		s.Y += s.SpeedY * dt
		if s.X > sf.Bounds.MaxX || s.Y > sf.Bounds.MaxY {
			*s = sf.spawn()
		}
	}
}

// DrawStarfield draws every star as a small white sphere behind the scene.
func DrawStarfield(p *scene.Painter, sf *Starfield) {
	for _, s := range sf.Stars {
		p.Group(func() {
			p.Translate(s.X, s.Y, starDepth)
			p.ScaleUniform(s.DrawScale())
			p.SetColor(White)
			p.DrawSphere()
		})
	}
}
