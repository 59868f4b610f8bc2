// Package camera provides the look-at cameras the scenes are viewed through.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lens describes the projection. Orthographic lenses use the box bounds,
// perspective lenses use FovY (degrees) and Aspect.
type Lens struct {
	Orthographic bool

	Left, Right, Bottom, Top float32

	FovY   float32
	Aspect float32

	Near, Far float32
}

// Camera is a look-at camera. Eye and At are updated every frame by the
// scene; the lens only changes on resize.
type Camera struct {
	Eye  mgl32.Vec3
	At   mgl32.Vec3
	Up   mgl32.Vec3
	Lens Lens
}

// NewOrtho creates a camera with an orthographic box projection looking
// from eye toward the origin.
func NewOrtho(left, right, bottom, top, near, far float32, eye mgl32.Vec3) *Camera {
	return &Camera{
		Eye: eye,
		Up:  mgl32.Vec3{0, 1, 0},
		Lens: Lens{
			Orthographic: true,
			Left:         left,
			Right:        right,
			Bottom:       bottom,
			Top:          top,
			Near:         near,
			Far:          far,
		},
	}
}

// NewPerspective creates a camera with a perspective projection.
func NewPerspective(fovY, aspect, near, far float32) *Camera {
	return &Camera{
		Up: mgl32.Vec3{0, 1, 0},
		Lens: Lens{
			FovY:   fovY,
			Aspect: aspect,
			Near:   near,
			Far:    far,
		},
	}
}

// SetViewport updates the aspect ratio of a perspective lens. The
// orthographic box keeps its bounds.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Lens.Aspect = float32(width) / float32(height)
}

// View returns the world-to-eye matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.At, c.Up)
}

// Projection returns the eye-to-clip matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	l := c.Lens
	if l.Orthographic {
		return mgl32.Ortho(l.Left, l.Right, l.Bottom, l.Top, l.Near, l.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(l.FovY), l.Aspect, l.Near, l.Far)
}

// Orbit places the eye on a horizontal circle of the given radius and
// height around center, at angle radians, and looks at target.
func (c *Camera) Orbit(center mgl32.Vec3, radius, height, angle float32, target mgl32.Vec3) {
	c.Eye = mgl32.Vec3{
		center.X() + radius*math32.Cos(angle),
		center.Y() + height,
		center.Z() + radius*math32.Sin(angle),
	}
	c.At = target
}
