// Package mesh generates procedural geometry for the unit primitives the
// scene composer draws with: sphere, cylinder, cone and cube.
//
// Geometry is produced once at start-up as a flat, non-indexed triangle
// list and never changes afterwards. Curved primitives take a tessellation
// resolution (number of segments); higher values look smoother at the cost
// of a bigger vertex buffer.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MinResolution is the smallest tessellation that yields a closed solid.
const MinResolution = 3

// ErrResolution is returned when a curved primitive is requested with fewer
// than MinResolution segments.
var ErrResolution = errors.New("mesh: resolution below minimum")

// Shape identifies one of the built-in primitives.
type Shape uint8

const (
	Sphere Shape = iota
	Cylinder
	Cone
	Cube
)

// Shapes lists every primitive in upload order.
var Shapes = []Shape{Sphere, Cylinder, Cone, Cube}

func (s Shape) String() string {
	switch s {
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Cube:
		return "cube"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// Vertex is a single interleaved vertex as uploaded to the GPU.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Geometry is a triangle list: every three consecutive vertices form one
// counter-clockwise (outward facing) triangle.
type Geometry struct {
	Shape    Shape
	Vertices []Vertex
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Vertices)
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Vertices) / 3
}

// Resolution holds the tessellation used for each curved primitive.
type Resolution struct {
	Sphere   int
	Cylinder int
	Cone     int
}

// DefaultResolution matches the tessellation the scenes were tuned with.
func DefaultResolution() Resolution {
	return Resolution{
		Sphere:   36,
		Cylinder: 20,
		Cone:     20,
	}
}

func checkResolution(shape Shape, n int) error {
	if n < MinResolution {
		return fmt.Errorf("%s with %d segments: %w", shape, n, ErrResolution)
	}
	return nil
}

// BuildAll generates every primitive. Either all of them are returned or
// none, so a bad resolution never leaves a partial set behind.
func BuildAll(res Resolution) (map[Shape]*Geometry, error) {
	sphere, err := NewSphere(res.Sphere)
	if err != nil {
		return nil, err
	}
	cylinder, err := NewCylinder(res.Cylinder)
	if err != nil {
		return nil, err
	}
	cone, err := NewCone(res.Cone)
	if err != nil {
		return nil, err
	}

	return map[Shape]*Geometry{
		Sphere:   sphere,
		Cylinder: cylinder,
		Cone:     cone,
		Cube:     NewCube(),
	}, nil
}
