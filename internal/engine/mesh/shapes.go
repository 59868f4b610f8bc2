package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	cylinderRadius = 0.5
	coneRadius     = 1.0
	halfHeight     = 0.5
	cubeHalfSide   = 1.0
)

func (g *Geometry) triangle(a, b, c Vertex) {
	g.Vertices = append(g.Vertices, a, b, c)
}

// ring returns the unit direction at segment i of n around the Z axis.
// Segment n wraps to 0 so seams share bit-identical positions.
func ring(i, n int) (cos, sin float32) {
	a := 2 * math32.Pi * float32(i%n) / float32(n)
	return math32.Cos(a), math32.Sin(a)
}

// NewSphere builds a unit sphere centered at the origin with n latitude
// bands and n longitude segments. Each quad is split into two triangles;
// the quads touching a pole collapse to a single triangle.
// The normal of every vertex is its normalized position.
func NewSphere(n int) (*Geometry, error) {
	if err := checkResolution(Sphere, n); err != nil {
		return nil, err
	}

	g := &Geometry{
		Shape:    Sphere,
		Vertices: make([]Vertex, 0, 6*n*(n-1)),
	}

	point := func(lat, lon int) Vertex {
		var sinT, cosT float32
		switch lat {
		case 0:
			sinT, cosT = 0, 1
		case n:
			sinT, cosT = 0, -1
		default:
			theta := math32.Pi * float32(lat) / float32(n)
			sinT, cosT = math32.Sin(theta), math32.Cos(theta)
		}
		cosP, sinP := ring(lon, n)

		pos := mgl32.Vec3{sinT * cosP, cosT, sinT * sinP}
		return Vertex{
			Position: pos,
			Normal:   pos.Normalize(),
			TexCoord: mgl32.Vec2{float32(lon) / float32(n), float32(lat) / float32(n)},
		}
	}

	for lat := 0; lat < n; lat++ {
		for lon := 0; lon < n; lon++ {
			v00 := point(lat, lon)
			v01 := point(lat, lon+1)
			v10 := point(lat+1, lon)
			v11 := point(lat+1, lon+1)

			if lat != 0 {
				g.triangle(v00, v01, v10)
			}
			if lat != n-1 {
				g.triangle(v01, v11, v10)
			}
		}
	}

	return g, nil
}

// NewCylinder builds a cylinder of height 1 and radius 0.5 along the Z
// axis, centered at the origin, with n radial segments and both caps.
func NewCylinder(n int) (*Geometry, error) {
	if err := checkResolution(Cylinder, n); err != nil {
		return nil, err
	}

	g := &Geometry{
		Shape:    Cylinder,
		Vertices: make([]Vertex, 0, 12*n),
	}

	up := mgl32.Vec3{0, 0, 1}
	down := mgl32.Vec3{0, 0, -1}
	top := Vertex{Position: mgl32.Vec3{0, 0, halfHeight}, Normal: up, TexCoord: mgl32.Vec2{0.5, 0.5}}
	bottom := Vertex{Position: mgl32.Vec3{0, 0, -halfHeight}, Normal: down, TexCoord: mgl32.Vec2{0.5, 0.5}}

	side := func(c, s, z, u, v float32) Vertex {
		return Vertex{
			Position: mgl32.Vec3{cylinderRadius * c, cylinderRadius * s, z},
			Normal:   mgl32.Vec3{c, s, 0},
			TexCoord: mgl32.Vec2{u, v},
		}
	}

	for i := 0; i < n; i++ {
		c0, s0 := ring(i, n)
		c1, s1 := ring(i+1, n)
		u0 := float32(i) / float32(n)
		u1 := float32(i+1) / float32(n)

		// Side wall
		b0 := side(c0, s0, -halfHeight, u0, 0)
		b1 := side(c1, s1, -halfHeight, u1, 0)
		t0 := side(c0, s0, halfHeight, u0, 1)
		t1 := side(c1, s1, halfHeight, u1, 1)
		g.triangle(b0, b1, t0)
		g.triangle(b1, t1, t0)

		// Caps
		g.triangle(top, capVertex(t0, up), capVertex(t1, up))
		g.triangle(bottom, capVertex(b1, down), capVertex(b0, down))
	}

	return g, nil
}

// NewCone builds a cone of height 1 and base radius 1 along the Z axis,
// centered at the origin, with the apex at +Z and n radial segments.
func NewCone(n int) (*Geometry, error) {
	if err := checkResolution(Cone, n); err != nil {
		return nil, err
	}

	g := &Geometry{
		Shape:    Cone,
		Vertices: make([]Vertex, 0, 6*n),
	}

	down := mgl32.Vec3{0, 0, -1}
	bottom := Vertex{Position: mgl32.Vec3{0, 0, -halfHeight}, Normal: down, TexCoord: mgl32.Vec2{0.5, 0.5}}

	// Slant normal: for height h and radius r the wall normal is
	// (h·cos, h·sin, r) normalized.
	slant := func(c, s float32) mgl32.Vec3 {
		return mgl32.Vec3{2 * halfHeight * c, 2 * halfHeight * s, coneRadius}.Normalize()
	}

	for i := 0; i < n; i++ {
		c0, s0 := ring(i, n)
		c1, s1 := ring(i+1, n)
		mid := 2 * math32.Pi * (float32(i) + 0.5) / float32(n)

		b0 := Vertex{
			Position: mgl32.Vec3{coneRadius * c0, coneRadius * s0, -halfHeight},
			Normal:   slant(c0, s0),
			TexCoord: mgl32.Vec2{float32(i) / float32(n), 0},
		}
		b1 := Vertex{
			Position: mgl32.Vec3{coneRadius * c1, coneRadius * s1, -halfHeight},
			Normal:   slant(c1, s1),
			TexCoord: mgl32.Vec2{float32(i+1) / float32(n), 0},
		}
		apex := Vertex{
			Position: mgl32.Vec3{0, 0, halfHeight},
			Normal:   slant(math32.Cos(mid), math32.Sin(mid)),
			TexCoord: mgl32.Vec2{(float32(i) + 0.5) / float32(n), 1},
		}
		g.triangle(b0, b1, apex)
		g.triangle(bottom, capVertex(b1, down), capVertex(b0, down))
	}

	return g, nil
}

// capVertex re-uses a rim position with an axial normal and planar UVs.
func capVertex(rim Vertex, normal mgl32.Vec3) Vertex {
	r := mgl32.Vec2{rim.Position[0], rim.Position[1]}.Len()
	u, v := float32(0.5), float32(0.5)
	if r > 0 {
		u += 0.5 * rim.Position[0] / r
		v += 0.5 * rim.Position[1] / r
	}
	return Vertex{Position: rim.Position, Normal: normal, TexCoord: mgl32.Vec2{u, v}}
}

// cubeFace describes one side of the cube: its outward normal and two
// tangents with u × v = normal, so corners walked -u-v, +u-v, +u+v, -u+v
// are counter-clockwise seen from outside.
type cubeFace struct {
	normal, u, v mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 1, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{1, 0, 0}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{0, 1, 0}, v: mgl32.Vec3{1, 0, 0}},
}

// NewCube builds an axis-aligned cube of side 2 centered at the origin
// with flat per-face normals.
func NewCube() *Geometry {
	g := &Geometry{
		Shape:    Cube,
		Vertices: make([]Vertex, 0, 36),
	}

	for _, f := range cubeFaces {
		corner := func(su, sv float32, tex mgl32.Vec2) Vertex {
			p := f.normal.Add(f.u.Mul(su)).Add(f.v.Mul(sv)).Mul(cubeHalfSide)
			return Vertex{Position: p, Normal: f.normal, TexCoord: tex}
		}
		c0 := corner(-1, -1, mgl32.Vec2{0, 0})
		c1 := corner(1, -1, mgl32.Vec2{1, 0})
		c2 := corner(1, 1, mgl32.Vec2{1, 1})
		c3 := corner(-1, 1, mgl32.Vec2{0, 1})
		g.triangle(c0, c1, c2)
		g.triangle(c0, c2, c3)
	}

	return g
}
