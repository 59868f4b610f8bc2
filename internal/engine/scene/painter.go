// Package scene composes hierarchical objects out of the unit primitives.
//
// A Painter combines the model transform stack with a Device that draws
// uploaded meshes. Composite objects are written as plain call sequences:
//
//	p.Group(func() {
//		p.Translate(0, 3.85, 0)
//		p.SetColor(white)
//		p.DrawSphere()
//	})
//
// Every Draw call snapshots the current transform, so draw order follows
// call order and nothing is retained between frames.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitfall/internal/engine/lighting"
	"github.com/Faultbox/orbitfall/internal/engine/mesh"
	"github.com/Faultbox/orbitfall/internal/engine/transform"
	"github.com/Faultbox/orbitfall/pkg/math"
)

// Uniform names shared with the Phong shader program.
const (
	UniformModelView       = "modelViewMatrix"
	UniformNormalMatrix    = "normalMatrix"
	UniformProjection      = "projectionMatrix"
	UniformAmbientProduct  = "ambientProduct"
	UniformDiffuseProduct  = "diffuseProduct"
	UniformSpecularProduct = "specularProduct"
	UniformLightPosition   = "lightPosition"
	UniformShininess       = "shininess"
	UniformUseTextures     = "useTextures"
	UniformBlendTextures   = "blendTextures"
	UniformTexture         = "texture1"
)

// Uniforms lists every uniform the painter writes.
var Uniforms = []string{
	UniformModelView,
	UniformNormalMatrix,
	UniformProjection,
	UniformAmbientProduct,
	UniformDiffuseProduct,
	UniformSpecularProduct,
	UniformLightPosition,
	UniformShininess,
	UniformUseTextures,
	UniformBlendTextures,
	UniformTexture,
}

// Device is the narrow GPU contract the painter draws through.
type Device interface {
	SetUniformMat4(name string, m mgl32.Mat4)
	SetUniformVec4(name string, v mgl32.Vec4)
	SetUniformFloat(name string, v float32)
	SetUniformInt(name string, v int32)

	// Draw issues the draw call for an uploaded mesh with whatever
	// uniforms are current.
	Draw(shape mesh.Shape)

	// BindTexture binds a loaded texture to unit 0. It reports false when
	// the texture is unknown or failed to load.
	BindTexture(name string) bool
	UnbindTexture()
}

// Painter draws primitives under the transform stack.
type Painter struct {
	dev   Device
	stack *transform.Stack
	light lighting.Config

	view       mgl32.Mat4
	projection mgl32.Mat4
}

// NewPainter creates a painter drawing through dev, lit by light.
func NewPainter(dev Device, light lighting.Config) *Painter {
	return &Painter{
		dev:        dev,
		stack:      transform.New(),
		light:      light,
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
	}
}

// SetLighting replaces the light and material constants.
func (p *Painter) SetLighting(light lighting.Config) {
	p.light = light
}

// SetCamera sets the view matrix for following draws and uploads the
// projection.
func (p *Painter) SetCamera(view, projection mgl32.Mat4) {
	p.view = view
	p.projection = projection
	p.dev.SetUniformMat4(UniformProjection, projection)
}

// Reset clears the transform stack. Called once at the start of a frame.
func (p *Painter) Reset() {
	p.stack.Reset()
}

// Depth returns the number of unmatched pushes.
func (p *Painter) Depth() int {
	return p.stack.Depth()
}

// Push saves the current transform.
func (p *Painter) Push() {
	p.stack.Push()
}

// Pop restores the last pushed transform. An unmatched Pop is a bug in the
// calling composer and panics with transform.ErrStackUnderflow.
func (p *Painter) Pop() {
	if err := p.stack.Pop(); err != nil {
		panic(err)
	}
}

// Group runs fn between a Push and its matching Pop.
func (p *Painter) Group(fn func()) {
	p.Push()
	fn()
	p.Pop()
}

func (p *Painter) Translate(x, y, z float32) {
	p.stack.Translate(x, y, z)
}

// Rotate rotates by angleDeg degrees around the axis (x, y, z).
func (p *Painter) Rotate(angleDeg, x, y, z float32) {
	p.stack.Rotate(angleDeg, x, y, z)
}

func (p *Painter) Scale(x, y, z float32) {
	p.stack.Scale(x, y, z)
}

// ScaleUniform scales all three axes by s.
func (p *Painter) ScaleUniform(s float32) {
	p.stack.Scale(s, s, s)
}

// Model returns the current model transform.
func (p *Painter) Model() mgl32.Mat4 {
	return p.stack.Current()
}

// SetColor sets the material colour for following draws.
func (p *Painter) SetColor(color mgl32.Vec4) {
	prod := p.light.Products(color)
	p.dev.SetUniformVec4(UniformAmbientProduct, prod.Ambient)
	p.dev.SetUniformVec4(UniformDiffuseProduct, prod.Diffuse)
	p.dev.SetUniformVec4(UniformSpecularProduct, prod.Specular)
	p.dev.SetUniformVec4(UniformLightPosition, p.light.Position)
	p.dev.SetUniformFloat(UniformShininess, p.light.Shininess)
}

// UseTexture binds a named texture and enables texture blending. When the
// texture is not available texturing is switched off, the object keeps its
// flat colour and false is returned.
func (p *Painter) UseTexture(name string) bool {
	if !p.dev.BindTexture(name) {
		p.DisableTexture()
		return false
	}
	p.dev.SetUniformInt(UniformTexture, 0)
	p.dev.SetUniformInt(UniformUseTextures, 1)
	p.dev.SetUniformInt(UniformBlendTextures, 1)
	return true
}

// DisableTexture switches texturing off for following draws.
func (p *Painter) DisableTexture() {
	p.dev.UnbindTexture()
	p.dev.SetUniformInt(UniformUseTextures, 0)
	p.dev.SetUniformInt(UniformBlendTextures, 0)
}

func (p *Painter) DrawSphere()   { p.draw(mesh.Sphere) }
func (p *Painter) DrawCube()     { p.draw(mesh.Cube) }
func (p *Painter) DrawCylinder() { p.draw(mesh.Cylinder) }
func (p *Painter) DrawCone()     { p.draw(mesh.Cone) }

func (p *Painter) draw(shape mesh.Shape) {
	mv := p.view.Mul4(p.stack.Current())
	p.dev.SetUniformMat4(UniformModelView, mv)
	p.dev.SetUniformMat4(UniformNormalMatrix, math.NormalMatrix(mv))
	p.dev.Draw(shape)
}
