// Package scenetest provides a recording scene.Device for tests.
package scenetest

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitfall/internal/engine/mesh"
	"github.com/Faultbox/orbitfall/internal/engine/scene"
)

// Draw is a snapshot of the uniforms in effect at one draw call.
type Draw struct {
	Shape     mesh.Shape
	ModelView mgl32.Mat4
	Normal    mgl32.Mat4
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Texture   string
	Textured  bool
}

// Origin returns where the primitive's local origin lands in eye space.
func (d Draw) Origin() mgl32.Vec3 {
	return d.ModelView.Col(3).Vec3()
}

// Recorder implements scene.Device in memory.
type Recorder struct {
	Mat4  map[string]mgl32.Mat4
	Vec4  map[string]mgl32.Vec4
	Float map[string]float32
	Int   map[string]int32

	Draws []Draw

	available map[string]bool
	bound     string
}

var _ scene.Device = (*Recorder)(nil)

// NewRecorder returns a recorder on which the named textures bind.
func NewRecorder(textures ...string) *Recorder {
	r := &Recorder{
		Mat4:      make(map[string]mgl32.Mat4),
		Vec4:      make(map[string]mgl32.Vec4),
		Float:     make(map[string]float32),
		Int:       make(map[string]int32),
		available: make(map[string]bool),
	}
	for _, name := range textures {
		r.available[name] = true
	}
	return r
}

func (r *Recorder) SetUniformMat4(name string, m mgl32.Mat4) { r.Mat4[name] = m }
func (r *Recorder) SetUniformVec4(name string, v mgl32.Vec4) { r.Vec4[name] = v }
func (r *Recorder) SetUniformFloat(name string, v float32)   { r.Float[name] = v }
func (r *Recorder) SetUniformInt(name string, v int32)       { r.Int[name] = v }

func (r *Recorder) BindTexture(name string) bool {
	if !r.available[name] {
		return false
	}
	r.bound = name
	return true
}

func (r *Recorder) UnbindTexture() {
	r.bound = ""
}

func (r *Recorder) Draw(shape mesh.Shape) {
	r.Draws = append(r.Draws, Draw{
		Shape:     shape,
		ModelView: r.Mat4[scene.UniformModelView],
		Normal:    r.Mat4[scene.UniformNormalMatrix],
		Ambient:   r.Vec4[scene.UniformAmbientProduct],
		Diffuse:   r.Vec4[scene.UniformDiffuseProduct],
		Texture:   r.bound,
		Textured:  r.Int[scene.UniformUseTextures] == 1,
	})
}

// Count returns how many draws used shape.
func (r *Recorder) Count(shape mesh.Shape) int {
	n := 0
	for _, d := range r.Draws {
		if d.Shape == shape {
			n++
		}
	}
	return n
}

// Reset forgets recorded draws and uniforms.
func (r *Recorder) Reset() {
	r.Draws = r.Draws[:0]
	clear(r.Mat4)
	clear(r.Vec4)
	clear(r.Float)
	clear(r.Int)
	r.bound = ""
}
