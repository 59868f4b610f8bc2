// Package transform implements the model-matrix stack that composite scene
// objects are built with.
//
// A flat sequence of Push / Translate / Rotate / Scale / Pop calls encodes
// a rigid-body hierarchy: every operation is post-multiplied into the
// current matrix, so it acts in the local frame set up by the operations
// before it, and a Pop restores the frame saved by the matching Push.
package transform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitfall/pkg/math"
)

// ErrStackUnderflow is returned by Pop when no transform has been saved.
var ErrStackUnderflow = errors.New("transform: stack underflow")

// Stack holds the current model transform and the saved snapshots.
type Stack struct {
	current mgl32.Mat4
	saved   []mgl32.Mat4
}

// New returns a stack whose current transform is identity.
func New() *Stack {
	return &Stack{
		current: mgl32.Ident4(),
		saved:   make([]mgl32.Mat4, 0, 16),
	}
}

// Reset sets the current transform to identity and drops every saved
// snapshot. Called once per frame before traversal.
func (s *Stack) Reset() {
	s.current = mgl32.Ident4()
	s.saved = s.saved[:0]
}

// Push saves a copy of the current transform.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.current)
}

// Pop restores the most recently pushed transform.
func (s *Stack) Pop() error {
	n := len(s.saved)
	if n == 0 {
		return ErrStackUnderflow
	}
	s.current = s.saved[n-1]
	s.saved = s.saved[:n-1]
	return nil
}

// Translate post-multiplies a translation.
func (s *Stack) Translate(x, y, z float32) {
	s.current = s.current.Mul4(mgl32.Translate3D(x, y, z))
}

// Rotate post-multiplies a rotation of angleDeg degrees around (x, y, z).
// The axis is normalized; a zero axis leaves the transform unchanged.
func (s *Stack) Rotate(angleDeg, x, y, z float32) {
	s.current = s.current.Mul4(math.Rotate(angleDeg, mgl32.Vec3{x, y, z}))
}

// Scale post-multiplies a non-uniform scale.
func (s *Stack) Scale(sx, sy, sz float32) {
	s.current = s.current.Mul4(mgl32.Scale3D(sx, sy, sz))
}

// Current returns the transform in effect.
func (s *Stack) Current() mgl32.Mat4 {
	return s.current
}

// Depth returns the number of saved transforms.
func (s *Stack) Depth() int {
	return len(s.saved)
}
