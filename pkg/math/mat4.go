// Package math provides the small set of matrix helpers the renderer needs
// on top of mgl32: degree-based rotations around arbitrary axes, normal
// matrices and component-wise colour products.
package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rotate returns a rotation of angleDeg degrees around axis.
// The axis does not need to be normalized. A zero axis yields identity.
func Rotate(angleDeg float32, axis mgl32.Vec3) mgl32.Mat4 {
	l := axis.Len()
	if l == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), axis.Mul(1/l))
}

// NormalMatrix returns the inverse-transpose of a model-view matrix, used to
// transform normals under non-uniform scale.
// Returns identity if the matrix is singular.
func NormalMatrix(modelView mgl32.Mat4) mgl32.Mat4 {
	if modelView.Det() == 0 {
		return mgl32.Ident4()
	}
	return modelView.Inv().Transpose()
}

// Origin returns where the local origin of m lands in the parent frame.
func Origin(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}

// TransformPoint transforms a point by m (w=1).
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, m)
}

// MulComponents returns the component-wise product of two Vec4s.
func MulComponents(a, b mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Near reports whether every component of a and b differs by at most tol.
func Near(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}

// Near4 is Near for Vec4.
func Near4(a, b mgl32.Vec4, tol float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}
