package math

import (
	"math"
	"testing"
)

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()
	l := math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W))
	if math.Abs(l-1) > 1e-5 {
		t.Errorf("normalized length = %v, want 1", l)
	}
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero quaternion Normalize() = %v, want identity", got)
	}
}

func TestQuatRotateMatchesMatrix(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/2)
	v := Vec3{1, 0, 0}

	byQuat := q.Rotate(v)
	byMat := q.ToMat4().TransformVec3(v)
	byRot := RotateY(math.Pi / 2).TransformVec3(v)

	if byQuat.Distance(byMat) > 1e-5 || byQuat.Distance(byRot) > 1e-5 {
		t.Errorf("Rotate = %v, ToMat4 = %v, RotateY = %v", byQuat, byMat, byRot)
	}
}

func TestQuatMul(t *testing.T) {
	half := QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/4)
	full := half.Mul(half)
	got := full.Rotate(Vec3{1, 0, 0})
	if got.Distance(Vec3{0, 1, 0}) > 1e-5 {
		t.Errorf("two 45° turns = %v, want +Y", got)
	}
}
