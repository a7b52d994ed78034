// Package picking turns pointer positions into world-space rays.
package picking

import (
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates,
// x right and y up, both in [-1, 1].
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) (ndcX, ndcY float32) {
	if viewportW <= 0 || viewportH <= 0 {
		return 0, 0
	}
	return 2*screenX/viewportW - 1, 1 - 2*screenY/viewportH
}

// FromCamera builds the ray from a perspective camera's eye through an NDC
// point. invViewProj is the inverse of the view-projection matrix.
func FromCamera(eye math.Vec3, ndcX, ndcY float32, invViewProj math.Mat4) Ray {
	// Unproject a point halfway into the depth range; the eye is the origin.
	through := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 0.5})
	dir := through.Sub(eye).Normalize()
	return Ray{Origin: eye, Direction: dir}
}
