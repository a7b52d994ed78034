// Package camera provides perspective cameras for the hero and interior scenes.
package camera

import (
	gomath "math"

	"github.com/Faultbox/neurosummit/pkg/math"
)

// Perspective is a camera positioned and oriented like a scene node. With a
// zero rotation it looks down -Z with +Y up.
type Perspective struct {
	Position math.Vec3
	Rotation math.Vec3 // Euler XYZ (pitch, yaw, roll), radians

	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective creates a camera at the origin.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	return &Perspective{
		Position: math.Vec3{},
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// NewHero creates the hero-scene camera: 75 degree FOV at distance z on +Z.
func NewHero(aspect, z float32) *Perspective {
	c := NewPerspective(75, aspect, 0.1, 1000)
	c.Position = math.Vec3{Z: z}
	return c
}

// NewInterior creates the interior-scene camera at the center of the
// backdrop sphere.
func NewInterior(aspect float32) *Perspective {
	return NewPerspective(75, aspect, 0.1, 1000)
}

// SetAspect updates the aspect ratio from a viewport size.
func (c *Perspective) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// WorldMatrix returns the camera-to-world transform.
func (c *Perspective) WorldMatrix() math.Mat4 {
	return math.Translate(c.Position).Mul(math.Euler(c.Rotation))
}

// ViewMatrix returns the world-to-camera transform.
func (c *Perspective) ViewMatrix() math.Mat4 {
	return c.WorldMatrix().Inverse()
}

// ProjectionMatrix returns the perspective projection.
func (c *Perspective) ProjectionMatrix() math.Mat4 {
	fov := float32(float64(c.FOV) * gomath.Pi / 180)
	return math.Perspective(fov, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Perspective) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Forward returns the unit view direction in world space.
func (c *Perspective) Forward() math.Vec3 {
	return math.Euler(c.Rotation).TransformDir(math.Vec3{Z: -1}).Normalize()
}

// Orbit advances an interior camera: yaw grows by step every call and
// pitch follows a slow sinusoid of the elapsed milliseconds.
func (c *Perspective) Orbit(yawStep float32, elapsedMS float64) {
	c.Rotation.Y += yawStep
	c.Rotation.X = float32(gomath.Sin(elapsedMS*0.0005) * 0.1)
}
