package landing

import (
	gomath "math"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Pointer interaction constants for the starfield.
const (
	RepulsionRadius = 3.5
	RepulsionForce  = 0.5
	RelaxRate       = 0.05
	// PointerDepth is how far along the camera ray the pointer target lies.
	PointerDepth = 10
)

// Repel pushes p away from target. It returns the new position and the
// force applied, which is zero outside RepulsionRadius.
func Repel(p, target math.Vec3) (math.Vec3, float32) {
	d := p.Sub(target)
	dist := float64(d.Length())
	if dist >= RepulsionRadius {
		return p, 0
	}
	force := float32((1 - dist/RepulsionRadius) * RepulsionForce)
	if dist == 0 {
		return p, force
	}
	return p.Add(d.Scale(force / float32(dist))), force
}

// Relax moves v a fixed fraction of the way to rest.
func Relax(v, rest math.Vec3) math.Vec3 {
	return v.Add(rest.Sub(v).Scale(RelaxRate))
}

// Brighten scales a color by 1+2*force, clamping each channel to 1.
func Brighten(c math.Vec3, force float32) math.Vec3 {
	f := 1 + 2*force
	return math.Vec3{X: min(1, c.X*f), Y: min(1, c.Y*f), Z: min(1, c.Z*f)}
}

// Twinkle returns the size of particle i at time t (seconds) before any
// pointer boost.
func Twinkle(i int, t float64) float32 {
	speed := 0.5 + float64(i%10)*0.3
	phase := float64(i) * 0.628
	tw := gomath.Sin(t*speed+phase)*0.5 + 0.5
	base := 0.5 + float64(i%5)*0.3
	return float32(base + tw*1.5)
}

// FieldOpacity is the slow breathing opacity of the whole starfield.
func FieldOpacity(t float64) float32 {
	return float32(gomath.Sin(t*0.3)*0.1 + 0.85)
}

// AnimateParticles runs one tick of pointer repulsion, relaxation and
// twinkling over ps. Rest positions are captured on the first call.
func AnimateParticles(ps *model.ParticleSystem, target math.Vec3, t float64) {
	ps.CaptureOriginal()
	for i := range ps.Positions {
		p := ps.Positions[i]
		dist := float64(p.Distance(target))

		if moved, force := Repel(p, target); dist < RepulsionRadius {
			ps.Positions[i] = moved
			ps.Colors[i] = Brighten(ps.Colors[i], force)
		} else {
			ps.Positions[i] = Relax(p, ps.Original[i])
			ps.Colors[i] = Relax(ps.Colors[i], ps.RestColor(i))
		}

		size := Twinkle(i, t)
		if dist < RepulsionRadius {
			size *= float32(1 + (1-dist/RepulsionRadius)*1.5)
		}
		ps.Sizes[i] = size
	}
}
