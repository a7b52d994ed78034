package model

import (
	"github.com/Faultbox/neurosummit/pkg/math"
)

// ParticleSystem is a point cloud stored as parallel per-particle arrays.
// Once Original has been captured all four arrays have the same length.
type ParticleSystem struct {
	Positions []math.Vec3
	Colors    []math.Vec3
	Sizes     []float32

	// Original holds the rest positions, captured on first animation.
	Original []math.Vec3

	// Palette is the set of rest colors; particle i relaxes towards
	// Palette[i%len(Palette)].
	Palette []math.Vec3
}

// NewParticleSystem allocates a system of n particles.
func NewParticleSystem(n int) *ParticleSystem {
	return &ParticleSystem{
		Positions: make([]math.Vec3, n),
		Colors:    make([]math.Vec3, n),
		Sizes:     make([]float32, n),
	}
}

// Len returns the particle count.
func (p *ParticleSystem) Len() int { return len(p.Positions) }

// CaptureOriginal records the current positions as rest positions if that
// has not happened yet. It reports whether a capture took place.
func (p *ParticleSystem) CaptureOriginal() bool {
	if p.Original != nil {
		return false
	}
	p.Original = make([]math.Vec3, len(p.Positions))
	copy(p.Original, p.Positions)
	return true
}

// Aligned reports whether all per-particle arrays share one length.
func (p *ParticleSystem) Aligned() bool {
	n := len(p.Positions)
	if len(p.Colors) != n || len(p.Sizes) != n {
		return false
	}
	return p.Original == nil || len(p.Original) == n
}

// RestColor returns the color particle i relaxes towards.
func (p *ParticleSystem) RestColor(i int) math.Vec3 {
	if len(p.Palette) == 0 {
		return p.Colors[i]
	}
	return p.Palette[i%len(p.Palette)]
}
