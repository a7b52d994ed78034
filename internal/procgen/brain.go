package procgen

import (
	gomath "math"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

const (
	// BrainRadius is the radius of the source sphere.
	BrainRadius = 1.5
	// BrainSegments is the width and height segment count of the source sphere.
	BrainSegments = 150
)

// BrainGeometry deforms a high-resolution sphere into a brain-like surface.
// It uses no randomness: the same call always yields the same mesh.
func BrainGeometry() *model.Mesh {
	return BrainGeometryWith(BrainSegments)
}

// BrainGeometryWith is BrainGeometry with a custom sphere resolution.
func BrainGeometryWith(segments int) *model.Mesh {
	m := UVSphere(BrainRadius, segments, segments)
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = DeformVertex(v.Position)
	}
	m.ComputeNormals()
	m.WeldNormals()
	return m
}

// DeformVertex maps one sphere vertex onto the brain surface.
func DeformVertex(p math.Vec3) math.Vec3 {
	x, y, z := float64(p.X), float64(p.Y), float64(p.Z)

	// Overall proportions: narrower and flatter than long.
	x *= 0.85
	y *= 0.78

	// Longitudinal fissure between the hemispheres.
	if gomath.Abs(x) < 0.35 && y > -0.3 {
		depth := gomath.Pow((0.35-gomath.Abs(x))/0.35, 0.8)
		y -= depth * 0.35
		z *= 1 - depth*0.05
	}

	// Frontal lobe.
	if z > 0.4 {
		f := (z - 0.4) / 0.6
		z *= 1 + f*0.18
		x *= 1 - f*0.08
		if ax := gomath.Abs(x); ax > 0.5 && ax < 0.8 {
			x *= 1.08
		}
	}

	// Parietal crown.
	if y > 0.3 && z > -0.3 && z < 0.5 {
		y *= 1.08
	}

	// Occipital lobe.
	if z < -0.5 {
		b := gomath.Abs(z+0.5) / 0.5
		z *= 1 + b*0.12
		if y > 0 {
			y *= 1 + b*0.08
		}
	}

	// Temporal lobes.
	if ax := gomath.Abs(x); ax > 0.55 && y < 0 && z > -0.4 && z < 0.4 {
		s := (ax - 0.55) / 0.45
		x *= 1 + s*0.18
		y -= s * 0.12
	}

	// Cerebellum.
	if z < -0.3 && y < -0.1 {
		c := gomath.Max(0, -(z+0.3)) * gomath.Max(0, -(y+0.1))
		x *= 1 + c*0.15
		y -= c * 0.12
		z -= c * 0.08
	}

	// Brain stem taper.
	if y < -0.5 {
		a := gomath.Abs(y+0.5) / 0.5
		x *= 1 - a*0.35
		z *= 1 - a*0.25
	}

	folds := FoldDisplacement(x, y, z)
	l := gomath.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return p
	}
	k := 1 + folds/l
	return math.V3(x*k, y*k, z*k)
}

// FoldDisplacement sums the gyri, sulci and micro-detail terms at a point.
func FoldDisplacement(x, y, z float64) float64 {
	sin, cos := gomath.Sin, gomath.Cos

	gyri := sin(x*15+z*12)*cos(y*14+z*3)*0.055 +
		sin(x*25+y*22)*cos(z*20+x*4)*0.035 +
		sin(y*35+z*30)*cos(x*32+y*2)*0.022 +
		sin(x*45+y*40)*cos(z*42)*0.015 +
		sin(z*55+x*50)*cos(y*52)*0.01

	sulci := sin(x*10+z*8)*sin(y*9)*-0.04 +
		sin(x*18+y*15)*sin(z*16)*-0.025

	micro := sin(x*70) * cos(y*65) * sin(z*68) * 0.008

	return gyri + sulci + micro
}
