package procgen

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// VeinConfig controls the glowing veins that grow out of the brain.
type VeinConfig struct {
	Count          int
	SurfaceRadius  float64
	TubeRadius     float64
	RadialSegments int
}

// DefaultVeinConfig returns the standard vein layout.
func DefaultVeinConfig() VeinConfig {
	return VeinConfig{
		Count:          40,
		SurfaceRadius:  1.6,
		TubeRadius:     0.006,
		RadialSegments: 6,
	}
}

// Vein colors at the root and at the tip.
var (
	VeinRootColor = Hex("#6fa99a")
	VeinTipColor  = Hex("#708d7e")
)

// VeinPath walks a random path over the surface sphere, then extends it
// outwards along the final surface direction with a spiral that grows
// with distance.
func VeinPath(r Rand, surfaceRadius float64) []math.Vec3 {
	theta := r.Float64() * 2 * gomath.Pi
	phi := r.Float64() * gomath.Pi

	surfaceSteps := intBetween(r, 15, 10)
	points := make([]math.Vec3, 0, surfaceSteps+55)
	for j := 0; j < surfaceSteps; j++ {
		theta += jitter(r, 0.09)
		phi = math.Clamp(phi+jitter(r, 0.075), 0.1, gomath.Pi-0.1)
		points = append(points, math.Spherical(surfaceRadius, theta, phi))
	}

	last := points[len(points)-1]
	dir := last.Normalize()
	perp := math.Vec3{X: -dir.Z, Z: dir.X}.Normalize()
	perp2 := dir.Cross(perp)

	steps := intBetween(r, 35, 20)
	reach := between(r, 1.8, 3.0)
	for j := 0; j < steps; j++ {
		p := float64(j) / float64(steps)
		spiral := float32(gomath.Sin(p*gomath.Pi*4) * 0.15 * p)
		pt := last.
			Add(dir.Scale(float32(p * reach))).
			Add(perp.Scale(spiral)).
			Add(perp2.Scale(spiral * 0.7))
		points = append(points, pt)
	}
	return points
}

// VeinOpacity is the opacity at path parameter u: 0.7 up to u = 0.3, then
// falling linearly to 0.05 at the tip.
func VeinOpacity(u float64) float64 {
	if u <= 0.3 {
		return 0.7
	}
	return 0.7 - (u-0.3)/0.7*0.65
}

// VeinGlow is the brightness multiplier at path parameter u and phase t.
func VeinGlow(u, t float64) float64 {
	return 1 + gomath.Sin(u*20-t)*0.3
}

// VeinMaterial returns the template shared by all veins.
func VeinMaterial() *model.Material {
	m := model.NewMaterial("vein", model.ShadingVein)
	m.GradientStart = VeinRootColor
	m.GradientEnd = VeinTipColor
	m.Transparent = true
	m.Blending = model.BlendAdditive
	m.Side = model.SideDouble
	m.DepthWrite = false
	return m
}

// BuildVeins creates one tube node per vein.
func BuildVeins(r Rand, cfg VeinConfig) []*model.Node {
	tmpl := VeinMaterial()
	veins := make([]*model.Node, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		points := VeinPath(r, cfg.SurfaceRadius)
		curve := NewCatmullRom(points)
		mesh := Tube(curve, len(points), cfg.TubeRadius, cfg.RadialSegments)
		veins = append(veins, model.NewMeshNode(fmt.Sprintf("vein-%d", i), mesh, tmpl.Clone()))
	}
	return veins
}
