package procgen

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// PathwayConfig controls the faint pathways hugging the brain surface.
type PathwayConfig struct {
	Count          int
	Segments       int
	Radius         float64
	TubeRadius     float64
	RadialSegments int
	BaseOpacity    float32
}

// DefaultPathwayConfig returns the standard pathway layout.
func DefaultPathwayConfig() PathwayConfig {
	return PathwayConfig{
		Count:          12,
		Segments:       50,
		Radius:         1.56,
		TubeRadius:     0.008,
		RadialSegments: 8,
		BaseOpacity:    0.3,
	}
}

// PathwayColors alternate between consecutive pathways.
var PathwayColors = [2]math.Vec3{Hex("#6fa99a"), Hex("#708d7e")}

// PathwayPath samples segments+1 points circling the brain at radius, each
// with a random azimuth offset and polar angle.
func PathwayPath(r Rand, radius float64, segments int) []math.Vec3 {
	points := make([]math.Vec3, 0, segments+1)
	for j := 0; j <= segments; j++ {
		t := float64(j) / float64(segments)
		theta := t*2*gomath.Pi + r.Float64()*gomath.Pi
		phi := (r.Float64()*0.6 + 0.2) * gomath.Pi
		p := math.Spherical(radius, theta, phi)
		p.Y += float32(jitter(r, 0.05))
		points = append(points, p)
	}
	return points
}

// BuildPathways creates one additive tube node per pathway.
func BuildPathways(r Rand, cfg PathwayConfig) []*model.Node {
	nodes := make([]*model.Node, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		curve := NewCatmullRom(PathwayPath(r, cfg.Radius, cfg.Segments))
		mesh := Tube(curve, cfg.Segments, cfg.TubeRadius, cfg.RadialSegments)

		mat := model.NewMaterial("pathway", model.ShadingBasic)
		mat.Color = PathwayColors[i%2]
		mat.Opacity = cfg.BaseOpacity
		mat.Transparent = true
		mat.Blending = model.BlendAdditive
		mat.DepthWrite = false

		nodes = append(nodes, model.NewMeshNode(fmt.Sprintf("pathway-%d", i), mesh, mat))
	}
	return nodes
}
