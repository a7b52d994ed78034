package procgen

import (
	gomath "math"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// MaxPlacementAttempts caps rejection sampling per star before falling back
// to a sampler restricted to the allowed shell.
const MaxPlacementAttempts = 64

// StarfieldConfig controls the star cloud around the brain.
type StarfieldConfig struct {
	Count     int
	MinRadius float64
	MaxRadius float64
	// Exclusion is the radius around the origin no star may enter.
	Exclusion float64
	PointSize float32
	Opacity   float32
}

// DefaultStarfieldConfig returns the standard starfield.
func DefaultStarfieldConfig() StarfieldConfig {
	return StarfieldConfig{
		Count:     800,
		MinRadius: 3.5,
		MaxRadius: 11.5,
		Exclusion: 3,
		PointSize: 0.08,
		Opacity:   0.9,
	}
}

// StarPalette holds the four star tints.
var StarPalette = []math.Vec3{
	Hex("#ffffff"),
	Hex("#f0f8ff"),
	Hex("#fffacd"),
	Hex("#e6f2ff"),
}

// PlaceStar draws a random position with distance from the origin of at
// least cfg.Exclusion. It always terminates: after MaxPlacementAttempts
// rejected candidates it samples the radius directly from the allowed shell.
func PlaceStar(r Rand, cfg StarfieldConfig) math.Vec3 {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		theta := r.Float64() * 2 * gomath.Pi
		phi := r.Float64() * gomath.Pi
		radius := between(r, cfg.MinRadius, cfg.MaxRadius)
		if radius >= cfg.Exclusion {
			return math.Spherical(radius, theta, phi)
		}
	}

	lo := gomath.Max(cfg.MinRadius, cfg.Exclusion)
	hi := gomath.Max(cfg.MaxRadius, lo)
	theta := r.Float64() * 2 * gomath.Pi
	phi := r.Float64() * gomath.Pi
	return math.Spherical(between(r, lo, hi), theta, phi)
}

// BuildStarfield creates the additive star cloud drawn with sprite.
func BuildStarfield(r Rand, cfg StarfieldConfig, sprite *model.Texture) *model.Node {
	ps := model.NewParticleSystem(cfg.Count)
	ps.Palette = StarPalette
	for i := 0; i < cfg.Count; i++ {
		ps.Positions[i] = PlaceStar(r, cfg)
		ps.Colors[i] = StarPalette[r.Intn(len(StarPalette))]
		ps.Sizes[i] = float32(between(r, 0.5, 3.5))
	}

	mat := model.NewMaterial("stars", model.ShadingPoints)
	mat.PointSize = cfg.PointSize
	mat.SizeAttenuated = true
	mat.VertexColors = true
	mat.Transparent = true
	mat.Opacity = cfg.Opacity
	mat.Blending = model.BlendAdditive
	mat.DepthWrite = false
	mat.Map = sprite

	return model.NewPointsNode("stars", ps, mat)
}
