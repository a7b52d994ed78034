package procgen

import (
	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// InteriorConfig controls the 360° scene seen from inside the brain.
type InteriorConfig struct {
	SphereRadius   float64
	SphereSegments int
	SphereOpacity  float32
	Floaters       int
	FloaterSpread  float64
	FloaterSize    float32
	FloaterOpacity float32
}

// DefaultInteriorConfig returns the standard interior scene.
func DefaultInteriorConfig() InteriorConfig {
	return InteriorConfig{
		SphereRadius:   50,
		SphereSegments: 64,
		SphereOpacity:  0.7,
		Floaters:       1000,
		FloaterSpread:  100,
		FloaterSize:    0.5,
		FloaterOpacity: 0.6,
	}
}

// Interior is the background scene graph with direct handles to its parts.
type Interior struct {
	Root     *model.Node
	Sphere   *model.Node
	Floaters *model.Node
}

// BuildInterior lines a large sphere with the neural web texture, viewed
// from inside, and fills it with drifting blue-ish particles.
func BuildInterior(r Rand, cfg InteriorConfig, web *model.Texture) *Interior {
	sphereMat := model.NewMaterial("interior", model.ShadingBasic)
	sphereMat.Map = web
	sphereMat.Side = model.SideBack
	sphereMat.Transparent = true
	sphereMat.Opacity = cfg.SphereOpacity
	sphere := model.NewMeshNode("interior-sphere",
		UVSphere(cfg.SphereRadius, cfg.SphereSegments, cfg.SphereSegments), sphereMat)

	ps := model.NewParticleSystem(cfg.Floaters)
	for i := 0; i < cfg.Floaters; i++ {
		ps.Positions[i] = math.V3(
			jitter(r, cfg.FloaterSpread/2),
			jitter(r, cfg.FloaterSpread/2),
			jitter(r, cfg.FloaterSpread/2),
		)
		ps.Colors[i] = math.V3(r.Float64(), r.Float64(), 1)
		ps.Sizes[i] = 1
	}
	floatMat := model.NewMaterial("floaters", model.ShadingPoints)
	floatMat.PointSize = cfg.FloaterSize
	floatMat.SizeAttenuated = true
	floatMat.VertexColors = true
	floatMat.Transparent = true
	floatMat.Opacity = cfg.FloaterOpacity
	floaters := model.NewPointsNode("interior-floaters", ps, floatMat)

	root := model.NewNode("interior").Add(sphere, floaters)
	return &Interior{Root: root, Sphere: sphere, Floaters: floaters}
}
