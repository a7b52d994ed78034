package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/neurosummit/internal/assets"
	"github.com/Faultbox/neurosummit/internal/config"
	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/internal/hud"
	"github.com/Faultbox/neurosummit/internal/logger"
	"github.com/Faultbox/neurosummit/internal/neuralnet"
	"github.com/Faultbox/neurosummit/internal/procgen"
)

// Scenes is everything generated once at startup.
type Scenes struct {
	Hero     *procgen.BrainRig
	Interior *procgen.Interior // nil when disabled
	Network  *neuralnet.Network // nil when disabled
	Textures *procgen.TextureCache
}

// HeroConfig maps the scene settings onto the builder layout.
func HeroConfig(sc config.SceneConfig) procgen.HeroConfig {
	hc := procgen.DefaultHeroConfig()
	hc.Veins.Count = sc.Veins
	hc.Pathways.Count = sc.Pathways
	hc.Stars.Count = sc.Stars
	hc.SurfaceDetail = sc.SurfaceDetail
	return hc
}

// BuildScenes generates the hero, interior and neural network. A brain
// model that cannot be loaded is logged and replaced by the procedural
// brain.
func BuildScenes(cfg *config.Config, am *assets.Manager, rng procgen.Rand) *Scenes {
	defer logger.Timed("build scenes")()

	textures := procgen.NewTextureCache(rng)
	s := &Scenes{Textures: textures}

	var loaded []*model.Mesh
	if path := cfg.Assets.BrainModel; path != "" && am != nil {
		meshes, err := am.LoadModel(path)
		if err != nil {
			logger.Warn("brain model unavailable, using procedural brain",
				zap.String("path", path), zap.Error(err))
		} else {
			loaded = meshes
			logger.Info("brain model loaded",
				zap.String("path", path), zap.Int("meshes", len(meshes)))
		}
	}

	s.Hero = procgen.BuildHero(rng, textures, loaded, HeroConfig(cfg.Scene))
	logger.Debug("hero scene built",
		zap.Bool("procedural", s.Hero.Procedural),
		zap.Int("veins", len(s.Hero.Veins)),
		zap.Int("pathways", len(s.Hero.Pathways)),
		zap.Int("nodes", s.Hero.Scene.Count()),
	)

	if cfg.Scene.Interior {
		s.Interior = procgen.BuildInterior(rng, procgen.DefaultInteriorConfig(), textures.MustGet(procgen.TexInterior))
	}
	if cfg.Scene.NeuralCanvas {
		s.Network = neuralnet.New(rng, neuralnet.DefaultNeurons, hud.NeuralWidth, hud.NeuralHeight)
	}
	return s
}
