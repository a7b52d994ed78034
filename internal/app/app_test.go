package app

import (
	"testing"
	"time"

	"github.com/Faultbox/neurosummit/internal/assets"
	"github.com/Faultbox/neurosummit/internal/config"
	"github.com/Faultbox/neurosummit/internal/landing"
	"github.com/Faultbox/neurosummit/internal/procgen"
)

func TestHeroConfig(t *testing.T) {
	sc := config.SceneConfig{Veins: 3, Pathways: 2, Stars: 40, SurfaceDetail: true}
	hc := HeroConfig(sc)
	if hc.Veins.Count != 3 || hc.Pathways.Count != 2 || hc.Stars.Count != 40 {
		t.Errorf("counts = %d/%d/%d", hc.Veins.Count, hc.Pathways.Count, hc.Stars.Count)
	}
	if !hc.SurfaceDetail {
		t.Error("SurfaceDetail not carried over")
	}
	def := procgen.DefaultHeroConfig()
	if hc.Veins.TubeRadius != def.Veins.TubeRadius {
		t.Error("non-count settings should keep their defaults")
	}
}

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Scene.Seed = 7
	cfg.Scene.Veins = 2
	cfg.Scene.Pathways = 2
	cfg.Scene.Stars = 16
	return cfg
}

func TestBuildScenesMissingModel(t *testing.T) {
	cfg := smallConfig()
	cfg.Assets.BrainModel = "models/brain.glb"

	am := assets.NewManager()
	if err := am.AddDir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	s := BuildScenes(cfg, am, procgen.NewRand(cfg.Scene.Seed))
	if !s.Hero.Procedural {
		t.Error("missing model should fall back to the procedural brain")
	}
	if len(s.Hero.Veins) != 2 || len(s.Hero.Pathways) != 2 {
		t.Errorf("veins = %d, pathways = %d", len(s.Hero.Veins), len(s.Hero.Pathways))
	}
}

func TestBuildScenesToggles(t *testing.T) {
	tests := []struct {
		name     string
		interior bool
		neural   bool
	}{
		{"both", true, true},
		{"interior only", true, false},
		{"neither", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallConfig()
			cfg.Assets.BrainModel = ""
			cfg.Scene.Interior = tt.interior
			cfg.Scene.NeuralCanvas = tt.neural

			s := BuildScenes(cfg, nil, procgen.NewRand(1))
			if (s.Interior != nil) != tt.interior {
				t.Errorf("interior built = %v", s.Interior != nil)
			}
			if (s.Network != nil) != tt.neural {
				t.Errorf("network built = %v", s.Network != nil)
			}
			if s.Textures == nil {
				t.Error("texture cache missing")
			}
		})
	}
}

func TestPointerNDC(t *testing.T) {
	tests := []struct {
		x, y, w, h int
		wantX      float32
		wantY      float32
	}{
		{0, 0, 800, 600, -1, 1},
		{800, 600, 800, 600, 1, -1},
		{400, 300, 800, 600, 0, 0},
		{200, 450, 800, 600, -0.5, -0.5},
		{10, 10, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		got := PointerNDC(tt.x, tt.y, tt.w, tt.h)
		if got.X != tt.wantX || got.Y != tt.wantY {
			t.Errorf("PointerNDC(%d, %d, %d, %d) = %+v, want (%v, %v)", tt.x, tt.y, tt.w, tt.h, got, tt.wantX, tt.wantY)
		}
	}
}

func TestMovePointerWaitsForLoad(t *testing.T) {
	now := time.Now()
	a := &App{
		state: landing.NewState(800, 600),
		loop:  landing.NewLoop(nil, nil, nil, nil, nil, now),
	}

	a.movePointer(now, 800, 0)
	if a.state.Pointer.X != 0 || a.state.Pointer.Y != 0 {
		t.Errorf("pointer moved before load: %+v", a.state.Pointer)
	}

	a.state.Loaded = true
	a.movePointer(now, 800, 0)
	if a.state.Pointer.X != 1 || a.state.Pointer.Y != 1 {
		t.Errorf("pointer = %+v, want (1, 1)", a.state.Pointer)
	}
}
