package procgen

import (
	"fmt"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Brain material opacity for each geometry source.
const (
	LoadedOpacity     = 0.9
	ProceduralOpacity = 0.3
)

// HeroConfig groups the builder settings for the hero scene.
type HeroConfig struct {
	Veins    VeinConfig
	Pathways PathwayConfig
	Stars    StarfieldConfig
	// SurfaceDetail adds the tissue, normal, bump and roughness maps to the
	// brain material.
	SurfaceDetail bool
}

// DefaultHeroConfig returns the standard hero scene layout.
func DefaultHeroConfig() HeroConfig {
	return HeroConfig{
		Veins:    DefaultVeinConfig(),
		Pathways: DefaultPathwayConfig(),
		Stars:    DefaultStarfieldConfig(),
	}
}

// BrainRig is the hero scene with direct handles to everything the
// animation loop touches.
type BrainRig struct {
	// Scene is the root of the hero scene graph.
	Scene *model.Node
	// Brain carries the brain meshes, veins and pathways; its transform is
	// animated as a unit.
	Brain    *model.Node
	Meshes   []*model.Node
	Veins    []*model.Node
	Pathways []*model.Node
	Stars    *model.Node
	// Procedural is true when the brain fell back to generated geometry.
	Procedural bool
}

// BrainMaterial returns the brain surface template for a loaded or a
// procedural brain.
func BrainMaterial(procedural bool, overlay *model.Texture) *model.Material {
	m := model.NewMaterial("brain", model.ShadingStandard)
	m.VertexColors = true
	m.Roughness = 0.75
	m.Metalness = 0.02
	m.Emissive = Hex("#d4a599")
	m.EmissiveIntensity = 0.15
	m.Transparent = true
	m.Opacity = LoadedOpacity
	if procedural {
		m.Opacity = ProceduralOpacity
	}
	m.Map = overlay
	return m
}

// BuildHero assembles the hero scene. When loaded is empty the brain is
// generated procedurally and colored with FallbackPalette; otherwise the
// loaded meshes are fitted to the brain radius and colored with
// PrimaryPalette.
func BuildHero(r Rand, textures *TextureCache, loaded []*model.Mesh, cfg HeroConfig) *BrainRig {
	rig := &BrainRig{Procedural: len(loaded) == 0}

	meshes := loaded
	palette := PrimaryPalette
	if rig.Procedural {
		meshes = []*model.Mesh{BrainGeometry()}
		palette = FallbackPalette
	} else {
		FitToRadius(meshes, BrainRadius)
	}

	tmpl := BrainMaterial(rig.Procedural, textures.MustGet(TexOverlay))
	if cfg.SurfaceDetail {
		tmpl.NormalMap = textures.MustGet(TexNormal)
		tmpl.BumpMap = textures.MustGet(TexBump)
		tmpl.RoughnessMap = textures.MustGet(TexRoughness)
		tmpl.DetailMap = textures.MustGet(TexTissue)
	}

	rig.Brain = model.NewNode("brain")
	for i, m := range meshes {
		ApplyGradient(m, palette)
		node := model.NewMeshNode(fmt.Sprintf("brain-mesh-%d", i), m, tmpl.Clone())
		rig.Meshes = append(rig.Meshes, node)
		rig.Brain.Add(node)
	}

	rig.Veins = BuildVeins(r, cfg.Veins)
	rig.Brain.Add(model.NewNode("veins").Add(rig.Veins...))

	rig.Pathways = BuildPathways(r, cfg.Pathways)
	rig.Brain.Add(model.NewNode("pathways").Add(rig.Pathways...))

	rig.Stars = BuildStarfield(r, cfg.Stars, textures.MustGet(TexStar))

	rig.Scene = model.NewNode("hero").Add(rig.Brain, rig.Stars)
	return rig
}

// FitToRadius centers the meshes as a group and scales them so their
// largest half-extent equals radius.
func FitToRadius(meshes []*model.Mesh, radius float64) {
	if len(meshes) == 0 {
		return
	}
	b := meshes[0].Bounds()
	for _, m := range meshes[1:] {
		mb := m.Bounds()
		b.Min = b.Min.Min(mb.Min)
		b.Max = b.Max.Max(mb.Max)
	}
	size := b.Size()
	half := max(size.X, size.Y, size.Z) / 2
	if half <= 0 {
		return
	}
	s := float32(radius) / half
	xf := math.Scale(math.Vec3{X: s, Y: s, Z: s}).Mul(math.Translate(b.Center().Scale(-1)))
	for _, m := range meshes {
		m.Transform(xf)
	}
}
