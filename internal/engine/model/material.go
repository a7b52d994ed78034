package model

import (
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Shading selects the shader program a material is drawn with.
type Shading int

const (
	// ShadingStandard is lit physically-inspired shading with vertex colors.
	ShadingStandard Shading = iota
	// ShadingVein is the unlit gradient-and-glow tube shader.
	ShadingVein
	// ShadingBasic is an unlit flat color.
	ShadingBasic
	// ShadingPoints draws a particle system as sprites.
	ShadingPoints
)

// Blending selects the framebuffer blend equation.
type Blending int

const (
	BlendNormal Blending = iota
	BlendAdditive
)

// Side selects which faces are rasterized.
type Side int

const (
	SideFront Side = iota
	SideBack
	SideDouble
)

// Material is a set of named shading parameters owned by one mesh.
// Templates are cloned before per-instance changes.
type Material struct {
	Name    string
	Shading Shading

	Color             math.Vec3
	Roughness         float32
	Metalness         float32
	Emissive          math.Vec3
	EmissiveIntensity float32
	Opacity           float32
	Transparent       bool
	Blending          Blending
	Side              Side
	VertexColors      bool
	DepthWrite        bool

	Map          *Texture
	NormalMap    *Texture
	BumpMap      *Texture
	RoughnessMap *Texture
	// DetailMap is blended into the base color at low strength.
	DetailMap *Texture

	// PointSize is the world-space sprite size for ShadingPoints.
	PointSize      float32
	SizeAttenuated bool

	// Gradient endpoints and animated phase for ShadingVein.
	GradientStart math.Vec3
	GradientEnd   math.Vec3
	Time          float32
}

// NewMaterial returns a material with opaque defaults.
func NewMaterial(name string, shading Shading) *Material {
	return &Material{
		Name:       name,
		Shading:    shading,
		Color:      math.Vec3{X: 1, Y: 1, Z: 1},
		Roughness:  1,
		Opacity:    1,
		DepthWrite: true,
	}
}

// Clone returns an independent copy. Texture references are shared.
func (m *Material) Clone() *Material {
	c := *m
	return &c
}
