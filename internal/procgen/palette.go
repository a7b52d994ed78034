package procgen

import (
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Palette is an ordered list of evenly spaced gradient stops.
type Palette []colorful.Color

// PrimaryPalette colors a loaded brain model, bottom to top.
var PrimaryPalette = NewPalette(
	"#6e938e", "#acd2c5", "#946a50", "#acd2c5", "#4b4c2a", "#6e938e", "#4b4c2a",
)

// FallbackPalette colors the procedural brain, bottom to top.
var FallbackPalette = NewPalette(
	"#988078", "#a58b84", "#b39590", "#c2a199", "#d0aea5", "#ddbdb2", "#e8cbc0",
)

// NewPalette parses hex stops. It panics on malformed input, so it is meant
// for literals.
func NewPalette(hex ...string) Palette {
	p := make(Palette, len(hex))
	for i, h := range hex {
		p[i] = mustHex(h)
	}
	return p
}

// At samples the gradient at t in [0, 1], blending the two nearest stops.
func (p Palette) At(t float64) math.Vec3 {
	if len(p) == 0 {
		return math.Vec3{}
	}
	t = math.Clamp(t, 0, 1)
	scaled := t * float64(len(p)-1)
	lo := int(gomath.Floor(scaled))
	hi := min(lo+1, len(p)-1)
	return ColorVec(p[lo].BlendRgb(p[hi], scaled-float64(lo)))
}

// ApplyGradient writes vertical gradient vertex colors over the mesh's Y
// extent.
func ApplyGradient(m *model.Mesh, p Palette) {
	b := m.Bounds()
	span := float64(b.Max.Y - b.Min.Y)
	for i := range m.Vertices {
		t := 0.0
		if span > 0 {
			t = float64(m.Vertices[i].Position.Y-b.Min.Y) / span
		}
		m.Vertices[i].Color = p.At(t)
	}
}

// Hex converts a "#rrggbb" literal to an RGB vector in [0, 1].
func Hex(h string) math.Vec3 {
	return ColorVec(mustHex(h))
}

func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorVec converts a colorful color to a vector.
func ColorVec(c colorful.Color) math.Vec3 {
	return math.V3(c.R, c.G, c.B)
}
