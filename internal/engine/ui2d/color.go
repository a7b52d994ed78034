package ui2d

import "github.com/lucasb-eyer/go-colorful"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors for the page theme.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	ColorAccent     = Hex("#6fa99a")
	ColorAccentDim  = Hex("#708d7e")
	ColorText       = Color{0.92, 0.94, 0.93, 1}
	ColorTextDim    = Color{0.55, 0.62, 0.6, 1}
	ColorPanelBg    = Color{0.04, 0.05, 0.05, 0.75}
	ColorOverlayBg  = Color{0.02, 0.02, 0.02, 1}
	ColorTrackBg    = Color{0.12, 0.14, 0.14, 1}
	ColorLiveBanner = Hex("#d4a599")
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// Hex parses a #rrggbb color with full alpha. Invalid input yields white.
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorWhite
	}
	return Color{float32(c.R), float32(c.G), float32(c.B), 1}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Fade scales the alpha.
func (c Color) Fade(f float32) Color {
	return Color{c.R, c.G, c.B, c.A * f}
}

// Lerp blends towards o by t in [0, 1].
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}
