package ui2d

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range baked into every atlas.
const (
	firstRune = ' '
	lastRune  = '~'
	atlasW    = 1024
	glyphPad  = 2
)

// Glyph locates one rasterized rune in an atlas. Offsets and sizes are in
// atlas pixels relative to the pen on the baseline.
type Glyph struct {
	U0, V0, U1, V1 float32
	OffX, OffY     float32
	W, H           float32
	Advance        float32
}

// Atlas is a font rasterized once into an alpha texture.
type Atlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	Ascent     float32
	LineHeight float32
}

// NewAtlas rasterizes the printable ASCII range of face.
func NewAtlas(face font.Face) *Atlas {
	m := face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	ascent := m.Ascent.Ceil()

	// Masks returned by face.Glyph are only valid until the next call, so
	// each glyph is copied into scratch immediately.
	scratch := image.NewAlpha(image.Rect(0, 0, atlasW, atlasW*2))
	type placed struct {
		r    rune
		dr   image.Rectangle
		adv  fixed.Int26_6
		x, y int
	}
	var glyphs []placed
	x, y, rowH := glyphPad, glyphPad, 0
	for r := rune(firstRune); r <= lastRune; r++ {
		dr, mask, mp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		w, h := dr.Dx(), dr.Dy()
		if x+w+glyphPad > atlasW {
			x = glyphPad
			y += rowH + glyphPad
			rowH = 0
		}
		if w > 0 && h > 0 && mask != nil {
			draw.Draw(scratch, image.Rect(x, y, x+w, y+h), mask, mp, draw.Src)
		}
		glyphs = append(glyphs, placed{r: r, dr: dr, adv: adv, x: x, y: y})
		x += w + glyphPad
		rowH = max(rowH, h)
	}
	height := min(nextPow2(y+rowH+glyphPad), scratch.Bounds().Dy())

	a := &Atlas{
		Image:      image.NewAlpha(image.Rect(0, 0, atlasW, height)),
		Glyphs:     make(map[rune]Glyph, len(glyphs)),
		Ascent:     float32(ascent),
		LineHeight: float32(lineH),
	}
	draw.Draw(a.Image, a.Image.Bounds(), scratch, image.Point{}, draw.Src)
	for _, g := range glyphs {
		w, h := g.dr.Dx(), g.dr.Dy()
		a.Glyphs[g.r] = Glyph{
			U0:      float32(g.x) / atlasW,
			V0:      float32(g.y) / float32(height),
			U1:      float32(g.x+w) / atlasW,
			V1:      float32(g.y+h) / float32(height),
			OffX:    float32(g.dr.Min.X),
			OffY:    float32(g.dr.Min.Y),
			W:       float32(w),
			H:       float32(h),
			Advance: float32(g.adv) / 64,
		}
	}
	return a
}

func nextPow2(v int) int {
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}

// Glyph returns the glyph for r, substituting '?' for runes outside the
// atlas.
func (a *Atlas) Glyph(r rune) Glyph {
	if g, ok := a.Glyphs[r]; ok {
		return g
	}
	return a.Glyphs['?']
}

// Measure returns the size of text drawn at the given pixel height.
func (a *Atlas) Measure(text string, px float32) (float32, float32) {
	return a.MeasureSpaced(text, px, 0)
}

// MeasureSpaced is Measure with extra advance after every glyph.
func (a *Atlas) MeasureSpaced(text string, px, spacing float32) (float32, float32) {
	s := a.scale(px)
	var w, lineW float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			w = max(w, lineW)
			lineW = 0
			lines++
			continue
		}
		lineW += a.Glyph(r).Advance*s + spacing
	}
	return max(w, lineW), float32(lines) * a.LineHeight * s
}

func (a *Atlas) scale(px float32) float32 {
	if a.LineHeight == 0 {
		return 1
	}
	return px / a.LineHeight
}

// SmallAtlas is the fixed 7x13 bitmap font used for status text.
func SmallAtlas() *Atlas {
	return NewAtlas(basicfont.Face7x13)
}

// DisplayAtlas rasterizes Go Regular at size pixels for large text that is
// scaled down when drawn.
func DisplayAtlas(size float64) (*Atlas, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse display font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("display font face: %w", err)
	}
	defer face.Close()
	return NewAtlas(face), nil
}
