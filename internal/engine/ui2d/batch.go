package ui2d

// Vertex format: x, y, u, v, r, g, b, a.
const floatsPerVertex = 8

// drawMode selects how the fragment shader treats the bound texture.
type drawMode int32

const (
	modeSolid drawMode = iota
	modeGlyph          // alpha from the red channel of a font atlas
	modeImage          // full RGBA
)

// command is a run of consecutive vertices sharing mode and texture.
type command struct {
	mode    drawMode
	texture uint32
	first   int32
	count   int32
}

// batch accumulates quads in submission order and merges runs that share
// a mode and texture.
type batch struct {
	vertices []float32
	commands []command
}

func (b *batch) reset() {
	b.vertices = b.vertices[:0]
	b.commands = b.commands[:0]
}

func (b *batch) quad(mode drawMode, texture uint32, x, y, w, h, u0, v0, u1, v1 float32, c Color) {
	first := int32(len(b.vertices) / floatsPerVertex)
	b.vertices = append(b.vertices,
		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, u1, v1, c.R, c.G, c.B, c.A,
		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, u0, v1, c.R, c.G, c.B, c.A,
	)

	if n := len(b.commands); n > 0 {
		last := &b.commands[n-1]
		if last.mode == mode && last.texture == texture {
			last.count += 6
			return
		}
	}
	b.commands = append(b.commands, command{mode: mode, texture: texture, first: first, count: 6})
}

// text lays out a string with the pen starting at the top-left corner.
// spacing is extra advance after every glyph, in screen pixels.
func (b *batch) text(a *Atlas, texture uint32, x, y float32, s string, px, spacing float32, c Color) {
	scale := a.scale(px)
	penX := x
	baseline := y + a.Ascent*scale
	for _, r := range s {
		if r == '\n' {
			penX = x
			baseline += a.LineHeight * scale
			continue
		}
		g := a.Glyph(r)
		if g.W > 0 && g.H > 0 {
			b.quad(modeGlyph, texture,
				penX+g.OffX*scale, baseline+g.OffY*scale, g.W*scale, g.H*scale,
				g.U0, g.V0, g.U1, g.V1, c)
		}
		penX += g.Advance*scale + spacing
	}
}
