package ui2d

import "testing"

func TestSmallAtlas(t *testing.T) {
	a := SmallAtlas()
	if a.LineHeight != 13 {
		t.Errorf("LineHeight = %v, want 13", a.LineHeight)
	}
	g, ok := a.Glyphs['A']
	if !ok {
		t.Fatal("atlas is missing 'A'")
	}
	if g.Advance != 7 {
		t.Errorf("advance = %v, want 7", g.Advance)
	}
	if g.U1 <= g.U0 || g.V1 <= g.V0 {
		t.Errorf("degenerate UVs %+v", g)
	}
	if g.OffY >= 0 {
		t.Errorf("glyph top should sit above the baseline, OffY = %v", g.OffY)
	}
}

func TestAtlasMeasure(t *testing.T) {
	a := SmallAtlas()
	tests := []struct {
		text  string
		px    float32
		wantW float32
		wantH float32
	}{
		{"", 13, 0, 13},
		{"AB", 13, 14, 13},
		{"AB", 26, 28, 26},
		{"ABC\nD", 13, 21, 26},
	}
	for _, tt := range tests {
		w, h := a.Measure(tt.text, tt.px)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Measure(%q, %v) = %v, %v; want %v, %v", tt.text, tt.px, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestAtlasFallbackGlyph(t *testing.T) {
	a := SmallAtlas()
	if a.Glyph('é') != a.Glyph('?') {
		t.Error("runes outside the atlas should render as '?'")
	}
}

func TestDisplayAtlas(t *testing.T) {
	a, err := DisplayAtlas(48)
	if err != nil {
		t.Fatalf("DisplayAtlas() error = %v", err)
	}
	if a.LineHeight < 48 {
		t.Errorf("LineHeight = %v, want at least the font size", a.LineHeight)
	}
	w0, _ := a.Measure("i", 48)
	w1, _ := a.Measure("W", 48)
	if w1 <= w0 {
		t.Error("display font should be proportional")
	}
	b := a.Image.Bounds()
	if b.Dx() != atlasW || b.Dy()&(b.Dy()-1) != 0 {
		t.Errorf("atlas bounds %v should be %d wide and a power of two high", b, atlasW)
	}
}
