package procgen

import (
	"bytes"
	"image"
	"image/color"
	gomath "math"
	"testing"
)

// smallTextures shrinks the cached texture sizes for the duration of a test.
func smallTextures(t *testing.T) {
	t.Helper()
	saved := []image.Point{TissueSize, NormalSize, RoughSize, BumpSize, OverlaySize, InteriorSize}
	small := image.Pt(64, 32)
	TissueSize, NormalSize, RoughSize, BumpSize, OverlaySize, InteriorSize = small, small, small, small, small, small
	t.Cleanup(func() {
		TissueSize, NormalSize, RoughSize, BumpSize, OverlaySize, InteriorSize =
			saved[0], saved[1], saved[2], saved[3], saved[4], saved[5]
	})
}

func TestTangentNormalUnitLength(t *testing.T) {
	for y := 0.0; y < 256; y += 3 {
		for x := 0.0; x < 512; x += 7 {
			nx, ny, nz := TangentNormal(x, y)
			l := gomath.Sqrt(nx*nx + ny*ny + nz*nz)
			if gomath.Abs(l-1) > 1e-9 {
				t.Fatalf("|n(%v, %v)| = %v", x, y, l)
			}
			if nz < 0 {
				t.Fatalf("n(%v, %v).z = %v, want >= 0", x, y, nz)
			}
		}
	}
}

func TestTextureSizes(t *testing.T) {
	r := NewRand(1)
	tests := []struct {
		name string
		gen  func() (int, int)
		w, h int
	}{
		{"normal", func() (int, int) { return NormalMap(image.Pt(128, 64)).Size() }, 128, 64},
		{"roughness", func() (int, int) { return RoughnessMap(RoughSize).Size() }, 512, 512},
		{"bump", func() (int, int) { return BumpMap(image.Pt(96, 48)).Size() }, 96, 48},
		{"tissue", func() (int, int) { return TissueTexture(r, image.Pt(64, 32)).Size() }, 64, 32},
		{"overlay", func() (int, int) { return NeuralOverlay(r, image.Pt(64, 32)).Size() }, 64, 32},
		{"star", func() (int, int) { return StarSprite(StarSize).Size() }, 64, 64},
		{"interior", func() (int, int) { return InteriorTexture(r, image.Pt(64, 32)).Size() }, 64, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.gen()
			if w != tt.w || h != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestRoughnessRange(t *testing.T) {
	img := RoughnessMap(image.Pt(128, 128)).Image
	for i := 0; i < len(img.Pix); i += 4 {
		v := img.Pix[i]
		if v < uint8(0.4*255)-1 || v > uint8(0.8*255)+1 {
			t.Fatalf("roughness byte %d out of [0.4, 0.8]", v)
		}
	}
}

func TestStarSpriteFalloff(t *testing.T) {
	img := StarSprite(StarSize).Image
	if c := img.RGBAAt(32, 32); c.R < 200 || c.G < 200 || c.B < 200 {
		t.Errorf("center = %v, want a white glow", c)
	}
	center := img.RGBAAt(32, 32).A
	corner := img.RGBAAt(0, 0).A
	if center < 200 {
		t.Errorf("center alpha = %d, want bright", center)
	}
	if corner >= center {
		t.Errorf("corner alpha %d should be below center alpha %d", corner, center)
	}
	// The horizontal sparkle arm reaches the edge.
	if arm, off := img.RGBAAt(1, 32).A, img.RGBAAt(1, 20).A; arm <= off {
		t.Errorf("arm alpha %d should exceed off-arm alpha %d", arm, off)
	}
}

func TestTissueTextureSeeded(t *testing.T) {
	a := TissueTexture(NewRand(42), image.Pt(64, 32)).Image
	b := TissueTexture(NewRand(42), image.Pt(64, 32)).Image
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed produced different tissue textures")
	}
	for i := 3; i < len(a.Pix); i += 4 {
		if a.Pix[i] != 255 {
			t.Fatalf("tissue pixel %d alpha = %d, want opaque", i/4, a.Pix[i])
		}
	}
}

func TestNeuralOverlayMostlyWhite(t *testing.T) {
	img := NeuralOverlay(NewRand(7), image.Pt(1024, 512)).Image
	var sum float64
	for i := 0; i < len(img.Pix); i += 4 {
		sum += float64(img.Pix[i+1])
	}
	if mean := sum / float64(len(img.Pix)/4); mean < 200 {
		t.Errorf("mean green = %.1f, want a near-white overlay", mean)
	}
}

func TestTextureCacheSharesInstances(t *testing.T) {
	smallTextures(t)
	c := NewTextureCache(NewRand(3))

	a, err := c.Get(TexOverlay)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	b := c.MustGet(TexOverlay)
	if a != b {
		t.Error("cache returned distinct overlay textures")
	}
	if _, err := c.Get("plasma"); err == nil {
		t.Error("Get(unknown) should fail")
	}
	for _, name := range Names() {
		if _, err := c.Get(name); err != nil {
			t.Errorf("Get(%q) error = %v", name, err)
		}
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		r, g, b int
		a       float64
		want    color.NRGBA
	}{
		{86, 116, 96, 0.166, color.NRGBA{86, 116, 96, 42}},
		{255, 255, 255, 1, color.NRGBA{255, 255, 255, 255}},
		{0, 0, 0, 0, color.NRGBA{0, 0, 0, 0}},
		{300, -5, 128, 1.5, color.NRGBA{255, 0, 128, 255}},
		{10, 20, 30, -1, color.NRGBA{10, 20, 30, 0}},
	}
	for _, tt := range tests {
		if got := RGBA(tt.r, tt.g, tt.b, tt.a); got != tt.want {
			t.Errorf("RGBA(%d, %d, %d, %v) = %v, want %v", tt.r, tt.g, tt.b, tt.a, got, tt.want)
		}
	}
}

func TestNeuralOverlayDrawsVeins(t *testing.T) {
	img := NeuralOverlay(NewRand(1), image.Pt(256, 128)).Image
	darker := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 255 {
			t.Fatalf("overlay pixel %d alpha = %d, want opaque", i/4, img.Pix[i+3])
		}
		if img.Pix[i] < 250 {
			darker++
		}
	}
	if darker == 0 {
		t.Error("overlay has no vein strokes")
	}
}
