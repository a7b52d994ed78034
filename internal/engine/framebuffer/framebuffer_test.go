package framebuffer

import "testing"

func TestFlipRows(t *testing.T) {
	// Two rows of one pixel: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img := FlipRows(pixels, 1, 2)

	if got := img.RGBAAt(0, 0); got.B != 255 || got.R != 0 {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got.R != 255 || got.B != 0 {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipRowsShortBuffer(t *testing.T) {
	img := FlipRows([]byte{1, 2, 3}, 2, 2)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("short buffer should leave the image blank")
		}
	}
}
