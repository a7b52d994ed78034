package debug

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	img.Set(1, 2, color.RGBA{R: 200, G: 10, B: 30, A: 255})
	return img
}

func fixedClock() time.Time {
	return time.Date(2026, 1, 9, 9, 0, 0, 0, time.UTC)
}

func TestScreenshotsFilename(t *testing.T) {
	s := NewScreenshots("shots", "neurosummit", "")
	s.now = fixedClock
	want := filepath.Join("shots", "neurosummit_2026-01-09_09-00-00.000.png")
	if got := s.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestScreenshotsSave(t *testing.T) {
	tests := []struct {
		format string
		decode func(*os.File) (image.Image, error)
	}{
		{"png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{"bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested")
			s := NewScreenshots(dir, "shot", tt.format)
			s.now = fixedClock

			path, err := s.Save(testImage())
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if !strings.HasSuffix(path, "."+tt.format) {
				t.Errorf("path %q has wrong extension", path)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, g, b, _ := img.At(1, 2).RGBA()
			if r>>8 != 200 || g>>8 != 10 || b>>8 != 30 {
				t.Errorf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestScreenshotsRejectsUnknownFormat(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "shot", "tiff")
	if _, err := s.Save(testImage()); err == nil {
		t.Error("Save() should fail for an unknown format")
	}
	if _, err := NewScreenshots(t.TempDir(), "shot", "png").Save(nil); err == nil {
		t.Error("Save(nil) should fail")
	}
}

func TestScreenshotsSaveAs(t *testing.T) {
	dir := t.TempDir()
	path, err := NewScreenshots(dir, "ignored", "").SaveAs("tissue", testImage())
	if err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	if want := filepath.Join(dir, "tissue.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}
