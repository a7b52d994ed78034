package procgen

import (
	"fmt"
	"image"
	"image/color"
	gomath "math"
	"sync"

	"github.com/aquilax/go-perlin"
	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"github.com/Faultbox/neurosummit/internal/engine/model"
)

// Default texture resolutions.
var (
	TissueSize   = image.Pt(2048, 1024)
	NormalSize   = image.Pt(2048, 1024)
	RoughSize    = image.Pt(512, 512)
	BumpSize     = image.Pt(1024, 512)
	OverlaySize  = image.Pt(2048, 1024)
	StarSize     = image.Pt(64, 64)
	InteriorSize = image.Pt(1024, 512)
)

// Texture names used as cache keys.
const (
	TexTissue    = "tissue"
	TexNormal    = "normal"
	TexRoughness = "roughness"
	TexBump      = "bump"
	TexOverlay   = "neural-overlay"
	TexStar      = "star"
	TexInterior  = "interior"
)

// newCanvas returns a 2D canvas drawing into an in-memory RGBA image.
func newCanvas(size image.Point) (*canvas.Canvas, *softwarebackend.SoftwareBackend) {
	backend := softwarebackend.New(size.X, size.Y)
	return canvas.New(backend), backend
}

// RGBA builds a canvas fill or stroke color from 0-255 channels and an
// alpha in [0, 1]. Out-of-range values are clamped.
func RGBA(r, g, b int, a float64) color.NRGBA {
	return color.NRGBA{
		R: channel(r),
		G: channel(g),
		B: channel(b),
		A: uint8(gomath.Round(gomath.Max(0, gomath.Min(a, 1)) * 255)),
	}
}

func channel(v int) uint8 {
	return uint8(max(0, min(v, 255)))
}

func finish(name string, backend *softwarebackend.SoftwareBackend) *model.Texture {
	img := image.NewRGBA(backend.Image.Bounds())
	copy(img.Pix, backend.Image.Pix)
	return model.NewTexture(name, img)
}

// TissueTexture paints a gray-matter base: a radial gradient, soft tissue
// blobs, vessel strokes, fine grain, and rotated sulcus shadows.
func TissueTexture(r Rand, size image.Point) *model.Texture {
	cv, backend := newCanvas(size)
	w, h := float64(size.X), float64(size.Y)

	base := cv.CreateRadialGradient(w/2, h/2, 0, w/2, h/2, w/2)
	base.AddColorStop(0, "#b8a8a0")
	base.AddColorStop(0.5, "#9a8a82")
	base.AddColorStop(0.8, "#7d6f68")
	base.AddColorStop(1, "#6b5d56")
	cv.SetFillStyle(base)
	cv.FillRect(0, 0, w, h)

	for i := 0; i < 120; i++ {
		x, y := r.Float64()*w, r.Float64()*h
		radius := between(r, 25, 75)
		blob := cv.CreateRadialGradient(x, y, 0, x, y, radius)
		blob.AddColorStop(0, RGBA(150, 140, 130, between(r, 0.08, 0.23)))
		blob.AddColorStop(1, RGBA(110, 100, 95, 0))
		cv.SetFillStyle(blob)
		cv.BeginPath()
		cv.Arc(x, y, radius, 0, 2*gomath.Pi, false)
		cv.Fill()
	}

	cv.SetStrokeStyle(RGBA(130, 110, 100, 0.2))
	cv.SetLineWidth(1.5)
	for i := 0; i < 200; i++ {
		x, y := r.Float64()*w, r.Float64()*h
		length := between(r, 40, 120)
		angle := r.Float64() * 2 * gomath.Pi
		cos, sin := gomath.Cos(angle), gomath.Sin(angle)
		cv.BeginPath()
		cv.MoveTo(x, y)
		cv.QuadraticCurveTo(
			x+cos*length/2+jitter(r, 15), y+sin*length/2+jitter(r, 15),
			x+cos*length, y+sin*length,
		)
		cv.Stroke()
	}

	img := cv.GetImageData(0, 0, size.X, size.Y)
	addGrain(img, r, 4)
	cv.PutImageData(img, 0, 0)

	for i := 0; i < 250; i++ {
		x, y := r.Float64()*w, r.Float64()*h
		sw, sh := between(r, 8, 33), between(r, 35, 105)
		angle := r.Float64() * gomath.Pi
		cv.Save()
		cv.Translate(x, y)
		cv.Rotate(angle)
		cv.SetFillStyle(RGBA(70, 60, 55, between(r, 0.1, 0.35)))
		cv.FillRect(-sw/2, -sh/2, sw, sh)
		cv.Restore()
	}

	return finish(TexTissue, backend)
}

// addGrain offsets every pixel's RGB by up to ±amp. Half of the offset is
// white noise, half a low-frequency Perlin field, so the grain clumps.
func addGrain(img *image.RGBA, r Rand, amp float64) {
	noise := perlin.NewPerlin(2, 2, 3, int64(r.Intn(1<<30)))
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := amp * (0.5*jitter(r, 1) + 0.5*noise.Noise2D(float64(x)/64, float64(y)/64))
			i := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				img.Pix[i+c] = clampByte(float64(img.Pix[i+c]) + n)
			}
		}
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// NeuralOverlay draws faint branching veins and capillaries on white. The
// result multiplies with vertex colors, so white means "no change".
func NeuralOverlay(r Rand, size image.Point) *model.Texture {
	cv, backend := newCanvas(size)
	w, h := float64(size.X), float64(size.Y)

	cv.SetFillStyle("#ffffff")
	cv.FillRect(0, 0, w, h)

	for i := 0; i < 100; i++ {
		x, y := r.Float64()*w, r.Float64()*h
		dark := int(between(r, 60, 100))
		cv.SetStrokeStyle(RGBA(dark, dark+30, dark+10, between(r, 0.1, 0.25)))
		cv.SetLineWidth(between(r, 0.5, 1.7))

		cv.BeginPath()
		cv.MoveTo(x, y)
		segments := intBetween(r, 25, 20)
		for j := 0; j < segments; j++ {
			angle := r.Float64() * 2 * gomath.Pi
			length := between(r, 12, 47)
			nx, ny := x+gomath.Cos(angle)*length, y+gomath.Sin(angle)*length
			cpx, cpy := (x+nx)/2+jitter(r, 12.5), (y+ny)/2+jitter(r, 12.5)
			cv.QuadraticCurveTo(cpx, cpy, nx, ny)
			x, y = nx, ny

			if r.Float64() > 0.65 && j > 5 {
				ba := angle + jitter(r, gomath.Pi/4)
				bl := between(r, 8, 33)
				cv.MoveTo(x, y)
				cv.LineTo(x+gomath.Cos(ba)*bl, y+gomath.Sin(ba)*bl)
				cv.MoveTo(x, y)
			}
		}
		cv.Stroke()
	}

	cv.SetGlobalAlpha(0.08)
	for i := 0; i < 200; i++ {
		x, y := r.Float64()*w, r.Float64()*h
		radius := between(r, 0.3, 1.8)
		cv.SetFillStyle(RGBA(80, 120, 90, r.Float64()*0.2))
		cv.BeginPath()
		cv.Arc(x, y, radius, 0, 2*gomath.Pi, false)
		cv.Fill()
	}
	cv.SetGlobalAlpha(1)

	return finish(TexOverlay, backend)
}

// StarSprite draws a soft radial glow with a four-armed sparkle.
func StarSprite(size image.Point) *model.Texture {
	cv, backend := newCanvas(size)
	w, h := float64(size.X), float64(size.Y)
	cx, cy := w/2, h/2

	glow := cv.CreateRadialGradient(cx, cy, 0, cx, cy, w/2)
	glow.AddColorStop(0, RGBA(255, 255, 255, 1))
	glow.AddColorStop(0.1, RGBA(255, 255, 255, 0.9))
	glow.AddColorStop(0.3, RGBA(255, 255, 255, 0.5))
	glow.AddColorStop(0.5, RGBA(255, 255, 255, 0.1))
	glow.AddColorStop(1, RGBA(255, 255, 255, 0))
	cv.SetFillStyle(glow)
	cv.FillRect(0, 0, w, h)

	bar := w / 16
	cv.SetFillStyle(RGBA(255, 255, 255, 0.8))
	cv.FillRect(0, cy-bar/2, w, bar)
	cv.FillRect(cx-bar/2, 0, bar, h)

	cv.Save()
	cv.Translate(cx, cy)
	cv.Rotate(gomath.Pi / 4)
	cv.FillRect(-w/2, -bar/2, w, bar)
	cv.FillRect(-bar/2, -h/2, bar, h)
	cv.Restore()

	tex := finish(TexStar, backend)
	tex.Wrap = model.WrapClamp
	return tex
}

// InteriorTexture draws the neural web lining the interior sphere.
func InteriorTexture(r Rand, size image.Point) *model.Texture {
	cv, backend := newCanvas(size)
	w, h := float64(size.X), float64(size.Y)

	cv.SetFillStyle("#0a0a0a")
	cv.FillRect(0, 0, w, h)

	cv.SetStrokeStyle("#6fa99a")
	cv.SetLineWidth(1)
	for i := 0; i < 200; i++ {
		x1, y1 := r.Float64()*w, r.Float64()*h
		x2, y2 := x1+jitter(r, 100), y1+jitter(r, 100)
		cv.SetGlobalAlpha(between(r, 0.1, 0.6))
		cv.BeginPath()
		cv.MoveTo(x1, y1)
		cv.LineTo(x2, y2)
		cv.Stroke()
	}

	cv.SetFillStyle("#6fa99a")
	for i := 0; i < 100; i++ {
		x, y := r.Float64()*w, r.Float64()*h
		radius := between(r, 1, 4)
		cv.SetGlobalAlpha(between(r, 0.2, 1))
		cv.BeginPath()
		cv.Arc(x, y, radius, 0, 2*gomath.Pi, false)
		cv.Fill()
	}
	cv.SetGlobalAlpha(1)

	tex := finish(TexInterior, backend)
	tex.RepeatU, tex.RepeatV = 4, 2
	return tex
}

// TextureCache generates each named texture once and hands out the same
// pointer to every caller.
type TextureCache struct {
	mu       sync.Mutex
	rng      Rand
	textures map[string]*model.Texture
}

// NewTextureCache creates a cache drawing randomness from r.
func NewTextureCache(r Rand) *TextureCache {
	return &TextureCache{
		rng:      r,
		textures: make(map[string]*model.Texture),
	}
}

// Get returns the texture called name, generating it on first use.
func (c *TextureCache) Get(name string) (*model.Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.textures[name]; ok {
		return t, nil
	}

	var t *model.Texture
	switch name {
	case TexTissue:
		t = TissueTexture(c.rng, TissueSize)
	case TexNormal:
		t = NormalMap(NormalSize)
	case TexRoughness:
		t = RoughnessMap(RoughSize)
	case TexBump:
		t = BumpMap(BumpSize)
	case TexOverlay:
		t = NeuralOverlay(c.rng, OverlaySize)
	case TexStar:
		t = StarSprite(StarSize)
	case TexInterior:
		t = InteriorTexture(c.rng, InteriorSize)
	default:
		return nil, fmt.Errorf("unknown texture %q", name)
	}
	c.textures[name] = t
	return t, nil
}

// MustGet is Get for the built-in names, which cannot fail.
func (c *TextureCache) MustGet(name string) *model.Texture {
	t, err := c.Get(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Names lists every texture the cache can generate.
func Names() []string {
	return []string{TexTissue, TexNormal, TexRoughness, TexBump, TexOverlay, TexStar, TexInterior}
}
