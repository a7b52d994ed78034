package procgen

import (
	"image"
	gomath "math"

	"github.com/Faultbox/neurosummit/internal/engine/model"
)

// fill evaluates fn for every pixel of a new image.
func fill(size image.Point, fn func(x, y float64) (r, g, b uint8)) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			i := img.PixOffset(x, y)
			r, g, b := fn(float64(x), float64(y))
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, 255
		}
	}
	return img
}

func gray(v float64) (uint8, uint8, uint8) {
	g := clampByte(gomath.Floor(v * 255))
	return g, g, g
}

// FoldField is the combined fold height used by the normal map at pixel
// (x, y).
func FoldField(x, y float64) float64 {
	sin, cos := gomath.Sin, gomath.Cos
	fold1 := sin(x*0.04+sin(y*0.03)*4) * cos(y*0.035+cos(x*0.04)*3)
	fold2 := sin(x*0.08+sin(y*0.07)*2.5) * cos(y*0.075+cos(x*0.07)*2) * 0.7
	fold3 := sin(x*0.15+sin(y*0.13)*1.5) * cos(y*0.14+cos(x*0.13)*1.2) * 0.4
	detail1 := sin(x*0.25+y*0.22) * cos(y*0.24) * 0.2
	detail2 := sin(x*0.35+y*0.32) * cos(x*0.33) * 0.12
	sulci := sin(x*0.06) * sin(y*0.055) * -0.3
	return (fold1 + fold2 + fold3 + detail1 + detail2 + sulci) * 0.85
}

// TangentNormal returns the unit tangent-space normal at pixel (x, y). The
// in-plane part is shortened to at most unit length and z is the positive
// root of what remains.
func TangentNormal(x, y float64) (nx, ny, nz float64) {
	f := FoldField(x, y)
	nx = gomath.Sin(x*0.05+f*5) * 0.8
	ny = gomath.Sin(y*0.05+f*5) * 0.8
	if l2 := nx*nx + ny*ny; l2 > 1 {
		l := gomath.Sqrt(l2)
		nx, ny = nx/l, ny/l
	}
	nz = gomath.Sqrt(gomath.Max(0, 1-nx*nx-ny*ny))
	return nx, ny, nz
}

// NormalMap encodes TangentNormal as RGB.
func NormalMap(size image.Point) *model.Texture {
	enc := func(v float64) uint8 { return clampByte(gomath.Floor((v*0.5 + 0.5) * 255)) }
	img := fill(size, func(x, y float64) (uint8, uint8, uint8) {
		nx, ny, nz := TangentNormal(x, y)
		return enc(nx), enc(ny), enc(nz)
	})
	return model.NewTexture(TexNormal, img)
}

// RoughnessMap varies roughness gently around 0.6.
func RoughnessMap(size image.Point) *model.Texture {
	img := fill(size, func(x, y float64) (uint8, uint8, uint8) {
		return gray(0.6 + gomath.Sin(x*0.1)*gomath.Cos(y*0.1)*0.2)
	})
	return model.NewTexture(TexRoughness, img)
}

// BumpMap raises gyri and lowers sulci around mid-gray.
func BumpMap(size image.Point) *model.Texture {
	img := fill(size, func(x, y float64) (uint8, uint8, uint8) {
		b1 := gomath.Sin(x*0.08) * gomath.Cos(y*0.075)
		b2 := gomath.Sin(x*0.15) * gomath.Cos(y*0.14) * 0.5
		return gray((b1+b2)*0.4 + 0.5)
	})
	return model.NewTexture(TexBump, img)
}
