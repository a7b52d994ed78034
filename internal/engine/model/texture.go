package model

import "image"

// Wrap is a texture addressing mode.
type Wrap int

const (
	WrapClamp Wrap = iota
	WrapRepeat
)

// Texture is a generated image. Its pixels are never changed after creation,
// so one Texture may be shared by any number of materials.
type Texture struct {
	Name    string
	Image   *image.RGBA
	Wrap    Wrap
	RepeatU float32
	RepeatV float32
}

// NewTexture wraps img with repeat addressing and a 1x1 repeat.
func NewTexture(name string, img *image.RGBA) *Texture {
	return &Texture{
		Name:    name,
		Image:   img,
		Wrap:    WrapRepeat,
		RepeatU: 1,
		RepeatV: 1,
	}
}

// Size returns the pixel dimensions.
func (t *Texture) Size() (int, int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}
