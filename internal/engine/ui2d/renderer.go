// Package ui2d draws the 2D overlay: text, panels and image quads, batched
// in submission order on top of the 3D scenes.
package ui2d

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/neurosummit/internal/engine/shader"
)

// DisplayFontSize is the rasterization size of the display atlas.
const DisplayFontSize = 96

// Font selects one of the renderer's atlases.
type Font int

const (
	FontSmall Font = iota
	FontDisplay
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
    vTexCoord = aTexCoord;
    vColor = aColor;
}
`

const fragmentShader = `
#version 410 core

uniform sampler2D uTexture;
uniform int uMode;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
    if (uMode == 1) {
        FragColor = vec4(vColor.rgb, vColor.a * texture(uTexture, vTexCoord).r);
    } else if (uMode == 2) {
        vec4 c = texture(uTexture, vTexCoord);
        FragColor = vec4(c.rgb * vColor.rgb, c.a * vColor.a);
    } else {
        FragColor = vColor;
    }
}
`

// Image is an RGBA texture the overlay can draw, such as an animated 2D
// canvas.
type Image struct {
	id            uint32
	width, height int
}

// Renderer handles 2D overlay rendering with OpenGL.
type Renderer struct {
	screenWidth  int
	screenHeight int

	program *shader.Program
	vao     uint32
	vbo     uint32
	batch   batch

	atlases  [2]*Atlas
	textures [2]uint32
}

// New creates a new 2D renderer for a screen of the given size.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{screenWidth: width, screenHeight: height}

	var err error
	r.program, err = shader.NewProgram(vertexShader, fragmentShader, "uProjection", "uTexture", "uMode")
	if err != nil {
		return nil, fmt.Errorf("ui2d shader: %w", err)
	}
	r.program.Use()
	r.program.SetInt("uTexture", 0)

	display, err := DisplayAtlas(DisplayFontSize)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.atlases = [2]*Atlas{SmallAtlas(), display}
	for i, a := range r.atlases {
		r.textures[i] = uploadAtlas(a)
	}

	r.createBuffers()
	return r, nil
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 4*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func uploadAtlas(a *Atlas) uint32 {
	var id uint32
	b := a.Image.Bounds()
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&a.Image.Pix[0]))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return id
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// ScreenSize returns the current screen dimensions.
func (r *Renderer) ScreenSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new overlay frame.
func (r *Renderer) Begin() {
	r.batch.reset()
}

// End draws everything queued since Begin.
func (r *Renderer) End() {
	if len(r.batch.commands) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := orthoMatrix(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)
	r.program.Use()
	r.program.SetMat4("uProjection", &proj)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	verts := r.batch.vertices
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)

	gl.ActiveTexture(gl.TEXTURE0)
	for _, c := range r.batch.commands {
		r.program.SetInt("uMode", int32(c.mode))
		gl.BindTexture(gl.TEXTURE_2D, c.texture)
		gl.DrawArrays(gl.TRIANGLES, c.first, c.count)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, width, height float32, color Color) {
	r.batch.quad(modeSolid, 0, x, y, width, height, 0, 0, 0, 0, color)
}

// DrawRectOutline draws a rectangle outline.
func (r *Renderer) DrawRectOutline(x, y, width, height, thickness float32, color Color) {
	r.DrawRect(x, y, width, thickness, color)
	r.DrawRect(x, y+height-thickness, width, thickness, color)
	r.DrawRect(x, y+thickness, thickness, height-thickness*2, color)
	r.DrawRect(x+width-thickness, y+thickness, thickness, height-thickness*2, color)
}

// DrawPanel draws a panel with border.
func (r *Renderer) DrawPanel(x, y, width, height float32, bg, border Color) {
	r.DrawRect(x, y, width, height, bg)
	r.DrawRectOutline(x, y, width, height, 1, border)
}

// ProgressBar draws a horizontal bar filled to fraction.
func (r *Renderer) ProgressBar(x, y, width, height, fraction float32, track, fill Color) {
	fraction = min(max(fraction, 0), 1)
	r.DrawRect(x, y, width, height, track)
	if w := width * fraction; w > 0 {
		r.DrawRect(x, y, w, height, fill)
	}
}

// DrawText draws text with its top-left corner at (x, y) and a line height
// of px pixels.
func (r *Renderer) DrawText(f Font, x, y float32, text string, px float32, color Color) {
	r.batch.text(r.atlases[f], r.textures[f], x, y, text, px, 0, color)
}

// DrawTextSpaced draws text with letter spacing in pixels.
func (r *Renderer) DrawTextSpaced(f Font, x, y float32, text string, px, spacing float32, color Color) {
	r.batch.text(r.atlases[f], r.textures[f], x, y, text, px, spacing, color)
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(f Font, text string, px, spacing float32) (float32, float32) {
	return r.atlases[f].MeasureSpaced(text, px, spacing)
}

// DrawImage draws an image stretched over a rectangle.
func (r *Renderer) DrawImage(img *Image, x, y, width, height float32, opacity float32) {
	if img == nil || img.id == 0 {
		return
	}
	r.batch.quad(modeImage, img.id, x, y, width, height, 0, 0, 1, 1, ColorWhite.WithAlpha(opacity))
}

// NewImage allocates an empty overlay image.
func NewImage() *Image {
	img := &Image{}
	gl.GenTextures(1, &img.id)
	gl.BindTexture(gl.TEXTURE_2D, img.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return img
}

// Upload replaces the image contents, reallocating on a size change.
func (img *Image) Upload(src *image.RGBA) {
	b := src.Bounds()
	if b.Empty() {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, img.id)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(src.Stride/4))
	pix := unsafe.Pointer(&src.Pix[src.PixOffset(b.Min.X, b.Min.Y)])
	if b.Dx() != img.width || b.Dy() != img.height {
		img.width, img.height = b.Dx(), b.Dy()
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.width), int32(img.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, pix)
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(img.width), int32(img.height), gl.RGBA, gl.UNSIGNED_BYTE, pix)
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
}

// Destroy releases the texture.
func (img *Image) Destroy() {
	if img.id != 0 {
		gl.DeleteTextures(1, &img.id)
		img.id = 0
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	for i := range r.textures {
		if r.textures[i] != 0 {
			gl.DeleteTextures(1, &r.textures[i])
			r.textures[i] = 0
		}
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
