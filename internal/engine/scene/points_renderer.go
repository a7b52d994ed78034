package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/internal/engine/scene/shaders"
	"github.com/Faultbox/neurosummit/internal/engine/shader"
)

// floatsPerPoint is position, color and size.
const floatsPerPoint = 7

// pointBuffers is a particle system streamed to the GPU each frame.
type pointBuffers struct {
	vao      uint32
	vbo      uint32
	capacity int
	scratch  []float32
}

// PointsRenderer draws particle systems as point sprites.
type PointsRenderer struct {
	program *shader.Program
	buffers map[*model.ParticleSystem]*pointBuffers
}

// NewPointsRenderer compiles the point sprite program.
func NewPointsRenderer() (*PointsRenderer, error) {
	program, err := shader.NewProgram(shaders.PointsVertexShader, shaders.PointsFragmentShader,
		"uModelView", "uProjection", "uPointSize", "uScale", "uAttenuate",
		"uColor", "uOpacity", "uVertexColors", "uUseMap", "uMap")
	if err != nil {
		return nil, fmt.Errorf("points shader: %w", err)
	}
	program.Use()
	program.SetInt("uMap", unitMap)

	return &PointsRenderer{
		program: program,
		buffers: make(map[*model.ParticleSystem]*pointBuffers),
	}, nil
}

// packPoints interleaves the particle arrays into dst, growing it as
// needed.
func packPoints(ps *model.ParticleSystem, dst []float32) []float32 {
	n := ps.Len()
	dst = dst[:0]
	for i := 0; i < n; i++ {
		p := ps.Positions[i]
		var c [3]float32
		if i < len(ps.Colors) {
			c = ps.Colors[i].Array()
		}
		size := float32(1)
		if i < len(ps.Sizes) {
			size = ps.Sizes[i]
		}
		dst = append(dst, p.X, p.Y, p.Z, c[0], c[1], c[2], size)
	}
	return dst
}

func (pr *PointsRenderer) stream(ps *model.ParticleSystem) *pointBuffers {
	b, ok := pr.buffers[ps]
	if !ok {
		b = &pointBuffers{}
		gl.GenVertexArrays(1, &b.vao)
		gl.GenBuffers(1, &b.vbo)
		gl.BindVertexArray(b.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		stride := int32(floatsPerPoint * 4)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 6*4)
		gl.EnableVertexAttribArray(2)
		pr.buffers[ps] = b
	}

	b.scratch = packPoints(ps, b.scratch)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(b.scratch) == 0 {
		return b
	}
	if ps.Len() > b.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(b.scratch)*4, gl.Ptr(b.scratch), gl.DYNAMIC_DRAW)
		b.capacity = ps.Len()
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(b.scratch)*4, gl.Ptr(b.scratch))
	}
	return b
}

// Draw renders one points node.
func (pr *PointsRenderer) Draw(item drawItem, f *frame, tex *textureCache) {
	ps := item.node.Points
	if ps.Len() == 0 {
		return
	}
	mat := item.node.Material
	p := pr.program
	p.Use()

	modelView := f.view.Mul(item.world)
	p.SetMat4("uModelView", (*[16]float32)(&modelView))
	p.SetMat4("uProjection", (*[16]float32)(&f.proj))
	p.SetFloat("uPointSize", mat.PointSize)
	p.SetFloat("uScale", f.viewportHeight/2)
	p.SetBool("uAttenuate", mat.SizeAttenuated)
	p.SetVec3("uColor", mat.Color.Array())
	p.SetFloat("uOpacity", mat.Opacity)
	p.SetBool("uVertexColors", mat.VertexColors)
	setFog(p, f.rig.Fog)
	p.SetBool("uUseMap", tex.bind(unitMap, mat.Map))

	pr.stream(ps)
	gl.DrawArrays(gl.POINTS, 0, int32(ps.Len()))
}

// Destroy releases all resources.
func (pr *PointsRenderer) Destroy() {
	for _, b := range pr.buffers {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
	}
	pr.buffers = make(map[*model.ParticleSystem]*pointBuffers)
	if pr.program != nil {
		pr.program.Delete()
	}
}
