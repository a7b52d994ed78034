// Package scene draws model node graphs with OpenGL.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/neurosummit/internal/engine/camera"
	"github.com/Faultbox/neurosummit/internal/engine/lighting"
	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/internal/engine/scene/shaders"
	"github.com/Faultbox/neurosummit/internal/engine/shader"
)

// Scene renders node graphs and composites offscreen passes.
type Scene struct {
	meshes    *MeshRenderer
	points    *PointsRenderer
	textures  *textureCache
	composite *shader.Program
	emptyVAO  uint32
}

// New compiles every program. It must run on the GL thread.
func New() (*Scene, error) {
	s := &Scene{}

	var err error
	if s.meshes, err = NewMeshRenderer(); err != nil {
		return nil, err
	}
	if s.points, err = NewPointsRenderer(); err != nil {
		s.Destroy()
		return nil, err
	}
	s.composite, err = shader.NewProgram(shaders.CompositeVertexShader, shaders.CompositeFragmentShader,
		"uTexture", "uOpacity")
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("composite shader: %w", err)
	}
	s.composite.Use()
	s.composite.SetInt("uTexture", 0)

	// Core profile refuses draws without a bound vertex array.
	gl.GenVertexArrays(1, &s.emptyVAO)
	s.textures = newTextureCache()
	return s, nil
}

// Render draws every visible node under root as seen by cam. The caller
// owns the target framebuffer and clears it.
func (s *Scene) Render(root *model.Node, cam *camera.Perspective, rig lighting.Rig, viewportHeight int) {
	if root == nil || cam == nil {
		return
	}
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	f := &frame{
		viewProj:       proj.Mul(view),
		view:           view,
		proj:           proj,
		camPos:         cam.Position,
		rig:            rig,
		viewportHeight: float32(viewportHeight),
	}

	opaque, transparent := buildQueue(root, view)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	gl.Disable(gl.BLEND)
	for _, item := range opaque {
		s.draw(item, f)
	}

	gl.Enable(gl.BLEND)
	for _, item := range transparent {
		s.draw(item, f)
	}

	gl.DepthMask(true)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (s *Scene) draw(item drawItem, f *frame) {
	mat := item.node.Material
	applyState(mat)
	if item.node.Points != nil {
		s.points.Draw(item, f, s.textures)
		return
	}
	s.meshes.Draw(item, f, s.textures)
}

// applyState sets blending, culling and depth writes for a material.
func applyState(mat *model.Material) {
	if mat.Transparent {
		if mat.Blending == model.BlendAdditive {
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
		} else {
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		}
	}

	switch mat.Side {
	case model.SideFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case model.SideBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}

	gl.DepthMask(mat.DepthWrite)
}

// Composite draws a color texture over the whole viewport.
func (s *Scene) Composite(texture uint32, opacity float32) {
	if texture == 0 || opacity <= 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	s.composite.Use()
	s.composite.SetFloat("uOpacity", opacity)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.BindVertexArray(s.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Forget releases GPU copies of meshes that will not be drawn again.
func (s *Scene) Forget(meshes ...*model.Mesh) {
	if s.meshes != nil {
		s.meshes.Forget(meshes...)
	}
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.meshes != nil {
		s.meshes.Destroy()
	}
	if s.points != nil {
		s.points.Destroy()
	}
	if s.textures != nil {
		s.textures.destroy()
	}
	if s.composite != nil {
		s.composite.Delete()
	}
	if s.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &s.emptyVAO)
		s.emptyVAO = 0
	}
}
