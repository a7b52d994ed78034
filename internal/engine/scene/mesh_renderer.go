package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/neurosummit/internal/engine/lighting"
	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/internal/engine/scene/shaders"
	"github.com/Faultbox/neurosummit/internal/engine/shader"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Texture units used by the standard program.
const (
	unitMap = iota
	unitNormal
	unitBump
	unitRoughness
	unitDetail
)

// MeshRenderer draws triangle meshes with the standard, vein and basic
// programs.
type MeshRenderer struct {
	standard *shader.Program
	vein     *shader.Program
	basic    *shader.Program

	buffers map[*model.Mesh]*meshBuffers
}

// NewMeshRenderer compiles the mesh programs.
func NewMeshRenderer() (*MeshRenderer, error) {
	mr := &MeshRenderer{buffers: make(map[*model.Mesh]*meshBuffers)}

	var err error
	mr.standard, err = shader.NewProgram(shaders.StandardVertexShader, shaders.StandardFragmentShader,
		"uModel", "uViewProj", "uNormalMatrix", "uColor", "uOpacity", "uRoughness", "uMetalness",
		"uEmissive", "uVertexColors", "uCameraPos", "uRepeat", "uAmbient", "uDirCount", "uPointCount")
	if err != nil {
		mr.Destroy()
		return nil, fmt.Errorf("standard shader: %w", err)
	}
	mr.vein, err = shader.NewProgram(shaders.VeinVertexShader, shaders.VeinFragmentShader,
		"uModel", "uViewProj", "uStart", "uEnd", "uTime")
	if err != nil {
		mr.Destroy()
		return nil, fmt.Errorf("vein shader: %w", err)
	}
	mr.basic, err = shader.NewProgram(shaders.BasicVertexShader, shaders.BasicFragmentShader,
		"uModel", "uViewProj", "uColor", "uOpacity", "uVertexColors", "uUseMap", "uMap", "uRepeat")
	if err != nil {
		mr.Destroy()
		return nil, fmt.Errorf("basic shader: %w", err)
	}

	mr.standard.Use()
	mr.standard.SetInt("uMap", unitMap)
	mr.standard.SetInt("uNormalMap", unitNormal)
	mr.standard.SetInt("uBumpMap", unitBump)
	mr.standard.SetInt("uRoughnessMap", unitRoughness)
	mr.standard.SetInt("uDetailMap", unitDetail)
	mr.basic.Use()
	mr.basic.SetInt("uMap", unitMap)

	return mr, nil
}

func (mr *MeshRenderer) buffersFor(m *model.Mesh) *meshBuffers {
	b, ok := mr.buffers[m]
	if !ok {
		b = uploadMesh(m)
		mr.buffers[m] = b
	}
	return b
}

// frame holds the per-pass uniforms shared by every draw.
type frame struct {
	viewProj math.Mat4
	view     math.Mat4
	proj     math.Mat4
	camPos   math.Vec3
	rig      lighting.Rig
	// viewportHeight scales attenuated point sizes to pixels.
	viewportHeight float32
}

// Draw renders one mesh node.
func (mr *MeshRenderer) Draw(item drawItem, f *frame, tex *textureCache) {
	mat := item.node.Material
	buf := mr.buffersFor(item.node.Mesh)

	switch mat.Shading {
	case model.ShadingVein:
		p := mr.vein
		p.Use()
		p.SetMat4("uModel", (*[16]float32)(&item.world))
		p.SetMat4("uViewProj", (*[16]float32)(&f.viewProj))
		p.SetVec3("uStart", mat.GradientStart.Array())
		p.SetVec3("uEnd", mat.GradientEnd.Array())
		p.SetFloat("uTime", mat.Time)

	case model.ShadingStandard:
		p := mr.standard
		p.Use()
		normal := item.world.NormalMatrix()
		p.SetMat4("uModel", (*[16]float32)(&item.world))
		p.SetMat4("uViewProj", (*[16]float32)(&f.viewProj))
		p.SetMat4("uNormalMatrix", (*[16]float32)(&normal))
		p.SetVec3("uColor", mat.Color.Array())
		p.SetFloat("uOpacity", mat.Opacity)
		p.SetFloat("uRoughness", mat.Roughness)
		p.SetFloat("uMetalness", mat.Metalness)
		p.SetVec3("uEmissive", mat.Emissive.Scale(mat.EmissiveIntensity).Array())
		p.SetBool("uVertexColors", mat.VertexColors)
		p.SetVec3("uCameraPos", f.camPos.Array())
		setRepeat(p, mat.Map)
		setLights(p, f.rig)

		p.SetBool("uUseMap", tex.bind(unitMap, mat.Map))
		p.SetBool("uUseNormalMap", tex.bind(unitNormal, mat.NormalMap))
		p.SetBool("uUseBumpMap", tex.bind(unitBump, mat.BumpMap))
		p.SetBool("uUseRoughnessMap", tex.bind(unitRoughness, mat.RoughnessMap))
		p.SetBool("uUseDetailMap", tex.bind(unitDetail, mat.DetailMap))

	default:
		p := mr.basic
		p.Use()
		p.SetMat4("uModel", (*[16]float32)(&item.world))
		p.SetMat4("uViewProj", (*[16]float32)(&f.viewProj))
		p.SetVec3("uColor", mat.Color.Array())
		p.SetFloat("uOpacity", mat.Opacity)
		p.SetBool("uVertexColors", mat.VertexColors)
		p.SetVec3("uCameraPos", f.camPos.Array())
		setRepeat(p, mat.Map)
		setFog(p, f.rig.Fog)
		p.SetBool("uUseMap", tex.bind(unitMap, mat.Map))
	}

	buf.draw()
}

func setRepeat(p *shader.Program, t *model.Texture) {
	if t == nil {
		gl.Uniform2f(p.Loc("uRepeat"), 1, 1)
		return
	}
	gl.Uniform2f(p.Loc("uRepeat"), t.RepeatU, t.RepeatV)
}

func setFog(p *shader.Program, fog lighting.Fog) {
	p.SetBool("uFogUse", fog.Enabled)
	if !fog.Enabled {
		return
	}
	p.SetVec3("uFogColor", fog.Color)
	p.SetFloat("uFogNear", fog.Near)
	p.SetFloat("uFogFar", fog.Far)
}

func setLights(p *shader.Program, rig lighting.Rig) {
	p.SetVec3("uAmbient", rig.AmbientColor())

	dirs, colors, count := rig.DirectionalUniforms()
	p.SetInt("uDirCount", count)
	gl.Uniform3fv(p.Loc("uDirDirections"), lighting.MaxDirectionalLights, &dirs[0])
	gl.Uniform3fv(p.Loc("uDirColors"), lighting.MaxDirectionalLights, &colors[0])

	points := rig.Points
	if points == nil || points.Count == 0 {
		p.SetInt("uPointCount", 0)
	} else {
		p.SetInt("uPointCount", int32(points.Count))
		pos, col, ranges := points.Positions(), points.Colors(), points.Ranges()
		gl.Uniform3fv(p.Loc("uPointPositions"), lighting.MaxPointLights, &pos[0])
		gl.Uniform3fv(p.Loc("uPointColors"), lighting.MaxPointLights, &col[0])
		gl.Uniform1fv(p.Loc("uPointRanges"), lighting.MaxPointLights, &ranges[0])
	}

	setFog(p, rig.Fog)
}

// Forget releases the GPU copy of meshes that are no longer drawn.
func (mr *MeshRenderer) Forget(meshes ...*model.Mesh) {
	for _, m := range meshes {
		if b, ok := mr.buffers[m]; ok {
			b.destroy()
			delete(mr.buffers, m)
		}
	}
}

// Destroy releases all resources.
func (mr *MeshRenderer) Destroy() {
	for _, b := range mr.buffers {
		b.destroy()
	}
	mr.buffers = make(map[*model.Mesh]*meshBuffers)
	for _, p := range []*shader.Program{mr.standard, mr.vein, mr.basic} {
		if p != nil {
			p.Delete()
		}
	}
}
