// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// StandardVertexShader is the vertex shader for lit meshes.
//
//go:embed standard.vert
var StandardVertexShader string

// StandardFragmentShader shades lit meshes with vertex colors, surface maps,
// the directional and point light rig and linear fog.
//
//go:embed standard.frag
var StandardFragmentShader string

// VeinVertexShader is the vertex shader for vein tubes.
//
//go:embed vein.vert
var VeinVertexShader string

// VeinFragmentShader colors veins along the tube length.
//
//go:embed vein.frag
var VeinFragmentShader string

// BasicVertexShader is the vertex shader for unlit meshes.
//
//go:embed basic.vert
var BasicVertexShader string

// BasicFragmentShader is the fragment shader for unlit meshes.
//
//go:embed basic.frag
var BasicFragmentShader string

// PointsVertexShader is the vertex shader for particle systems.
//
//go:embed points.vert
var PointsVertexShader string

// PointsFragmentShader is the fragment shader for particle systems.
//
//go:embed points.frag
var PointsFragmentShader string

// CompositeVertexShader draws a fullscreen triangle.
//
//go:embed composite.vert
var CompositeVertexShader string

// CompositeFragmentShader blends an offscreen pass onto the screen.
//
//go:embed composite.frag
var CompositeFragmentShader string
