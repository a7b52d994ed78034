// Package model holds the CPU-side scene data: meshes, materials, textures,
// particle systems and the node hierarchy that owns them.
package model

import (
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Vertex is one interleaved vertex as uploaded to the GPU.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Color    math.Vec3
	TexCoord math.Vec2
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the box extent on each axis.
func (b Bounds) Size() math.Vec3 { return b.Max.Sub(b.Min) }

// Center returns the box midpoint.
func (b Bounds) Center() math.Vec3 { return b.Min.Add(b.Max).Scale(0.5) }

// Mesh is an indexed triangle mesh. Positions are mutated only while a
// generator builds it.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// Bounds computes the bounding box of all vertex positions.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for i := range m.Vertices {
		p := m.Vertices[i].Position
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// ComputeNormals recomputes smooth vertex normals as the area-weighted sum
// of the adjacent face normals.
func (m *Mesh) ComputeNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math.Vec3{}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		pa, pb, pc := m.Vertices[a].Position, m.Vertices[b].Position, m.Vertices[c].Position
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		m.Vertices[a].Normal = m.Vertices[a].Normal.Add(n)
		m.Vertices[b].Normal = m.Vertices[b].Normal.Add(n)
		m.Vertices[c].Normal = m.Vertices[c].Normal.Add(n)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// WeldNormals averages normals of vertices sharing a position, hiding the
// seam where a UV sphere duplicates its first column.
func (m *Mesh) WeldNormals() {
	const epsilon float32 = 1e-4

	groups := make(map[[3]int32][]int)
	for i := range m.Vertices {
		p := m.Vertices[i].Position
		key := [3]int32{int32(p.X / epsilon), int32(p.Y / epsilon), int32(p.Z / epsilon)}
		groups[key] = append(groups[key], i)
	}
	for _, idx := range groups {
		if len(idx) < 2 {
			continue
		}
		var sum math.Vec3
		for _, i := range idx {
			sum = sum.Add(m.Vertices[i].Normal)
		}
		n := sum.Normalize()
		if n == (math.Vec3{}) {
			continue
		}
		for _, i := range idx {
			m.Vertices[i].Normal = n
		}
	}
}

// Transform applies mat to every position and re-orients the normals.
func (m *Mesh) Transform(mat math.Mat4) {
	nm := mat.NormalMatrix()
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mat.TransformVec3(v.Position)
		v.Normal = nm.TransformDir(v.Normal).Normalize()
	}
}

// Append merges other into m, offsetting its indices.
func (m *Mesh) Append(other *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}
