package assets

import (
	"bytes"
	"errors"
	"fmt"
	gomath "math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// ErrNoMeshes is returned when a model holds no triangle primitives.
var ErrNoMeshes = errors.New("model has no triangle meshes")

// LoadModel reads a binary glTF file from the roots and converts it to meshes
// with node transforms baked into the vertices.
func (m *Manager) LoadModel(path string) ([]*model.Mesh, error) {
	data, err := m.Load(path)
	if err != nil {
		return nil, err
	}
	meshes, err := DecodeGLB(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return meshes, nil
}

// DecodeGLB parses binary glTF data.
func DecodeGLB(data []byte) ([]*model.Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("parsing glTF: %w", err)
	}
	return ExtractMeshes(doc)
}

// ExtractMeshes returns one mesh per triangle primitive reachable from the
// default scene. Documents without scenes are walked from every root node,
// and documents without nodes yield their meshes untransformed.
func ExtractMeshes(doc *gltf.Document) ([]*model.Mesh, error) {
	var out []*model.Mesh
	visit := func(meshIndex int, world math.Mat4) error {
		if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
			return fmt.Errorf("mesh index %d out of range", meshIndex)
		}
		for i, prim := range doc.Meshes[meshIndex].Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			mesh, err := extractPrimitive(doc, prim)
			if err != nil {
				return fmt.Errorf("mesh %d primitive %d: %w", meshIndex, i, err)
			}
			mesh.Transform(world)
			out = append(out, mesh)
		}
		return nil
	}

	if len(doc.Nodes) == 0 {
		for i := range doc.Meshes {
			if err := visit(i, math.Identity()); err != nil {
				return nil, err
			}
		}
	} else {
		for _, root := range rootNodes(doc) {
			if err := walkNode(doc, root, math.Identity(), 0, visit); err != nil {
				return nil, err
			}
		}
	}

	if len(out) == 0 {
		return nil, ErrNoMeshes
	}
	return out, nil
}

// maxNodeDepth guards against cyclic node graphs in malformed files.
const maxNodeDepth = 64

func walkNode(doc *gltf.Document, idx int, parent math.Mat4, depth int, visit func(int, math.Mat4) error) error {
	if idx < 0 || idx >= len(doc.Nodes) {
		return fmt.Errorf("node index %d out of range", idx)
	}
	if depth > maxNodeDepth {
		return fmt.Errorf("node hierarchy deeper than %d", maxNodeDepth)
	}
	node := doc.Nodes[idx]
	world := parent.Mul(nodeMatrix(node))
	if node.Mesh != nil {
		if err := visit(*node.Mesh, world); err != nil {
			return err
		}
	}
	for _, child := range node.Children {
		if err := walkNode(doc, child, world, depth+1, visit); err != nil {
			return err
		}
	}
	return nil
}

func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		scene := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			scene = *doc.Scene
		}
		return doc.Scenes[scene].Nodes
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots
}

// nodeMatrix returns the node's local transform. An explicit matrix wins
// over TRS; zeroed rotation or scale fields count as unset.
func nodeMatrix(n *gltf.Node) math.Mat4 {
	var mat math.Mat4
	for i, v := range n.Matrix {
		mat[i] = float32(v)
	}
	if mat != (math.Mat4{}) && mat != math.Identity() {
		return mat
	}

	t := math.Vec3{X: float32(n.Translation[0]), Y: float32(n.Translation[1]), Z: float32(n.Translation[2])}
	q := math.Quat{X: float32(n.Rotation[0]), Y: float32(n.Rotation[1]), Z: float32(n.Rotation[2]), W: float32(n.Rotation[3])}
	if q == (math.Quat{}) {
		q = math.QuatIdentity()
	}
	s := math.Vec3{X: float32(n.Scale[0]), Y: float32(n.Scale[1]), Z: float32(n.Scale[2])}
	if s == (math.Vec3{}) {
		s = math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return math.Translate(t).Mul(q.Normalize().ToMat4()).Mul(math.Scale(s))
}

func extractPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*model.Mesh, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, errors.New("primitive has no POSITION attribute")
	}
	acc, err := accessor(doc, posIdx)
	if err != nil {
		return nil, err
	}
	positions, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}

	mesh := &model.Mesh{Vertices: make([]model.Vertex, len(positions))}
	white := math.Vec3{X: 1, Y: 1, Z: 1}
	for i, p := range positions {
		mesh.Vertices[i].Position = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
		mesh.Vertices[i].Color = white
	}

	hasNormals := false
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		acc, err := accessor(doc, idx)
		if err != nil {
			return nil, err
		}
		normals, err := modeler.ReadNormal(doc, acc, nil)
		if err != nil {
			return nil, fmt.Errorf("reading normals: %w", err)
		}
		for i := range normals {
			if i < len(mesh.Vertices) {
				mesh.Vertices[i].Normal = math.Vec3{X: normals[i][0], Y: normals[i][1], Z: normals[i][2]}
			}
		}
		hasNormals = true
	}

	hasUV := false
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		acc, err := accessor(doc, idx)
		if err != nil {
			return nil, err
		}
		uvs, err := modeler.ReadTextureCoord(doc, acc, nil)
		if err != nil {
			return nil, fmt.Errorf("reading texcoords: %w", err)
		}
		for i := range uvs {
			if i < len(mesh.Vertices) {
				mesh.Vertices[i].TexCoord = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
			}
		}
		hasUV = true
	}

	if prim.Indices != nil {
		acc, err := accessor(doc, *prim.Indices)
		if err != nil {
			return nil, err
		}
		indices, err := modeler.ReadIndices(doc, acc, nil)
		if err != nil {
			return nil, fmt.Errorf("reading indices: %w", err)
		}
		for _, i := range indices {
			if int(i) >= len(mesh.Vertices) {
				return nil, fmt.Errorf("index %d out of range for %d vertices", i, len(mesh.Vertices))
			}
		}
		mesh.Indices = indices
	} else {
		mesh.Indices = make([]uint32, len(mesh.Vertices))
		for i := range mesh.Indices {
			mesh.Indices[i] = uint32(i)
		}
	}

	if !hasNormals {
		mesh.ComputeNormals()
	}
	if !hasUV {
		SphericalUV(mesh)
	}
	return mesh, nil
}

func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range", idx)
	}
	return doc.Accessors[idx], nil
}

// SphericalUV assigns equirectangular coordinates around the mesh center so
// the wrapping overlay textures have somewhere to land.
func SphericalUV(m *model.Mesh) {
	c := m.Bounds().Center()
	for i := range m.Vertices {
		d := m.Vertices[i].Position.Sub(c).Normalize()
		u := gomath.Atan2(float64(d.Z), float64(d.X))/(2*gomath.Pi) + 0.5
		v := gomath.Acos(math.Clamp(float64(d.Y), -1, 1)) / gomath.Pi
		m.Vertices[i].TexCoord = math.Vec2{X: float32(u), Y: float32(1 - v)}
	}
}
