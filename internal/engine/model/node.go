package model

import (
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Node is an element of the scene hierarchy. A node may carry a mesh, a
// particle system, or nothing (a group).
type Node struct {
	Name     string
	Position math.Vec3
	Rotation math.Vec3 // Euler XYZ, radians
	Scale    math.Vec3
	Visible  bool

	Mesh     *Mesh
	Points   *ParticleSystem
	Material *Material

	Children []*Node
}

// NewNode creates an empty visible group node.
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   math.Vec3{X: 1, Y: 1, Z: 1},
		Visible: true,
	}
}

// NewMeshNode creates a node drawing mesh with mat.
func NewMeshNode(name string, mesh *Mesh, mat *Material) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	n.Material = mat
	return n
}

// NewPointsNode creates a node drawing a particle system with mat.
func NewPointsNode(name string, ps *ParticleSystem, mat *Material) *Node {
	n := NewNode(name)
	n.Points = ps
	n.Material = mat
	return n
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// SetScalar sets a uniform scale.
func (n *Node) SetScalar(s float32) {
	n.Scale = math.Vec3{X: s, Y: s, Z: s}
}

// LocalMatrix returns translation * rotation * scale.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// Walk visits every visible node depth-first with its world matrix.
func (n *Node) Walk(parent math.Mat4, fn func(node *Node, world math.Mat4)) {
	if !n.Visible {
		return
	}
	world := parent.Mul(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.Children {
		c.Walk(world, fn)
	}
}

// Count returns the number of nodes in the subtree, n included.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
