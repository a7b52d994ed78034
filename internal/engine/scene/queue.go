package scene

import (
	"sort"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// drawItem is one drawable node with its resolved world transform.
type drawItem struct {
	node  *model.Node
	world math.Mat4
	// depth is the view-space distance of the node origin.
	depth float32
}

// buildQueue collects the drawable nodes under root. Opaque items come back
// sorted front to back and transparent items back to front, so blended
// geometry composites over everything behind it.
func buildQueue(root *model.Node, view math.Mat4) (opaque, transparent []drawItem) {
	if root == nil {
		return nil, nil
	}
	root.Walk(math.Identity(), func(n *model.Node, world math.Mat4) {
		if n.Material == nil || (n.Mesh == nil && n.Points == nil) {
			return
		}
		origin := view.Mul(world).TransformVec3(math.Vec3{})
		item := drawItem{node: n, world: world, depth: -origin.Z}
		if n.Material.Transparent {
			transparent = append(transparent, item)
		} else {
			opaque = append(opaque, item)
		}
	})
	sort.SliceStable(opaque, func(i, j int) bool { return opaque[i].depth < opaque[j].depth })
	sort.SliceStable(transparent, func(i, j int) bool { return transparent[i].depth > transparent[j].depth })
	return opaque, transparent
}
