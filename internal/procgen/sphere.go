package procgen

import (
	gomath "math"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// UVSphere builds a latitude/longitude sphere with (widthSegs+1) x
// (heightSegs+1) vertices. Rows run from the north pole (+Y) to the south
// pole; the first and last column coincide so texture coordinates wrap.
func UVSphere(radius float64, widthSegs, heightSegs int) *model.Mesh {
	m := &model.Mesh{
		Vertices: make([]model.Vertex, 0, (widthSegs+1)*(heightSegs+1)),
	}

	for iy := 0; iy <= heightSegs; iy++ {
		v := float64(iy) / float64(heightSegs)
		phi := v * gomath.Pi
		for ix := 0; ix <= widthSegs; ix++ {
			u := float64(ix) / float64(widthSegs)
			theta := u * 2 * gomath.Pi

			// Longitude starts on -X and sweeps towards +Z.
			x := -radius * gomath.Cos(theta) * gomath.Sin(phi)
			y := radius * gomath.Cos(phi)
			z := radius * gomath.Sin(theta) * gomath.Sin(phi)

			p := math.V3(x, y, z)
			m.Vertices = append(m.Vertices, model.Vertex{
				Position: p,
				Normal:   p.Normalize(),
				Color:    math.Vec3{X: 1, Y: 1, Z: 1},
				TexCoord: math.Vec2{X: float32(u), Y: float32(1 - v)},
			})
		}
	}

	row := widthSegs + 1
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := uint32(iy*row + ix + 1)
			b := uint32(iy*row + ix)
			c := uint32((iy+1)*row + ix)
			d := uint32((iy+1)*row + ix + 1)

			// Pole rows collapse to a point; skip their degenerate halves.
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegs-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	return m
}
