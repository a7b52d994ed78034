package procgen

import (
	gomath "math"

	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Tube sweeps a circle of the given radius along curve. The U texture
// coordinate runs from 0 at the start of the path to 1 at its tip.
func Tube(curve *CatmullRom, tubularSegs int, radius float64, radialSegs int) *model.Mesh {
	_, normals, binormals := frenetFrames(curve, tubularSegs)

	m := &model.Mesh{
		Vertices: make([]model.Vertex, 0, (tubularSegs+1)*(radialSegs+1)),
	}
	for i := 0; i <= tubularSegs; i++ {
		u := float64(i) / float64(tubularSegs)
		center := curve.PointAt(u)
		n, b := normals[i], binormals[i]

		for j := 0; j <= radialSegs; j++ {
			v := float64(j) / float64(radialSegs) * 2 * gomath.Pi
			sin, cos := float32(gomath.Sin(v)), float32(-gomath.Cos(v))
			dir := n.Scale(cos).Add(b.Scale(sin)).Normalize()
			m.Vertices = append(m.Vertices, model.Vertex{
				Position: center.Add(dir.Scale(float32(radius))),
				Normal:   dir,
				Color:    math.Vec3{X: 1, Y: 1, Z: 1},
				TexCoord: math.Vec2{X: float32(u), Y: float32(j) / float32(radialSegs)},
			})
		}
	}

	ring := uint32(radialSegs + 1)
	for j := uint32(1); j <= uint32(tubularSegs); j++ {
		for i := uint32(1); i <= uint32(radialSegs); i++ {
			a := ring*(j-1) + (i - 1)
			b := ring*j + (i - 1)
			c := ring*j + i
			d := ring*(j-1) + i
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}

// frenetFrames computes parallel-transported frames along the curve so the
// tube cross-section does not twist.
func frenetFrames(curve *CatmullRom, segments int) (tangents, normals, binormals []math.Vec3) {
	tangents = make([]math.Vec3, segments+1)
	normals = make([]math.Vec3, segments+1)
	binormals = make([]math.Vec3, segments+1)

	for i := range tangents {
		tangents[i] = curve.TangentAt(float64(i) / float64(segments))
	}

	// Seed the first normal with the axis least aligned with the tangent.
	t0 := tangents[0]
	ax, ay, az := abs32(t0.X), abs32(t0.Y), abs32(t0.Z)
	axis := math.Vec3{Z: 1}
	switch {
	case ax <= ay && ax <= az:
		axis = math.Vec3{X: 1}
	case ay <= az:
		axis = math.Vec3{Y: 1}
	}
	side := t0.Cross(axis).Normalize()
	normals[0] = t0.Cross(side)
	binormals[0] = t0.Cross(normals[0])

	for i := 1; i <= segments; i++ {
		normals[i] = normals[i-1]
		turn := tangents[i-1].Cross(tangents[i])
		if turn.Length() > 1e-6 {
			cosA := math.Clamp(float64(tangents[i-1].Dot(tangents[i])), -1, 1)
			q := math.QuatFromAxisAngle(turn.Normalize(), float32(gomath.Acos(cosA)))
			normals[i] = q.Rotate(normals[i])
		}
		binormals[i] = tangents[i].Cross(normals[i])
	}
	return tangents, normals, binormals
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
