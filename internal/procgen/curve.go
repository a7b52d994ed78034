package procgen

import (
	gomath "math"

	"github.com/Faultbox/neurosummit/pkg/math"
)

// arcDivisions is the sample count for arc-length lookups.
const arcDivisions = 200

// CatmullRom is an open centripetal Catmull-Rom spline. It passes through
// every control point.
type CatmullRom struct {
	points  []math.Vec3
	lengths []float64
}

// NewCatmullRom builds a spline through points. At least two are required.
func NewCatmullRom(points []math.Vec3) *CatmullRom {
	c := &CatmullRom{points: points}
	c.lengths = c.sampleLengths(arcDivisions)
	return c
}

// Point returns the spline position at parameter t in [0, 1], where equal
// steps of t advance equally through the control points.
func (c *CatmullRom) Point(t float64) math.Vec3 {
	pts := c.points
	l := len(pts)
	p := float64(l-1) * t
	seg := int(gomath.Floor(p))
	w := p - float64(seg)
	if seg >= l-1 {
		seg, w = l-2, 1
	}
	if seg < 0 {
		seg, w = 0, 0
	}

	var p0, p3 math.Vec3
	if seg > 0 {
		p0 = pts[seg-1]
	} else {
		p0 = pts[0].Scale(2).Sub(pts[1])
	}
	p1, p2 := pts[seg], pts[seg+1]
	if seg+2 < l {
		p3 = pts[seg+2]
	} else {
		p3 = pts[l-1].Scale(2).Sub(pts[l-2])
	}

	dt0 := gomath.Sqrt(float64(p0.Distance(p1)))
	dt1 := gomath.Sqrt(float64(p1.Distance(p2)))
	dt2 := gomath.Sqrt(float64(p2.Distance(p3)))
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	return math.V3(
		nonUniform(float64(p0.X), float64(p1.X), float64(p2.X), float64(p3.X), dt0, dt1, dt2, w),
		nonUniform(float64(p0.Y), float64(p1.Y), float64(p2.Y), float64(p3.Y), dt0, dt1, dt2, w),
		nonUniform(float64(p0.Z), float64(p1.Z), float64(p2.Z), float64(p3.Z), dt0, dt1, dt2, w),
	)
}

// nonUniform evaluates one axis of a Catmull-Rom segment with the given
// knot intervals, as a cubic Hermite between x1 and x2.
func nonUniform(x0, x1, x2, x3, dt0, dt1, dt2, t float64) float64 {
	t1 := ((x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1) * dt1
	t2 := ((x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2) * dt1

	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return x1 + t1*t + c2*t*t + c3*t*t*t
}

func (c *CatmullRom) sampleLengths(divisions int) []float64 {
	lengths := make([]float64, divisions+1)
	last := c.Point(0)
	for i := 1; i <= divisions; i++ {
		p := c.Point(float64(i) / float64(divisions))
		lengths[i] = lengths[i-1] + float64(p.Distance(last))
		last = p
	}
	return lengths
}

// Length returns the approximate arc length.
func (c *CatmullRom) Length() float64 {
	return c.lengths[len(c.lengths)-1]
}

// uToT maps a fraction of arc length to the curve parameter.
func (c *CatmullRom) uToT(u float64) float64 {
	ls := c.lengths
	n := len(ls) - 1
	target := u * ls[n]
	if target <= 0 {
		return 0
	}
	if target >= ls[n] {
		return 1
	}

	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if ls[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	i := max(lo-1, 0)
	seg := ls[i+1] - ls[i]
	frac := 0.0
	if seg > 0 {
		frac = (target - ls[i]) / seg
	}
	return (float64(i) + frac) / float64(n)
}

// PointAt returns the position at fraction u of the arc length.
func (c *CatmullRom) PointAt(u float64) math.Vec3 {
	return c.Point(c.uToT(u))
}

// TangentAt returns the unit tangent at fraction u of the arc length.
func (c *CatmullRom) TangentAt(u float64) math.Vec3 {
	const delta = 1e-4
	t := c.uToT(u)
	t1, t2 := max(t-delta, 0), min(t+delta, 1)
	return c.Point(t2).Sub(c.Point(t1)).Normalize()
}
