package camera

import (
	"github.com/Carmen-Shannon/oxy-gallery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CatmullRomPath is a uniform Catmull-Rom spline through a list of control points.
// The curve passes through every point; the phantom points before the first and after
// the last are extrapolated so the ends do not curl.
type CatmullRomPath struct {
	points []mgl32.Vec3
}

// NewCatmullRomPath builds a path through points. The slice is copied.
//
// Parameters:
//   - points: control points, in travel order
//
// Returns:
//   - *CatmullRomPath: the path
func NewCatmullRomPath(points []mgl32.Vec3) *CatmullRomPath {
	cp := make([]mgl32.Vec3, len(points))
	copy(cp, points)
	return &CatmullRomPath{points: cp}
}

// Len returns the number of control points.
func (c *CatmullRomPath) Len() int {
	return len(c.points)
}

// Points returns a copy of the control points.
func (c *CatmullRomPath) Points() []mgl32.Vec3 {
	cp := make([]mgl32.Vec3, len(c.points))
	copy(cp, c.points)
	return cp
}

// Point samples the curve. t=0 is exactly the first control point and t=1 exactly the last;
// segments are spaced uniformly in t.
//
// Each segment is converted to its cubic Bézier form (b1 = p1 + (p2-p0)/6, b2 = p2 - (p3-p1)/6)
// and evaluated with mgl32.
//
// Parameters:
//   - t: curve parameter in [0, 1]
//
// Returns:
//   - mgl32.Vec3: the point on the curve
func (c *CatmullRomPath) Point(t float32) mgl32.Vec3 {
	n := len(c.points)
	switch n {
	case 0:
		return mgl32.Vec3{}
	case 1:
		return c.points[0]
	}

	t = common.Clamp(t, 0, 1)
	p := t * float32(n-1)
	i := int(p)
	if i >= n-1 {
		i = n - 2
	}
	local := common.Clamp(p-float32(i), 0, 1)

	p1 := c.points[i]
	p2 := c.points[i+1]
	var p0, p3 mgl32.Vec3
	if i > 0 {
		p0 = c.points[i-1]
	} else {
		p0 = p1.Mul(2).Sub(p2)
	}
	if i+2 < n {
		p3 = c.points[i+2]
	} else {
		p3 = p2.Mul(2).Sub(p1)
	}

	b1 := p1.Add(p2.Sub(p0).Mul(1.0 / 6))
	b2 := p2.Sub(p3.Sub(p1).Mul(1.0 / 6))
	return mgl32.CubicBezierCurve3D(local, p1, b1, b2, p2)
}
