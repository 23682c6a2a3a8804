package flat

import "deedles.dev/affine"

// Combine2 returns the affine combination of 2D real points with the
// given weights. The weights must sum to exactly one; see
// [affine.Combine] for the validation rules.
func Combine2(points []Point2, weights []float64) (Point2, Status) {
	ps := make([]affine.Point[float64], len(points))
	for i, p := range points {
		ps[i] = affine.Pt(p.X, p.Y)
	}
	c, err := affine.Combine(ps, weights)
	if err != nil {
		return Point2{}, StatusOf(err)
	}
	e := c.Components()
	return Point2{X: e[0], Y: e[1]}, StatusOK
}

// Combine3 returns the affine combination of 3D real points with the
// given weights.
func Combine3(points []Point3, weights []float64) (Point3, Status) {
	ps := make([]affine.Point[float64], len(points))
	for i, p := range points {
		ps[i] = affine.Pt(p.X, p.Y, p.Z)
	}
	c, err := affine.Combine(ps, weights)
	if err != nil {
		return Point3{}, StatusOf(err)
	}
	e := c.Components()
	return Point3{X: e[0], Y: e[1], Z: e[2]}, StatusOK
}
