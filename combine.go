package affine

import "fmt"

// Combine returns the affine combination of the given points with the
// given weights, the point whose homogeneous coordinates are the
// weighted sum of the points' homogeneous coordinates.
//
// The combination only denotes a point when the weights sum to exactly
// one; anything else fails with [ErrInvalidWeights], as do an empty
// input and lists of differing length. The sum check is exact for
// every scalar type, floating point included. Callers working with
// real weights are responsible for building weight lists that sum to
// one without rounding drift; no tolerance is applied here.
//
// Weights may be negative or greater than one, which extrapolates
// instead of interpolating.
func Combine[T Scalar](points []Point[T], weights []T) (Point[T], error) {
	if len(points) == 0 {
		return Point[T]{}, fmt.Errorf("%w: no points", ErrInvalidWeights)
	}
	if len(points) != len(weights) {
		return Point[T]{}, fmt.Errorf("%w: %d points but %d weights", ErrInvalidWeights, len(points), len(weights))
	}

	var sum T
	for _, w := range weights {
		sum += w
	}
	if sum != 1 {
		return Point[T]{}, fmt.Errorf("%w: weights sum to %v, not 1", ErrInvalidWeights, sum)
	}

	dim := points[0].Dim()
	acc := make([]T, dim+1)
	for i, p := range points {
		if p.Dim() != dim {
			return Point[T]{}, fmt.Errorf("%w: point %d has dimension %d, want %d", ErrDimensionMismatch, i, p.Dim(), dim)
		}
		for j, x := range p.hc().e {
			acc[j] += weights[i] * x
		}
	}

	// The trailing coordinate of the accumulator is the weight sum
	// itself, which the check above pinned to one.
	return Point[T]{c: coords[T]{e: acc}}, nil
}

// Midpoint returns the point halfway between p and q.
func Midpoint[T Float](p, q Point[T]) (Point[T], error) {
	return Combine([]Point[T]{p, q}, []T{0.5, 0.5})
}

// Lerp linearly interpolates between p at t = 0 and q at t = 1. It is
// computed as p + t*(q - p) rather than as a two-point combination, so
// no weight-sum rounding can creep in for awkward values of t.
func Lerp[T Float](p, q Point[T], t T) (Point[T], error) {
	d, err := q.Sub(p)
	if err != nil {
		return Point[T]{}, err
	}
	return p.Add(d.Scale(t))
}
