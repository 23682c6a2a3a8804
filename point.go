package affine

import (
	"fmt"
	"iter"
	"strings"
)

// Point is a location in an n-dimensional affine space. Points and
// vectors share the same homogeneous storage but remain distinct
// types: there is no way to add two points or to scale a point,
// because neither has affine meaning.
type Point[T Scalar] struct {
	c coords[T]
}

// hc returns the point's homogeneous storage, materializing the zero
// value as the zero-dimensional point.
func (p Point[T]) hc() coords[T] {
	return p.c.filled(1)
}

// Pt returns a point with the given coordinates.
func Pt[T Scalar](comps ...T) Point[T] {
	return Point[T]{c: newCoords(comps, T(1))}
}

// Origin returns the origin point of the given dimension.
func Origin[T Scalar](dim int) Point[T] {
	return Point[T]{c: zeroCoords(dim, T(1))}
}

// PointFromHomogeneous builds a point from a full homogeneous
// coordinate list. The trailing coordinate must be one.
func PointFromHomogeneous[T Scalar](h []T) (Point[T], error) {
	if len(h) == 0 {
		return Point[T]{}, fmt.Errorf("%w: empty homogeneous coordinates", ErrUnsupportedOperation)
	}
	if h[len(h)-1] != 1 {
		return Point[T]{}, fmt.Errorf("%w: homogeneous coordinates of a point must end with 1, got %v", ErrUnsupportedOperation, h[len(h)-1])
	}
	return Pt(h[:len(h)-1]...), nil
}

// Dim returns the point's dimension.
func (p Point[T]) Dim() int { return p.c.dim() }

// At returns coordinate i of the point.
func (p Point[T]) At(i int) (T, error) { return p.c.at(i) }

// With returns a copy of the point with coordinate i replaced by x.
func (p Point[T]) With(i int, x T) (Point[T], error) {
	c, err := p.c.with(i, x)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{c: c}, nil
}

// Components returns a copy of the point's coordinates.
func (p Point[T]) Components() []T { return p.c.components() }

// All returns an iterator over the point's coordinates in order.
func (p Point[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range p.c.dim() {
			if !yield(p.c.e[i]) {
				return
			}
		}
	}
}

// Homogeneous returns a copy of the point's full homogeneous
// coordinates, trailing one included.
func (p Point[T]) Homogeneous() []T { return p.hc().homogeneous() }

// Equal reports whether two points have the same dimension and exactly
// equal coordinates.
func (p Point[T]) Equal(q Point[T]) bool { return p.hc().equal(q.hc()) }

// IsOrigin reports whether all coordinates of the point are zero.
func (p Point[T]) IsOrigin() bool {
	for i := range p.c.dim() {
		if p.c.e[i] != 0 {
			return false
		}
	}
	return true
}

// Sub returns the displacement from q to p, so that q.Add(p.Sub(q))
// reproduces p. The homogeneous trailing coordinates cancel to the
// vector's zero.
func (p Point[T]) Sub(q Point[T]) (Vector[T], error) {
	c, err := p.hc().zip(q.hc(), func(a, b T) T { return a - b })
	if err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{c: c}, nil
}

// Add returns the point translated by the vector v. The vector's
// trailing zero leaves the point's trailing one intact.
func (p Point[T]) Add(v Vector[T]) (Point[T], error) {
	c, err := p.hc().zip(v.hc(), func(a, b T) T { return a + b })
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{c: c}, nil
}

// SubVec returns the point translated by the negation of v.
func (p Point[T]) SubVec(v Vector[T]) (Point[T], error) {
	c, err := p.hc().zip(v.hc(), func(a, b T) T { return a - b })
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{c: c}, nil
}

func (p Point[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Pt(")
	for i := range p.c.dim() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, p.c.e[i])
	}
	sb.WriteString(")")
	return sb.String()
}

// Translate returns the point p translated by v. It is the vector-first
// spelling of [Point.Add].
func Translate[T Scalar](v Vector[T], p Point[T]) (Point[T], error) {
	return p.Add(v)
}
