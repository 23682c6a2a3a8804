package affine

import (
	"fmt"
	"slices"
)

// coords is homogeneous coordinate storage: dim scalars followed by a
// reserved slot holding 0 for vectors and 1 for points. The reserved
// slot is what makes point/vector arithmetic fall out of plain
// component-wise operations.
type coords[T Scalar] struct {
	e []T
}

func newCoords[T Scalar](comps []T, last T) coords[T] {
	e := make([]T, len(comps)+1)
	copy(e, comps)
	e[len(comps)] = last
	return coords[T]{e: e}
}

func zeroCoords[T Scalar](dim int, last T) coords[T] {
	e := make([]T, dim+1)
	e[dim] = last
	return coords[T]{e: e}
}

func (c coords[T]) dim() int {
	if len(c.e) == 0 {
		return 0
	}
	return len(c.e) - 1
}

// filled returns c with a zero value's nil backing materialized as
// the lone reserved slot, so that zero-value vectors and points behave
// as their zero-dimensional constructed counterparts.
func (c coords[T]) filled(last T) coords[T] {
	if len(c.e) == 0 {
		return coords[T]{e: []T{last}}
	}
	return c
}

func (c coords[T]) equal(d coords[T]) bool {
	return slices.Equal(c.e, d.e)
}

func (c coords[T]) clone() coords[T] {
	return coords[T]{e: slices.Clone(c.e)}
}

func (c coords[T]) at(i int) (T, error) {
	if i < 0 || i >= c.dim() {
		var zero T
		return zero, fmt.Errorf("%w: component %d of %d", ErrIndexOutOfRange, i, c.dim())
	}
	return c.e[i], nil
}

// with returns a copy of c with component i replaced. The reserved
// slot is not reachable.
func (c coords[T]) with(i int, x T) (coords[T], error) {
	if i < 0 || i >= c.dim() {
		return coords[T]{}, fmt.Errorf("%w: component %d of %d", ErrIndexOutOfRange, i, c.dim())
	}
	d := c.clone()
	d.e[i] = x
	return d, nil
}

// zip applies op component-wise across the full homogeneous width,
// reserved slot included. Adding a vector to a point keeps the
// trailing 1 and subtracting two points produces a trailing 0 without
// any special casing.
func (c coords[T]) zip(d coords[T], op func(a, b T) T) (coords[T], error) {
	if len(c.e) != len(d.e) {
		return coords[T]{}, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, c.dim(), d.dim())
	}
	e := make([]T, len(c.e))
	for i := range e {
		e[i] = op(c.e[i], d.e[i])
	}
	return coords[T]{e: e}, nil
}

// mapped applies op to the leading components, leaving the reserved
// slot untouched.
func (c coords[T]) mapped(op func(T) T) coords[T] {
	e := make([]T, len(c.e))
	for i := range c.dim() {
		e[i] = op(c.e[i])
	}
	if len(c.e) > 0 {
		e[c.dim()] = c.e[c.dim()]
	}
	return coords[T]{e: e}
}

func (c coords[T]) components() []T {
	return slices.Clone(c.e[:c.dim()])
}

func (c coords[T]) homogeneous() []T {
	if len(c.e) == 0 {
		return nil
	}
	return slices.Clone(c.e)
}
