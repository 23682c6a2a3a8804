package affine

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// Box is an axis-aligned box spanning Min to Max, both inclusive.
type Box[T Scalar] struct {
	Min, Max Point[T]
}

// Bx returns the box spanning min to max. The two points must have the
// same dimension.
func Bx[T Scalar](min, max Point[T]) (Box[T], error) {
	if min.Dim() != max.Dim() {
		return Box[T]{}, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, min.Dim(), max.Dim())
	}
	return Box[T]{Min: min, Max: max}, nil
}

// Dim returns the box's dimension.
func (b Box[T]) Dim() int { return b.Min.Dim() }

// Canon returns the canonical version of b, swapping coordinates
// per axis so that Min is at most Max along every axis.
func (b Box[T]) Canon() Box[T] {
	if b.Min.Dim() != b.Max.Dim() {
		return b
	}
	lo, hi := b.Min.c.clone(), b.Max.c.clone()
	for i := range lo.dim() {
		if lo.e[i] > hi.e[i] {
			lo.e[i], hi.e[i] = hi.e[i], lo.e[i]
		}
	}
	return Box[T]{Min: Point[T]{c: lo}, Max: Point[T]{c: hi}}
}

// Contains reports whether p lies inside b, bounds included.
func (b Box[T]) Contains(p Point[T]) (bool, error) {
	if b.Min.Dim() != b.Max.Dim() || p.Dim() != b.Min.Dim() {
		return false, fmt.Errorf("%w: box %dx%d, point %d", ErrDimensionMismatch, b.Min.Dim(), b.Max.Dim(), p.Dim())
	}
	c := b.Canon()
	for i := range p.c.dim() {
		if p.c.e[i] < c.Min.c.e[i] || p.c.e[i] > c.Max.c.e[i] {
			return false, nil
		}
	}
	return true, nil
}

// Size returns the displacement from Min to Max.
func (b Box[T]) Size() (Vector[T], error) {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func Center[T Float](b Box[T]) (Point[T], error) {
	return Midpoint(b.Min, b.Max)
}

// Walk returns an iterator over the integer lattice points of b in
// row-major order, last axis varying fastest. A box whose corners have
// mismatched dimensions yields nothing.
func Walk[T Integer](b Box[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if b.Min.Dim() != b.Max.Dim() || b.Min.Dim() == 0 {
			return
		}
		c := b.Canon()
		dim := c.Min.Dim()
		lo, hi := c.Min.c.e[:dim], c.Max.c.e[:dim]
		cur := slices.Clone(lo)
		for {
			if !yield(Pt(cur...)) {
				return
			}
			// Compare before incrementing so an axis whose upper
			// bound is the scalar type's maximum cannot wrap around
			// and walk forever.
			i := dim - 1
			for i >= 0 {
				if cur[i] != hi[i] {
					cur[i]++
					break
				}
				cur[i] = lo[i]
				i--
			}
			if i < 0 {
				return
			}
		}
	}
}

// WalkInto fills pts with the first len(pts) lattice points of b.
func WalkInto[T Integer](pts []Point[T], b Box[T]) {
	for i, p := range xiter.Enumerate(Walk(b)) {
		if i >= len(pts) {
			return
		}
		pts[i] = p
	}
}
