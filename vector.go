package affine

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Vector is a displacement in an n-dimensional linear space. The zero
// value is the empty, zero-dimensional vector.
type Vector[T Scalar] struct {
	c coords[T]
}

// hc returns the vector's homogeneous storage, materializing the zero
// value as the zero-dimensional vector.
func (v Vector[T]) hc() coords[T] {
	var zero T
	return v.c.filled(zero)
}

// Vec returns a vector with the given components.
func Vec[T Scalar](comps ...T) Vector[T] {
	var zero T
	return Vector[T]{c: newCoords(comps, zero)}
}

// Zero returns the zero vector of the given dimension.
func Zero[T Scalar](dim int) Vector[T] {
	var zero T
	return Vector[T]{c: zeroCoords(dim, zero)}
}

// Unit returns the vector of the given dimension whose component along
// axis is one and whose other components are zero.
func Unit[T Scalar](dim, axis int) (Vector[T], error) {
	return Zero[T](dim).With(axis, T(1))
}

// VectorFromHomogeneous builds a vector from a full homogeneous
// coordinate list. The trailing coordinate must be zero.
func VectorFromHomogeneous[T Scalar](h []T) (Vector[T], error) {
	if len(h) == 0 {
		return Vector[T]{}, fmt.Errorf("%w: empty homogeneous coordinates", ErrUnsupportedOperation)
	}
	if h[len(h)-1] != 0 {
		return Vector[T]{}, fmt.Errorf("%w: homogeneous coordinates of a vector must end with 0, got %v", ErrUnsupportedOperation, h[len(h)-1])
	}
	return Vec(h[:len(h)-1]...), nil
}

// Dim returns the vector's dimension.
func (v Vector[T]) Dim() int { return v.c.dim() }

// At returns component i of the vector.
func (v Vector[T]) At(i int) (T, error) { return v.c.at(i) }

// With returns a copy of the vector with component i replaced by x.
func (v Vector[T]) With(i int, x T) (Vector[T], error) {
	c, err := v.c.with(i, x)
	if err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{c: c}, nil
}

// Components returns a copy of the vector's components.
func (v Vector[T]) Components() []T { return v.c.components() }

// All returns an iterator over the vector's components in order.
func (v Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.c.dim() {
			if !yield(v.c.e[i]) {
				return
			}
		}
	}
}

// Homogeneous returns a copy of the vector's full homogeneous
// coordinates, trailing zero included.
func (v Vector[T]) Homogeneous() []T { return v.hc().homogeneous() }

// Equal reports whether two vectors have the same dimension and
// exactly equal components.
func (v Vector[T]) Equal(w Vector[T]) bool { return v.hc().equal(w.hc()) }

// IsZero reports whether all components of the vector are zero.
func (v Vector[T]) IsZero() bool {
	for i := range v.c.dim() {
		if v.c.e[i] != 0 {
			return false
		}
	}
	return true
}

// Add returns the component-wise sum v + w.
func (v Vector[T]) Add(w Vector[T]) (Vector[T], error) {
	c, err := v.hc().zip(w.hc(), func(a, b T) T { return a + b })
	if err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{c: c}, nil
}

// Sub returns the component-wise difference v - w.
func (v Vector[T]) Sub(w Vector[T]) (Vector[T], error) {
	c, err := v.hc().zip(w.hc(), func(a, b T) T { return a - b })
	if err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{c: c}, nil
}

// Neg returns the vector with every component negated.
func (v Vector[T]) Neg() Vector[T] {
	return Vector[T]{c: v.c.mapped(func(a T) T { return -a })}
}

// Scale returns the vector multiplied by the scalar s.
func (v Vector[T]) Scale(s T) Vector[T] {
	return Vector[T]{c: v.c.mapped(func(a T) T { return a * s })}
}

// Dot returns the dot product of two vectors.
func (v Vector[T]) Dot(w Vector[T]) (T, error) {
	var zero T
	if v.Dim() != w.Dim() {
		return zero, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, v.Dim(), w.Dim())
	}
	sum := zero
	for i := range v.c.dim() {
		sum += v.c.e[i] * w.c.e[i]
	}
	return sum, nil
}

// NormSquared returns the squared euclidean norm of the vector. Unlike
// [Norm] it is exact for integer scalars.
func (v Vector[T]) NormSquared() T {
	var sum T
	for i := range v.c.dim() {
		sum += v.c.e[i] * v.c.e[i]
	}
	return sum
}

func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Vec(")
	for i := range v.c.dim() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v.c.e[i])
	}
	sb.WriteString(")")
	return sb.String()
}

// Norm returns the euclidean norm of v. It is offered only for
// floating-point scalars; integer callers should use
// [Vector.NormSquared] instead of truncating a root.
func Norm[T Float](v Vector[T]) T {
	return T(math.Sqrt(float64(v.NormSquared())))
}

// Normalize returns the unit vector pointing in the direction of v, or
// v itself if it is the zero vector.
func Normalize[T Float](v Vector[T]) Vector[T] {
	n := Norm(v)
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// ManhattanNorm returns the sum of the absolute values of the
// components of v.
func ManhattanNorm[T Signed](v Vector[T]) T {
	var sum T
	for i := range v.c.dim() {
		x := v.c.e[i]
		if x < 0 {
			x = -x
		}
		sum += x
	}
	return sum
}

// Cross returns the cross product of two 3-dimensional vectors. Fixed
// 3D types with a total cross product live in the flat package; the
// dimension of a generic Vector is a runtime property, so here vectors
// of any other dimension are rejected with [ErrDimensionMismatch].
func Cross[T Scalar](a, b Vector[T]) (Vector[T], error) {
	if a.Dim() != 3 || b.Dim() != 3 {
		return Vector[T]{}, fmt.Errorf("%w: cross product requires dimension 3, got %d and %d", ErrDimensionMismatch, a.Dim(), b.Dim())
	}
	return Vec(
		a.c.e[1]*b.c.e[2]-a.c.e[2]*b.c.e[1],
		a.c.e[2]*b.c.e[0]-a.c.e[0]*b.c.e[2],
		a.c.e[0]*b.c.e[1]-a.c.e[1]*b.c.e[0],
	), nil
}

// CrossZ returns the scalar cross product of two 2-dimensional
// vectors, the signed area of the parallelogram they span.
func CrossZ[T Scalar](a, b Vector[T]) (T, error) {
	var zero T
	if a.Dim() != 2 || b.Dim() != 2 {
		return zero, fmt.Errorf("%w: scalar cross product requires dimension 2, got %d and %d", ErrDimensionMismatch, a.Dim(), b.Dim())
	}
	return a.c.e[0]*b.c.e[1] - a.c.e[1]*b.c.e[0], nil
}
