// Package transform provides affine transformations of float64 points
// and vectors of any dimension.
//
// A transform of dimension n is an (n+1)×(n+1) homogeneous matrix
// whose last row is (0 ... 0 1). Applied to the homogeneous coordinates
// of a point or a vector it translates, scales, rotates, or shears
// them, with translation falling away for vectors because of their
// trailing zero.
package transform

import (
	"errors"
	"fmt"

	"deedles.dev/affine"
	"gonum.org/v1/gonum/mat"
)

// ErrNotAffine indicates a matrix whose last row is not (0 ... 0 1) and
// which therefore is not a valid affine transform.
var ErrNotAffine = errors.New("not an affine transform")

// Transform is an affine transformation. It is immutable; operations
// return new transforms.
type Transform struct {
	m *mat.Dense
}

// Identity returns the identity transform of the given dimension.
func Identity(dim int) *Transform {
	d := dim + 1
	m := mat.NewDense(d, d, nil)
	for i := range d {
		m.Set(i, i, 1)
	}
	return &Transform{m: m}
}

// Translate returns the transform that translates points by the given
// vector and leaves vectors unchanged.
func Translate(by affine.Vector[float64]) *Transform {
	t := Identity(by.Dim())
	for i, x := range by.Components() {
		t.m.Set(i, by.Dim(), x)
	}
	return t
}

// Scale returns the transform that scales each axis by the
// corresponding component of the given vector.
func Scale(by affine.Vector[float64]) *Transform {
	t := Identity(by.Dim())
	for i, x := range by.Components() {
		t.m.Set(i, i, x)
	}
	return t
}

// FromMatrix builds a transform from a homogeneous matrix. The matrix
// must be square, at least 2×2, and end with a (0 ... 0 1) row.
func FromMatrix(m mat.Matrix) (*Transform, error) {
	r, c := m.Dims()
	if r != c || r < 2 {
		return nil, fmt.Errorf("%w: %dx%d matrix", ErrNotAffine, r, c)
	}
	for j := range c - 1 {
		if m.At(r-1, j) != 0 {
			return nil, fmt.Errorf("%w: last row must be (0 ... 0 1)", ErrNotAffine)
		}
	}
	if m.At(r-1, c-1) != 1 {
		return nil, fmt.Errorf("%w: last row must be (0 ... 0 1)", ErrNotAffine)
	}
	return &Transform{m: mat.DenseCopyOf(m)}, nil
}

// Dim returns the dimension of the space the transform acts on.
func (t *Transform) Dim() int {
	r, _ := t.m.Dims()
	return r - 1
}

// Matrix returns a read-only view of the transform's homogeneous
// matrix.
func (t *Transform) Matrix() mat.Matrix { return t.m }

// Equal reports whether two transforms have exactly equal matrices.
func (t *Transform) Equal(u *Transform) bool { return mat.Equal(t.m, u.m) }

// Compose returns the transform equivalent to applying u first and
// then t.
func (t *Transform) Compose(u *Transform) (*Transform, error) {
	if t.Dim() != u.Dim() {
		return nil, fmt.Errorf("%w: %d and %d", affine.ErrDimensionMismatch, t.Dim(), u.Dim())
	}
	var m mat.Dense
	m.Mul(t.m, u.m)
	return &Transform{m: &m}, nil
}

// Apply returns the image of the point p under t.
func (t *Transform) Apply(p affine.Point[float64]) (affine.Point[float64], error) {
	h, err := t.apply(p.Dim(), p.Homogeneous())
	if err != nil {
		return affine.Point[float64]{}, err
	}
	return affine.PointFromHomogeneous(h)
}

// ApplyVec returns the image of the vector v under t. Translation has
// no effect on vectors.
func (t *Transform) ApplyVec(v affine.Vector[float64]) (affine.Vector[float64], error) {
	h, err := t.apply(v.Dim(), v.Homogeneous())
	if err != nil {
		return affine.Vector[float64]{}, err
	}
	return affine.VectorFromHomogeneous(h)
}

func (t *Transform) apply(dim int, h []float64) ([]float64, error) {
	if dim != t.Dim() {
		return nil, fmt.Errorf("%w: transform is %d-dimensional, operand is %d-dimensional", affine.ErrDimensionMismatch, t.Dim(), dim)
	}
	var out mat.VecDense
	out.MulVec(t.m, mat.NewVecDense(len(h), h))
	res := make([]float64, out.Len())
	for i := range res {
		res[i] = out.AtVec(i)
	}
	return res, nil
}
