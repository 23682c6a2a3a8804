package affine_test

import (
	"testing"

	"deedles.dev/affine"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := affine.Vec(1.0, 2.0)
	b := affine.Vec(3.0, -1.0)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(affine.Vec(4.0, 1.0)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(affine.Vec(-2.0, 3.0)))

	zb, err := affine.Zero[float64](2).Sub(b)
	require.NoError(t, err)
	alt, err := a.Add(zb)
	require.NoError(t, err)
	require.True(t, alt.Equal(diff))

	n, err := a.Add(a.Neg())
	require.NoError(t, err)
	require.True(t, n.IsZero())
	require.True(t, n.Equal(affine.Zero[float64](2)))

	require.True(t, a.Scale(2).Equal(affine.Vec(2.0, 4.0)))
}

func TestVectorDotAndNorms(t *testing.T) {
	a := affine.Vec(3.0, 4.0)

	d, err := a.Dot(a)
	require.NoError(t, err)
	require.Equal(t, 25.0, d)
	require.Equal(t, 25.0, a.NormSquared())
	require.Equal(t, 5.0, affine.Norm(a))

	u := affine.Normalize(a)
	require.InDelta(t, 1.0, affine.Norm(u), 1e-15)
	require.True(t, affine.Normalize(affine.Zero[float64](2)).IsZero())

	require.Equal(t, 29, affine.Vec(2, 3, 4).NormSquared())
	require.Equal(t, 6, affine.ManhattanNorm(affine.Vec(1, -2, 3)))
}

func TestVectorDimensionMismatch(t *testing.T) {
	a := affine.Vec(1, 2)
	b := affine.Vec(1, 2, 3)

	_, err := a.Add(b)
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
	_, err = a.Dot(b)
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)

	// Both operands are left untouched.
	require.True(t, a.Equal(affine.Vec(1, 2)))
	require.True(t, b.Equal(affine.Vec(1, 2, 3)))
}

func TestCross(t *testing.T) {
	a := affine.Vec(1, 2, 3)
	b := affine.Vec(4, 5, 6)

	c, err := affine.Cross(a, b)
	require.NoError(t, err)
	require.True(t, c.Equal(affine.Vec(-3, 6, -3)))

	// Orthogonal to both operands.
	d, err := c.Dot(a)
	require.NoError(t, err)
	require.Equal(t, 0, d)
	d, err = c.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 0, d)

	// Anti-commutative.
	r, err := affine.Cross(b, a)
	require.NoError(t, err)
	require.True(t, r.Equal(c.Neg()))

	self, err := affine.Cross(a, a)
	require.NoError(t, err)
	require.True(t, self.IsZero())

	_, err = affine.Cross(affine.Vec(1, 2), affine.Vec(3, 4))
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
}

func TestCrossZ(t *testing.T) {
	area, err := affine.CrossZ(affine.Vec(2, 0), affine.Vec(0, 3))
	require.NoError(t, err)
	require.Equal(t, 6, area)

	_, err = affine.CrossZ(affine.Vec(1, 2, 3), affine.Vec(4, 5, 6))
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
}

func TestVectorComponents(t *testing.T) {
	v := affine.Vec(1, 2)
	require.Equal(t, 2, v.Dim())
	require.Equal(t, []int{1, 2}, v.Components())
	require.Equal(t, []int{1, 2, 0}, v.Homogeneous())

	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, x)

	w, err := v.With(1, 5)
	require.NoError(t, err)
	require.True(t, w.Equal(affine.Vec(1, 5)))
	require.True(t, v.Equal(affine.Vec(1, 2)))

	// The reserved homogeneous slot is unreachable.
	_, err = v.With(2, 9)
	require.ErrorIs(t, err, affine.ErrIndexOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, affine.ErrIndexOutOfRange)

	var got []int
	for x := range v.All() {
		got = append(got, x)
	}
	require.Equal(t, []int{1, 2}, got)

	require.Equal(t, "Vec(1, 2)", v.String())
}

func TestUnit(t *testing.T) {
	u, err := affine.Unit[int](3, 1)
	require.NoError(t, err)
	require.True(t, u.Equal(affine.Vec(0, 1, 0)))

	_, err = affine.Unit[int](3, 3)
	require.ErrorIs(t, err, affine.ErrIndexOutOfRange)
}

func TestVectorFromHomogeneous(t *testing.T) {
	v, err := affine.VectorFromHomogeneous([]int{1, 2, 0})
	require.NoError(t, err)
	require.True(t, v.Equal(affine.Vec(1, 2)))

	_, err = affine.VectorFromHomogeneous([]int{1, 2, 1})
	require.ErrorIs(t, err, affine.ErrUnsupportedOperation)
	_, err = affine.VectorFromHomogeneous[int](nil)
	require.ErrorIs(t, err, affine.ErrUnsupportedOperation)
}

func TestVectorZeroValue(t *testing.T) {
	var z affine.Vector[int]

	require.Equal(t, 0, z.Dim())
	require.True(t, z.IsZero())
	require.True(t, z.Equal(affine.Vec[int]()))
	require.Equal(t, []int{0}, z.Homogeneous())

	sum, err := z.Add(affine.Vec[int]())
	require.NoError(t, err)
	require.True(t, sum.Equal(z))

	_, err = z.Add(affine.Vec(1))
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
}
