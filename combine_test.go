package affine_test

import (
	"testing"

	"deedles.dev/affine"
	"github.com/stretchr/testify/require"
)

func TestCombineSinglePoint(t *testing.T) {
	p := affine.Pt(1.5, -2.25)

	c, err := affine.Combine([]affine.Point[float64]{p}, []float64{1})
	require.NoError(t, err)
	require.True(t, c.Equal(p))
}

func TestCombineMidpoint(t *testing.T) {
	p := affine.Pt(1.0, 2.0)
	q := affine.Pt(3.0, 4.0)

	c, err := affine.Combine([]affine.Point[float64]{p, q}, []float64{0.5, 0.5})
	require.NoError(t, err)
	require.True(t, c.Equal(affine.Pt(2.0, 3.0)))
	require.Equal(t, []float64{2, 3, 1}, c.Homogeneous())

	m, err := affine.Midpoint(p, q)
	require.NoError(t, err)
	require.True(t, m.Equal(c))
}

func TestCombineExtrapolation(t *testing.T) {
	p := affine.Pt(1, 2)
	q := affine.Pt(3, 4)

	// Weights may leave [0, 1] as long as they sum to one.
	c, err := affine.Combine([]affine.Point[int]{p, q}, []int{2, -1})
	require.NoError(t, err)
	require.True(t, c.Equal(affine.Pt(-1, 0)))
}

func TestCombineInvalidWeights(t *testing.T) {
	p := affine.Pt(1.0, 2.0)
	q := affine.Pt(3.0, 4.0)

	_, err := affine.Combine([]affine.Point[float64]{p, q}, []float64{0.5, 0.4})
	require.ErrorIs(t, err, affine.ErrInvalidWeights)

	_, err = affine.Combine(nil, []float64{})
	require.ErrorIs(t, err, affine.ErrInvalidWeights)

	_, err = affine.Combine([]affine.Point[float64]{p, q}, []float64{1})
	require.ErrorIs(t, err, affine.ErrInvalidWeights)
}

func TestCombineZeroValuePoint(t *testing.T) {
	// A zero-value Point is the zero-dimensional point, and combining
	// it must still produce a point with the trailing one.
	c, err := affine.Combine([]affine.Point[int]{{}}, []int{1})
	require.NoError(t, err)
	require.Equal(t, []int{1}, c.Homogeneous())
	require.True(t, c.Equal(affine.Pt[int]()))

	m, err := affine.Combine(
		[]affine.Point[float64]{{}, affine.Origin[float64](0)},
		[]float64{0.5, 0.5},
	)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, m.Homogeneous())
}

func TestCombineDimensionMismatch(t *testing.T) {
	_, err := affine.Combine(
		[]affine.Point[int]{affine.Pt(1, 2), affine.Pt(1, 2, 3)},
		[]int{2, -1},
	)
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
}

func TestLerp(t *testing.T) {
	p := affine.Pt(0.0, 0.0)
	q := affine.Pt(4.0, 8.0)

	at0, err := affine.Lerp(p, q, 0)
	require.NoError(t, err)
	require.True(t, at0.Equal(p))

	at1, err := affine.Lerp(p, q, 1)
	require.NoError(t, err)
	require.True(t, at1.Equal(q))

	at, err := affine.Lerp(p, q, 0.25)
	require.NoError(t, err)
	require.True(t, at.Equal(affine.Pt(1.0, 2.0)))

	_, err = affine.Lerp(p, affine.Pt(1.0, 2.0, 3.0), 0.5)
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
}
