package transform_test

import (
	"testing"

	"deedles.dev/affine"
	"deedles.dev/affine/transform"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestIdentity(t *testing.T) {
	id := transform.Identity(3)
	require.Equal(t, 3, id.Dim())

	p := affine.Pt(1.0, 2.0, 3.0)
	got, err := id.Apply(p)
	require.NoError(t, err)
	require.True(t, got.Equal(p))
}

func TestTranslate(t *testing.T) {
	tr := transform.Translate(affine.Vec(3.0, -1.0))

	p, err := tr.Apply(affine.Pt(1.0, 2.0))
	require.NoError(t, err)
	require.True(t, p.Equal(affine.Pt(4.0, 1.0)))

	// Translation has no effect on vectors; their trailing zero
	// cancels the translation column.
	v, err := tr.ApplyVec(affine.Vec(1.0, 1.0))
	require.NoError(t, err)
	require.True(t, v.Equal(affine.Vec(1.0, 1.0)))
}

func TestScale(t *testing.T) {
	s := transform.Scale(affine.Vec(2.0, 3.0))

	p, err := s.Apply(affine.Pt(1.0, 2.0))
	require.NoError(t, err)
	require.True(t, p.Equal(affine.Pt(2.0, 6.0)))

	v, err := s.ApplyVec(affine.Vec(1.0, 1.0))
	require.NoError(t, err)
	require.True(t, v.Equal(affine.Vec(2.0, 3.0)))
}

func TestCompose(t *testing.T) {
	s := transform.Scale(affine.Vec(2.0, 2.0))
	tr := transform.Translate(affine.Vec(1.0, 0.0))

	// Compose applies its argument first.
	st, err := s.Compose(tr)
	require.NoError(t, err)
	p, err := st.Apply(affine.Pt(0.0, 0.0))
	require.NoError(t, err)
	require.True(t, p.Equal(affine.Pt(2.0, 0.0)))

	ts, err := tr.Compose(s)
	require.NoError(t, err)
	p, err = ts.Apply(affine.Pt(0.0, 0.0))
	require.NoError(t, err)
	require.True(t, p.Equal(affine.Pt(1.0, 0.0)))

	_, err = s.Compose(transform.Identity(3))
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
}

func TestFromMatrix(t *testing.T) {
	ok := mat.NewDense(3, 3, []float64{
		1, 0, 5,
		0, 1, -2,
		0, 0, 1,
	})
	tr, err := transform.FromMatrix(ok)
	require.NoError(t, err)

	p, err := tr.Apply(affine.Pt(1.0, 1.0))
	require.NoError(t, err)
	require.True(t, p.Equal(affine.Pt(6.0, -1.0)))

	bad := mat.NewDense(3, 3, []float64{
		1, 0, 5,
		0, 1, -2,
		0, 0, 2,
	})
	_, err = transform.FromMatrix(bad)
	require.ErrorIs(t, err, transform.ErrNotAffine)

	bad = mat.NewDense(3, 3, []float64{
		1, 0, 5,
		0, 1, -2,
		1, 0, 1,
	})
	_, err = transform.FromMatrix(bad)
	require.ErrorIs(t, err, transform.ErrNotAffine)

	_, err = transform.FromMatrix(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, transform.ErrNotAffine)
}

func TestApplyDimensionMismatch(t *testing.T) {
	tr := transform.Translate(affine.Vec(1.0, 2.0))

	_, err := tr.Apply(affine.Pt(1.0, 2.0, 3.0))
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
	_, err = tr.ApplyVec(affine.Vec(1.0, 2.0, 3.0))
	require.ErrorIs(t, err, affine.ErrDimensionMismatch)
}

func TestEqual(t *testing.T) {
	require.True(t, transform.Identity(2).Equal(transform.Scale(affine.Vec(1.0, 1.0))))
	require.False(t, transform.Identity(2).Equal(transform.Translate(affine.Vec(1.0, 0.0))))
}
