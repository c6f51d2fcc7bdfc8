// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddAndScale(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, hide{b})
	require.NoError(t, err)
	CompareClose(t, [][]float64{{11, 22}, {33, 44}}, sum, 0)

	half, err := matrix.Scale(sum, 0.5)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{5.5, 11}, {16.5, 22}}, half, 0)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeAndMul(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at, 0)

	// A·Aᵀ = [[14, 32], [32, 77]]
	gram, err := matrix.Mul(a, hide{at})
	require.NoError(t, err)
	CompareClose(t, [][]float64{{14, 32}, {32, 77}}, gram, 1e-12)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{2, 0}, {1, 3}})
	y, err := matrix.MatVec(m, []float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 7}, y)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSymmetrize(t *testing.T) {
	t.Parallel()

	p := MustRows(t, [][]float64{
		{0.95, 0.05, 0.00},
		{0.02, 0.94, 0.04},
		{0.00, 0.05, 0.95},
	})
	s, err := matrix.Symmetrize(p)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(s, 0))
	require.InDelta(t, 0.035, MustAt(t, s, 0, 1), 1e-15)
	require.InDelta(t, 0.045, MustAt(t, s, 2, 1), 1e-15)
	require.Equal(t, 0.94, MustAt(t, s, 1, 1))

	_, err = matrix.Symmetrize(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
