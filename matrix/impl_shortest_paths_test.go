// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/stretchr/testify/require"
)

func TestShortestPaths_Path(t *testing.T) {
	t.Parallel()

	// 0 -1- 1 -2- 2, plus a one-way 2→3 edge of weight 4.
	w := MustRows(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 2, 0},
		{0, 2, 0, 4},
		{0, 0, 0, 0},
	})
	d, err := matrix.ShortestPaths(hide{w})
	require.NoError(t, err)
	CompareClose(t, [][]float64{
		{0, 1, 3, 7},
		{1, 0, 2, 6},
		{3, 2, 0, 4},
		{7, 6, 4, 0},
	}, d, 0)

	// Input untouched.
	require.Zero(t, MustAt(t, w, 0, 2))
}

func TestShortestPaths_ShortcutAndAsymmetricWeights(t *testing.T) {
	t.Parallel()

	w := MustRows(t, [][]float64{
		{0, 5, 1},
		{2, 0, 1},
		{1, 1, 0},
	})
	d, err := matrix.ShortestPaths(w)
	require.NoError(t, err)
	// 0↔1 takes min(5,2)=2 directly; 0→2→1 also costs 2.
	CompareClose(t, [][]float64{
		{0, 2, 1},
		{2, 0, 1},
		{1, 1, 0},
	}, d, 0)
}

func TestShortestPaths_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.ShortestPaths(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.ShortestPaths(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.ShortestPaths(MustRows(t, [][]float64{{0, -1}, {-1, 0}}))
	require.ErrorIs(t, err, matrix.ErrNegativeEntry)

	_, err = matrix.ShortestPaths(MustRows(t, [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}))
	require.ErrorIs(t, err, matrix.ErrDisconnected)
	require.ErrorContains(t, err, "0↮2")
}
