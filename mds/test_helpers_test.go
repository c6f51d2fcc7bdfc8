// SPDX-License-Identifier: MIT

package mds_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/katalvlaran/lvspectra/mds"
)

// tetra is four points whose centred coordinates have orthogonal columns with
// distinct norms, so the Gram spectrum (36, 16, 4) is well separated.
var tetra = mds.Embedding{
	{4, 3, 2},
	{4, -1, 0},
	{-2, 3, 0},
	{-2, -1, 2},
}

// distancesOf builds the exact Euclidean distance matrix of points.
func distancesOf(t *testing.T, points mds.Embedding) *matrix.Dense {
	t.Helper()
	d := mds.PairwiseDistances(points)
	require.Equal(t, len(points), d.Rows())

	return d
}

// requireSameDistances asserts every pairwise distance of got matches want.
func requireSameDistances(t *testing.T, want matrix.Matrix, got mds.Embedding, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), len(got))
	var i, j int
	for i = 0; i < len(got); i++ {
		for j = i + 1; j < len(got); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, w, mds.Distance(got[i], got[j]), tol, "d(%d,%d)", i, j)
		}
	}
}

// requireFinite asserts no coordinate is NaN or ±Inf.
func requireFinite(t *testing.T, points mds.Embedding) {
	t.Helper()
	for i, p := range points {
		for k, v := range p {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "point %d axis %d = %v", i, k, v)
		}
	}
}
