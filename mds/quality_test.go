// SPDX-License-Identifier: MIT

package mds_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/katalvlaran/lvspectra/mds"
)

func TestPairwiseDistances(t *testing.T) {
	t.Parallel()
	d := mds.PairwiseDistances(mds.Embedding{{0, 0, 0}, {3, 4, 0}, {0, 0, 2}})
	require.Equal(t, [][]float64{
		{0, 5, 2},
		{5, 0, math.Sqrt(29)},
		{2, math.Sqrt(29), 0},
	}, d.ToRows())

	empty := mds.PairwiseDistances(nil)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

func TestStress(t *testing.T) {
	t.Parallel()
	d := distancesOf(t, tetra)

	s, err := mds.Stress(d, tetra)
	require.NoError(t, err)
	require.Zero(t, s)

	// Collapsing every point loses all distance: stress-1 is exactly 1.
	s, err = mds.Stress(d, make(mds.Embedding, 4))
	require.NoError(t, err)
	require.InDelta(t, 1, s, 1e-12)

	z, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	s, err = mds.Stress(z, make(mds.Embedding, 2))
	require.NoError(t, err)
	require.Zero(t, s)
	s, err = mds.Stress(z, mds.Embedding{{0, 0, 0}, {1, 0, 0}})
	require.NoError(t, err)
	require.True(t, math.IsInf(s, 1))

	_, err = mds.Stress(d, tetra[:2])
	require.ErrorIs(t, err, mds.ErrPointMismatch)
	_, err = mds.Stress(nil, tetra)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
