// SPDX-License-Identifier: MIT

package spectral_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspectra/spectral"
)

func TestReference_AddendumB(t *testing.T) {
	t.Parallel()
	res, err := fastReference().ComputeSpectralTriple(addendumB, 3, 1e-3)
	require.NoError(t, err)
	require.NoError(t, res.Validate())

	require.Equal(t, 3, res.N)
	for i, p := range res.Stationary {
		require.InDelta(t, addendumBStationary[i], p, 1e-9)
	}
	requireSymmetricFlat(t, res.Dirac, 3)
	requireSymmetricFlat(t, res.Distances, 3)
	for i := 0; i < 3; i++ {
		require.Zero(t, res.Distances[i*3+i])
		for j := 0; j < 3; j++ {
			if i != j {
				require.Greater(t, res.Distances[i*3+j], 0.0, "d(%d,%d)", i, j)
			}
		}
	}
	require.Greater(t, res.Conditioning.MaxCommutatorNorm, 0.0)
	require.LessOrEqual(t, res.Conditioning.MaxCommutatorNorm, 1.0)

	d, err := res.DistanceMatrix()
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
}

func TestReference_DeterministicAcrossWorkers(t *testing.T) {
	t.Parallel()
	weak := []float64{0.7, 0.2, 0.1, 0.15, 0.7, 0.15, 0.1, 0.2, 0.7}

	one, err := fastReference(spectral.WithWorkers(1)).ComputeSpectralTriple(weak, 3, 1e-2)
	require.NoError(t, err)
	many, err := fastReference(spectral.WithWorkers(4)).ComputeSpectralTriple(weak, 3, 1e-2)
	require.NoError(t, err)
	require.Equal(t, one.Distances, many.Distances)

	other, err := fastReference(spectral.WithReferenceSeed(7)).ComputeSpectralTriple(weak, 3, 1e-2)
	require.NoError(t, err)
	require.Len(t, other.Distances, 9)
}

func TestReference_ConnesDistance(t *testing.T) {
	t.Parallel()
	ref := fastReference()
	res, err := ref.ComputeSpectralTriple(addendumB, 3, 1e-3)
	require.NoError(t, err)

	d01, err := ref.ConnesDistance(addendumB, 3, 1e-3, 0, 1)
	require.NoError(t, err)
	require.Equal(t, res.Distances[1], d01)

	d10, err := ref.ConnesDistance(addendumB, 3, 1e-3, 1, 0)
	require.NoError(t, err)
	require.Equal(t, d01, d10)

	d00, err := ref.ConnesDistance(addendumB, 3, 1e-3, 2, 2)
	require.NoError(t, err)
	require.Zero(t, d00)

	_, err = ref.ConnesDistance(addendumB, 3, 1e-3, 0, 3)
	require.ErrorIs(t, err, spectral.ErrStateOutOfRange)
	_, err = ref.ConnesDistance(addendumB, 3, 1e-3, -1, 0)
	require.ErrorIs(t, err, spectral.ErrStateOutOfRange)
}

func TestReference_Singleton(t *testing.T) {
	t.Parallel()
	res, err := spectral.NewReference().ComputeSpectralTriple([]float64{1}, 1, 1e-3)
	require.NoError(t, err)
	require.NoError(t, res.Validate())
	require.Equal(t, []float64{0}, res.Distances)
	require.Zero(t, res.Conditioning.MaxCommutatorNorm)
}

func TestReference_Errors(t *testing.T) {
	t.Parallel()
	ref := fastReference()

	_, err := ref.ComputeSpectralTriple([]float64{0.5, 0.5, 0.5}, 2, 1e-3)
	require.ErrorIs(t, err, spectral.ErrNotSquare)
	_, err = ref.ComputeSpectralTriple(addendumB, 3, 0)
	require.ErrorIs(t, err, spectral.ErrNonPositiveEpsilon)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ref.Compute(ctx, addendumB, 3, 1e-3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReference_Options(t *testing.T) {
	t.Parallel()
	require.Equal(t, 3, spectral.NewReference(spectral.WithWorkers(3)).Workers())
	require.Positive(t, spectral.NewReference(spectral.WithWorkers(0)).Workers())
	require.Panics(t, func() { spectral.WithRestarts(-1) })
	require.Panics(t, func() { spectral.WithIterations(-1) })
	require.Panics(t, func() { spectral.WithStep(0) })
}
