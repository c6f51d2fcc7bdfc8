// SPDX-License-Identifier: MIT

package spectral_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/katalvlaran/lvspectra/spectral"
)

func TestNewTriple_AddendumB(t *testing.T) {
	t.Parallel()
	tr, err := spectral.NewTriple(addendumB, 3, 1e-3)
	require.NoError(t, err)
	require.Equal(t, 3, tr.N())
	require.Equal(t, 1e-3, tr.Epsilon())

	pi := tr.Stationary()
	for i := range pi {
		require.InDelta(t, addendumBStationary[i], pi[i], 1e-9, "π[%d]", i)
	}

	// Generator rows sum to zero.
	l := tr.Generator()
	for i := 0; i < 3; i++ {
		require.InDelta(t, 0, l[i*3]+l[i*3+1]+l[i*3+2], 1e-12)
	}

	vals := tr.Eigenvalues()
	require.Len(t, vals, 3)
	require.InDelta(t, 0, vals[0], 1e-10) // ground state of a reversible-ish chain
	for k := 1; k < len(vals); k++ {
		require.GreaterOrEqual(t, vals[k], vals[k-1])
	}

	requireSymmetricFlat(t, tr.Dirac(), 3)

	cond := tr.Conditioning()
	require.InDelta(t, vals[1]-vals[0], cond.SpectralGap, 1e-15)
	require.Equal(t, 1e-3, cond.Epsilon)
	require.False(t, cond.IllConditioned)
	require.Zero(t, cond.MaxCommutatorNorm)
}

func TestNewTriple_DiracSpectrum(t *testing.T) {
	t.Parallel()
	const eps = 0.1
	tr, err := spectral.NewTriple(addendumB, 3, eps)
	require.NoError(t, err)

	// D's eigenvalues are 1/(ε + max(λ,0)) of −L_sym.
	var es mat.EigenSym
	require.True(t, es.Factorize(mat.NewSymDense(3, tr.Dirac()), false))
	got := es.Values(nil) // ascending
	lam := tr.Eigenvalues()
	for k := range lam {
		want := 1 / (eps + math.Max(lam[len(lam)-1-k], 0))
		require.InDelta(t, want, got[k], 1e-9)
	}
}

func TestNewTriple_StationaryIsLeftFixedPoint(t *testing.T) {
	t.Parallel()
	chains := [][]float64{
		{0.7, 0.2, 0.1, 0.15, 0.7, 0.15, 0.1, 0.2, 0.7},
		{0.99, 0.01, 0, 0.01, 0.98, 0.01, 0, 0.01, 0.99},
		{0, 1, 1, 0},
		{1},
	}
	for _, p := range chains {
		n := int(math.Sqrt(float64(len(p))))
		tr, err := spectral.NewTriple(p, n, 1e-3)
		require.NoError(t, err)
		pi := tr.Stationary()
		sum := 0.0
		for j := 0; j < n; j++ {
			require.Greater(t, pi[j], 0.0)
			sum += pi[j]
			s := 0.0
			for i := 0; i < n; i++ {
				s += pi[i] * p[i*n+j]
			}
			require.InDelta(t, pi[j], s, 1e-9, "(πP)[%d]", j)
		}
		require.InDelta(t, 1, sum, 1e-12)
	}
}

func TestNewTriple_Singleton(t *testing.T) {
	t.Parallel()
	tr, err := spectral.NewTriple([]float64{1}, 1, 0.5)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, tr.Stationary())
	require.InDelta(t, 2, tr.Dirac()[0], 1e-12)
	require.True(t, tr.Conditioning().IllConditioned) // no gap to speak of
}

func TestNewTripleFromGenerator(t *testing.T) {
	t.Parallel()
	l := make([]float64, len(addendumB))
	copy(l, addendumB)
	for i := 0; i < 3; i++ {
		l[i*3+i] -= 1
	}
	fromGen, err := spectral.NewTripleFromGenerator(l, 3, 1e-3)
	require.NoError(t, err)
	fromP, err := spectral.NewTriple(addendumB, 3, 1e-3)
	require.NoError(t, err)

	for k, v := range fromP.Eigenvalues() {
		require.InDelta(t, v, fromGen.Eigenvalues()[k], 1e-12)
	}

	_, err = spectral.NewTripleFromGenerator(addendumB, 3, 1e-3)
	require.ErrorIs(t, err, spectral.ErrRowSumsNotZero)
}

func TestNewTriple_Errors(t *testing.T) {
	t.Parallel()

	_, err := spectral.NewTriple([]float64{1, 0, 0}, 2, 1e-3)
	require.ErrorIs(t, err, spectral.ErrNotSquare)
	_, err = spectral.NewTriple(nil, 0, 1e-3)
	require.ErrorIs(t, err, spectral.ErrNotSquare)

	_, err = spectral.NewTriple([]float64{0.5, math.NaN(), 0.5, 0.5}, 2, 1e-3)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = spectral.NewTriple([]float64{0.5, 0.6, 0.5, 0.5}, 2, 1e-3)
	require.ErrorIs(t, err, spectral.ErrRowSumsNotOne)
	var rse *spectral.RowSumError
	require.True(t, errors.As(err, &rse))
	require.Equal(t, 1.0, rse.Target)
	require.InDelta(t, 0.1, rse.MaxAbs, 1e-12)

	for _, eps := range []float64{0, -1, math.NaN()} {
		_, err = spectral.NewTriple(addendumB, 3, eps)
		require.ErrorIs(t, err, spectral.ErrNonPositiveEpsilon, "eps=%v", eps)
	}
}
