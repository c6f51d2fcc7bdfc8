// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspectra/matrix"
)

// Numerical thresholds of the reference construction.
const (
	// RowSumTolerance bounds |Σ_j P[i,j] − 1| (or |Σ_j L[i,j]|).
	RowSumTolerance = 1e-9

	// StationaryFloor clamps tiny or negative null-vector entries before
	// normalisation so π stays strictly positive.
	StationaryFloor = 1e-15

	// StationaryTolerance bounds |Σπ − 1| after normalisation.
	StationaryTolerance = 1e-9

	// GroundStateTolerance bounds |λ₀|; larger values flag ill-conditioning.
	GroundStateTolerance = 1e-8

	// MinGap is the absolute spectral-gap floor below which a triple is
	// ill-conditioned.
	MinGap = 1e-8

	// RelativeGap flags gaps smaller than RelativeGap·ε.
	RelativeGap = 1e-2
)

// Triple is the spectral triple of a finite Markov chain: the generator L,
// its stationary distribution π and the regulariser ε, together with the
// derived spectrum of −L_sym and the Dirac operator.
//
// A Triple is immutable after construction and safe for concurrent reads.
type Triple struct {
	n          int
	epsilon    float64
	generator  []float64 // L, row-major
	stationary []float64 // π
	values     []float64 // spectrum of −L_sym, ascending
	dirac      []float64 // D, row-major, exactly symmetric
}

// NewTriple builds the triple of a row-stochastic transition matrix
// (flat, row-major, n×n) with generator L = P − I.
//
// Implementation:
//   - Stage 1: validate shape, finiteness, row sums and ε.
//   - Stage 2: π = right singular vector of Lᵀ for the smallest singular
//     value, sign-fixed to a positive sum, floored and normalised.
//   - Stage 3: spectrum and Dirac operator of −L_sym.
//
// Errors: ErrNotSquare, matrix.ErrNaNInf, *RowSumError, ErrNonPositiveEpsilon,
// ErrStationaryNonPositive, ErrStationaryNotNormalized, ErrDecomposition.
// Complexity: O(n³).
func NewTriple(transition []float64, n int, epsilon float64) (*Triple, error) {
	if err := validateFlat(transition, n); err != nil {
		return nil, spectralErrorf(opNewTriple, err)
	}
	if err := validateRowSums(transition, n, 1); err != nil {
		return nil, spectralErrorf(opNewTriple, err)
	}
	l := make([]float64, n*n)
	copy(l, transition)
	var i int
	for i = 0; i < n; i++ {
		l[i*n+i] -= 1
	}
	t, err := newTriple(l, n, epsilon)
	if err != nil {
		return nil, spectralErrorf(opNewTriple, err)
	}

	return t, nil
}

// NewTripleFromGenerator builds the triple of a generator L whose rows sum
// to zero (flat, row-major, n×n).
//
// Errors: as NewTriple, with ErrRowSumsNotZero for the row-sum check.
func NewTripleFromGenerator(generator []float64, n int, epsilon float64) (*Triple, error) {
	if err := validateFlat(generator, n); err != nil {
		return nil, spectralErrorf(opFromGenerator, err)
	}
	if err := validateRowSums(generator, n, 0); err != nil {
		return nil, spectralErrorf(opFromGenerator, err)
	}
	l := make([]float64, n*n)
	copy(l, generator)
	t, err := newTriple(l, n, epsilon)
	if err != nil {
		return nil, spectralErrorf(opFromGenerator, err)
	}

	return t, nil
}

func newTriple(l []float64, n int, epsilon float64) (*Triple, error) {
	pi, err := stationaryOf(l, n)
	if err != nil {
		return nil, err
	}
	if !(epsilon > 0) {
		return nil, fmt.Errorf("epsilon=%g: %w", epsilon, ErrNonPositiveEpsilon)
	}
	values, vectors, err := symmetrizedSpectrum(l, pi, n)
	if err != nil {
		return nil, err
	}

	return &Triple{
		n:          n,
		epsilon:    epsilon,
		generator:  l,
		stationary: pi,
		values:     values,
		dirac:      diracOperator(values, vectors, n, epsilon),
	}, nil
}

// N returns the number of states.
func (t *Triple) N() int { return t.n }

// Epsilon returns the regulariser.
func (t *Triple) Epsilon() float64 { return t.epsilon }

// Stationary returns a copy of π.
func (t *Triple) Stationary() []float64 { return append([]float64(nil), t.stationary...) }

// Eigenvalues returns a copy of the spectrum of −L_sym in ascending order.
func (t *Triple) Eigenvalues() []float64 { return append([]float64(nil), t.values...) }

// Generator returns a copy of L (row-major).
func (t *Triple) Generator() []float64 { return append([]float64(nil), t.generator...) }

// Dirac returns a copy of D (row-major).
func (t *Triple) Dirac() []float64 { return append([]float64(nil), t.dirac...) }

// Conditioning reports the spectral gap λ₁ − λ₀ and whether the triple is
// ill-conditioned: |λ₀| > GroundStateTolerance, gap < MinGap or
// gap < RelativeGap·ε. MaxCommutatorNorm is left 0; distance solvers fill it.
func (t *Triple) Conditioning() Conditioning {
	var l0, l1 float64
	if len(t.values) > 0 {
		l0 = t.values[0]
	}
	if len(t.values) > 1 {
		l1 = t.values[1]
	}
	gap := math.Max(l1-l0, 0)

	return Conditioning{
		SpectralGap:    gap,
		Epsilon:        t.epsilon,
		IllConditioned: math.Abs(l0) > GroundStateTolerance || gap < MinGap || gap < RelativeGap*t.epsilon,
	}
}

// validateFlat checks n ≥ 1, len = n² and finiteness.
func validateFlat(flat []float64, n int) error {
	if n < 1 || len(flat) != n*n {
		return fmt.Errorf("%d values for n=%d: %w", len(flat), n, ErrNotSquare)
	}
	for k, v := range flat {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("(%d,%d): %w", k/n, k%n, matrix.ErrNaNInf)
		}
	}

	return nil
}

// validateRowSums rejects max_i |Σ_j M[i,j] − target| > RowSumTolerance.
func validateRowSums(flat []float64, n int, target float64) error {
	maxAbs := 0.0
	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		s = matrix.ZeroSum
		for j = 0; j < n; j++ {
			s += flat[i*n+j]
		}
		maxAbs = math.Max(maxAbs, math.Abs(s-target))
	}
	if maxAbs > RowSumTolerance {
		return &RowSumError{Target: target, MaxAbs: maxAbs}
	}

	return nil
}

// stationaryOf returns π with πL = 0 from the SVD of Lᵀ.
func stationaryOf(l []float64, n int) ([]float64, error) {
	var lt mat.Dense
	lt.CloneFrom(mat.NewDense(n, n, l).T())

	var svd mat.SVD
	if !svd.Factorize(&lt, mat.SVDFull) {
		return nil, fmt.Errorf("stationary SVD: %w", ErrDecomposition)
	}
	sv := svd.Values(nil)
	idx := 0
	for k := range sv {
		if sv[k] < sv[idx] {
			idx = k
		}
	}
	var v mat.Dense
	svd.VTo(&v)

	pi := make([]float64, n)
	sum := 0.0
	var k int
	for k = 0; k < n; k++ {
		pi[k] = v.At(k, idx)
		sum += pi[k]
	}
	// Singular vectors are defined up to sign.
	if sum < 0 {
		for k = 0; k < n; k++ {
			pi[k] = -pi[k]
		}
	}
	sum = 0
	for k = 0; k < n; k++ {
		if pi[k] < StationaryFloor {
			pi[k] = StationaryFloor
		}
		sum += pi[k]
	}
	for k = 0; k < n; k++ {
		pi[k] /= sum
	}

	return pi, validateStationary(pi)
}

func validateStationary(pi []float64) error {
	sum := 0.0
	for i, p := range pi {
		if !(p > 0) {
			return fmt.Errorf("π[%d]=%g: %w", i, p, ErrStationaryNonPositive)
		}
		sum += p
	}
	if math.Abs(sum-1) > StationaryTolerance {
		return fmt.Errorf("Σπ=%g: %w", sum, ErrStationaryNotNormalized)
	}

	return nil
}

// symmetrizedSpectrum factorises −L_sym with
// L_sym = ½(Π^{½} L Π^{−½} + Π^{−½} Lᵀ Π^{½}).
// Returns ascending eigenvalues and the eigenvector matrix (columns).
func symmetrizedSpectrum(l, pi []float64, n int) ([]float64, *mat.Dense, error) {
	sq := make([]float64, n)
	for i, p := range pi {
		sq[i] = math.Sqrt(p)
	}
	neg := mat.NewSymDense(n, nil)
	var a, b int
	for a = 0; a < n; a++ {
		for b = a; b < n; b++ {
			lsym := 0.5 * (sq[a]*l[a*n+b]/sq[b] + sq[b]*l[b*n+a]/sq[a])
			neg.SetSym(a, b, -lsym)
		}
	}

	var es mat.EigenSym
	if !es.Factorize(neg, true) {
		return nil, nil, fmt.Errorf("generator spectrum: %w", ErrDecomposition)
	}
	var u mat.Dense
	es.VectorsTo(&u)

	return es.Values(nil), &u, nil
}

// diracOperator returns D = U·diag(1/(ε + max(λ,0)))·Uᵀ, mirrored so it is
// exactly symmetric.
func diracOperator(values []float64, u *mat.Dense, n int, epsilon float64) []float64 {
	w := make([]float64, n)
	for k, lam := range values {
		w[k] = 1 / (epsilon + math.Max(lam, 0))
	}
	d := make([]float64, n*n)
	var a, b, k int
	var s float64
	for a = 0; a < n; a++ {
		for b = a; b < n; b++ {
			s = matrix.ZeroSum
			for k = 0; k < n; k++ {
				s += u.At(a, k) * w[k] * u.At(b, k)
			}
			d[a*n+b] = s
			d[b*n+a] = s
		}
	}

	return d
}
