// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvspectra/matrix"
)

// ContractTolerance bounds |Σπ − 1| accepted by Result.Validate.
const ContractTolerance = 1e-6

// Provider computes a spectral triple from a flat row-major n×n transition
// matrix. Implementations may run out of process; callers treat failures as
// opaque errors and never retry automatically.
type Provider interface {
	ComputeSpectralTriple(transition []float64, n int, epsilon float64) (*Result, error)
}

// ProviderFunc adapts an ordinary function to Provider.
type ProviderFunc func(transition []float64, n int, epsilon float64) (*Result, error)

// ComputeSpectralTriple calls f.
func (f ProviderFunc) ComputeSpectralTriple(transition []float64, n int, epsilon float64) (*Result, error) {
	return f(transition, n, epsilon)
}

// Result is the provider output. Flat fields are row-major n×n.
type Result struct {
	N            int          `json:"n" yaml:"n"`
	Stationary   []float64    `json:"stationary" yaml:"stationary"`
	Eigenvalues  []float64    `json:"eigenvalues" yaml:"eigenvalues"`
	Dirac        []float64    `json:"dirac,omitempty" yaml:"dirac,omitempty"`
	Distances    []float64    `json:"distances" yaml:"distances"`
	Conditioning Conditioning `json:"conditioning" yaml:"conditioning"`
}

// Conditioning summarises how trustworthy the distances are.
type Conditioning struct {
	SpectralGap       float64 `json:"spectral_gap" yaml:"spectral_gap"`
	Epsilon           float64 `json:"epsilon" yaml:"epsilon"`
	MaxCommutatorNorm float64 `json:"max_commutator_norm" yaml:"max_commutator_norm"`
	IllConditioned    bool    `json:"ill_conditioned" yaml:"ill_conditioned"`
}

// Validate checks the data contract:
//   - N ≥ 1, len(Stationary) = len(Eigenvalues) = N, len(Distances) = N²,
//     len(Dirac) ∈ {0, N²};
//   - π finite, non-negative, Σπ = 1 within ContractTolerance;
//   - distances finite and non-negative.
//
// Violations wrap ErrContract and name the offending field.
func (r *Result) Validate() error {
	if r == nil {
		return spectralErrorf(opValidate, fmt.Errorf("nil result: %w", ErrContract))
	}
	n := r.N
	if n < 1 {
		return contractErrorf("n", "n=%d < 1", n)
	}
	if len(r.Stationary) != n {
		return contractErrorf("stationary", "len %d, want %d", len(r.Stationary), n)
	}
	if len(r.Eigenvalues) != n {
		return contractErrorf("eigenvalues", "len %d, want %d", len(r.Eigenvalues), n)
	}
	if len(r.Distances) != n*n {
		return contractErrorf("distances", "len %d, want %d", len(r.Distances), n*n)
	}
	if len(r.Dirac) != 0 && len(r.Dirac) != n*n {
		return contractErrorf("dirac", "len %d, want 0 or %d", len(r.Dirac), n*n)
	}

	sum := 0.0
	for i, p := range r.Stationary {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return contractErrorf("stationary", "[%d]=%g", i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > ContractTolerance {
		return contractErrorf("stationary", "sum %g, want 1", sum)
	}
	for k, d := range r.Distances {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return contractErrorf("distances", "(%d,%d)=%g", k/n, k%n, d)
		}
	}

	return nil
}

// DistanceMatrix unpacks Distances into an n×n matrix, ready for mds.Embed3D.
func (r *Result) DistanceMatrix() (*matrix.Dense, error) {
	return UnpackSquare(r.Distances, r.N)
}

// DiracMatrix unpacks Dirac into an n×n matrix.
func (r *Result) DiracMatrix() (*matrix.Dense, error) {
	return UnpackSquare(r.Dirac, r.N)
}

// UnpackSquare turns a flat row-major buffer into an n×n matrix.
// n = 0 with an empty buffer yields a 0×0 matrix.
// Errors: ErrNotSquare (n < 0 or len(flat) ≠ n²), matrix.ErrNaNInf.
func UnpackSquare(flat []float64, n int) (*matrix.Dense, error) {
	if n < 0 || len(flat) != n*n {
		return nil, spectralErrorf(opUnpack, fmt.Errorf("%d values for n=%d: %w", len(flat), n, ErrNotSquare))
	}
	if n == 0 {
		return matrix.NewDenseFromRows(nil)
	}
	m, err := matrix.NewDenseFromFlat(n, n, flat)
	if err != nil {
		return nil, spectralErrorf(opUnpack, err)
	}

	return m, nil
}

func contractErrorf(field, format string, args ...any) error {
	return spectralErrorf(opValidate, fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), ErrContract))
}
