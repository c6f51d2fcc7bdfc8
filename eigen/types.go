// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"github.com/katalvlaran/lvspectra/matrix"
)

// Decomposition is the result of Decompose.
//
//   - Values are sorted descending.
//   - Column k of Vectors is the unit-norm eigenvector for Values[k].
//   - Sweeps, OffNorm and Converged expose the final Jacobi state so callers
//     can tell a budget-exhausted result from a converged one.
//
// The caller owns every field; nothing aliases the input matrix.
type Decomposition struct {
	Values    []float64
	Vectors   *matrix.Dense
	Sweeps    int
	OffNorm   float64
	Converged bool
}

// N returns the problem dimension.
func (d *Decomposition) N() int { return len(d.Values) }

// Vector returns a copy of the k-th eigenvector (column k of Vectors).
func (d *Decomposition) Vector(k int) ([]float64, error) {
	if k < 0 || k >= len(d.Values) {
		return nil, fmt.Errorf("eigen.Decomposition.Vector(%d): %w", k, matrix.ErrOutOfRange)
	}

	return d.Vectors.Col(k)
}

// Trace returns Σλ, which equals the trace of the decomposed matrix.
func (d *Decomposition) Trace() float64 {
	s := matrix.ZeroSum
	for _, v := range d.Values {
		s += v
	}

	return s
}

// Reconstruct returns V·diag(λ)·Vᵀ.
// Complexity: O(n³).
func (d *Decomposition) Reconstruct() (*matrix.Dense, error) {
	n := d.N()
	if n == 0 {
		return nil, fmt.Errorf("eigen.Decomposition.Reconstruct: %w", matrix.ErrBadShape)
	}
	v := d.Vectors.Flat()
	out := make([]float64, n*n)
	var i, j, k int
	var s float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s = matrix.ZeroSum
			for k = 0; k < n; k++ {
				s += v[i*n+k] * d.Values[k] * v[j*n+k]
			}
			out[i*n+j] = s
			out[j*n+i] = s
		}
	}

	return matrix.NewDenseFromFlat(n, n, out)
}

// Pair is one eigenpair produced by PowerTopK.
//
// Iterations counts power steps spent on this pair; Converged is false when
// the iteration cap was reached first (the pair is still the best estimate).
type Pair struct {
	Value      float64
	Vector     []float64
	Iterations int
	Converged  bool
}
