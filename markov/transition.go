// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvspectra/matrix"
)

// DefaultTolerance bounds |Σ_j P[i,j] − 1| accepted by ValidateTransition.
const DefaultTolerance = 1e-9

// ValidateTransition checks that p is a square, finite, non-negative matrix
// whose rows each sum to 1 within tol.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrBadShape
// (0×0), matrix.ErrNaNInf, matrix.ErrNegativeEntry, *RowError.
// Complexity: O(n²).
func ValidateTransition(p matrix.Matrix, tol float64) error {
	if err := matrix.ValidateSquareNonNil(p); err != nil {
		return markovErrorf(opValidate, err)
	}
	if p.Rows() == 0 {
		return markovErrorf(opValidate, matrix.ErrBadShape)
	}
	if err := matrix.ValidateFinite(p); err != nil {
		return markovErrorf(opValidate, err)
	}
	if err := matrix.ValidateNonNegative(p); err != nil {
		return markovErrorf(opValidate, err)
	}
	sums, err := RowSums(p)
	if err != nil {
		return markovErrorf(opValidate, err)
	}
	tol = math.Abs(tol)
	for i, s := range sums {
		if math.Abs(s-1) > tol {
			return markovErrorf(opValidate, &RowError{Row: i, Sum: s})
		}
	}

	return nil
}

// RowSums returns Σ_j P[i,j] for every row.
// Errors: matrix.ErrNilMatrix.
func RowSums(p matrix.Matrix) ([]float64, error) {
	means, err := matrix.RowMeans(p)
	if err != nil {
		return nil, err
	}
	c := float64(p.Cols())
	for i := range means {
		means[i] *= c
	}

	return means, nil
}

// NormalizeRows returns a row-stochastic copy of p.
//
// Behavior highlights:
//   - Negative and non-finite entries are clamped to 0 first.
//   - A row summing to 0 becomes a self-loop (P[i,i] = 1).
//   - p itself is not modified.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrBadShape.
// Complexity: O(n²).
func NormalizeRows(p matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(p); err != nil {
		return nil, markovErrorf(opNormalize, err)
	}
	n := p.Rows()
	if n == 0 {
		return nil, markovErrorf(opNormalize, matrix.ErrBadShape)
	}
	flat, err := matrix.CopyFlat(p)
	if err != nil {
		return nil, markovErrorf(opNormalize, err)
	}

	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		s = matrix.ZeroSum
		for j = 0; j < n; j++ {
			if v := flat[i*n+j]; math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				flat[i*n+j] = 0
			}
			s += flat[i*n+j]
		}
		if s == 0 {
			flat[i*n+i] = 1
			continue
		}
		for j = 0; j < n; j++ {
			flat[i*n+j] /= s
		}
	}

	return matrix.NewDenseFromFlat(n, n, flat)
}

// Identity returns the n-state chain in which every state is absorbing.
// Errors: matrix.ErrInvalidDimensions (n ≤ 0).
func Identity(n int) (*matrix.Dense, error) {
	return matrix.NewIdentity(n)
}

// Flatten returns p in row-major order, the layout of spectral.Provider.
// Errors: matrix.ErrNilMatrix.
func Flatten(p matrix.Matrix) ([]float64, error) {
	flat, err := matrix.CopyFlat(p)
	if err != nil {
		return nil, markovErrorf(opFlatten, err)
	}

	return flat, nil
}

// DefaultLabels returns "State 1" … "State n".
func DefaultLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("State %d", i+1)
	}

	return labels
}
