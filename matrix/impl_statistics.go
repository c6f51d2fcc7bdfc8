// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the per-row, per-column and grand means used by centering
//     transforms (classical MDS double-centering builds on these).
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; sums accumulate in that order.
//   - Zero-size matrices yield empty mean slices and a grand mean of 0.

package matrix

// Operation name constants for unified error wrapping.
const (
	opRowMeans  = "RowMeans"
	opColMeans  = "ColMeans"
	opGrandMean = "GrandMean"
)

// RowMeans returns Σ_j X[i,j] / c for every row i.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time, O(r) space.
func RowMeans(x Matrix) ([]float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	src, err := flatOf(x)
	if err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	r, c := x.Rows(), x.Cols()
	means := make([]float64, r)
	if c == 0 {
		return means, nil
	}
	var i, j int
	var s float64
	for i = 0; i < r; i++ {
		s = ZeroSum
		for j = 0; j < c; j++ {
			s += src[i*c+j]
		}
		means[i] = s / float64(c)
	}

	return means, nil
}

// ColMeans returns Σ_i X[i,j] / r for every column j.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time, O(c) space.
func ColMeans(x Matrix) ([]float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}
	src, err := flatOf(x)
	if err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}
	r, c := x.Rows(), x.Cols()
	means := make([]float64, c)
	if r == 0 {
		return means, nil
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			means[j] += src[i*c+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}

	return means, nil
}

// GrandMean returns the average of all r*c entries (0 for an empty matrix).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func GrandMean(x Matrix) (float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return 0, matrixErrorf(opGrandMean, err)
	}
	src, err := flatOf(x)
	if err != nil {
		return 0, matrixErrorf(opGrandMean, err)
	}
	if len(src) == 0 {
		return 0, nil
	}
	s := ZeroSum
	for _, v := range src {
		s += v
	}

	return s / float64(len(src)), nil
}
