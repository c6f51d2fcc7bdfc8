// SPDX-License-Identifier: MIT

package mds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvspectra/matrix"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point3) float64 {
	var s, d float64
	for k := 0; k < Dimensions; k++ {
		d = a[k] - b[k]
		s += d * d
	}

	return math.Sqrt(s)
}

// PairwiseDistances returns the symmetric n×n Euclidean distance matrix of
// points (0×0 for an empty embedding).
// Complexity: O(n²).
func PairwiseDistances(points Embedding) *matrix.Dense {
	n := len(points)
	if n == 0 {
		empty, _ := matrix.NewDenseFromRows(nil)
		return empty
	}
	flat := make([]float64, n*n)
	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(points[i], points[j])
			flat[i*n+j] = d
			flat[j*n+i] = d
		}
	}
	out, _ := matrix.NewDenseFromFlat(n, n, flat) // shape and values valid by construction

	return out
}

// Stress returns Kruskal's stress-1 of an embedding against the target
// distances d, taken over the strict upper triangle:
//
//	sqrt( Σ (d_ij − δ_ij)² / Σ d_ij² )
//
// where δ are the embedded distances. 0 means a perfect fit; a target with
// Σ d² = 0 yields 0 when the embedding is also collapsed.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrPointMismatch.
// Complexity: O(n²).
func Stress(d matrix.Matrix, points Embedding) (float64, error) {
	if err := matrix.ValidateSquareNonNil(d); err != nil {
		return 0, mdsErrorf(opStress, err)
	}
	n := d.Rows()
	if n != len(points) {
		return 0, mdsErrorf(opStress, fmt.Errorf("%d points for %dx%d: %w", len(points), n, n, ErrPointMismatch))
	}
	flat, err := matrix.CopyFlat(d)
	if err != nil {
		return 0, mdsErrorf(opStress, err)
	}

	var num, den, target, diff float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			target = flat[i*n+j]
			diff = target - Distance(points[i], points[j])
			num += diff * diff
			den += target * target
		}
	}
	if den == 0 {
		if num == 0 {
			return 0, nil
		}
		return math.Inf(1), nil
	}

	return math.Sqrt(num / den), nil
}
