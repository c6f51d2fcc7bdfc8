// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Turn a weighted adjacency matrix into graph-geodesic distances so a
//     graph can be fed to classical MDS like any other distance matrix.
//
// Contract:
//   - Square, finite, non-negative input; 0 off the diagonal means "no edge".
//   - Edges are undirected: the shorter of A[i,j] and A[j,i] wins.
//   - Every pair must be connected; otherwise ErrDisconnected.

package matrix

import (
	"fmt"
	"math"
)

const opShortestPaths = "ShortestPaths"

// ShortestPaths returns the all-pairs shortest-path distances of the
// undirected graph whose edge weights are the non-zero off-diagonal entries
// of w. The result is symmetric with a zero diagonal.
//
// Implementation:
//   - Stage 1: validate (non-nil, square, finite, non-negative).
//   - Stage 2: initDistances maps missing edges to +Inf.
//   - Stage 3: floydWarshallInPlace closes the distances (k → i → j).
//   - Stage 4: any remaining +Inf reports the first unreachable pair.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNegativeEntry,
// ErrDisconnected.
// Complexity: Time O(n³), Space O(n²).
func ShortestPaths(w Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(w); err != nil {
		return nil, matrixErrorf(opShortestPaths, err)
	}
	if err := ValidateFinite(w); err != nil {
		return nil, matrixErrorf(opShortestPaths, err)
	}
	if err := ValidateNonNegative(w); err != nil {
		return nil, matrixErrorf(opShortestPaths, err)
	}
	d, err := initDistances(w)
	if err != nil {
		return nil, matrixErrorf(opShortestPaths, err)
	}
	floydWarshallInPlace(d)

	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.IsInf(d.data[i*n+j], 1) {
				return nil, matrixErrorf(opShortestPaths, fmt.Errorf("%d↮%d: %w", i, j, ErrDisconnected))
			}
		}
	}

	return d, nil
}

// initDistances builds the edge-distance matrix of w: diagonal 0, missing
// edges +Inf, each edge the minimum of both directions.
func initDistances(w Matrix) (*Dense, error) {
	src, err := flatOf(w)
	if err != nil {
		return nil, err
	}
	n := w.Rows()
	d, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	var i, j int
	var a, b, v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, b = src[i*n+j], src[j*n+i]
			switch {
			case a == 0 && b == 0:
				v = inf
			case a == 0:
				v = b
			case b == 0:
				v = a
			default:
				v = math.Min(a, b)
			}
			d.data[i*n+j] = v
			d.data[j*n+i] = v
		}
	}

	return d, nil
}

// floydWarshallInPlace runs the APSP closure on a square *Dense.
// +Inf denotes "no path" and the diagonal must already be 0.
// Loop order is fixed (k → i → j); ties keep the existing value.
// Time: O(n³); extra space: O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
