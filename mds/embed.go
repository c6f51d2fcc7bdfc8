// SPDX-License-Identifier: MIT

package mds

import (
	"math"

	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/matrix"
)

// Point3 is a point in 3-D space.
type Point3 [Dimensions]float64

// Embedding holds one Point3 per row of the input distance matrix.
type Embedding []Point3

// Embed3D computes the classical MDS embedding of a square distance matrix.
//
// Implementation:
//   - Stage 1: nil or 0×0 input yields an empty embedding.
//   - Stage 2: B = DoubleCenter(d).
//   - Stage 3: top min(3, n) eigenpairs of B via eigen.PowerTopK.
//   - Stage 4: X[i][k] = √λ_k · v_k[i] for λ_k > 0; other coordinates stay 0.
//
// Behavior highlights:
//   - Symmetry is not enforced; slightly asymmetric input is embedded as is.
//   - Non-Euclidean input produces non-positive eigenvalues whose axes are
//     zeroed, never NaN.
//   - An all-zero distance matrix embeds every point at the origin.
//
// Errors:
//   - matrix.ErrDimensionMismatch (non-square), matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(n² + 3·maxIter·n²), Space O(n²).
func Embed3D(d matrix.Matrix, opts ...Option) (Embedding, error) {
	if matrix.ValidateNotNil(d) != nil {
		return Embedding{}, nil
	}
	if d.Rows() == 0 && d.Cols() == 0 {
		return Embedding{}, nil
	}
	o := gatherOptions(opts...)

	b, err := DoubleCenter(d)
	if err != nil {
		return nil, mdsErrorf(opEmbed3D, err)
	}
	n := b.Rows()
	pairs, err := eigen.PowerTopK(b, min(Dimensions, n), o.power...)
	if err != nil {
		return nil, mdsErrorf(opEmbed3D, err)
	}

	out := make(Embedding, n)
	var i int
	var s float64
	for k, p := range pairs {
		if p.Value <= 0 {
			continue
		}
		s = math.Sqrt(p.Value)
		for i = 0; i < n; i++ {
			out[i][k] = s * p.Vector[i]
		}
	}

	return out, nil
}

// EmbedGraph embeds the undirected weighted graph w (0 = no edge) by
// running Embed3D on its shortest-path distances.
//
// Errors: those of matrix.ShortestPaths (including matrix.ErrDisconnected)
// and Embed3D.
func EmbedGraph(w matrix.Matrix, opts ...Option) (Embedding, error) {
	d, err := matrix.ShortestPaths(w)
	if err != nil {
		return nil, mdsErrorf(opEmbedGraph, err)
	}

	return Embed3D(d, opts...)
}

// DoubleCenter returns B = −½·J·D²·J where J is the centering matrix, i.e.
// B[i,j] = −½(D²[i,j] − rowMean_i − colMean_j + grandMean) over squared
// distances.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// matrix.ErrBadShape (0×0), matrix.ErrNaNInf.
// Complexity: O(n²).
func DoubleCenter(d matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(d); err != nil {
		return nil, mdsErrorf(opDoubleCenter, err)
	}
	if err := matrix.ValidateFinite(d); err != nil {
		return nil, mdsErrorf(opDoubleCenter, err)
	}
	n := d.Rows()
	if n == 0 {
		return nil, mdsErrorf(opDoubleCenter, matrix.ErrBadShape)
	}
	flat, err := matrix.CopyFlat(d)
	if err != nil {
		return nil, mdsErrorf(opDoubleCenter, err)
	}
	for k, v := range flat {
		flat[k] = v * v
	}
	d2, err := matrix.NewDenseFromFlat(n, n, flat)
	if err != nil {
		return nil, mdsErrorf(opDoubleCenter, err)
	}
	rowMean, err := matrix.RowMeans(d2)
	if err != nil {
		return nil, mdsErrorf(opDoubleCenter, err)
	}
	colMean, err := matrix.ColMeans(d2)
	if err != nil {
		return nil, mdsErrorf(opDoubleCenter, err)
	}
	grand, err := matrix.GrandMean(d2)
	if err != nil {
		return nil, mdsErrorf(opDoubleCenter, err)
	}

	err = d2.Apply(func(i, j int, v float64) float64 {
		return -0.5 * (v - rowMean[i] - colMean[j] + grand)
	})
	if err != nil {
		return nil, mdsErrorf(opDoubleCenter, err)
	}

	return d2, nil
}
