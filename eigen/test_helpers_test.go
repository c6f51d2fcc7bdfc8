// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspectra/matrix"
)

const (
	tolOrtho = 1e-6 // orthonormality / reconstruction tolerance
	tolValue = 1e-9 // eigenvalue agreement on well-conditioned inputs
)

// presetAddendumB is the 3-state row-stochastic "Addendum B" transition matrix.
var presetAddendumB = [][]float64{
	{0.95, 0.05, 0.00},
	{0.02, 0.94, 0.04},
	{0.00, 0.05, 0.95},
}

// hide wraps a *Dense so kernels take the generic Matrix path.
type hide struct{ matrix.Matrix }

// MustDense builds a Dense from rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// requireOrthonormal asserts VᵀV ≈ I.
func requireOrthonormal(t *testing.T, v *matrix.Dense) {
	t.Helper()
	vt, err := matrix.Transpose(v)
	require.NoError(t, err)
	g, err := matrix.Mul(vt, v)
	require.NoError(t, err)
	n := v.Cols()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			got, _ := g.At(i, j)
			require.InDelta(t, want, got, tolOrtho, "VᵀV[%d,%d]", i, j)
		}
	}
}

// requireClose asserts element-wise |a−b| ≤ tol for equally shaped matrices.
func requireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			w, _ := want.At(i, j)
			g, _ := got.At(i, j)
			require.InDelta(t, w, g, tol, "(%d,%d)", i, j)
		}
	}
}

// requireDescending asserts values are sorted non-increasing.
func requireDescending(t *testing.T, values []float64) {
	t.Helper()
	for k := 1; k < len(values); k++ {
		require.GreaterOrEqual(t, values[k-1], values[k], "values[%d] < values[%d]", k-1, k)
	}
}

// requireEigenpair asserts ‖B·v − λ·v‖ ≤ tol.
func requireEigenpair(t *testing.T, b matrix.Matrix, lambda float64, v []float64, tol float64) {
	t.Helper()
	bv, err := matrix.MatVec(b, v)
	require.NoError(t, err)
	s := 0.0
	for i := range v {
		d := bv[i] - lambda*v[i]
		s += d * d
	}
	require.LessOrEqual(t, math.Sqrt(s), tol)
}
