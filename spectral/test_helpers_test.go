// SPDX-License-Identifier: MIT

package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspectra/spectral"
)

// addendumB is the 3-state "Addendum B" chain; π = (2, 5, 4)/11.
var addendumB = []float64{
	0.95, 0.05, 0.00,
	0.02, 0.94, 0.04,
	0.00, 0.05, 0.95,
}

var addendumBStationary = []float64{2.0 / 11, 5.0 / 11, 4.0 / 11}

// validResult returns a minimal 2-state result satisfying the contract.
func validResult() *spectral.Result {
	return &spectral.Result{
		N:           2,
		Stationary:  []float64{0.25, 0.75},
		Eigenvalues: []float64{0, 0.4},
		Dirac:       []float64{1, 0, 0, 1},
		Distances:   []float64{0, 0.3, 0.3, 0},
		Conditioning: spectral.Conditioning{
			SpectralGap: 0.4,
			Epsilon:     1e-3,
		},
	}
}

// requireSymmetricFlat asserts m[i*n+j] == m[j*n+i] exactly.
func requireSymmetricFlat(t *testing.T, m []float64, n int) {
	t.Helper()
	require.Len(t, m, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.Equal(t, m[i*n+j], m[j*n+i], "(%d,%d)", i, j)
		}
	}
}

// fastReference keeps test runtimes short while exercising every stage.
func fastReference(opts ...spectral.ReferenceOption) *spectral.Reference {
	base := []spectral.ReferenceOption{spectral.WithIterations(150), spectral.WithRestarts(4)}
	return spectral.NewReference(append(base, opts...)...)
}
