// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/matrix"
)

// randomSymmetric builds a reproducible n×n symmetric matrix.
func randomSymmetric(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	r := rand.New(rand.NewSource(int64(n)))
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v := r.Float64()*2 - 1
			_ = m.Set(i, j, v)
			_ = m.Set(j, i, v)
		}
	}

	return m
}

func BenchmarkDecompose50(b *testing.B) {
	a := randomSymmetric(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eigen.Decompose(a); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPowerTopK3of50(b *testing.B) {
	a := randomSymmetric(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eigen.PowerTopK(a, 3, eigen.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}
