// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvspectra/matrix"
)

// PowerTopK extracts the k dominant eigenpairs of a symmetric matrix by power
// iteration with rank-one deflation.
//
// Implementation:
//   - Stage 1: validate (nil → shape → NaN/Inf), clamp k to n and copy B.
//   - Stage 2: for each pair draw a start vector uniformly from [−0.5, 0.5)ⁿ
//     and normalise it (an all-zero draw falls back to e₀).
//   - Stage 3: iterate y = B·v / ‖B·v‖ while tracking the Rayleigh quotient
//     λ = vᵀBv; stop when the direction settles (‖y ∓ v‖ < tol) or after
//     maxIter steps. B·v = 0 stops immediately with λ = 0.
//   - Stage 4: deflate B ← B − λ·v·vᵀ on the private copy.
//
// Behavior highlights:
//   - Symmetry is assumed, not checked; callers such as classical MDS hand in
//     matrices symmetric by construction.
//   - The cap is not an error; the pair is returned with Converged=false.
//   - A dominant negative eigenvalue flips v each step; the sign-insensitive
//     direction test still settles it.
//   - Without WithSeed/WithRand each call draws a fresh seed, so degenerate
//     spectra may yield different (equally valid) vectors run to run.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
//     matrix.ErrBadShape (k < 0).
//
// Complexity:
//   - Time O(k·maxIter·n²), Space O(n²).
func PowerTopK(b matrix.Matrix, k int, opts ...Option) ([]Pair, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateSquareNonNil(b); err != nil {
		return nil, eigenErrorf(opPowerTopK, err)
	}
	if k < 0 {
		return nil, eigenErrorf(opPowerTopK, fmt.Errorf("k=%d: %w", k, matrix.ErrBadShape))
	}
	n := b.Rows()
	if k > n {
		k = n
	}
	work, err := matrix.CopyFlat(b)
	if err != nil {
		return nil, eigenErrorf(opPowerTopK, err)
	}
	for idx, x := range work {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, eigenErrorf(opPowerTopK, fmt.Errorf("(%d,%d): %w", idx/n, idx%n, matrix.ErrNaNInf))
		}
	}

	pairs := make([]Pair, 0, k)
	if k == 0 {
		return pairs, nil
	}
	rng := o.source()
	var p Pair
	for len(pairs) < k {
		p = powerIterate(work, n, rng, o.powerTol, o.maxIter)
		deflate(work, n, p.Value, p.Vector)
		pairs = append(pairs, p)
	}

	return pairs, nil
}

// powerIterate runs power iteration on the flat n×n buffer m.
func powerIterate(m []float64, n int, rng *rand.Rand, tol float64, maxIter int) Pair {
	v := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		v[i] = rng.Float64() - 0.5
	}
	if nv := norm2(v); nv == 0 {
		v[0] = 1
	} else {
		scaleVec(v, 1/nv)
	}

	y := make([]float64, n)
	p := Pair{}
	var ny, change float64
	for p.Iterations < maxIter {
		p.Iterations++
		matVec(m, v, y, n)
		// Rayleigh quotient of the current (unit) iterate.
		p.Value = dot(v, y)
		ny = norm2(y)
		if ny == 0 {
			// v lies in the null space: an exact eigenvector with λ = 0.
			p.Value = 0
			p.Converged = true
			break
		}
		scaleVec(y, 1/ny)
		change = math.Min(distance(y, v, 1), distance(y, v, -1))
		copy(v, y)
		if change < tol {
			p.Converged = true
			break
		}
	}
	p.Vector = v

	return p
}

// deflate removes the found pair: m ← m − λ·v·vᵀ.
func deflate(m []float64, n int, lambda float64, v []float64) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m[i*n+j] -= lambda * v[i] * v[j]
		}
	}
}

func matVec(m, x, y []float64, n int) {
	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		s = matrix.ZeroSum
		for j = 0; j < n; j++ {
			s += m[i*n+j] * x[j]
		}
		y[i] = s
	}
}

func dot(a, b []float64) float64 {
	s := matrix.ZeroSum
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func norm2(a []float64) float64 { return math.Sqrt(dot(a, a)) }

func scaleVec(a []float64, alpha float64) {
	for i := range a {
		a[i] *= alpha
	}
}

// distance returns ‖a − sign·b‖.
func distance(a, b []float64, sign float64) float64 {
	s := matrix.ZeroSum
	var d float64
	for i := range a {
		d = a[i] - sign*b[i]
		s += d * d
	}

	return math.Sqrt(s)
}
