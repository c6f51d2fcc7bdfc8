// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvspectra/matrix"
)

// Decompose computes all eigenvalues and orthonormal eigenvectors of a real
// symmetric matrix with the cyclic Jacobi method.
//
// Implementation:
//   - Stage 1: validate (nil → shape → NaN/Inf → symmetry) and copy A into a
//     flat working buffer; V starts as the identity.
//   - Stage 2: sweep the strict upper triangle in row-major order. A pair
//     (p,q) is rotated iff |A[p,q]| > tol·hypot(A[p,p], A[q,q]); the rotation
//     zeroes A[p,q] and the same plane rotation is accumulated into V.
//   - Stage 3: stop after a sweep without rotations, once the strict-upper
//     Frobenius norm drops below tol, or after maxSweeps sweeps.
//   - Stage 4: renormalise the columns of V and sort pairs by eigenvalue
//     descending (stable), permuting columns with their values.
//
// Behavior highlights:
//   - The input is never mutated.
//   - Running out of sweeps is not an error: the result carries Converged=false.
//   - Asymmetric input is rejected with *NotSymmetricError and never repaired.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
//     matrix.ErrBadShape (0×0), matrix.ErrNaNInf, *NotSymmetricError.
//
// Complexity:
//   - Time O(n³) per sweep, Space O(n²).
func Decompose(a matrix.Matrix, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts...)

	// Stage 1: validation and working copies.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}
	n := a.Rows()
	if n == 0 {
		return nil, eigenErrorf(opDecompose, fmt.Errorf("0x0 input: %w", matrix.ErrBadShape))
	}
	w, err := matrix.CopyFlat(a)
	if err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}
	for k, x := range w {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, eigenErrorf(opDecompose, fmt.Errorf("(%d,%d): %w", k/n, k%n, matrix.ErrNaNInf))
		}
	}
	if row, col, diff, found, ferr := matrix.FindAsymmetry(a, o.symTol); ferr != nil {
		return nil, eigenErrorf(opDecompose, ferr)
	} else if found {
		return nil, eigenErrorf(opDecompose, &NotSymmetricError{Row: row, Col: col, Asymmetry: diff, Tolerance: o.symTol})
	}
	v := make([]float64, n*n)
	var i int
	for i = 0; i < n; i++ {
		v[i*n+i] = 1
	}

	// Stages 2–3: cyclic sweeps.
	sweeps, off, converged := jacobiSweeps(w, v, n, o.tol, o.maxSweeps)

	// Stage 4: normalise and order.
	normalizeColumns(v, n)
	values, vectors := sortDescending(w, v, n)
	vec, err := matrix.NewDenseFromFlat(n, n, vectors)
	if err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}

	return &Decomposition{
		Values:    values,
		Vectors:   vec,
		Sweeps:    sweeps,
		OffNorm:   off,
		Converged: converged,
	}, nil
}

// jacobiSweeps diagonalises w in place and accumulates rotations into v.
// Returns the number of sweeps performed, the final strict-upper Frobenius
// norm and whether a stop criterion (rather than the cap) ended the loop.
func jacobiSweeps(w, v []float64, n int, tol float64, maxSweeps int) (int, float64, bool) {
	off := offNorm(w, n)
	if off < tol {
		return 0, off, true
	}

	var (
		sweeps, p, q  int
		rotated       bool
		app, aqq, apq float64
	)
	for sweeps < maxSweeps {
		sweeps++
		rotated = false
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				app, aqq, apq = w[p*n+p], w[q*n+q], w[p*n+q]
				if math.Abs(apq) <= tol*math.Hypot(app, aqq) {
					continue
				}
				rotate(w, v, n, p, q)
				rotated = true
			}
		}
		off = offNorm(w, n)
		if !rotated || off < tol {
			return sweeps, off, true
		}
	}

	return sweeps, off, false
}

// rotate applies the Jacobi plane rotation that annihilates w[p,q].
//
// With τ = (A[q,q] − A[p,p]) / (2·A[p,q]) the smaller root
// t = sign(τ)/(|τ| + √(1+τ²)) is used, sign(0) = +1, so |θ| ≤ π/4.
// Complexity: O(n).
func rotate(w, v []float64, n, p, q int) {
	apq := w[p*n+q]
	tau := (w[q*n+q] - w[p*n+p]) / (2 * apq)
	t := math.Copysign(1, tau) / (math.Abs(tau) + math.Hypot(1, tau))
	c := 1 / math.Hypot(1, t)
	s := t * c

	w[p*n+p] -= t * apq
	w[q*n+q] += t * apq
	w[p*n+q] = 0
	w[q*n+p] = 0

	var r int
	var arp, arq float64
	for r = 0; r < n; r++ {
		if r == p || r == q {
			continue
		}
		arp, arq = w[r*n+p], w[r*n+q]
		w[r*n+p] = c*arp - s*arq
		w[r*n+q] = s*arp + c*arq
		w[p*n+r] = w[r*n+p]
		w[q*n+r] = w[r*n+q]
	}
	var vrp, vrq float64
	for r = 0; r < n; r++ {
		vrp, vrq = v[r*n+p], v[r*n+q]
		v[r*n+p] = c*vrp - s*vrq
		v[r*n+q] = s*vrp + c*vrq
	}
}

// offNorm is the Frobenius norm of the strict upper triangle.
func offNorm(w []float64, n int) float64 {
	s := matrix.ZeroSum
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			s += w[i*n+j] * w[i*n+j]
		}
	}

	return math.Sqrt(s)
}

// normalizeColumns scales every column of v to unit L2 norm.
// Zero columns cannot occur for an orthogonal accumulator; they are skipped.
func normalizeColumns(v []float64, n int) {
	var i, j int
	var s float64
	for j = 0; j < n; j++ {
		s = matrix.ZeroSum
		for i = 0; i < n; i++ {
			s += v[i*n+j] * v[i*n+j]
		}
		if s == 0 {
			continue
		}
		s = 1 / math.Sqrt(s)
		for i = 0; i < n; i++ {
			v[i*n+j] *= s
		}
	}
}

// sortDescending reads the eigenvalues from the diagonal of w and returns them
// sorted descending together with the correspondingly permuted columns of v.
func sortDescending(w, v []float64, n int) ([]float64, []float64) {
	idx := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool {
		return w[idx[x]*n+idx[x]] > w[idx[y]*n+idx[y]]
	})

	values := make([]float64, n)
	vectors := make([]float64, n*n)
	var k, r int
	for k = 0; k < n; k++ {
		values[k] = w[idx[k]*n+idx[k]]
		for r = 0; r < n; r++ {
			vectors[r*n+k] = v[r*n+idx[k]]
		}
	}

	return values, vectors
}
