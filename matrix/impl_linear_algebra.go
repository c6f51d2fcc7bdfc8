// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, scalar scaling, transpose, matrix multiplication,
// matrix-vector product and symmetrization. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates a fresh *Dense result.
//   - *Dense operands take a flat-slice fast path; other implementations are
//     read once through At into a flat buffer and then share the same loop.

package matrix

import "fmt"

// ZeroSum is the initial value for dot products and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opScale      = "Scale"
	opTranspose  = "Transpose"
	opMul        = "Mul"
	opMatVec     = "MatVec"
	opSymmetrize = "Symmetrize"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flatOf returns a read-only view of *Dense storage, or a copied buffer for
// other implementations. Callers must not write into the returned slice.
func flatOf(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}

	return CopyFlat(m)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, matrixErrorf(opAdd, fmt.Errorf("%dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	af, err := flatOf(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	bf, err := flatOf(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out, err := newDenseZeroOK(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	for k := range out.data {
		out.data[k] = af[k] + bf[k]
	}

	return out, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := flatOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range src {
		out.data[k] = alpha * v
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := flatOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := newDenseZeroOK(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[j*r+i] = src[i*c+j]
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j loop order so the inner loop walks both B and C rows
//     contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	af, err := flatOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bf, err := flatOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, inner, c := a.Rows(), a.Cols(), b.Cols()
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		for k = 0; k < inner; k++ {
			aik = af[i*inner+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				out.data[i*c+j] += aik * bf[k*c+j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = m · x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	src, err := flatOf(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	r, c := m.Rows(), m.Cols()
	y := make([]float64, r)
	var i, j int
	var s float64
	for i = 0; i < r; i++ {
		s = ZeroSum
		for j = 0; j < c; j++ {
			s += src[i*c+j] * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// Symmetrize returns (A + Aᵀ)/2, the nearest symmetric matrix in Frobenius norm.
// Used to feed non-symmetric producers (e.g., row-stochastic transition
// matrices) into symmetric eigensolvers.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n²).
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	src, err := flatOf(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	n := m.Rows()
	out, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		out.data[i*n+i] = src[i*n+i]
		for j = i + 1; j < n; j++ {
			v = 0.5 * (src[i*n+j] + src[j*n+i])
			out.data[i*n+j] = v
			out.data[j*n+i] = v
		}
	}

	return out, nil
}
