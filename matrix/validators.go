// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry checks run O(n²) on the upper triangle only, in fixed i→j order,
//    so the first reported violation is reproducible.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Also rejects typed-nil *Dense values hidden behind the interface.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Errors: ErrNilMatrix, ErrNaNInf (tagged with the first offending cell).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // in range by construction
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite: (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects any entry < 0.
// Errors: ErrNilMatrix, ErrNegativeEntry (tagged with the first offending cell).
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative: (%d,%d)=%g", i, j, v), ErrNegativeEntry)
			}
		}
	}

	return nil
}

// FindAsymmetry scans the strict upper triangle of a square matrix in i→j
// order and reports the first pair with |A[i,j] − A[j,i]| > tol.
//
// Inputs: square Matrix m, tolerance tol (negative values are taken as |tol|).
// Returns (row, col, diff, true, nil) for the first violation, or found=false.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (tol not finite).
// Complexity: O(n²) worst case. Space: O(1).
func FindAsymmetry(m Matrix, tol float64) (row, col int, diff float64, found bool, err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return 0, 0, 0, false, validatorErrorf("FindAsymmetry", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, 0, 0, false, validatorErrorf("FindAsymmetry", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			diff = math.Abs(aij - aji)
			// NaN differences never compare greater; treat them as violations.
			if diff > tol || math.IsNaN(diff) {
				return i, j, diff, true, nil
			}
		}
	}

	return 0, 0, 0, false, nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrDimensionMismatch on structural issues, ErrNaNInf on
// bad tol, ErrAsymmetry on violation (tagged with the offending pair).
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	i, j, diff, found, err := FindAsymmetry(m, tol)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if found {
		return validatorErrorf(fmt.Sprintf("ValidateSymmetric: |A[%d,%d]-A[%d,%d]|=%g", i, j, j, i, diff), ErrAsymmetry)
	}

	return nil
}
