// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"
)

var (
	// ErrContract is returned by Result.Validate when a provider's output
	// violates the data contract.
	ErrContract = errors.New("spectral: result violates contract")

	// ErrNotSquare signals n < 1 or a flat buffer whose length is not n*n.
	ErrNotSquare = errors.New("spectral: matrix must be square")

	// ErrRowSumsNotOne signals a transition matrix whose rows do not sum to 1.
	ErrRowSumsNotOne = errors.New("spectral: transition rows must sum to 1")

	// ErrRowSumsNotZero signals a generator whose rows do not sum to 0.
	ErrRowSumsNotZero = errors.New("spectral: generator rows must sum to 0")

	// ErrStationaryNonPositive signals a stationary vector with an entry ≤ 0.
	ErrStationaryNonPositive = errors.New("spectral: stationary distribution must be strictly positive")

	// ErrStationaryNotNormalized signals a stationary vector not summing to 1.
	ErrStationaryNotNormalized = errors.New("spectral: stationary distribution must sum to 1")

	// ErrNonPositiveEpsilon signals ε ≤ 0 (or NaN).
	ErrNonPositiveEpsilon = errors.New("spectral: epsilon must be > 0")

	// ErrStateOutOfRange signals a state index outside [0, n).
	ErrStateOutOfRange = errors.New("spectral: state index out of range")

	// ErrDecomposition signals a failed SVD or eigen factorisation.
	ErrDecomposition = errors.New("spectral: factorization failed")
)

// Operation tags for unified error wrapping.
const (
	opNewTriple      = "spectral.NewTriple"
	opFromGenerator  = "spectral.NewTripleFromGenerator"
	opCompute        = "spectral.Reference.Compute"
	opConnesDistance = "spectral.ConnesDistance"
	opValidate       = "spectral.Result.Validate"
	opUnpack         = "spectral.UnpackSquare"
)

func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RowSumError reports the largest row-sum deviation from Target (1 for
// transition matrices, 0 for generators). It matches ErrRowSumsNotOne or
// ErrRowSumsNotZero under errors.Is.
type RowSumError struct {
	Target float64
	MaxAbs float64
}

// Error implements error.
func (e *RowSumError) Error() string {
	return fmt.Sprintf("spectral: rows must sum to %g (max |row-sum - %g| = %g)", e.Target, e.Target, e.MaxAbs)
}

// Unwrap returns the sentinel matching Target.
func (e *RowSumError) Unwrap() error {
	if e.Target == 0 {
		return ErrRowSumsNotZero
	}

	return ErrRowSumsNotOne
}
