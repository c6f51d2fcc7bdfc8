// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"github.com/katalvlaran/lvspectra/matrix"
)

// Operation tags for unified error wrapping.
const (
	opDecompose = "eigen.Decompose"
	opPowerTopK = "eigen.PowerTopK"
)

// eigenErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NotSymmetricError reports the first pair (Row<Col, scanned in row-major
// order) whose asymmetry |A[Row,Col] − A[Col,Row]| exceeds Tolerance.
// It is a caller contract violation; the input is never corrected.
//
// errors.Is(err, matrix.ErrAsymmetry) holds for any *NotSymmetricError.
type NotSymmetricError struct {
	Row, Col  int
	Asymmetry float64
	Tolerance float64
}

// Error implements error.
func (e *NotSymmetricError) Error() string {
	return fmt.Sprintf("eigen: matrix not symmetric: |A[%d,%d] - A[%d,%d]| = %g > %g",
		e.Row, e.Col, e.Col, e.Row, e.Asymmetry, e.Tolerance)
}

// Unwrap exposes the matrix sentinel so callers can match either type.
func (e *NotSymmetricError) Unwrap() error { return matrix.ErrAsymmetry }
