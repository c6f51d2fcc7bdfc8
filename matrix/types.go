// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view every kernel, validator and solver accepts.
// *Dense is the only implementation in this module; other implementations
// take the generic At/Set path and are copied once into a flat buffer.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows reports the row count (0 for the empty matrix).
	Rows() int

	// Cols reports the column count.
	Cols() int

	// At reads entry (i, j), or returns ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes entry (i, j), or returns ErrOutOfRange (ErrNaNInf when the
	// finite-only policy rejects v).
	Set(i, j int, v float64) error

	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Matrix
}
