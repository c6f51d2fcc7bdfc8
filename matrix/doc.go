// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric substrate of lvspectra.
//
// The package offers:
//
//   - Matrix, a small interface over two-dimensional float64 grids with
//     bounds-checked access and deep cloning.
//   - Dense, a row-major implementation backed by a single flat slice
//     (offset = i*cols + j), with constructors from rows, flat buffers and
//     the identity.
//   - Canonical validators (nil, square, symmetric, finite) that return
//     package sentinels so callers can match them with errors.Is.
//   - The handful of kernels the spectral engine composes: Add, Scale,
//     Transpose, Mul, MatVec, Symmetrize and row/column means.
//
// Matrices handled here are small (single to low double digits) and dense;
// every kernel is O(n²) or O(n³) with fixed i→j loop orders so results are
// reproducible bit for bit.
//
// See eigen and mds for the algorithms built on top of this package.
package matrix
