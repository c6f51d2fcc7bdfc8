// SPDX-License-Identifier: MIT

// Package markov holds helpers for finite, row-stochastic transition
// matrices: validation, row normalisation, flattening into the row-major
// layout spectral providers consume, and a small catalogue of preset chains.
package markov
