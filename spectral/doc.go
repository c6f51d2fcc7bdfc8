// SPDX-License-Identifier: MIT

// Package spectral defines the data contract of a spectral-triple provider
// and ships a reference implementation.
//
// A provider turns a row-stochastic transition matrix P (flat, row-major,
// n×n) and a regulariser ε > 0 into:
//
//   - the stationary distribution π (πP = π, Σπ = 1);
//   - the spectrum of the π-symmetrised negative generator −L_sym, L = P − I;
//   - a Dirac-like operator D = U·diag(1/(ε + max(λ,0)))·Uᵀ;
//   - the Connes distance matrix d(i,j) = sup{|f_i − f_j| : ‖[D, diag f]‖₂ ≤ 1};
//   - conditioning diagnostics (spectral gap, ill-conditioning flag).
//
// Provider is the seam consumers program against; Reference implements it
// with gonum linear algebra and evaluates distance pairs concurrently.
// Result.Validate checks any provider's output before it is handed to
// geometry code such as mds.Embed3D.
//
// Diagnostics (SpectralGap, MixingTime, Classify) interpret a spectrum
// without needing the rest of the result.
package spectral
