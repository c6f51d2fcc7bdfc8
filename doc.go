// Package lvspectra is a small numerical engine for the geometry of finite
// Markov chains: symmetric eigen-decomposition, classical multidimensional
// scaling into 3-D, and the spectral-triple contract that turns a transition
// matrix into Connes distances.
//
// What is inside?
//
//	matrix/      dense row-major Matrix, validators, kernels, geodesic distances
//	eigen/       cyclic Jacobi (Decompose) and top-k power iteration (PowerTopK)
//	mds/         Embed3D, DoubleCenter, NormalizeToUnitBox, Stress
//	spectral/    Provider/Result contract, diagnostics, gonum Reference provider
//	markov/      transition validation, row normalisation, presets
//	cmd/spectra  CLI over all of the above
//
// Why this shape?
//
//   - Pure computation: inputs are cloned, never mutated; no global state
//   - Explicit errors: sentinels matched with errors.Is, never panics on input
//   - Deterministic where it matters: fixed loop orders, injectable seeds
//
// Quick example (a 3-state chain, its spectral gap and a 3-D layout):
//
//	p, _ := markov.Lookup("addendum-b")
//	m, _ := p.Matrix()
//	flat, _ := markov.Flatten(m)
//	res, _ := spectral.NewReference().ComputeSpectralTriple(flat, p.N(), spectral.DefaultEpsilon)
//	diag := spectral.Diagnose(res.Eigenvalues)
//	d, _ := res.DistanceMatrix()
//	layout, _ := mds.Embed3D(d, mds.WithSeed(1))
//	box := mds.NormalizeToUnitBox(layout)
//
//	go get github.com/katalvlaran/lvspectra
package lvspectra
