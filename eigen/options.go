// SPDX-License-Identifier: MIT

// Package eigen: functional options shared by Decompose and PowerTopK.
//
// Policy:
//   - Setters panic on nonsensical programmer-supplied values (negative or
//     non-finite tolerances, negative caps); user data never panics.
//   - Last writer wins; nil setters are ignored.
package eigen

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the Jacobi rotation threshold (relative to the
	// diagonal pair) and the absolute off-diagonal Frobenius stop criterion.
	DefaultTolerance = 1e-12

	// DefaultMaxSweeps caps full Jacobi sweeps over the upper triangle.
	DefaultMaxSweeps = 100

	// DefaultSymmetryTolerance bounds |A[i,j] − A[j,i]| accepted by Decompose.
	DefaultSymmetryTolerance = 1e-9

	// DefaultPowerTolerance is the directional-change threshold of power iteration.
	DefaultPowerTolerance = 1e-9

	// DefaultMaxIterations caps power-iteration steps per eigenpair.
	DefaultMaxIterations = 256
)

const (
	panicBadTolerance = "eigen: tolerance must be finite and >= 0"
	panicBadCap       = "eigen: iteration cap must be >= 0"
)

// Option mutates Options.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; callers
// configure through WithX setters.
type Options struct {
	tol       float64 // Jacobi rotation / stop threshold
	maxSweeps int     // Jacobi sweep cap
	symTol    float64 // symmetry precondition tolerance

	powerTol float64    // power-iteration directional-change threshold
	maxIter  int        // power-iteration cap per pair
	seed     int64      // used when seeded is true
	seeded   bool       // WithSeed was applied
	rng      *rand.Rand // caller-owned source; wins over seed
}

// WithTolerance sets the Jacobi tolerance (default DefaultTolerance).
func WithTolerance(tol float64) Option {
	mustTolerance(tol)
	return func(o *Options) { o.tol = tol }
}

// WithMaxSweeps sets the Jacobi sweep cap (default DefaultMaxSweeps).
// Zero sweeps returns the input diagonal with Converged reflecting the
// initial off-diagonal norm.
func WithMaxSweeps(n int) Option {
	if n < 0 {
		panic(panicBadCap)
	}
	return func(o *Options) { o.maxSweeps = n }
}

// WithSymmetryTolerance sets the accepted asymmetry for Decompose.
func WithSymmetryTolerance(tol float64) Option {
	mustTolerance(tol)
	return func(o *Options) { o.symTol = tol }
}

// WithPowerTolerance sets the power-iteration convergence threshold.
func WithPowerTolerance(tol float64) Option {
	mustTolerance(tol)
	return func(o *Options) { o.powerTol = tol }
}

// WithMaxIterations sets the power-iteration cap per eigenpair.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicBadCap)
	}
	return func(o *Options) { o.maxIter = n }
}

// WithSeed makes PowerTopK start vectors reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRand injects a caller-owned random source. *rand.Rand is not safe for
// concurrent use; do not share one across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// gatherOptions applies setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:       DefaultTolerance,
		maxSweeps: DefaultMaxSweeps,
		symTol:    DefaultSymmetryTolerance,
		powerTol:  DefaultPowerTolerance,
		maxIter:   DefaultMaxIterations,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// source resolves the random stream for PowerTopK.
// Policy: injected *rand.Rand → WithSeed → fresh seed from the global source.
func (o Options) source() *rand.Rand {
	if o.rng != nil {
		return o.rng
	}
	if o.seeded {
		return rand.New(rand.NewSource(o.seed))
	}

	return rand.New(rand.NewSource(rand.Int63()))
}

func mustTolerance(tol float64) {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicBadTolerance)
	}
}
