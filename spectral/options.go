// SPDX-License-Identifier: MIT

package spectral

import "runtime"

// Defaults of the Reference provider.
const (
	// DefaultEpsilon is the regulariser used when callers have no preference.
	DefaultEpsilon = 1e-3

	// DefaultRestarts is the number of random starts per distance pair.
	DefaultRestarts = 8

	// DefaultIterations is the number of ascent steps per restart.
	DefaultIterations = 600

	// DefaultStep is the ascent step size.
	DefaultStep = 0.5
)

const (
	panicBadCount = "spectral: count must be >= 0"
	panicBadStep  = "spectral: step must be > 0"
)

// ReferenceOption configures a Reference provider.
type ReferenceOption func(*referenceOptions)

type referenceOptions struct {
	workers    int
	seed       int64
	restarts   int
	iterations int
	step       float64
}

// WithWorkers bounds the number of distance pairs solved concurrently.
// n ≤ 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) ReferenceOption {
	return func(o *referenceOptions) { o.workers = n }
}

// WithReferenceSeed sets the base seed of the per-pair random streams.
func WithReferenceSeed(seed int64) ReferenceOption {
	return func(o *referenceOptions) { o.seed = seed }
}

// WithRestarts sets the number of random starts per pair.
func WithRestarts(n int) ReferenceOption {
	if n < 0 {
		panic(panicBadCount)
	}
	return func(o *referenceOptions) { o.restarts = n }
}

// WithIterations sets the number of ascent steps per restart.
func WithIterations(n int) ReferenceOption {
	if n < 0 {
		panic(panicBadCount)
	}
	return func(o *referenceOptions) { o.iterations = n }
}

// WithStep sets the ascent step size.
func WithStep(step float64) ReferenceOption {
	if !(step > 0) {
		panic(panicBadStep)
	}
	return func(o *referenceOptions) { o.step = step }
}

func gatherReferenceOptions(user ...ReferenceOption) referenceOptions {
	o := referenceOptions{
		seed:       DefaultSeed,
		restarts:   DefaultRestarts,
		iterations: DefaultIterations,
		step:       DefaultStep,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
