// SPDX-License-Identifier: MIT

package mds

import (
	"math/rand"

	"github.com/katalvlaran/lvspectra/eigen"
)

// Dimensions is the number of output coordinates per point.
const Dimensions = 3

// MinScale floors the bounding-box scale so degenerate clouds (all points
// coincident) normalise without dividing by zero.
const MinScale = 1e-12

// Option configures Embed3D. Every option is forwarded to the top-k
// eigen extractor.
type Option func(*Options)

// Options holds the resolved extractor configuration.
type Options struct {
	power []eigen.Option
}

// WithSeed fixes the extractor's start vectors.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.power = append(o.power, eigen.WithSeed(seed)) }
}

// WithRand injects a caller-owned random source (not goroutine-safe).
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.power = append(o.power, eigen.WithRand(r)) }
}

// WithMaxIterations caps power iteration per eigenpair (default eigen.DefaultMaxIterations).
func WithMaxIterations(n int) Option {
	opt := eigen.WithMaxIterations(n)
	return func(o *Options) { o.power = append(o.power, opt) }
}

// WithTolerance sets the directional-change threshold (default eigen.DefaultPowerTolerance).
func WithTolerance(tol float64) Option {
	opt := eigen.WithPowerTolerance(tol)
	return func(o *Options) { o.power = append(o.power, opt) }
}

func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
