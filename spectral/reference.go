// SPDX-License-Identifier: MIT

package spectral

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// Reference is an in-process Provider built on gonum.
//
// Distances are approximated by projected subgradient ascent with a fixed
// number of restarts per pair; each unordered pair draws from its own
// stream derived from the base seed, so results do not depend on the worker
// count or scheduling.
type Reference struct {
	opts referenceOptions
}

var _ Provider = (*Reference)(nil)

// NewReference returns a Reference provider configured by opts.
func NewReference(opts ...ReferenceOption) *Reference {
	return &Reference{opts: gatherReferenceOptions(opts...)}
}

// Workers reports the resolved concurrency bound.
func (r *Reference) Workers() int { return r.opts.workers }

// ComputeSpectralTriple implements Provider.
func (r *Reference) ComputeSpectralTriple(transition []float64, n int, epsilon float64) (*Result, error) {
	return r.Compute(context.Background(), transition, n, epsilon)
}

// Compute builds the triple of transition and evaluates all n(n−1)/2
// Connes distances concurrently (bounded by WithWorkers). The distance
// matrix is symmetric with a zero diagonal by construction.
//
// Errors: those of NewTriple, or ctx.Err() when cancelled.
// Complexity: O(n² · restarts · iterations · n³ / workers).
func (r *Reference) Compute(ctx context.Context, transition []float64, n int, epsilon float64) (*Result, error) {
	t, err := NewTriple(transition, n, epsilon)
	if err != nil {
		return nil, err
	}

	dist := make([]float64, n*n)
	norms := make([]float64, n*n)
	p := r.params()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.workers)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			i, j := i, j
			g.Go(func() error {
				d, cn, err := t.connesDistance(gctx, i, j, r.opts.seed, p)
				if err != nil {
					return err
				}
				// Disjoint cells per pair; no locking needed.
				dist[i*n+j], dist[j*n+i] = d, d
				norms[i*n+j] = cn
				return nil
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, spectralErrorf(opCompute, err)
	}

	cond := t.Conditioning()
	for _, cn := range norms {
		cond.MaxCommutatorNorm = math.Max(cond.MaxCommutatorNorm, cn)
	}

	return &Result{
		N:            n,
		Stationary:   t.Stationary(),
		Eigenvalues:  t.Eigenvalues(),
		Dirac:        t.Dirac(),
		Distances:    dist,
		Conditioning: cond,
	}, nil
}

// ConnesDistance evaluates a single pair without computing the full matrix.
// d(i,i) = 0 and d(i,j) = d(j,i).
//
// Errors: those of NewTriple, ErrStateOutOfRange.
func (r *Reference) ConnesDistance(transition []float64, n int, epsilon float64, i, j int) (float64, error) {
	t, err := NewTriple(transition, n, epsilon)
	if err != nil {
		return 0, err
	}
	d, _, err := t.connesDistance(context.Background(), i, j, r.opts.seed, r.params())
	if err != nil {
		return 0, spectralErrorf(opConnesDistance, err)
	}

	return d, nil
}

func (r *Reference) params() searchParams {
	return searchParams{
		restarts:   r.opts.restarts,
		iterations: r.opts.iterations,
		step:       r.opts.step,
	}
}
