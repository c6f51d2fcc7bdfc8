// SPDX-License-Identifier: MIT

package spectral

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspectra/matrix"
)

// Degeneracy floors of the Lipschitz ratio.
const (
	lipschitzFloor = 1e-15 // below: treat ‖[D, diag f]‖ as zero
	restartFloor   = 1e-12 // below: perturb a near-constant start
	restartNudge   = 1e-3  // f_k += (k+1)·restartNudge
)

// searchParams configures the projected subgradient ascent.
type searchParams struct {
	restarts   int
	iterations int
	step       float64
}

// pairSolver maximises |f_i − f_j| / max(‖[D, diag f]‖₂, 1) for one Dirac
// operator. It owns scratch buffers and is not safe for concurrent use.
type pairSolver struct {
	n      int
	dirac  []float64
	comm   *mat.Dense // [D, diag f]
	svd    mat.SVD
	u, v   mat.Dense
	sv     []float64
	u0, v0 []float64 // leading singular pair of comm
	grad   []float64
}

func newPairSolver(dirac []float64, n int) *pairSolver {
	return &pairSolver{
		n:     n,
		dirac: dirac,
		comm:  mat.NewDense(n, n, nil),
		sv:    make([]float64, n),
		u0:    make([]float64, n),
		v0:    make([]float64, n),
		grad:  make([]float64, n),
	}
}

// lipschitz returns ‖[D, diag f]‖₂ and caches its leading singular vectors.
// [D, diag f][a,b] = D[a,b]·(f_b − f_a).
func (s *pairSolver) lipschitz(f []float64) float64 {
	n := s.n
	var a, b int
	for a = 0; a < n; a++ {
		for b = 0; b < n; b++ {
			s.comm.Set(a, b, s.dirac[a*n+b]*(f[b]-f[a]))
		}
	}
	if !s.svd.Factorize(s.comm, mat.SVDThin) {
		return 0
	}
	s.svd.Values(s.sv)
	s.svd.UTo(&s.u)
	s.svd.VTo(&s.v)
	for a = 0; a < n; a++ {
		s.u0[a] = s.u.At(a, 0)
		s.v0[a] = s.v.At(a, 0)
	}

	return s.sv[0]
}

// subgradient fills s.grad with ∂σ_max/∂f_k = (uᵀD)_k·v_k − u_k·(Dv)_k for
// the singular pair cached by the last lipschitz call.
func (s *pairSolver) subgradient() {
	n := s.n
	var k, a int
	var utd, dv float64
	for k = 0; k < n; k++ {
		utd, dv = matrix.ZeroSum, matrix.ZeroSum
		for a = 0; a < n; a++ {
			utd += s.u0[a] * s.dirac[a*n+k]
			dv += s.dirac[k*n+a] * s.v0[a]
		}
		s.grad[k] = utd*s.v0[k] - s.u0[k]*dv
	}
}

// distance estimates the Connes distance between states i ≠ j.
//
// Implementation:
//   - Stage 1: seed the estimate with the indicator difference c = e_i − e_j.
//   - Stage 2: per restart draw f ∈ [−1, 1)ⁿ and ascend the ratio
//     c·f / L(f) along (c·L − g·(c·f))/L², rescaling f onto L ≤ 1 whenever
//     the step leaves the feasible set.
//   - Stage 3: keep the best |c·f| / max(L, 1).
//
// Returns the distance and the commutator norm of the maximiser (≤ 1).
// Complexity: O(restarts·iterations·n³).
func (s *pairSolver) distance(ctx context.Context, i, j int, rng *rand.Rand, p searchParams) (float64, float64, error) {
	n := s.n
	c := make([]float64, n)
	c[i], c[j] = 1, -1

	var best, norm float64
	if lc := s.lipschitz(c); lc > lipschitzFloor {
		best, norm = 2/lc, 1
	}

	f := make([]float64, n)
	var r, it, k int
	var lf, num, val float64
	for r = 0; r < p.restarts; r++ {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		for k = 0; k < n; k++ {
			f[k] = rng.Float64()*2 - 1
		}
		lf = s.lipschitz(f)
		if lf < restartFloor {
			for k = 0; k < n; k++ {
				f[k] += float64(k+1) * restartNudge
			}
			lf = s.lipschitz(f)
		}

		for it = 0; it < p.iterations && lf > lipschitzFloor; it++ {
			s.subgradient()
			num = f[i] - f[j]
			for k = 0; k < n; k++ {
				f[k] += p.step * (c[k]*lf - s.grad[k]*num) / (lf * lf)
			}
			lf = s.lipschitz(f)
			if lf > 1 {
				// L is 1-homogeneous: rescaling lands exactly on the boundary.
				for k = 0; k < n; k++ {
					f[k] /= lf
				}
				lf = 1
			}
		}

		val = math.Abs(f[i]-f[j]) / math.Max(lf, 1)
		if val > best {
			best, norm = val, math.Min(lf, 1)
		}
	}

	return best, norm, nil
}

// connesDistance validates indices and solves one pair with its own stream.
func (t *Triple) connesDistance(ctx context.Context, i, j int, seed int64, p searchParams) (float64, float64, error) {
	if i < 0 || i >= t.n {
		return 0, 0, fmt.Errorf("i=%d (n=%d): %w", i, t.n, ErrStateOutOfRange)
	}
	if j < 0 || j >= t.n {
		return 0, 0, fmt.Errorf("j=%d (n=%d): %w", j, t.n, ErrStateOutOfRange)
	}
	if i == j {
		return 0, 0, nil
	}
	if i > j {
		i, j = j, i
	}

	return newPairSolver(t.dirac, t.n).distance(ctx, i, j, pairRNG(seed, t.n, i, j), p)
}
