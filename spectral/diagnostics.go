// SPDX-License-Identifier: MIT

package spectral

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Regime thresholds on the spectral gap.
const (
	FastGap     = 0.1
	ModerateGap = 0.01
)

// Regime buckets a chain by how quickly it forgets its starting state.
type Regime int

const (
	RegimeSlow Regime = iota
	RegimeModerate
	RegimeFast
)

// String returns the lower-case regime name.
func (r Regime) String() string {
	switch r {
	case RegimeFast:
		return "fast"
	case RegimeModerate:
		return "moderate"
	default:
		return "slow"
	}
}

// MarshalText lets regimes serialise by name in JSON and YAML reports.
func (r Regime) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText parses a name written by MarshalText.
func (r *Regime) UnmarshalText(text []byte) error {
	switch string(text) {
	case "fast":
		*r = RegimeFast
	case "moderate":
		*r = RegimeModerate
	case "slow":
		*r = RegimeSlow
	default:
		return fmt.Errorf("spectral: unknown regime %q", text)
	}

	return nil
}

// Diagnostics interprets a spectrum of −L_sym.
type Diagnostics struct {
	Gap        float64 `json:"gap" yaml:"gap"`
	MixingTime float64 `json:"mixing_time" yaml:"mixing_time"`
	Regime     Regime  `json:"regime" yaml:"regime"`
}

// MarshalJSON encodes an infinite mixing time as null; JSON has no ∞.
func (d Diagnostics) MarshalJSON() ([]byte, error) {
	var mix *float64
	if !math.IsInf(d.MixingTime, 0) && !math.IsNaN(d.MixingTime) {
		mix = &d.MixingTime
	}

	return json.Marshal(struct {
		Gap        float64  `json:"gap"`
		MixingTime *float64 `json:"mixing_time"`
		Regime     Regime   `json:"regime"`
	}{d.Gap, mix, d.Regime})
}

// SpectralGap returns max(λ₁ − λ₀, 0) over the two smallest eigenvalues.
// Fewer than two values yield 0. The input is not reordered.
func SpectralGap(eigenvalues []float64) float64 {
	if len(eigenvalues) < 2 {
		return 0
	}
	vals := append([]float64(nil), eigenvalues...)
	sort.Float64s(vals)

	return math.Max(vals[1]-vals[0], 0)
}

// MixingTime returns the relaxation time 1/gap, or +Inf when gap ≤ 0.
func MixingTime(gap float64) float64 {
	if gap <= 0 {
		return math.Inf(1)
	}

	return 1 / gap
}

// Classify maps a spectral gap onto a Regime.
func Classify(gap float64) Regime {
	switch {
	case gap > FastGap:
		return RegimeFast
	case gap > ModerateGap:
		return RegimeModerate
	default:
		return RegimeSlow
	}
}

// Diagnose bundles SpectralGap, MixingTime and Classify.
func Diagnose(eigenvalues []float64) Diagnostics {
	gap := SpectralGap(eigenvalues)

	return Diagnostics{Gap: gap, MixingTime: MixingTime(gap), Regime: Classify(gap)}
}
