// SPDX-License-Identifier: MIT

package spectral_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspectra/spectral"
)

func TestSpectralGap(t *testing.T) {
	t.Parallel()
	require.Zero(t, spectral.SpectralGap(nil))
	require.Zero(t, spectral.SpectralGap([]float64{0.3}))
	require.InDelta(t, 0.2, spectral.SpectralGap([]float64{0.5, 0, 0.2}), 1e-15)

	in := []float64{0.5, 0, 0.2}
	spectral.SpectralGap(in)
	require.Equal(t, []float64{0.5, 0, 0.2}, in)
}

func TestMixingTime(t *testing.T) {
	t.Parallel()
	require.Equal(t, 4.0, spectral.MixingTime(0.25))
	require.True(t, math.IsInf(spectral.MixingTime(0), 1))
	require.True(t, math.IsInf(spectral.MixingTime(-1), 1))
}

func TestClassify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		gap  float64
		want spectral.Regime
		name string
	}{
		{0.5, spectral.RegimeFast, "fast"},
		{0.1, spectral.RegimeModerate, "moderate"},
		{0.05, spectral.RegimeModerate, "moderate"},
		{0.01, spectral.RegimeSlow, "slow"},
		{0, spectral.RegimeSlow, "slow"},
	}
	for _, tc := range cases {
		got := spectral.Classify(tc.gap)
		require.Equal(t, tc.want, got, "gap=%g", tc.gap)
		require.Equal(t, tc.name, got.String())

		var back spectral.Regime
		require.NoError(t, back.UnmarshalText([]byte(tc.name)))
		require.Equal(t, tc.want, back)
	}
	var r spectral.Regime
	require.Error(t, r.UnmarshalText([]byte("glacial")))
}

func TestDiagnose_JSON(t *testing.T) {
	t.Parallel()

	d := spectral.Diagnose([]float64{0, 0.2, 0.9})
	require.InDelta(t, 0.2, d.Gap, 1e-15)
	require.InDelta(t, 5, d.MixingTime, 1e-12)
	require.Equal(t, spectral.RegimeFast, d.Regime)

	raw, err := json.Marshal(spectral.Diagnose([]float64{0}))
	require.NoError(t, err)
	require.JSONEq(t, `{"gap":0,"mixing_time":null,"regime":"slow"}`, string(raw))
}
