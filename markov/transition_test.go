// SPDX-License-Identifier: MIT

package markov_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspectra/markov"
	"github.com/katalvlaran/lvspectra/matrix"
)

func mustDense(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows, opts...)
	require.NoError(t, err)

	return d
}

func TestValidateTransition(t *testing.T) {
	t.Parallel()

	for _, p := range markov.Presets() {
		m, err := p.Matrix()
		require.NoError(t, err)
		require.NoError(t, markov.ValidateTransition(m, markov.DefaultTolerance), p.Name)
	}

	empty, err := matrix.NewDenseFromRows(nil)
	require.NoError(t, err)
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	cases := []struct {
		name string
		in   matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"non-square", rect, matrix.ErrDimensionMismatch},
		{"empty", empty, matrix.ErrBadShape},
		{"NaN", mustDense(t, [][]float64{{math.NaN(), 1}, {0, 1}}, matrix.WithNoValidateNaNInf()), matrix.ErrNaNInf},
		{"negative", mustDense(t, [][]float64{{1.5, -0.5}, {0, 1}}), matrix.ErrNegativeEntry},
		{"row sum", mustDense(t, [][]float64{{0.5, 0.5}, {0.2, 0.7}}), markov.ErrNotStochastic},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, markov.ValidateTransition(tc.in, markov.DefaultTolerance), tc.want)
		})
	}

	err = markov.ValidateTransition(mustDense(t, [][]float64{{0.5, 0.5}, {0.2, 0.7}}), 1e-9)
	var re *markov.RowError
	require.True(t, errors.As(err, &re))
	require.Equal(t, 1, re.Row)
	require.InDelta(t, 0.9, re.Sum, 1e-12)

	// Loose tolerance accepts the same matrix.
	require.NoError(t, markov.ValidateTransition(mustDense(t, [][]float64{{0.5, 0.5}, {0.2, 0.7}}), 0.2))
}

func TestNormalizeRows(t *testing.T) {
	t.Parallel()
	in := mustDense(t, [][]float64{
		{2, 2, 4},
		{0, 0, 0},
		{-1, math.Inf(1), 3},
	}, matrix.WithNoValidateNaNInf())

	out, err := markov.NormalizeRows(in)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0.25, 0.25, 0.5},
		{0, 1, 0},
		{0, 0, 1},
	}, out.ToRows())
	require.NoError(t, markov.ValidateTransition(out, markov.DefaultTolerance))

	v, err := in.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v) // input untouched

	_, err = markov.NormalizeRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowSumsFlattenIdentity(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{0.5, 0.5}, {0.25, 0.25}})

	sums, err := markov.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0.5}, sums)

	flat, err := markov.Flatten(m)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.5, 0.25, 0.25}, flat)
	_, err = markov.Flatten(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	id, err := markov.Identity(3)
	require.NoError(t, err)
	require.NoError(t, markov.ValidateTransition(id, markov.DefaultTolerance))
	_, err = markov.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	require.Equal(t, []string{"State 1", "State 2"}, markov.DefaultLabels(2))
}
