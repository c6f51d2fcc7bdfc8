// SPDX-License-Identifier: MIT

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStochastic signals a row whose entries do not sum to 1.
	ErrNotStochastic = errors.New("markov: row is not stochastic")

	// ErrUnknownPreset signals a preset name not in the catalogue.
	ErrUnknownPreset = errors.New("markov: unknown preset")
)

// RowError reports the first row whose sum deviates from 1.
// errors.Is(err, ErrNotStochastic) holds.
type RowError struct {
	Row int
	Sum float64
}

// Error implements error.
func (e *RowError) Error() string {
	return fmt.Sprintf("markov: row %d sums to %g, want 1", e.Row, e.Sum)
}

// Unwrap returns ErrNotStochastic.
func (e *RowError) Unwrap() error { return ErrNotStochastic }

const (
	opValidate  = "markov.ValidateTransition"
	opNormalize = "markov.NormalizeRows"
	opFlatten   = "markov.Flatten"
	opPreset    = "markov.Lookup"
)

func markovErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
