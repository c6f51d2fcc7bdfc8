// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/lvspectra/matrix"
)

// Preset is a named example chain with state labels.
type Preset struct {
	Name   string
	Title  string
	Labels []string
	Rows   [][]float64
}

// Matrix returns the preset as a fresh Dense.
func (p Preset) Matrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(p.Rows)
}

// N returns the number of states.
func (p Preset) N() int { return len(p.Rows) }

// catalogue is ordered as listed by Presets.
var catalogue = []Preset{
	{
		Name:   "addendum-b",
		Title:  "Addendum B",
		Labels: []string{"State 1", "State 2", "State 3"},
		Rows: [][]float64{
			{0.95, 0.05, 0.00},
			{0.02, 0.94, 0.04},
			{0.00, 0.05, 0.95},
		},
	},
	{
		Name:   "strong-separation",
		Title:  "Strong Separation",
		Labels: []string{"A", "B", "C"},
		Rows: [][]float64{
			{0.99, 0.01, 0.00},
			{0.01, 0.98, 0.01},
			{0.00, 0.01, 0.99},
		},
	},
	{
		Name:   "weak-separation",
		Title:  "Weak Separation",
		Labels: []string{"X", "Y", "Z"},
		Rows: [][]float64{
			{0.70, 0.20, 0.10},
			{0.15, 0.70, 0.15},
			{0.10, 0.20, 0.70},
		},
	},
}

// Presets returns deep copies of all built-in chains.
func Presets() []Preset {
	out := make([]Preset, len(catalogue))
	for i, p := range catalogue {
		out[i] = p.clone()
	}

	return out
}

// Lookup returns a deep copy of the named preset.
// Errors: ErrUnknownPreset.
func Lookup(name string) (Preset, error) {
	for _, p := range catalogue {
		if p.Name == name {
			return p.clone(), nil
		}
	}

	return Preset{}, markovErrorf(opPreset, fmt.Errorf("%q: %w", name, ErrUnknownPreset))
}

func (p Preset) clone() Preset {
	rows := make([][]float64, len(p.Rows))
	for i, r := range p.Rows {
		rows[i] = append([]float64(nil), r...)
	}
	p.Rows = rows
	p.Labels = append([]string(nil), p.Labels...)

	return p
}
