// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvspectra/internal/codec"
	"github.com/katalvlaran/lvspectra/markov"
)

type presetEntry struct {
	Title    string         `json:"title" yaml:"title"`
	Document codec.Document `json:"document" yaml:"document"`
}

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in transition matrices",
		Long: `Print every built-in chain as a matrix document. Save one to a file to
edit it and feed it back to 'spectra triple FILE'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets := markov.Presets()
			out := make([]presetEntry, len(presets))
			for i, p := range presets {
				out[i] = presetEntry{
					Title:    p.Title,
					Document: codec.Document{Name: p.Name, Labels: p.Labels, Rows: p.Rows},
				}
			}

			return a.emit(cmd, out)
		},
	}
}
