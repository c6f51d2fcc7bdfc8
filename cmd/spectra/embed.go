// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvspectra/internal/codec"
	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/katalvlaran/lvspectra/mds"
)

type embedReport struct {
	File       string        `json:"file" yaml:"file"`
	Name       string        `json:"name" yaml:"name"`
	Labels     []string      `json:"labels" yaml:"labels"`
	Points     mds.Embedding `json:"points" yaml:"points"`
	Stress     float64       `json:"stress" yaml:"stress"`
	Normalized bool          `json:"normalized" yaml:"normalized"`
	Scale      float64       `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// mdsOptions builds extractor options from the current config.
func (a *app) mdsOptions() []mds.Option {
	opts := []mds.Option{
		mds.WithTolerance(a.cfg.PowerTolerance),
		mds.WithMaxIterations(a.cfg.PowerMaxIter),
	}
	if a.cfg.Seed != 0 {
		opts = append(opts, mds.WithSeed(a.cfg.Seed))
	}

	return opts
}

func newEmbedCmd(a *app) *cobra.Command {
	var normalize, geodesic bool
	cmd := &cobra.Command{
		Use:   "embed FILE...",
		Short: "Embed distance matrices in 3-D (classical MDS)",
		Long: `Embed each distance-matrix document in three dimensions by classical
multidimensional scaling and report the stress-1 of the layout.

Coordinates are unique only up to rotation and reflection. Without a seed
($SPECTRA_SEED or --seed) degenerate spectra may yield a different layout
on every run.

With --geodesic each document is read as a weighted adjacency matrix
(0 = no edge) and embedded by its shortest-path distances.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				a.cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			opts := a.mdsOptions()

			reports, err := fanOut(cmd.Context(), a, args, func(_ context.Context, path string) (embedReport, error) {
				return a.embedFile(path, normalize, geodesic, opts)
			})
			if err != nil {
				return err
			}

			return a.emit(cmd, batch[embedReport]{Run: a.runID, Results: reports})
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "rescale the layout into the unit box [-0.5, 0.5]³")
	cmd.Flags().BoolVar(&geodesic, "geodesic", false, "treat input as a weighted graph and embed shortest-path distances")
	cmd.Flags().Int64("seed", 0, "seed for the power-iteration start vectors (0 = random)")

	return cmd
}

func (a *app) embedFile(path string, normalize, geodesic bool, opts []mds.Option) (embedReport, error) {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return embedReport{}, err
	}
	d, err := doc.Matrix()
	if err != nil {
		return embedReport{}, fmt.Errorf("%s: %w", path, err)
	}
	if geodesic {
		if d, err = matrix.ShortestPaths(d); err != nil {
			return embedReport{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	points, err := mds.Embed3D(d, opts...)
	if err != nil {
		return embedReport{}, fmt.Errorf("%s: %w", path, err)
	}
	stress, err := mds.Stress(d, points)
	if err != nil {
		return embedReport{}, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Info("embedded", "file", path, "n", len(points), "stress", stress)

	rep := embedReport{
		File:   path,
		Name:   doc.Name,
		Labels: doc.StateLabels(),
		Points: points,
		Stress: stress,
	}
	if normalize {
		box := mds.NormalizeToUnitBox(points)
		rep.Points, rep.Scale, rep.Normalized = box.Points, box.Scale, true
	}

	return rep, nil
}
