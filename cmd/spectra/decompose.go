// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/internal/codec"
	"github.com/katalvlaran/lvspectra/markov"
	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/katalvlaran/lvspectra/spectral"
)

type decomposeReport struct {
	File      string      `json:"file" yaml:"file"`
	Name      string      `json:"name" yaml:"name"`
	Labels    []string    `json:"labels" yaml:"labels"`
	Values    []float64   `json:"values" yaml:"values"`
	Vectors   [][]float64 `json:"vectors" yaml:"vectors"` // Vectors[k] pairs with Values[k]
	Sweeps    int         `json:"sweeps" yaml:"sweeps"`
	OffNorm   float64     `json:"off_norm" yaml:"off_norm"`
	Converged bool        `json:"converged" yaml:"converged"`

	// Set only for row-stochastic input; computed from 1 − λ of the
	// symmetrised matrix.
	Diagnostics *spectral.Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func newDecomposeCmd(a *app) *cobra.Command {
	var symmetrize bool
	cmd := &cobra.Command{
		Use:   "decompose FILE...",
		Short: "Eigen-decompose symmetric matrices",
		Long: `Decompose each matrix document with the cyclic Jacobi method and print
eigenvalues in descending order with their unit eigenvectors.

Non-symmetric input is rejected unless --symmetrize replaces A by (A+Aᵀ)/2.
Row-stochastic input also reports the spectral gap, mixing time and regime.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("tolerance") {
				a.cfg.Tolerance, _ = flags.GetFloat64("tolerance")
			}
			if flags.Changed("max-sweeps") {
				a.cfg.MaxSweeps, _ = flags.GetInt("max-sweeps")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			opts := []eigen.Option{
				eigen.WithTolerance(a.cfg.Tolerance),
				eigen.WithMaxSweeps(a.cfg.MaxSweeps),
			}

			reports, err := fanOut(cmd.Context(), a, args, func(_ context.Context, path string) (decomposeReport, error) {
				return a.decomposeFile(path, symmetrize, opts)
			})
			if err != nil {
				return err
			}

			return a.emit(cmd, batch[decomposeReport]{Run: a.runID, Results: reports})
		},
	}
	cmd.Flags().Float64("tolerance", eigen.DefaultTolerance, "off-diagonal convergence threshold")
	cmd.Flags().Int("max-sweeps", eigen.DefaultMaxSweeps, "sweep cap; reaching it reports converged=false")
	cmd.Flags().BoolVar(&symmetrize, "symmetrize", false, "decompose (A+Aᵀ)/2 instead of rejecting asymmetric input")

	return cmd
}

func (a *app) decomposeFile(path string, symmetrize bool, opts []eigen.Option) (decomposeReport, error) {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return decomposeReport{}, err
	}
	m, err := doc.Matrix()
	if err != nil {
		return decomposeReport{}, fmt.Errorf("%s: %w", path, err)
	}
	in := m
	if symmetrize {
		if in, err = matrix.Symmetrize(m); err != nil {
			return decomposeReport{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	dec, err := eigen.Decompose(in, opts...)
	if err != nil {
		return decomposeReport{}, fmt.Errorf("%s: %w", path, err)
	}
	if !dec.Converged {
		a.log.Warn("jacobi hit sweep cap", "file", path, "sweeps", dec.Sweeps, "off_norm", dec.OffNorm)
	}
	a.log.Info("decomposed", "file", path, "n", dec.N(), "sweeps", dec.Sweeps)

	rep := decomposeReport{
		File:      path,
		Name:      doc.Name,
		Labels:    doc.StateLabels(),
		Values:    dec.Values,
		Vectors:   make([][]float64, dec.N()),
		Sweeps:    dec.Sweeps,
		OffNorm:   dec.OffNorm,
		Converged: dec.Converged,
	}
	for k := range rep.Vectors {
		rep.Vectors[k], _ = dec.Vector(k) // k < N
	}
	if markov.ValidateTransition(m, markov.DefaultTolerance) == nil {
		gen := make([]float64, len(dec.Values))
		for k, v := range dec.Values {
			gen[k] = 1 - v
		}
		d := spectral.Diagnose(gen)
		rep.Diagnostics = &d
	}

	return rep, nil
}
