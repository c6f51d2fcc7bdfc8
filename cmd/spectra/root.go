// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvspectra/internal/codec"
	"github.com/katalvlaran/lvspectra/internal/config"
	"github.com/katalvlaran/lvspectra/internal/logger"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	environ map[string]string // nil reads the process environment
	format  string

	cfg   config.Config
	log   *slog.Logger
	runID string
}

// batch wraps the per-file reports of one run.
type batch[T any] struct {
	Run     string `json:"run" yaml:"run"`
	Results []T    `json:"results" yaml:"results"`
}

// newRootCmd assembles the command tree. environ overrides the process
// environment when non-nil.
func newRootCmd(environ map[string]string) *cobra.Command {
	a := &app{environ: environ}
	root := &cobra.Command{
		Use:   "spectra",
		Short: "Spectral geometry of finite Markov chains",
		Long: `spectra runs the numerical engine from the command line:

  decompose  eigenvalues and eigenvectors of symmetric matrices (cyclic Jacobi)
  embed      classical MDS of distance matrices into 3-D
  triple     spectral triple and Connes distances of a transition matrix
  plot       spectrum and embedding charts
  presets    built-in transition matrices

Defaults come from SPECTRA_* environment variables; flags override them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.format, "format", "", "report format: yaml or json (default $SPECTRA_OUTPUT_FORMAT)")

	root.AddCommand(
		newDecomposeCmd(a),
		newEmbedCmd(a),
		newTripleCmd(a),
		newPlotCmd(a),
		newPresetsCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(a.environ)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.OutputFormat = a.format
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat).
		With("run", a.runID, "cmd", cmd.Name())
	a.log.Debug("config loaded", "format", cfg.OutputFormat, "workers", a.workers())

	return nil
}

// workers resolves the configured concurrency bound.
func (a *app) workers() int {
	if a.cfg.Workers > 0 {
		return a.cfg.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// emit writes v to the command's stdout in the configured format.
func (a *app) emit(cmd *cobra.Command, v any) error {
	exp, err := codec.NewExporter(a.cfg.OutputFormat)
	if err != nil {
		return err
	}
	if err = exp.Export(v, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// fanOut runs fn for every path with at most a.workers() in flight and
// returns the results in input order. The first error cancels the rest.
func fanOut[T any](ctx context.Context, a *app, paths []string, fn func(ctx context.Context, path string) (T, error)) ([]T, error) {
	out := make([]T, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, path)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
