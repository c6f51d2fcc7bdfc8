// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/internal/codec"
	"github.com/katalvlaran/lvspectra/internal/plotting"
	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/katalvlaran/lvspectra/mds"
)

// Chart kinds.
const (
	kindSpectrum  = "spectrum"
	kindEmbedding = "embedding"
)

type plotReport struct {
	Run  string `json:"run" yaml:"run"`
	File string `json:"file" yaml:"file"`
	Kind string `json:"kind" yaml:"kind"`
	Out  string `json:"out" yaml:"out"`
}

type plotFlags struct {
	kind       string
	out        string
	symmetrize bool
	axes       []int
}

func newPlotCmd(a *app) *cobra.Command {
	var f plotFlags
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Render a spectrum or embedding chart",
		Long: `Render FILE as a chart. The output format follows the extension of --out
(png, svg, pdf, eps, jpg, tif).

  --kind spectrum   bar chart of the eigenvalues of the matrix (descending)
  --kind embedding  scatter of the classical MDS layout of a distance matrix,
                    projected on --axes (default 0,1)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(f.axes) != 2 {
				return fmt.Errorf("--axes wants two indices, got %d", len(f.axes))
			}
			path := args[0]
			doc, err := codec.ReadFile(path)
			if err != nil {
				return err
			}
			m, err := doc.Matrix()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			var p *plot.Plot
			switch f.kind {
			case kindSpectrum:
				p, err = a.spectrumPlot(doc, m, f.symmetrize)
			case kindEmbedding:
				p, err = a.embeddingPlot(doc, m, f.axes)
			default:
				return fmt.Errorf("unknown --kind %q (want %s or %s)", f.kind, kindSpectrum, kindEmbedding)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out := f.out
			if out == "" {
				out = filepath.Join(filepath.Dir(path), doc.Name+"-"+f.kind+".png")
			}
			if err = plotting.Save(p, out); err != nil {
				return err
			}
			a.log.Info("chart written", "file", path, "kind", f.kind, "out", out)

			return a.emit(cmd, plotReport{Run: a.runID, File: path, Kind: f.kind, Out: out})
		},
	}
	cmd.Flags().StringVar(&f.kind, "kind", kindSpectrum, "chart kind: spectrum or embedding")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output path (default <dir>/<name>-<kind>.png)")
	cmd.Flags().BoolVar(&f.symmetrize, "symmetrize", false, "plot the spectrum of (A+Aᵀ)/2")
	cmd.Flags().IntSliceVar(&f.axes, "axes", []int{0, 1}, "embedding axes to project on")

	return cmd
}

func (a *app) spectrumPlot(doc *codec.Document, m *matrix.Dense, symmetrize bool) (*plot.Plot, error) {
	var err error
	if symmetrize {
		if m, err = matrix.Symmetrize(m); err != nil {
			return nil, err
		}
	}
	dec, err := eigen.Decompose(m, eigen.WithTolerance(a.cfg.Tolerance), eigen.WithMaxSweeps(a.cfg.MaxSweeps))
	if err != nil {
		return nil, err
	}

	return plotting.Spectrum(dec.Values, doc.Name)
}

func (a *app) embeddingPlot(doc *codec.Document, d *matrix.Dense, axes []int) (*plot.Plot, error) {
	points, err := mds.Embed3D(d, a.mdsOptions()...)
	if err != nil {
		return nil, err
	}

	return plotting.Embedding(points, doc.StateLabels(), axes[0], axes[1], doc.Name)
}
