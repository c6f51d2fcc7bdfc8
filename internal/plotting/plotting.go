// SPDX-License-Identifier: MIT

// Package plotting renders eigen spectra and 2-D projections of 3-D
// embeddings with gonum/plot.
package plotting

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvspectra/mds"
)

// Default canvas size.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// ErrNoData signals an empty spectrum or embedding.
var ErrNoData = errors.New("plotting: nothing to plot")

// ErrAxis signals a projection axis outside [0, 3) or two equal axes.
var ErrAxis = errors.New("plotting: invalid projection axes")

var axisNames = [mds.Dimensions]string{"x", "y", "z"}

// Spectrum draws one bar per eigenvalue, in the given order.
func Spectrum(values []float64, title string) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "k"
	p.Y.Label.Text = "λ"

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("plotting: spectrum bars: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars, plotter.NewGrid())

	names := make([]string, len(values))
	for i := range names {
		names[i] = fmt.Sprintf("λ%d", i)
	}
	p.NominalX(names...)

	return p, nil
}

// Embedding draws a scatter of points projected on axes (ax, ay) with an
// optional label per point.
func Embedding(points mds.Embedding, labels []string, ax, ay int, title string) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}
	if ax < 0 || ay < 0 || ax >= mds.Dimensions || ay >= mds.Dimensions || ax == ay {
		return nil, fmt.Errorf("(%d,%d): %w", ax, ay, ErrAxis)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = axisNames[ax]
	p.Y.Label.Text = axisNames[ay]

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt[ax]
		xys[i].Y = pt[ay]
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("plotting: scatter: %w", err)
	}
	p.Add(scatter, plotter.NewGrid())

	if len(labels) == len(points) {
		names, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return nil, fmt.Errorf("plotting: labels: %w", err)
		}
		p.Add(names)
	}

	return p, nil
}

// Save writes p to path; the extension selects the format (png, svg, pdf…).
func Save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", filepath.Base(path), err)
	}

	return nil
}

// Write renders p in format ("png", "svg", …) to w.
func Write(p *plot.Plot, w io.Writer, format string) error {
	wt, err := p.WriterTo(Width, Height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("plotting: write: %w", err)
	}

	return nil
}
