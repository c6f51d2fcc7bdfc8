// SPDX-License-Identifier: MIT

// Package codec reads matrix documents and writes reports in YAML or JSON.
package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvspectra/matrix"
)

// Supported formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat signals an unsupported format name or file extension.
var ErrUnknownFormat = errors.New("codec: unknown format")

// ErrLabels signals a label list whose length differs from the matrix order.
var ErrLabels = errors.New("codec: labels do not match matrix size")

// Document is a named square matrix with optional state labels.
//
//	name: addendum-b
//	labels: [A, B, C]
//	rows:
//	  - [0.95, 0.05, 0.00]
type Document struct {
	Name   string      `yaml:"name,omitempty" json:"name,omitempty"`
	Labels []string    `yaml:"labels,omitempty" json:"labels,omitempty" validate:"omitempty,dive,required"`
	Rows   [][]float64 `yaml:"rows" json:"rows" validate:"required,min=1,dive,min=1"`
}

// Importer decodes a Document.
type Importer interface {
	Parse(r io.Reader) (*Document, error)
	Format() string
}

// Exporter encodes any report value.
type Exporter interface {
	Export(v any, w io.Writer) error
	Format() string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks document structure: at least one non-empty row and,
// when labels are present, one non-empty label per row.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("codec: invalid document: %w", err)
	}
	if len(d.Labels) != 0 && len(d.Labels) != len(d.Rows) {
		return fmt.Errorf("%d labels for %d rows: %w", len(d.Labels), len(d.Rows), ErrLabels)
	}

	return nil
}

// Matrix converts Rows into a Dense (ragged or non-finite rows fail).
func (d *Document) Matrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(d.Rows)
}

// StateLabels returns Labels, or "0".."n-1" when none were given.
func (d *Document) StateLabels() []string {
	if len(d.Labels) == len(d.Rows) {
		return d.Labels
	}
	out := make([]string, len(d.Rows))
	for i := range out {
		out[i] = fmt.Sprint(i)
	}

	return out
}

// ParseFormat normalises a format name.
func ParseFormat(name string) (string, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (string, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// NewImporter returns the importer for format.
func NewImporter(format string) (Importer, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == FormatJSON {
		return NewJSONCodec(), nil
	}

	return NewYAMLCodec(), nil
}

// NewExporter returns the exporter for format.
func NewExporter(format string) (Exporter, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == FormatJSON {
		return NewJSONCodec(), nil
	}

	return NewYAMLCodec(), nil
}

// ReadFile decodes and validates the document at path; the format follows
// the extension.
func ReadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	imp, err := NewImporter(format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := imp.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
