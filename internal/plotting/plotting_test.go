// SPDX-License-Identifier: MIT

package plotting_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvspectra/internal/plotting"
	"github.com/katalvlaran/lvspectra/mds"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestSpectrum(t *testing.T) {
	t.Parallel()
	p, err := plotting.Spectrum([]float64{3, 1, 0.5}, "spectrum")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, plotting.Write(p, &buf, "png"))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	_, err = plotting.Spectrum(nil, "")
	require.ErrorIs(t, err, plotting.ErrNoData)
}

func TestEmbedding(t *testing.T) {
	t.Parallel()
	pts := mds.Embedding{{0, 0, 0}, {1, 0, 0.5}, {0, 1, -0.5}}
	p, err := plotting.Embedding(pts, []string{"A", "B", "C"}, 0, 1, "layout")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "layout.svg")
	require.NoError(t, plotting.Save(p, path))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(body), "<svg")

	_, err = plotting.Embedding(pts, nil, 0, 0, "")
	require.ErrorIs(t, err, plotting.ErrAxis)
	_, err = plotting.Embedding(pts, nil, 0, 3, "")
	require.ErrorIs(t, err, plotting.ErrAxis)
	_, err = plotting.Embedding(nil, nil, 0, 1, "")
	require.ErrorIs(t, err, plotting.ErrNoData)
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()
	p, err := plotting.Spectrum([]float64{1}, "")
	require.NoError(t, err)
	require.Error(t, plotting.Write(p, &bytes.Buffer{}, "bmp"))
}
