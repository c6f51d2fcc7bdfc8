// SPDX-License-Identifier: MIT

package mds

import (
	"errors"
	"fmt"
)

// ErrPointMismatch is returned when an embedding and a distance matrix
// describe a different number of points.
var ErrPointMismatch = errors.New("mds: point count does not match distance matrix")

// Operation tags for unified error wrapping.
const (
	opEmbed3D      = "mds.Embed3D"
	opEmbedGraph   = "mds.EmbedGraph"
	opDoubleCenter = "mds.DoubleCenter"
	opStress       = "mds.Stress"
)

func mdsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
