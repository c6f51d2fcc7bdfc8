// SPDX-License-Identifier: MIT

package mds

import "math"

// Box is a point cloud rescaled into [−0.5, 0.5]³ together with the
// transform that produced it: p' = (p − Min)/Scale − 0.5.
type Box struct {
	Points   Embedding
	Scale    float64
	Min, Max Point3
}

// NormalizeToUnitBox translates and uniformly scales points so the largest
// axis extent of their bounding box spans exactly [−0.5, 0.5] and every
// coordinate lies in that interval. Aspect ratio is preserved.
//
// Behavior highlights:
//   - Empty input returns Box{Scale: 1} with zero Min/Max.
//   - Scale is floored at MinScale, so coincident points map to −0.5.
//   - Idempotent on its own output (up to floating rounding).
//   - The input slice is not modified.
//
// Complexity: O(n).
func NormalizeToUnitBox(points Embedding) Box {
	if len(points) == 0 {
		return Box{Points: Embedding{}, Scale: 1}
	}

	lo, hi := points[0], points[0]
	var k int
	for _, p := range points[1:] {
		for k = 0; k < Dimensions; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	scale := MinScale
	for k = 0; k < Dimensions; k++ {
		scale = math.Max(scale, hi[k]-lo[k])
	}

	out := make(Embedding, len(points))
	for i, p := range points {
		for k = 0; k < Dimensions; k++ {
			out[i][k] = (p[k]-lo[k])/scale - 0.5
		}
	}

	return Box{Points: out, Scale: scale, Min: lo, Max: hi}
}
