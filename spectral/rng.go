// SPDX-License-Identifier: MIT

package spectral

import "math/rand"

// DefaultSeed is the base seed of the Connes-distance restarts.
const DefaultSeed int64 = 42

// deriveSeed mixes a base seed and a stream id with a SplitMix64 finaliser so
// neighbouring streams are decorrelated.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// pairRNG returns the private random stream of the unordered pair {i, j},
// so every pair is reproducible regardless of worker scheduling.
// *rand.Rand is not goroutine-safe; each pair owns its stream.
func pairRNG(seed int64, n, i, j int) *rand.Rand {
	if i > j {
		i, j = j, i
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i*n+j))))
}
