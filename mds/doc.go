// SPDX-License-Identifier: MIT

// Package mds embeds a distance matrix into 3-D space by classical
// (Torgerson) multidimensional scaling.
//
// Pipeline:
//
//	D ──square──▶ D² ──DoubleCenter──▶ B ──eigen.PowerTopK(3)──▶ X = V·√Λ
//
// The embedding is determined only up to rotation, reflection and
// translation; callers compare pairwise distances, never raw coordinates.
// NormalizeToUnitBox maps any point cloud into [−0.5, 0.5]³ preserving the
// aspect ratio, and PairwiseDistances/Stress measure how faithfully an
// embedding reproduces its input.
//
// Randomness: the top-k extractor starts from random vectors. Pass WithSeed
// (or WithRand) when reproducible coordinates matter; distances are stable
// either way on well-separated spectra.
package mds
