// SPDX-License-Identifier: MIT

// Package eigen computes eigenpairs of real symmetric matrices.
//
// Two entry points are provided:
//
//   - Decompose: the full decomposition by cyclic Jacobi rotations. Every
//     eigenvalue is returned in descending order together with an
//     orthonormal eigenvector basis (columns of Vectors). Exhausting the
//     sweep budget is not an error: the best-effort result is returned with
//     Converged=false, since Jacobi decreases the off-diagonal norm
//     monotonically.
//   - PowerTopK: the k dominant eigenpairs by power iteration with rank-one
//     deflation, cheaper than Decompose when k ≪ n (classical MDS needs k=3).
//     Starting vectors are random; inject WithSeed or WithRand for
//     reproducible output.
//
// Both functions are pure: inputs are copied, no state is shared between
// calls, and concurrent calls on independent inputs need no coordination.
//
// Complexity:
//   - Decompose: O(n³) per sweep, typically 5–10 sweeps for n ≤ 50.
//   - PowerTopK: O(k·maxIter·n²).
package eigen
