// SPDX-License-Identifier: MIT

package eigen_test

import (
	"fmt"

	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/matrix"
)

// ExampleDecompose diagonalises a 2×2 symmetric matrix.
func ExampleDecompose() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
	d, err := eigen.Decompose(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("values=%.3f converged=%v\n", d.Values, d.Converged)
	// Output: values=[3.000 1.000] converged=true
}

// ExamplePowerTopK extracts the dominant eigenpair reproducibly.
func ExamplePowerTopK() {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 0}, {0, 1}})
	pairs, _ := eigen.PowerTopK(a, 1, eigen.WithSeed(1))
	fmt.Printf("λ=%.3f\n", pairs[0].Value)
	// Output: λ=4.000
}
