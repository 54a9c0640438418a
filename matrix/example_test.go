package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/kuranet/matrix"
)

// ExampleLaplacian shows the weighted Laplacian of a two-node coupling.
func ExampleLaplacian() {
	A, _ := matrix.NewDenseFromRows([][]float64{{0, 2}, {2, 0}})
	L, _ := matrix.Laplacian(A)
	fmt.Print(L)
	// Output:
	// [2, -2]
	// [-2, 2]
}

// ExampleNewIncidence builds the incidence of a single oriented edge.
func ExampleNewIncidence() {
	B, _ := matrix.NewIncidence(2, []matrix.Edge{{From: 0, To: 1}})
	fmt.Print(B)
	// Output:
	// [-1]
	// [1]
}
