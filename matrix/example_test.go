package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/genmat/matrix"
)

// ExampleMul multiplies a 2×3 by a 3×2 matrix.
func ExampleMul() {
	a := matrix.Must(matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}}))
	b := matrix.Must(matrix.FromRows([][]int{{7, 8}, {9, 10}, {11, 12}}))

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p)

	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleMatrix_Determinant shows the exact integer determinant.
func ExampleMatrix_Determinant() {
	m := matrix.Must(matrix.FromSlice(3, 3, []int{
		2, 1, 0,
		1, 3, 1,
		0, 1, 4,
	}))

	d, _ := m.Determinant()
	fmt.Println("det =", d)

	// Output:
	// det = 18
}

// ExampleMatrix_Adjoint prints adj(A); A × adj(A) = det(A) × I.
func ExampleMatrix_Adjoint() {
	m := matrix.Must(matrix.FromSlice(3, 3, []int{
		2, 1, 0,
		1, 3, 1,
		0, 1, 4,
	}))

	adj, _ := m.Adjoint()
	fmt.Print(adj)

	p, _ := matrix.Mul(m, adj)
	fmt.Print(p)

	// Output:
	// [11, -4, 1]
	// [-4, 8, -2]
	// [1, -2, 5]
	// [18, 0, 0]
	// [0, 18, 0]
	// [0, 0, 18]
}

// ExampleInverse inverts a 2×2 matrix and reports a singular one.
func ExampleInverse() {
	m := matrix.Must(matrix.FromRows([][]float64{{4, 7}, {2, 6}}))
	inv, err := matrix.Inverse(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)

	singular := matrix.Must(matrix.FromRows([][]float64{{1, 2}, {2, 4}}))
	_, err = matrix.Inverse(singular)
	fmt.Println(errors.Is(err, matrix.ErrSingular))

	// Output:
	// [0.6, -0.7]
	// [-0.2, 0.4]
	// true
}

// ExampleMatrix_Minor removes row 0 and column 1.
func ExampleMatrix_Minor() {
	m := matrix.Must(matrix.FromSlice(3, 3, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}))

	minor, _ := m.Minor(0, 1)
	fmt.Print(minor)

	// Output:
	// [4, 6]
	// [7, 9]
}

// ExampleProductShape answers a shape question without computing anything.
func ExampleProductShape() {
	a := matrix.Must(matrix.New[float64](2, 6))
	b := matrix.Must(matrix.New[float64](6, 3))

	s, _ := matrix.ProductShape(a, b)
	fmt.Println(s, matrix.TransposeShape(a))

	// Output:
	// 2x3 6x2
}

// ExampleCombine builds the elementwise maximum of two matrices.
func ExampleCombine() {
	a := matrix.Must(matrix.FromSlice(1, 3, []int{1, 5, 3}))
	b := matrix.Must(matrix.FromSlice(1, 3, []int{4, 2, 6}))

	m, _ := matrix.Combine(a, b, func(x, y int) int { return max(x, y) })
	fmt.Print(m)

	// Output:
	// [4, 5, 6]
}
