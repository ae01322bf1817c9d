// SPDX-License-Identifier: MIT

// Package matrix - cofactor-based linear algebra: minors, determinant,
// cofactors, adjoint and inverse.
//
// Purpose:
//   - Determinant by recursive cofactor expansion along row 0, with closed
//     forms for orders 1 and 2.
//   - Adjoint as the transpose of the cofactor matrix.
//   - Inverse as adj(A)/det(A), with closed forms for orders 1 and 2 and an
//     explicit ErrSingular on a zero determinant.
//
// Determinism & Numeric policy:
//   - Integer matrices get exact integer determinants (no floating round trip).
//   - float32 matrices accumulate through float64 and are rounded once.
//   - float64/complex matrices accumulate in their own type.
//   - DeterminantFloat64 keeps the always-float64 path for callers that want it.
//
// Complexity quicksheet:
//   - Minor: O(n^2); Determinant: O(n!); Adjoint/Inverse: O(n^2 · (n-1)!).
//     Intended for small orders only.

package matrix

import "fmt"

// minMinorOrder is the smallest order for which general minor extraction is
// defined; orders 1 and 2 use closed forms.
const minMinorOrder = 3

// Minor returns the (n-1)×(n-1) submatrix left after deleting row and col.
// MAIN DESCRIPTION:
//   - Remaining rows and columns keep their original relative order and are
//     packed densely in row-major order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooSmall (order < 3), ErrOutOfRange.
//
// Complexity:
//   - Time O(n^2), Space O((n-1)^2).
func (m *Matrix[T]) Minor(row, col int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateMinorOrder(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := validateIndex(m, row, col); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", opMinor, row, col, err)
	}

	return m.minor(row, col), nil
}

// minor is the unchecked kernel: m square of order >= 2, indices in range.
func (m *Matrix[T]) minor(row, col int) *Matrix[T] {
	n := m.r - 1
	res := newWithPolicy[T](n, n, m.opts)

	var i, j, base int
	k := 0 // write cursor into res.data
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[k] = m.data[base+j]
			k++
		}
	}

	return res
}

// Determinant returns det(m) by cofactor expansion along the first row.
// Implementation:
//   - order 1: the single element.
//   - order 2: a00*a11 - a01*a10.
//   - order >= 3: Σ_col a[0][col] * (-1)^col * det(minor(0, col)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
//
// Notes:
//   - Integer element types stay exact; unsigned types wrap modulo 2^bits like
//     any other unsigned arithmetic.
func (m *Matrix[T]) Determinant() (T, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	return detOf(m), nil
}

// detOf dispatches float32 matrices through a float64 accumulation.
func detOf[T Element](m *Matrix[T]) T {
	if m32, ok := any(m).(*Matrix[float32]); ok {
		d := determinant(Convert[float64](m32))
		return any(float32(d)).(T)
	}

	return determinant(m)
}

// determinant is the recursive kernel; m is square.
func determinant[T Element](m *Matrix[T]) T {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	var det, term T
	for col := 0; col < m.c; col++ {
		term = m.data[col] * determinant(m.minor(0, col))
		if col%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}

	return det
}

// DeterminantFloat64 computes det(m) with every intermediate in float64,
// regardless of the element type.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func DeterminantFloat64[T Real](m *Matrix[T]) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(Convert[float64](m)), nil
}

// Cofactor returns (-1)^(row+col) * det(minor(row, col)).
// Orders 1 and 2 use closed forms (1 and the opposite diagonal element).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
//
// Complexity:
//   - Time O((n-1)!).
func (m *Matrix[T]) Cofactor(row, col int) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}
	if err := validateIndex(m, row, col); err != nil {
		return zero, fmt.Errorf("%s(%d,%d): %w", opCofactor, row, col, err)
	}

	return m.cofactor(row, col), nil
}

// cofactor is the unchecked kernel.
func (m *Matrix[T]) cofactor(row, col int) T {
	var v T
	switch m.r {
	case 1:
		v = 1 // determinant of the empty minor
	case 2:
		v = m.data[(1-row)*2+(1-col)]
	default:
		v = detOf(m.minor(row, col))
	}
	if (row+col)%2 == 1 {
		v = -v
	}

	return v
}

// CofactorMatrix returns C with C[i][j] = Cofactor(i, j).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func (m *Matrix[T]) CofactorMatrix() (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return m.cofactorMatrix(), nil
}

func (m *Matrix[T]) cofactorMatrix() *Matrix[T] {
	n := m.r
	res := newWithPolicy[T](n, n, m.opts)

	var row, col int
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			res.data[row*n+col] = m.cofactor(row, col)
		}
	}

	return res
}

// Adjoint returns the adjugate of m: the transpose of its cofactor matrix.
// MAIN DESCRIPTION:
//   - order 1: [1]; order 2: [[d,-b],[-c,a]] for [[a,b],[c,d]];
//     order >= 3: general cofactors through Minor.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
//
// AI-Hints:
//   - A × Adjoint(A) = det(A) × I holds for every square A, singular included.
func (m *Matrix[T]) Adjoint() (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return transpose(m.cofactorMatrix()), nil
}

// Inverse computes A^{-1} from the adjoint and the determinant.
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateSquare; det = Determinant(A).
//   - Stage 2: |det| <= eps (Options.Epsilon, default exact zero) ⇒ ErrSingular.
//   - Stage 3: order 1: [1/det]; order 2: [[d,-b],[-c,a]]/det;
//     order >= 3: adj(A)[i][j]/det elementwise.
//
// Returns:
//   - *Matrix: fresh n×n inverse carrying the policy of m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
//
// Notes:
//   - Integer matrices are inverted by converting first, e.g.
//     Inverse(Convert[float64](m)).
func Inverse[T Field](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := detOf(m)
	if isZeroWithin(det, m.opts.eps) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	var inv *Matrix[T]
	switch m.r {
	case 1:
		inv = newWithPolicy[T](1, 1, m.opts)
		inv.data[0] = 1 / det
	case 2:
		a, b, c, d := m.data[0], m.data[1], m.data[2], m.data[3]
		inv = newWithPolicy[T](2, 2, m.opts)
		inv.data[0], inv.data[1] = d/det, -b/det
		inv.data[2], inv.data[3] = -c/det, a/det
	default:
		inv = transpose(m.cofactorMatrix())
		for idx := range inv.data {
			inv.data[idx] /= det
		}
	}

	return inv, nil
}
