// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over Matrix[T]: the generic
// elementwise combinator with Add/Sub as its specializations, the matrix
// product, transpose, scalar scaling, compound assignment and equality.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Compound assignment (AddAssign/SubAssign/MulAssign) computes into a new
//     buffer and copies it into the receiver's storage only on success.
//   - Results inherit the numeric policy of the left operand.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCombine     = "Combine"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opAddAssign   = "AddAssign"
	opSubAssign   = "SubAssign"
	opMulAssign   = "MulAssign"
	opAllClose    = "AllClose"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// combine is the shared kernel behind Combine, Add, Sub and the compound forms.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a, b) and ValidateSameShape(a, b).
//   - Stage 2: single flat loop res[idx] = fn(a[idx], b[idx]).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func combine[T Element](a, b *Matrix[T], fn func(x, y T) T, opTag string) (*Matrix[T], error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newWithPolicy[T](a.r, a.c, a.opts)
	for idx := range res.data { // deterministic 0..n-1; same layout on both sides
		res.data[idx] = fn(a.data[idx], b.data[idx])
	}

	return res, nil
}

// Combine builds a new matrix of the common shape where
// cell (i,j) = fn(a[i][j], b[i][j]).
// MAIN DESCRIPTION:
//   - The single generic elementwise binary operator; Add and Sub are its
//     specializations with + and -.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Keep fn pure; it is called exactly once per cell in row-major order.
func Combine[T Element](a, b *Matrix[T], fn func(x, y T) T) (*Matrix[T], error) {
	return combine(a, b, fn, opCombine)
}

func plus[T Element](x, y T) T  { return x + y }
func minus[T Element](x, y T) T { return x - y }

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return combine(a, b, plus[T], opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return combine(a, b, minus[T], opSub) }

// Mul performs the matrix product C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop, C[i,j] = Σ_k A[i,k]*B[k,j], accumulating in T.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Matrix: new matrix with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order; integer inputs give exact integer results.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// mul is the unchecked product kernel shared by Mul and MulAssign.
func mul[T Element](a, b *Matrix[T]) *Matrix[T] {
	aRows, inner, bCols := a.r, a.c, b.c
	res := newWithPolicy[T](aRows, bCols, a.opts)

	var (
		i, j, k    int
		rowA, rowR int
		acc        T
	)
	for i = 0; i < aRows; i++ {
		rowA = i * inner
		rowR = i * bCols
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += a.data[rowA+k] * b.data[k*bCols+j]
			}
			res.data[rowR+j] = acc
		}
	}

	return res
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ), so that
// t[j][i] = m[i][j]. The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Element](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transpose(m), nil
}

// transpose is the unchecked kernel; also used by Adjoint.
func transpose[T Element](m *Matrix[T]) *Matrix[T] {
	rows, cols := m.r, m.c
	res := newWithPolicy[T](cols, rows, m.opts)

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Scale returns alpha*m as a fresh matrix.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when the result is not finite under the policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Element](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newWithPolicy[T](m.r, m.c, m.opts)
	for idx, v := range m.data {
		res.data[idx] = alpha * v
		if res.opts.validateNaNInf && isNaNInf(res.data[idx]) {
			return nil, matrixErrorf(opScale, elementErrorf(opScale, idx/m.c, idx%m.c, ErrNaNInf))
		}
	}

	return res, nil
}

// AddAssign replaces m with m + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. On error m is left untouched.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) staging.
func (m *Matrix[T]) AddAssign(b *Matrix[T]) error {
	res, err := combine(m, b, plus[T], opAddAssign)
	if err != nil {
		return err
	}
	copy(m.data, res.data) // in place; Row views stay live

	return nil
}

// SubAssign replaces m with m - b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. On error m is left untouched.
func (m *Matrix[T]) SubAssign(b *Matrix[T]) error {
	res, err := combine(m, b, minus[T], opSubAssign)
	if err != nil {
		return err
	}
	copy(m.data, res.data)

	return nil
}

// MulAssign replaces m with m × b.
// Both operands must be square and of equal order so the product keeps the
// receiver's shape.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (either operand), ErrDimensionMismatch (orders differ).
//     On error m is left untouched.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) staging.
func (m *Matrix[T]) MulAssign(b *Matrix[T]) error {
	if err := ValidateNotNil(m, b); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	if err := ValidateSquare(b); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	copy(m.data, mul(m, b).data)

	return nil
}

// Equal reports whether a and b have the same shape and every corresponding
// element compares equal with ==. A shape mismatch is false, never an error.
// Two nil matrices are equal; nil and non-nil are not.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func Equal[T Element](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool { return Equal(m, o) }

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; equal infinities compare close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests such as
//     Inverse(A)×A ≈ I.
func AllClose[T Field](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	var (
		diff, ref float64
		ok        bool
	)
	for idx := range a.data {
		x, y := a.data[idx], b.data[idx]
		if x == y { // covers equal infinities
			continue
		}
		if diff, ok = magnitude(x - y); !ok {
			return false, nil // named element type: only exact equality is known
		}
		ref, _ = magnitude(y)
		if !(diff <= atol+rtol*ref) { // NaN fails this comparison
			return false, nil
		}
	}

	return true, nil
}
