// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points named after the operation a caller has in
//     mind (Sum, Product, T, ...), each delegating to the canonical kernel.
//   - Avoid any logic duplication.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros is an intention-revealing alias of New.
func NewZeros[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return New[T](rows, cols, opts...)
}

// ZerosLike returns a new zero matrix with the same shape and policy as m.
//
// Errors: ErrNilMatrix.
func ZerosLike[T Element](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newWithPolicy[T](m.r, m.c, m.opts), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
//
// AI-Hints: handy as the neutral element when checking A×I = A.
func IdentityLike[T Element](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	id := newWithPolicy[T](m.r, m.c, m.opts)
	for i := 0; i < m.r; i++ {
		id.data[i*m.c+i] = 1
	}

	return id, nil
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E Element](m *Matrix[E]) (*Matrix[E], error) { return Transpose(m) }

// Adjugate is an alias for (*Matrix).Adjoint.
func Adjugate[T Element](m *Matrix[T]) (*Matrix[T], error) { return m.Adjoint() }

// InverseOf is an alias for Inverse.
func InverseOf[T Field](m *Matrix[T]) (*Matrix[T], error) { return Inverse(m) }
