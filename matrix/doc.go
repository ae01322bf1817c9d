// Package matrix offers a generic, dense, fixed-shape matrix type with
// arithmetic and cofactor-based linear algebra.
//
// The matrix package provides:
//
//   - Matrix[T] over any Element type (integers, floats, complex numbers);
//     the shape is fixed at construction and validated there.
//   - Combine, the elementwise binary operator, with Add and Sub as its
//     specializations; Mul for the matrix product; AddAssign, SubAssign and
//     MulAssign for compound assignment.
//   - Transpose, Minor, Determinant (recursive cofactor expansion), Adjoint
//     and Inverse (adjoint over determinant, ErrSingular on det == 0).
//   - Shape queries for generic code: Shaper, IsMatrix, ProductShape,
//     TransposeShape.
//   - YAML and JSON documents for persisting and exchanging matrices.
//
// Go has no const generics, so shape compatibility is checked when an
// operation runs and reported through sentinel errors (ErrDimensionMismatch,
// ErrNonSquare, ...) instead of being rejected at compile time. Element-type
// capability, on the other hand, is still a compile-time check.
//
// Determinant and Adjoint are O(n!) and meant for small orders.
//
// See the examples in this package for usage patterns.
package matrix
