// Package genmat is a small toolkit for dense, fixed-shape matrices over any
// Go numeric type, from elementwise arithmetic to cofactor-based inverses.
//
// 🚀 What is genmat?
//
//	A generic matrix library plus a command-line calculator:
//		• Matrix[T] for integers, floats and complex numbers
//		• Elementwise Combine, Add, Sub and the matrix product Mul
//		• Compound assignment: AddAssign, SubAssign, MulAssign
//		• Transpose, Minor, Determinant, Adjoint, Inverse
//		• Shape queries for generic code: ProductShape, TransposeShape, IsMatrix
//		• YAML/JSON documents for matrices
//
// ✨ Why choose genmat?
//
//   - Exact integer determinants, no floating round trip
//   - Fail-fast shape checks with sentinel errors you can errors.Is
//   - Deterministic kernels: fixed loop order, fresh results, no global state
//
// Layout:
//
//	matrix/       - Matrix[T], kernels, validators, options, codecs
//	cmd/matcalc/  - cobra CLI evaluating operations over YAML matrix files
//	examples/     - runnable scenario (mesh-current circuit solve)
//
// Quick example:
//
//	A := matrix.Must(matrix.FromRows([][]float64{{4, 7}, {2, 6}}))
//	inv, _ := matrix.Inverse(A) // [[0.6, -0.7], [-0.2, 0.4]]
//
// Determinant and Adjoint use cofactor expansion (O(n!)); they are meant for
// small orders.
//
//	go get github.com/katalvlaran/genmat
package genmat
