// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities.
//   - Fail fast (t.Fatalf via require) so later steps can assume non-nil values.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genmat/matrix"
)

// Tolerances used by floating comparisons.
const (
	tolExact = 1e-12
	tolLoose = 1e-9
)

// MustRows builds a matrix from explicit rows or fails the test.
func MustRows[T matrix.Element](t *testing.T, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err, "FromRows")

	return m
}

// MustSlice builds an r×c matrix from a flat row-major slice or fails the test.
func MustSlice[T matrix.Element](t *testing.T, r, c int, values ...T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromSlice(r, c, values)
	require.NoError(t, err, "FromSlice(%d,%d)", r, c)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T matrix.Element](t *testing.T, n int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewIdentity[T](n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Element](t *testing.T, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireEqual asserts exact equality, printing both matrices on failure.
func RequireEqual[T matrix.Element](t *testing.T, want, got *matrix.Matrix[T]) {
	t.Helper()
	require.True(t, matrix.Equal(want, got), "want:\n%vgot:\n%v", want, got)
}

// RequireClose asserts AllClose(got, want, 0, tol).
func RequireClose[T matrix.Field](t *testing.T, want, got *matrix.Matrix[T], tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%vgot:\n%v", want, got)
}

// wide is the set of element types every integral fixture fits into.
type wide interface {
	~int | ~int64 | ~float32 | ~float64
}

// sample3x3 is the 3×3 fixture with a known minor and determinant.
func sample3x3(t *testing.T) *matrix.Matrix[float64] {
	t.Helper()

	return MustSlice(t, 3, 3,
		-1.0, 3.0, 12.9,
		-12.78, -0.9, 900.8,
		23.4, 0.0, 69.8,
	)
}

// sample4x4 is the integral 4×4 fixture with a known adjoint (det = 88).
func sample4x4[T wide](t *testing.T) *matrix.Matrix[T] {
	t.Helper()

	return MustSlice[T](t, 4, 4,
		5, -2, 2, 7,
		1, 0, 0, 3,
		-3, 1, 5, 0,
		3, -1, -9, 4,
	)
}

// sample4x4Adjoint is adj(sample4x4).
func sample4x4Adjoint[T wide](t *testing.T) *matrix.Matrix[T] {
	t.Helper()

	return MustSlice[T](t, 4, 4,
		-12, 76, -60, -36,
		-56, 208, -82, -58,
		4, 4, -2, -10,
		4, 4, 20, 12,
	)
}
