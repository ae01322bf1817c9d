// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genmat/matrix"
)

// zeros returns an r×c float64 matrix for shape-only checks.
func zeros(t *testing.T, r, c int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.New[float64](r, c)
	require.NoError(t, err)

	return m
}

// TestValidateNotNil covers nil in every position.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	m := zeros(t, 1, 1)
	require.NoError(t, matrix.ValidateNotNil(m))
	require.NoError(t, matrix.ValidateNotNil(m, m, m))
	require.NoError(t, matrix.ValidateNotNil[float64]())
	require.ErrorIs(t, matrix.ValidateNotNil[float64](nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(m, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nil, m), matrix.ErrNilMatrix)
}

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Shaper
		wantErr error
	}{
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrDimensionMismatch},
		{"transposed", zeros(t, 2, 3), zeros(t, 3, 2), matrix.ErrDimensionMismatch},
		{"mixed element types", zeros(t, 2, 2), MustSlice(t, 2, 2, 1, 2, 3, 4), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
		})
	}
}

// TestValidateSquare checks square and rectangular inputs.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(zeros(t, 1, 1)))
	require.NoError(t, matrix.ValidateSquare(zeros(t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateSquare(zeros(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(zeros(t, 3, 1)), matrix.ErrNonSquare)
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 2, 6), zeros(t, 6, 3)))
	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 1, 1), zeros(t, 1, 9)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(zeros(t, 2, 6), zeros(t, 3, 6)), matrix.ErrDimensionMismatch)
}

// TestValidateMinorOrder checks the order >= 3 precondition.
func TestValidateMinorOrder(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMinorOrder(zeros(t, 3, 3)))
	require.NoError(t, matrix.ValidateMinorOrder(zeros(t, 7, 7)))
	require.ErrorIs(t, matrix.ValidateMinorOrder(zeros(t, 2, 2)), matrix.ErrOrderTooSmall)
	require.ErrorIs(t, matrix.ValidateMinorOrder(zeros(t, 1, 1)), matrix.ErrOrderTooSmall)
	require.ErrorIs(t, matrix.ValidateMinorOrder(zeros(t, 3, 4)), matrix.ErrNonSquare)
}
