// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/order checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate nothing on success.
//
// Note:
//  - Shape validators accept Shaper and assume non-nil operands; call
//    ValidateNotNil first (composite order: NotNil → Shape → Order).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every matrix reference is non-nil and constructed.
//
// Returns ErrNilMatrix on the first nil operand and ErrInvalidDimensions on
// an empty (zero-value) Matrix.
// Complexity: O(len(ms)).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T Element](ms ...*Matrix[T]) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
		if !m.Shape().valid() {
			return validatorErrorf("ValidateNotNil", ErrInvalidDimensions)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Combine/Add/Sub and compound assignment.
func ValidateSameShape(a, b Shaper) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Shaper) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks the inner dimension of a product a×b.
//
// Errors: ErrDimensionMismatch when a.Cols != b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b Shaper) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMinorOrder checks the precondition of general minor extraction:
// square with order >= 3.
//
// Errors: ErrNonSquare, ErrOrderTooSmall.
// Complexity: O(1).
func ValidateMinorOrder(m Shaper) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.Rows() < minMinorOrder {
		return validatorErrorf("ValidateMinorOrder", ErrOrderTooSmall)
	}

	return nil
}

// validateIndex checks 0 <= row < Rows and 0 <= col < Cols.
func validateIndex(m Shaper, row, col int) error {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return ErrOutOfRange
	}

	return nil
}
