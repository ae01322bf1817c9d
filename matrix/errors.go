// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Validators return the bare sentinel wrapped with
// the validator name; kernels add their operation tag via matrixErrorf.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/squareness -> order -> index -> numeric policy -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOrderTooSmall signals that general minor extraction was requested on a
	// square matrix of order < 3 (closed forms cover orders 1 and 2).
	ErrOrderTooSmall = errors.New("matrix: order must be >= 3 for minor extraction")

	// ErrSingular is returned by Inverse when the determinant is zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, Apply, decode).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadDocument indicates that a serialized matrix document is malformed:
	// missing/non-positive shape or data rows that disagree with the header.
	ErrBadDocument = errors.New("matrix: malformed matrix document")

	// ErrUnsupportedElement indicates an element type with no representation
	// in the requested encoding (complex values in YAML or JSON).
	ErrUnsupportedElement = errors.New("matrix: element type not supported by encoding")
)
