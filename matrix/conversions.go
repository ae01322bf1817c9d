// SPDX-License-Identifier: MIT

// Package matrix - element-type conversion and type/shape capability queries.
//
// Purpose:
//   - Convert between real element types (e.g. int → float64 before Inverse).
//   - Answer the questions a generic algorithm asks before invoking an
//     operation: "is this a matrix", "what shape does a×b have", "what shape
//     does mᵀ have".
package matrix

// Convert returns a copy of m with every element converted to U using Go's
// numeric conversion rules (float→int truncates toward zero).
// The numeric policy is carried over. A nil m yields nil.
//
// Complexity: O(r*c).
func Convert[U, T Real](m *Matrix[T]) *Matrix[U] {
	if m == nil {
		return nil
	}
	res := newWithPolicy[U](m.r, m.c, m.opts)
	for idx, v := range m.data {
		res.data[idx] = U(v)
	}

	return res
}

// IsMatrix reports whether v is a non-nil value implementing Shaper.
// A typed nil *Matrix is not a matrix.
func IsMatrix(v any) bool {
	s, ok := v.(Shaper)
	if !ok {
		return false
	}
	if n, ok := s.(interface{ isNilMatrix() bool }); ok {
		return !n.isNilMatrix()
	}

	return true
}

// ProductShape returns the shape of a×b: (a.Rows, b.Cols).
//
// Errors:
//   - ErrDimensionMismatch when a.Cols != b.Rows.
//
// Complexity: O(1).
func ProductShape(a, b Shaper) (Shape, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return Shape{}, err
	}

	return Shape{Rows: a.Rows(), Cols: b.Cols()}, nil
}

// TransposeShape returns the shape of sᵀ: (s.Cols, s.Rows).
// Complexity: O(1).
func TransposeShape(s Shaper) Shape { return s.Shape().T() }

// IsSquare reports whether s has as many rows as columns.
func IsSquare(s Shaper) bool { return s.Rows() == s.Cols() }
