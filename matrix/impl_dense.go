// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T] storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Fix the shape at construction: no method ever changes Rows or Cols.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Row(i) is the mutable row view (slice into storage); it panics on a bad
//     index exactly like indexing a fixed array would.
//   - Prefer At/Set in code that handles untrusted indices.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxApply     = "Apply"     // method tag used in error wrappers
	ctxFromSlice = "FromSlice" // ctor tag
	ctxFromRows  = "FromRows"  // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// elementErrorf wraps an error with a uniform Matrix context and callsite indices.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func elementErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense, fixed-shape, row-major matrix of T.
//   - r,c hold dimensions (rows, cols), both > 0 and immutable after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts carries the numeric policy (see options.go).
//
// The zero value is an empty 0×0 matrix usable only as a decode target.
type Matrix[T Element] struct {
	r, c int     // row and column counts
	data []T     // contiguous row-major storage (len == r*c)
	opts Options // numeric policy
}

// New creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the default numeric
//     policy overridden by opts.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and resolve options.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if !(Shape{Rows: rows, Cols: cols}).valid() {
		return nil, ErrInvalidDimensions
	}

	return newWithPolicy[T](rows, cols, gatherOptions(opts...)), nil
}

// newWithPolicy allocates an r×c zero matrix carrying policy.
// Internal: callers guarantee rows, cols > 0.
func newWithPolicy[T Element](rows, cols int, policy Options) *Matrix[T] {
	return &Matrix[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols), // make() zero-fills deterministically
		opts: policy,
	}
}

// NewFlagged creates an r×c matrix that is either all zeros or carries ones
// on its main diagonal (cells (i,i), i < min(rows, cols)) when identity is true.
// Complexity: O(r*c).
func NewFlagged[T Element](rows, cols int, identity bool, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if identity {
		n := min(rows, cols)
		for i := 0; i < n; i++ {
			m.data[i*cols+i] = 1
		}
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
func NewIdentity[T Element](n int, opts ...Option) (*Matrix[T], error) {
	return NewFlagged[T](n, n, true, opts...)
}

// FromSlice builds an r×c matrix by walking values in row-major order.
// MAIN DESCRIPTION:
//   - Iteration stops at min(len(values), rows*cols): excess input is
//     ignored, and cells beyond exhausted input keep their zero value.
//
// Errors:
//   - ErrInvalidDimensions for a non-positive shape.
//   - ErrNaNInf when the policy is on and a value is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromSlice[T Element](rows, cols int, values []T, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	n := min(len(values), len(m.data))
	for idx := 0; idx < n; idx++ {
		if m.opts.validateNaNInf && isNaNInf(values[idx]) {
			return nil, elementErrorf(ctxFromSlice, idx/cols, idx%cols, ErrNaNInf)
		}
		m.data[idx] = values[idx]
	}

	return m, nil
}

// FromRows builds a matrix from an explicit row-major array.
// Every row must have the same, non-zero length.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//   - ErrNaNInf when the policy is on and a value is not finite.
//
// Complexity: O(r*c).
func FromRows[T Element](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := newWithPolicy[T](r, c, gatherOptions(opts...))

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if m.opts.validateNaNInf && isNaNInf(rows[i][j]) {
				return nil, elementErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Must returns m or panics with err. Intended for literals in tests,
// examples and package-level variables.
func Must[T Element](m *Matrix[T], err error) *Matrix[T] {
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Matrix[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Len returns the number of cells (Rows*Cols).
func (m *Matrix[T]) Len() int { return len(m.data) }

// IsSquare reports Rows == Cols.
func (m *Matrix[T]) IsSquare() bool { return m.r == m.c }

// Options returns the numeric policy carried by m.
func (m *Matrix[T]) Options() Options { return m.opts }

// isNilMatrix backs IsMatrix: a typed nil *Matrix is not a matrix.
func (m *Matrix[T]) isNilMatrix() bool { return m == nil }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if err := validateIndex(m, row, col); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, elementErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values under the policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return elementErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaNInf && isNaNInf(v) {
		return elementErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a mutable view into the storage.
// Writes through the slice bypass the numeric policy. The slice capacity is
// capped at Cols, so append never bleeds into the next row. Compound
// assignment and Apply update storage in place, so the view stays live.
// Panics when i is out of range, like indexing a fixed array.
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.r {
		panic(elementErrorf("Row", i, 0, ErrOutOfRange))
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi]
}

// Data returns a row-major copy of the storage.
// Complexity: O(r*c).
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows returns a copy of the storage as a slice of rows.
// Complexity: O(r*c).
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]T(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := newWithPolicy[T](m.r, m.c, m.opts)
	copy(cp.data, m.data)

	return cp
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging; not for hot paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v), all-or-nothing.
// MAIN DESCRIPTION:
//   - The transform runs into a staging buffer which replaces the storage
//     only when every produced value passed the numeric policy.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) error {
	staged := make([]T, len(m.data))
	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.opts.validateNaNInf && isNaNInf(nv) {
				return elementErrorf(ctxApply, i, j, ErrNaNInf)
			}
			staged[base+j] = nv
		}
	}
	copy(m.data, staged)

	return nil
}
