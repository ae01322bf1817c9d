// SPDX-License-Identifier: MIT

// Package matrix: element constraints and shape capability types.
// This file intentionally contains ONLY the type-level vocabulary shared by
// every kernel: which element types a Matrix may hold, the Shape value, and
// the Shaper capability that generic callers can depend on.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Element is the matrix element capability: default-constructible (the zero
// value) with closed +, -, * returning the same type.
// Instantiating Matrix with any other type fails to compile.
type Element interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is the subset of Element that converts freely between members.
// Used by Convert and DeterminantFloat64.
type Real interface {
	constraints.Integer | constraints.Float
}

// Field is the subset of Element with exact division (required by Inverse).
type Field interface {
	constraints.Float | constraints.Complex
}

// Shape is the (rows, cols) pair of a matrix. It is fixed for the lifetime
// of a Matrix and never mutated.
type Shape struct {
	Rows int // number of rows (>0 for any constructed matrix)
	Cols int // number of columns (>0 for any constructed matrix)
}

// IsSquare reports Rows == Cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }

// Len returns the number of cells Rows*Cols.
func (s Shape) Len() int { return s.Rows * s.Cols }

// T returns the transposed shape (Cols, Rows).
func (s Shape) T() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// valid reports whether both dimensions are positive.
func (s Shape) valid() bool { return s.Rows > 0 && s.Cols > 0 }

// Shaper is the "is a matrix" capability: anything exposing its shape.
// Every *Matrix[T] implements it; validators and shape queries accept it so
// generic code can reason about shapes without knowing the element type.
type Shaper interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Shape returns (Rows, Cols) as a value.
	Shape() Shape
}

// IsElement reports whether v's dynamic type is one of the predeclared
// numeric types accepted by Element. Named types (e.g. type Celsius float64)
// satisfy Element at compile time but are not recognized here.
func IsElement(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64,
		complex64, complex128:
		return true
	default:
		return false
	}
}
