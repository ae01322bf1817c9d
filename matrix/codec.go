// SPDX-License-Identifier: MIT

// Package matrix - YAML and JSON documents.
//
// Wire shape (both encodings):
//
//	rows: 2
//	cols: 3
//	data:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
//
// Decoding validates the header against data and applies the numeric policy.
// Decoding into a zero-value Matrix installs the default policy; decoding
// into an existing matrix keeps its policy and replaces shape and storage.
// Complex element types have no representation in either encoding; the
// encoders return ErrUnsupportedElement for them.
package matrix

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	ctxMarshal   = "Marshal"
	ctxUnmarshal = "Unmarshal"
)

// Compile-time assertions for codec conformance.
var (
	_ yaml.Marshaler   = (*Matrix[float64])(nil)
	_ yaml.Unmarshaler = (*Matrix[float64])(nil)
	_ json.Marshaler   = (*Matrix[float64])(nil)
	_ json.Unmarshaler = (*Matrix[float64])(nil)
)

// document is the serialized form shared by both encodings.
type document[T Element] struct {
	Rows int   `yaml:"rows" json:"rows"`
	Cols int   `yaml:"cols" json:"cols"`
	Data [][]T `yaml:"data" json:"data"`
}

// checkEncodable rejects nil matrices and element types neither encoding supports.
func checkEncodable[T Element](m *Matrix[T]) error {
	if m == nil {
		return fmt.Errorf("%s: %w", ctxMarshal, ErrNilMatrix)
	}
	if !m.Shape().valid() {
		return fmt.Errorf("%s: %w", ctxMarshal, ErrInvalidDimensions)
	}
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return fmt.Errorf("%s: %T: %w", ctxMarshal, zero, ErrUnsupportedElement)
	}

	return nil
}

// toDocument snapshots m into its wire form.
func (m *Matrix[T]) toDocument() document[T] {
	return document[T]{Rows: m.r, Cols: m.c, Data: m.ToRows()}
}

// fromDocument validates doc and installs it into m.
func (m *Matrix[T]) fromDocument(doc document[T]) error {
	if !(Shape{Rows: doc.Rows, Cols: doc.Cols}).valid() {
		return fmt.Errorf("%s: shape %dx%d: %w", ctxUnmarshal, doc.Rows, doc.Cols, ErrBadDocument)
	}
	if len(doc.Data) != doc.Rows {
		return fmt.Errorf("%s: %d data rows, header says %d: %w",
			ctxUnmarshal, len(doc.Data), doc.Rows, ErrBadDocument)
	}

	policy := m.opts
	if m.data == nil {
		policy = defaultOptions()
	}
	staged := newWithPolicy[T](doc.Rows, doc.Cols, policy)

	var i, j int
	for i = 0; i < doc.Rows; i++ {
		if len(doc.Data[i]) != doc.Cols {
			return fmt.Errorf("%s: row %d has %d values, header says %d: %w",
				ctxUnmarshal, i, len(doc.Data[i]), doc.Cols, ErrBadDocument)
		}
		for j = 0; j < doc.Cols; j++ {
			if policy.validateNaNInf && isNaNInf(doc.Data[i][j]) {
				return elementErrorf(ctxUnmarshal, i, j, ErrNaNInf)
			}
			staged.data[i*doc.Cols+j] = doc.Data[i][j]
		}
	}
	*m = *staged

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m *Matrix[T]) MarshalYAML() (interface{}, error) {
	if err := checkEncodable(m); err != nil {
		return nil, err
	}

	return m.toDocument(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Matrix[T]) UnmarshalYAML(node *yaml.Node) error {
	var doc document[T]
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("%s: %w: %v", ctxUnmarshal, ErrBadDocument, err)
	}

	return m.fromDocument(doc)
}

// MarshalJSON implements json.Marshaler.
func (m *Matrix[T]) MarshalJSON() ([]byte, error) {
	if err := checkEncodable(m); err != nil {
		return nil, err
	}

	return json.Marshal(m.toDocument())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Matrix[T]) UnmarshalJSON(b []byte) error {
	var doc document[T]
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("%s: %w: %v", ctxUnmarshal, ErrBadDocument, err)
	}

	return m.fromDocument(doc)
}
