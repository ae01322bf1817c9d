// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genmat/matrix"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"

	stdinPath = "-"
)

// scalarDoc is the result document of det.
type scalarDoc struct {
	Determinant float64 `yaml:"determinant" json:"determinant"`
}

// readFile decodes every document of a YAML stream; "-" reads stdin.
func readFile(path string, stdin io.Reader) ([]*matrix.Matrix[float64], error) {
	var r io.Reader
	if path == stdinPath {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	ms, err := decodeStream(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ms, nil
}

// decodeStream reads matrices until EOF. An empty stream is an error.
func decodeStream(r io.Reader) ([]*matrix.Matrix[float64], error) {
	dec := yaml.NewDecoder(r)

	var out []*matrix.Matrix[float64]
	for {
		m := new(matrix.Matrix[float64])
		err := dec.Decode(m)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(out)+1, err)
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, errors.New("no matrix documents")
	}

	return out, nil
}

// writeDoc encodes v in the requested format followed by a newline.
func writeDoc(w io.Writer, format string, v any) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
