// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/genmat/matrix"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	files    []string
	output   string
	logLevel string

	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

// unaryOp computes a result from exactly one operand.
type unaryOp func(m *matrix.Matrix[float64]) (any, error)

// binaryOp folds operands left to right.
type binaryOp func(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error)

// newRootCmd assembles the command tree reading from in and writing
// results to out and logs to errOut.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out}

	root := &cobra.Command{
		Use:           "matcalc",
		Short:         "Evaluate matrix operations over YAML matrix documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
			if a.output != formatYAML && a.output != formatJSON {
				return fmt.Errorf("unknown output format %q (want %s or %s)", a.output, formatYAML, formatJSON)
			}

			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringArrayVarP(&a.files, "file", "f", nil, "matrix document file, repeatable; - reads stdin")
	pf.StringVarP(&a.output, "output", "o", formatYAML, "result encoding: yaml or json")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		a.unaryCmd("det", "Determinant of a square matrix", func(m *matrix.Matrix[float64]) (any, error) {
			d, err := m.Determinant()
			if err != nil {
				return nil, err
			}
			return scalarDoc{Determinant: d}, nil
		}),
		a.unaryCmd("adjoint", "Adjoint (adjugate) of a square matrix", func(m *matrix.Matrix[float64]) (any, error) {
			return m.Adjoint()
		}),
		a.unaryCmd("inverse", "Inverse of a non-singular square matrix", func(m *matrix.Matrix[float64]) (any, error) {
			return matrix.Inverse(m)
		}),
		a.unaryCmd("transpose", "Transpose of a matrix", func(m *matrix.Matrix[float64]) (any, error) {
			return matrix.Transpose(m)
		}),
		a.minorCmd(),
		a.binaryCmd("add", "Elementwise sum of two or more matrices", matrix.Add[float64]),
		a.binaryCmd("sub", "Elementwise difference, folded left to right", matrix.Sub[float64]),
		a.binaryCmd("mul", "Matrix product, folded left to right", matrix.Mul[float64]),
	)

	return root
}

// unaryCmd wires a single-operand operation.
func (a *app) unaryCmd(use, short string, op unaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(1, 1)
			if err != nil {
				return err
			}
			a.logger.Debug("evaluating", "op", use, "shape", ms[0].Shape())
			res, err := op(ms[0])
			if err != nil {
				a.logger.Error("operation failed", "op", use, "err", err)
				return err
			}

			return writeDoc(a.out, a.output, res)
		},
	}
}

// binaryCmd wires an operation folded over two or more operands.
func (a *app) binaryCmd(use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(2, 0)
			if err != nil {
				return err
			}
			acc := ms[0]
			for i, m := range ms[1:] {
				a.logger.Debug("evaluating", "op", use, "step", i+1, "left", acc.Shape(), "right", m.Shape())
				if acc, err = op(acc, m); err != nil {
					a.logger.Error("operation failed", "op", use, "step", i+1, "err", err)
					return err
				}
			}

			return writeDoc(a.out, a.output, acc)
		},
	}
}

func (a *app) minorCmd() *cobra.Command {
	var row, col int
	cmd := a.unaryCmd("minor", "Submatrix left after deleting one row and one column", func(m *matrix.Matrix[float64]) (any, error) {
		return m.Minor(row, col)
	})
	cmd.Flags().IntVar(&row, "row", 0, "row to delete")
	cmd.Flags().IntVar(&col, "col", 0, "column to delete")

	return cmd
}

// load decodes every document of every --file and checks the operand count.
// hi == 0 means unbounded.
func (a *app) load(lo, hi int) ([]*matrix.Matrix[float64], error) {
	if len(a.files) == 0 {
		return nil, fmt.Errorf("no input: pass at least one --file")
	}
	var all []*matrix.Matrix[float64]
	for _, path := range a.files {
		ms, err := readFile(path, a.in)
		if err != nil {
			return nil, err
		}
		a.logger.Info("loaded", "file", path, "matrices", len(ms))
		all = append(all, ms...)
	}
	if len(all) < lo || (hi > 0 && len(all) > hi) {
		return nil, fmt.Errorf("got %d matrices, want %s", len(all), countRange(lo, hi))
	}

	return all, nil
}

func countRange(lo, hi int) string {
	switch {
	case hi == 0:
		return fmt.Sprintf("at least %d", lo)
	case lo == hi:
		return fmt.Sprintf("exactly %d", lo)
	default:
		return fmt.Sprintf("%d to %d", lo, hi)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("bad --log-level %q: %w", s, err)
	}

	return l, nil
}
