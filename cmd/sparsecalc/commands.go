package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/workspace"
	"go.uber.org/zap"
)

var (
	okColor    = color.New(color.FgGreen)
	errColor   = color.New(color.FgRed)
	titleColor = color.New(color.FgCyan, color.Bold)
)

// reportedError marks an error already shown to the user, so main only
// sets the exit code.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// runBinary loads two matrices, applies op, then saves and/or prints the result.
func (a *app) runBinary(out io.Writer, op workspace.Operation, first, second string) error {
	m1, _, err := a.ws.Load(first)
	if err != nil {
		printLoadError(out, err)
		return reportedError{err}
	}
	m2, _, err := a.ws.Load(second)
	if err != nil {
		printLoadError(out, err)
		return reportedError{err}
	}

	res, err := a.apply(out, op, m1, m2)
	if err != nil {
		return reportedError{err}
	}
	if a.printOut {
		if _, err := res.WriteTo(out); err != nil {
			return err
		}
	}
	if !a.noSave {
		path, err := a.ws.Save(res, op)
		if err != nil {
			errColor.Fprintf(out, "Couldn't save result: %v\n", err)
			return reportedError{err}
		}
		okColor.Fprintf(out, "Result saved to: %s\n", path)
	}
	printStats(out, res)

	return nil
}

// apply runs op and explains shape mismatches in user terms.
func (a *app) apply(out io.Writer, op workspace.Operation, m1, m2 *sparse.Matrix) (*sparse.Matrix, error) {
	fmt.Fprintf(out, "Operation: %s\n", op)
	fmt.Fprintf(out, "Matrix 1: %s\n", m1)
	fmt.Fprintf(out, "Matrix 2: %s\n", m2)

	res, err := workspace.Apply(op, m1, m2)
	if errors.Is(err, sparse.ErrDimensionMismatch) {
		errColor.Fprintf(out, "Can't perform %s - sizes don't match!\n", op)
		fmt.Fprintf(out, "Matrix 1 is %dx%d\n", m1.Rows(), m1.Cols())
		fmt.Fprintf(out, "Matrix 2 is %dx%d\n", m2.Rows(), m2.Cols())
		fmt.Fprintf(out, "For %s, %s.\n", op, op.Requirement())
	} else if err != nil {
		errColor.Fprintf(out, "Error during %s: %v\n", op, err)
	}
	if err != nil {
		a.logger.Debug("operation failed", zap.Stringer("operation", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (a *app) runStats(out io.Writer, choice string) error {
	m, _, err := a.ws.Load(choice)
	if err != nil {
		printLoadError(out, err)
		return reportedError{err}
	}
	printStats(out, m)

	return nil
}

// printStats writes the statistics block shown after loads and operations.
func printStats(out io.Writer, m *sparse.Matrix) {
	s := m.Stats()
	titleColor.Fprintln(out, "Matrix Statistics:")
	fmt.Fprintf(out, "Size: %d x %d\n", s.Rows, s.Cols)
	fmt.Fprintf(out, "Non-zero elements: %d\n", s.NonZero)
	fmt.Fprintf(out, "Total elements: %s\n", s.TotalElements())
	fmt.Fprintf(out, "Density: %.4f%%\n", s.Density*100)
	if s.NonZero > 0 {
		fmt.Fprintf(out, "Minimum value: %d\n", s.Min)
		fmt.Fprintf(out, "Maximum value: %d\n", s.Max)
	}
}

// printLoadError reports a load failure and, for content errors, the
// expected file layout.
func printLoadError(out io.Writer, err error) {
	errColor.Fprintf(out, "Couldn't load matrix: %v\n", err)
	if errors.Is(err, sparse.ErrFormat) || errors.Is(err, sparse.ErrOutOfRange) {
		fmt.Fprintln(out, "The file should look like this:")
		fmt.Fprintln(out, "rows=<number>")
		fmt.Fprintln(out, "cols=<number>")
		fmt.Fprintln(out, "(row, col, value)")
	}
}
