// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. Every operation returns one of these (possibly wrapped with context
// via %w) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for invalid Option
// values (programmer error).

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for easy grepping. Context
// (method, coordinates, line number) is attached at the detection site with
// the *Errorf helpers below; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/dimension -> index -> value.
// During parsing: I/O -> header format -> entry format -> entry index.

var (
	// ErrIO is returned when the textual source cannot be read
	// (missing file, permission denied, failing io.Reader).
	ErrIO = errors.New("sparse: source unreadable")

	// ErrFormat is returned when a header or entry line violates the grammar,
	// including tokens that do not parse as integers.
	ErrFormat = errors.New("sparse: invalid format")

	// ErrOutOfRange indicates that a row or column index is outside the
	// declared bounds, during parsing or in At/Set.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrInvalidDimensions is returned by New for negative dimensions.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *Matrix was used as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// ---------- error context tags ----------

const (
	opAt    = "At"
	opSet   = "Set"
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opNew   = "New"
	opParse = "Parse"
	opLoad  = "LoadFile"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps an error with method context and the offending coordinates.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// lineErrorf wraps an error with the 1-based line number and the raw line text.
func lineErrorf(lineNo int, line string, err error) error {
	return fmt.Errorf("line %d %q: %w", lineNo, line, err)
}

// shapeErrorf reports both operand shapes next to err.
func shapeErrorf(tag string, a, b *Matrix, err error) error {
	return fmt.Errorf("%s: (%dx%d) vs (%dx%d): %w", tag, a.rows, a.cols, b.rows, b.cols, err)
}
