// SPDX-License-Identifier: MIT

// Package sparse - DOK storage & safe accessors.
//
// Purpose:
//   - Store only non-zero values, keyed by their (row, col) coordinate.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Maintain the two storage invariants on every write path:
//     no stored value is zero, and every key lies inside the declared shape.
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) expected; Clone/Entries/Transpose: O(nnz) (Entries O(nnz log nnz)).

package sparse

import (
	"fmt"
	"iter"
	"slices"
)

// Matrix is a sparse integer matrix in Dictionary-of-Keys form.
//   - rows,cols hold dimensions, fixed at construction.
//   - entries maps (row,col) to a non-zero value.
//
// A Matrix is not safe for concurrent mutation; concurrent reads are fine as
// long as nobody calls Set on the same receiver.
type Matrix struct {
	rows, cols int           // shape (>= 0)
	entries    map[key]int64 // non-zero values only
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty rows×cols matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation. Zero-sized shapes are legal
//     (0×n, n×0, 0×0); they simply cannot hold entries.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<0.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNew, rows, cols, ErrInvalidDimensions)
	}

	return newMatrix(rows, cols, 0), nil
}

// newMatrix is the internal constructor used once the shape is known valid.
// hint pre-sizes the map.
func newMatrix(rows, cols, hint int) *Matrix {
	return &Matrix{rows: rows, cols: cols, entries: make(map[key]int64, hint)}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (non-zero) entries. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.entries) }

// At returns the value at (row, col), or 0 when nothing is stored there.
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1) expected.
func (m *Matrix) At(row, col int) (int64, error) {
	if err := m.validateIndex(row, col); err != nil {
		return 0, indexErrorf(opAt, row, col, err)
	}

	return m.entries[key{row, col}], nil
}

// Set assigns v at (row, col).
// Behavior highlights:
//   - v == 0 deletes the key if present (idempotent), so zeros are never stored.
//   - The shape never changes.
//
// Errors: ErrOutOfRange (wrapped with coordinates); on error m is unchanged.
// Complexity: O(1) expected.
func (m *Matrix) Set(row, col int, v int64) error {
	if err := m.validateIndex(row, col); err != nil {
		return indexErrorf(opSet, row, col, err)
	}
	m.put(key{row, col}, v)

	return nil
}

// put stores v under k, deleting on zero. Callers guarantee k is in bounds.
func (m *Matrix) put(k key, v int64) {
	if v == 0 {
		delete(m.entries, k)
		return
	}
	m.entries[k] = v
}

// Clone returns an independent deep copy.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	out := newMatrix(m.rows, m.cols, len(m.entries))
	for k, v := range m.entries {
		out.entries[k] = v
	}

	return out
}

// Equal reports whether m and o have the same shape and the same non-zero
// entries. Two nil matrices are equal.
// Complexity: O(nnz).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || len(m.entries) != len(o.entries) {
		return false
	}
	for k, v := range m.entries {
		if ov, ok := o.entries[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// All yields every stored entry exactly once, in unspecified order.
// The sequence is read-only; mutating m during iteration is not supported.
func (m *Matrix) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for k, v := range m.entries {
			if !yield(Entry{Row: k.row, Col: k.col, Value: v}) {
				return
			}
		}
	}
}

// Entries returns a fresh slice of all stored entries sorted row-major.
// Complexity: O(nnz log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for e := range m.All() {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		default:
			return 0
		}
	})

	return out
}

// Transpose returns a new cols×rows matrix with every entry mirrored.
// Complexity: O(nnz).
func (m *Matrix) Transpose() *Matrix {
	out := newMatrix(m.cols, m.rows, len(m.entries))
	for k, v := range m.entries {
		out.entries[key{k.col, k.row}] = v
	}

	return out
}

// String implements fmt.Stringer with a one-line summary, e.g.
// "SparseMatrix(3x3) with 2 non-zero elements (density: 22.22%)".
func (m *Matrix) String() string {
	return fmt.Sprintf("SparseMatrix(%dx%d) with %d non-zero elements (density: %.2f%%)",
		m.rows, m.cols, len(m.entries), m.Density()*100)
}
