// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by storage, arithmetic and the text codec.
// This file intentionally contains ONLY types; errors and options live in
// dedicated files (errors.go, options.go).
package sparse

import "math/big"

// key is the composite (row, col) coordinate of a stored entry.
// Using two ints keeps the key compact and hash-friendly.
type key struct {
	row int // row index, 0 <= row < rows
	col int // column index, 0 <= col < cols
}

// Entry is a public (row, col, value) triple. Entries produced by a Matrix
// always carry a non-zero Value.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// less orders entries row-major (row first, then column).
func (e Entry) less(o Entry) bool {
	if e.Row != o.Row {
		return e.Row < o.Row
	}
	return e.Col < o.Col
}

// colValue is one non-zero of a row bucket: the column and the value.
// Used by the row-grouped multiplication kernel.
type colValue struct {
	col int
	val int64
}

// Statistics summarises a matrix for display collaborators.
// Min and Max are meaningful only when NonZero > 0.
type Statistics struct {
	Rows    int     // number of rows
	Cols    int     // number of columns
	NonZero int     // stored (non-zero) entries
	Total   uint64  // Rows*Cols, saturating at math.MaxUint64; see TotalElements
	Density float64 // NonZero/Total, 0 for empty shapes
	Min     int64   // smallest stored value
	Max     int64   // largest stored value
}

// TotalElements returns Rows*Cols exactly, including shapes whose cell
// count does not fit in uint64.
func (s Statistics) TotalElements() *big.Int {
	return new(big.Int).Mul(big.NewInt(int64(s.Rows)), big.NewInt(int64(s.Cols)))
}
