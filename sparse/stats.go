// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"math/bits"
)

// Density returns nnz/(rows*cols), or 0 for an empty shape.
func (m *Matrix) Density() float64 {
	if m.rows == 0 || m.cols == 0 {
		return 0
	}

	return float64(len(m.entries)) / (float64(m.rows) * float64(m.cols))
}

// Stats computes display statistics in a single O(nnz) pass.
// Min/Max stay 0 when the matrix holds no entries; check NonZero first.
func (m *Matrix) Stats() Statistics {
	s := Statistics{
		Rows:    m.rows,
		Cols:    m.cols,
		NonZero: len(m.entries),
		Total:   totalCells(m.rows, m.cols),
		Density: m.Density(),
	}
	first := true
	for _, v := range m.entries {
		if first {
			s.Min, s.Max = v, v
			first = false
			continue
		}
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}

	return s
}

// totalCells multiplies the non-negative dimensions without wrapping.
func totalCells(rows, cols int) uint64 {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}
