// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/index checks.
//  - Return plain sentinel errors (no context) so call sites wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape.

package sparse

// validateNotNil ensures both operands are present.
func validateNotNil(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions (Add/Sub).
// Assumes both are non-nil.
func validateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulShape ensures the contraction dimensions agree: a.cols == b.rows.
// Assumes both are non-nil.
func validateMulShape(a, b *Matrix) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// validateIndex checks 0 ≤ row < rows and 0 ≤ col < cols.
func (m *Matrix) validateIndex(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}
