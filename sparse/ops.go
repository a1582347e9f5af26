// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Arithmetic over DOK matrices that never visits zero cells.
//   - Every operation allocates a fresh result; operands are read-only.
//
// Complexity:
//   - Add/Sub: O(nnz(a) + nnz(b)).
//   - Mul: O(nnz(a) + nnz(b) + M), M = number of (a[i,k], b[k,j]) pairs sharing k.

package sparse

// Add returns a new matrix holding the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): copy a into the result.
// Stage 3 (Execute): fold b in, dropping cells that cancel to zero.
// Errors: ErrNilMatrix, ErrDimensionMismatch (with both shapes).
func Add(a, b *Matrix) (*Matrix, error) {
	return combine(opAdd, a, b, 1)
}

// Sub returns a new matrix holding the element-wise difference a - b.
// Order matters: Sub(a, b) == -Sub(b, a).
// Errors: ErrNilMatrix, ErrDimensionMismatch (with both shapes).
func Sub(a, b *Matrix) (*Matrix, error) {
	return combine(opSub, a, b, -1)
}

// Add is the method form of Add(m, o).
func (m *Matrix) Add(o *Matrix) (*Matrix, error) { return Add(m, o) }

// Sub is the method form of Sub(m, o).
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) { return Sub(m, o) }

// Mul is the method form of Mul(m, o).
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) { return Mul(m, o) }

// combine computes a + sign*b over the union of both key sets.
func combine(tag string, a, b *Matrix, sign int64) (*Matrix, error) {
	// Stage 1: Validate
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, shapeErrorf(tag, a, b, err)
	}

	// Stage 2: start from a copy of a; keys absent from b keep their value.
	res := newMatrix(a.rows, a.cols, len(a.entries)+len(b.entries))
	for k, v := range a.entries {
		res.entries[k] = v
	}

	// Stage 3: keys absent from a read 0 from the map; put drops zeros.
	for k, v := range b.entries {
		res.put(k, res.entries[k]+sign*v)
	}

	return res, nil
}

// Mul performs sparse matrix multiplication a × b.
// MAIN DESCRIPTION:
//   - Row-grouped (Gustavson-style) product. The contraction index k is the
//     column of a and the row of b, so both operands are bucketed by row.
//
// Implementation:
//   - Stage 1: validate non-nil and a.Cols == b.Rows.
//   - Stage 2: group a's entries by row and b's entries by row.
//   - Stage 3: for each non-empty row i of a, for each a[i,k], walk b's row k
//     and accumulate a[i,k]*b[k,j] into acc[j].
//   - Stage 4: commit non-zero acc values into row i of the result and
//     clear acc before the next row.
//
// Behavior highlights:
//   - Peak scratch memory is one output row of partial sums.
//   - Products cancelling to zero are never stored.
//   - Integer overflow wraps as native int64 arithmetic does.
//
// Returns:
//   - *Matrix of shape a.Rows × b.Cols.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (with both shapes).
//
// Complexity:
//   - Time O(nnz(a) + nnz(b) + M), Space O(nnz(b) + nnz(result)).
func Mul(a, b *Matrix) (*Matrix, error) {
	// Stage 1: Validate
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateMulShape(a, b); err != nil {
		return nil, shapeErrorf(opMul, a, b, err)
	}

	// Stage 2: Group both operands by row
	aRows := groupByRow(a)
	bRows := groupByRow(b)
	res := newMatrix(a.rows, b.cols, 0)

	// Stage 3/4: one accumulator, reused per output row
	acc := make(map[int]int64)
	for i, row := range aRows {
		for _, ak := range row {
			for _, bj := range bRows[ak.col] { // missing row k yields nil: no work
				acc[bj.col] += ak.val * bj.val
			}
		}
		for j, v := range acc {
			if v != 0 {
				res.entries[key{i, j}] = v
			}
		}
		clear(acc)
	}

	return res, nil
}

// groupByRow buckets m's entries by row index. Rows without entries are absent.
// Complexity: O(nnz).
func groupByRow(m *Matrix) map[int][]colValue {
	rows := make(map[int][]colValue)
	for k, v := range m.entries {
		rows[k.row] = append(rows[k.row], colValue{col: k.col, val: v})
	}

	return rows
}
