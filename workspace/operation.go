package workspace

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Operation names a binary matrix operation. The string form is used in
// result file names.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSub
	OpMul
)

func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Requirement describes the shape rule of the operation for user messages.
func (op Operation) Requirement() string {
	switch op {
	case OpMul:
		return "the columns of matrix 1 must match the rows of matrix 2"
	default:
		return "both matrices must have the same size"
	}
}

// Apply runs op on a and b.
func Apply(op Operation, a, b *sparse.Matrix) (*sparse.Matrix, error) {
	switch op {
	case OpAdd:
		return sparse.Add(a, b)
	case OpSub:
		return sparse.Sub(a, b)
	case OpMul:
		return sparse.Mul(a, b)
	default:
		return nil, fmt.Errorf("workspace: unknown operation %d", int(op))
	}
}
