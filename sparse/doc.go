// Package sparse offers a Dictionary-of-Keys (DOK) integer matrix.
//
// The sparse package provides:
//
//   - Matrix: stores only non-zero int64 values keyed by (row, col), with
//     bounds-checked At/Set that return errors instead of panicking.
//   - Add, Sub, Mul: arithmetic that touches non-zero entries only. Mul groups
//     both operands by row and accumulates one output row at a time.
//   - Parse, ParseLines, LoadFile: strict ingestion of the text format
//
//	rows=3
//	cols=3
//	(0, 0, 5)
//	(2, 1, -4)
//
//   - Lines, WriteTo, MarshalText: the same format on the way out, row-major.
//   - Stats, Density, All, Entries: read-only inspection for display layers.
//
// Invariants kept by every write path: no stored value is zero, and every
// stored coordinate lies inside the declared shape. Arithmetic never mutates
// its operands. A Matrix has no internal locking; callers that mutate a
// Matrix concurrently with other use must synchronise themselves.
//
// Errors are package sentinels (ErrIO, ErrFormat, ErrOutOfRange,
// ErrDimensionMismatch, ErrInvalidDimensions, ErrNilMatrix) wrapped with
// context; match them with errors.Is.
package sparse
