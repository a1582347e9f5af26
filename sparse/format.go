// SPDX-License-Identifier: MIT

package sparse

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"strconv"
)

var (
	_ encoding.TextMarshaler   = (*Matrix)(nil)
	_ encoding.TextUnmarshaler = (*Matrix)(nil)
	_ io.WriterTo              = (*Matrix)(nil)
)

// Lines serialises m in the text format accepted by ParseLines:
// "rows=R", "cols=C", then one "(r, c, v)" line per entry, row-major.
// Complexity: O(nnz log nnz).
func (m *Matrix) Lines() []string {
	entries := m.Entries()
	out := make([]string, 0, len(entries)+2)
	out = append(out,
		headerRows+"="+strconv.Itoa(m.rows),
		headerCols+"="+strconv.Itoa(m.cols),
	)
	for _, e := range entries {
		out = append(out, formatEntry(e))
	}

	return out
}

func formatEntry(e Entry) string {
	return fmt.Sprintf("(%d, %d, %d)", e.Row, e.Col, e.Value)
}

// WriteTo writes Lines() to w, one per line with a trailing newline.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range m.Lines() {
		k, err := io.WriteString(w, line+"\n")
		n += int64(k)
		if err != nil {
			return n, fmt.Errorf("%w: %w", ErrIO, err)
		}
	}

	return n, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m *Matrix) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with default options.
// On error the receiver is left untouched.
func (m *Matrix) UnmarshalText(text []byte) error {
	parsed, err := Parse(bytes.NewReader(text))
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}
