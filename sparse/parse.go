// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Ingest the line-oriented text format:
//
//	rows=<positive integer>
//	cols=<positive integer>
//	(row, col, value)
//	...
//
//   - Reject anything else: no silent skipping, no numeric coercion.
//
// Grammar details:
//   - Header lines are trimmed of surrounding whitespace and must be exactly
//     "rows=<digits>" then "cols=<digits>", both > 0.
//   - Data lines have ALL whitespace removed and must then equal
//     "(<digits>,<digits>,<-?digits>)". Only the value may carry a sign.
//   - Blank lines after the header are ignored.
//   - A single line may hold at most maxLineBytes (1 MiB); a longer line is
//     an ErrFormat on that line, not an ErrIO.
//
// Error precedence: ErrIO (reading) → ErrFormat (header, then per line) →
// ErrOutOfRange (per line). The first failing line aborts the parse and no
// matrix is returned.

package sparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	headerRows = "rows"
	headerCols = "cols"

	// maxLineBytes bounds a single input line for the scanner.
	maxLineBytes = 1 << 20
)

var (
	headerRe = regexp.MustCompile(`^(rows|cols)=(\d+)$`)
	entryRe  = regexp.MustCompile(`^\((\d+),(\d+),(-?\d+)\)$`)
)

// LoadFile opens path and parses it with Parse.
// Errors:
//   - ErrIO when the file is missing, unreadable or not a regular file.
//   - Any error of ParseLines.
func LoadFile(path string, opts ...Option) (*Matrix, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w: %w", opLoad, path, ErrIO, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s %q: %w: not a regular file", opLoad, path, ErrIO)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w: %w", opLoad, path, ErrIO, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", opLoad, path, err)
	}

	return m, nil
}

// Parse reads every line from r and hands them to ParseLines.
// Errors: ErrIO if r fails, ErrFormat for an over-long line; otherwise as ParseLines.
func Parse(r io.Reader, opts ...Option) (*Matrix, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return ParseLines(lines, opts...)
}

// readLines drains r into a slice of lines (without terminators).
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: %w: longer than %d bytes", len(lines)+1, ErrFormat, maxLineBytes)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return lines, nil
}

// ParseLines builds a Matrix from an already-split line sequence.
// MAIN DESCRIPTION:
//   - Stage 1: parse the two header lines (rows, then cols).
//   - Stage 2: parse each non-blank data line into (r, c, v).
//   - Stage 3: bounds-check and merge under the duplicate policy.
//
// Behavior highlights:
//   - A zero value never produces an entry.
//   - Duplicate coordinates follow Options.DuplicatePolicy (default last wins).
//   - WithSkipOutOfRange(true) turns index failures into skips + OnSkip hook.
//
// Errors:
//   - ErrFormat, ErrOutOfRange, each wrapped with line number and text.
//
// Complexity:
//   - Time O(total input length), Space O(nnz).
func ParseLines(lines []string, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: headers
	if len(lines) < 1 {
		return nil, matrixErrorf(opParse, fmt.Errorf("%w: missing %q header", ErrFormat, headerRows+"="))
	}
	rows, err := parseHeader(lines[0], headerRows)
	if err != nil {
		return nil, matrixErrorf(opParse, lineErrorf(1, lines[0], err))
	}
	if len(lines) < 2 {
		return nil, matrixErrorf(opParse, fmt.Errorf("%w: missing %q header", ErrFormat, headerCols+"="))
	}
	cols, err := parseHeader(lines[1], headerCols)
	if err != nil {
		return nil, matrixErrorf(opParse, lineErrorf(2, lines[1], err))
	}

	// Stage 2/3: entries
	m := newMatrix(rows, cols, len(lines)-2)
	var seen map[key]struct{}
	if o.duplicates == DuplicateFirstWins {
		seen = make(map[key]struct{})
	}
	for idx := 2; idx < len(lines); idx++ {
		lineNo := idx + 1
		compact := stripSpace(lines[idx])
		if compact == "" {
			continue
		}
		e, err := parseEntry(compact)
		if err != nil {
			return nil, matrixErrorf(opParse, lineErrorf(lineNo, lines[idx], err))
		}
		if err := m.validateIndex(e.Row, e.Col); err != nil {
			if o.skipOutOfRange {
				if o.onSkip != nil {
					o.onSkip(lineNo, e)
				}
				continue
			}
			return nil, matrixErrorf(opParse, lineErrorf(lineNo, lines[idx],
				fmt.Errorf("(%d,%d) outside %dx%d: %w", e.Row, e.Col, rows, cols, err)))
		}
		k := key{e.Row, e.Col}
		switch o.duplicates {
		case DuplicateFirstWins:
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			m.put(k, e.Value)
		case DuplicateSum:
			m.put(k, m.entries[k]+e.Value)
		default:
			m.put(k, e.Value)
		}
	}

	return m, nil
}

// parseHeader parses "<name>=<positive integer>".
func parseHeader(line, name string) (int, error) {
	sub := headerRe.FindStringSubmatch(strings.TrimSpace(line))
	if sub == nil || sub[1] != name {
		return 0, fmt.Errorf("%w: expected %s=<positive integer>", ErrFormat, name)
	}
	n, err := strconv.Atoi(sub[2])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrFormat, name, errors.Unwrap(err))
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrFormat, name, n)
	}

	return n, nil
}

// parseEntry parses a whitespace-free "(r,c,v)" token.
func parseEntry(compact string) (Entry, error) {
	sub := entryRe.FindStringSubmatch(compact)
	if sub == nil {
		return Entry{}, fmt.Errorf("%w: expected (row, col, value) with integer fields", ErrFormat)
	}
	r, err := strconv.Atoi(sub[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: row: %w", ErrFormat, errors.Unwrap(err))
	}
	c, err := strconv.Atoi(sub[2])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: col: %w", ErrFormat, errors.Unwrap(err))
	}
	v, err := strconv.ParseInt(sub[3], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: value: %w", ErrFormat, errors.Unwrap(err))
	}

	return Entry{Row: r, Col: c, Value: v}, nil
}

// stripSpace removes every Unicode whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
