// Package sparse implements integer sparse matrices persisted in a
// plain-text format, with addition, subtraction, and multiplication.
//
// A matrix stores only its non-zero entries, keyed by (row, col). The text
// format is two header lines, "rows=<n>" then "cols=<n>", followed by one
// "(row, col, value)" line per non-zero entry.
package sparse

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Key addresses one cell of a matrix.
type Key struct {
	Row int
	Col int
}

// Entry is one non-zero cell, as returned by Entries.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// Matrix is a sparse integer matrix. The entry map holds only non-zero
// values; Set is the single mutation path and maintains that invariant.
// Operations in this package never share the entry map between instances.
type Matrix struct {
	rows    int
	cols    int
	entries map[Key]int64
}

// New returns an empty matrix with the given dimensions.
func New(rows, cols int) *Matrix {
	return &Matrix{
		rows:    rows,
		cols:    cols,
		entries: make(map[Key]int64),
	}
}

// Rows returns the declared row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count.
func (m *Matrix) Cols() int { return m.cols }

// Len returns the number of stored (non-zero) entries.
func (m *Matrix) Len() int { return len(m.entries) }

// Set writes value at (row, col). Returns ErrIndexOutOfRange unless
// 0 <= row < Rows() and 0 <= col < Cols(). A zero value removes the entry
// rather than storing it, so the entry map never holds zeros.
func (m *Matrix) Set(row, col int, value int64) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("set (%d, %d) in %dx%d matrix: %w", row, col, m.rows, m.cols, ErrIndexOutOfRange)
	}
	k := Key{Row: row, Col: col}
	if value == 0 {
		delete(m.entries, k)
		return nil
	}
	m.entries[k] = value
	return nil
}

// Get returns the value at (row, col), or 0 when no entry is stored there.
// Unlike Set, Get does not check bounds: an out-of-range read returns 0.
// That asymmetry is deliberate and kept for compatibility with existing
// matrix files and callers; callers needing bounds safety on reads must
// check against Rows/Cols themselves.
func (m *Matrix) Get(row, col int) int64 {
	return m.entries[Key{Row: row, Col: col}]
}

// Entries returns a snapshot of all non-zero entries, sorted by row then
// column. Mutating the returned slice does not affect the matrix.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Value: v})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}

// Equal reports whether the two matrices have the same dimensions and the
// same entry map.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	return maps.Equal(m.entries, other.entries)
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		rows:    m.rows,
		cols:    m.cols,
		entries: maps.Clone(m.entries),
	}
}

// String renders the matrix densely, one row per line with values separated
// by single spaces. Intended for console display, not for persistence.
func (m *Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", m.Get(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
