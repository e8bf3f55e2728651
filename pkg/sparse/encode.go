package sparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Save writes m to path in the matrix text format, creating or truncating
// the file. The write is flushed and the file closed before Save returns.
func Save(m *Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save matrix: %w", err)
	}

	if err := Encode(m, f); err != nil {
		f.Close()
		return fmt.Errorf("save matrix %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save matrix: %w", err)
	}
	return nil
}

// Encode renders m in the matrix text format: the rows= and cols= header
// lines, then one "(row, col, value)" line per non-zero entry, sorted by
// row then column. Zero entries are never present in the entry map, so no
// zero line is ever emitted.
func Encode(m *Matrix, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "rows=%d\n", m.Rows())
	fmt.Fprintf(bw, "cols=%d\n", m.Cols())
	for _, e := range m.Entries() {
		fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Value)
	}
	return bw.Flush()
}
