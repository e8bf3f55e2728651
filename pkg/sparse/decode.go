package sparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Load reads the matrix file at path. Malformed content is reported as a
// *FormatError carrying path and line number; an unreadable file is reported
// as the underlying I/O error. A failed load returns no partial matrix.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load matrix: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return m, nil
}

// Decode parses the matrix text format from r.
//
// All whitespace on a line is insignificant and stripped before parsing;
// lines that are blank after stripping are ignored. The first two remaining
// lines must be "rows=<integer>" and "cols=<integer>" in that order. Every
// later line must be a "(row, col, value)" triple and is written through
// Set, so a duplicate key keeps the last occurrence and a zero value stores
// nothing. The first bad line fails the whole decode.
func Decode(r io.Reader) (*Matrix, error) {
	type line struct {
		no   int // 1-based physical line number
		text string
	}

	var lines []line
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := stripWhitespace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, line{no: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}

	if len(lines) < 2 {
		return nil, &FormatError{Msg: "missing dimension header"}
	}
	if !strings.HasPrefix(lines[0].text, "rows=") {
		return nil, &FormatError{Line: lines[0].no, Msg: "expected rows= header"}
	}
	if !strings.HasPrefix(lines[1].text, "cols=") {
		return nil, &FormatError{Line: lines[1].no, Msg: "expected cols= header"}
	}
	rows, err := strconv.Atoi(strings.TrimPrefix(lines[0].text, "rows="))
	if err != nil {
		return nil, &FormatError{Line: lines[0].no, Msg: "invalid row count", Err: err}
	}
	cols, err := strconv.Atoi(strings.TrimPrefix(lines[1].text, "cols="))
	if err != nil {
		return nil, &FormatError{Line: lines[1].no, Msg: "invalid column count", Err: err}
	}

	m := New(rows, cols)
	for _, ln := range lines[2:] {
		row, col, value, perr := parseEntry(ln.text)
		if perr != nil {
			perr.Line = ln.no
			return nil, perr
		}
		if err := m.Set(row, col, value); err != nil {
			return nil, &FormatError{Line: ln.no, Err: err}
		}
	}
	return m, nil
}

// parseEntry parses one whitespace-stripped "(row,col,value)" line.
// The returned FormatError has no line number; the caller fills it in.
func parseEntry(text string) (row, col int, value int64, ferr *FormatError) {
	if !strings.HasPrefix(text, "(") || !strings.HasSuffix(text, ")") {
		return 0, 0, 0, &FormatError{Msg: "entry not enclosed in parentheses"}
	}
	parts := strings.Split(text[1:len(text)-1], ",")
	if len(parts) != 3 {
		return 0, 0, 0, &FormatError{Msg: fmt.Sprintf("entry has %d fields, want 3", len(parts))}
	}
	for _, p := range parts {
		if !isIntLiteral(p) {
			return 0, 0, 0, &FormatError{Msg: fmt.Sprintf("field %q is not an integer", p)}
		}
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, &FormatError{Msg: "invalid row index", Err: err}
	}
	col, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, &FormatError{Msg: "invalid column index", Err: err}
	}
	value, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, 0, 0, &FormatError{Msg: "invalid value", Err: err}
	}
	return row, col, value, nil
}

// isIntLiteral reports whether s is an optional leading minus followed by
// one or more decimal digits. Rejects empty fields, signs alone, decimals,
// and exponents.
func isIntLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// stripWhitespace removes every whitespace rune from s.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
