package sparse

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package. Callers branch on kind with
// errors.Is; message text is not part of the contract.
var (
	// ErrBadFormat reports a malformed matrix file: missing or misordered
	// headers, an entry line that is not a parenthesized triple, or a field
	// that is not a signed integer literal. Errors of this kind are always
	// a *FormatError carrying the file path and cause.
	ErrBadFormat = errors.New("sparse: invalid file format")

	// ErrIndexOutOfRange reports a write outside [0, rows) x [0, cols).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch reports operand shapes incompatible with the
	// requested operation.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)

// FormatError describes why a matrix file was rejected. Path is empty when
// decoding from a stream without a file name; Line is the 1-based physical
// line number, or 0 when the failure is not tied to one line.
type FormatError struct {
	Path string
	Line int
	Msg  string
	Err  error // underlying cause, if any
}

// Error renders the path, line, and cause that are present.
func (e *FormatError) Error() string {
	s := "invalid matrix file"
	if e.Path != "" {
		s = e.Path
	}
	if e.Line > 0 {
		s = fmt.Sprintf("%s: line %d", s, e.Line)
	}
	if e.Msg != "" {
		s = fmt.Sprintf("%s: %s", s, e.Msg)
	}
	if e.Err != nil {
		s = fmt.Sprintf("%s: %v", s, e.Err)
	}
	return s
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *FormatError) Unwrap() error { return e.Err }

// Is reports FormatError as the ErrBadFormat kind.
func (e *FormatError) Is(target error) bool { return target == ErrBadFormat }
