package bootsum

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when loading a table file that does not exist.
	ErrNotFound = errors.New("table file not found")

	// ErrIO covers failures to create, open, read or write a table file.
	ErrIO = errors.New("table file i/o failed")

	// ErrEncode is returned when a table cannot be serialized.
	ErrEncode = errors.New("table encoding failed")

	// ErrDecode is returned when file contents do not parse as the
	// requested format, including files written in another format.
	ErrDecode = errors.New("table decoding failed")

	ErrUnknownFormat = errors.New("unknown table format")
)

// TableError describes a failed save or load. Kind is one of the
// sentinel errors above and Err is the underlying cause; errors.Is
// matches either.
type TableError struct {
	Op     string
	Path   string
	Format Format
	Kind   error
	Err    error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("failed to %s %s table %s: %v", e.Op, e.Format, e.Path, e.Err)
}

func (e *TableError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newTableError(op, path string, format Format, kind, err error) *TableError {
	return &TableError{Op: op, Path: path, Format: format, Kind: kind, Err: err}
}
