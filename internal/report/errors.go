package report

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an exporter is given zero tables.
var ErrEmptyInput = errors.New("no tables supplied")

// FormatMismatchError is returned when the number of tables supplied does
// not match what the requested output format can hold.
type FormatMismatchError struct {
	Format Format
	Tables int
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("format %q cannot hold %d tables", e.Format, e.Tables)
}

// SerializationError is returned when a cell value cannot be represented in
// the target format.
type SerializationError struct {
	Table  string
	Row    int // 0 = header row, data rows start at 1
	Column int
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("table %q row %d column %d: %s", e.Table, e.Row, e.Column, e.Reason)
}
