package report

import (
	"fmt"
	"time"
)

// Format identifies a supported export serialization.
type Format string

const (
	// FormatCSV is the flat-table format: exactly one table, RFC 4180.
	FormatCSV Format = "csv"
	// FormatWorkbook is the multi-sheet workbook format (xlsx).
	FormatWorkbook Format = "xlsx"
)

// Valid reports whether the format is one of the supported serializations.
func (f Format) Valid() bool {
	return f == FormatCSV || f == FormatWorkbook
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Export serializes the given tables into the requested format.
func Export(format Format, tables []Table) ([]byte, error) {
	switch format {
	case FormatCSV:
		return exportCSV(tables)
	case FormatWorkbook:
		return exportWorkbook(tables)
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

// Filename returns the suggested download name for an export: the report
// kind plus the current date. Kinds and extensions are fixed ASCII tokens,
// so the result is always ASCII-safe and free of path separators.
func Filename(kind Kind, format Format, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.%s", kind, now.Format("20060102"), format.Ext())
}

// checkCell rejects cell values that cannot survive serialization in either
// target format. Line breaks and tabs are fine (CSV quotes them, xlsx
// stores them); other control characters have no escape in xlsx XML.
func checkCell(table string, row, col int, value string) error {
	for _, r := range value {
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			return &SerializationError{
				Table:  table,
				Row:    row,
				Column: col,
				Reason: fmt.Sprintf("unrepresentable control character %#x", r),
			}
		}
	}
	return nil
}

// checkTable validates every cell of a table, header included.
func checkTable(t Table) error {
	for col, name := range t.Columns {
		if err := checkCell(t.Name, 0, col, name); err != nil {
			return err
		}
	}
	for i, row := range t.Rows {
		for col, cell := range row {
			if err := checkCell(t.Name, i+1, col, cell); err != nil {
				return err
			}
		}
	}
	return nil
}
