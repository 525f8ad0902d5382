package report

import (
	"bytes"
	"encoding/csv"
)

// exportCSV serializes exactly one table as RFC 4180 CSV: a header row
// followed by data rows. csv.Writer quotes fields containing the delimiter,
// quote character, or line breaks.
func exportCSV(tables []Table) ([]byte, error) {
	if len(tables) == 0 {
		return nil, ErrEmptyInput
	}
	if len(tables) != 1 {
		return nil, &FormatMismatchError{Format: FormatCSV, Tables: len(tables)}
	}

	t := tables[0]
	if err := checkTable(t); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
