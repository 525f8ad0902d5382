package report

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// Excel caps sheet names at 31 characters.
	maxSheetNameLen = 31
	// Column width ceiling, so long free-text fields do not blow up the layout.
	maxColumnWidth = 50.0
	minColumnWidth = 8.0
)

// exportWorkbook serializes one or more tables into an xlsx workbook, one
// sheet per table. Header rows are bold and column widths track the longest
// rendered value, capped at maxColumnWidth.
func exportWorkbook(tables []Table) ([]byte, error) {
	if len(tables) == 0 {
		return nil, ErrEmptyInput
	}
	for _, t := range tables {
		if err := checkTable(t); err != nil {
			return nil, err
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, t := range tables {
		sheet := sanitizeSheetName(t.Name)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		if err := writeSheet(f, sheet, t, headerStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, t Table, headerStyle int) error {
	header := make([]interface{}, len(t.Columns))
	widths := make([]float64, len(t.Columns))
	for i, name := range t.Columns {
		header[i] = name
		widths[i] = cellWidth(name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
		start, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return err
		}
	}

	if len(t.Columns) > 0 {
		last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// cellWidth estimates a column width for a rendered value, clamped to
// [minColumnWidth, maxColumnWidth]. Multi-line cells count the longest line.
func cellWidth(value string) float64 {
	longest := 0
	for _, line := range strings.Split(value, "\n") {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	w := float64(longest) + 2
	if w < minColumnWidth {
		return minColumnWidth
	}
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}

// sanitizeSheetName strips characters Excel forbids in sheet names and
// truncates to the 31-character limit.
func sanitizeSheetName(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, name)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		clean = "Sheet"
	}
	if len(clean) > maxSheetNameLen {
		clean = clean[:maxSheetNameLen]
	}
	return clean
}
