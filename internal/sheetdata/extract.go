package sheetdata

import "strings"

// Header is the canonical column layout of one logical sheet, established by
// the first tab in which a header row is found and reused verbatim for every
// later tab of the same sheet.
type Header []string

// Record maps canonical column names to raw cell text for one data row.
type Record map[string]string

// Table is the result of extracting one tab: the header in effect plus the
// projected data rows.
type Table struct {
	Header Header
	Rows   []Record
}

// ExtractTable locates the header row of one tab and projects the rows below
// it into Records. The header row is the first row with any cell whose
// normalized text contains "DATA APOSTA". When prior is non-empty it is the
// header definition for this tab; the tab's own header text is ignored and
// its position only marks where data starts. Tabs without a header row
// yield no rows and pass prior through unchanged. Malformed input never
// errors.
func ExtractTable(grid [][]string, prior Header) Table {
	headerIdx := -1
scan:
	for i, row := range grid {
		for _, cell := range row {
			if strings.Contains(NormalizeHeaderText(cell), ColDataAposta) {
				headerIdx = i
				break scan
			}
		}
	}
	if headerIdx < 0 {
		return Table{Header: prior, Rows: []Record{}}
	}

	header := prior
	if len(header) == 0 {
		raw := grid[headerIdx]
		header = make(Header, len(raw))
		for j, cell := range raw {
			header[j] = CanonicalizeHeader(cell)
		}
	}

	rows := make([]Record, 0, len(grid)-headerIdx-1)
	for _, row := range grid[headerIdx+1:] {
		if blankRow(row) {
			// Blank rows are gaps, not terminators; keep scanning.
			continue
		}
		rec := make(Record, len(header))
		for j, name := range header {
			if name == "" {
				continue
			}
			var val string
			if j < len(row) {
				val = row[j]
			}
			rec[name] = val
		}
		rows = append(rows, rec)
	}
	return Table{Header: header, Rows: rows}
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
