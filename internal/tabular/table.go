// Package tabular wraps the untyped string grid returned by the spreadsheet
// backend in a header-addressable table.
package tabular

import "fmt"

// Table is an in-memory view of a worksheet: deduplicated headers plus data
// rows in sheet order.
type Table struct {
	Headers []string
	Rows    [][]string
}

// New builds a Table from raw worksheet values. The first row is treated as
// the header row and deduplicated; remaining rows are data.
func New(values [][]string) Table {
	if len(values) == 0 {
		return Table{}
	}
	return Table{
		Headers: DedupeHeaders(values[0]),
		Rows:    values[1:],
	}
}

// DedupeHeaders suffixes repeated header names so each column is uniquely
// addressable: URL, URL, URL becomes URL, URL_1, URL_2.
func DedupeHeaders(headers []string) []string {
	seen := make(map[string]int, len(headers))
	unique := make([]string, len(headers))
	for i, h := range headers {
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			unique[i] = fmt.Sprintf("%s_%d", h, n+1)
		} else {
			seen[h] = 0
			unique[i] = h
		}
	}
	return unique
}

// FindColumn returns the zero-based index of the named header, or -1.
func (t Table) FindColumn(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Get returns the cell at the given data row under the named header.
// Missing columns and ragged rows yield "".
func (t Table) Get(row int, header string) string {
	col := t.FindColumn(header)
	if col < 0 || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// SheetRow converts a data row index to its 1-based spreadsheet row number,
// accounting for the header row.
func (t Table) SheetRow(row int) int {
	return row + 2
}
