package extractor

// Table holds one tabular file fully in memory: every row of the source in
// order, header row included, as formatted cell values.
type Table struct {
	Path   string
	Sheet  string
	Sheets []string
	Rows   [][]string
}

// ColumnCount returns the width of the widest row in the table
func (t *Table) ColumnCount() int {
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// RowCount returns the number of data rows, excluding the header row
func (t *Table) RowCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows) - 1
}

// Headers returns the header row, or nil for an empty table
func (t *Table) Headers() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Select returns a new table keeping the given columns of every row, in the
// given order. Cells absent from short rows become empty strings, so every
// row of the result has exactly len(cols) cells.
func (t *Table) Select(cols []int) *Table {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		selected := make([]string, len(cols))
		for j, c := range cols {
			if c >= 0 && c < len(row) {
				selected[j] = row[c]
			}
		}
		rows[i] = selected
	}
	return &Table{Path: t.Path, Sheet: t.Sheet, Rows: rows}
}
