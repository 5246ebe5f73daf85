package extractor

import "sheetCut/internal/logger"

// Report describes the shape of a tabular file without modifying it.
type Report struct {
	File        string   `json:"file"`
	Sheet       string   `json:"sheet,omitempty"`
	Sheets      []string `json:"sheets,omitempty"`
	ColumnCount int      `json:"column_count"`
	RowCount    int      `json:"row_count"`
	Columns     []string `json:"columns"`
	Extractable bool     `json:"extractable"`
}

// Inspect loads the table at path and reports its dimensions, header row and
// whether a default extraction would succeed.
func Inspect(path string, opts Options) (*Report, error) {
	table, err := Load(path, opts)
	if err != nil {
		logger.Error("Failed to inspect file", "path", path, "error", err)
		return nil, err
	}

	report := &Report{
		File:        path,
		Sheet:       table.Sheet,
		Sheets:      table.Sheets,
		ColumnCount: table.ColumnCount(),
		RowCount:    table.RowCount(),
		Columns:     table.Headers(),
		Extractable: table.ColumnCount() >= DefaultColumnCount,
	}
	logger.Info("Inspected file", "path", path, "columns", report.ColumnCount, "rows", report.RowCount)
	return report, nil
}
