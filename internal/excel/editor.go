package excel

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing workbook
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// NewEditor creates a new workbook in memory
func NewEditor() *Editor {
	file := excelize.NewFile()
	return &Editor{
		file:     file,
		filepath: "",
	}
}

// FirstSheet returns the name of the workbook's first sheet
func (e *Editor) FirstSheet() string {
	return e.file.GetSheetName(0)
}

// SheetNames returns all sheet names in the workbook
func (e *Editor) SheetNames() []string {
	return e.file.GetSheetList()
}

// HasSheet reports whether the workbook contains the named sheet
func (e *Editor) HasSheet(sheet string) bool {
	for _, name := range e.file.GetSheetList() {
		if name == sheet {
			return true
		}
	}
	return false
}

// Rows returns all rows from a sheet as formatted cell values
func (e *Editor) Rows(sheet string) ([][]string, error) {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}
	return rows, nil
}

// WriteRows writes the given rows to a sheet starting at A1, detecting
// numeric cell values so numbers stay numbers in the saved workbook
func (e *Editor) WriteRows(sheet string, rows [][]string) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to name cell at row %d col %d: %v", r+1, c+1, err)
			}
			if err := e.file.SetCellValue(sheet, cell, parseNumericValue(value)); err != nil {
				return fmt.Errorf("failed to set cell %s: %v", cell, err)
			}
		}
	}
	return nil
}

// SaveAs saves the workbook with a new name
func (e *Editor) SaveAs(filepath string) error {
	e.filepath = filepath
	return e.file.SaveAs(filepath)
}

// Close closes the workbook
func (e *Editor) Close() error {
	return e.file.Close()
}

// parseNumericValue parses a string as a number, returning a typed value only
// when the number formats back to exactly the original text. Values like "007"
// or "1.50", which a retype would display differently, stay strings.
func parseNumericValue(value string) interface{} {
	// Try to parse as integer first
	if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
		if strconv.FormatInt(intVal, 10) == value {
			return intVal
		}
		return value
	}

	// Try to parse as float
	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		if strconv.FormatFloat(floatVal, 'f', -1, 64) == value {
			return floatVal
		}
	}

	// Not a clean number, return as string
	return value
}
