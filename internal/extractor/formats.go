package extractor

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sheetCut/internal/excel"
)

var supportedExts = []string{".xlsx", ".xlsm", ".xltx", ".xltm", ".csv"}

// SupportedExtensions lists the file extensions the extractor can read and write
func SupportedExtensions() []string {
	return append([]string(nil), supportedExts...)
}

func supportedExt(ext string) bool {
	for _, e := range supportedExts {
		if ext == e {
			return true
		}
	}
	return false
}

func isWorkbookExt(ext string) bool {
	return ext != ".csv" && supportedExt(ext)
}

// readTable loads the full contents of a tabular file, dispatching on the
// file extension
func readTable(path, sheet string) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".csv":
		rows, err := readCSV(path)
		if err != nil {
			return nil, err
		}
		return &Table{Path: path, Rows: rows}, nil
	case isWorkbookExt(ext):
		return readWorkbook(path, sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// writeTable saves a table to path, dispatching on the file extension
func writeTable(path string, t *Table) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".csv":
		return writeCSV(path, t.Rows)
	case isWorkbookExt(ext):
		return writeWorkbook(path, t.Rows)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func readWorkbook(path, sheet string) (*Table, error) {
	editor, err := excel.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", path, err)
	}
	defer editor.Close()

	if sheet == "" {
		sheet = editor.FirstSheet()
	} else if !editor.HasSheet(sheet) {
		return nil, fmt.Errorf("sheet %q not found in %s", sheet, path)
	}

	rows, err := editor.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q from %s: %w", sheet, path, err)
	}
	return &Table{Path: path, Sheet: sheet, Sheets: editor.SheetNames(), Rows: rows}, nil
}

func writeWorkbook(path string, rows [][]string) error {
	editor := excel.NewEditor()
	defer editor.Close()

	if err := editor.WriteRows(editor.FirstSheet(), rows); err != nil {
		return err
	}
	return editor.SaveAs(path)
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file %s: %w", path, err)
	}
	// Some exporters prepend a UTF-8 byte order mark
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\uFEFF")
	}
	return records, nil
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV file %s: %w", path, err)
	}
	return nil
}
