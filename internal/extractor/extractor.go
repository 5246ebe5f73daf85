// Package extractor reads tabular files and writes new files containing a
// selection of their columns. It understands Excel workbooks and CSV files
// and keeps rows in source order.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sheetCut/internal/logger"
)

// DefaultColumnCount is how many leading columns an extraction keeps when no
// explicit selection is given.
const DefaultColumnCount = 3

// DefaultOutputSuffix is appended to the input file's stem when no output
// path is given.
const DefaultOutputSuffix = "_processed"

var (
	// ErrInputNotFound means the input path does not exist or is not a readable file.
	ErrInputNotFound = errors.New("input file not found")
	// ErrInsufficientColumns means the input table is narrower than the selection needs.
	ErrInsufficientColumns = errors.New("insufficient columns")
	// ErrUnsupportedFormat means the file extension is not one the extractor handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Options adjust how input files are read and how output names are derived.
type Options struct {
	// Sheet selects the source sheet of a workbook. Empty means the first sheet.
	Sheet string
	// Suffix is appended to the input stem when deriving a default output
	// name. Empty means DefaultOutputSuffix.
	Suffix string
}

// Result describes a completed extraction.
type Result struct {
	InputFile  string
	OutputFile string
	Columns    []string
	Rows       int
}

// Process extracts the first DefaultColumnCount columns of the input file
// into a new file. When outputPath is empty the output name is derived from
// the input name with the configured suffix.
func Process(inputPath, outputPath string, opts Options) (*Result, error) {
	cols := make([]int, DefaultColumnCount)
	for i := range cols {
		cols[i] = i
	}
	return ProcessColumns(inputPath, outputPath, cols, opts)
}

// ProcessColumns extracts the given columns, in the given order, from the
// input file into a new file. The input is validated and the full selection
// computed before the output file is created, so a failed run leaves no
// partial output behind.
func ProcessColumns(inputPath, outputPath string, cols []int, opts Options) (*Result, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns selected")
	}
	if outputPath != "" {
		if ext := strings.ToLower(filepath.Ext(outputPath)); !supportedExt(ext) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, outputPath)
		}
	}

	logger.Info("Reading input file", "path", inputPath)
	table, err := Load(inputPath, opts)
	if err != nil {
		logger.Error("Failed to read input file", "path", inputPath, "error", err)
		return nil, err
	}
	logger.Info("Loaded table", "path", inputPath, "columns", table.ColumnCount(), "rows", table.RowCount())

	need := maxColumn(cols) + 1
	if found := table.ColumnCount(); found < need {
		err := fmt.Errorf("%w: file has %d, need at least %d", ErrInsufficientColumns, found, need)
		logger.Error("Input file is too narrow", "path", inputPath, "columns", found, "need", need)
		return nil, err
	}

	if outputPath == "" {
		outputPath = DeriveOutputPath(inputPath, opts.Suffix)
	}

	selected := table.Select(cols)
	logger.Info("Extracted columns", "columns", selected.Headers())

	if err := writeTable(outputPath, selected); err != nil {
		logger.Error("Failed to write output file", "path", outputPath, "error", err)
		return nil, fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}
	logger.Info("Created output file", "path", outputPath, "rows", selected.RowCount())

	return &Result{
		InputFile:  inputPath,
		OutputFile: outputPath,
		Columns:    selected.Headers(),
		Rows:       selected.RowCount(),
	}, nil
}

// Load reads the full table at path. The sheet in opts selects the source
// sheet of a workbook and is ignored for CSV files.
func Load(path string, opts Options) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	info, err := file.Stat()
	file.Close()
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return readTable(path, opts.Sheet)
}

// DeriveOutputPath returns the default output name for an input path: the
// input's stem plus the suffix, keeping the input's extension.
func DeriveOutputPath(inputPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + suffix + ext
}

func maxColumn(cols []int) int {
	max := cols[0]
	for _, c := range cols[1:] {
		if c > max {
			max = c
		}
	}
	return max
}
