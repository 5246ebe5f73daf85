package extractor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sheetCut/internal/logger"
)

// BatchResult summarizes a directory extraction run.
type BatchResult struct {
	Extracted int
	Failed    int
}

// Total returns the number of files attempted
func (r BatchResult) Total() int {
	return r.Extracted + r.Failed
}

// HasFailures reports whether any file failed to extract
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ProcessDir extracts the leading columns of every supported file in
// inputDir into outputDir, one output file per input. Progress lines and a
// summary are written to w. A file that fails is reported and counted, and
// the run continues with the next file.
func ProcessDir(inputDir, outputDir string, opts Options, w io.Writer) (BatchResult, error) {
	// Create the input directory if it doesn't exist
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return BatchResult{}, fmt.Errorf("failed to create input directory: %v", err)
	}

	// Create the output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return BatchResult{}, fmt.Errorf("failed to create output directory: %v", err)
	}

	files, err := FindTabularFiles(inputDir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("failed to scan input directory: %v", err)
	}

	if len(files) == 0 {
		fmt.Fprintf(w, "No spreadsheet files found in directory: %s\n", inputDir)
		return BatchResult{}, nil
	}

	fmt.Fprintf(w, "Found %d files to extract\n", len(files))
	logger.Info("Starting batch extraction", "input_dir", inputDir, "output_dir", outputDir, "files", len(files))

	var result BatchResult
	for i, inputFile := range files {
		name, err := filepath.Rel(inputDir, inputFile)
		if err != nil {
			name = filepath.Base(inputFile)
		}
		outputFile := filepath.Join(outputDir, DeriveOutputPath(name, opts.Suffix))

		fmt.Fprintf(w, "[%d/%d] Extracting: %s\n", i+1, len(files), name)

		// Mirror the input directory layout under the output directory
		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			fmt.Fprintf(w, "  failed: %v\n", err)
			result.Failed++
			continue
		}

		res, err := Process(inputFile, outputFile, opts)
		if err != nil {
			fmt.Fprintf(w, "  failed: %v\n", err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "  created: %s (%d columns, %d rows)\n", res.OutputFile, len(res.Columns), res.Rows)
		result.Extracted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d failed (total: %d)\n",
		result.Extracted, result.Failed, result.Total())
	logger.Info("Batch extraction finished", "extracted", result.Extracted, "failed", result.Failed)

	return result, nil
}
