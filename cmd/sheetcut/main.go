package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sheetCut/internal/config"
	"sheetCut/internal/extractor"
	"sheetCut/internal/logger"
	"sheetCut/internal/picker"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	cfg, err := config.LoadConfig("configs/config.toml")
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "extract":
		if len(os.Args) < 3 {
			fmt.Println("Error: extract command requires an input file path")
			fmt.Println("Usage: sheetcut extract <input_file> [output_file]")
			os.Exit(1)
		}
		outputPath := ""
		if len(os.Args) > 3 {
			outputPath = os.Args[3]
		}
		runExtract(cfg, os.Args[2], outputPath)
	case "extract-all":
		runExtractAll(cfg)
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Println("Error: inspect command requires an input file path")
			fmt.Println("Usage: sheetcut inspect <input_file> [--json]")
			os.Exit(1)
		}
		runInspect(cfg, os.Args[2], hasJSONFlag(os.Args[3:]))
	case "pick":
		inputPath := ""
		outputPath := ""
		if len(os.Args) > 2 {
			inputPath = os.Args[2]
		}
		if len(os.Args) > 3 {
			outputPath = os.Args[3]
		}
		runPick(cfg, inputPath, outputPath)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("SheetCut - Column Extraction Tool")
	fmt.Println("\nUsage:")
	fmt.Println("  sheetcut extract <input_file> [output_file]  - Extract the first three columns to a new file")
	fmt.Println("  sheetcut extract-all                         - Extract from every file in the input directory")
	fmt.Println("  sheetcut inspect <input_file> [--json]       - Show a file's columns and dimensions")
	fmt.Println("  sheetcut pick [input_file] [output_file]     - Choose the columns to extract interactively")
}

// Helper function to read extraction options from the loaded config
func optionsFromConfig(cfg *config.Config) extractor.Options {
	return extractor.Options{
		Sheet:  cfg.Extract.Sheet,
		Suffix: cfg.Extract.OutputSuffix,
	}
}

func hasJSONFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--json" {
			return true
		}
	}
	return false
}

func runExtract(cfg *config.Config, inputPath, outputPath string) {
	logger.Info("Starting extract operation", "input_file", inputPath)

	result, err := extractor.Process(inputPath, outputPath, optionsFromConfig(cfg))
	if err != nil {
		logger.Error("Extract operation failed", "error", err)
		fmt.Printf("Error extracting columns: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Extracted columns: %s\n", strings.Join(result.Columns, ", "))
	fmt.Printf("✓ Created output file: %s (%d rows)\n", result.OutputFile, result.Rows)
}

func runExtractAll(cfg *config.Config) {
	logger.Info("Starting extract-all operation",
		"input_directory", cfg.Batch.InputDirectory,
		"output_directory", cfg.Batch.OutputDirectory)

	result, err := extractor.ProcessDir(cfg.Batch.InputDirectory, cfg.Batch.OutputDirectory, optionsFromConfig(cfg), os.Stdout)
	if err != nil {
		logger.Error("Extract-all operation failed", "error", err)
		fmt.Printf("Error extracting directory: %v\n", err)
		os.Exit(1)
	}

	if result.HasFailures() {
		fmt.Printf("❌ Errors: %d of %d files failed\n", result.Failed, result.Total())
		os.Exit(1)
	}
	if result.Total() > 0 {
		fmt.Printf("✓ Extracted %d files to: %s\n", result.Extracted, cfg.Batch.OutputDirectory)
	}
}

func runInspect(cfg *config.Config, inputPath string, asJSON bool) {
	logger.Info("Starting inspect operation", "input_file", inputPath)

	report, err := extractor.Inspect(inputPath, optionsFromConfig(cfg))
	if err != nil {
		logger.Error("Inspect operation failed", "error", err)
		fmt.Printf("Error inspecting file: %v\n", err)
		os.Exit(1)
	}

	if asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			logger.Error("Failed to encode report", "error", err)
			fmt.Printf("Error encoding report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("File: %s\n", report.File)
	if report.Sheet != "" {
		fmt.Printf("Sheet: %s", report.Sheet)
		if len(report.Sheets) > 1 {
			fmt.Printf(" (%d sheets total)", len(report.Sheets))
		}
		fmt.Println()
	}
	fmt.Printf("Columns: %d\n", report.ColumnCount)
	fmt.Printf("Rows: %d\n", report.RowCount)
	if len(report.Columns) > 0 {
		fmt.Printf("Headers: %s\n", strings.Join(report.Columns, ", "))
	}
	if report.Extractable {
		fmt.Printf("✓ Ready to extract the first %d columns\n", extractor.DefaultColumnCount)
	} else {
		fmt.Printf("❌ Too narrow: extraction needs at least %d columns\n", extractor.DefaultColumnCount)
	}
}

func runPick(cfg *config.Config, inputPath, outputPath string) {
	logger.Info("Starting pick operation", "input_file", inputPath)

	err := picker.Run(inputPath, outputPath, optionsFromConfig(cfg), cfg.UI.PreviewRows)
	if err != nil {
		logger.Error("Pick operation failed", "error", err)
		fmt.Printf("Error running picker: %v\n", err)
		os.Exit(1)
	}
}
