// Package picker implements the interactive extraction interface: a file
// browser, a column checklist with a live preview, and the extraction run.
package picker

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"sheetCut/internal/extractor"
	"sheetCut/internal/logger"
)

// Run starts the interactive picker. When inputPath is empty the picker
// opens with a file browser, otherwise it starts on the column checklist
// for that file. The chosen columns are extracted with the same rules as a
// direct extraction, and quitting before extracting is not an error.
func Run(inputPath, outputPath string, opts extractor.Options, previewRows int) error {
	if previewRows <= 0 {
		previewRows = 8
	}

	m := initialModel(outputPath, opts, previewRows)
	if inputPath != "" {
		table, err := extractor.Load(inputPath, opts)
		if err != nil {
			return err
		}
		if table.ColumnCount() == 0 {
			return fmt.Errorf("%w: file has no columns", extractor.ErrInsufficientColumns)
		}
		m.table = table
		m.preselectDefaults()
		m.state = stateSelectColumns
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running picker: %v", err)
	}

	final := finalModel.(model)
	if final.err != nil {
		return final.err
	}

	if final.result != nil {
		logger.Info("Interactive extraction finished", "output", final.result.OutputFile, "columns", len(final.result.Columns))
		fmt.Printf("✓ Extracted %d columns to: %s\n", len(final.result.Columns), final.result.OutputFile)
	}

	return nil
}
