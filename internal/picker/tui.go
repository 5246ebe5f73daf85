package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sheetCut/internal/extractor"
)

// UI states
type state int

const (
	statePickFile state = iota
	stateSelectColumns
	stateExtracting
	stateDone
	stateError
)

type tableLoadedMsg struct {
	table *extractor.Table
	err   error
}

type extractDoneMsg struct {
	result *extractor.Result
	err    error
}

// model represents the TUI model
type model struct {
	state       state
	filepicker  filepicker.Model
	table       *extractor.Table
	opts        extractor.Options
	outputPath  string
	previewRows int

	// Column selection
	cursor   int
	selected map[int]bool

	// Outcome
	result *extractor.Result
	err    error

	// Screen dimensions
	width  int
	height int

	// Styling
	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	checkedStyle  lipgloss.Style
	successStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	helpStyle     lipgloss.Style
}

// Initialize the model with extraction options
func initialModel(outputPath string, opts extractor.Options, previewRows int) model {
	fp := filepicker.New()
	fp.AllowedTypes = extractor.SupportedExtensions()
	fp.CurrentDirectory, _ = os.Getwd()

	return model{
		state:       statePickFile,
		filepicker:  fp,
		opts:        opts,
		outputPath:  outputPath,
		previewRows: previewRows,
		selected:    make(map[int]bool),

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		checkedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Padding(0, 1),
		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

func (m model) Init() tea.Cmd {
	if m.state == statePickFile {
		return m.filepicker.Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		pickerHeight := msg.Height - 8
		if pickerHeight < 5 {
			pickerHeight = 5
		}
		m.filepicker.SetHeight(pickerHeight)

	case tea.KeyMsg:
		switch m.state {
		case statePickFile:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateSelectColumns:
			return m.updateSelectColumns(msg)

		case stateDone, stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
		}

	case tableLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.table = msg.table
		m.preselectDefaults()
		m.state = stateSelectColumns
		return m, nil

	case extractDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.result = msg.result
		m.state = stateDone
		return m, nil
	}

	// Handle filepicker updates
	if m.state == statePickFile {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			return m, m.loadTable(path)
		}

		return m, cmd
	}

	return m, nil
}

func (m model) updateSelectColumns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.table.ColumnCount()-1 {
			m.cursor++
		}

	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]

	case "a":
		for i := 0; i < m.table.ColumnCount(); i++ {
			m.selected[i] = true
		}

	case "r":
		m.selected = make(map[int]bool)
		m.preselectDefaults()

	case "enter":
		if len(m.selectedColumns()) > 0 {
			m.state = stateExtracting
			return m, m.extract()
		}
	}
	return m, nil
}

func (m model) loadTable(path string) tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		table, err := extractor.Load(path, opts)
		if err == nil && table.ColumnCount() == 0 {
			err = fmt.Errorf("%w: file has no columns", extractor.ErrInsufficientColumns)
		}
		return tableLoadedMsg{table: table, err: err}
	}
}

func (m model) extract() tea.Cmd {
	cols := m.selectedColumns()
	inputPath := m.table.Path
	outputPath := m.outputPath
	opts := m.opts
	return func() tea.Msg {
		result, err := extractor.ProcessColumns(inputPath, outputPath, cols, opts)
		return extractDoneMsg{result: result, err: err}
	}
}

// preselectDefaults marks the leading columns the default extraction would keep
func (m *model) preselectDefaults() {
	count := extractor.DefaultColumnCount
	if width := m.table.ColumnCount(); width < count {
		count = width
	}
	for i := 0; i < count; i++ {
		m.selected[i] = true
	}
}

// selectedColumns returns the chosen column indices in source order
func (m model) selectedColumns() []int {
	var cols []int
	for i := 0; i < m.table.ColumnCount(); i++ {
		if m.selected[i] {
			cols = append(cols, i)
		}
	}
	return cols
}

// columnNames returns a display name for every column, falling back to a
// positional name when the header cell is blank
func (m model) columnNames() []string {
	names := make([]string, m.table.ColumnCount())
	headers := m.table.Headers()
	for i := range names {
		if i < len(headers) && strings.TrimSpace(headers[i]) != "" {
			names[i] = headers[i]
		} else {
			names[i] = fmt.Sprintf("Column %d", i+1)
		}
	}
	return names
}

func (m model) View() string {
	switch m.state {
	case statePickFile:
		return m.viewPickFile()
	case stateSelectColumns:
		return m.viewSelectColumns()
	case stateExtracting:
		return m.viewExtracting()
	case stateDone:
		return m.viewDone()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m model) viewPickFile() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Column Extractor"))
	b.WriteString("\n\n")
	b.WriteString("Select a spreadsheet or CSV file:")
	b.WriteString("\n\n")
	b.WriteString(m.filepicker.View())
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("↑↓: navigate | Enter: select | q: quit"))

	return b.String()
}

func (m model) viewSelectColumns() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Select Columns to Extract"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("File: %s", filepath.Base(m.table.Path)))
	if m.table.Sheet != "" {
		b.WriteString(fmt.Sprintf(" (sheet: %s)", m.table.Sheet))
	}
	b.WriteString("\n\n")

	for i, name := range m.columnNames() {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		checked := " "
		if m.selected[i] {
			checked = "✓"
		}

		line := fmt.Sprintf("%s [%s] %s", cursor, checked, name)

		switch {
		case m.cursor == i:
			line = m.selectedStyle.Render(line)
		case m.selected[i]:
			line = m.checkedStyle.Render(line)
		default:
			line = m.normalStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("↑↓: navigate | Space: toggle | a: all | r: reset | Enter: extract | q: quit"))

	return b.String()
}

// renderPreview shows the first rows of the table as the extraction would
// write them, limited to the configured number of preview rows
func (m model) renderPreview() string {
	cols := m.selectedColumns()
	if len(cols) == 0 {
		return m.helpStyle.Render("(no columns selected)") + "\n"
	}

	preview := m.table.Select(cols)
	rows := preview.Rows
	limit := m.previewRows + 1
	if len(rows) > limit {
		rows = rows[:limit]
	}

	lineWidth := m.width - 8
	if lineWidth < 10 {
		lineWidth = 10 // Minimum width
	}

	var b strings.Builder
	b.WriteString(m.helpStyle.Render(fmt.Sprintf("Preview (%d columns):", len(cols))))
	b.WriteString("\n")
	for i, row := range rows {
		line := strings.Join(row, " | ")
		if runes := []rune(line); len(runes) > lineWidth {
			line = string(runes[:lineWidth-3]) + "..."
		}
		if i == 0 {
			b.WriteString(m.checkedStyle.Render(line))
		} else {
			b.WriteString(m.normalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) viewExtracting() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Extracting..."))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Writing %d columns from %s", len(m.selectedColumns()), filepath.Base(m.table.Path)))

	return b.String()
}

func (m model) viewDone() string {
	var b strings.Builder

	b.WriteString(m.successStyle.Render("✓ Extraction complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Input:  %s\n", m.result.InputFile))
	b.WriteString(fmt.Sprintf("Output: %s\n", m.result.OutputFile))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Columns: %s\n", strings.Join(m.result.Columns, ", ")))
	b.WriteString(fmt.Sprintf("Rows: %d\n", m.result.Rows))
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("Press any key to exit"))

	return b.String()
}

func (m model) viewError() string {
	var b strings.Builder

	b.WriteString(m.errorStyle.Render("❌ Extraction failed"))
	b.WriteString("\n\n")
	b.WriteString(m.err.Error())
	b.WriteString("\n\n")
	b.WriteString(m.helpStyle.Render("Press any key to exit"))

	return b.String()
}
