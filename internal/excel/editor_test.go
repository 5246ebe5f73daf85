package excel

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteRowsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.xlsx")

	rows := [][]string{
		{"Name", "Age", "Score"},
		{"Alice", "30", "91.5"},
		{"Bob", "25", "88"},
	}

	editor := NewEditor()
	if err := editor.WriteRows(editor.FirstSheet(), rows); err != nil {
		t.Fatalf("WriteRows() error: %v", err)
	}
	if err := editor.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error: %v", err)
	}
	if err := editor.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Rows(reopened.FirstSheet())
	if err != nil {
		t.Fatalf("Rows() error: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("Rows() = %v, want %v", got, rows)
	}
}

func TestWriteRowsKeepsTextIdentifiers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.xlsx")

	rows := [][]string{
		{"ID", "Zip", "Rate"},
		{"007", "02134", "1.50"},
	}

	editor := NewEditor()
	if err := editor.WriteRows(editor.FirstSheet(), rows); err != nil {
		t.Fatalf("WriteRows() error: %v", err)
	}
	if err := editor.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error: %v", err)
	}
	if err := editor.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Rows(reopened.FirstSheet())
	if err != nil {
		t.Fatalf("Rows() error: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("Rows() = %v, want %v", got, rows)
	}
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	if err == nil {
		t.Error("expected an error for a missing workbook")
	}
}

func TestSheetHelpers(t *testing.T) {
	editor := NewEditor()
	defer editor.Close()

	first := editor.FirstSheet()
	if first == "" {
		t.Fatal("FirstSheet() returned an empty name")
	}
	if !editor.HasSheet(first) {
		t.Errorf("HasSheet(%q) = false, want true", first)
	}
	if editor.HasSheet("NoSuchSheet") {
		t.Error("HasSheet() reported a sheet that does not exist")
	}

	names := editor.SheetNames()
	if len(names) != 1 || names[0] != first {
		t.Errorf("SheetNames() = %v, want [%s]", names, first)
	}
}

func TestParseNumericValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  interface{}
	}{
		{name: "integer", input: "42", want: int64(42)},
		{name: "negative integer", input: "-7", want: int64(-7)},
		{name: "float", input: "3.14", want: 3.14},
		{name: "leading zero id", input: "007", want: "007"},
		{name: "zip code", input: "02134", want: "02134"},
		{name: "trailing zero decimal", input: "1.50", want: "1.50"},
		{name: "explicit plus sign", input: "+42", want: "+42"},
		{name: "exponent notation", input: "1e3", want: "1e3"},
		{name: "padded number", input: " 19 ", want: " 19 "},
		{name: "text", input: "hello", want: "hello"},
		{name: "empty string", input: "", want: ""},
		{name: "whitespace only", input: "  ", want: "  "},
		{name: "mixed", input: "12abc", want: "12abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseNumericValue(tt.input); got != tt.want {
				t.Errorf("parseNumericValue(%q) = %v (%T), want %v (%T)", tt.input, got, got, tt.want, tt.want)
			}
		})
	}
}
