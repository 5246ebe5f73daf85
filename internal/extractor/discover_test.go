package extractor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindTabularFiles(t *testing.T) {
	dir := t.TempDir()

	mustWrite := func(name string) string {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	a := mustWrite("a.xlsx")
	b := mustWrite("b.csv")
	c := mustWrite(filepath.Join("nested", "deep", "c.xlsm"))
	upper := mustWrite("UPPER.XLSX")
	mustWrite("notes.txt")
	mustWrite("readme.md")

	found, err := FindTabularFiles(dir)
	if err != nil {
		t.Fatalf("FindTabularFiles() error: %v", err)
	}

	want := map[string]bool{a: true, b: true, c: true, upper: true}
	if len(found) != len(want) {
		t.Fatalf("found %d files, want %d: %v", len(found), len(want), found)
	}
	for _, path := range found {
		if !want[path] {
			t.Errorf("unexpected file in results: %s", path)
		}
	}
}

func TestFindTabularFilesMissingDir(t *testing.T) {
	_, err := FindTabularFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestFindTabularFilesEmptyDir(t *testing.T) {
	found, err := FindTabularFiles(t.TempDir())
	if err != nil {
		t.Fatalf("FindTabularFiles() error: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("found %d files in an empty directory", len(found))
	}
}
