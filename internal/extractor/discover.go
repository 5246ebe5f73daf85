package extractor

import (
	"os"
	"path/filepath"
	"strings"
)

// FindTabularFiles returns all files with a supported extension in the
// specified directory, recursively, in walk order
func FindTabularFiles(dir string) ([]string, error) {
	var found []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && supportedExt(strings.ToLower(filepath.Ext(path))) {
			found = append(found, path)
		}

		return nil
	})

	return found, err
}
