// Package testutil holds the document corpus shared by the golden, fuzz and
// parser tests.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Documents returns the names of the embedded .uni documents.
func Documents() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.uni")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = path.Base(m)
	}
	return names, nil
}

// GoldenName returns the golden file name paired with a .uni document.
func GoldenName(name string) string {
	return strings.TrimSuffix(name, ".uni") + ".golden"
}
