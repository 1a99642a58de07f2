package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var filenamePattern = regexp.MustCompile(`^[\w\-.]+$`)

// ReadArticle reads one article body from dir. Filenames are restricted to
// word characters, dashes and dots, and the resolved path must stay inside
// dir. Bodies are read fresh on every call.
func ReadArticle(dir, filename string) (string, error) {
	if !filenamePattern.MatchString(filename) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	fullPath := filepath.Join(dir, filepath.Clean(filename))
	rel, err := filepath.Rel(dir, fullPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("filename %q escapes content directory", filename)
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
