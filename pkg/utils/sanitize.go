package utils

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeFilename reduces an uploaded filename to a safe basename: path
// separators and control characters are stripped so the file lands inside
// the drop directory no matter what the client sent.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "\\", "_")

	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return ""
	}
	return cleaned
}

// SanitizeString trims whitespace and strips control characters from user
// input.
func SanitizeString(input string) string {
	trimmed := strings.TrimSpace(input)
	var b strings.Builder
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
