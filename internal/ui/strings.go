package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given display width, adding an ellipsis if
// needed. Width is measured in terminal cells, so wide runes count double.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "...")
}

// firstLine returns the text up to the first newline, trimmed. Evidence
// snippets occasionally arrive with embedded line breaks.
func firstLine(value string) string {
	if idx := strings.IndexByte(value, '\n'); idx >= 0 {
		value = value[:idx]
	}
	return strings.TrimSpace(value)
}
