package models

import (
	"path/filepath"
	"strings"
)

// ExportFormat selects the rendering used by bulk export.
type ExportFormat string

const (
	// ExportMarkdown renders one "# title" block per record.
	ExportMarkdown ExportFormat = "markdown"
	// ExportHTML renders the markdown export to sanitized HTML.
	ExportHTML ExportFormat = "html"
)

// ParseExportFormat maps a user-supplied format name to an [ExportFormat].
// An empty name selects [ExportMarkdown]. The second return value is false
// for unknown names.
func ParseExportFormat(name string) (ExportFormat, bool) {
	switch ExportFormat(name) {
	case "", ExportMarkdown, "md":
		return ExportMarkdown, true
	case ExportHTML:
		return ExportHTML, true
	default:
		return "", false
	}
}

// Extension returns the file extension conventionally used for the format.
func (f ExportFormat) Extension() string {
	if f == ExportHTML {
		return ".html"
	}
	return ".md"
}

// Destination adapts a configured export path to the format: the file
// extension is replaced with [ExportFormat.Extension] unless it already
// matches, so "journal.md" becomes "journal.html" for an HTML export.
func (f ExportFormat) Destination(path string) string {
	ext := filepath.Ext(path)
	if ext == f.Extension() {
		return path
	}
	return strings.TrimSuffix(path, ext) + f.Extension()
}
