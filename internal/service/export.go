package service

import (
	"bytes"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const untitled = "Untitled"

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

func renderExport(records []models.Journal, format models.ExportFormat) ([]byte, error) {
	switch format {
	case models.ExportMarkdown:
		return renderMarkdown(records), nil
	case models.ExportHTML:
		return renderHTML(records)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}
}

// renderMarkdown writes one block per record in the given order:
//
//	# <title or Untitled>\n\n<body or empty>\n\n
func renderMarkdown(records []models.Journal) []byte {
	var buf bytes.Buffer
	for _, record := range records {
		title := untitled
		if record.Title != nil {
			title = *record.Title
		}
		body := ""
		if record.Body != nil {
			body = *record.Body
		}

		buf.WriteString("# ")
		buf.WriteString(title)
		buf.WriteString("\n\n")
		buf.WriteString(body)
		buf.WriteString("\n\n")
	}
	return buf.Bytes()
}

// renderHTML converts the markdown export to HTML. Record bodies are user
// content, so raw HTML is passed through goldmark and then sanitized.
func renderHTML(records []models.Journal) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert(renderMarkdown(records), &buf); err != nil {
		return nil, fmt.Errorf("render html export: %w", err)
	}

	return htmlSanitizer.SanitizeBytes(buf.Bytes()), nil
}
