package services

import (
	"fmt"
	"regexp"
	"strings"
)

type ExportFormat string

const (
	ExportMarkdown ExportFormat = "markdown"
	ExportMermaid  ExportFormat = "mermaid"
	ExportText     ExportFormat = "text"
)

var ExportFormats = []ExportFormat{ExportMarkdown, ExportMermaid, ExportText}

func (f ExportFormat) Valid() bool {
	switch f {
	case ExportMarkdown, ExportMermaid, ExportText:
		return true
	}
	return false
}

func (f ExportFormat) Extension() string {
	switch f {
	case ExportMarkdown:
		return ".md"
	case ExportMermaid:
		return ".mmd"
	case ExportText:
		return ".txt"
	}
	return ""
}

func (f ExportFormat) ContentType() string {
	switch f {
	case ExportMarkdown:
		return "text/markdown; charset=utf-8"
	case ExportMermaid, ExportText:
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}

// fallbackName is used when the title is blank.
func (f ExportFormat) fallbackName() string {
	switch f {
	case ExportMarkdown:
		return "enhanced-prompt"
	case ExportMermaid:
		return "mermaid-diagram"
	case ExportText:
		return "content"
	}
	return "export"
}

// ExportFile is a downloadable rendering of some generated text.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExportFilename lower-cases the title and joins its words with hyphens.
func ExportFilename(title string, format ExportFormat) string {
	base := strings.TrimSpace(title)
	if base == "" {
		base = format.fallbackName()
	}
	return strings.ToLower(whitespaceRun.ReplaceAllString(base, "-")) + format.Extension()
}

// Export builds a download for content. Empty content has nothing to export.
func Export(title, content string, format ExportFormat) (*ExportFile, error) {
	if format == "" {
		format = ExportMarkdown
	}
	if !format.Valid() {
		return nil, invalid("format", fmt.Sprintf("Unknown export format %q.", format))
	}
	if strings.TrimSpace(content) == "" {
		return nil, invalid("content", "There is nothing to export yet.")
	}
	return &ExportFile{
		Filename:    ExportFilename(title, format),
		ContentType: format.ContentType(),
		Body:        []byte(content),
	}, nil
}
