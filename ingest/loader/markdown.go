package loader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/AlexJGeorge1/ragqa/ingest"
)

// MarkdownLoader loads Markdown files as a single Document, recording the
// document title (first top-level heading) and heading count in metadata.
// Splitting by section is left to the chunking layer; the pipeline wants the
// whole normalized document.
type MarkdownLoader struct{}

// NewMarkdownLoader creates a MarkdownLoader.
func NewMarkdownLoader() *MarkdownLoader {
	return &MarkdownLoader{}
}

// Load decodes a Markdown file and returns it as a single Document.
func (l *MarkdownLoader) Load(ctx context.Context, source string) ([]ingest.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := ingest.DecodeFile(source)
	if err != nil {
		return nil, err
	}

	title := ""
	headings := 0
	for _, line := range strings.Split(doc.Content, "\n") {
		if h, level := parseHeading(line); h != "" {
			headings++
			if title == "" && level == 1 {
				title = h
			}
		}
	}

	meta := map[string]any{
		"source_file":  filepath.Base(source),
		"source_path":  source,
		"content_type": "text/markdown",
		"loader":       "markdown",
		"headings":     headings,
	}
	if title != "" {
		meta["title"] = title
	}
	doc.Metadata = meta

	return []ingest.Document{doc}, nil
}

// parseHeading detects ATX-style headings (# Heading).
// Returns the heading text and level (1-6), or ("", 0) if not a heading.
func parseHeading(line string) (heading string, level int) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return "", 0
	}
	level = 0
	for _, ch := range trimmed {
		if ch == '#' {
			level++
		} else {
			break
		}
	}
	if level < 1 || level > 6 {
		return "", 0
	}
	heading = strings.TrimSpace(trimmed[level:])
	if heading == "" {
		return "", 0
	}
	return heading, level
}

// SupportedTypes returns the extensions handled by MarkdownLoader.
func (l *MarkdownLoader) SupportedTypes() []string {
	return []string{".md"}
}
