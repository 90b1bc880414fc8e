package loader

import (
	"context"
	"path/filepath"

	"github.com/AlexJGeorge1/ragqa/ingest"
)

// TextLoader loads plain text files as a single Document.
type TextLoader struct{}

// NewTextLoader creates a TextLoader.
func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

// Load decodes a text file and returns it as a single Document.
func (l *TextLoader) Load(ctx context.Context, source string) ([]ingest.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := ingest.DecodeFile(source)
	if err != nil {
		return nil, err
	}

	doc.Metadata = map[string]any{
		"source_file":  filepath.Base(source),
		"source_path":  source,
		"content_type": "text/plain",
		"loader":       "text",
	}

	return []ingest.Document{doc}, nil
}

// SupportedTypes returns the extensions handled by TextLoader.
func (l *TextLoader) SupportedTypes() []string {
	return []string{".txt"}
}
