package loader

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/AlexJGeorge1/ragqa/ingest"
	"github.com/AlexJGeorge1/ragqa/types"
)

// DocumentLoader is the unified interface for loading documents from a source.
type DocumentLoader interface {
	// Load decodes the source and returns documents.
	Load(ctx context.Context, source string) ([]ingest.Document, error)

	// SupportedTypes returns the file extensions this loader handles (e.g. ".txt", ".md").
	SupportedTypes() []string
}

// Registry routes Load calls to the appropriate DocumentLoader based on file extension.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]DocumentLoader // extension (lowercase, with dot) -> loader
}

// NewRegistry creates a registry pre-populated with the built-in loaders.
func NewRegistry() *Registry {
	r := &Registry{
		loaders: make(map[string]DocumentLoader),
	}

	builtins := []DocumentLoader{
		NewTextLoader(),
		NewMarkdownLoader(),
	}
	for _, l := range builtins {
		for _, ext := range l.SupportedTypes() {
			r.loaders[strings.ToLower(ext)] = l
		}
	}

	return r
}

// Register adds or replaces a loader for the given file extension.
// ext should include the leading dot (e.g. ".rst").
func (r *Registry) Register(ext string, loader DocumentLoader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[strings.ToLower(ext)] = loader
}

// Load determines the loader from the source's file extension and delegates
// to it. Unknown extensions fail with types.ErrUnsupportedFormat, matching
// the decoder's extension gate.
func (r *Registry) Load(ctx context.Context, source string) ([]ingest.Document, error) {
	ext := strings.ToLower(filepath.Ext(source))
	if ext == "" {
		return nil, types.NewError(types.ErrUnsupportedFormat,
			"cannot determine file type (no extension)").WithPath(source)
	}

	r.mu.RLock()
	l, ok := r.loaders[ext]
	r.mu.RUnlock()

	if !ok {
		return nil, types.NewError(types.ErrUnsupportedFormat,
			"no loader registered for extension "+ext).WithPath(source)
	}

	return l.Load(ctx, source)
}

// SupportedTypes returns all registered extensions, sorted.
func (r *Registry) SupportedTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.loaders))
	for ext := range r.loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
