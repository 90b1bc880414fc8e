package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AlexJGeorge1/ragqa/ingest"
	"github.com/AlexJGeorge1/ragqa/ingest/loader"
	"github.com/AlexJGeorge1/ragqa/internal/metrics"
	"github.com/AlexJGeorge1/ragqa/store"
	"github.com/AlexJGeorge1/ragqa/tokenizer"
	"github.com/AlexJGeorge1/ragqa/types"
)

// ProcessedDocument is the pipeline output for one ingested document:
// normalized text, its sentences in order, and a token count estimate for
// downstream chunking.
type ProcessedDocument struct {
	ID         string         `json:"id"`
	Path       string         `json:"path"`
	Encoding   string         `json:"encoding"`
	Text       string         `json:"text"`
	Sentences  []string       `json:"sentences"`
	TokenCount int            `json:"token_count"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Options configures a Pipeline.
type Options struct {
	// TokenizerModel names the subword tokenizer for token estimates.
	TokenizerModel string
}

// Pipeline runs decode, normalize, segment, and token estimation over corpus
// files. It is synchronous and not safe for concurrent use; the segmenter
// and tokenizer caches are populated on first use.
type Pipeline struct {
	registry  *loader.Registry
	splitter  *ingest.SentenceSplitter
	estimator *tokenizer.Estimator
	logger    *zap.Logger
	collector *metrics.Collector
}

// New creates a Pipeline. logger and collector may be nil.
func New(opts Options, logger *zap.Logger, collector *metrics.Collector) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	model := opts.TokenizerModel
	if model == "" {
		model = "gpt-4o"
	}

	splitter := ingest.NewSentenceSplitter(logger)
	if collector != nil {
		splitter.OnFallback = func(error) { collector.RecordSegmenterFallback() }
	}

	return &Pipeline{
		registry:  loader.NewRegistry(),
		splitter:  splitter,
		estimator: tokenizer.NewEstimator(model, logger),
		logger:    logger,
		collector: collector,
	}
}

// ProcessFile ingests a single corpus file. Decode failures propagate with
// their error code; segmentation and token estimation never fail.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) ([]ProcessedDocument, error) {
	docs, err := p.registry.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	out := make([]ProcessedDocument, 0, len(docs))
	for _, doc := range docs {
		out = append(out, p.process(doc))
	}
	return out, nil
}

// process runs the stages that cannot fail.
func (p *Pipeline) process(doc ingest.Document) ProcessedDocument {
	text := ingest.NormalizeText(doc.Content)
	sents := p.splitter.Split(text)
	count := p.estimator.Count(text)

	if p.collector != nil {
		p.collector.RecordDocument("ok")
		p.collector.AddSentences(len(sents))
		p.collector.AddTokens(count)
	}
	p.logger.Debug("processed document",
		zap.String("path", doc.Path),
		zap.String("encoding", string(doc.Encoding)),
		zap.Int("sentences", len(sents)),
		zap.Int("tokens", count))

	return ProcessedDocument{
		ID:         uuid.NewString(),
		Path:       doc.Path,
		Encoding:   string(doc.Encoding),
		Text:       text,
		Sentences:  sents,
		TokenCount: count,
		Metadata:   doc.Metadata,
	}
}

// ProcessDir walks root and ingests every supported file, skipping
// unsupported extensions and logging per-file failures without aborting the
// walk. Only walk errors and context cancellation abort.
func (p *Pipeline) ProcessDir(ctx context.Context, root string) ([]ProcessedDocument, error) {
	supported := make(map[string]bool)
	for _, ext := range p.registry.SupportedTypes() {
		supported[ext] = true
	}

	var out []ProcessedDocument
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		if !supported[strings.ToLower(filepath.Ext(path))] {
			if p.collector != nil {
				p.collector.RecordDocument("skipped")
			}
			p.logger.Debug("skipping unsupported file", zap.String("path", path))
			return nil
		}

		docs, perr := p.ProcessFile(ctx, path)
		if perr != nil {
			if p.collector != nil {
				p.collector.RecordDocument("failed")
				p.collector.RecordDecodeFailure(decodeFailureCode(perr))
			}
			p.logger.Warn("failed to ingest file",
				zap.String("path", path), zap.Error(perr))
			return nil
		}
		out = append(out, docs...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking corpus %s: %w", root, err)
	}

	p.logger.Info("corpus ingestion complete",
		zap.String("root", root), zap.Int("documents", len(out)))
	return out, nil
}

// decodeFailureCode extracts the structured error code for metrics labels.
func decodeFailureCode(err error) string {
	if code := types.GetErrorCode(err); code != "" {
		return string(code)
	}
	return "unknown"
}

// SaveManifest persists pipeline results as a JSON Record.
func (p *Pipeline) SaveManifest(docs []ProcessedDocument, path string) error {
	entries := make([]any, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, map[string]any{
			"id":          d.ID,
			"path":        d.Path,
			"encoding":    d.Encoding,
			"sentences":   len(d.Sentences),
			"token_count": d.TokenCount,
		})
	}
	rec := store.Record{
		"documents": entries,
		"count":     len(docs),
	}
	return store.SaveJSON(rec, path)
}
