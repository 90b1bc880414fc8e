package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
)

// splitStrategy is one way of turning normalized text into sentences.
// Implementations return raw pieces; the splitter trims and filters them.
type splitStrategy interface {
	name() string
	split(text string) ([]string, error)
}

// punktStrategy segments with the trained English Punkt tokenizer. Building
// the tokenizer from its training data happens once per process, on first
// use; the data ships inside the library, so it counts as cached and offline
// mode never has to refuse it.
type punktStrategy struct {
	once sync.Once
	tok  *sentences.DefaultSentenceTokenizer
	err  error
}

func (s *punktStrategy) name() string { return "punkt" }

func (s *punktStrategy) split(text string) ([]string, error) {
	s.once.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			s.err = fmt.Errorf("load punkt training data: %w", err)
			return
		}
		s.tok = tok
	})
	if s.err != nil {
		return nil, s.err
	}

	segs := s.tok.Tokenize(text)
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		out = append(out, seg.Text)
	}
	return out, nil
}

// terminalRuns matches runs of sentence-terminal punctuation.
var terminalRuns = regexp.MustCompile(`[.!?]+`)

// regexStrategy is the dependency-free fallback: split on runs of terminal
// punctuation. It cannot fail and is fully deterministic, at the cost of
// dropping the punctuation and mishandling abbreviations.
type regexStrategy struct{}

func (regexStrategy) name() string { return "regex" }

func (regexStrategy) split(text string) ([]string, error) {
	return terminalRuns.Split(text, -1), nil
}

// SentenceSplitter produces ordered sentences from normalized text using a
// primary strategy with an unconditional fallback. Any primary failure is a
// quality degradation, not an error: Split always returns a best-effort
// result.
type SentenceSplitter struct {
	primary  splitStrategy
	fallback splitStrategy
	logger   *zap.Logger

	// OnFallback, when non-nil, is invoked each time the fallback strategy
	// replaces the primary. Used by the pipeline for metrics.
	OnFallback func(err error)
}

// NewSentenceSplitter creates a splitter with the Punkt primary and the
// regex fallback. A nil logger is replaced with a no-op logger.
func NewSentenceSplitter(logger *zap.Logger) *SentenceSplitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SentenceSplitter{
		primary:  &punktStrategy{},
		fallback: regexStrategy{},
		logger:   logger,
	}
}

// Split segments text into trimmed, non-empty sentences in order of
// occurrence. Empty input yields nil.
func (s *SentenceSplitter) Split(text string) []string {
	if text == "" {
		return nil
	}

	pieces, err := s.primary.split(text)
	if err != nil {
		s.logger.Warn("primary sentence strategy failed, using fallback",
			zap.String("primary", s.primary.name()),
			zap.String("fallback", s.fallback.name()),
			zap.Error(err))
		if s.OnFallback != nil {
			s.OnFallback(err)
		}
		pieces, _ = s.fallback.split(text)
	}

	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var (
	defaultSplitter     *SentenceSplitter
	defaultSplitterOnce sync.Once
)

// SplitSentences segments text with a shared process-wide splitter.
// Concurrent first use is not supported; pre-warm by calling once before
// spawning concurrent work.
func SplitSentences(text string) []string {
	defaultSplitterOnce.Do(func() {
		defaultSplitter = NewSentenceSplitter(nil)
	})
	return defaultSplitter.Split(text)
}
