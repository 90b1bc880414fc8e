package tokenizer

import (
	"go.uber.org/zap"
)

// Estimator computes best-effort token counts for a model. The primary
// subword tokenizer is consulted first; any failure (offline mode with a
// cold cache, unknown encoding, load error) degrades to a whitespace word
// count. Estimation never fails.
type Estimator struct {
	primary  Tokenizer
	fallback Tokenizer
	logger   *zap.Logger
}

// NewEstimator creates an estimator for the given model. A nil logger is
// replaced with a no-op logger. The model's tokenizer is taken from the
// registry when one is registered, otherwise a tiktoken tokenizer is
// created for it.
func NewEstimator(model string, logger *zap.Logger) *Estimator {
	if logger == nil {
		logger = zap.NewNop()
	}

	primary, err := GetTokenizer(model)
	if err != nil {
		primary = NewTiktokenTokenizer(model)
	}

	return &Estimator{
		primary:  primary,
		fallback: WordCountTokenizer{},
		logger:   logger,
	}
}

// Count returns the token count for text. Empty input returns 0 without
// touching either strategy.
func (e *Estimator) Count(text string) int {
	if text == "" {
		return 0
	}

	count, err := e.primary.CountTokens(text)
	if err != nil {
		e.logger.Warn("primary tokenizer failed, falling back to word count",
			zap.String("primary", e.primary.Name()),
			zap.Error(err))
		count, _ = e.fallback.CountTokens(text)
	}
	return count
}

// ComputeTokenCount is the convenience form of Estimator for one-off calls.
// Estimators created here are registered per model so repeated calls reuse
// the lazily loaded encoding.
func ComputeTokenCount(text, model string) int {
	if text == "" {
		return 0
	}

	t, err := GetTokenizer(model)
	if err != nil {
		t = NewTiktokenTokenizer(model)
		RegisterTokenizer(model, t)
	}

	count, err := t.CountTokens(text)
	if err != nil {
		count, _ = WordCountTokenizer{}.CountTokens(text)
	}
	return count
}
