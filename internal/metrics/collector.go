// Package metrics provides internal metrics collection for the ingestion
// pipeline. This package is internal and should not be imported by external
// projects.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector owns the pipeline's Prometheus instruments.
type Collector struct {
	documentsTotal     *prometheus.CounterVec
	decodeFailures     *prometheus.CounterVec
	sentencesTotal     prometheus.Counter
	tokensTotal        prometheus.Counter
	segmenterFallbacks prometheus.Counter

	logger *zap.Logger
}

// NewCollector creates a collector registered against the default registry.
// Each namespace may be used at most once per process.
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.documentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Documents seen by the ingestion pipeline, by outcome",
		},
		[]string{"status"},
	)

	c.decodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_failures_total",
			Help:      "Decode failures by error code",
		},
		[]string{"code"},
	)

	c.sentencesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sentences_total",
			Help:      "Sentences produced by segmentation",
		},
	)

	c.tokensTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_total",
			Help:      "Estimated tokens across processed documents",
		},
	)

	c.segmenterFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segmenter_fallbacks_total",
			Help:      "Times the regex fallback replaced the primary segmenter",
		},
	)

	c.logger.Debug("metrics collector initialized", zap.String("namespace", namespace))
	return c
}

// RecordDocument counts one pipeline outcome ("ok", "skipped", "failed").
func (c *Collector) RecordDocument(status string) {
	c.documentsTotal.WithLabelValues(status).Inc()
}

// RecordDecodeFailure counts a decode failure by its error code.
func (c *Collector) RecordDecodeFailure(code string) {
	c.decodeFailures.WithLabelValues(code).Inc()
}

// AddSentences counts sentences produced for a document.
func (c *Collector) AddSentences(n int) {
	c.sentencesTotal.Add(float64(n))
}

// AddTokens counts estimated tokens for a document.
func (c *Collector) AddTokens(n int) {
	c.tokensTotal.Add(float64(n))
}

// RecordSegmenterFallback counts a fallback activation.
func (c *Collector) RecordSegmenterFallback() {
	c.segmenterFallbacks.Inc()
}
