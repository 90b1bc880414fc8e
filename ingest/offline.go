package ingest

import (
	"os"

	"go.uber.org/zap"

	"github.com/AlexJGeorge1/ragqa/tokenizer"
)

// SegmenterOfflineEnv, when set to a non-empty value, tells the segmentation
// layer to refuse network fetches of linguistic resources. The Punkt
// training data ships inside the binary, so it always counts as cached.
const SegmenterOfflineEnv = "RAGQA_SEGMENTER_OFFLINE"

// EnsureOfflineMode flags both resource-acquisition layers (segmentation and
// tokenization) to refuse network fetches and use only cached resources.
// Idempotent; it does not verify that the required resources are actually
// cached. A nil logger is replaced with a no-op logger.
func EnsureOfflineMode(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	os.Setenv(SegmenterOfflineEnv, "1")
	os.Setenv(tokenizer.OfflineEnv, "1")

	logger.Info("offline mode enabled, cached resources only",
		zap.String(SegmenterOfflineEnv, "1"),
		zap.String(tokenizer.OfflineEnv, "1"))
}
