package ingest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlexJGeorge1/ragqa/tokenizer"
)

func TestEnsureOfflineMode(t *testing.T) {
	t.Setenv(SegmenterOfflineEnv, "")
	t.Setenv(tokenizer.OfflineEnv, "")

	EnsureOfflineMode(nil)
	assert.Equal(t, "1", os.Getenv(SegmenterOfflineEnv))
	assert.Equal(t, "1", os.Getenv(tokenizer.OfflineEnv))

	// Idempotent.
	EnsureOfflineMode(nil)
	assert.Equal(t, "1", os.Getenv(SegmenterOfflineEnv))
	assert.Equal(t, "1", os.Getenv(tokenizer.OfflineEnv))
}
