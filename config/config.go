package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full rag-qa configuration.
type Config struct {
	// Ingest configures the ingestion pipeline.
	Ingest IngestConfig `yaml:"ingest"`
	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
	// TopK is the default result count for questions.
	TopK int `yaml:"top_k"`
}

// IngestConfig configures the ingestion pipeline.
type IngestConfig struct {
	// CorpusDir is the directory holding input documents.
	CorpusDir string `yaml:"corpus_dir"`
	// IndexDir is where index artifacts and manifests are written.
	IndexDir string `yaml:"index_dir"`
	// TokenizerModel names the subword tokenizer for token estimates.
	TokenizerModel string `yaml:"tokenizer_model"`
	// Offline refuses network fetches of segmentation/tokenization resources.
	Offline bool `yaml:"offline"`
}

// LogConfig configures zap.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is "json" or "console".
	Format string `yaml:"format"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Ingest: IngestConfig{
			CorpusDir:      "corpus",
			IndexDir:       "index",
			TokenizerModel: "gpt-4o",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		TopK: 5,
	}
}

// Load builds the configuration with defaults → YAML file → environment
// precedence. An empty path skips the file step; a named but unreadable or
// invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from RAGQA_* environment variables.
func (c *Config) applyEnv() error {
	setString(&c.Ingest.CorpusDir, "RAGQA_CORPUS_DIR")
	setString(&c.Ingest.IndexDir, "RAGQA_INDEX_DIR")
	setString(&c.Ingest.TokenizerModel, "RAGQA_TOKENIZER_MODEL")
	setString(&c.Log.Level, "RAGQA_LOG_LEVEL")
	setString(&c.Log.Format, "RAGQA_LOG_FORMAT")

	if v := os.Getenv("RAGQA_OFFLINE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("RAGQA_OFFLINE: %w", err)
		}
		c.Ingest.Offline = b
	}
	if v := os.Getenv("RAGQA_TOP_K"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RAGQA_TOP_K: %w", err)
		}
		c.TopK = k
	}
	return nil
}

// Validate checks field values that would otherwise fail deep inside the
// pipeline.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
