// rag-qa command entrypoint.
//
// The command surface is a scaffold: flags are parsed and configuration is
// loaded, but index building, retrieval, and answering are not wired yet.
// The ingestion pipeline lives in the pipeline package and is exercised
// through its Go API and tests until the commands land here.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AlexJGeorge1/ragqa/config"
	"github.com/AlexJGeorge1/ragqa/ingest"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	fs := flag.NewFlagSet("ragqa", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	ingestDir := fs.String("ingest", "", "Path to corpus directory")
	buildIndex := fs.String("build-index", "", "Path to index output directory")
	ask := fs.String("ask", "", "Question to ask")
	topK := fs.Int("k", 5, "Top-K results")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *ingestDir != "" {
		cfg.Ingest.CorpusDir = *ingestDir
	}
	if *buildIndex != "" {
		cfg.Ingest.IndexDir = *buildIndex
	}
	if *topK != 5 {
		cfg.TopK = *topK
	}

	logger := initLogger(cfg.Log)
	defer logger.Sync()

	if cfg.Ingest.Offline {
		ingest.EnsureOfflineMode(logger)
	}

	logger.Debug("scaffold invoked",
		zap.String("version", Version),
		zap.String("corpus_dir", cfg.Ingest.CorpusDir),
		zap.String("index_dir", cfg.Ingest.IndexDir),
		zap.String("question", *ask),
		zap.Int("top_k", cfg.TopK))

	fmt.Println("rag-qa scaffold is set up. Ingestion lives in the pipeline package; index and retrieval commands are not wired yet.")
}

// initLogger builds a zap logger from the log configuration, falling back to
// a production logger on any build error.
func initLogger(cfg config.LogConfig) *zap.Logger {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var encoderConfig zapcore.EncoderConfig
	encoding := "json"
	if cfg.Format == "console" {
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Format == "console",
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}
