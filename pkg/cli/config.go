package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/adapter"
	"github.com/m-mizutani/retrospect/pkg/repository"
	"github.com/m-mizutani/retrospect/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// config holds configuration values shared across commands
type config struct {
	// Logging
	logLevel string

	// History store
	storePath string
	bucket    string

	// Transport
	geminiAPIKey string
	textModel    string
	imageModel   string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("RETROSPECT_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "store-path",
			Usage:       "Directory for the local history database",
			Sources:     cli.EnvVars("RETROSPECT_STORE_PATH"),
			Destination: &cfg.storePath,
		},
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "Cloud Storage bucket for the history blob (overrides the local store)",
			Sources:     cli.EnvVars("RETROSPECT_BUCKET"),
			Destination: &cfg.bucket,
		},
	}
}

// llmFlags returns flags for model transport configuration with destination config
func llmFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "model",
			Usage:       "Model for text generation stages",
			Value:       "gemini-2.5-flash",
			Sources:     cli.EnvVars("RETROSPECT_MODEL"),
			Destination: &cfg.textModel,
		},
		&cli.StringFlag{
			Name:        "image-model",
			Usage:       "Model for timeline image generation",
			Value:       "gemini-2.5-flash-image",
			Sources:     cli.EnvVars("RETROSPECT_IMAGE_MODEL"),
			Destination: &cfg.imageModel,
		},
	}
}

// loggingContext builds the command logger and attaches it to the context
func (cfg *config) loggingContext(ctx context.Context) context.Context {
	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger)
}

// newGemini creates the transport adapter with the injected credential
func (cfg *config) newGemini(ctx context.Context) (adapter.Gemini, error) {
	return adapter.NewGemini(ctx, cfg.geminiAPIKey,
		adapter.WithTextModel(cfg.textModel),
		adapter.WithImageModel(cfg.imageModel),
	)
}

// newHistory creates the history store over the configured storage backend.
// The returned closer releases the local database; it is a no-op for the
// bucket backend.
func (cfg *config) newHistory(ctx context.Context) (*repository.History, func(), error) {
	if cfg.bucket != "" {
		storage, err := adapter.NewGCS(ctx, cfg.bucket)
		if err != nil {
			return nil, nil, err
		}
		history, err := repository.New(ctx, storage)
		if err != nil {
			return nil, nil, err
		}
		return history, func() {}, nil
	}

	path := cfg.storePath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to resolve home directory, set --store-path")
		}
		path = filepath.Join(home, ".retrospect")
	}
	if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create store directory", goerr.V("path", path))
	}

	storage, err := adapter.NewBadger(path)
	if err != nil {
		return nil, nil, err
	}

	history, err := repository.New(ctx, storage)
	if err != nil {
		_ = storage.Close()
		return nil, nil, err
	}

	closer := func() {
		if err := storage.Close(); err != nil {
			logging.From(ctx).Warn("failed to close local store", "error", err)
		}
	}
	return history, closer, nil
}
