package loader

import (
	"fmt"
	"io"

	"github.com/erraggy/specparity/internal/options"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger      Logger
	maxFileSize int64

	// Override SourcePath in the result
	sourceName *string
}

// LoadWithOptions loads a document using functional options.
//
// Example:
//
//	doc, err := loader.LoadWithOptions(
//	    loader.WithFilePath("api/openapi-spec/spec3.sdk.json"),
//	    loader.WithLogger(loader.NewSlogAdapter(slog.Default())),
//	)
func LoadWithOptions(opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid options: %w", err)
	}

	l := &Loader{
		Logger:      cfg.logger,
		MaxFileSize: cfg.maxFileSize,
	}

	var doc *Document
	switch {
	case cfg.filePath != nil:
		doc, err = l.Load(*cfg.filePath)
	case cfg.reader != nil:
		doc, err = l.LoadReader(cfg.reader)
	default:
		doc, err = l.LoadBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		doc.SourcePath = *cfg.sourceName
	}
	return doc, nil
}

func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{maxFileSize: DefaultMaxFileSize}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("loader input",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return fmt.Errorf("loader: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return fmt.Errorf("loader: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the logger for the load operation
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize overrides DefaultMaxFileSize
func WithMaxFileSize(n int64) Option {
	return func(cfg *loadConfig) error {
		if n <= 0 {
			return fmt.Errorf("loader: max file size must be positive, got %d", n)
		}
		cfg.maxFileSize = n
		return nil
	}
}

// WithSourceName overrides the SourcePath reported on the loaded document
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
