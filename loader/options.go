package loader

import (
	"fmt"
	"io"

	"github.com/erraggy/mcpgen/internal/options"
)

// Option configures a ParseWithOptions call.
type Option func(*parseConfig) error

type parseConfig struct {
	filePath *string
	reader   io.Reader
	bytes    []byte
	logger   Logger
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseWithOptions loads a configuration from the single input source given
// by the options.
//
//	result, err := loader.ParseWithOptions(
//		loader.WithFilePath("api.yaml"),
//		loader.WithLogger(logger),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid options: %w", err)
	}
	l := &Loader{Logger: cfg.logger}
	switch {
	case cfg.filePath != nil:
		return l.Load(*cfg.filePath)
	case cfg.reader != nil:
		return l.LoadReader(cfg.reader)
	default:
		return l.LoadBytes(cfg.bytes, "bytes", SourceFormatUnknown)
	}
}

// WithFilePath reads the configuration from a file.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader reads the configuration from r.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes reads the configuration from data.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
