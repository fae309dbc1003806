package validator

import (
	"fmt"

	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/internal/options"
	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/mcperrors"
)

// Option configures a validation operation.
type Option func(*validateConfig) error

type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	config   *config.MCPConfig

	maxDepth int
	logger   loader.Logger
}

func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{maxDepth: DefaultMaxDepth, logger: loader.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath or WithConfig)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.config != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateWithOptions validates a configuration using functional options.
//
// With WithFilePath the file is loaded first; a file that cannot be parsed or
// constructed is returned as an error, never as a ValidationResult.
//
//	result, err := validator.ValidateWithOptions(
//		validator.WithFilePath("api.yaml"),
//		validator.WithMaxDepth(8),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}
	v := &Validator{MaxDepth: cfg.maxDepth}

	if cfg.config != nil {
		return v.Validate(cfg.config), nil
	}

	res, err := loader.ParseWithOptions(loader.WithFilePath(*cfg.filePath), loader.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	result := v.Validate(res.Config)
	result.SourcePath = res.SourcePath
	cfg.logger.Debug("validated configuration", "path", res.SourcePath, "errors", result.ErrorCount)
	return result, nil
}

// WithFilePath loads the configuration to validate from a file.
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithConfig validates an already constructed configuration.
func WithConfig(c *config.MCPConfig) Option {
	return func(cfg *validateConfig) error {
		if c == nil {
			return &mcperrors.ConfigError{Option: "config", Message: "configuration cannot be nil"}
		}
		cfg.config = c
		return nil
	}
}

// WithMaxDepth bounds nested property depth.
// Default: DefaultMaxDepth
func WithMaxDepth(depth int) Option {
	return func(cfg *validateConfig) error {
		if depth < 1 {
			return &mcperrors.ConfigError{Option: "max_depth", Value: depth, Message: "must be at least 1"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger used while loading from a file.
func WithLogger(l loader.Logger) Option {
	return func(cfg *validateConfig) error {
		if l == nil {
			l = loader.NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
