package generator

import (
	"fmt"

	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/internal/options"
	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/mcperrors"
)

// Option configures a generation operation.
type Option func(*generateConfig) error

type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	config   *config.MCPConfig

	modulePath string
	goVersion  string
	logger     loader.Logger
}

func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{logger: loader.NopLogger{}}
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

// GenerateWithOptions generates a server project using functional options.
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("api.yaml"),
//		generator.WithModulePath("github.com/acme/users-mcp"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = result.WriteFiles("./users-mcp")
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}
	g := &Generator{ModulePath: cfg.modulePath, GoVersion: cfg.goVersion, Logger: cfg.logger}

	mcpCfg := cfg.config
	if cfg.filePath != nil {
		res, err := loader.ParseWithOptions(loader.WithFilePath(*cfg.filePath), loader.WithLogger(cfg.logger))
		if err != nil {
			return nil, err
		}
		mcpCfg = res.Config
	}
	return g.Generate(mcpCfg)
}

// WithFilePath loads the configuration from a file.
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithConfig generates from an already constructed configuration.
func WithConfig(c *config.MCPConfig) Option {
	return func(cfg *generateConfig) error {
		if c == nil {
			return &mcperrors.ConfigError{Option: "config", Message: "configuration cannot be nil"}
		}
		cfg.config = c
		return nil
	}
}

// WithModulePath sets the module path of the generated go.mod.
func WithModulePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.modulePath = path
		return nil
	}
}

// WithGoVersion sets the go directive of the generated go.mod.
// Default: DefaultGoVersion
func WithGoVersion(version string) Option {
	return func(cfg *generateConfig) error {
		cfg.goVersion = version
		return nil
	}
}

// WithLogger sets the logger for generation and loading.
func WithLogger(l loader.Logger) Option {
	return func(cfg *generateConfig) error {
		if l == nil {
			l = loader.NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
