package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/internal/naming"
	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/mcperrors"
	"github.com/erraggy/mcpgen/validator"
)

// SDKVersion is the MCP go-sdk version generated servers require.
const SDKVersion = "v1.3.1"

// DefaultGoVersion is the go directive written to generated go.mod files.
const DefaultGoVersion = "1.24"

// GeneratedFile is a single generated file.
type GeneratedFile struct {
	// Name is the file name, e.g. "main.go". It never contains a path separator.
	Name string
	// Content is the file content
	Content []byte
}

// GenerateResult contains the generated project files.
type GenerateResult struct {
	// Files lists the generated files in write order
	Files []GeneratedFile
	// ServerName is the configured server name
	ServerName string
	// Module is the module path written to go.mod
	Module string
	// ToolCount is the number of generated tools
	ToolCount int
	// GenerateTime is the time taken to render all files
	GenerateTime time.Duration
}

// GetFile returns the generated file with the given name, or nil.
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator renders MCP server projects from configurations.
type Generator struct {
	// ModulePath is the module path of the generated project.
	// Defaults to the server name in kebab-case.
	ModulePath string
	// GoVersion is the go directive of the generated go.mod.
	// Defaults to DefaultGoVersion.
	GoVersion string
	// Logger receives debug output. Defaults to a no-op logger.
	Logger loader.Logger
}

// New creates a Generator with default settings.
func New() *Generator {
	return &Generator{Logger: loader.NopLogger{}}
}

// Generate renders every project file for cfg. Configurations with semantic
// errors are refused with a *mcperrors.ConfigError listing them.
func (g *Generator) Generate(cfg *config.MCPConfig) (*GenerateResult, error) {
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}
	start := time.Now()
	data := g.buildData(cfg)

	result := &GenerateResult{
		ServerName: cfg.Server.Name,
		Module:     data.Module,
		ToolCount:  len(cfg.Tools),
	}
	for _, o := range outputs {
		content, err := render(o, data)
		if err != nil {
			return nil, err
		}
		g.log().Debug("rendered file", "file", o.file, "bytes", len(content))
		result.Files = append(result.Files, GeneratedFile{Name: o.file, Content: content})
	}
	result.GenerateTime = time.Since(start)
	g.log().Info("generated server", "server", cfg.Server.Name, "tools", result.ToolCount, "files", len(result.Files))
	return result, nil
}

// Preview renders a single template without writing anything.
// name is one of TemplateNames().
func (g *Generator) Preview(cfg *config.MCPConfig, name string) (string, error) {
	o, ok := lookupOutput(name)
	if !ok {
		return "", &mcperrors.ConfigError{
			Option:  "template",
			Value:   name,
			Message: "must be one of " + strings.Join(TemplateNames(), ", "),
		}
	}
	if err := checkConfig(cfg); err != nil {
		return "", err
	}
	content, err := render(o, g.buildData(cfg))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func checkConfig(cfg *config.MCPConfig) error {
	if cfg == nil {
		return &mcperrors.ConfigError{Option: "config", Message: "configuration cannot be nil"}
	}
	if errs := validator.Validate(cfg); len(errs) > 0 {
		return &mcperrors.ConfigError{
			Option:  "config",
			Message: fmt.Sprintf("configuration has %d validation error(s): %s", len(errs), strings.Join(errs, "; ")),
		}
	}
	return nil
}

func (g *Generator) log() loader.Logger {
	if g.Logger == nil {
		return loader.NopLogger{}
	}
	return g.Logger
}

func (g *Generator) modulePath(cfg *config.MCPConfig) string {
	if g.ModulePath != "" {
		return g.ModulePath
	}
	if m := naming.ToKebabCase(cfg.Server.Name); m != "" {
		return m
	}
	return "mcp-server"
}

func (g *Generator) goVersion() string {
	if g.GoVersion != "" {
		return g.GoVersion
	}
	return DefaultGoVersion
}

