package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/mcperrors"
	"go.yaml.in/yaml/v4"
)

// ParseResult is a loaded configuration plus metadata about its source.
// Treat it as read-only.
type ParseResult struct {
	// Config is the constructed configuration model
	Config *config.MCPConfig
	// Raw is the decoded key-value tree Config was built from
	Raw map[string]any
	// SourcePath is the file path, or a synthetic name for reader/byte input
	SourcePath string
	// SourceFormat is the format the source was decoded as
	SourceFormat SourceFormat
	// LoadTime is the time taken to read the source
	LoadTime time.Duration
	// SourceSize is the size of the source in bytes
	SourceSize int64
}

// Loader reads configuration documents.
type Loader struct {
	// Logger receives debug output. Defaults to NopLogger.
	Logger Logger
}

// New creates a Loader with default settings.
func New() *Loader {
	return &Loader{Logger: NopLogger{}}
}

func (l *Loader) log() Logger {
	if l.Logger == nil {
		return NopLogger{}
	}
	return l.Logger
}

// ParseFile loads and constructs the configuration at path.
func ParseFile(path string) (*config.MCPConfig, error) {
	res, err := New().Load(path)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// ParseBytes constructs a configuration from in-memory text. An unknown
// format is detected from content.
func ParseBytes(data []byte, format SourceFormat) (*config.MCPConfig, error) {
	res, err := New().LoadBytes(data, "", format)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// ParseMap constructs a configuration from an already decoded tree.
func ParseMap(raw map[string]any) (*config.MCPConfig, error) {
	return config.FromMap(raw)
}

// Load reads the file at path. The extension selects the format.
func (l *Loader) Load(path string) (*ParseResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &mcperrors.ParseError{Path: path, Message: "configuration file not found", Cause: err}
	}
	format := formatFromPath(path)
	if format == SourceFormatUnknown {
		return nil, &mcperrors.ParseError{
			Path: path,
			Message: fmt.Sprintf("unsupported file format: %s (supported: %s)",
				extOf(path), strings.Join(SupportedExtensions, ", ")),
		}
	}

	start := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(start)
	if err != nil {
		return nil, &mcperrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}

	res, err := l.LoadBytes(data, path, format)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// LoadReader reads all of r and detects its format from content.
func (l *Loader) LoadReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(start)
	if err != nil {
		return nil, &mcperrors.ParseError{Path: "reader", Message: "failed to read input", Cause: err}
	}
	res, err := l.LoadBytes(data, "reader", SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// LoadBytes decodes data and constructs the configuration. sourcePath is used
// in error messages only. SourceFormatUnknown means detect from content.
func (l *Loader) LoadBytes(data []byte, sourcePath string, format SourceFormat) (*ParseResult, error) {
	if sourcePath == "" {
		sourcePath = "bytes"
	}
	if format == SourceFormatUnknown {
		format = formatFromContent(data)
	}
	log := l.log().With("path", sourcePath, "format", string(format))

	raw, err := decode(data, sourcePath, format)
	if err != nil {
		log.Debug("decode failed", "error", err)
		return nil, err
	}

	cfg, err := config.FromMap(raw)
	if err != nil {
		log.Debug("construction failed", "error", err)
		return nil, err
	}
	log.Debug("loaded configuration", "server", cfg.Server.Name, "tools", len(cfg.Tools), "bytes", len(data))

	return &ParseResult{
		Config:       cfg,
		Raw:          raw,
		SourcePath:   sourcePath,
		SourceFormat: format,
		SourceSize:   int64(len(data)),
	}, nil
}

// decode turns text into the raw tree. The top level must be a mapping.
func decode(data []byte, sourcePath string, format SourceFormat) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &mcperrors.StructuralError{Message: "document is empty"}
	}

	var doc any
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, jsonParseError(data, sourcePath, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, yamlParseError(sourcePath, err)
		}
	}

	switch m := doc.(type) {
	case nil:
		return nil, &mcperrors.StructuralError{Message: "document is empty"}
	case map[string]any:
		return m, nil
	case map[any]any:
		return nil, &mcperrors.StructuralError{Message: "top-level mapping keys must be strings"}
	default:
		return nil, &mcperrors.StructuralError{Message: "top-level document must be a mapping", Value: fmt.Sprintf("%T", doc)}
	}
}

var yamlPosition = regexp.MustCompile(`line (\d+)(?:, column (\d+))?`)

func yamlParseError(sourcePath string, err error) error {
	pe := &mcperrors.ParseError{Path: sourcePath, Message: "invalid YAML", Cause: err}
	if m := yamlPosition.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			pe.Column, _ = strconv.Atoi(m[2])
		}
	}
	return pe
}

func jsonParseError(data []byte, sourcePath string, err error) error {
	pe := &mcperrors.ParseError{Path: sourcePath, Message: "invalid JSON", Cause: err}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		pe.Line, pe.Column = position(data, se.Offset)
	}
	return pe
}

// position converts a byte offset to a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	col = int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}

func extOf(path string) string {
	if ext := filepath.Ext(path); ext != "" {
		return ext
	}
	return "(none)"
}
