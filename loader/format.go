package loader

import (
	"bytes"
	"path/filepath"
	"strings"
)

// SourceFormat is the text format a configuration was read from.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was YAML
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was JSON
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// SupportedExtensions lists the file extensions ParseFile accepts.
var SupportedExtensions = []string{".yaml", ".yml", ".json"}

// formatFromPath maps a file extension to a format. Matching is case-insensitive.
func formatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SourceFormatYAML
	case ".json":
		return SourceFormatJSON
	default:
		return SourceFormatUnknown
	}
}

// formatFromContent guesses the format of unnamed input.
func formatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
