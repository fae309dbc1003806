// Package mcperrors provides structured error types for the mcpgen library.
//
// Import path: github.com/erraggy/mcpgen/mcperrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell "the file could not be read or parsed" apart from
// "the file parsed but does not describe a well-formed configuration".
//
// # Error Types
//
//   - [ParseError]: file access and YAML/JSON syntax failures
//   - [StructuralError]: the parsed tree does not fit the configuration model
//   - [ResourceLimitError]: object properties nested past the supported depth
//   - [ConfigError]: invalid options passed to a library entry point
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrStructural]: Matches any [StructuralError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	cfg, err := loader.ParseFile("api.yaml")
//	switch {
//	case errors.Is(err, mcperrors.ErrParse):
//	    // could not even read the document
//	case errors.Is(err, mcperrors.ErrStructural):
//	    var se *mcperrors.StructuralError
//	    errors.As(err, &se)
//	    fmt.Printf("bad field %s: %s\n", se.Path, se.Message)
//	}
package mcperrors
