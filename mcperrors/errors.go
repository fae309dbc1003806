package mcperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the error types below through errors.Is.
var (
	ErrParse         = errors.New("parse error")
	ErrStructural    = errors.New("structural error")
	ErrResourceLimit = errors.New("resource limit exceeded")
	ErrConfig        = errors.New("configuration error")
)

// message joins a heading with the non-empty detail parts, separated by
// ": ". Parts are already formatted by the caller.
func message(heading string, parts ...string) string {
	var b strings.Builder
	b.WriteString(heading)
	for _, p := range parts {
		if p != "" {
			b.WriteString(": ")
			b.WriteString(p)
		}
	}
	return b.String()
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ParseError reports a configuration document that could not be read or
// is not valid YAML/JSON. Line and Column are 1-based; zero means unknown.
type ParseError struct {
	Path    string // file path, or "reader" for streamed input
	Line    int
	Column  int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	heading := "parse error"
	if e.Path != "" {
		heading += " in " + e.Path
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		heading += fmt.Sprintf(" at line %d, column %d", e.Line, e.Column)
	case e.Line > 0:
		heading += fmt.Sprintf(" at line %d", e.Line)
	}
	return message(heading, e.Message, causeText(e.Cause))
}

func (e *ParseError) Unwrap() error        { return e.Cause }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// StructuralError reports the first defect found while building the typed
// configuration from a decoded tree: a missing required field, a value of
// the wrong type, an enum value outside its closed set, or an unusable
// base_url. Path uses the field path syntax "tools[1].parameters[0].type";
// empty means the document root.
type StructuralError struct {
	Path    string
	Message string
	Value   any // offending value, nil when absent
	Cause   error
}

func (e *StructuralError) Error() string {
	heading := "structural error"
	if e.Path != "" {
		heading += " at " + e.Path
	}
	detail := e.Message
	if e.Value != nil {
		detail += fmt.Sprintf(" (got %v)", e.Value)
	}
	return message(heading, strings.TrimSpace(detail), causeText(e.Cause))
}

func (e *StructuralError) Unwrap() error        { return e.Cause }
func (e *StructuralError) Is(target error) bool { return target == ErrStructural }

// ResourceLimitError reports input that exceeds a hard limit, such as object
// properties nested past config.MaxNestingDepth.
type ResourceLimitError struct {
	Resource string // e.g. "nesting_depth"
	Limit    int64
	Actual   int64 // zero when unknown
}

func (e *ResourceLimitError) Error() string {
	detail := e.Resource
	switch {
	case e.Limit > 0 && e.Actual > 0:
		detail += fmt.Sprintf(" (limit: %d, actual: %d)", e.Limit, e.Actual)
	case e.Limit > 0:
		detail += fmt.Sprintf(" (limit: %d)", e.Limit)
	}
	return message("resource limit exceeded", strings.TrimSpace(detail))
}

func (e *ResourceLimitError) Is(target error) bool { return target == ErrResourceLimit }

// ConfigError reports a bad argument to a library entry point: a nil
// configuration, an unknown template name, a non-positive depth, or a
// configuration the generator refuses because it has semantic errors.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	heading := "configuration error"
	if e.Option != "" {
		heading += " for " + e.Option
	}
	if e.Value != nil {
		heading += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return message(heading, e.Message)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
