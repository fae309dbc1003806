// Package issues provides the issue record accumulated by the semantic validator.
package issues

import "fmt"

// Rule identifies which semantic rule produced an issue.
type Rule string

const (
	RuleServerName          Rule = "server-name"
	RuleToolsRequired       Rule = "tools-required"
	RuleDuplicateTool       Rule = "duplicate-tool"
	RuleToolIdentifier      Rule = "tool-identifier"
	RuleEndpointSlash       Rule = "endpoint-slash"
	RuleDuplicateParameter  Rule = "duplicate-parameter"
	RuleParameterIdentifier Rule = "parameter-identifier"
	RuleArrayItemsType      Rule = "array-items-type"
	RuleObjectProperties    Rule = "object-properties"
	RuleUndefinedPathParam  Rule = "undefined-path-parameter"
	RulePathNotInEndpoint   Rule = "path-not-in-endpoint"
	RuleNestingDepth        Rule = "nesting-depth"
)

// Issue represents a single semantic problem found in a configuration.
type Issue struct {
	// Rule is the rule that produced the issue
	Rule Rule
	// Path is the field path of the problematic element (e.g., "tools[0].parameters[1]")
	Path string
	// Tool is the name of the enclosing tool, empty for server-level issues
	Tool string
	// Parameter is the (dotted, for nested properties) parameter name, if any
	Parameter string
	// Message is a self-contained, human-readable description of the issue.
	// It embeds the tool and parameter names so it can be shown on its own.
	Message string
}

// String returns a formatted string representation of the issue.
func (i Issue) String() string {
	if i.Path == "" {
		return "✗ " + i.Message
	}
	return fmt.Sprintf("✗ %s: %s", i.Path, i.Message)
}

// Location returns the field path, or "config" for document-level issues.
func (i Issue) Location() string {
	if i.Path == "" {
		return "config"
	}
	return i.Path
}
