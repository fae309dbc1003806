package validator

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/internal/issues"
	"github.com/erraggy/mcpgen/internal/pathutil"
)

// DefaultMaxDepth is the deepest property nesting checked before the
// validator reports a depth error. Top-level parameters are at depth 1.
const DefaultMaxDepth = config.MaxNestingDepth

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether s is usable as a generated-code identifier.
func IsIdentifier(s string) bool {
	return identifierRegex.MatchString(s)
}

// ValidationError represents a single semantic problem.
type ValidationError = issues.Issue

// ValidationResult contains the results of validating a configuration.
type ValidationResult struct {
	// Valid is true when no errors were found
	Valid bool
	// Errors lists every problem in evaluation order. Never nil.
	Errors []ValidationError
	// ErrorCount is len(Errors)
	ErrorCount int
	// SourcePath is the file the configuration was loaded from, if any
	SourcePath string
}

// Messages returns the message of every error, in order.
func (r *ValidationResult) Messages() []string {
	return issues.Messages(r.Errors)
}

// Validator runs the semantic rule set.
type Validator struct {
	// MaxDepth bounds property nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// New creates a Validator with default settings.
func New() *Validator {
	return &Validator{MaxDepth: DefaultMaxDepth}
}

// Validate returns every semantic problem in cfg as a self-contained message.
// An empty, non-nil slice means cfg is accepted for code generation.
func Validate(cfg *config.MCPConfig) []string {
	return New().Validate(cfg).Messages()
}

// Validate checks cfg and returns a structured result. cfg is not modified.
// A nil cfg is treated as an empty configuration.
func (v *Validator) Validate(cfg *config.MCPConfig) *ValidationResult {
	if cfg == nil {
		cfg = &config.MCPConfig{}
	}
	run := &run{maxDepth: v.maxDepth(), path: pathutil.Get()}
	defer pathutil.Put(run.path)

	run.global(cfg)
	run.path.Push("tools")
	seen := make(map[string]struct{}, len(cfg.Tools))
	for i := range cfg.Tools {
		run.path.PushIndex(i)
		run.tool(&cfg.Tools[i], seen)
		run.path.Pop()
	}
	run.path.Pop()

	items := run.list.Items()
	return &ValidationResult{
		Valid:      len(items) == 0,
		Errors:     items,
		ErrorCount: len(items),
	}
}

func (v *Validator) maxDepth() int {
	if v.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return v.MaxDepth
}

// run holds the state of one Validate call.
type run struct {
	list     issues.List
	path     *pathutil.PathBuilder
	maxDepth int
}

func (r *run) global(cfg *config.MCPConfig) {
	if cfg.Server.Name == "" {
		r.list.Add(issues.RuleServerName, "server.name", "", "", "Server name is required")
	}
	if len(cfg.Tools) == 0 {
		r.list.Add(issues.RuleToolsRequired, "tools", "", "", "At least one tool is required")
	}
}

func (r *run) tool(t *config.Tool, seen map[string]struct{}) {
	if _, dup := seen[t.Name]; dup {
		r.list.Add(issues.RuleDuplicateTool, r.path.Child("name"), t.Name, "",
			"Duplicate tool name: %s", t.Name)
	}
	seen[t.Name] = struct{}{}

	if !IsIdentifier(t.Name) {
		r.list.Add(issues.RuleToolIdentifier, r.path.Child("name"), t.Name, "",
			"Tool name '%s' is not a valid identifier", t.Name)
	}
	if !strings.HasPrefix(t.Endpoint, "/") {
		r.list.Add(issues.RuleEndpointSlash, r.path.Child("endpoint"), t.Name, "",
			"Tool '%s': endpoint must start with '/'", t.Name)
	}
	r.parameters(t)
}

// parameters runs the per-parameter rules, then cross-checks placeholders.
func (r *run) parameters(t *config.Tool) {
	placeholders := t.Placeholders()
	declared := make(map[string]struct{}, len(t.Parameters))

	r.path.Push("parameters")
	for i := range t.Parameters {
		p := &t.Parameters[i]
		r.path.PushIndex(i)
		path := r.path.String()
		r.path.Pop()

		if _, dup := declared[p.Name]; dup {
			r.list.Add(issues.RuleDuplicateParameter, path, t.Name, p.Name,
				"Tool '%s': duplicate parameter name '%s'", t.Name, p.Name)
		}
		declared[p.Name] = struct{}{}

		if !IsIdentifier(p.Name) {
			r.list.Add(issues.RuleParameterIdentifier, path, t.Name, p.Name,
				"Tool '%s': parameter name '%s' is not a valid identifier", t.Name, p.Name)
		}
		r.shape(t.Name, p.Name, path, p)
		r.properties(t.Name, p, path)
	}
	r.path.Pop()

	for _, ph := range placeholders {
		if _, ok := declared[ph]; !ok {
			r.list.Add(issues.RuleUndefinedPathParam, r.path.Child("endpoint"), t.Name, ph,
				"Tool '%s': path parameter '%s' in endpoint is not defined in parameters", t.Name, ph)
		}
	}

	r.path.Push("parameters")
	defer r.path.Pop()
	for i := range t.Parameters {
		p := &t.Parameters[i]
		if p.Location != config.LocationPath || slices.Contains(placeholders, p.Name) {
			continue
		}
		r.path.PushIndex(i)
		r.list.Add(issues.RulePathNotInEndpoint, r.path.String(), t.Name, p.Name,
			"Tool '%s': parameter '%s' is marked as path but not in endpoint", t.Name, p.Name)
		r.path.Pop()
	}
}

// shape checks the type-dependent fields of one parameter.
func (r *run) shape(tool, name, path string, p *config.Parameter) {
	if p.Type == config.TypeArray && p.ItemsType == "" {
		r.list.Add(issues.RuleArrayItemsType, path, tool, name,
			"Tool '%s': array parameter '%s' must specify items_type", tool, name)
	}
	if p.Type == config.TypeObject && len(p.Properties) == 0 {
		r.list.Add(issues.RuleObjectProperties, path, tool, name,
			"Tool '%s': object parameter '%s' must specify properties", tool, name)
	}
}

// frame is one pending nested property.
type frame struct {
	param *config.Parameter
	key   string
	name  string // dotted from the top-level parameter
	path  string
	depth int
}

// properties walks the nested properties of an object parameter depth-first,
// in sorted key order, using an explicit stack.
func (r *run) properties(tool string, root *config.Parameter, rootPath string) {
	stack := pushProperties(nil, root, root.Name, rootPath, 2)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > r.maxDepth {
			r.list.Add(issues.RuleNestingDepth, f.path, tool, f.name,
				"Tool '%s': parameter '%s' exceeds maximum nesting depth of %d", tool, f.name, r.maxDepth)
			continue
		}
		p := f.param
		// The key is the property's name; see config.FromMap.
		if !IsIdentifier(f.key) {
			r.list.Add(issues.RuleParameterIdentifier, f.path, tool, f.name,
				"Tool '%s': parameter name '%s' is not a valid identifier", tool, f.name)
		}
		r.shape(tool, f.name, f.path, p)
		stack = pushProperties(stack, p, f.name, f.path, f.depth+1)
	}
}

// pushProperties pushes the properties of an object parameter so that they
// pop in ascending key order. Nil entries are skipped.
func pushProperties(stack []frame, p *config.Parameter, name, path string, depth int) []frame {
	if p.Type != config.TypeObject || len(p.Properties) == 0 {
		return stack
	}
	keys := make([]string, 0, len(p.Properties))
	for k, child := range p.Properties {
		if child != nil {
			keys = append(keys, k)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	for _, k := range keys {
		stack = append(stack, frame{
			param: p.Properties[k],
			key:   k,
			name:  name + "." + k,
			path:  path + ".properties." + k,
			depth: depth,
		})
	}
	return stack
}
