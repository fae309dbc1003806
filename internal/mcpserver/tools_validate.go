package mcpserver

import (
	"context"
	"errors"

	"github.com/erraggy/mcpgen/mcperrors"
	"github.com/erraggy/mcpgen/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Config   configInput `json:"config"             jsonschema:"The configuration to validate"`
	MaxDepth int         `json:"max_depth,omitempty" jsonschema:"Maximum nesting depth of object properties (default 64)"`
	Offset   int         `json:"offset,omitempty"    jsonschema:"Skip the first N errors (for pagination)"`
	Limit    int         `json:"limit,omitempty"     jsonschema:"Maximum number of errors to return (default 100)"`
}

type validateIssue struct {
	Path      string `json:"path,omitempty"`
	Tool      string `json:"tool,omitempty"`
	Parameter string `json:"parameter,omitempty"`
	Message   string `json:"message"`
}

type validateOutput struct {
	Valid      bool            `json:"valid"`
	Regime     string          `json:"regime"`
	ServerName string          `json:"server_name,omitempty"`
	ToolCount  int             `json:"tool_count"`
	ErrorCount int             `json:"error_count"`
	Returned   int             `json:"returned"`
	Errors     []validateIssue `json:"errors,omitempty"`
}

// Validation regimes reported in validateOutput.Regime.
const (
	regimeOK         = "ok"
	regimeStructural = "structural"
	regimeSemantic   = "semantic"
)

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	parsed, err := input.Config.resolve()
	if err != nil {
		// Structural failures are a validation verdict, not a tool failure.
		var se *mcperrors.StructuralError
		if errors.As(err, &se) {
			return nil, validateOutput{
				Regime:     regimeStructural,
				ErrorCount: 1,
				Returned:   1,
				Errors:     []validateIssue{{Path: se.Path, Message: redactPaths(err.Error())}},
			}, nil
		}
		return errResult(err), validateOutput{}, nil
	}

	maxDepth := cfg.MaxDepth
	if input.MaxDepth > 0 {
		maxDepth = input.MaxDepth
	}
	result, err := validator.ValidateWithOptions(
		validator.WithConfig(parsed.Config),
		validator.WithMaxDepth(maxDepth),
	)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:      result.Valid,
		Regime:     regimeOK,
		ServerName: parsed.Config.Server.Name,
		ToolCount:  len(parsed.Config.Tools),
		ErrorCount: result.ErrorCount,
	}
	if !result.Valid {
		output.Regime = regimeSemantic
	}
	for _, e := range paginate(result.Errors, input.Offset, input.Limit) {
		output.Errors = append(output.Errors, validateIssue{
			Path:      e.Path,
			Tool:      e.Tool,
			Parameter: e.Parameter,
			Message:   e.Message,
		})
	}
	output.Returned = len(output.Errors)
	return nil, output, nil
}
