package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/mcpgen/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type previewInput struct {
	Config     configInput `json:"config"                 jsonschema:"The configuration to render"`
	Template   string      `json:"template,omitempty"     jsonschema:"Template to render: server, gomod, readme, or gitignore (default server)"`
	ModulePath string      `json:"module_path,omitempty" jsonschema:"Module path of the generated project (default: server name in kebab-case)"`
}

type previewOutput struct {
	Template  string `json:"template"`
	File      string `json:"file"`
	Size      int    `json:"size"`
	Truncated bool   `json:"truncated,omitempty"`
	Content   string `json:"content"`
}

// previewFiles maps template names to the file each one renders.
var previewFiles = map[string]string{
	generator.TemplateServer:    "main.go",
	generator.TemplateGoMod:     "go.mod",
	generator.TemplateReadme:    "README.md",
	generator.TemplateGitignore: ".gitignore",
}

func handlePreview(_ context.Context, _ *mcp.CallToolRequest, input previewInput) (*mcp.CallToolResult, previewOutput, error) {
	name := input.Template
	if name == "" {
		name = generator.TemplateServer
	}

	parsed, err := input.Config.resolve()
	if err != nil {
		return errResult(err), previewOutput{}, nil
	}

	g := generator.New()
	g.ModulePath = input.ModulePath
	content, err := g.Preview(parsed.Config, name)
	if err != nil {
		return errResult(fmt.Errorf("preview failed: %w", err)), previewOutput{}, nil
	}

	output := previewOutput{
		Template: name,
		File:     previewFiles[name],
		Size:     len(content),
		Content:  content,
	}
	if len(content) > cfg.PreviewLimit {
		output.Content = content[:cfg.PreviewLimit]
		output.Truncated = true
	}
	return nil, output, nil
}
