package mcpserver

import (
	"context"

	"github.com/erraggy/mcpgen/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type schemaInput struct{}

type schemaOutput struct {
	ID     string `json:"id"`
	Schema string `json:"schema"`
}

func handleSchema(_ context.Context, _ *mcp.CallToolRequest, _ schemaInput) (*mcp.CallToolResult, schemaOutput, error) {
	data, err := config.SchemaJSON()
	if err != nil {
		return errResult(err), schemaOutput{}, nil
	}
	return nil, schemaOutput{ID: config.SchemaID, Schema: string(data)}, nil
}
