// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes mcpgen capabilities as MCP tools over stdio.
package mcpserver

import (
	"cmp"
	"context"
	"regexp"

	"github.com/erraggy/mcpgen"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `mcpgen MCP server: validates MCP server configurations and previews the Go server generated from them.

Configurations describe an HTTP API: a server block (name, base_url, timeout, authentication) and a list of tools, each mapping to one endpoint and method with typed parameters. Pass a configuration as a file path or as inline YAML/JSON content.

Configuration: defaults are read from MCPGEN_* environment variables set in your MCP client config.
- MCPGEN_MAX_DEPTH (default: 64): maximum nesting depth of object properties
- MCPGEN_VALIDATE_LIMIT (default: 100): default number of validation errors returned
- MCPGEN_MAX_INLINE_SIZE (default: 1048576): maximum inline content size in bytes
- MCPGEN_PREVIEW_LIMIT (default: 262144): maximum preview size in bytes
- MCPGEN_CACHE_ENABLED (default: true), MCPGEN_CACHE_TTL (default: 15m): loaded configuration cache`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "mcpgen", Version: mcpgen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an MCP server configuration. Structural problems (missing fields, wrong types, bad enum values, invalid base_url) are reported as a single parse error. Semantic problems (duplicate tool names, invalid identifiers, endpoints without a leading '/', undefined path placeholders, array parameters without items_type, object parameters without properties) are all returned together in a deterministic order. Use offset/limit to paginate through errors.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Render one file of the MCP server project generated from a configuration, without writing anything. Templates: server (main.go), gomod (go.mod), readme (README.md), gitignore (.gitignore). The configuration must validate cleanly.",
	}, handlePreview)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema",
		Description: "Return the JSON Schema of the configuration file format. Use it to draft a configuration before validating it.",
	}, handleSchema)
}

// paginate returns items[offset:offset+limit], clamped to the slice.
// limit falls back to cfg.ValidateLimit and never exceeds cfg.MaxLimit.
func paginate[T any](items []T, offset, limit int) []T {
	limit = min(cmp.Or(max(limit, 0), cfg.ValidateLimit), cfg.MaxLimit)
	if offset < 0 || offset >= len(items) {
		return nil
	}
	return items[offset:min(len(items), offset+limit)]
}

// pathPattern matches absolute filesystem paths under common roots.
var pathPattern = regexp.MustCompile(`/(?:home|Users|tmp|var|private|root|opt|srv|mnt|etc|usr|run|nix)(?:/[\w.-]+)*/?`)

// errResult turns err into an MCP tool error with filesystem paths redacted.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: redactPaths(err.Error())}},
	}
}

func redactPaths(msg string) string {
	return pathPattern.ReplaceAllString(msg, "<path>")
}
