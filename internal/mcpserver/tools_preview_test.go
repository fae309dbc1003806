package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewTool_DefaultTemplate(t *testing.T) {
	withConfig(t, func(*serverConfig) {})

	res, output, err := handlePreview(context.Background(), &mcp.CallToolRequest{}, previewInput{
		Config: configInput{Content: sampleContent},
	})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, "server", output.Template)
	assert.Equal(t, "main.go", output.File)
	assert.Contains(t, output.Content, "package main")
	assert.Contains(t, output.Content, "handleGetUser")
	assert.Equal(t, len(output.Content), output.Size)
	assert.False(t, output.Truncated)
}

func TestPreviewTool_Templates(t *testing.T) {
	withConfig(t, func(*serverConfig) {})

	tests := map[string]string{
		"gomod":     "module github.com/acme/users-mcp",
		"readme":    "get_user",
		"gitignore": "/users-mcp",
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			_, output, err := handlePreview(context.Background(), &mcp.CallToolRequest{}, previewInput{
				Config:     configInput{Content: sampleContent},
				Template:   name,
				ModulePath: "github.com/acme/users-mcp",
			})
			require.NoError(t, err)
			assert.Equal(t, previewFiles[name], output.File)
			assert.Contains(t, output.Content, want)
		})
	}
}

func TestPreviewTool_Truncates(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.PreviewLimit = 10 })

	_, output, err := handlePreview(context.Background(), &mcp.CallToolRequest{}, previewInput{
		Config: configInput{Content: sampleContent},
	})
	require.NoError(t, err)
	assert.True(t, output.Truncated)
	assert.Len(t, output.Content, 10)
	assert.Greater(t, output.Size, 10)
}

func TestPreviewTool_Errors(t *testing.T) {
	withConfig(t, func(*serverConfig) {})

	t.Run("unknown template", func(t *testing.T) {
		res, _, err := handlePreview(context.Background(), &mcp.CallToolRequest{}, previewInput{
			Config:   configInput{Content: sampleContent},
			Template: "dockerfile",
		})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		res, _, err := handlePreview(context.Background(), &mcp.CallToolRequest{}, previewInput{
			Config: configInput{File: "testdata/semantic_errors.yaml"},
		})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
		text, ok := res.Content[0].(*mcp.TextContent)
		require.True(t, ok)
		assert.Contains(t, text.Text, "validation error(s)")
	})
}
