package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	s := Schema()
	require.NotNil(t, s)
	assert.Equal(t, SchemaID, string(s.ID))
	assert.Equal(t, "mcpgen configuration", s.Title)
	assert.Equal(t, "object", s.Type)
	assert.ElementsMatch(t, []string{"server", "tools"}, s.Required)
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "root schema should be expanded")
	assert.Contains(t, props, "server")
	assert.Contains(t, props, "tools")

	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"ServerConfig", "Tool", "Parameter", "Authentication"} {
		assert.Contains(t, defs, name)
	}

	param := defs["Parameter"].(map[string]any)
	paramProps := param["properties"].(map[string]any)
	method := defs["Tool"].(map[string]any)["properties"].(map[string]any)["method"].(map[string]any)
	assert.Equal(t, []any{"GET", "POST", "PUT", "PATCH", "DELETE"}, method["enum"])
	assert.Contains(t, paramProps, "items_type")
	assert.Contains(t, paramProps, "properties")
}
