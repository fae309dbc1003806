package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SchemaID is the $id of the configuration file JSON Schema.
const SchemaID = "https://github.com/erraggy/mcpgen/config.schema.json"

// Schema returns the JSON Schema describing the configuration file format.
// Editors can use it for completion and inline checks; it covers the
// structural rules only.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{ExpandedStruct: true}
	s := r.Reflect(&MCPConfig{})
	s.ID = SchemaID
	s.Title = "mcpgen configuration"
	s.Description = "Describes an HTTP API as an MCP server with one tool per endpoint."
	return s
}

// SchemaJSON returns Schema rendered as indented JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
