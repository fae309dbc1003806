package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/erraggy/mcpgen/internal/pathutil"
)

// Defaults applied during construction when a field is absent.
const (
	DefaultVersion  = "1.0.0"
	DefaultTimeout  = 30
	DefaultLocation = LocationQuery
)

// Well-known authentication types. Authentication.Type is free-form; these are
// the values the generator knows how to wire.
const (
	AuthBearer = "bearer"
	AuthAPIKey = "apikey"
	AuthBasic  = "basic"
)

// DefaultAPIKeyHeader is the header used for apikey authentication when no name is set.
const DefaultAPIKeyHeader = "X-API-Key"

// Parameter is one named input to a tool, or one property of an object parameter.
// Properties makes the type recursive: each property is a full Parameter.
type Parameter struct {
	Name        string                `json:"name" jsonschema:"description=Parameter name"`
	Type        ParameterType         `json:"type" jsonschema:"enum=string,enum=integer,enum=number,enum=boolean,enum=array,enum=object"`
	Location    ParameterLocation     `json:"location,omitempty" jsonschema:"enum=path,enum=query,enum=header,enum=body,default=query"`
	Description string                `json:"description,omitempty"`
	Required    bool                  `json:"required,omitempty" jsonschema:"default=false"`
	Default     any                   `json:"default,omitempty" jsonschema:"description=Default value"`
	ItemsType   ParameterType         `json:"items_type,omitempty" jsonschema:"enum=string,enum=integer,enum=number,enum=boolean,enum=array,enum=object,description=Array item type"`
	Properties  map[string]*Parameter `json:"properties,omitempty" jsonschema:"description=Object properties keyed by name"`
}

// HasDefault reports whether a default value was declared.
func (p *Parameter) HasDefault() bool {
	return p.Default != nil
}

// Authentication describes how the generated server authenticates to the target API.
type Authentication struct {
	Type        string            `json:"type" jsonschema:"description=Authentication type: bearer or apikey or basic"`
	Location    ParameterLocation `json:"location,omitempty" jsonschema:"enum=path,enum=query,enum=header,enum=body"`
	Name        string            `json:"name,omitempty" jsonschema:"description=Header or query parameter name carrying the credential"`
	Description string            `json:"description,omitempty"`
}

// Kind returns the normalized authentication type.
func (a *Authentication) Kind() string {
	return strings.ToLower(strings.TrimSpace(a.Type))
}

// CredentialName returns the header or query key carrying an API key credential.
func (a *Authentication) CredentialName() string {
	if a.Name != "" {
		return a.Name
	}
	return DefaultAPIKeyHeader
}

// CredentialLocation returns where an API key credential is sent: query or header.
func (a *Authentication) CredentialLocation() ParameterLocation {
	if a.Location == LocationQuery {
		return LocationQuery
	}
	return LocationHeader
}

// Tool is a named operation mapped to one HTTP endpoint and method.
type Tool struct {
	Name                string      `json:"name" jsonschema:"description=Tool name; must be a valid identifier"`
	Description         string      `json:"description" jsonschema:"description=Tool description shown to MCP clients"`
	Endpoint            string      `json:"endpoint" jsonschema:"description=Endpoint path template; may contain {placeholder} tokens"`
	Method              HTTPMethod  `json:"method" jsonschema:"enum=GET,enum=POST,enum=PUT,enum=PATCH,enum=DELETE"`
	Parameters          []Parameter `json:"parameters,omitempty"`
	ResponseDescription string      `json:"response_description,omitempty"`
	Stream              bool        `json:"stream,omitempty" jsonschema:"default=false"`
}

// Placeholders returns the distinct {name} tokens of the endpoint template in order.
func (t *Tool) Placeholders() []string {
	return pathutil.Placeholders(t.Endpoint)
}

// ParametersIn returns the top-level parameters sent in loc, in declaration order.
func (t *Tool) ParametersIn(loc ParameterLocation) []Parameter {
	var out []Parameter
	for _, p := range t.Parameters {
		if p.Location == loc {
			out = append(out, p)
		}
	}
	return out
}

// ServerConfig is the server-level configuration.
type ServerConfig struct {
	Name           string          `json:"name" jsonschema:"description=MCP server name"`
	Version        string          `json:"version,omitempty" jsonschema:"default=1.0.0"`
	Description    string          `json:"description,omitempty"`
	BaseURL        string          `json:"base_url" jsonschema:"format=uri,description=Base URL of the target API"`
	Timeout        int             `json:"timeout,omitempty" jsonschema:"default=30,description=Request timeout in seconds"`
	Authentication *Authentication `json:"authentication,omitempty"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (s *ServerConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// ParsedBaseURL returns BaseURL parsed. Construction guarantees it parses.
func (s *ServerConfig) ParsedBaseURL() *url.URL {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return &url.URL{}
	}
	return u
}

// MCPConfig is the complete configuration: one server and its tools.
type MCPConfig struct {
	Server ServerConfig `json:"server"`
	Tools  []Tool       `json:"tools"`
}
