package config

import (
	"slices"
	"strings"
)

// HTTPMethod is the HTTP method a tool calls its endpoint with.
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodPatch  HTTPMethod = "PATCH"
	MethodDelete HTTPMethod = "DELETE"
)

// HTTPMethods lists every valid HTTPMethod in declaration order.
var HTTPMethods = []HTTPMethod{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}

// IsValid reports whether m is a member of the closed method set.
func (m HTTPMethod) IsValid() bool {
	return slices.Contains(HTTPMethods, m)
}

// HasBody reports whether requests with this method carry a request body.
func (m HTTPMethod) HasBody() bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch
}

// ParameterLocation is where a parameter is placed in the HTTP request.
type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationBody   ParameterLocation = "body"
)

// ParameterLocations lists every valid ParameterLocation in declaration order.
var ParameterLocations = []ParameterLocation{LocationPath, LocationQuery, LocationHeader, LocationBody}

// IsValid reports whether l is a member of the closed location set.
func (l ParameterLocation) IsValid() bool {
	return slices.Contains(ParameterLocations, l)
}

// ParameterType is the data type of a parameter value.
type ParameterType string

const (
	TypeString  ParameterType = "string"
	TypeInteger ParameterType = "integer"
	TypeNumber  ParameterType = "number"
	TypeBoolean ParameterType = "boolean"
	TypeArray   ParameterType = "array"
	TypeObject  ParameterType = "object"
)

// ParameterTypes lists every valid ParameterType in declaration order.
var ParameterTypes = []ParameterType{TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeArray, TypeObject}

// IsValid reports whether t is a member of the closed type set.
func (t ParameterType) IsValid() bool {
	return slices.Contains(ParameterTypes, t)
}

// IsScalar reports whether values of this type are single JSON scalars.
func (t ParameterType) IsScalar() bool {
	return t != TypeArray && t != TypeObject
}

// joinEnum renders an enum set for error messages: "GET, POST, PUT".
func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
