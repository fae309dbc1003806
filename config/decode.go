package config

import (
	"fmt"
	"math"
	"net/url"
	"sort"

	"github.com/erraggy/mcpgen/internal/pathutil"
	"github.com/erraggy/mcpgen/mcperrors"
)

// MaxNestingDepth bounds how deeply object parameters may nest their properties.
// Top-level tool parameters are at depth 1.
const MaxNestingDepth = 64

// FromMap builds an MCPConfig from a raw YAML/JSON tree.
//
// Construction is all-or-nothing: the first structural defect is returned as a
// *mcperrors.StructuralError and no partial model is produced. Unknown keys
// are ignored. A key explicitly set to null is treated as absent.
func FromMap(raw map[string]any) (*MCPConfig, error) {
	if raw == nil {
		return nil, &mcperrors.StructuralError{Message: "document is empty"}
	}
	d := &decoder{path: pathutil.Get()}
	defer pathutil.Put(d.path)
	return d.config(raw)
}

// decoder walks the raw tree, tracking the current field path for errors.
type decoder struct {
	path *pathutil.PathBuilder
}

func (d *decoder) fail(field, msg string, value any) error {
	path := d.path.String()
	if field != "" {
		path = d.path.Child(field)
	}
	return &mcperrors.StructuralError{Path: path, Message: msg, Value: value}
}

func (d *decoder) config(raw map[string]any) (*MCPConfig, error) {
	cfg := &MCPConfig{}

	serverRaw, err := d.mapping(raw, "server", true)
	if err != nil {
		return nil, err
	}
	d.path.Push("server")
	cfg.Server, err = d.server(serverRaw)
	d.path.Pop()
	if err != nil {
		return nil, err
	}

	toolsRaw, err := d.list(raw, "tools", true)
	if err != nil {
		return nil, err
	}
	cfg.Tools = make([]Tool, 0, len(toolsRaw))
	d.path.Push("tools")
	defer d.path.Pop()
	for i, item := range toolsRaw {
		d.path.PushIndex(i)
		m, ok := asMapping(item)
		if !ok {
			err := d.fail("", "must be a mapping", item)
			d.path.Pop()
			return nil, err
		}
		tool, err := d.tool(m)
		d.path.Pop()
		if err != nil {
			return nil, err
		}
		cfg.Tools = append(cfg.Tools, tool)
	}
	return cfg, nil
}

func (d *decoder) server(m map[string]any) (ServerConfig, error) {
	s := ServerConfig{Version: DefaultVersion, Timeout: DefaultTimeout}
	var err error

	if s.Name, err = d.str(m, "name", true); err != nil {
		return s, err
	}
	version, err := d.str(m, "version", false)
	if err != nil {
		return s, err
	}
	if version != "" {
		s.Version = version
	}
	if s.Description, err = d.str(m, "description", false); err != nil {
		return s, err
	}
	if s.BaseURL, err = d.str(m, "base_url", true); err != nil {
		return s, err
	}
	if err := checkBaseURL(s.BaseURL); err != nil {
		return s, &mcperrors.StructuralError{
			Path:    d.path.Child("base_url"),
			Message: "must be an absolute http or https URL",
			Value:   s.BaseURL,
			Cause:   err,
		}
	}
	if s.Timeout, err = d.integer(m, "timeout", DefaultTimeout); err != nil {
		return s, err
	}

	authRaw, err := d.mapping(m, "authentication", false)
	if err != nil {
		return s, err
	}
	if authRaw != nil {
		d.path.Push("authentication")
		auth, err := d.authentication(authRaw)
		d.path.Pop()
		if err != nil {
			return s, err
		}
		s.Authentication = auth
	}
	return s, nil
}

func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func (d *decoder) authentication(m map[string]any) (*Authentication, error) {
	a := &Authentication{}
	var err error
	if a.Type, err = d.str(m, "type", true); err != nil {
		return nil, err
	}
	if a.Location, err = enumField(d, m, "location", ParameterLocations, ""); err != nil {
		return nil, err
	}
	if a.Name, err = d.str(m, "name", false); err != nil {
		return nil, err
	}
	if a.Description, err = d.str(m, "description", false); err != nil {
		return nil, err
	}
	return a, nil
}

func (d *decoder) tool(m map[string]any) (Tool, error) {
	t := Tool{}
	var err error

	if t.Name, err = d.str(m, "name", true); err != nil {
		return t, err
	}
	if t.Description, err = d.str(m, "description", true); err != nil {
		return t, err
	}
	if t.Endpoint, err = d.str(m, "endpoint", true); err != nil {
		return t, err
	}
	if _, ok := m["method"]; !ok || m["method"] == nil {
		return t, d.fail("method", "required field is missing", nil)
	}
	if t.Method, err = enumField(d, m, "method", HTTPMethods, ""); err != nil {
		return t, err
	}

	paramsRaw, err := d.list(m, "parameters", false)
	if err != nil {
		return t, err
	}
	t.Parameters = make([]Parameter, 0, len(paramsRaw))
	d.path.Push("parameters")
	for i, item := range paramsRaw {
		d.path.PushIndex(i)
		pm, ok := asMapping(item)
		if !ok {
			err := d.fail("", "must be a mapping", item)
			d.path.Pop()
			d.path.Pop()
			return t, err
		}
		p, err := d.parameter(pm, "", 1)
		d.path.Pop()
		if err != nil {
			d.path.Pop()
			return t, err
		}
		t.Parameters = append(t.Parameters, *p)
	}
	d.path.Pop()

	if t.ResponseDescription, err = d.str(m, "response_description", false); err != nil {
		return t, err
	}
	if t.Stream, err = d.boolean(m, "stream", false); err != nil {
		return t, err
	}
	return t, nil
}

// parameter decodes one parameter. key is the mapping key when the parameter
// is an object property and supplies the name when none is given.
func (d *decoder) parameter(m map[string]any, key string, depth int) (*Parameter, error) {
	if depth > MaxNestingDepth {
		return nil, &mcperrors.StructuralError{
			Path:    d.path.String(),
			Message: "object properties are nested too deeply",
			Cause: &mcperrors.ResourceLimitError{
				Resource: "nesting_depth",
				Limit:    MaxNestingDepth,
				Actual:   int64(depth),
			},
		}
	}

	p := &Parameter{Location: DefaultLocation}
	var err error

	// A nested property is named by its key in the parent's properties;
	// a "name" field there is type-checked and otherwise ignored.
	if key != "" {
		if _, err = d.str(m, "name", false); err != nil {
			return nil, err
		}
		p.Name = key
	} else if p.Name, err = d.str(m, "name", true); err != nil {
		return nil, err
	}

	if _, ok := m["type"]; !ok || m["type"] == nil {
		return nil, d.fail("type", "required field is missing", nil)
	}
	if p.Type, err = enumField(d, m, "type", ParameterTypes, ""); err != nil {
		return nil, err
	}
	if p.Location, err = enumField(d, m, "location", ParameterLocations, DefaultLocation); err != nil {
		return nil, err
	}
	if p.Description, err = d.str(m, "description", false); err != nil {
		return nil, err
	}
	if p.Required, err = d.boolean(m, "required", false); err != nil {
		return nil, err
	}
	p.Default = m["default"]
	if p.ItemsType, err = enumField(d, m, "items_type", ParameterTypes, ""); err != nil {
		return nil, err
	}

	propsRaw, err := d.mapping(m, "properties", false)
	if err != nil {
		return nil, err
	}
	if propsRaw == nil {
		return p, nil
	}

	p.Properties = make(map[string]*Parameter, len(propsRaw))
	names := make([]string, 0, len(propsRaw))
	for name := range propsRaw {
		names = append(names, name)
	}
	sort.Strings(names)

	d.path.Push("properties")
	defer d.path.Pop()
	for _, name := range names {
		d.path.Push(name)
		child, ok := asMapping(propsRaw[name])
		if !ok {
			err := d.fail("", "must be a mapping", propsRaw[name])
			d.path.Pop()
			return nil, err
		}
		prop, err := d.parameter(child, name, depth+1)
		d.path.Pop()
		if err != nil {
			return nil, err
		}
		p.Properties[name] = prop
	}
	return p, nil
}

// str reads an optional or required string field.
func (d *decoder) str(m map[string]any, field string, required bool) (string, error) {
	v, ok := m[field]
	if !ok || v == nil {
		if required {
			return "", d.fail(field, "required field is missing", nil)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", d.fail(field, "must be a string", v)
	}
	return s, nil
}

func (d *decoder) boolean(m map[string]any, field string, def bool) (bool, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, d.fail(field, "must be a boolean", v)
	}
	return b, nil
}

func (d *decoder) integer(m map[string]any, field string, def int) (int, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return def, nil
	}
	n, ok := asInt(v)
	if !ok {
		return 0, d.fail(field, "must be an integer", v)
	}
	return n, nil
}

func (d *decoder) mapping(m map[string]any, field string, required bool) (map[string]any, error) {
	v, ok := m[field]
	if !ok || v == nil {
		if required {
			return nil, d.fail(field, "required field is missing", nil)
		}
		return nil, nil
	}
	mm, ok := asMapping(v)
	if !ok {
		return nil, d.fail(field, "must be a mapping", v)
	}
	return mm, nil
}

func (d *decoder) list(m map[string]any, field string, required bool) ([]any, error) {
	v, ok := m[field]
	if !ok || v == nil {
		if required {
			return nil, d.fail(field, "required field is missing", nil)
		}
		return nil, nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, d.fail(field, "must be a list", v)
	}
	return l, nil
}

// enumField reads a string field that must belong to allowed. Absent fields
// yield def.
func enumField[T ~string](d *decoder, m map[string]any, field string, allowed []T, def T) (T, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, d.fail(field, "must be a string", v)
	}
	for _, a := range allowed {
		if string(a) == s {
			return a, nil
		}
	}
	return def, d.fail(field, "must be one of "+joinEnum(allowed), s)
}

// asMapping accepts both decoder map shapes: map[string]any from JSON and
// YAML, and map[any]any from older YAML decoders.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// asInt accepts any Go integer kind and integral floats (JSON numbers).
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}
