package generator

import (
	"slices"
	"sort"

	"github.com/erraggy/mcpgen"
	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/internal/naming"
)

// serverData is the context shared by all templates.
type serverData struct {
	Name             string
	Title            string
	Version          string
	Description      string
	BaseURL          string
	Timeout          int
	EnvPrefix        string
	Module           string
	Binary           string
	GoVersion        string
	SDKVersion       string
	GeneratorVersion string
	Auth             *authData
	Tools            []toolData
	Structs          []structDef
}

// authData describes how the generated client reads credentials.
type authData struct {
	Kind        string
	Description string
	CredName    string
	InQuery     bool
	TokenEnv    string
	KeyEnv      string
	UserEnv     string
	PassEnv     string
}

type toolData struct {
	Name                string
	Description         string
	ResponseDescription string
	FuncName            string
	InputType           string
	Method              string
	Endpoint            string
	Stream              bool
	Defaults            []defaultData
	PathParams          []fieldRef
	QueryParams         []fieldRef
	HeaderParams        []fieldRef
	BodyParams          []fieldRef
	Params              []paramDoc
}

// fieldRef ties a request key to an input struct field.
type fieldRef struct {
	Key   string
	Field string
	// Expr is the value expression, dereferenced for optional scalars
	Expr string
	// NilCheck is set for optional pointer, map, or struct pointer fields
	NilCheck bool
	Array    bool
}

// defaultData fills an optional scalar with its configured default. Guards
// are the optional parent objects that must be present first.
type defaultData struct {
	Guards  []string
	Target  string
	Literal string
}

// access is the Go expression reaching a field of the handler input, plus
// the pointer expressions that must be non-nil before it can be read.
type access struct {
	Expr   string
	Guards []string
}

func (a access) field(name string) access {
	return access{Expr: a.Expr + "." + name, Guards: a.Guards}
}

func (a access) guarded() access {
	return access{Expr: a.Expr, Guards: append(slices.Clone(a.Guards), a.Expr)}
}

// paramDoc is a flattened parameter row for the README.
type paramDoc struct {
	Name        string
	Type        string
	Location    string
	Required    bool
	Description string
}

type structDef struct {
	Name   string
	Doc    string
	Fields []structField
}

type structField struct {
	Name string
	Type string
	Tag  string
}

// buildData derives the template context from a validated configuration.
func (g *Generator) buildData(cfg *config.MCPConfig) *serverData {
	module := g.modulePath(cfg)
	d := &serverData{
		Name:             cfg.Server.Name,
		Title:            naming.ToTitle(cfg.Server.Name),
		Version:          cfg.Server.Version,
		Description:      cleanDescription(cfg.Server.Description),
		BaseURL:          cfg.Server.BaseURL,
		Timeout:          cfg.Server.Timeout,
		EnvPrefix:        naming.ToScreamingSnakeCase(cfg.Server.Name),
		Module:           module,
		Binary:           binaryName(module),
		GoVersion:        g.goVersion(),
		SDKVersion:       SDKVersion,
		GeneratorVersion: mcpgen.Version(),
	}
	if d.EnvPrefix == "" {
		d.EnvPrefix = "MCP_SERVER"
	}
	if auth := cfg.Server.Authentication; auth != nil {
		d.Auth = &authData{
			Kind:        auth.Kind(),
			Description: cleanDescription(auth.Description),
			CredName:    auth.CredentialName(),
			InQuery:     auth.CredentialLocation() == config.LocationQuery,
			TokenEnv:    d.EnvPrefix + "_TOKEN",
			KeyEnv:      d.EnvPrefix + "_API_KEY",
			UserEnv:     d.EnvPrefix + "_USERNAME",
			PassEnv:     d.EnvPrefix + "_PASSWORD",
		}
	}

	types := nameSet{}
	funcs := nameSet{}
	for i := range cfg.Tools {
		d.Tools = append(d.Tools, g.buildTool(d, &cfg.Tools[i], types, funcs))
	}
	return d
}

func (g *Generator) buildTool(d *serverData, t *config.Tool, types, funcs nameSet) toolData {
	base := goName(t.Name, "Tool")
	td := toolData{
		Name:                t.Name,
		Description:         cleanDescription(t.Description),
		ResponseDescription: cleanDescription(t.ResponseDescription),
		FuncName:            funcs.unique("handle" + base),
		InputType:           types.unique(base + "Input"),
		Method:              string(t.Method),
		Endpoint:            t.Endpoint,
		Stream:              t.Stream,
	}

	placeholders := make(map[string]bool)
	for _, ph := range t.Placeholders() {
		placeholders[ph] = true
	}

	input := structDef{Name: td.InputType, Doc: "is the input of the " + t.Name + " tool."}
	fields := nameSet{}
	for i := range t.Parameters {
		p := &t.Parameters[i]
		field := fields.unique(goName(p.Name, "Field"))
		sf, ref := g.buildField(d, &td, p, p.Name, field, td.InputType, access{Expr: "in." + field}, types)
		input.Fields = append(input.Fields, sf)
		td.Params = append(td.Params, paramDoc{
			Name:        p.Name,
			Type:        typeLabel(p),
			Location:    string(p.Location),
			Required:    p.Required,
			Description: cleanDescription(p.Description),
		})
		if g.addDefault(&td, p, access{Expr: "in." + field}) {
			ref.NilCheck = false
		}

		// A parameter named by a placeholder is sent in the path only,
		// whatever its location.
		if placeholders[p.Name] {
			ref.Key = p.Name
			td.PathParams = append(td.PathParams, ref)
			continue
		}
		switch p.Location {
		case config.LocationQuery:
			td.QueryParams = append(td.QueryParams, ref)
		case config.LocationHeader:
			hdr := ref
			hdr.Key = headerName(p.Name)
			td.HeaderParams = append(td.HeaderParams, hdr)
		case config.LocationBody:
			body := ref
			body.Expr = "in." + field
			td.BodyParams = append(td.BodyParams, body)
		}
	}
	d.Structs = append(d.Structs, input)
	return td
}

// addDefault records the default of an optional scalar parameter reached
// through acc. It reports whether a default will be applied.
func (g *Generator) addDefault(td *toolData, p *config.Parameter, acc access) bool {
	if p.Required || !p.Type.IsScalar() || !p.HasDefault() {
		return false
	}
	lit, ok := goLiteral(p.Type, p.Default)
	if !ok {
		g.log().Warn("ignoring default that does not match parameter type",
			"tool", td.Name, "parameter", p.Name, "type", string(p.Type))
		return false
	}
	td.Defaults = append(td.Defaults, defaultData{Guards: acc.Guards, Target: acc.Expr, Literal: lit})
	return true
}

// buildField maps one parameter to a struct field. Object parameters with
// properties produce nested struct types, appended to d.Structs.
func (g *Generator) buildField(d *serverData, td *toolData, p *config.Parameter, jsonName, field, parent string, acc access, types nameSet) (structField, fieldRef) {
	optional := !p.Required
	desc := cleanDescription(p.Description)
	if p.HasDefault() {
		desc = describeDefault(desc, p.Default)
	}

	ref := fieldRef{Key: jsonName, Field: field, Expr: "in." + field}
	var goType string
	switch {
	case p.Type == config.TypeArray:
		goType = "[]" + itemGoType(p.ItemsType)
		ref.Array = true
	case p.Type == config.TypeObject && len(p.Properties) > 0:
		if optional {
			acc = acc.guarded()
		}
		goType = g.buildStruct(d, td, p, parent+field, acc, types)
		if optional {
			goType = "*" + goType
			ref.NilCheck = true
		}
	case p.Type == config.TypeObject:
		goType = "map[string]any"
		ref.NilCheck = optional
	default:
		goType = scalarGoType(p.Type)
		if optional {
			goType = "*" + goType
			ref.Expr = "*in." + field
			ref.NilCheck = true
		}
	}

	return structField{
		Name: field,
		Type: goType,
		Tag:  structTag(jsonName, optional, desc),
	}, ref
}

// buildStruct emits a struct type for an object parameter's properties, in
// sorted key order, and returns the type name. Defaults of nested optional
// scalars are recorded on td, reached through acc.
func (g *Generator) buildStruct(d *serverData, td *toolData, p *config.Parameter, name string, acc access, types nameSet) string {
	name = types.unique(name)
	def := structDef{Name: name, Doc: "is the " + p.Name + " object."}
	keys := make([]string, 0, len(p.Properties))
	for k, child := range p.Properties {
		if child != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	fields := nameSet{}
	for _, k := range keys {
		child := p.Properties[k]
		field := fields.unique(goName(k, "Field"))
		childAcc := acc.field(field)
		sf, _ := g.buildField(d, td, child, k, field, name, childAcc, types)
		def.Fields = append(def.Fields, sf)
		g.addDefault(td, child, childAcc)
	}
	d.Structs = append(d.Structs, def)
	return name
}

func typeLabel(p *config.Parameter) string {
	if p.Type == config.TypeArray && p.ItemsType != "" {
		return "array of " + string(p.ItemsType)
	}
	return string(p.Type)
}

func binaryName(module string) string {
	for i := len(module) - 1; i >= 0; i-- {
		if module[i] == '/' {
			return module[i+1:]
		}
	}
	return module
}
