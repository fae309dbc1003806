package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(templateFuncs).
	ParseFS(templateFS, "templates/*.tmpl"))

var templateFuncs = template.FuncMap{
	"quote":           strconv.Quote,
	"join":            strings.Join,
	"upper":           strings.ToUpper,
	"toolDescription": toolDescription,
}

// Template names accepted by Preview.
const (
	TemplateServer    = "server"
	TemplateGoMod     = "gomod"
	TemplateReadme    = "readme"
	TemplateGitignore = "gitignore"
)

// outputTemplate binds a template to the file it renders.
type outputTemplate struct {
	name     string
	file     string
	source   string
	isGoCode bool
}

// outputs lists every generated file in write order.
var outputs = []outputTemplate{
	{name: TemplateServer, file: "main.go", source: "main.go.tmpl", isGoCode: true},
	{name: TemplateGoMod, file: "go.mod", source: "go.mod.tmpl"},
	{name: TemplateReadme, file: "README.md", source: "README.md.tmpl"},
	{name: TemplateGitignore, file: ".gitignore", source: "gitignore.tmpl"},
}

// TemplateNames returns the names accepted by Preview, in generation order.
func TemplateNames() []string {
	names := make([]string, len(outputs))
	for i, o := range outputs {
		names[i] = o.name
	}
	return names
}

func lookupOutput(name string) (outputTemplate, bool) {
	for _, o := range outputs {
		if o.name == name {
			return o, true
		}
	}
	return outputTemplate{}, false
}

// render executes one output template. Go sources are formatted with
// goimports processing.
func render(o outputTemplate, data *serverData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, o.source, data); err != nil {
		return nil, fmt.Errorf("generator: render %s: %w", o.file, err)
	}
	if !o.isGoCode {
		return buf.Bytes(), nil
	}
	formatted, err := imports.Process(o.file, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("generator: format %s: %w", o.file, err)
	}
	return formatted, nil
}

func toolDescription(t toolData) string {
	if t.ResponseDescription == "" {
		return t.Description
	}
	return t.Description + " Returns: " + t.ResponseDescription
}
