// Package mcpgen turns a declarative description of an HTTP API into a
// ready-to-build MCP (Model Context Protocol) server.
//
// A description is a YAML or JSON document with a "server" block and a list of
// "tools", each mapping one MCP tool to one HTTP endpoint and method.
//
// # Overview
//
// The library is split into small packages that are used in order:
//
//   - loader: read a YAML/JSON file into the typed configuration model
//   - config: the configuration model and its structural construction rules
//   - validator: semantic cross-checks over a constructed model
//   - generator: render a server project from a validated model
//
// Structural problems (missing fields, bad enum values, a malformed base URL)
// stop construction with a single [mcperrors.StructuralError]. Semantic
// problems (duplicate names, unsafe identifiers, endpoint placeholders without
// matching parameters) are all collected and returned together by the
// validator.
//
// # Quick Start
//
// Load and validate a configuration file:
//
//	import (
//		"github.com/erraggy/mcpgen/loader"
//		"github.com/erraggy/mcpgen/validator"
//	)
//
//	cfg, err := loader.ParseFile("api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, msg := range validator.Validate(cfg) {
//		fmt.Println(msg)
//	}
//
// Generate a server project:
//
//	import "github.com/erraggy/mcpgen/generator"
//
//	result, err := generator.New().Generate(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = result.WriteFiles("./generated")
//
// # Command Line
//
// The mcpgen command wraps the same packages:
//
//	mcpgen init -o api.yaml
//	mcpgen validate api.yaml
//	mcpgen generate -o ./generated api.yaml
//	mcpgen preview --template readme api.yaml
//	mcpgen mcp
package mcpgen
