// Package config defines the typed configuration model for an MCP server
// description and the structural rules for building it from a raw tree.
//
// A raw tree is what a YAML or JSON decoder produces: maps with string keys,
// lists, and scalar leaves. [FromMap] turns it into an [MCPConfig] or fails on
// the first structural defect with a [*mcperrors.StructuralError] naming the
// offending field path:
//
//	cfg, err := config.FromMap(raw)
//	if err != nil {
//		var se *mcperrors.StructuralError
//		if errors.As(err, &se) {
//			fmt.Printf("%s: %s\n", se.Path, se.Message)
//		}
//		return err
//	}
//
// Structural rules are limited to shape: required fields, scalar types, the
// closed enum sets, and a valid absolute base URL. Content rules such as name
// uniqueness or endpoint placeholder consistency belong to the validator
// package, which accepts any model this package can build.
//
// A constructed model is not modified by any mcpgen package and is safe to
// share between goroutines.
package config
