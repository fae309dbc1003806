// Package validator checks a constructed configuration for semantic problems.
//
// Construction ([config.FromMap]) guarantees a configuration is well-typed.
// The validator then cross-checks it: names must be unique and usable as
// generated identifiers, endpoints must be absolute paths, and every
// {placeholder} in an endpoint must pair with a path parameter and vice versa.
//
// Validation never fails fast. Every rule runs for every tool and the result
// lists all problems in a deterministic order: global rules first, then each
// tool in declaration order, and within a tool its own rules before its
// parameters. An empty list is the only success signal; there are no warnings.
//
// # Rules
//
// Global:
//   - server.name must be non-empty
//   - at least one tool is required
//
// Per tool:
//   - tool names are unique (each repeat is reported)
//   - tool names match ^[A-Za-z_][A-Za-z0-9_]*$
//   - endpoint starts with "/"
//
// Per parameter:
//   - names are unique within the tool and match the identifier grammar
//   - array parameters declare items_type
//   - object parameters declare at least one property
//   - nested properties obey the same rules, reported with dotted names such
//     as 'filter.status', and may not nest beyond the configured depth
//   - every endpoint placeholder names a declared parameter
//   - every path parameter appears as an endpoint placeholder
//
// # Usage
//
//	errs := validator.Validate(cfg)
//	for _, msg := range errs {
//		fmt.Println(msg)
//	}
//
// For structured output use [ValidateWithOptions]:
//
//	result, err := validator.ValidateWithOptions(
//		validator.WithFilePath("api.yaml"),
//	)
//
// A Validator holds no state between calls and is safe for concurrent use.
package validator
