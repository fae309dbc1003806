// Package naming converts configuration names into generated-code names.
//
// Tool, parameter, and server names arrive as snake_case, kebab-case, or
// mixed case. The generator needs exported Go identifiers ("user_id" ->
// "UserID"), environment variable prefixes ("example-api" -> "EXAMPLE_API"),
// and display titles ("example-api" -> "Example Api"). All conversions start
// from [Words], so they agree on where word boundaries are.
package naming
