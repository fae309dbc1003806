// Package generator renders a runnable MCP server project from a configuration.
//
// The generated project is a single Go module:
//
//   - main.go: an MCP stdio server built on github.com/modelcontextprotocol/go-sdk
//     with one tool per configured endpoint
//   - go.mod: module definition requiring the SDK
//   - README.md: build steps, environment variables, and a tool reference
//   - .gitignore
//
// Each tool gets a typed input struct. The SDK infers the tool's input schema
// from it, so parameter descriptions, required fields, and nested object
// properties reach MCP clients unchanged. At call time the handler
// substitutes {placeholder} tokens with path-escaped values, encodes query
// parameters, sets header parameters (x_request_id is sent as X-Request-Id),
// and sends body parameters as a JSON object.
//
// Credentials come from environment variables named after the server:
// a server called "users-api" with bearer authentication reads
// USERS_API_TOKEN. The API base URL can be overridden with USERS_API_BASE_URL.
//
// # Usage
//
//	g := generator.New()
//	result, err := g.Generate(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./out"); err != nil {
//		log.Fatal(err)
//	}
//
// Generation refuses configurations that fail [validator.Validate]. Use
// [Generator.Preview] to render a single template without writing files.
package generator
