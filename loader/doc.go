// Package loader reads mcpgen configuration files.
//
// It turns YAML or JSON text into the raw key-value tree expected by
// [config.FromMap] and returns the constructed model. Failures are reported in
// two shapes: *mcperrors.ParseError when the text cannot be read or decoded,
// and *mcperrors.StructuralError when the decoded tree is not a well-formed
// configuration.
//
// # Quick Start
//
//	cfg, err := loader.ParseFile("api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Options
//
// [ParseWithOptions] accepts exactly one input source and returns a
// [ParseResult] with load metadata:
//
//	result, err := loader.ParseWithOptions(
//		loader.WithReader(os.Stdin),
//		loader.WithLogger(loader.NewSlogAdapter(slog.Default())),
//	)
//
// Reader and byte input carry no file name, so the format is detected from
// content: documents starting with '{' or '[' are JSON, anything else YAML.
package loader
