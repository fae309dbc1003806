package config

import _ "embed"

// SampleYAML is a small, valid configuration used by "mcpgen init".
//
//go:embed sample.yaml
var SampleYAML []byte
