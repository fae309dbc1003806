package generator_test

import (
	"fmt"
	"log"

	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/generator"
	"github.com/erraggy/mcpgen/loader"
)

func Example() {
	cfg, err := loader.ParseBytes(config.SampleYAML, loader.SourceFormatYAML)
	if err != nil {
		log.Fatal(err)
	}
	result, err := generator.New().Generate(cfg)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range result.Files {
		fmt.Println(f.Name)
	}
	// Output:
	// main.go
	// go.mod
	// README.md
	// .gitignore
}
