package commands

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/erraggy/mcpgen/generator"
	"github.com/erraggy/mcpgen/internal/cliutil"
	"github.com/erraggy/mcpgen/internal/naming"
	"github.com/erraggy/mcpgen/internal/pathutil"
	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/validator"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output       string
	ModulePath   string
	GoVersion    string
	ValidateOnly bool
	Verbose      bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output directory (default: server name in kebab-case)")
	fs.StringVar(&flags.Output, "output", "", "output directory (default: server name in kebab-case)")
	fs.StringVar(&flags.ModulePath, "module", "", "module path of the generated project (default: server name in kebab-case)")
	fs.StringVar(&flags.GoVersion, "go-version", generator.DefaultGoVersion, "go directive of the generated go.mod")
	fs.BoolVar(&flags.ValidateOnly, "validate-only", false, "validate the configuration without generating files")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: mcpgen generate [flags] <config>\n\n")
		cliutil.Writef(fs.Output(), "Generate an MCP server project from a configuration file.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  mcpgen generate api.yaml\n")
		cliutil.Writef(fs.Output(), "  mcpgen generate -o ./users-mcp --module github.com/acme/users-mcp api.yaml\n")
		cliutil.Writef(fs.Output(), "  mcpgen generate --validate-only api.yaml\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one configuration file")
	}
	configPath := fs.Arg(0)
	logger := newLogger(flags.Verbose)

	parsed, err := loader.ParseWithOptions(loader.WithFilePath(configPath), loader.WithLogger(logger))
	if err != nil {
		printLoadFailure(stderr, configPath, loadRegime(err), err.Error())
		return ErrFailed
	}
	cfg := parsed.Config

	if messages := validator.Validate(cfg); len(messages) > 0 {
		printSemanticErrors(stderr, configPath, messages)
		return ErrFailed
	}
	if flags.ValidateOnly {
		cliutil.Writef(stdout, "%s %s: configuration is valid (%s)\n", cliutil.SymbolOK, configPath, cliutil.Plural(len(cfg.Tools), "tool"))
		return nil
	}

	result, err := generator.GenerateWithOptions(
		generator.WithConfig(cfg),
		generator.WithModulePath(flags.ModulePath),
		generator.WithGoVersion(flags.GoVersion),
		generator.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("generating server: %w", err)
	}

	outputDir := flags.Output
	if outputDir == "" {
		outputDir = naming.ToKebabCase(cfg.Server.Name)
		if outputDir == "" {
			outputDir = "mcp-server"
		}
	}
	outputDir = filepath.Clean(outputDir)
	absDir, err := pathutil.SanitizeOutputPath(outputDir)
	if err != nil {
		return err
	}
	if err := result.WriteFiles(absDir); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	cliutil.Writef(stdout, "%s Generated %s (%s) in %s\n", cliutil.SymbolOK, result.ServerName, cliutil.Plural(result.ToolCount, "tool"), outputDir)
	for _, f := range result.Files {
		cliutil.Writef(stdout, "  %s\n", filepath.Join(outputDir, f.Name))
	}
	cliutil.Writef(stdout, "\nNext steps:\n")
	cliutil.Writef(stdout, "  cd %s\n", outputDir)
	cliutil.Writef(stdout, "  go mod tidy\n")
	cliutil.Writef(stdout, "  go build\n")
	return nil
}
