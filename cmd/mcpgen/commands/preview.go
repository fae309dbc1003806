package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/mcpgen/generator"
	"github.com/erraggy/mcpgen/internal/cliutil"
	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/mcperrors"
)

// PreviewFlags contains flags for the preview command
type PreviewFlags struct {
	Template   string
	ModulePath string
}

// SetupPreviewFlags creates and configures a FlagSet for the preview command.
func SetupPreviewFlags() (*flag.FlagSet, *PreviewFlags) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	flags := &PreviewFlags{}

	fs.StringVar(&flags.Template, "template", generator.TemplateServer,
		"template to render: "+strings.Join(generator.TemplateNames(), ", "))
	fs.StringVar(&flags.Template, "t", generator.TemplateServer, "template to render (shorthand)")
	fs.StringVar(&flags.ModulePath, "module", "", "module path of the generated project")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: mcpgen preview [flags] <config>\n\n")
		cliutil.Writef(fs.Output(), "Print one generated file to stdout without writing anything.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  mcpgen preview api.yaml\n")
		cliutil.Writef(fs.Output(), "  mcpgen preview --template readme api.yaml\n")
	}

	return fs, flags
}

// HandlePreview executes the preview command
func HandlePreview(args []string) error {
	fs, flags := SetupPreviewFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("preview command requires exactly one configuration file")
	}
	configPath := fs.Arg(0)

	cfg, err := loader.ParseFile(configPath)
	if err != nil {
		printLoadFailure(stderr, configPath, loadRegime(err), err.Error())
		return ErrFailed
	}

	g := generator.New()
	g.ModulePath = flags.ModulePath
	content, err := g.Preview(cfg, flags.Template)
	if err != nil {
		var cfgErr *mcperrors.ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Option == "template" {
			return err
		}
		cliutil.Writef(stderr, "%s %s: %v\n", cliutil.SymbolFail, configPath, err)
		return ErrFailed
	}
	cliutil.Writef(stdout, "%s", content)
	return nil
}
