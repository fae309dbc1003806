package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/mcpgen/config"
	"github.com/erraggy/mcpgen/internal/cliutil"
	"github.com/erraggy/mcpgen/internal/fileutil"
	"github.com/erraggy/mcpgen/internal/pathutil"
)

// SchemaFlags contains flags for the schema command
type SchemaFlags struct {
	Output string
}

// SetupSchemaFlags creates and configures a FlagSet for the schema command.
func SetupSchemaFlags() (*flag.FlagSet, *SchemaFlags) {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	flags := &SchemaFlags{}

	fs.StringVar(&flags.Output, "o", "", "write the schema to a file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write the schema to a file instead of stdout")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: mcpgen schema [flags]\n\n")
		cliutil.Writef(fs.Output(), "Print the JSON Schema of the configuration file format.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleSchema executes the schema command
func HandleSchema(args []string) error {
	fs, flags := SetupSchemaFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	data, err := config.SchemaJSON()
	if err != nil {
		return fmt.Errorf("rendering schema: %w", err)
	}
	data = append(data, '\n')

	if flags.Output == "" {
		cliutil.Writef(stdout, "%s", data)
		return nil
	}
	path := filepath.Clean(flags.Output)
	abs, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(abs, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}
	cliutil.Writef(stderr, "%s Wrote %s\n", cliutil.SymbolOK, path)
	return nil
}
