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

// DefaultInitOutput is the file written by init when no output is given.
const DefaultInitOutput = "mcp-config.yaml"

// InitFlags contains flags for the init command
type InitFlags struct {
	Output string
	Force  bool
}

// SetupInitFlags creates and configures a FlagSet for the init command.
func SetupInitFlags() (*flag.FlagSet, *InitFlags) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	flags := &InitFlags{}

	fs.StringVar(&flags.Output, "o", DefaultInitOutput, "output file")
	fs.StringVar(&flags.Output, "output", DefaultInitOutput, "output file")
	fs.BoolVar(&flags.Force, "force", false, "overwrite an existing file")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: mcpgen init [flags]\n\n")
		cliutil.Writef(fs.Output(), "Write a sample configuration to start from.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleInit executes the init command
func HandleInit(args []string) error {
	fs, flags := SetupInitFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("init command takes no arguments")
	}

	path := filepath.Clean(flags.Output)
	abs, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err == nil && !flags.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(abs, config.SampleYAML, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing sample configuration: %w", err)
	}
	cliutil.Writef(stdout, "%s Created %s\n", cliutil.SymbolOK, path)
	cliutil.Writef(stdout, "\nEdit it to describe your API, then run:\n")
	cliutil.Writef(stdout, "  mcpgen validate %s\n", path)
	cliutil.Writef(stdout, "  mcpgen generate %s\n", path)
	return nil
}
