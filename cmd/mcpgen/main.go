package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/erraggy/mcpgen"
	"github.com/erraggy/mcpgen/cmd/mcpgen/commands"
	"github.com/erraggy/mcpgen/internal/cliutil"
)

// commandHandlers maps subcommand names to their handlers.
var commandHandlers = map[string]func([]string) error{
	"generate": commands.HandleGenerate,
	"validate": commands.HandleValidate,
	"preview":  commands.HandlePreview,
	"init":     commands.HandleInit,
	"schema":   commands.HandleSchema,
	"mcp":      commands.HandleMCP,
}

// commandNames lists every command in usage order, including built-ins.
var commandNames = []string{"generate", "validate", "preview", "init", "schema", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	command := args[0]
	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "mcpgen v%s\n", mcpgen.Version())
		if len(args) > 1 && (args[1] == "--verbose" || args[1] == "-V") {
			cliutil.Writef(os.Stdout, "%s\n", mcpgen.BuildInfo())
		}
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	}

	handler, ok := commandHandlers[command]
	if !ok {
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			cliutil.Writef(os.Stderr, "Did you mean '%s'?\n", s)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		return 1
	}

	if err := handler(args[1:]); err != nil {
		if !errors.Is(err, commands.ErrFailed) {
			cliutil.Writef(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within two edits.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func printUsage() {
	usage := `mcpgen - generate MCP servers from HTTP API descriptions

Usage:
  mcpgen <command> [flags] [arguments]

Commands:
  generate   Generate an MCP server project from a configuration
  validate   Validate one or more configurations
  preview    Print one generated file without writing anything
  init       Write a sample configuration
  schema     Print the JSON Schema of the configuration format
  mcp        Run the mcpgen MCP server over stdio
  version    Show version information (--verbose adds build details)
  help       Show this help message

Run 'mcpgen <command> --help' for more information on a command.

Examples:
  mcpgen init
  mcpgen validate mcp-config.yaml
  mcpgen generate -o ./users-mcp mcp-config.yaml
`
	_, _ = fmt.Fprint(os.Stderr, usage)
}
