// Package commands provides CLI command handlers for mcpgen.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/mcpgen/internal/cliutil"
	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/mcperrors"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrFailed reports that a command ran to completion but its outcome is a
// failure, such as an invalid configuration. The details have already been
// printed; callers only need to exit non-zero.
var ErrFailed = errors.New("command failed")

// Output streams. Tests replace them to capture output.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s\n", bytes)
	return nil
}

// newLogger returns a text logger on stderr. verbose enables debug output;
// otherwise only warnings and errors are shown.
func newLogger(verbose bool) loader.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return loader.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
}

// Failure regimes of a configuration file.
const (
	regimeParse      = "parse"
	regimeStructural = "structural"
	regimeSemantic   = "semantic"
)

// loadRegime classifies a loader error: the document could not be read or
// decoded, or it decoded but does not have the required shape.
func loadRegime(err error) string {
	if errors.Is(err, mcperrors.ErrStructural) {
		return regimeStructural
	}
	return regimeParse
}

// printLoadFailure prints a loader failure under a heading naming its regime.
func printLoadFailure(w io.Writer, path, regime, message string) {
	if regime == regimeStructural {
		cliutil.Writef(w, "%s %s: invalid configuration structure\n", cliutil.SymbolFail, path)
	} else {
		cliutil.Writef(w, "%s %s: could not parse configuration\n", cliutil.SymbolFail, path)
	}
	cliutil.Writef(w, "  %s\n", message)
}

// printSemanticErrors prints validation messages under the semantic heading.
func printSemanticErrors(w io.Writer, path string, messages []string) {
	cliutil.Writef(w, "%s %s: %s\n", cliutil.SymbolFail, path, cliutil.Plural(len(messages), "validation error"))
	for _, m := range messages {
		cliutil.Writef(w, "  - %s\n", m)
	}
}
