package commands

import (
	"errors"
	"flag"
	"fmt"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/erraggy/mcpgen/internal/cliutil"
	"github.com/erraggy/mcpgen/loader"
	"github.com/erraggy/mcpgen/validator"
	"golang.org/x/sync/errgroup"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Format   string
	Quiet    bool
	MaxDepth int
	Verbose  bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only report failing files")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only report failing files")
	fs.IntVar(&flags.MaxDepth, "max-depth", validator.DefaultMaxDepth, "maximum nesting depth of object properties")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: mcpgen validate [flags] <config|glob>...\n\n")
		cliutil.Writef(fs.Output(), "Validate one or more configuration files. Glob patterns may use ** to\n")
		cliutil.Writef(fs.Output(), "match any number of directories. Files are validated concurrently.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  mcpgen validate api.yaml\n")
		cliutil.Writef(fs.Output(), "  mcpgen validate 'configs/**/*.yaml'\n")
		cliutil.Writef(fs.Output(), "  mcpgen validate --format json api.yaml | jq '.[0].valid'\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All files are valid\n")
		cliutil.Writef(fs.Output(), "  1    At least one file failed to parse or validate\n")
	}

	return fs, flags
}

// FileReport is the validation outcome of one configuration file.
type FileReport struct {
	Path       string   `json:"path" yaml:"path"`
	Valid      bool     `json:"valid" yaml:"valid"`
	Regime     string   `json:"regime,omitempty" yaml:"regime,omitempty"`
	ServerName string   `json:"server_name,omitempty" yaml:"server_name,omitempty"`
	ToolCount  int      `json:"tool_count" yaml:"tool_count"`
	ErrorCount int      `json:"error_count" yaml:"error_count"`
	Errors     []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("validate command requires at least one file path or glob pattern")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.MaxDepth < 1 {
		return fmt.Errorf("max-depth must be at least 1")
	}

	paths, err := expandPatterns(fs.Args())
	if err != nil {
		return err
	}

	reports := ValidateFiles(paths, flags.MaxDepth, newLogger(flags.Verbose))

	failed := 0
	for _, r := range reports {
		if !r.Valid {
			failed++
		}
	}

	if flags.Format != FormatText {
		if err := OutputStructured(stdout, reports, flags.Format); err != nil {
			return err
		}
	} else {
		printReports(reports, flags.Quiet)
		if !flags.Quiet {
			cliutil.Writef(stdout, "\n%s validated: %d valid, %d invalid\n",
				cliutil.Plural(len(reports), "file"), len(reports)-failed, failed)
		}
	}

	if failed > 0 {
		return ErrFailed
	}
	return nil
}

// expandPatterns resolves glob patterns to file paths. Arguments without
// glob metacharacters are kept as given so missing files are reported by
// the loader. Duplicates are dropped, keeping first occurrence order.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return paths, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// ValidateFiles loads and validates every path concurrently. Reports are
// returned in the order of paths.
func ValidateFiles(paths []string, maxDepth int, logger loader.Logger) []FileReport {
	reports := make([]FileReport, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			reports[i] = validateFile(path, maxDepth, logger)
			return nil
		})
	}
	_ = g.Wait()
	return reports
}

func validateFile(path string, maxDepth int, logger loader.Logger) FileReport {
	report := FileReport{Path: path}

	parsed, err := loader.ParseWithOptions(loader.WithFilePath(path), loader.WithLogger(logger))
	if err != nil {
		report.Regime = loadRegime(err)
		report.ErrorCount = 1
		report.Errors = []string{err.Error()}
		return report
	}
	report.ServerName = parsed.Config.Server.Name
	report.ToolCount = len(parsed.Config.Tools)

	result, err := validator.ValidateWithOptions(
		validator.WithConfig(parsed.Config),
		validator.WithMaxDepth(maxDepth),
	)
	if err != nil {
		report.Regime = regimeSemantic
		report.ErrorCount = 1
		report.Errors = []string{err.Error()}
		return report
	}

	report.Valid = result.Valid
	report.ErrorCount = result.ErrorCount
	if !result.Valid {
		report.Regime = regimeSemantic
		report.Errors = result.Messages()
	}
	return report
}

func printReports(reports []FileReport, quiet bool) {
	for _, r := range reports {
		switch {
		case r.Valid:
			if !quiet {
				cliutil.Writef(stdout, "%s %s: %s (%s)\n", cliutil.SymbolOK, r.Path, r.ServerName, cliutil.Plural(r.ToolCount, "tool"))
			}
		case r.Regime == regimeSemantic:
			printSemanticErrors(stdout, r.Path, r.Errors)
		default:
			printLoadFailure(stdout, r.Path, r.Regime, r.Errors[0])
		}
	}
}
