// Package config parses the command-line invocation.
package config

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jacoelho/ccyq/internal/exit"
)

// DefaultQuery is the identity query used when none is given.
const DefaultQuery = "."

var (
	ErrNoArguments      = errors.New("no arguments provided")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrColorConflict    = errors.New("-color and -no-color are mutually exclusive")
)

// Config represents the complete configuration for the ccyq tool.
type Config struct {
	Query    string
	Filename string // empty means read from standard input
	JSONPath bool
	Color    bool
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and an exit
// result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage and error output since we handle both ourselves
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		jsonPath   = fs.Bool("jsonpath", false, "Evaluate the query as an RFC 9535 JSONPath expression")
		forceColor = fs.Bool("color", false, "Force ANSI-colored output")
		noColor    = fs.Bool("no-color", false, "Disable ANSI-colored output")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrTooManyArguments, Usage())
	}
	if *forceColor && *noColor {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrColorConflict, Usage())
	}

	cfg := &Config{
		Query:    DefaultQuery,
		JSONPath: *jsonPath,
	}
	if len(rest) > 0 {
		cfg.Query = rest[0]
	}
	if len(rest) > 1 {
		cfg.Filename = rest[1]
	}

	switch {
	case *forceColor:
		cfg.Color = true
	case *noColor:
		cfg.Color = false
	default:
		cfg.Color = isatty.IsTerminal(os.Stdout.Fd())
	}

	return cfg, nil
}

func Usage() string {
	return `ccyq - YAML path query tool

Usage: ccyq [options] [query] [filename]

Arguments:
  query                   Path query expression (default: ".")
  filename                YAML file to read (default: standard input)

Options:
  -jsonpath               Evaluate the query as an RFC 9535 JSONPath expression
  -color                  Force ANSI-colored output
  -no-color               Disable ANSI-colored output
  -h, -help               Show this help message

Examples:
  ccyq . config.yaml                     # Print the whole document
  ccyq .spec.replicas deploy.yaml        # Select a nested field
  ccyq '.items[].name' list.yaml         # Collect a field from every element
  ccyq '.missing?' config.yaml           # Optional lookup, prints nothing
  ccyq '[.items[].id]' list.yaml         # Force the result into a list
  ccyq '.users[] | .email' users.yaml    # Pipe composition
  ccyq -jsonpath '$.store.book[0]' s.yaml # JSONPath engine
  cat config.yaml | ccyq .a.b            # Read from standard input`
}
