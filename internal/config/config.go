// Package config defines the application configuration, parsed from
// command-line flags with environment variable fallbacks.
package config

import (
	"flag"
	"io"
	"strings"

	apperrors "github.com/agbru/ratcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "RATCALC_"

// Default values for configuration parameters.
const (
	DefaultOutputFile = "output.txt"
	DefaultLogFormat  = LogFormatConsole
)

// Supported log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// OutputFile is the path the demonstration report is written to.
	OutputFile string
	// Quiet suppresses the confirmation printed after writing the report.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// Stdout writes the report to standard output instead of a file.
	Stdout bool
	// LogFormat selects the log encoding: "console" or "json".
	LogFormat string
}

// Validate checks the semantic validity of the configuration.
//
// Returns:
//   - error: An error if the configuration is invalid, nil otherwise.
func (c AppConfig) Validate() error {
	if !c.Stdout && strings.TrimSpace(c.OutputFile) == "" {
		return apperrors.ValidationError{Field: "output", Message: "must not be empty"}
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return apperrors.NewConfigError("unknown log format %q (expected %q or %q)", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not given on the command line, and
// validates the result.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments without the program name.
//   - errorWriter: The writer for usage and parse errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, or a parse/validation error.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.OutputFile, "output", DefaultOutputFile, "Path of the report file.")
	fs.StringVar(&config.OutputFile, "o", DefaultOutputFile, "Path of the report file (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Do not print a confirmation after writing the report.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose mode (shorthand).")
	fs.BoolVar(&config.Stdout, "stdout", false, "Write the report to standard output instead of a file.")
	fs.StringVar(&config.LogFormat, "log-format", DefaultLogFormat, "Log encoding: console or json.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}
