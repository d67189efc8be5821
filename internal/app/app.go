package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/ratcalc/internal/config"
	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/logging"
	"github.com/agbru/ratcalc/internal/report"
	"github.com/rs/zerolog"
)

// Application represents the ratcalc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// Configuration errors other than a help request are reported on errWriter.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "ratcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		var ce apperrors.ConfigError
		var ve apperrors.ValidationError
		if errors.As(err, &ce) || errors.As(err, &ve) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = newLogger(cfg, errWriter)
	}
	return app, nil
}

func newLogger(cfg config.AppConfig, w io.Writer) logging.Logger {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	if cfg.LogFormat == config.LogFormatJSON {
		return logging.NewLogger(w, "ratcalc").WithLevel(level)
	}
	return logging.NewConsoleLogger(w, "ratcalc").WithLevel(level)
}

// Run writes the demonstration report and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if err := ctx.Err(); err != nil {
		a.Logger.Error("run aborted", err)
		return apperrors.ExitErrorGeneric
	}

	a.Logger.Debug("configuration loaded",
		logging.String("output", a.Config.OutputFile),
		logging.String("log_format", a.Config.LogFormat),
		logging.String("version", Version),
	)

	if a.Config.Stdout {
		sections, err := report.Build()
		if err == nil {
			err = report.Render(out, sections)
		}
		if err != nil {
			a.Logger.Error("failed to render report", err)
			return apperrors.ExitErrorReport
		}
		a.Logger.Debug("report rendered", logging.Int("sections", len(sections)))
		return apperrors.ExitSuccess
	}
	return a.runReport(out)
}

// runReport writes the report file and prints a confirmation unless quiet.
func (a *Application) runReport(out io.Writer) int {
	path := a.Config.OutputFile
	start := time.Now()

	if err := report.WriteFile(path); err != nil {
		err = apperrors.ReportError{Path: path, Cause: err}
		a.Logger.Error("failed to write report", err, logging.String("path", path))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorReport
	}

	a.Logger.Info("report written",
		logging.String("path", path),
		logging.Float64("elapsed_ms", float64(time.Since(start).Microseconds())/1000),
	)
	if !a.Config.Quiet {
		fmt.Fprintf(out, "Results written to %s\n", path)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
