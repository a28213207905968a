package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/xrdcollect/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("xrdcollect", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
xrdcollect - plan diffraction data collection over experiment setups and sample points.

Usage:
  xrdcollect [options] [PLAN_PATH...]

Arguments:
  PLAN_PATH
    Path to a single .hcl plan file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	planFlag := flagSet.String("plan", "", "Path to the plan file or directory.")
	pFlag := flagSet.String("p", "", "Path to the plan file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var paths []string
	if *planFlag != "" {
		paths = append(paths, *planFlag)
	}
	if *pFlag != "" {
		paths = append(paths, *pFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Plan paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No plan path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		PlanPaths: paths,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
