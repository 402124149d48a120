package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/gpsdocfg/internal/cli"
	"github.com/agbru/gpsdocfg/internal/config"
	apperrors "github.com/agbru/gpsdocfg/internal/errors"
	"github.com/agbru/gpsdocfg/internal/logging"
	"github.com/agbru/gpsdocfg/internal/solver"
)

// Application represents the gpsdocfg application instance.
// It encapsulates the configuration and the writers used for the two
// output channels: machine-readable solutions on Out, everything else
// on ErrWriter.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Out is the writer for machine-readable output (typically os.Stdout).
	Out io.Writer
	// ErrWriter is the writer for human-readable output and errors
	// (typically os.Stderr).
	ErrWriter io.Writer
	// Log is the structured logger for search diagnostics.
	Log logging.Logger
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := "gpsdocfg"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Out:       os.Stdout,
		ErrWriter: errWriter,
		Log:       logging.NewDefaultLogger(errWriter),
	}, nil
}

// Run executes one solver run under the configured lifecycle (timeout
// and termination signals) and renders the result.
//
// Parameters:
//   - ctx: The parent context for the run.
//
// Returns:
//   - int: An exit code (0 solutions found, 1 none found, 2 input or
//     solver error, 130 canceled or timed out).
func (a *Application) Run(ctx context.Context) int {
	ctx, cancelFuncs := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancelFuncs.Cleanup()

	start := time.Now()
	solutions, err := a.solve(ctx)
	elapsed := time.Since(start)

	if err != nil {
		if apperrors.IsContextError(err) {
			fmt.Fprintf(a.ErrWriter, "search canceled after %s: %v\n", elapsed.Round(time.Millisecond), err)
			return apperrors.ExitErrorCanceled
		}
		solveErr := apperrors.NewSolveError(err)
		a.Log.Error("search failed", solveErr)
		fmt.Fprintln(a.ErrWriter, "ERROR:", solveErr)
		return apperrors.ExitErrorInput
	}

	a.Log.Debug("search finished",
		logging.Int("solutions", len(solutions)),
		logging.Dur("elapsed", elapsed),
		logging.String("mode", a.Config.Mode.String()))

	if len(solutions) == 0 {
		fmt.Fprintln(a.ErrWriter, "no solutions found")
		return apperrors.ExitNoSolution
	}

	opts := cli.OutputOptions{
		Verbose: a.Config.Verbose,
		Cmdline: a.Config.Cmdline,
		JSON:    a.Config.JSON,
	}
	if err := cli.WriteSolutions(a.Out, a.ErrWriter, solutions, opts); err != nil {
		fmt.Fprintln(a.ErrWriter, "ERROR:", err)
		return apperrors.ExitErrorInput
	}
	return apperrors.ExitSuccess
}

// solve runs the divider search with a progress spinner on ErrWriter.
// The spinner is suppressed in quiet mode and when stderr is not a
// terminal, so redirected or scripted runs stay free of control codes.
func (a *Application) solve(ctx context.Context) ([]solver.Solution, error) {
	var sp cli.Spinner
	if !a.Config.Quiet && isTerminal(a.ErrWriter) {
		sp = cli.StartSearchSpinner(a.ErrWriter, a.Config.Mode, a.Config.NoColor)
	}

	var solutions []solver.Solution
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		solutions, err = solver.FindSolutions(gctx, a.Config.F1, a.Config.F2, a.Config.Limits, a.Config.Mode)
		return err
	})
	err := g.Wait()

	if sp != nil {
		sp.Stop()
	}
	return solutions, err
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with
// success after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
