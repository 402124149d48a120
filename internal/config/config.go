// Package config provides the configuration management for the gpsdocfg
// tool. It defines the data structure for the configuration, handles the
// parsing of command-line arguments and positional frequency literals, and
// performs validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/gpsdocfg/internal/errors"
	"github.com/agbru/gpsdocfg/internal/freq"
	"github.com/agbru/gpsdocfg/internal/rational"
	"github.com/agbru/gpsdocfg/internal/solver"
)

const (
	// EnvPrefix is the prefix for all environment variables used by gpsdocfg.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "GPSDOCFG_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultTimeout bounds the search duration; 0 disables the bound.
	// --all and --best can enumerate millions of candidates, so scripted
	// callers usually want a ceiling.
	DefaultTimeout time.Duration = 0
)

// AppConfig aggregates the tool's configuration parameters, parsed from
// command-line flags and positional arguments. It encapsulates all
// settings that control one solver run.
type AppConfig struct {
	// F1 is the first target output frequency.
	F1 rational.Rat
	// F2 is the second target output frequency. When only one frequency is
	// given on the command line both outputs use the same value.
	F2 rational.Rat
	// Mode selects the search stopping policy (any/good/best/all).
	Mode solver.Mode
	// Limits are the hardware boundaries the search must respect.
	Limits solver.Limits
	// Verbose, if true, prints derived frequencies (f3, fOSC, f1, f2)
	// alongside each solution.
	Verbose bool
	// Cmdline, if true, prints each solution as a flag string on stdout,
	// suitable for passing to the device programming tool.
	Cmdline bool
	// JSON, if true, prints each solution as a JSON object on stdout.
	JSON bool
	// Quiet suppresses the progress spinner and informational messages.
	Quiet bool
	// NoColor disables spinner coloring (also respects NO_COLOR).
	NoColor bool
	// Timeout bounds the search duration; 0 means no bound.
	Timeout time.Duration
}

// Validate checks the semantic consistency of the configuration. It
// ensures the target frequencies are positive and the limit overrides
// describe non-empty ranges.
//
// Returns:
//   - error: An error of type InputError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	if c.F1.Sign() <= 0 {
		return apperrors.NewInputError("frequency 1 must be positive, got %s", c.F1)
	}
	if c.F2.Sign() <= 0 {
		return apperrors.NewInputError("frequency 2 must be positive, got %s", c.F2)
	}
	if c.Timeout < 0 {
		return apperrors.NewInputError("timeout cannot be negative: %s", c.Timeout)
	}
	l := c.Limits
	if l.VCOLo <= 0 || l.VCOHi < l.VCOLo {
		return apperrors.NewInputError("invalid VCO range [%d, %d]", l.VCOLo, l.VCOHi)
	}
	if l.F3Lo <= 0 || l.F3Hi < l.F3Lo {
		return apperrors.NewInputError("invalid f3 range [%d, %d]", l.F3Lo, l.F3Hi)
	}
	if l.GPSHi <= 0 {
		return apperrors.NewInputError("GPS input ceiling must be positive: %d", l.GPSHi)
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// parses the positional frequency literals, applies environment variable
// overrides, and validates the result.
//
// The function is designed to be testable by allowing the input arguments
// and output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing, literal parsing or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{Limits: solver.DefaultLimits}
	var findAll, findAny, findBest bool
	fs.BoolVar(&findAll, "all", false, "Find all possible solutions (may be slow).")
	fs.BoolVar(&findAny, "any", false, "Find any possible solution.")
	fs.BoolVar(&findBest, "best", false, "Find the best possible solution (may be slow).")
	fs.BoolVar(&config.Verbose, "v", false, "Print derived frequencies with each solution.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.Cmdline, "cmdline", false, "Print command line config on stdout.")
	fs.BoolVar(&config.JSON, "json", false, "Print solutions as JSON objects on stdout.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - no spinner or informational messages.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable spinner coloring (also respects NO_COLOR env var).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum search duration (0 for unbounded).")
	fs.Int64Var(&config.Limits.VCOLo, "vco-lo", solver.DefaultLimits.VCOLo, "Lower VCO frequency bound in Hz.")
	fs.Int64Var(&config.Limits.VCOHi, "vco-hi", solver.DefaultLimits.VCOHi, "Upper VCO frequency bound in Hz.")
	fs.Int64Var(&config.Limits.F3Lo, "f3-lo", solver.DefaultLimits.F3Lo, "Lower phase detector frequency bound in Hz.")
	fs.Int64Var(&config.Limits.F3Hi, "f3-hi", solver.DefaultLimits.F3Hi, "Upper phase detector frequency bound in Hz.")
	fs.Int64Var(&config.Limits.GPSHi, "gps-hi", solver.DefaultLimits.GPSHi, "Maximum GPS reference input frequency in Hz.")

	setCustomUsage(fs, programName)

	// The standard flag package stops at the first positional argument,
	// but options may follow the frequencies ("1000.31 2345.61 --best").
	// Re-parse after collecting each positional so flags and positionals
	// can be interleaved.
	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return AppConfig{}, err
			}
			return AppConfig{}, apperrors.NewInputError("%v", err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	// Apply environment variable overrides for flags not explicitly set.
	applyEnvOverrides(&config, fs)

	modeCount := 0
	for _, set := range []bool{findAll, findAny, findBest} {
		if set {
			modeCount++
		}
	}
	if modeCount > 1 {
		return AppConfig{}, usageError(fs, errorWriter,
			apperrors.NewInputError("only one of --any, --best, --all can be specified"))
	}
	switch {
	case findAll:
		config.Mode = solver.FindAll
	case findAny:
		config.Mode = solver.FindAny
	case findBest:
		config.Mode = solver.FindBest
	default:
		config.Mode = solver.FindGood
	}

	if config.Cmdline && config.JSON {
		return AppConfig{}, usageError(fs, errorWriter,
			apperrors.NewInputError("only one of --cmdline, --json can be specified"))
	}

	if len(positional) == 0 {
		return AppConfig{}, usageError(fs, errorWriter,
			apperrors.NewInputError("at least one frequency must be specified"))
	}
	if len(positional) > 2 {
		return AppConfig{}, usageError(fs, errorWriter,
			apperrors.NewInputError("too many arguments: %v", positional[2:]))
	}

	var err error
	config.F1, err = freq.Parse(positional[0])
	if err != nil {
		return AppConfig{}, usageError(fs, errorWriter,
			apperrors.NewInputError("frequency 1: cannot parse %q", positional[0]))
	}
	config.F2 = config.F1
	if len(positional) == 2 {
		config.F2, err = freq.Parse(positional[1])
		if err != nil {
			return AppConfig{}, usageError(fs, errorWriter,
				apperrors.NewInputError("frequency 2: cannot parse %q", positional[1]))
		}
	}

	if err := config.Validate(); err != nil {
		return AppConfig{}, usageError(fs, errorWriter, err)
	}
	return config, nil
}

// usageError reports a configuration error together with the usage text.
func usageError(fs *flag.FlagSet, errorWriter io.Writer, err error) error {
	fmt.Fprintln(errorWriter, "ERROR:", err)
	fs.Usage()
	var inputErr apperrors.InputError
	if errors.As(err, &inputErr) {
		return err
	}
	return apperrors.NewInputError("invalid configuration: %v", err)
}
