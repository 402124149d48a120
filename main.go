// Command gpsdocfg computes divider chain configurations for the Si53xx
// clock generator used in GPS disciplined oscillators. Given one or two
// target output frequencies it searches the divider space for register
// settings that reproduce them exactly, preferring solutions with a high
// phase detector comparison frequency.
package main

import (
	"context"
	"os"

	"github.com/agbru/gpsdocfg/internal/app"
	apperrors "github.com/agbru/gpsdocfg/internal/errors"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) > 1 && app.HasVersionFlag(args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	a, err := app.New(args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		// ParseConfig has already reported the problem on stderr.
		return apperrors.ExitErrorInput
	}

	return a.Run(context.Background())
}
