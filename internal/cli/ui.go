package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/gpsdocfg/internal/solver"
)

// ProgressRefreshRate is the spinner animation interval.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal
// spinner. It decouples the progress display from a specific spinner
// implementation, which keeps the search orchestration testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner constructs the concrete spinner; tests replace it to capture
// progress behavior without a terminal.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// StartSearchSpinner starts a progress spinner on out for the duration of
// a solver run and returns it; the caller stops it when the search ends.
// The --all and --best modes can take a long time over wide frequency
// grids, and the spinner is the only feedback the user gets meanwhile.
func StartSearchSpinner(out io.Writer, mode solver.Mode, noColor bool) Spinner {
	opts := []spinner.Option{spinner.WithWriter(out)}
	if !noColor {
		opts = append(opts, spinner.WithColor("cyan"))
	}
	s := newSpinner(opts...)
	s.UpdateSuffix(fmt.Sprintf(" searching (%s)...", mode))
	s.Start()
	return s
}
