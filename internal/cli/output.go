// Package cli provides output rendering and terminal progress for the
// gpsdocfg tool. Solutions can be rendered human-readable, as a flag
// string ready for the device programming tool, or as JSON objects.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/agbru/gpsdocfg/internal/solver"
)

// OutputOptions selects which renderings of the solution list are emitted
// and where. Machine-readable formats (cmdline, JSON) go exclusively to
// stdout; everything else goes to stderr.
type OutputOptions struct {
	// Verbose additionally prints the derived frequencies f3, fOSC, f1, f2.
	Verbose bool
	// Cmdline prints each solution as a flag string.
	Cmdline bool
	// JSON prints each solution as a JSON object.
	JSON bool
}

// solutionJSON fixes the JSON field order to match the established output
// contract of the tool.
type solutionJSON struct {
	FGPS  int64 `json:"fGPS"`
	N31   int64 `json:"N31"`
	N2LS  int64 `json:"N2_LS"`
	N2HS  int64 `json:"N2_HS"`
	N1HS  int64 `json:"N1_HS"`
	NC1LS int64 `json:"NC1_LS"`
	NC2LS int64 `json:"NC2_LS"`
}

// WriteHuman renders a solution in the human-readable form
// "fGPS = ..., N31 = ..., ...". With verbose set, the derived frequencies
// are appended in brackets as floating-point approximations; the exact
// values live in the divider fields, the floats are display only.
func WriteHuman(w io.Writer, s solver.Solution, verbose bool) error {
	_, err := fmt.Fprintf(w, "fGPS = %d, N31 = %d, N1_HS = %d, NC1_LS = %d, NC2_LS = %d, N2_HS = %d, N2_LS = %d",
		s.FGPS, s.N31, s.N1HS, s.NC1LS, s.NC2LS, s.N2HS, s.N2LS)
	if err != nil {
		return err
	}
	if verbose {
		fOSC, err := s.FOSC()
		if err != nil {
			return err
		}
		f1, err := s.F1()
		if err != nil {
			return err
		}
		f2, err := s.F2()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, " [f3 = %s, fOSC = %s, f1 = %s, f2 = %s]",
			formatFloat(s.F3().Float64()), formatFloat(fOSC.Float64()),
			formatFloat(f1.Float64()), formatFloat(f2.Float64()))
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

// WriteCmdline renders a solution as the flag string consumed by
// lb-gps-linux and compatible programming tools.
func WriteCmdline(w io.Writer, s solver.Solution) error {
	_, err := fmt.Fprintf(w, "--gps %d --n31 %d --n2_ls %d --n2_hs %d --n1_hs %d --nc1_ls %d --nc2_ls %d\n",
		s.FGPS, s.N31, s.N2LS, s.N2HS, s.N1HS, s.NC1LS, s.NC2LS)
	return err
}

// WriteJSON renders a solution as a single-line JSON object.
func WriteJSON(w io.Writer, s solver.Solution) error {
	return json.NewEncoder(w).Encode(solutionJSON{
		FGPS:  s.FGPS,
		N31:   s.N31,
		N2LS:  s.N2LS,
		N2HS:  s.N2HS,
		N1HS:  s.N1HS,
		NC1LS: s.NC1LS,
		NC2LS: s.NC2LS,
	})
}

// WriteSolutions emits the full solution list under the routing rules of
// the tool: human-readable output to errOut unless a machine format was
// requested without verbose, machine formats exclusively to out.
func WriteSolutions(out, errOut io.Writer, solutions []solver.Solution, opts OutputOptions) error {
	for _, s := range solutions {
		if opts.Verbose || (!opts.Cmdline && !opts.JSON) {
			if err := WriteHuman(errOut, s, opts.Verbose); err != nil {
				return err
			}
		}
		if opts.Cmdline {
			if err := WriteCmdline(out, s); err != nil {
				return err
			}
		}
		if opts.JSON {
			if err := WriteJSON(out, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatFloat renders a float with 6 significant digits and trailing
// zeros stripped, the default stream formatting the tool has always
// printed. These values are display-only approximations.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
