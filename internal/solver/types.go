// Package solver computes divider-chain configurations for the Si53xx
// dual-output clock generator used in GPS-disciplined oscillators.
//
// Given two target output frequencies it searches the discrete space of
// valid integer divider settings (VCO multiplier, high-speed dividers,
// even low-speed dividers, phase-detector reference divider) and returns
// the configurations that reproduce both targets exactly. All frequency
// arithmetic is exact rational arithmetic; floating point is used only to
// order solutions for presentation.
package solver

import (
	"errors"
	"fmt"

	"github.com/agbru/gpsdocfg/internal/rational"
)

// Hardware ceilings of the Si53xx divider chain.
const (
	// NCnLSMax is the ceiling for the per-output low-speed dividers NC1_LS/NC2_LS.
	NCnLSMax int64 = 1 << 20
	// N2LSMax is the ceiling for the secondary low-speed divider N2_LS.
	N2LSMax int64 = 1 << 20
	// N3Max is the ceiling for the phase-detector reference divider N31.
	N3Max int64 = 1 << 19

	// n1HSMin and n1HSMax bound both high-speed dividers N1_HS and N2_HS.
	n1HSMin int64 = 4
	n1HSMax int64 = 11
)

// Sentinel errors returned by FindSolutions.
var (
	// ErrNonPositiveFrequency indicates a target frequency <= 0 was supplied.
	ErrNonPositiveFrequency = errors.New("solver: target frequency must be positive")

	// ErrDividerRange indicates a derived low-speed divider left its valid
	// range. This cannot happen when the common-grid construction is correct
	// and is surfaced instead of silently producing a wrong configuration.
	ErrDividerRange = errors.New("solver: derived divider out of range")
)

// Limits holds the hardware boundaries the search must respect.
// It is supplied once per search call and treated as immutable.
type Limits struct {
	// VCOLo and VCOHi bound the oscillator frequency fOSC, in Hz.
	VCOLo int64
	VCOHi int64
	// F3Lo and F3Hi bound the phase-detector comparison frequency f3, in Hz.
	F3Lo int64
	F3Hi int64
	// GPSHi is the maximum admissible GPS reference input frequency, in Hz.
	GPSHi int64
}

// DefaultLimits are the boundaries of the target hardware.
// VCO and f3 ranges: Silicon Labs Si53xx-RM Rev. 1.3, Table 26.
// GPS input ceiling: ublox MAX-M8 series data sheet.
var DefaultLimits = Limits{
	VCOLo: 4_850_000_000,
	VCOHi: 5_670_000_000,
	F3Lo:  2_000,
	F3Hi:  2_000_000,
	GPSHi: 10_000_000,
}

// Mode selects how hard the search keeps going once solutions appear.
// The values are ordered: a solution of quality tier t satisfies every
// mode m with m <= t.
type Mode int

const (
	// FindAny stops at the first admissible solution.
	FindAny Mode = iota
	// FindGood stops once a solution reaches at least half the maximum
	// attainable comparison frequency for its reference divider.
	FindGood
	// FindBest stops only when the maximum attainable comparison frequency
	// is reached exactly.
	FindBest
	// FindAll never stops early and collects every admissible solution.
	FindAll
)

// String returns the mode name as used on the command line.
func (m Mode) String() string {
	switch m {
	case FindAny:
		return "any"
	case FindGood:
		return "good"
	case FindBest:
		return "best"
	case FindAll:
		return "all"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name ("any", "good", "best", "all") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "any":
		return FindAny, nil
	case "good":
		return FindGood, nil
	case "best":
		return FindBest, nil
	case "all":
		return FindAll, nil
	default:
		return 0, fmt.Errorf("solver: unrecognized search mode %q", s)
	}
}

// Solution is one admissible divider configuration. Instances are created
// only by FindSolutions and are immutable afterwards.
type Solution struct {
	// FGPS is the GPS reference input frequency, in Hz.
	FGPS int64
	// N31 is the phase-detector reference divider. It is derived as the
	// denominator of an intermediate rational frequency, not chosen directly.
	N31 int64
	// N1HS is the primary high-speed divider (4..11).
	N1HS int64
	// NC1LS and NC2LS are the per-output low-speed dividers (even, <= 2^20).
	NC1LS int64
	NC2LS int64
	// N2HS is the secondary high-speed divider (4..11).
	N2HS int64
	// N2LS is the secondary low-speed divider (even, <= 2^20).
	N2LS int64
}

// F3 returns the phase-detector comparison frequency fGPS/N31.
func (s Solution) F3() rational.Rat {
	return rational.MustNew(s.FGPS, s.N31)
}

// FOSC returns the oscillator frequency f3 * N2_HS * N2_LS.
func (s Solution) FOSC() (rational.Rat, error) {
	f, err := s.F3().MulInt(s.N2HS)
	if err != nil {
		return rational.Rat{}, err
	}
	return f.MulInt(s.N2LS)
}

// F1 returns the first output frequency fOSC / (N1_HS * NC1_LS).
func (s Solution) F1() (rational.Rat, error) {
	return s.output(s.NC1LS)
}

// F2 returns the second output frequency fOSC / (N1_HS * NC2_LS).
func (s Solution) F2() (rational.Rat, error) {
	return s.output(s.NC2LS)
}

func (s Solution) output(ncLS int64) (rational.Rat, error) {
	fOSC, err := s.FOSC()
	if err != nil {
		return rational.Rat{}, err
	}
	f, err := fOSC.DivInt(s.N1HS)
	if err != nil {
		return rational.Rat{}, err
	}
	return f.DivInt(ncLS)
}

// Less reports whether a sorts before b: descending phase-detector
// comparison frequency f3 = fGPS/N31. Higher f3 correlates with lower
// phase noise, so the best solution sorts first. The comparison is done
// in floating point; it only affects presentation order, never whether a
// configuration is admissible.
func Less(a, b Solution) bool {
	return float64(a.FGPS)/float64(a.N31) > float64(b.FGPS)/float64(b.N31)
}
