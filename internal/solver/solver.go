package solver

import (
	"context"
	"math"
	"sort"

	"github.com/agbru/gpsdocfg/internal/rational"
)

// searchStatus is the explicit early-exit signal propagated out of the
// nested candidate loops, replacing cross-scope mutable break flags.
type searchStatus int

const (
	// statusContinue keeps all loops running.
	statusContinue searchStatus = iota
	// statusStopAll terminates the secondary, q and N1_HS loops at once.
	statusStopAll
)

// search holds the per-call state of one FindSolutions invocation.
// It is function-local and single-threaded; nothing here is shared.
type search struct {
	limits Limits
	mode   Mode

	// fOSCSeen dedups oscillator frequencies: distinct (N1_HS, q) pairs can
	// coincide on fOSC and only the first, outer-most preferred pair is
	// explored.
	fOSCSeen map[rational.Rat]struct{}

	solutions []Solution

	// found tracks the best quality tier seen so far in non-All modes.
	found     Mode
	haveFound bool
}

// FindSolutions searches the divider space of the Si53xx for configurations
// that produce both target frequencies f1 and f2 simultaneously from a
// single VCO frequency, within the given hardware limits.
//
// The returned slice is ordered by descending phase-detector comparison
// frequency and may be empty; an empty result is not an error. In modes
// other than FindAll at most one solution, the best found before the mode's
// stopping rule triggered, is returned.
//
// The context is checked at the top of the VCO-multiplier loop; when it is
// cancelled the partial result is discarded and ctx.Err() is returned.
// The search is deterministic: identical inputs yield identical output.
func FindSolutions(ctx context.Context, f1, f2 rational.Rat, limits Limits, mode Mode) ([]Solution, error) {
	if f1.Sign() <= 0 || f2.Sign() <= 0 {
		return nil, ErrNonPositiveFrequency
	}

	s := &search{
		limits:   limits,
		mode:     mode,
		fOSCSeen: make(map[rational.Rat]struct{}),
	}
	if err := s.run(ctx, f1, f2); err != nil {
		return nil, err
	}

	if len(s.solutions) > 1 {
		sort.SliceStable(s.solutions, func(i, j int) bool {
			return Less(s.solutions[i], s.solutions[j])
		})
	}

	return s.solutions, nil
}

// run executes the three-level divisor search described in the package
// documentation: the common frequency grid, the (N1_HS, q) oscillator
// candidates, and per-oscillator secondary divider candidates.
func (s *search) run(ctx context.Context, f1, f2 rational.Rat) error {
	// Both outputs are fOSC / (N1_HS * NCn_LS), so fOSC must be a common
	// multiple of both targets: start from their least common multiple.
	fLCM, err := rational.Lcm(f1, f2)
	if err != nil {
		return err
	}

	baseDiv1, err := intQuotient(fLCM, f1)
	if err != nil {
		return err
	}
	baseDiv2, err := intQuotient(fLCM, f2)
	if err != nil {
		return err
	}

	// NCn_LS must be even. The datasheet nominally allows a value of 1, but
	// writing 1 to the reference clock does not work in CMOS mode, an
	// undocumented hardware limitation (simontheu/lb-gps-linux issue #4),
	// so odd base divisors force a doubled grid.
	if baseDiv1%2 != 0 || baseDiv2%2 != 0 {
		fLCM, err = fLCM.MulInt(2)
		if err != nil {
			return err
		}
		baseDiv1 *= 2
		baseDiv2 *= 2
	}

	maxDiv := baseDiv1
	if baseDiv2 > maxDiv {
		maxDiv = baseDiv2
	}
	// Largest multiplier q such that q * maxDiv stays under the low-speed
	// divider ceiling.
	qMax := NCnLSMax / maxDiv

	for n1HS := n1HSMax; n1HS >= n1HSMin; n1HS-- {
		// fN1 is the frequency ahead of the high-speed divider for one grid
		// step: fOSC = q * fN1.
		fN1, err := fLCM.MulInt(n1HS)
		if err != nil {
			return err
		}

		qLo, qHi, err := s.multiplierBounds(fN1, qMax)
		if err != nil {
			return err
		}

		for q := qLo; q <= qHi; q++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			nc1LS := q * baseDiv1
			nc2LS := q * baseDiv2
			if !inNCnLSRange(nc1LS) || !inNCnLSRange(nc2LS) {
				return ErrDividerRange
			}

			fOSC, err := fN1.MulInt(q)
			if err != nil {
				return err
			}
			if _, dup := s.fOSCSeen[fOSC]; dup {
				continue
			}
			s.fOSCSeen[fOSC] = struct{}{}

			status, err := s.scanSecondary(fOSC, n1HS, nc1LS, nc2LS)
			if err != nil {
				return err
			}
			if status == statusStopAll {
				return nil
			}
		}
	}

	return nil
}

// multiplierBounds derives the valid range for the VCO multiplier q from
// the oscillator limits: qLo = ceil(VCO_LO / fN1), qHi = min(qMax,
// floor(VCO_HI / fN1)). Bounds are computed exactly on the reduced
// rational quotients, not through floating point.
func (s *search) multiplierBounds(fN1 rational.Rat, qMax int64) (int64, int64, error) {
	lo, err := rational.FromInt(s.limits.VCOLo).Div(fN1)
	if err != nil {
		return 0, 0, err
	}
	hi, err := rational.FromInt(s.limits.VCOHi).Div(fN1)
	if err != nil {
		return 0, 0, err
	}

	qLo := ceilDiv(lo.Num(), lo.Den())
	if qLo < 1 {
		qLo = 1
	}
	qHi := hi.Num() / hi.Den()
	if qHi > qMax {
		qHi = qMax
	}
	return qLo, qHi, nil
}

// n2Candidate pairs a secondary high-speed divider value with its ranking
// key: the denominator of fOSC divided by the candidate.
type n2Candidate struct {
	n2HS int64
	key  int64
}

// scanSecondary tries every secondary high-speed divider against a fresh
// oscillator frequency and records the admissible solutions. It returns
// statusStopAll once the best tier found satisfies the search mode.
func (s *search) scanSecondary(fOSC rational.Rat, n1HS, nc1LS, nc2LS int64) (searchStatus, error) {
	// Enumerate N2_HS candidates in descending order (larger high-speed
	// dividers draw less power), then rank them by how small a denominator
	// fOSC/N2_HS leaves. A smaller denominator means a smaller reference
	// divider N31, which keeps the comparison frequency f3 high.
	cands := make([]n2Candidate, 0, n1HSMax-n1HSMin+1)
	for n := n1HSMax; n >= n1HSMin; n-- {
		r, err := fOSC.DivInt(n)
		if err != nil {
			return statusContinue, err
		}
		cands = append(cands, n2Candidate{n2HS: n, key: r.Den()})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].key != cands[j].key {
			return cands[i].key < cands[j].key
		}
		// Explicit tie-break: keep the original descending divider order.
		return cands[i].n2HS > cands[j].n2HS
	})

	for _, cand := range cands {
		f3N2, err := fOSC.DivInt(2 * cand.n2HS)
		if err != nil {
			return statusContinue, err
		}
		n31 := f3N2.Den()
		if n31 > N3Max {
			continue
		}

		// Upper limit for the GPS reference frequency: the receiver's own
		// ceiling, or the point where f3 would exceed its range.
		gpsHi := s.limits.GPSHi
		if m := satMul(n31, s.limits.F3Hi); m < gpsHi {
			gpsHi = m
		}

		n2LS := int64(2)
		var fGPS int64
		if f3N2.Num() <= gpsHi {
			fGPS = f3N2.Num()
		} else {
			// The numerator itself is too fast for the GPS input; feed the
			// largest admissible factor in and absorb the rest in N2_LS.
			fGPS = largestFactor(f3N2.Num(), gpsHi)
			n2LS *= f3N2.Num() / fGPS
		}

		if n2LS > N2LSMax || fGPS < satMul(s.limits.F3Lo, n31) {
			continue
		}

		s.accept(Solution{
			FGPS:  fGPS,
			N31:   n31,
			N1HS:  n1HS,
			NC1LS: nc1LS,
			NC2LS: nc2LS,
			N2HS:  cand.n2HS,
			N2LS:  n2LS,
		})

		if s.mode != FindAll {
			tier := classify(fGPS, n31, s.limits.F3Hi)
			if !s.haveFound || tier > s.found {
				s.found = tier
				s.haveFound = true
			}
			if s.found >= s.mode {
				return statusStopAll, nil
			}
		}
	}

	return statusContinue, nil
}

// accept appends a new solution, or in single-incumbent modes replaces the
// incumbent when the new solution has a higher comparison frequency.
func (s *search) accept(sol Solution) {
	if s.haveFound && s.mode != FindAll {
		if Less(sol, s.solutions[0]) {
			s.solutions[0] = sol
		}
		return
	}
	s.solutions = append(s.solutions, sol)
}

// classify grades a solution by how close its comparison frequency comes
// to the maximum the hardware allows for its reference divider.
func classify(fGPS, n31, f3Hi int64) Mode {
	f3Reachable := satMul(n31, f3Hi)
	switch {
	case f3Reachable == fGPS:
		return FindBest
	case f3Reachable <= satMul(2, fGPS):
		return FindGood
	default:
		return FindAny
	}
}

// intQuotient returns a/b, which must come out integral; the common-grid
// construction guarantees it does for fLCM over either target frequency.
func intQuotient(a, b rational.Rat) (int64, error) {
	q, err := a.Div(b)
	if err != nil {
		return 0, err
	}
	return q.Int64()
}

// inNCnLSRange reports whether n is a valid low-speed divider value:
// even and at most 2^20. See the erratum note in run for why 1 is not
// admitted.
func inNCnLSRange(n int64) bool {
	return n <= NCnLSMax && n%2 == 0
}

// ceilDiv returns ceil(num/den) for positive den.
func ceilDiv(num, den int64) int64 {
	if num <= 0 {
		return num / den
	}
	return (num + den - 1) / den
}

// satMul returns a*b, saturating at MaxInt64 instead of wrapping. Both
// operands must be non-negative. Saturation only matters when limits are
// overridden with extreme values; with hardware defaults every product
// fits comfortably.
func satMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}
