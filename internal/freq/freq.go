// Package freq parses frequency literals into exact rationals.
//
// The grammar accepts plain integers ("1000"), decimal fractions
// ("1000.31"), explicit rationals ("123431/100"), an integral part
// followed by a fraction separated by a single space or underscore
// ("10 1/7", "10_1/7"), and a unit suffix "k" (x1000) or "M" (x1000000)
// applied once to the whole value. Anything else is rejected.
package freq

import (
	"errors"

	"github.com/agbru/gpsdocfg/internal/rational"
)

// ErrInvalidLiteral indicates a frequency literal that does not match the
// accepted grammar.
var ErrInvalidLiteral = errors.New("freq: invalid frequency literal")

const (
	unitKilo = 1_000
	unitMega = 1_000_000
	// maxAccum guards digit accumulation: one more digit on anything
	// larger would overflow int64.
	maxAccum = (1<<63 - 1) / 10
)

// Parse converts a frequency literal to an exact rational.
//
// The scanner mirrors the shape of the literal: num/den accumulate the
// fraction being read, integral holds a completed whole part once a
// separator is seen, and unit records a suffix multiplier. Each modifier
// (decimal point, separator, slash, suffix) is allowed at most once, and
// a decimal point cannot follow a separator or slash.
func Parse(s string) (rational.Rat, error) {
	var (
		num      int64
		den      int64 = 1
		integral int64
		unit     int64 = 1

		decimal, blank, frac, digits bool
	)

	for _, r := range s {
		switch {
		case r == '.':
			if decimal || blank || frac {
				return rational.Rat{}, ErrInvalidLiteral
			}
			decimal = true
		case r == ' ' || r == '_':
			if decimal || blank || frac {
				return rational.Rat{}, ErrInvalidLiteral
			}
			blank = true
			integral = num
			num = 0
		case r == '/':
			if decimal || frac {
				return rational.Rat{}, ErrInvalidLiteral
			}
			frac = true
			den = 0
		case r == 'k':
			if unit != 1 {
				return rational.Rat{}, ErrInvalidLiteral
			}
			unit = unitKilo
		case r == 'M':
			if unit != 1 {
				return rational.Rat{}, ErrInvalidLiteral
			}
			unit = unitMega
		case r >= '0' && r <= '9':
			digits = true
			dig := int64(r - '0')
			if frac {
				if den > maxAccum {
					return rational.Rat{}, ErrInvalidLiteral
				}
				den = den*10 + dig
			} else {
				if num > maxAccum || (decimal && den > maxAccum) {
					return rational.Rat{}, ErrInvalidLiteral
				}
				num = num*10 + dig
				if decimal {
					den *= 10
				}
			}
		default:
			return rational.Rat{}, ErrInvalidLiteral
		}
	}

	if !digits || den == 0 {
		return rational.Rat{}, ErrInvalidLiteral
	}

	value, err := rational.New(num, den)
	if err != nil {
		return rational.Rat{}, ErrInvalidLiteral
	}
	value, err = value.Add(rational.FromInt(integral))
	if err != nil {
		return rational.Rat{}, ErrInvalidLiteral
	}
	value, err = value.MulInt(unit)
	if err != nil {
		return rational.Rat{}, ErrInvalidLiteral
	}
	return value, nil
}
