// Package rational provides exact fixed-precision rational arithmetic for
// frequency calculations. Values are reduced fractions over int64 with the
// sign carried by the numerator and a strictly positive denominator.
//
// All arithmetic is overflow-checked: operations whose intermediate products
// would leave the int64 domain return ErrNumOverflow or ErrDenOverflow
// instead of wrapping. Frequencies up to ~10 GHz combined with divider
// values up to 2^20 push products close to the 63-bit boundary, so the
// checks are load-bearing, not defensive decoration.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Sentinel errors returned by constructors and arithmetic operations.
var (
	// ErrZeroDenominator indicates a fraction was constructed with denominator 0.
	ErrZeroDenominator = errors.New("rational: denominator is zero")

	// ErrDivByZero indicates a division by a zero-valued rational.
	ErrDivByZero = errors.New("rational: division by zero")

	// ErrNumOverflow indicates the numerator of a result does not fit in int64.
	ErrNumOverflow = errors.New("rational: numerator overflow")

	// ErrDenOverflow indicates the denominator of a result does not fit in int64.
	ErrDenOverflow = errors.New("rational: denominator overflow")

	// ErrNotInteger indicates an integral value was required but the rational
	// has a denominator other than 1.
	ErrNotInteger = errors.New("rational: value is not an integer")
)

// Rat is a rational number with 64-bit numerator and denominator.
//
// The denominator is stored biased by 1 so that the zero value of the type
// is a valid representation of 0 (0/1). Values are always kept in lowest
// terms with canonical sign, so two Rats denoting the same number compare
// equal with == and hash identically as map keys.
type Rat struct {
	num int64
	den int64 // actual denominator minus 1
}

// New returns the reduced rational num/den.
// A negative denominator is folded into the numerator's sign.
func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrZeroDenominator
	}
	if den < 0 {
		if den == math.MinInt64 {
			return Rat{}, ErrDenOverflow
		}
		if num == math.MinInt64 {
			return Rat{}, ErrNumOverflow
		}
		num, den = -num, -den
	}
	if num == math.MinInt64 {
		// abs(MinInt64) is not representable, which breaks reduction.
		return Rat{}, ErrNumOverflow
	}
	return reduce(num, den), nil
}

// MustNew is like New but panics on error. Intended for constants and tests.
func MustNew(num, den int64) Rat {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt returns the rational n/1.
func FromInt(n int64) Rat {
	return Rat{num: n}
}

// Num returns the numerator of x. The numerator carries the sign.
func (x Rat) Num() int64 { return x.num }

// Den returns the denominator of x. It is always positive.
func (x Rat) Den() int64 { return x.den + 1 }

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x Rat) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether x equals 0.
func (x Rat) IsZero() bool { return x.num == 0 }

// IsInt reports whether x is an integral value.
func (x Rat) IsInt() bool { return x.Den() == 1 }

// Int64 returns x as an int64, or ErrNotInteger if x is not integral.
func (x Rat) Int64() (int64, error) {
	if !x.IsInt() {
		return 0, ErrNotInteger
	}
	return x.num, nil
}

// Float64 returns the closest floating-point approximation of x.
// It is intended for display and presentation ordering only; exactness-
// sensitive comparisons must use Cmp.
func (x Rat) Float64() float64 {
	return float64(x.num) / float64(x.Den())
}

// String returns x formatted as "num/den".
func (x Rat) String() string {
	return fmt.Sprintf("%d/%d", x.num, x.Den())
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
// The comparison is exact; cross products are evaluated with 128-bit
// intermediates so it cannot overflow.
func (x Rat) Cmp(y Rat) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	if sx == 0 {
		return 0
	}
	h1, l1 := bits.Mul64(absU(x.num), uint64(y.Den()))
	h2, l2 := bits.Mul64(absU(y.num), uint64(x.Den()))
	c := 0
	switch {
	case h1 > h2 || (h1 == h2 && l1 > l2):
		c = 1
	case h1 < h2 || (h1 == h2 && l1 < l2):
		c = -1
	}
	if sx < 0 {
		c = -c
	}
	return c
}

// Add returns x + y.
func (x Rat) Add(y Rat) (Rat, error) {
	den, err := LCM64(x.Den(), y.Den())
	if err != nil {
		return Rat{}, ErrDenOverflow
	}
	a, err := mulInt64(x.num, den/x.Den())
	if err != nil {
		return Rat{}, err
	}
	b, err := mulInt64(y.num, den/y.Den())
	if err != nil {
		return Rat{}, err
	}
	num, err := addInt64(a, b)
	if err != nil {
		return Rat{}, err
	}
	return New(num, den)
}

// Mul returns x * y.
// Operands are cross-reduced before multiplying, which keeps intermediate
// magnitudes as small as the mathematics allows (same trick as rat128).
func (x Rat) Mul(y Rat) (Rat, error) {
	sgn := int64(x.Sign() * y.Sign())
	if sgn == 0 {
		return Rat{}, nil
	}
	mx, nx := abs64(x.num), x.Den()
	my, ny := abs64(y.num), y.Den()
	if d := GCD(mx, ny); d != 1 {
		mx, ny = mx/d, ny/d
	}
	if d := GCD(my, nx); d != 1 {
		my, nx = my/d, nx/d
	}
	num, err := mulInt64(mx, my)
	if err != nil {
		return Rat{}, ErrNumOverflow
	}
	den, err := mulInt64(nx, ny)
	if err != nil {
		return Rat{}, ErrDenOverflow
	}
	return New(sgn*num, den)
}

// Div returns x / y, or ErrDivByZero if y is zero.
func (x Rat) Div(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, ErrDivByZero
	}
	inv, err := New(int64(y.Sign())*y.Den(), abs64(y.num))
	if err != nil {
		return Rat{}, err
	}
	return x.Mul(inv)
}

// MulInt returns x * k.
func (x Rat) MulInt(k int64) (Rat, error) {
	return x.Mul(FromInt(k))
}

// DivInt returns x / k, or ErrDivByZero if k is zero.
func (x Rat) DivInt(k int64) (Rat, error) {
	return x.Div(FromInt(k))
}

// Lcm returns the least common multiple of a and b: the smallest positive
// rational that both a and b divide into an integral number of times.
// The denominator is lcm of the denominators, the numerator is the lcm of
// the numerators scaled onto that common denominator.
func Lcm(a, b Rat) (Rat, error) {
	den, err := LCM64(a.Den(), b.Den())
	if err != nil {
		return Rat{}, ErrDenOverflow
	}
	na, err := mulInt64(a.num, den/a.Den())
	if err != nil {
		return Rat{}, err
	}
	nb, err := mulInt64(b.num, den/b.Den())
	if err != nil {
		return Rat{}, err
	}
	num, err := LCM64(na, nb)
	if err != nil {
		return Rat{}, err
	}
	return New(num, den)
}

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm, treating both as non-negative magnitudes. GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM64 returns the least common multiple of a and b, or ErrNumOverflow
// if the result does not fit in int64. LCM64 of anything with 0 is 0.
func LCM64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	g := GCD(a, b)
	return mulInt64(abs64(a)/g, abs64(b))
}

// reduce returns num/den in lowest terms. Both operands must already be
// canonical (den > 0, num != MinInt64).
func reduce(num, den int64) Rat {
	if num == 0 {
		return Rat{}
	}
	g := GCD(num, den)
	return Rat{num: num / g, den: den/g - 1}
}

// mulInt64 returns a*b with an explicit overflow check.
func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU(a), absU(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrNumOverflow
	}
	if neg {
		return -int64(lo), nil
	}
	return int64(lo), nil
}

// addInt64 returns a+b with an explicit overflow check.
func addInt64(a, b int64) (int64, error) {
	sum := a + b
	if (a > 0 && b > 0 && sum <= 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, ErrNumOverflow
	}
	return sum, nil
}

// abs64 returns |x|. The caller must guarantee x != MinInt64.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// absU returns |x| as a uint64, valid for the full int64 range.
func absU(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}
