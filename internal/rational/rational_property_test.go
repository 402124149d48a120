package rational

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// bigRat converts a Rat to math/big for use as an oracle.
func bigRat(x Rat) *big.Rat {
	return big.NewRat(x.Num(), x.Den())
}

// genRat generates rationals with operands small enough that no single
// arithmetic step can overflow, so the oracle comparison is meaningful.
func genRat() gopter.Gen {
	return gopter.CombineGens(
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
		gen.Int64Range(1, 1_000_000),
	).Map(func(v []interface{}) Rat {
		return MustNew(v[0].(int64), v[1].(int64))
	})
}

// TestArithmeticAgainstBigRat_PropertyBased cross-checks the checked int64
// arithmetic against math/big's arbitrary-precision rationals. Within the
// generated operand range no operation may overflow, so any divergence is
// an arithmetic bug, not a range effect.
func TestArithmeticAgainstBigRat_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Add matches big.Rat", prop.ForAll(
		func(a, b Rat) bool {
			got, err := a.Add(b)
			if err != nil {
				return false
			}
			want := new(big.Rat).Add(bigRat(a), bigRat(b))
			return bigRat(got).Cmp(want) == 0
		},
		genRat(), genRat(),
	))

	properties.Property("Mul matches big.Rat", prop.ForAll(
		func(a, b Rat) bool {
			got, err := a.Mul(b)
			if err != nil {
				return false
			}
			want := new(big.Rat).Mul(bigRat(a), bigRat(b))
			return bigRat(got).Cmp(want) == 0
		},
		genRat(), genRat(),
	))

	properties.Property("Cmp matches big.Rat", prop.ForAll(
		func(a, b Rat) bool {
			return a.Cmp(b) == bigRat(a).Cmp(bigRat(b))
		},
		genRat(), genRat(),
	))

	properties.Property("Div then Mul restores the dividend", prop.ForAll(
		func(a, b Rat) bool {
			if b.IsZero() {
				return true
			}
			q, err := a.Div(b)
			if err != nil {
				return false
			}
			back, err := q.Mul(b)
			if err != nil {
				return false
			}
			return back == a
		},
		genRat(), genRat(),
	))

	properties.TestingRun(t)
}

// TestReductionCanonical_PropertyBased verifies that construction always
// yields lowest terms with a positive denominator, the representation the
// rest of the code relies on for == comparisons and map keys.
func TestReductionCanonical_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("constructed values are canonical", prop.ForAll(
		func(num, den int64) bool {
			if den == 0 {
				return true
			}
			r, err := New(num, den)
			if err != nil {
				return false
			}
			if r.Den() <= 0 {
				return false
			}
			if r.IsZero() {
				return r.Den() == 1
			}
			return GCD(r.Num(), r.Den()) == 1
		},
		gen.Int64Range(-1_000_000_000_000, 1_000_000_000_000),
		gen.Int64Range(-1_000_000_000_000, 1_000_000_000_000),
	))

	properties.TestingRun(t)
}
