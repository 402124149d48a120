package freq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/gpsdocfg/internal/rational"
)

func TestParse(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want rational.Rat
	}{
		{"1000", rational.FromInt(1000)},
		{"0", rational.Rat{}},
		{"1000.31", rational.MustNew(100031, 100)},
		{"0.5", rational.MustNew(1, 2)},
		{"123431/100", rational.MustNew(123431, 100)},
		{"1/3", rational.MustNew(1, 3)},
		{"10 1/7", rational.MustNew(71, 7)},
		{"10_1/7", rational.MustNew(71, 7)},
		{"10M", rational.FromInt(10_000_000)},
		{"96k", rational.FromInt(96_000)},
		{"1.5k", rational.FromInt(1_500)},
		{"2345.61", rational.MustNew(234561, 100)},
		{"10_1/7k", rational.MustNew(71_000, 7)},
		{"500/9k", rational.MustNew(500_000, 9)},
		{"0.125M", rational.FromInt(125_000)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	t.Parallel()
	cases := []string{
		"",       // no digits, zero value would be ambiguous with "0"
		"1.2.3",  // second decimal point
		"1_2_3",  // second separator
		"1/2/3",  // second slash
		"1.5/2",  // fraction after decimal point
		"1_2.5",  // decimal point after separator
		"1kk",    // second suffix
		"1kM",    // mixed suffixes
		"1/0",    // zero denominator
		"1/",     // empty denominator
		"12a",    // stray character
		"-5",     // sign is not part of the grammar
		"1 2 3",  // second separator (space form)
		"99999999999999999999", // numerator overflow
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidLiteral, "Parse(%q)", in)
		})
	}
}
