// Package numbers provides numeric parsers over parsec.TextInput.
// Grounded on oleiade-gomme/numbers.go and the float-parsing logic in
// oleiade-gomme/combinators.go, generalized onto the three-way Result.
package numbers

import (
	"strconv"

	"github.com/ashbridge/parsec"
	"github.com/ashbridge/parsec/chars"
)

type P[A any] = parsec.Parser[parsec.TextInput, A]

func sign() P[string] {
	return parsec.Map(
		parsec.Optional(parsec.OneOf(chars.Char('+'), chars.Char('-'))),
		func(o parsec.Option[rune]) string {
			if v, ok := o.Get(); ok {
				return string(v)
			}
			return ""
		},
	)
}

// UnsignedInt64 parses an unsigned base-10 integer into a uint64.
func UnsignedInt64() P[uint64] {
	return parsec.Map(chars.Digit1(), func(s string) uint64 {
		v, _ := strconv.ParseUint(s, 10, 64)
		return v
	})
}

// UnsignedInt is UnsignedInt64 narrowed to int.
func UnsignedInt() P[int] {
	return parsec.Map(UnsignedInt64(), func(v uint64) int { return int(v) })
}

// SignedInt64 parses an optionally-signed base-10 integer into an int64.
func SignedInt64() P[int64] {
	return parsec.Map2(parsec.Seq2(sign(), chars.Digit1()), func(sign, digits string) int64 {
		v, _ := strconv.ParseInt(sign+digits, 10, 64)
		return v
	})
}

// SignedInt is SignedInt64 narrowed to int.
func SignedInt() P[int] {
	return parsec.Map(SignedInt64(), func(v int64) int { return int(v) })
}

// Int64 is an alias of SignedInt64, matching spec.md's general-purpose
// integer name.
func Int64() P[int64] { return SignedInt64() }

// Hex parses a bare hexadecimal number (no "0x" prefix) into a uint64.
func Hex() P[uint64] {
	digit := parsec.Satisfy[rune, parsec.TextInput]("hex digit", func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	})
	digits := parsec.Map(parsec.OneOrMore(digit), func(rs []rune) string { return string(rs) })
	return parsec.Map(digits, func(s string) uint64 {
		v, _ := strconv.ParseUint(s, 16, 64)
		return v
	})
}

// Double parses a floating-point literal (optional sign, integer part,
// optional fractional part, optional exponent) into a float64.
func Double() P[float64] {
	fraction := parsec.Map2(parsec.Seq2(chars.Char('.'), chars.Digit1()), func(dot rune, digits string) string {
		return string(dot) + digits
	})
	exponent := parsec.Map3(
		parsec.Seq3(parsec.OneOf(chars.Char('e'), chars.Char('E')), sign(), chars.Digit1()),
		func(e rune, sign, digits string) string {
			return string(e) + sign + digits
		},
	)
	return parsec.Map4(
		parsec.Seq4(sign(), chars.Digit1(), parsec.OrElse(fraction, ""), parsec.OrElse(exponent, "")),
		func(sign, intPart, frac, exp string) float64 {
			v, _ := strconv.ParseFloat(sign+intPart+frac+exp, 64)
			return v
		},
	)
}
