package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digitValue() Parser[TextInput, int] {
	return Map(digit(), func(r rune) int { return int(r - '0') })
}

func plusOp() Parser[TextInput, func(int, int) int] {
	return Map(Satisfy[rune, TextInput]("+", func(r rune) bool { return r == '+' }),
		func(rune) func(int, int) int { return func(a, b int) int { return a + b } })
}

func minusOp() Parser[TextInput, func(int, int) int] {
	return Map(Satisfy[rune, TextInput]("-", func(r rune) bool { return r == '-' }),
		func(rune) func(int, int) int { return func(a, b int) int { return a - b } })
}

// TestChainLeftOneOrMoreIsLeftAssociative is spec.md §8 scenario S1:
// "8-4-2" folds as (8-4)-2 = 2 under left subtraction, matching ordinary
// arithmetic's left-to-right evaluation for same-precedence operators; a
// right fold would give 8-(4-2) = 6.
func TestChainLeftOneOrMoreIsLeftAssociative(t *testing.T) {
	t.Parallel()
	res := ChainLeftOneOrMore(digitValue(), minusOp()).Apply(NewTextInput("8-4-2"))
	require.True(t, res.Matches())
	assert.Equal(t, 2, res.Value())
}

func TestChainLeftZeroOrMoreDefault(t *testing.T) {
	t.Parallel()
	res := ChainLeftZeroOrMore(digitValue(), plusOp(), -1).Apply(NewTextInput("a"))
	require.True(t, res.Matches())
	assert.Equal(t, -1, res.Value())
}

func caretOp() Parser[TextInput, func(int, int) int] {
	return Map(Satisfy[rune, TextInput]("^", func(r rune) bool { return r == '^' }),
		func(rune) func(int, int) int {
			return func(a, b int) int {
				result := 1
				for i := 0; i < b; i++ {
					result *= a
				}
				return result
			}
		})
}

// TestChainRightOneOrMoreIsRightAssociative is spec.md §8 scenario S2:
// "2^3^2" folds as 2^(3^2) = 2^9 = 512 under right-associative exponentiation.
func TestChainRightOneOrMoreIsRightAssociative(t *testing.T) {
	t.Parallel()
	res := ChainRightOneOrMore(digitValue(), caretOp()).Apply(NewTextInput("2^3^2"))
	require.True(t, res.Matches())
	assert.Equal(t, 512, res.Value())
}

func TestChainRightZeroOrMoreDefault(t *testing.T) {
	t.Parallel()
	res := ChainRightZeroOrMore(digitValue(), caretOp(), -1).Apply(NewTextInput("a"))
	require.True(t, res.Matches())
	assert.Equal(t, -1, res.Value())
}
