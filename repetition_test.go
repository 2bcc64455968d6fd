package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroOrMore(t *testing.T) {
	t.Parallel()
	res := ZeroOrMore(digit()).Apply(NewTextInput("123a"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'1', '2', '3'}, res.Value())
	assert.Equal(t, 3, res.Next().Position())

	res = ZeroOrMore(digit()).Apply(NewTextInput("a"))
	require.True(t, res.Matches())
	assert.Empty(t, res.Value())
}

func TestOneOrMoreRequiresOneMatch(t *testing.T) {
	t.Parallel()
	res := OneOrMore(digit()).Apply(NewTextInput("a"))
	assert.Equal(t, KindNoMatch, res.Kind())

	res = OneOrMore(digit()).Apply(NewTextInput("1a"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'1'}, res.Value())
}

// TestZeroOrMoreStopsOnAcceptsEmpty exercises the infinite-loop guard: a
// parser that matches without consuming must not loop forever.
func TestZeroOrMoreStopsOnAcceptsEmpty(t *testing.T) {
	t.Parallel()
	zeroWidth := Pure[TextInput, rune]('x')
	res := ZeroOrMore(zeroWidth).Apply(NewTextInput("abc"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'x'}, res.Value())
}

func TestRepeatExactCount(t *testing.T) {
	t.Parallel()
	res := Repeat(digit(), 3).Apply(NewTextInput("123a"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'1', '2', '3'}, res.Value())

	res = Repeat(digit(), 3).Apply(NewTextInput("12a"))
	assert.Equal(t, KindPartialMatch, res.Kind())
}

func TestRepeatRange(t *testing.T) {
	t.Parallel()
	res := RepeatRange(digit(), 1, 2).Apply(NewTextInput("123"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'1', '2'}, res.Value())
	assert.Equal(t, 2, res.Next().Position())
}

func comma() Parser[TextInput, rune] {
	return Satisfy[rune, TextInput](",", func(r rune) bool { return r == ',' })
}

func TestOneOrMoreSeparatedBy(t *testing.T) {
	t.Parallel()
	res := OneOrMoreSeparatedBy(digit(), comma()).Apply(NewTextInput("1,2,3x"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'1', '2', '3'}, res.Value())
}

// TestTrailingSeparatorCommits is spec.md §4.3.7: a trailing separator
// without a following item is a committed failure, not silently dropped.
func TestTrailingSeparatorCommits(t *testing.T) {
	t.Parallel()
	res := OneOrMoreSeparatedBy(digit(), comma()).Apply(NewTextInput("1,2,"))
	assert.Equal(t, KindPartialMatch, res.Kind())
}

func TestTakeWhile(t *testing.T) {
	t.Parallel()
	res := TakeWhile(Any[rune, TextInput](), digit()).Apply(NewTextInput("12ab"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'1', '2'}, res.Value())
}

func TestZeroOrMoreUntil(t *testing.T) {
	t.Parallel()
	end := Satisfy[rune, TextInput]("semicolon", func(r rune) bool { return r == ';' })
	res := ZeroOrMoreUntil(digit(), end).Apply(NewTextInput("123;x"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'1', '2', '3'}, res.Value())
	assert.Equal(t, 4, res.Next().Position())
}

// TestZeroOrMoreUntilStopsOnAcceptsEmpty is the infinite-loop guard for
// ZeroOrMoreUntil: a p that matches without consuming, with end never
// matching, must terminate instead of spinning (spec.md §4.3.7).
func TestZeroOrMoreUntilStopsOnAcceptsEmpty(t *testing.T) {
	t.Parallel()
	zeroWidth := Pure[TextInput, rune]('x')
	end := Satisfy[rune, TextInput]("semicolon", func(r rune) bool { return r == ';' })
	res := ZeroOrMoreUntil(zeroWidth, end).Apply(NewTextInput("abc"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'x'}, res.Value())
	assert.Equal(t, 0, res.Next().Position())
}
