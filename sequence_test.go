package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digit() Parser[TextInput, rune] {
	return Satisfy[rune, TextInput]("digit", func(r rune) bool { return r >= '0' && r <= '9' })
}

func letter() Parser[TextInput, rune] {
	return Satisfy[rune, TextInput]("letter", func(r rune) bool { return r >= 'a' && r <= 'z' })
}

func TestSeq2Match(t *testing.T) {
	t.Parallel()
	res := Seq2(digit(), letter()).Apply(NewTextInput("1az"))
	require.True(t, res.Matches())
	assert.Equal(t, Tuple2[rune, rune]{'1', 'a'}, res.Value())
	assert.Equal(t, 2, res.Next().Position())
}

func TestSeq2FirstFails(t *testing.T) {
	t.Parallel()
	res := Seq2(digit(), letter()).Apply(NewTextInput("az"))
	assert.Equal(t, KindNoMatch, res.Kind())
}

// TestSeq2SecondFailsCommits is spec.md §4.3.3's tail-failure commit rule:
// once the first element matches, a failing second element becomes a
// PartialMatch rather than a plain NoMatch.
func TestSeq2SecondFailsCommits(t *testing.T) {
	t.Parallel()
	res := Seq2(digit(), letter()).Apply(NewTextInput("12"))
	assert.Equal(t, KindPartialMatch, res.Kind())
}

func TestThenSkipAndSkipThen(t *testing.T) {
	t.Parallel()
	res := ThenSkip(digit(), letter()).Apply(NewTextInput("1a"))
	require.True(t, res.Matches())
	assert.Equal(t, '1', res.Value())

	res2 := SkipThen(digit(), letter()).Apply(NewTextInput("1a"))
	require.True(t, res2.Matches())
	assert.Equal(t, 'a', res2.Value())
}

func TestSeq4AndMap4(t *testing.T) {
	t.Parallel()
	p := Map4(Seq4(digit(), digit(), letter(), letter()), func(a, b, c, d rune) string {
		return string([]rune{a, b, c, d})
	})
	res := p.Apply(NewTextInput("12ab"))
	require.True(t, res.Matches())
	assert.Equal(t, "12ab", res.Value())
}

func TestSequenceHomogeneous(t *testing.T) {
	t.Parallel()
	res := Sequence(digit(), digit(), digit()).Apply(NewTextInput("123x"))
	require.True(t, res.Matches())
	assert.Equal(t, []rune{'1', '2', '3'}, res.Value())
	assert.Equal(t, 3, res.Next().Position())
}

func TestSequenceEmptyList(t *testing.T) {
	t.Parallel()
	res := Sequence[TextInput, rune]().Apply(NewTextInput("x"))
	require.True(t, res.Matches())
	assert.Empty(t, res.Value())
}

func TestSequenceTailFailureCommits(t *testing.T) {
	t.Parallel()
	res := Sequence(digit(), digit()).Apply(NewTextInput("1x"))
	assert.Equal(t, KindPartialMatch, res.Kind())
}
