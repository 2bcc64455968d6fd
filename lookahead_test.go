package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekDoesNotConsume(t *testing.T) {
	t.Parallel()
	res := Peek(digit()).Apply(NewTextInput("1a"))
	require.True(t, res.Matches())
	assert.Equal(t, '1', res.Value())
	assert.Equal(t, 0, res.Next().Position())
}

func TestPeekRewritesCommittedFailureToNoMatch(t *testing.T) {
	t.Parallel()
	res := Peek(Seq2(digit(), letter())).Apply(NewTextInput("1 "))
	assert.Equal(t, KindNoMatch, res.Kind())
}

func TestNot(t *testing.T) {
	t.Parallel()
	res := Not(digit()).Apply(NewTextInput("a"))
	require.True(t, res.Matches())
	assert.Equal(t, 0, res.Next().Position())

	res = Not(digit()).Apply(NewTextInput("1"))
	assert.Equal(t, KindNoMatch, res.Kind())
}

func TestWhere(t *testing.T) {
	t.Parallel()
	onlyBeforeLetter := Where(digit(), Seq2(digit(), letter()))
	res := onlyBeforeLetter.Apply(NewTextInput("1a"))
	require.True(t, res.Matches())
	assert.Equal(t, '1', res.Value())

	res = onlyBeforeLetter.Apply(NewTextInput("12"))
	assert.Equal(t, KindNoMatch, res.Kind())
}
