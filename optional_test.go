package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalPresentAndAbsent(t *testing.T) {
	t.Parallel()
	res := Optional(digit()).Apply(NewTextInput("1a"))
	require.True(t, res.Matches())
	v, ok := res.Value().Get()
	assert.True(t, ok)
	assert.Equal(t, '1', v)

	res = Optional(digit()).Apply(NewTextInput("a"))
	require.True(t, res.Matches())
	_, ok = res.Value().Get()
	assert.False(t, ok)
	assert.Equal(t, 0, res.Next().Position())
}

func TestOptionalPropagatesPartialMatch(t *testing.T) {
	t.Parallel()
	res := Optional(Seq2(digit(), letter())).Apply(NewTextInput("1 "))
	assert.Equal(t, KindPartialMatch, res.Kind())
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	res := OrElse(digit(), '0').Apply(NewTextInput("a"))
	require.True(t, res.Matches())
	assert.Equal(t, '0', res.Value())
	assert.Equal(t, 0, res.Next().Position())
}
