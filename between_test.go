package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bracket(r rune) Parser[TextInput, rune] {
	return Satisfy[rune, TextInput](string(r), func(x rune) bool { return x == r })
}

func TestBetween(t *testing.T) {
	t.Parallel()
	res := Between(digit(), bracket('('), bracket(')')).Apply(NewTextInput("(1)x"))
	require.True(t, res.Matches())
	assert.Equal(t, '1', res.Value())
	assert.Equal(t, 3, res.Next().Position())
}

func TestBetweenSame(t *testing.T) {
	t.Parallel()
	res := BetweenSame(digit(), bracket('|')).Apply(NewTextInput("|1|x"))
	require.True(t, res.Matches())
	assert.Equal(t, '1', res.Value())
}
