package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverFallsBackOnFailure(t *testing.T) {
	t.Parallel()
	res := Recover(digit(), letter()).Apply(NewTextInput("a"))
	require.True(t, res.Matches())
	assert.Equal(t, 'a', res.Value())
}

func TestRecoverPrefersPrimary(t *testing.T) {
	t.Parallel()
	res := Recover(digit(), letter()).Apply(NewTextInput("1"))
	require.True(t, res.Matches())
	assert.Equal(t, '1', res.Value())
}

func TestRecoverReturnsOriginalFailureWhenBothFail(t *testing.T) {
	t.Parallel()
	res := Recover(digit(), letter()).Apply(NewTextInput("!"))
	assert.Equal(t, KindNoMatch, res.Kind())
}

func TestRecoverWithBuildsFallbackFromFailure(t *testing.T) {
	t.Parallel()
	p := RecoverWith(digit(), func(err *ParseError[TextInput]) Result[TextInput, rune] {
		return Success(err.At, '?')
	})
	res := p.Apply(NewTextInput("a"))
	require.True(t, res.Matches())
	assert.Equal(t, '?', res.Value())
}
