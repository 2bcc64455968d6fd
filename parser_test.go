package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPure(t *testing.T) {
	t.Parallel()
	res := Pure[TextInput, int](42).Apply(NewTextInput("anything"))
	require.True(t, res.Matches())
	assert.Equal(t, 42, res.Value())
	assert.Equal(t, 0, res.Next().Position())
}

func TestFail(t *testing.T) {
	t.Parallel()
	res := Fail[TextInput, int]("nope").Apply(NewTextInput("x"))
	assert.Equal(t, KindNoMatch, res.Kind())
}

func TestEOF(t *testing.T) {
	t.Parallel()
	res := EOF[TextInput]().Apply(NewTextInput(""))
	assert.True(t, res.Matches())

	res = EOF[TextInput]().Apply(NewTextInput("x"))
	assert.Equal(t, KindNoMatch, res.Kind())
}

func TestAny(t *testing.T) {
	t.Parallel()
	res := Any[rune, TextInput]().Apply(NewTextInput("ab"))
	require.True(t, res.Matches())
	assert.Equal(t, 'a', res.Value())
	assert.Equal(t, 1, res.Next().Position())

	res = Any[rune, TextInput]().Apply(NewTextInput(""))
	assert.Equal(t, KindNoMatch, res.Kind())
}

func TestSatisfy(t *testing.T) {
	t.Parallel()
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }

	res := Satisfy[rune, TextInput]("digit", isDigit).Apply(NewTextInput("7x"))
	require.True(t, res.Matches())
	assert.Equal(t, '7', res.Value())

	res = Satisfy[rune, TextInput]("digit", isDigit).Apply(NewTextInput("x7"))
	assert.Equal(t, KindNoMatch, res.Kind())
}
