package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineNilHandling(t *testing.T) {
	t.Parallel()
	a := &ParseError[TextInput]{Expected: []string{"digit"}}

	assert.Same(t, a, Combine[TextInput](nil, a))
	assert.Same(t, a, Combine[TextInput](a, nil))
}

func TestCombineMergesExpectedAndAlternatives(t *testing.T) {
	t.Parallel()
	a := &ParseError[TextInput]{Expected: []string{"digit"}}
	b := &ParseError[TextInput]{Expected: []string{"letter"}}

	combined := Combine(a, b)
	assert.ElementsMatch(t, []string{"digit", "letter"}, combined.Expected)
	require.Len(t, combined.Alternatives, 2)
	assert.Same(t, a, combined.Alternatives[0])
	assert.Same(t, b, combined.Alternatives[1])
}

// TestCombineFlattensNestedAlternatives is error.go's flattenAlternatives:
// repeated Combine calls, as OneOf makes over N parsers, must not nest
// Alternatives arbitrarily deep.
func TestCombineFlattensNestedAlternatives(t *testing.T) {
	t.Parallel()
	a := &ParseError[TextInput]{Expected: []string{"a"}}
	b := &ParseError[TextInput]{Expected: []string{"b"}}
	c := &ParseError[TextInput]{Expected: []string{"c"}}

	combined := Combine(Combine(a, b), c)
	assert.Len(t, combined.Alternatives, 3)
}

func TestAsErrorNil(t *testing.T) {
	t.Parallel()
	var err *ParseError[TextInput]
	assert.Nil(t, err.AsError())
}

// TestAsErrorFlattensAlternatives exercises error.go's go-multierror
// wiring: every alternative's label becomes its own entry in the flattened
// error message.
func TestAsErrorFlattensAlternatives(t *testing.T) {
	t.Parallel()
	res := OneOf(digit(), letter()).Apply(NewTextInput("!"))
	require.Equal(t, KindNoMatch, res.Kind())

	err := res.ParseErr().AsError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected digit")
	assert.Contains(t, err.Error(), "expected letter")
}

func TestAsErrorIncludesCause(t *testing.T) {
	t.Parallel()
	res := Seq2(digit(), letter()).Apply(NewTextInput("1!"))
	require.Equal(t, KindPartialMatch, res.Kind())

	err := res.ParseErr().AsError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected letter")
}
