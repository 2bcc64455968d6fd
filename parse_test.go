package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllowsTrailingInput(t *testing.T) {
	t.Parallel()
	res := Parse[TextInput, rune](digit(), NewTextInput("1abc"))
	require.True(t, res.Matches())
	assert.Equal(t, '1', res.Value())
	assert.Equal(t, 1, res.Next().Position())
}

func TestParseAllConsumesWholeInput(t *testing.T) {
	t.Parallel()
	res := ParseAll[TextInput, rune](digit(), NewTextInput("1"))
	require.True(t, res.Matches())
	assert.Equal(t, '1', res.Value())
}

// TestParseAllRejectsTrailingInput is spec.md §6's parseAll contract:
// leftover, unconsumed input becomes a NoMatch labeled "expected end of
// input" rather than being silently accepted.
func TestParseAllRejectsTrailingInput(t *testing.T) {
	t.Parallel()
	res := ParseAll[TextInput, rune](digit(), NewTextInput("1abc"))
	require.Equal(t, KindNoMatch, res.Kind())
	require.NotNil(t, res.ParseErr())
	assert.Contains(t, res.ParseErr().Expected, "end of input")
	assert.Equal(t, 1, res.ParseErr().At.Position())
}

func TestParseAllPropagatesInnerFailure(t *testing.T) {
	t.Parallel()
	res := ParseAll[TextInput, rune](digit(), NewTextInput("abc"))
	assert.Equal(t, KindNoMatch, res.Kind())
}
