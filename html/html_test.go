package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenize is spec.md §8 scenario S4.
func TestTokenize(t *testing.T) {
	t.Parallel()

	tokens := Tokenize(`<div id="main">hi</div>`)
	require.Len(t, tokens, 3)

	assert.Equal(t, StartTag{Name: "div", Attrs: map[string]string{"id": "main"}}, tokens[0])
	assert.Equal(t, Text("hi"), tokens[1])
	assert.Equal(t, EndTag{Name: "div"}, tokens[2])
}

func TestTokenizeMultipleAttrs(t *testing.T) {
	t.Parallel()

	tokens := Tokenize(`<a href="x" class="y"></a>`)
	require.Len(t, tokens, 2)
	assert.Equal(t, StartTag{Name: "a", Attrs: map[string]string{"href": "x", "class": "y"}}, tokens[0])
	assert.Equal(t, EndTag{Name: "a"}, tokens[1])
}

func TestTokenizeNoAttrs(t *testing.T) {
	t.Parallel()

	tokens := Tokenize(`<p>text</p>`)
	require.Len(t, tokens, 3)
	assert.Equal(t, StartTag{Name: "p", Attrs: map[string]string{}}, tokens[0])
	assert.Equal(t, Text("text"), tokens[1])
	assert.Equal(t, EndTag{Name: "p"}, tokens[2])
}
