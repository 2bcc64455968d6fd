// Package html implements a minimal HTML-ish tokenizer built on parsec's
// IterateParse, demonstrating token-stream production over a text cursor
// (spec.md §8 scenario S4). It has no direct teacher analog; it is built
// in the shape oleiade-gomme/examples/csv and examples/redis take — a
// small domain package layered directly on the core, tested the same way.
package html

import (
	"github.com/ashbridge/parsec"
	"github.com/ashbridge/parsec/chars"
)

type p[A any] = parsec.Parser[parsec.TextInput, A]

// StartTag is an opening tag with its attributes.
type StartTag struct {
	Name  string
	Attrs map[string]string
}

// EndTag is a closing tag.
type EndTag struct {
	Name string
}

// Text is a run of character data between tags.
type Text string

// Attr is a single name="value" attribute pair.
type Attr struct {
	Key   string
	Value string
}

func identifier() p[string] {
	return parsec.Map2(parsec.Seq2(chars.Alpha(), chars.Alphanumeric0()), func(first rune, rest string) string {
		return string(first) + rest
	})
}

func attribute() p[Attr] {
	return parsec.Map2(
		parsec.Seq2(parsec.ThenSkip(identifier(), chars.Char('=')), chars.QuotedString()),
		func(key, value string) Attr { return Attr{Key: key, Value: value} },
	)
}

func attrs() p[[]Attr] {
	return parsec.ZeroOrMore(parsec.SkipThen(chars.Whitespace1(), attribute()))
}

// endTag attempts the "</" prefix atomically, so a "<" that turns out to
// belong to a start tag doesn't commit this branch (spec.md §4.3.5).
func endTag() p[any] {
	prefix := parsec.Attempt(chars.Literal("</"))
	return parsec.Map(
		parsec.SkipThen(prefix, parsec.ThenSkip(identifier(), chars.Char('>'))),
		func(name string) any { return EndTag{Name: name} },
	)
}

// startTag attempts "<" + identifier atomically for the same reason
// endTag attempts "</": once the tag's name is established the remaining
// attrs/">" are allowed to commit normally.
func startTag() p[any] {
	nameAndOpen := parsec.Attempt(parsec.SkipThen(chars.Char('<'), identifier()))
	return parsec.Map2(
		parsec.Seq2(nameAndOpen, parsec.ThenSkip(attrs(), chars.Char('>'))),
		func(name string, attrList []Attr) any {
			m := make(map[string]string, len(attrList))
			for _, a := range attrList {
				m[a.Key] = a.Value
			}
			return StartTag{Name: name, Attrs: m}
		},
	)
}

func text() p[any] {
	return parsec.Map(parsec.OneOrMore(chars.NoneOf("<")), func(rs []rune) any { return Text(string(rs)) })
}

// TagOrText matches one start tag, end tag, or run of text at the current
// position.
func TagOrText() p[any] {
	return parsec.OneOf(endTag(), startTag(), text())
}

// Tokenize runs TagOrText across the whole input via IterateParse,
// producing the flat token sequence spec.md §8's S4 scenario describes.
func Tokenize(input string) []any {
	it := parsec.IterateParse(TagOrText(), parsec.NewTextInput(input))
	var out []any
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
