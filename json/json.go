// Package json implements a JSON value parser built on parsec's core and
// its chars/numbers packages, demonstrating Between, OneOrMoreSeparatedBy,
// and Ref for recursive grammars (spec.md §8 scenario S3). Grounded on
// oleiade-gomme/examples/json/json.go, which left the object/array/ref
// wiring as an unfinished stub; this package completes it against the new
// three-way Result.
package json

import (
	"github.com/ashbridge/parsec"
	"github.com/ashbridge/parsec/chars"
	"github.com/ashbridge/parsec/numbers"
)

type p[A any] = parsec.Parser[parsec.TextInput, A]

// Member is a single "key": value entry inside an object.
type Member struct {
	Key   string
	Value any
}

// Object preserves member order, unlike a plain Go map, since spec.md's S3
// only requires "a mapping with two entries" but real JSON objects are
// ordered in source.
type Object struct {
	Members []Member
}

// Get looks up a member by key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

func lexeme[A any](inner p[A]) p[A] {
	return parsec.ThenSkip(inner, chars.Whitespace0())
}

func symbol(r rune) p[rune] {
	return lexeme(chars.Char(r))
}

var valueRef = parsec.NewRef[parsec.TextInput, any]()

func nullValue() p[any] {
	return parsec.As[parsec.TextInput, string, any](lexeme(chars.Literal("null")), nil)
}

func boolValue() p[any] {
	return parsec.Map(lexeme(parsec.OneOf(
		parsec.As[parsec.TextInput, string, bool](chars.Literal("true"), true),
		parsec.As[parsec.TextInput, string, bool](chars.Literal("false"), false),
	)), func(b bool) any { return b })
}

func stringValue() p[string] {
	return lexeme(chars.QuotedString())
}

func numberValue() p[any] {
	return parsec.Map(lexeme(numbers.Double()), func(f float64) any { return f })
}

func arrayValue() p[any] {
	items := parsec.ZeroOrMoreSeparatedBy(valueRef.Parser(), symbol(','))
	return parsec.Map(
		parsec.Between(items, symbol('['), symbol(']')),
		func(vs []any) any { return vs },
	)
}

func member() p[Member] {
	return parsec.Map2(
		parsec.Seq2(parsec.ThenSkip(stringValue(), symbol(':')), valueRef.Parser()),
		func(key string, value any) Member { return Member{Key: key, Value: value} },
	)
}

func objectValue() p[any] {
	members := parsec.ZeroOrMoreSeparatedBy(member(), symbol(','))
	return parsec.Map(
		parsec.Between(members, symbol('{'), symbol('}')),
		func(ms []Member) any { return Object{Members: ms} },
	)
}

// value tries each JSON form in turn. numberValue is wrapped in Attempt:
// numbers.Double matches its optional sign without consuming anything and
// then commits to a PartialMatch when no digit follows, which would
// otherwise stop OneOf before the array and object branches on '[', '{'
// or an empty array's ']'.
func value() p[any] {
	return parsec.OneOf(
		nullValue(),
		boolValue(),
		parsec.Map(stringValue(), func(s string) any { return s }),
		parsec.Attempt(numberValue()),
		arrayValue(),
		objectValue(),
	)
}

func init() {
	valueRef.Set(value())
}

// Value is the root parser: leading whitespace, then any JSON value.
func Value() p[any] {
	return parsec.SkipThen(chars.Whitespace0(), valueRef.Parser())
}

// Parse parses a complete JSON document from a string, requiring the
// parser to consume all input.
func Parse(input string) (any, error) {
	res := parsec.ParseAll(Value(), parsec.NewTextInput(input))
	if !res.Matches() {
		return nil, res.ParseErr().AsError()
	}
	return res.Value(), nil
}
