// Package chars provides lexical parsers over parsec.TextInput: single
// characters, character classes, whitespace, and quoted strings. Grounded
// on oleiade-gomme/characters.go, generalized onto the three-way Result.
package chars

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ashbridge/parsec"
)

// P is the parser type every function in this package produces.
type P[A any] = parsec.Parser[parsec.TextInput, A]

func satisfy(label string, pred func(rune) bool) P[rune] {
	return parsec.Satisfy[rune, parsec.TextInput](label, pred)
}

// Char matches a single, specific rune.
func Char(want rune) P[rune] {
	return satisfy(string(want), func(r rune) bool { return r == want })
}

// Digit matches a single ASCII digit.
func Digit() P[rune] {
	return satisfy("digit", func(r rune) bool { return r >= '0' && r <= '9' })
}

// Alpha matches a single Unicode letter.
func Alpha() P[rune] {
	return satisfy("letter", unicode.IsLetter)
}

// Alphanumeric matches a single letter or digit.
func Alphanumeric() P[rune] {
	return satisfy("letter or digit", func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// Whitespace matches a single Unicode whitespace rune.
func Whitespace() P[rune] {
	return satisfy("whitespace", unicode.IsSpace)
}

// Newline, CR, LF, Tab, and Space match their respective fixed runes.
func Newline() P[rune] { return Char('\n') }
func CR() P[rune]      { return Char('\r') }
func LF() P[rune]      { return Char('\n') }
func Tab() P[rune]     { return Char('\t') }
func Space() P[rune]   { return Char(' ') }

// CRLF matches a "\r\n" pair, yielding it as a two-rune string.
func CRLF() P[string] {
	return parsec.Map2(parsec.Seq2(CR(), LF()), func(cr, lf rune) string {
		return string([]rune{cr, lf})
	})
}

// Digit0 matches zero or more digits, collected into a string.
func Digit0() P[string] {
	return runesToString(parsec.ZeroOrMore(Digit()))
}

// Digit1 matches one or more digits, collected into a string.
func Digit1() P[string] {
	return runesToString(parsec.OneOrMore(Digit()))
}

// Alphanumeric0 and Alphanumeric1 collect zero-or-more / one-or-more
// letters-or-digits into a string.
func Alphanumeric0() P[string] { return runesToString(parsec.ZeroOrMore(Alphanumeric())) }
func Alphanumeric1() P[string] { return runesToString(parsec.OneOrMore(Alphanumeric())) }

// Whitespace0 and Whitespace1 collect zero-or-more / one-or-more
// whitespace runes into a string.
func Whitespace0() P[string] { return runesToString(parsec.ZeroOrMore(Whitespace())) }
func Whitespace1() P[string] { return runesToString(parsec.OneOrMore(Whitespace())) }

func runesToString(p P[[]rune]) P[string] {
	return parsec.Map(p, func(rs []rune) string { return string(rs) })
}

// Literal matches an exact, fixed sequence of runes, yielding it back as a
// string.
func Literal(s string) P[string] {
	runes := []rune(s)
	parsers := make([]P[rune], len(runes))
	for i, r := range runes {
		parsers[i] = Char(r)
	}
	return runesToString(parsec.Sequence(parsers...))
}

// OneOf matches any single rune present in the given set.
func OneOf(set string) P[rune] {
	return satisfy("one of "+strings.Join(strings.Split(set, ""), ""), func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// NoneOf matches any single rune absent from the given set.
func NoneOf(set string) P[rune] {
	return satisfy("none of "+set, func(r rune) bool {
		return !strings.ContainsRune(set, r)
	})
}

// QuotedString parses a double-quoted string with backslash-escape
// handling (\", \\, \n, \t, \r), yielding the unescaped content.
func QuotedString() P[string] {
	escaped := parsec.SkipThen(Char('\\'), parsec.Map(
		parsec.Satisfy[rune, parsec.TextInput]("escape character", func(r rune) bool {
			return strings.ContainsRune(`"\ntr`, r)
		}),
		unescape,
	))
	content := parsec.OneOf(
		escaped,
		satisfy("string character", func(r rune) bool { return r != '"' && r != '\\' }),
	)
	body := runesToString(parsec.ZeroOrMore(content))
	return parsec.Between(body, Char('"'), Char('"'))
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return r
	}
}

// Regexp bridges a compiled regular expression as a Parser[TextInput,
// string]: it matches re against the remaining text window and, on a
// match anchored at the current position, consumes the matched runes.
func Regexp(re *regexp.Regexp) P[string] {
	anchored := re
	if !strings.HasPrefix(re.String(), "^") {
		anchored = regexp.MustCompile("^(?:" + re.String() + ")")
	}
	return parsec.Parser[parsec.TextInput, string]{
		Label:        "regexp " + re.String(),
		AcceptsEmpty: anchored.MatchString(""),
		Apply: func(in parsec.TextInput) parsec.Result[parsec.TextInput, string] {
			remaining := in.Rest()
			loc := anchored.FindStringIndex(remaining)
			if loc == nil {
				return parsec.Failure[parsec.TextInput, string](in, "regexp "+re.String(), nil)
			}
			match := remaining[loc[0]:loc[1]]
			return parsec.Success(in.Skip(len([]rune(match))), match)
		},
	}
}
