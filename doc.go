// Package parsec implements a parser combinator engine: a toolkit for
// building top-down, recursive-descent parsers by composing small, typed
// parsing functions into larger ones.
//
// The engine operates over an arbitrary token stream (runes, bytes, or
// application-defined tokens), threading an immutable Input cursor through
// a tree of Parser values. Every combinator's behavior reduces to a small
// set of contracts on Result's three variants — Match, NoMatch, and
// PartialMatch — whose interaction implements PEG-style backtracking: a
// NoMatch never consumes input and is safe to try an alternative against; a
// PartialMatch signals a committed failure (some input was consumed before
// the failure occurred) and suppresses fallback in an enclosing Or/OneOf
// unless explicitly re-opened with Attempt.
//
// N.B: the combinator surface and error model in this package are a
// generalization of github.com/oleiade/gomme, itself "mostly either copied,
// or very inspired by" Jeff Hail's Benthos bloblang parser combinator code.
package parsec
