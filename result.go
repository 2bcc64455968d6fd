package parsec

// Cursor is the minimal contract a parser input type must satisfy: a
// comparable notion of how far into the stream it is, used by the
// infinite-loop guard in repetition combinators and by the PartialMatch
// invariant (spec.md §3.2: "the position of `at` is strictly greater than
// the position at entry").
//
// Input[I] and TextInput both satisfy Cursor. Parser/Result are generic
// over the cursor type C directly (rather than over a token type with a
// single hard-coded Input[I] cursor) so that the same combinator surface
// works whether parsing is done over a plain Input[I] or over the
// line/column-aware TextInput.
type Cursor interface {
	Position() int
}

// ResultKind enumerates the three variants of Result (spec.md §3.2).
type ResultKind int

const (
	// KindMatch: the parser consumed zero or more tokens and produced a value.
	KindMatch ResultKind = iota
	// KindNoMatch: the parser did not match; no input was consumed beyond
	// the entry position in any observable way.
	KindNoMatch
	// KindPartialMatch: the parser matched a prefix and then failed; this
	// is a committed failure (spec.md §4.2 invariants).
	KindPartialMatch
)

func (k ResultKind) String() string {
	switch k {
	case KindMatch:
		return "Match"
	case KindNoMatch:
		return "NoMatch"
	case KindPartialMatch:
		return "PartialMatch"
	default:
		return "unknown"
	}
}

// Result is the sum type every Parser produces: Match, NoMatch, or
// PartialMatch (spec.md §3.2). Results are immutable values. C is the
// cursor type (e.g. Input[rune] or TextInput); A is the parsed value type.
type Result[C Cursor, A any] struct {
	kind  ResultKind
	value A
	next  C
	err   *ParseError[C]
}

// Success builds a Match Result.
func Success[C Cursor, A any](next C, value A) Result[C, A] {
	return Result[C, A]{kind: KindMatch, value: value, next: next}
}

// Failure builds a NoMatch Result at the given position, optionally with a
// nested cause from an inner parser.
func Failure[C Cursor, A any](at C, expected string, cause *ParseError[C]) Result[C, A] {
	return Result[C, A]{
		kind: KindNoMatch,
		next: at,
		err: &ParseError[C]{
			At:       at,
			Expected: dedupe([]string{expected}),
			Cause:    cause,
		},
	}
}

// FailureErr builds a NoMatch Result directly from a prepared ParseError.
func FailureErr[C Cursor, A any](err *ParseError[C]) Result[C, A] {
	return Result[C, A]{kind: KindNoMatch, next: err.At, err: err}
}

// Partial builds a PartialMatch Result: `at` must be strictly past the
// entry position (spec.md §4.2 invariant), and cause is the NoMatch that
// triggered the commit.
func Partial[C Cursor, A any](at C, cause *ParseError[C]) Result[C, A] {
	return Result[C, A]{
		kind: KindPartialMatch,
		next: at,
		err: &ParseError[C]{
			At:       at,
			Expected: cause.Expected,
			Cause:    cause,
		},
	}
}

// Matches reports whether the Result is a Match.
func (r Result[C, A]) Matches() bool {
	return r.kind == KindMatch
}

// Kind returns the Result's variant.
func (r Result[C, A]) Kind() ResultKind {
	return r.kind
}

// Value returns the Match payload. It panics on any other variant; callers
// must check Matches() first (spec.md §7 "value is only accessible on
// Match; on non-match it must fail loudly").
func (r Result[C, A]) Value() A {
	if r.kind != KindMatch {
		panic(&ProgrammerError{Op: "Result.Value", Msg: "called on a non-Match Result"})
	}
	return r.value
}

// Next returns the cursor to resume parsing from after a Match. It panics
// on any other variant.
func (r Result[C, A]) Next() C {
	if r.kind != KindMatch {
		panic(&ProgrammerError{Op: "Result.Next", Msg: "called on a non-Match Result"})
	}
	return r.next
}

// At returns the position a NoMatch or PartialMatch failed at. It panics on
// Match.
func (r Result[C, A]) At() C {
	if r.kind == KindMatch {
		panic(&ProgrammerError{Op: "Result.At", Msg: "called on a Match Result"})
	}
	return r.next
}

// ParseErr returns the underlying ParseError, or nil on Match.
func (r Result[C, A]) ParseErr() *ParseError[C] {
	return r.err
}

// Error renders the Result's failure as a human-readable message. It
// returns the empty string on Match.
func (r Result[C, A]) Error() string {
	if r.kind == KindMatch || r.err == nil {
		return ""
	}
	return FormatError[C](r.err)
}

// Handle dispatches on the Result's variant, mirroring spec.md §4.2's
// `handle(onSuccess, onFailure)`.
func Handle[C Cursor, A any, B any](r Result[C, A], onMatch func(value A, next C) B, onFailure func(err *ParseError[C]) B) B {
	if r.kind == KindMatch {
		return onMatch(r.value, r.next)
	}
	return onFailure(r.err)
}

// withValue rebuilds a Match Result with a different payload type, keeping
// next. Used internally by Map.
func withValue[C Cursor, A any, B any](r Result[C, A], value B) Result[C, B] {
	return Result[C, B]{kind: KindMatch, value: value, next: r.next}
}

// reKind copies a non-Match Result onto a different output type. Used
// internally whenever a combinator needs to pass a failure through a type
// change.
func reKind[C Cursor, A any, B any](r Result[C, A]) Result[C, B] {
	return Result[C, B]{kind: r.kind, next: r.next, err: r.err}
}

func dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
