package parsec

import (
	"github.com/hashicorp/go-multierror"
)

// ParseError is the error record carried by a NoMatch or PartialMatch
// Result (spec.md §3.4): a location, an expected-label set, an optional
// nested cause, and an optional list of sibling alternatives from a choice
// combinator that all failed at the same position.
type ParseError[C Cursor] struct {
	At           C
	Expected     []string
	Cause        *ParseError[C]
	Alternatives []*ParseError[C]
}

// Combine merges two NoMatch errors from an ordered choice into a single
// aggregated error whose Expected set is the deduplicated union of both,
// and whose Alternatives preserve the order the choices were tried in
// (spec.md §4.2 "combine(failure, failure)").
func Combine[C Cursor](a, b *ParseError[C]) *ParseError[C] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &ParseError[C]{
		At:           a.At,
		Expected:     dedupe(append(append([]string{}, a.Expected...), b.Expected...)),
		Alternatives: append(append([]*ParseError[C]{}, flattenAlternatives(a)...), flattenAlternatives(b)...),
	}
}

// flattenAlternatives returns e's own alternative list if it has one,
// otherwise treats e itself as a single alternative. This keeps repeated
// Combine calls (as happens inside OneOf over N parsers) from nesting
// alternatives arbitrarily deep.
func flattenAlternatives[C Cursor](e *ParseError[C]) []*ParseError[C] {
	if len(e.Alternatives) > 0 {
		return e.Alternatives
	}
	return []*ParseError[C]{e}
}

// AsError flattens a ParseError tree (cause chain and sibling alternatives)
// into a single stdlib error using github.com/hashicorp/go-multierror,
// for callers that want a plain `error` rather than the richer Result/
// ParseError tree — e.g. bridging a parser failure into code that only
// deals in `error` values.
func (e *ParseError[C]) AsError() error {
	if e == nil {
		return nil
	}
	var result *multierror.Error
	e.collect(&result)
	return result.ErrorOrNil()
}

func (e *ParseError[C]) collect(acc **multierror.Error) {
	if e == nil {
		return
	}
	*acc = multierror.Append(*acc, &labelError{expected: e.Expected})
	if e.Cause != nil {
		e.Cause.collect(acc)
	}
	for _, alt := range e.Alternatives {
		alt.collect(acc)
	}
}

// labelError adapts a ParseError's Expected label set to the stdlib error
// interface for multierror aggregation.
type labelError struct {
	expected []string
}

func (e *labelError) Error() string {
	if len(e.expected) == 0 {
		return "parse failure"
	}
	msg := "expected " + e.expected[0]
	for _, x := range e.expected[1:] {
		msg += " or " + x
	}
	return msg
}
