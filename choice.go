package parsec

// rewriteNoMatch rebuilds a failure as a NoMatch at `at`, carrying over the
// same Expected/Cause/Alternatives. Used by Attempt and Peek to relocate a
// failure's position without losing its content.
func rewriteNoMatch[C Cursor, A any](at C, err *ParseError[C]) Result[C, A] {
	return FailureErr[C, A](&ParseError[C]{At: at, Expected: err.Expected, Cause: err.Cause, Alternatives: err.Alternatives})
}

// Or tries p; if it is a Match or a committed PartialMatch it wins outright.
// Only a non-consuming NoMatch falls through to q (spec.md §4.3.4).
func Or[C Cursor, A any](p, q Parser[C, A]) Parser[C, A] {
	return newParser[C, A]("or", p.AcceptsEmpty || q.AcceptsEmpty, func(in C) Result[C, A] {
		r1 := p.Apply(in)
		if r1.Kind() != KindNoMatch {
			return r1
		}
		r2 := q.Apply(in)
		if r2.Kind() != KindNoMatch {
			return r2
		}
		return FailureErr[C, A](Combine(r1.ParseErr(), r2.ParseErr()))
	})
}

// OneOf generalizes Or across any number of alternatives, preserving the
// order alternatives are tried and aggregated in (spec.md §4.3.4, §4.4
// "Aggregated reasons ... preserve the order").
func OneOf[C Cursor, A any](parsers ...Parser[C, A]) Parser[C, A] {
	if len(parsers) == 0 {
		return Fail[C, A]("oneOf: no alternatives")
	}
	acceptsEmpty := false
	for _, p := range parsers {
		acceptsEmpty = acceptsEmpty || p.AcceptsEmpty
	}
	return newParser[C, A]("oneOf", acceptsEmpty, func(in C) Result[C, A] {
		var combined *ParseError[C]
		for _, p := range parsers {
			r := p.Apply(in)
			if r.Kind() != KindNoMatch {
				return r
			}
			combined = Combine(combined, r.ParseErr())
		}
		return FailureErr[C, A](combined)
	})
}

// Attempt converts a PartialMatch produced by p back into a NoMatch at the
// original input, reopening backtracking in an enclosing choice (spec.md
// §4.3.5). Match and NoMatch pass through unchanged.
func Attempt[C Cursor, A any](p Parser[C, A]) Parser[C, A] {
	return newParser[C, A](p.Label, p.AcceptsEmpty, func(in C) Result[C, A] {
		r := p.Apply(in)
		if r.Kind() != KindPartialMatch {
			return r
		}
		return rewriteNoMatch[C, A](in, r.ParseErr())
	})
}
