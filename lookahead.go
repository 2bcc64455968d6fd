package parsec

// Peek runs p and, on Match, rewinds to the original input while keeping
// p's value; on any failure it yields a NoMatch at the original input,
// regardless of whether p's own failure was committed (spec.md §4.3.6).
func Peek[C Cursor, A any](p Parser[C, A]) Parser[C, A] {
	return newParser[C, A]("peek", true, func(in C) Result[C, A] {
		r := p.Apply(in)
		if r.Matches() {
			return Success(in, r.Value())
		}
		return rewriteNoMatch[C, A](in, r.ParseErr())
	})
}

// Not succeeds with Unit at the original input iff p fails (No-match or
// PartialMatch); it fails if p matches (spec.md §4.3.6).
func Not[C Cursor, A any](p Parser[C, A]) Parser[C, Unit] {
	label := "not " + p.Label
	return newParser[C, Unit](label, true, func(in C) Result[C, Unit] {
		if p.Apply(in).Matches() {
			return Failure[C, Unit](in, label, nil)
		}
		return Success(in, Unit{})
	})
}

// Where succeeds with p's result only if q also succeeds as a lookahead at
// the entry input; q's own match is discarded (spec.md §4.3.6 "where/onlyIf").
func Where[C Cursor, A any, B any](p Parser[C, A], q Parser[C, B]) Parser[C, A] {
	return newParser[C, A](p.Label, p.AcceptsEmpty, func(in C) Result[C, A] {
		r := p.Apply(in)
		if !r.Matches() {
			return r
		}
		if look := Peek(q).Apply(in); !look.Matches() {
			return Failure[C, A](in, p.Label, look.ParseErr())
		}
		return r
	})
}

// OnlyIf is an alias of Where, matching spec.md's `p.onlyIf(q)` naming.
func OnlyIf[C Cursor, A any, B any](p Parser[C, A], q Parser[C, B]) Parser[C, A] {
	return Where(p, q)
}
