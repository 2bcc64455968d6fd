package parsec

// Recover runs p; on any failure (NoMatch or PartialMatch) it runs q at the
// original input and returns whichever of the two Matches, preferring p.
// If neither matches, p's original failure is returned (spec.md §4.3.12).
func Recover[C Cursor, A any](p Parser[C, A], q Parser[C, A]) Parser[C, A] {
	return newParser[C, A]("recover", p.AcceptsEmpty || q.AcceptsEmpty, func(in C) Result[C, A] {
		r := p.Apply(in)
		if r.Matches() {
			return r
		}
		if alt := q.Apply(in); alt.Matches() {
			return alt
		}
		return r
	})
}

// RecoverWith is Recover but the fallback is built from p's own failure
// record rather than a static parser (spec.md §4.3.12).
func RecoverWith[C Cursor, A any](p Parser[C, A], handler func(*ParseError[C]) Result[C, A]) Parser[C, A] {
	return newParser[C, A]("recoverWith", p.AcceptsEmpty, func(in C) Result[C, A] {
		r := p.Apply(in)
		if r.Matches() {
			return r
		}
		return handler(r.ParseErr())
	})
}
