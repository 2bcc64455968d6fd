package parsec

// Parse applies the root parser p to in and returns its Result as-is;
// trailing unconsumed input is allowed (spec.md §6 "parse(input)").
func Parse[C Cursor, A any](p Parser[C, A], in C) Result[C, A] {
	return p.Apply(in)
}

// ParseAll is Parse but additionally requires the root parser to consume
// all of in; leftover input becomes a NoMatch labeled "expected end of
// input" (spec.md §6 "parseAll(input)", §8 invariant 11).
func ParseAll[C EOFCursor, A any](p Parser[C, A], in C) Result[C, A] {
	r := p.Apply(in)
	if !r.Matches() {
		return r
	}
	if r.Next().IsEOF() {
		return r
	}
	return Failure[C, A](r.Next(), "end of input", nil)
}
