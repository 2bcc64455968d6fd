package parsec

// Map applies f to a Match's value; non-Match Results pass through
// unchanged (spec.md §4.2 "map(f) on Match produces Match with f(value);
// on non-Match it is the identity").
func Map[C Cursor, A any, B any](p Parser[C, A], f func(A) B) Parser[C, B] {
	return newParser[C, B](p.Label, p.AcceptsEmpty, func(in C) Result[C, B] {
		res := p.Apply(in)
		if !res.Matches() {
			return reKind[C, A, B](res)
		}
		return withValue[C, A, B](res, f(res.Value()))
	})
}

// As replaces a Match's value with a constant, leaving failures untouched.
func As[C Cursor, A any, B any](p Parser[C, A], constant B) Parser[C, B] {
	return Map(p, func(A) B { return constant })
}

// Expecting overrides the outermost NoMatch's expected label; it does not
// touch Match or PartialMatch Results (spec.md §4.3.2).
func Expecting[C Cursor, A any](p Parser[C, A], label string) Parser[C, A] {
	return newParser[C, A](label, p.AcceptsEmpty, func(in C) Result[C, A] {
		res := p.Apply(in)
		if res.Kind() != KindNoMatch {
			return res
		}
		err := res.ParseErr()
		return Failure[C, A](err.At, label, err.Cause)
	})
}
