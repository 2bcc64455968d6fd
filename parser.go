package parsec

// Parser is the core abstraction: a function from a cursor to a Result,
// plus the metadata spec.md §3.3 calls for — an accepts-empty flag (may
// succeed without consuming input, used by the repetition combinators'
// infinite-loop guard) and an optional debug label used in error messages.
type Parser[C Cursor, A any] struct {
	Apply        func(C) Result[C, A]
	AcceptsEmpty bool
	Label        string
}

// Parse runs the parser against the given cursor.
func (p Parser[C, A]) Parse(in C) Result[C, A] {
	return p.Apply(in)
}

// newParser is the internal constructor most combinators build on, so that
// AcceptsEmpty/Label default consistently.
func newParser[C Cursor, A any](label string, acceptsEmpty bool, apply func(C) Result[C, A]) Parser[C, A] {
	return Parser[C, A]{Apply: apply, AcceptsEmpty: acceptsEmpty, Label: label}
}

// Pure always succeeds without consuming input (spec.md §4.3.1).
func Pure[C Cursor, A any](v A) Parser[C, A] {
	return newParser[C, A]("pure", true, func(in C) Result[C, A] {
		return Success(in, v)
	})
}

// Fail always fails with the given label, without consuming input.
func Fail[C Cursor, A any](msg string) Parser[C, A] {
	return newParser[C, A](msg, false, func(in C) Result[C, A] {
		return Failure[C, A](in, msg, nil)
	})
}

// Unit is the value type used where spec.md calls for a parser that
// "produces unit" (Eof, Not, ...).
type Unit struct{}

// EOFCursor is the minimal contract EOF needs.
type EOFCursor interface {
	Cursor
	IsEOF() bool
}

// EOF succeeds with Unit iff the cursor is at end of input (spec.md
// §4.3.1).
func EOF[C EOFCursor]() Parser[C, Unit] {
	return newParser[C, Unit]("end of input", true, func(in C) Result[C, Unit] {
		if in.IsEOF() {
			return Success(in, Unit{})
		}
		return Failure[C, Unit](in, "end of input", nil)
	})
}

// TokenCursor is the contract Any and Satisfy need: a readable current
// token, an EOF check, and self-returning advancement. Input[I] and
// TextInput both satisfy TokenCursor for their respective token types.
type TokenCursor[I any, C any] interface {
	Cursor
	IsEOF() bool
	Current() I
	Next() C
}

// Any fails on EOF; otherwise it matches the current token and advances by
// one (spec.md §4.3.1).
func Any[I any, C TokenCursor[I, C]]() Parser[C, I] {
	return newParser[C, I]("any token", false, func(in C) Result[C, I] {
		if in.IsEOF() {
			return Failure[C, I](in, "any token", nil)
		}
		tok := in.Current()
		return Success[C, I](in.Next(), tok)
	})
}

// Satisfy is like Any but additionally requires pred(current token) to
// hold (spec.md §4.3.1).
func Satisfy[I any, C TokenCursor[I, C]](label string, pred func(I) bool) Parser[C, I] {
	return newParser[C, I](label, false, func(in C) Result[C, I] {
		if in.IsEOF() {
			return Failure[C, I](in, label, nil)
		}
		tok := in.Current()
		if !pred(tok) {
			return Failure[C, I](in, label, nil)
		}
		return Success[C, I](in.Next(), tok)
	})
}
