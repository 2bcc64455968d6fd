package parsec

// Option is the some/none value produced by Optional, standing in for the
// sum-type Go's type system doesn't give us natively (spec.md §4.3.9).
type Option[A any] struct {
	Value   A
	Present bool
}

// Some wraps a present value.
func Some[A any](v A) Option[A] {
	return Option[A]{Value: v, Present: true}
}

// None is the absent value of the given type.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Get returns the wrapped value and whether it was present.
func (o Option[A]) Get() (A, bool) {
	return o.Value, o.Present
}

// Optional yields Some(v) on Match, None on NoMatch without consuming; a
// PartialMatch propagates as a committed failure (spec.md §4.3.9).
func Optional[C Cursor, A any](p Parser[C, A]) Parser[C, Option[A]] {
	return newParser[C, Option[A]]("optional", true, func(in C) Result[C, Option[A]] {
		r := p.Apply(in)
		switch r.Kind() {
		case KindMatch:
			return Success(r.Next(), Some(r.Value()))
		case KindPartialMatch:
			return reKind[C, A, Option[A]](r)
		default:
			return Success(in, None[A]())
		}
	})
}

// OrElse yields defaultValue on NoMatch without consuming; a PartialMatch
// propagates (spec.md §4.3.9).
func OrElse[C Cursor, A any](p Parser[C, A], defaultValue A) Parser[C, A] {
	return newParser[C, A]("orElse", true, func(in C) Result[C, A] {
		r := p.Apply(in)
		if r.Kind() == KindNoMatch {
			return Success(in, defaultValue)
		}
		return r
	})
}
