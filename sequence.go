package parsec

// asPartial rewrites a NoMatch Result into a PartialMatch at the same
// position, wrapping the original NoMatch as its cause. Used wherever a
// sequence combinator must convert a tail failure into a committed failure
// (spec.md §4.3.3).
func asPartial[C Cursor, A any](res Result[C, A]) Result[C, A] {
	err := res.ParseErr()
	return Partial[C, A](err.At, err)
}

// stepSeq threads one more parser q through a running sequence Result,
// combining the accumulated value A with q's output B into R. It
// implements the shared propagation rule every Seq2..Seq8/Then-family
// combinator needs: a failing prev propagates as-is (already NoMatch or
// PartialMatch), and a NoMatch from q after prev Matched is committed to
// PartialMatch (spec.md §4.3.3).
func stepSeq[C Cursor, A any, B any, R any](prev Result[C, A], q Parser[C, B], combine func(A, B) R) Result[C, R] {
	if !prev.Matches() {
		return reKind[C, A, R](prev)
	}
	r2 := q.Apply(prev.Next())
	switch r2.Kind() {
	case KindMatch:
		return Success(r2.Next(), combine(prev.Value(), r2.Value()))
	case KindPartialMatch:
		return reKind[C, B, R](r2)
	default:
		return reKind[C, B, R](asPartial(r2))
	}
}

// Tuple2..Tuple8 are the N-ary sequence builder's captured-values carriers
// (spec.md §4.3.3, §9 "N-ary sequence builder"). Eight is a guidance floor,
// not a ceiling: callers needing more nest Seq2(Seq8(...), rest).
type Tuple2[A, B any] struct {
	First  A
	Second B
}

type Tuple3[A, B, D any] struct {
	First  A
	Second B
	Third  D
}

type Tuple4[A, B, D, E any] struct {
	First  A
	Second B
	Third  D
	Fourth E
}

type Tuple5[A, B, D, E, F any] struct {
	First  A
	Second B
	Third  D
	Fourth E
	Fifth  F
}

type Tuple6[A, B, D, E, F, G any] struct {
	First  A
	Second B
	Third  D
	Fourth E
	Fifth  F
	Sixth  G
}

type Tuple7[A, B, D, E, F, G, H any] struct {
	First   A
	Second  B
	Third   D
	Fourth  E
	Fifth   F
	Sixth   G
	Seventh H
}

type Tuple8[A, B, D, E, F, G, H, J any] struct {
	First   A
	Second  B
	Third   D
	Fourth  E
	Fifth   F
	Sixth   G
	Seventh H
	Eighth  J
}

// Seq2 applies p then q, yielding a Tuple2 of their values (spec.md
// §4.3.3 "then").
func Seq2[C Cursor, A, B any](p Parser[C, A], q Parser[C, B]) Parser[C, Tuple2[A, B]] {
	return newParser[C, Tuple2[A, B]]("sequence", p.AcceptsEmpty && q.AcceptsEmpty, func(in C) Result[C, Tuple2[A, B]] {
		r1 := p.Apply(in)
		return stepSeq(r1, q, func(a A, b B) Tuple2[A, B] { return Tuple2[A, B]{a, b} })
	})
}

// Then is an alias of Seq2, matching spec.md's `p.then(q)` naming.
func Then[C Cursor, A, B any](p Parser[C, A], q Parser[C, B]) Parser[C, Tuple2[A, B]] {
	return Seq2(p, q)
}

// ThenSkip runs p then q in sequence and keeps p's value (spec.md §4.3.3).
func ThenSkip[C Cursor, A, B any](p Parser[C, A], q Parser[C, B]) Parser[C, A] {
	return Map(Seq2(p, q), func(t Tuple2[A, B]) A { return t.First })
}

// SkipThen runs p then q in sequence and keeps q's value (spec.md §4.3.3).
func SkipThen[C Cursor, A, B any](p Parser[C, A], q Parser[C, B]) Parser[C, B] {
	return Map(Seq2(p, q), func(t Tuple2[A, B]) B { return t.Second })
}

func Seq3[C Cursor, A, B, D any](p1 Parser[C, A], p2 Parser[C, B], p3 Parser[C, D]) Parser[C, Tuple3[A, B, D]] {
	return newParser[C, Tuple3[A, B, D]]("sequence", false, func(in C) Result[C, Tuple3[A, B, D]] {
		r12 := Seq2(p1, p2).Apply(in)
		return stepSeq(r12, p3, func(ab Tuple2[A, B], d D) Tuple3[A, B, D] {
			return Tuple3[A, B, D]{ab.First, ab.Second, d}
		})
	})
}

func Seq4[C Cursor, A, B, D, E any](p1 Parser[C, A], p2 Parser[C, B], p3 Parser[C, D], p4 Parser[C, E]) Parser[C, Tuple4[A, B, D, E]] {
	return newParser[C, Tuple4[A, B, D, E]]("sequence", false, func(in C) Result[C, Tuple4[A, B, D, E]] {
		r123 := Seq3(p1, p2, p3).Apply(in)
		return stepSeq(r123, p4, func(abd Tuple3[A, B, D], e E) Tuple4[A, B, D, E] {
			return Tuple4[A, B, D, E]{abd.First, abd.Second, abd.Third, e}
		})
	})
}

func Seq5[C Cursor, A, B, D, E, F any](p1 Parser[C, A], p2 Parser[C, B], p3 Parser[C, D], p4 Parser[C, E], p5 Parser[C, F]) Parser[C, Tuple5[A, B, D, E, F]] {
	return newParser[C, Tuple5[A, B, D, E, F]]("sequence", false, func(in C) Result[C, Tuple5[A, B, D, E, F]] {
		r1234 := Seq4(p1, p2, p3, p4).Apply(in)
		return stepSeq(r1234, p5, func(abde Tuple4[A, B, D, E], f F) Tuple5[A, B, D, E, F] {
			return Tuple5[A, B, D, E, F]{abde.First, abde.Second, abde.Third, abde.Fourth, f}
		})
	})
}

func Seq6[C Cursor, A, B, D, E, F, G any](p1 Parser[C, A], p2 Parser[C, B], p3 Parser[C, D], p4 Parser[C, E], p5 Parser[C, F], p6 Parser[C, G]) Parser[C, Tuple6[A, B, D, E, F, G]] {
	return newParser[C, Tuple6[A, B, D, E, F, G]]("sequence", false, func(in C) Result[C, Tuple6[A, B, D, E, F, G]] {
		r12345 := Seq5(p1, p2, p3, p4, p5).Apply(in)
		return stepSeq(r12345, p6, func(abdef Tuple5[A, B, D, E, F], g G) Tuple6[A, B, D, E, F, G] {
			return Tuple6[A, B, D, E, F, G]{abdef.First, abdef.Second, abdef.Third, abdef.Fourth, abdef.Fifth, g}
		})
	})
}

func Seq7[C Cursor, A, B, D, E, F, G, H any](p1 Parser[C, A], p2 Parser[C, B], p3 Parser[C, D], p4 Parser[C, E], p5 Parser[C, F], p6 Parser[C, G], p7 Parser[C, H]) Parser[C, Tuple7[A, B, D, E, F, G, H]] {
	return newParser[C, Tuple7[A, B, D, E, F, G, H]]("sequence", false, func(in C) Result[C, Tuple7[A, B, D, E, F, G, H]] {
		r := Seq6(p1, p2, p3, p4, p5, p6).Apply(in)
		return stepSeq(r, p7, func(t Tuple6[A, B, D, E, F, G], h H) Tuple7[A, B, D, E, F, G, H] {
			return Tuple7[A, B, D, E, F, G, H]{t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, h}
		})
	})
}

func Seq8[C Cursor, A, B, D, E, F, G, H, J any](p1 Parser[C, A], p2 Parser[C, B], p3 Parser[C, D], p4 Parser[C, E], p5 Parser[C, F], p6 Parser[C, G], p7 Parser[C, H], p8 Parser[C, J]) Parser[C, Tuple8[A, B, D, E, F, G, H, J]] {
	return newParser[C, Tuple8[A, B, D, E, F, G, H, J]]("sequence", false, func(in C) Result[C, Tuple8[A, B, D, E, F, G, H, J]] {
		r := Seq7(p1, p2, p3, p4, p5, p6, p7).Apply(in)
		return stepSeq(r, p8, func(t Tuple7[A, B, D, E, F, G, H], j J) Tuple8[A, B, D, E, F, G, H, J] {
			return Tuple8[A, B, D, E, F, G, H, J]{t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, j}
		})
	})
}

// Map2..Map8 fold a captured N-ary sequence into a single result type R,
// the "final .map(fN) applies an N-ary function" step from spec.md §4.3.3.
func Map2[C Cursor, A, B, R any](p Parser[C, Tuple2[A, B]], f func(A, B) R) Parser[C, R] {
	return Map(p, func(t Tuple2[A, B]) R { return f(t.First, t.Second) })
}

func Map3[C Cursor, A, B, D, R any](p Parser[C, Tuple3[A, B, D]], f func(A, B, D) R) Parser[C, R] {
	return Map(p, func(t Tuple3[A, B, D]) R { return f(t.First, t.Second, t.Third) })
}

func Map4[C Cursor, A, B, D, E, R any](p Parser[C, Tuple4[A, B, D, E]], f func(A, B, D, E) R) Parser[C, R] {
	return Map(p, func(t Tuple4[A, B, D, E]) R { return f(t.First, t.Second, t.Third, t.Fourth) })
}

func Map5[C Cursor, A, B, D, E, F, R any](p Parser[C, Tuple5[A, B, D, E, F]], f func(A, B, D, E, F) R) Parser[C, R] {
	return Map(p, func(t Tuple5[A, B, D, E, F]) R { return f(t.First, t.Second, t.Third, t.Fourth, t.Fifth) })
}

func Map6[C Cursor, A, B, D, E, F, G, R any](p Parser[C, Tuple6[A, B, D, E, F, G]], f func(A, B, D, E, F, G) R) Parser[C, R] {
	return Map(p, func(t Tuple6[A, B, D, E, F, G]) R {
		return f(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth)
	})
}

func Map7[C Cursor, A, B, D, E, F, G, H, R any](p Parser[C, Tuple7[A, B, D, E, F, G, H]], f func(A, B, D, E, F, G, H) R) Parser[C, R] {
	return Map(p, func(t Tuple7[A, B, D, E, F, G, H]) R {
		return f(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh)
	})
}

func Map8[C Cursor, A, B, D, E, F, G, H, J, R any](p Parser[C, Tuple8[A, B, D, E, F, G, H, J]], f func(A, B, D, E, F, G, H, J) R) Parser[C, R] {
	return Map(p, func(t Tuple8[A, B, D, E, F, G, H, J]) R {
		return f(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth)
	})
}

// Sequence applies a homogeneous list of parsers in order and collects
// their values, failing (and committing, per the same tail-failure rule as
// Then) as soon as one fails. Grounded on oleiade-gomme's Sequence
// (sequence.go), generalized onto the three-way Result.
func Sequence[C Cursor, A any](parsers ...Parser[C, A]) Parser[C, []A] {
	return newParser[C, []A]("sequence", len(parsers) == 0, func(in C) Result[C, []A] {
		if len(parsers) == 0 {
			return Success(in, []A{})
		}
		values := make([]A, 0, len(parsers))
		cur := in
		for i, p := range parsers {
			res := p.Apply(cur)
			if !res.Matches() {
				if i == 0 {
					return reKind[C, A, []A](res)
				}
				return reKind[C, A, []A](asPartial(res))
			}
			values = append(values, res.Value())
			cur = res.Next()
		}
		return Success(cur, values)
	})
}
