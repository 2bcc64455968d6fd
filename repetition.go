package parsec

// stopped reports whether next makes no progress past cur, the condition
// the infinite-loop guard uses to cut off repetition when the underlying
// parser accepts empty input (spec.md §4.3.7 "Infinite-loop guard").
func stopped[C Cursor](cur, next C) bool {
	return next.Position() == cur.Position()
}

// ZeroOrMore applies p repeatedly, stopping at the first non-Match. A
// PartialMatch there is a committed failure and propagates; a NoMatch just
// ends the repetition with whatever was collected so far (spec.md §4.3.7).
func ZeroOrMore[C Cursor, A any](p Parser[C, A]) Parser[C, []A] {
	return newParser[C, []A]("zeroOrMore", true, func(in C) Result[C, []A] {
		values := []A{}
		cur := in
		for {
			r := p.Apply(cur)
			switch r.Kind() {
			case KindMatch:
				values = append(values, r.Value())
				next := r.Next()
				if stopped(cur, next) {
					return Success(next, values)
				}
				cur = next
			case KindPartialMatch:
				return reKind[C, A, []A](r)
			default:
				return Success(cur, values)
			}
		}
	})
}

// Many is an alias of ZeroOrMore, matching spec.md's "a.k.a. many".
func Many[C Cursor, A any](p Parser[C, A]) Parser[C, []A] {
	return ZeroOrMore(p)
}

// OneOrMore is ZeroOrMore with at least one required Match; otherwise the
// first non-Match is returned directly (spec.md §4.3.7).
func OneOrMore[C Cursor, A any](p Parser[C, A]) Parser[C, []A] {
	return newParser[C, []A]("oneOrMore", false, func(in C) Result[C, []A] {
		first := p.Apply(in)
		if !first.Matches() {
			return reKind[C, A, []A](first)
		}
		values := []A{first.Value()}
		cur := first.Next()
		if stopped(in, cur) {
			return Success(cur, values)
		}
		for {
			r := p.Apply(cur)
			switch r.Kind() {
			case KindMatch:
				values = append(values, r.Value())
				next := r.Next()
				if stopped(cur, next) {
					return Success(next, values)
				}
				cur = next
			case KindPartialMatch:
				return reKind[C, A, []A](r)
			default:
				return Success(cur, values)
			}
		}
	})
}

// repeatRange applies p between min and max times (max < 0 means
// unbounded). Falling short of min after consuming input commits to a
// PartialMatch; falling short without consuming anything is a plain
// NoMatch (spec.md §4.3.7 repeat family).
func repeatRange[C Cursor, A any](p Parser[C, A], min, max int) Parser[C, []A] {
	return newParser[C, []A]("repeat", min == 0, func(in C) Result[C, []A] {
		values := []A{}
		cur := in
		count := 0
		for max < 0 || count < max {
			r := p.Apply(cur)
			if r.Kind() == KindNoMatch {
				break
			}
			if r.Kind() == KindPartialMatch {
				return reKind[C, A, []A](r)
			}
			values = append(values, r.Value())
			count++
			next := r.Next()
			if stopped(cur, next) {
				cur = next
				break
			}
			cur = next
		}
		if count < min {
			cause := &ParseError[C]{At: cur, Expected: []string{"more repetitions"}}
			if cur.Position() != in.Position() {
				return Partial[C, []A](cur, cause)
			}
			return FailureErr[C, []A](cause)
		}
		return Success(cur, values)
	})
}

// Repeat requires exactly n matches of p.
func Repeat[C Cursor, A any](p Parser[C, A], n int) Parser[C, []A] {
	return repeatRange(p, n, n)
}

// RepeatAtLeast requires at least n matches of p, with no upper bound.
func RepeatAtLeast[C Cursor, A any](p Parser[C, A], n int) Parser[C, []A] {
	return repeatRange(p, n, -1)
}

// RepeatAtMost allows up to n matches of p, none required.
func RepeatAtMost[C Cursor, A any](p Parser[C, A], n int) Parser[C, []A] {
	return repeatRange(p, 0, n)
}

// RepeatRange requires between min and max matches of p, inclusive.
func RepeatRange[C Cursor, A any](p Parser[C, A], min, max int) Parser[C, []A] {
	return repeatRange(p, min, max)
}

// ZeroOrMoreSeparatedBy parses p items separated by sep, discarding sep's
// values. A trailing separator with no item following it is a committed
// failure, not silently ignored (spec.md §4.3.7).
func ZeroOrMoreSeparatedBy[C Cursor, A any, S any](p Parser[C, A], sep Parser[C, S]) Parser[C, []A] {
	return newParser[C, []A]("zeroOrMoreSeparatedBy", true, func(in C) Result[C, []A] {
		first := p.Apply(in)
		if first.Kind() == KindPartialMatch {
			return reKind[C, A, []A](first)
		}
		if first.Kind() == KindNoMatch {
			return Success(in, []A{})
		}
		return continueSeparated(first.Value(), first.Next(), p, sep)
	})
}

// OneOrMoreSeparatedBy is ZeroOrMoreSeparatedBy with at least one item
// required.
func OneOrMoreSeparatedBy[C Cursor, A any, S any](p Parser[C, A], sep Parser[C, S]) Parser[C, []A] {
	return newParser[C, []A]("oneOrMoreSeparatedBy", false, func(in C) Result[C, []A] {
		first := p.Apply(in)
		if !first.Matches() {
			return reKind[C, A, []A](first)
		}
		return continueSeparated(first.Value(), first.Next(), p, sep)
	})
}

func continueSeparated[C Cursor, A any, S any](firstValue A, cur C, p Parser[C, A], sep Parser[C, S]) Result[C, []A] {
	values := []A{firstValue}
	for {
		sepRes := sep.Apply(cur)
		if sepRes.Kind() == KindPartialMatch {
			return reKind[C, S, []A](sepRes)
		}
		if sepRes.Kind() == KindNoMatch {
			return Success(cur, values)
		}
		afterSep := sepRes.Next()
		itemRes := p.Apply(afterSep)
		switch itemRes.Kind() {
		case KindMatch:
			values = append(values, itemRes.Value())
			cur = itemRes.Next()
		case KindPartialMatch:
			return reKind[C, A, []A](itemRes)
		default:
			return Partial[C, []A](afterSep, itemRes.ParseErr())
		}
	}
}

// TakeWhile applies p as long as cond matches (as a lookahead, never
// consuming) at the current position (spec.md §4.3.7).
func TakeWhile[C Cursor, A any, X any](p Parser[C, A], cond Parser[C, X]) Parser[C, []A] {
	lookahead := Peek(cond)
	return newParser[C, []A]("takeWhile", true, func(in C) Result[C, []A] {
		values := []A{}
		cur := in
		for {
			if !lookahead.Apply(cur).Matches() {
				return Success(cur, values)
			}
			r := p.Apply(cur)
			switch r.Kind() {
			case KindMatch:
				values = append(values, r.Value())
				next := r.Next()
				if stopped(cur, next) {
					return Success(next, values)
				}
				cur = next
			case KindPartialMatch:
				return reKind[C, A, []A](r)
			default:
				return Success(cur, values)
			}
		}
	})
}

// ZeroOrMoreUntil applies p until end succeeds at the current position;
// end's match is consumed but its value discarded (spec.md §4.3.7).
func ZeroOrMoreUntil[C Cursor, A any, E any](p Parser[C, A], end Parser[C, E]) Parser[C, []A] {
	return newParser[C, []A]("zeroOrMoreUntil", true, func(in C) Result[C, []A] {
		values := []A{}
		cur := in
		for {
			endRes := end.Apply(cur)
			if endRes.Matches() {
				return Success(endRes.Next(), values)
			}
			if endRes.Kind() == KindPartialMatch {
				return reKind[C, E, []A](endRes)
			}
			r := p.Apply(cur)
			switch r.Kind() {
			case KindMatch:
				values = append(values, r.Value())
				next := r.Next()
				if stopped(cur, next) {
					return Success(next, values)
				}
				cur = next
			default:
				return reKind[C, A, []A](r)
			}
		}
	})
}

// OneOrMoreUntil is ZeroOrMoreUntil with at least one p-match required
// before end is allowed to close the sequence.
func OneOrMoreUntil[C Cursor, A any, E any](p Parser[C, A], end Parser[C, E]) Parser[C, []A] {
	return newParser[C, []A]("oneOrMoreUntil", false, func(in C) Result[C, []A] {
		res := ZeroOrMoreUntil(p, end).Apply(in)
		if res.Matches() && len(res.Value()) == 0 {
			return Failure[C, []A](in, "oneOrMoreUntil", nil)
		}
		return res
	})
}
