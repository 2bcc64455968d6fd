package parsec

// ChainLeftOneOrMore parses `operand (op operand)*` and folds left-
// associatively: op(op(a, b), c) for "a op b op c" (spec.md §4.3.8).
func ChainLeftOneOrMore[C Cursor, T any](operand Parser[C, T], op Parser[C, func(T, T) T]) Parser[C, T] {
	return newParser[C, T]("chainLeft", false, func(in C) Result[C, T] {
		first := operand.Apply(in)
		if !first.Matches() {
			return first
		}
		acc := first.Value()
		cur := first.Next()
		for {
			opRes := op.Apply(cur)
			if opRes.Kind() == KindPartialMatch {
				return reKind[C, func(T, T) T, T](opRes)
			}
			if opRes.Kind() == KindNoMatch {
				return Success(cur, acc)
			}
			rhsRes := operand.Apply(opRes.Next())
			switch rhsRes.Kind() {
			case KindMatch:
				acc = opRes.Value()(acc, rhsRes.Value())
				cur = rhsRes.Next()
			case KindPartialMatch:
				return rhsRes
			default:
				return asPartial(rhsRes)
			}
		}
	})
}

// ChainLeftZeroOrMore is ChainLeftOneOrMore but yields defaultValue when
// operand fails to match at all (spec.md §4.3.8).
func ChainLeftZeroOrMore[C Cursor, T any](operand Parser[C, T], op Parser[C, func(T, T) T], defaultValue T) Parser[C, T] {
	return newParser[C, T]("chainLeft", true, func(in C) Result[C, T] {
		res := ChainLeftOneOrMore(operand, op).Apply(in)
		if res.Kind() == KindNoMatch {
			return Success(in, defaultValue)
		}
		return res
	})
}

// ChainRightOneOrMore parses `operand (op operand)*` and folds right-
// associatively: op(a, op(b, c)) for "a op b op c" (spec.md §4.3.8).
func ChainRightOneOrMore[C Cursor, T any](operand Parser[C, T], op Parser[C, func(T, T) T]) Parser[C, T] {
	var rec func(in C) Result[C, T]
	rec = func(in C) Result[C, T] {
		lhsRes := operand.Apply(in)
		if !lhsRes.Matches() {
			return lhsRes
		}
		lhs := lhsRes.Value()
		cur := lhsRes.Next()
		opRes := op.Apply(cur)
		if opRes.Kind() == KindPartialMatch {
			return reKind[C, func(T, T) T, T](opRes)
		}
		if opRes.Kind() == KindNoMatch {
			return Success(cur, lhs)
		}
		rhsRes := rec(opRes.Next())
		switch rhsRes.Kind() {
		case KindMatch:
			return Success(rhsRes.Next(), opRes.Value()(lhs, rhsRes.Value()))
		case KindPartialMatch:
			return rhsRes
		default:
			return asPartial(rhsRes)
		}
	}
	return newParser[C, T]("chainRight", false, rec)
}

// ChainRightZeroOrMore is ChainRightOneOrMore but yields defaultValue when
// operand fails to match at all (spec.md §4.3.8).
func ChainRightZeroOrMore[C Cursor, T any](operand Parser[C, T], op Parser[C, func(T, T) T], defaultValue T) Parser[C, T] {
	return newParser[C, T]("chainRight", true, func(in C) Result[C, T] {
		res := ChainRightOneOrMore(operand, op).Apply(in)
		if res.Kind() == KindNoMatch {
			return Success(in, defaultValue)
		}
		return res
	})
}
