package parsec

// Between parses `open content close` and yields content's value, with
// open and close discarded (spec.md §4.3.10).
func Between[C Cursor, O any, A any, L any](content Parser[C, A], open Parser[C, O], close Parser[C, L]) Parser[C, A] {
	return ThenSkip(SkipThen(open, content), close)
}

// BetweenSame is Between with the same bracket parser on both sides
// (spec.md §4.3.10 "content.between(bracket)").
func BetweenSame[C Cursor, A any, B any](content Parser[C, A], bracket Parser[C, B]) Parser[C, A] {
	return Between(content, bracket, bracket)
}
