package parsec

// IterCursor is the contract IterateParse and StreamParse need from a
// cursor: an EOF check and random-access skipping (spec.md §4.3.14 "Both
// assume `in` supports random-access skipping").
type IterCursor[C any] interface {
	Cursor
	IsEOF() bool
	Skip(n int) C
}

// ParseIterator is a finite, non-restartable pull iterator over a sequence
// of parsed values (spec.md §4.3.14).
type ParseIterator[A any] struct {
	next func() (A, bool)
}

// Next pulls the next value, or reports exhaustion with ok=false.
func (it *ParseIterator[A]) Next() (A, bool) {
	return it.next()
}

// IterateParse lazily parses a sequence of p's values from in: on failure
// at the current position it skips one token and retries, terminating at
// EOF (spec.md §4.3.14).
func IterateParse[C IterCursor[C], A any](p Parser[C, A], in C) *ParseIterator[A] {
	cur := in
	done := false
	return &ParseIterator[A]{next: func() (A, bool) {
		var zero A
		for {
			if done || cur.IsEOF() {
				done = true
				return zero, false
			}
			r := p.Apply(cur)
			if r.Matches() {
				next := r.Next()
				if stopped(cur, next) {
					next = cur.Skip(1)
				}
				cur = next
				return r.Value(), true
			}
			cur = cur.Skip(1)
		}
	}}
}

// StreamParse is IterateParse under the name spec.md gives to the
// streaming-source variant; the skip-and-restart mechanics are identical,
// the distinction is only in the kind of cursor the caller supplies
// (spec.md §4.3.14).
func StreamParse[C IterCursor[C], A any](p Parser[C, A], in C) *ParseIterator[A] {
	return IterateParse(p, in)
}
