package parsec

import "sync/atomic"

var refIDCounter int64

func nextRefID() int64 {
	return atomic.AddInt64(&refIDCounter, 1)
}

// GuardCursor is the contract Ref needs from its cursor type: a recursion
// guard to consult, on top of the base Cursor contract.
type GuardCursor interface {
	Cursor
	Guard() *recursionGuard
}

// Ref is a placeholder parser whose target is assigned exactly once after
// construction, used to express recursive and mutually recursive grammars
// without relying on closures that capture not-yet-defined parsers
// (spec.md §3.3, §4.3.11, §9 "Cyclic grammar graphs").
type Ref[C GuardCursor, A any] struct {
	id     int64
	target *Parser[C, A]
}

// NewRef constructs an unassigned reference. Applying it before Set yields
// a NoMatch labeled "ref applied before Set" rather than a panic (see
// Parser).
func NewRef[C GuardCursor, A any]() *Ref[C, A] {
	return &Ref[C, A]{id: nextRefID()}
}

// Set assigns the reference's target. It may only be called once; a second
// call panics (spec.md §5: "Concurrent set on the same Ref is a usage
// error" — calling Set twice, concurrently or not, is rejected the same
// way).
func (r *Ref[C, A]) Set(p Parser[C, A]) {
	if r.target != nil {
		panic(&ProgrammerError{Op: "Ref.Set", Msg: "reference already assigned"})
	}
	r.target = &p
}

// Parser returns the Parser view of this reference, for use inside other
// combinators. Every apply delegates to the assigned target, consulting the
// input's recursion guard first to detect unguarded left recursion
// (spec.md §4.3.13). Applying an unassigned reference is a value-level
// No-match, not a panic (spec.md §3.3: "on apply before assignment,
// returns No-match with a fatal label").
func (r *Ref[C, A]) Parser() Parser[C, A] {
	return newParser[C, A]("ref", false, func(in C) Result[C, A] {
		if r.target == nil {
			return Failure[C, A](in, "ref applied before Set", nil)
		}
		pos := in.Position()
		guard := in.Guard()
		if !guard.enter(r.id, pos) {
			guard.leave(r.id, pos)
			return Failure[C, A](in, "recursion limit exceeded", nil)
		}
		defer guard.leave(r.id, pos)
		return r.target.Apply(in)
	})
}
