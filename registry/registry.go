// Package registry is a named-parser plugin mechanism: spec.md §1 lists a
// plugin/extension registry as out of scope for the core engine, but it
// remains a reasonable supplementary feature for a complete repository
// built on top of that engine. New package; logs registration events
// through internal/xlog the way the teacher corpus's CLI layers log
// their own lifecycle events.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ashbridge/parsec"
	"github.com/ashbridge/parsec/internal/xlog"
)

// AnyParser type-erases a Parser[C, A] so parsers of differing value
// types can share one registry.
type AnyParser[C parsec.Cursor] struct {
	Label string
	apply func(C) parsec.Result[C, any]
}

// Wrap builds an AnyParser from a concrete Parser[C, A].
func Wrap[C parsec.Cursor, A any](p parsec.Parser[C, A]) AnyParser[C] {
	return AnyParser[C]{
		Label: p.Label,
		apply: func(in C) parsec.Result[C, any] {
			res := p.Apply(in)
			if !res.Matches() {
				return parsec.FailureErr[C, any](res.ParseErr())
			}
			return parsec.Success[C, any](res.Next(), res.Value())
		},
	}
}

// Parser returns the type-erased parser as a usable Parser[C, any].
func (a AnyParser[C]) Parser() parsec.Parser[C, any] {
	return parsec.Parser[C, any]{Label: a.Label, AcceptsEmpty: false, Apply: a.apply}
}

// Registry maps names to type-erased parsers for a fixed cursor type C.
// Reads are safe for concurrent use once Freeze has been called; writes
// before that point must come from a single goroutine (spec.md's general
// concurrency model: parsers are immutable after construction).
type Registry[C parsec.Cursor] struct {
	mu     sync.RWMutex
	byName map[string]AnyParser[C]
	frozen bool
}

// New creates an empty, unfrozen registry.
func New[C parsec.Cursor]() *Registry[C] {
	return &Registry[C]{byName: make(map[string]AnyParser[C])}
}

// Register adds a parser under name. It panics if called after Freeze or
// if name is already registered, matching the engine's "Ref.Set may only
// be called once" discipline for one-time wiring steps.
func (r *Registry[C]) Register(name string, p AnyParser[C]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		panic(&parsec.ProgrammerError{Op: "Registry.Register", Msg: "registry is frozen"})
	}
	if _, exists := r.byName[name]; exists {
		panic(&parsec.ProgrammerError{Op: "Registry.Register", Msg: fmt.Sprintf("parser %q already registered", name)})
	}
	r.byName[name] = p
	logger := xlog.With("registry")
	logger.Debug().Str("name", name).Msg("registered parser")
}

// Lookup returns the parser registered under name, or false.
func (r *Registry[C]) Lookup(name string) (AnyParser[C], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	return p, ok
}

// MustLookup is Lookup but panics if name is not registered.
func (r *Registry[C]) MustLookup(name string) AnyParser[C] {
	p, ok := r.Lookup(name)
	if !ok {
		panic(&parsec.ProgrammerError{Op: "Registry.MustLookup", Msg: fmt.Sprintf("no parser registered as %q", name)})
	}
	return p
}

// Names returns the registered names in sorted order.
func (r *Registry[C]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Freeze marks the registry read-only; after Freeze, Register panics and
// concurrent Lookup calls from multiple goroutines are safe.
func (r *Registry[C]) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}
