package parsec

import "fmt"

// ProgrammerError signals a contract violation rather than an ordinary
// parse failure: a negative Skip count, a concurrent Ref.Set, or reading
// Value() off a non-Match Result. These are not part of the value-level
// Result algebra (spec.md §7
// "Propagation policy") and are instead raised as panics, matching how the
// teacher corpus's deepnoodle-ai-risor distinguishes recoverable value
// errors (errz.StructuredError) from unrecoverable ones.
type ProgrammerError struct {
	Op  string
	Msg string
}

func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("parsec: %s: %s", e.Op, e.Msg)
}
