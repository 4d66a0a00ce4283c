package automata

import "fmt"

// InvariantError reports a pipeline invariant violation — e.g. an NFA with
// no initial state reaching Determinize. Per spec.md §7, this should never
// occur for well-formed input produced by the lexer/parser; it exists as a
// fail-fast diagnostic for bugs in the pipeline itself.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Message)
}
