package sim

import (
	"errors"
	"fmt"
)

// ErrQueueEmpty is returned by EventQueue.PopMin and PeekMinTime when no
// events are pending. Inside the engine it means the simulation has
// naturally ended; Next surfaces it to callers as normal exhaustion, never
// as a failure.
var ErrQueueEmpty = errors.New("event queue is empty")

// InvalidParameterError reports a malformed construction parameter. Variant
// constructors return it immediately and fatally: no partial engine is ever
// handed back.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

func invalidParam(param, format string, args ...any) error {
	return &InvalidParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// NegativeCountError reports a compartment count driven below zero. Correct
// handlers never produce one; it exists so tests can assert, via
// State.CheckNonNegative, that no event sequence reaches such a state.
type NegativeCountError struct {
	Compartment Compartment
	Count       int
}

func (e *NegativeCountError) Error() string {
	return fmt.Sprintf("compartment %s has negative count %d", e.Compartment, e.Count)
}
