package sim

import "fmt"

// EventKind identifies the transition an event triggers when it is popped
// from the queue. The set is closed: each model variant installs a handler
// for exactly the kinds it can ever schedule, and dispatch on an uninstalled
// kind is a programming error, not a runtime lookup failure.
type EventKind uint8

// Kinds are declared in lexicographic label order. The EventQueue breaks
// equal-time ties by comparing kind ordinals, which therefore matches
// comparing labels; TestEventKind_OrdinalsFollowLabelOrder pins this.
const (
	KindBetaChange EventKind = iota
	KindDeath
	KindDetermineVaccines
	KindExposure
	KindIncubation
	KindMutation
	KindRecovery
	KindVaccine

	numEventKinds
)

var kindLabels = [numEventKinds]string{
	KindBetaChange:        "beta_change",
	KindDeath:             "death",
	KindDetermineVaccines: "determine_vaccines",
	KindExposure:          "exposure",
	KindIncubation:        "incubation",
	KindMutation:          "mutation",
	KindRecovery:          "recovery",
	KindVaccine:           "vaccine",
}

func (k EventKind) String() string {
	if k < numEventKinds {
		return kindLabels[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a one-shot scheduled occurrence. Events are created by handlers
// or by variant initialization and destroyed when popped and dispatched;
// recurring behavior (daily vaccination rounds) is a handler re-pushing
// itself.
type Event struct {
	Time float64
	Kind EventKind
}
