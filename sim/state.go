package sim

// Compartment labels a sub-population bucket.
type Compartment string

const (
	Susceptible Compartment = "S"
	Exposed     Compartment = "E"
	Infectious  Compartment = "I"
	Recovered   Compartment = "R"
	Dead        Compartment = "D"
	// Cases is the cumulative case counter carried by the Ebola and plague
	// variants. It is an auxiliary metric, not population-bearing: it only
	// ever grows and is excluded from conservation.
	Cases Compartment = "C"
)

// State is a snapshot of all compartment counts at one simulated instant.
// It is a plain value: every Step carries its own copy, so snapshots held
// by callers are never retroactively mutated by later steps. Compartments a
// variant does not declare stay zero.
type State struct {
	S, E, I, R, D, C int
}

// Count returns the count for a single compartment.
func (s State) Count(c Compartment) int {
	switch c {
	case Susceptible:
		return s.S
	case Exposed:
		return s.E
	case Infectious:
		return s.I
	case Recovered:
		return s.R
	case Dead:
		return s.D
	case Cases:
		return s.C
	}
	return 0
}

// Counts unpacks the snapshot in the given compartment order. Consumers
// pass a variant's Descriptor.Compartments to get the variant's declared
// column layout.
func (s State) Counts(order []Compartment) []int {
	out := make([]int, len(order))
	for i, c := range order {
		out[i] = s.Count(c)
	}
	return out
}

// PopulationSum is the total over population-bearing compartments, i.e.
// everything except the cumulative case counter.
func (s State) PopulationSum() int {
	return s.S + s.E + s.I + s.R + s.D
}

// CheckNonNegative returns a NegativeCountError if any count is below zero.
// Handlers assume well-formed parameters and do not check this themselves;
// tests use it to prove the assumption holds.
func (s State) CheckNonNegative() error {
	for _, c := range []Compartment{Susceptible, Exposed, Infectious, Recovered, Dead, Cases} {
		if n := s.Count(c); n < 0 {
			return &NegativeCountError{Compartment: c, Count: n}
		}
	}
	return nil
}
