package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"
)

// Process names a stationary random-duration process a variant samples
// from, one VariateStream each.
type Process string

const (
	ProcessRecovery   Process = "recovery"
	ProcessIncubation Process = "incubation"
	ProcessDeath      Process = "death"
	ProcessMutation   Process = "mutation"

	// processExposure feeds the unit-rate exponential draws behind the
	// memoryless exposure insertion; every variant has it implicitly.
	processExposure = "exposure"
	// processFate feeds the Bernoulli death-vs-recovery branch in the
	// variants with mortality.
	processFate = "fate"
)

// Descriptor declares a variant's shape: its name, its ordered compartment
// list (the column layout consumers unpack snapshots with), and the
// stationary processes it requires distributions for.
type Descriptor struct {
	Name         string
	Compartments []Compartment
	Processes    []Process
}

// Params are the construction parameters every model variant shares.
type Params struct {
	Beta        float64 // transmission rate
	Population  int     // total population, conserved across compartments
	InitExposed int     // individuals seeded into the first infected compartment
	Seed        int64   // master seed for all variate streams
}

func (p Params) validate() error {
	if p.Beta < 0 {
		return invalidParam("beta", "transmission rate must be >= 0, got %v", p.Beta)
	}
	if p.Population <= 0 {
		return invalidParam("population", "must be a positive integer, got %d", p.Population)
	}
	if p.InitExposed < 0 || p.InitExposed > p.Population {
		return invalidParam("init_exposed", "must be in [0, population], got %d with population %d", p.InitExposed, p.Population)
	}
	return nil
}

// Step is one yielded element of the iteration protocol: the event that
// fired, the time it fired at, and the state snapshot after its handler
// (and the exposure-insertion attempt) ran.
type Step struct {
	Kind  EventKind
	Time  float64
	State State
}

// handlerTable maps each event kind a variant can schedule to its
// transition function. Variant constructors install a complete table; the
// engine panics on a kind with no entry, since a missing handler is a
// wiring bug, never a runtime condition.
type handlerTable map[EventKind]func()

// Engine is the generic event-driven simulation core. It owns the clock,
// the compartment state, the event queue, and one VariateStream per
// stationary process; a variant supplies the handler table and the initial
// queue contents. All mutation of state and queue goes through Next.
type Engine struct {
	desc Descriptor

	time  float64
	state State
	queue *EventQueue

	// beta is mutable: the beta_change event overwrites it mid-run.
	beta float64
	// invPopulation is fixed at 1/initial-population. The force-of-infection
	// divisor deliberately does NOT track deaths; reference outputs depend
	// on this, so it stays the initial population for the engine's lifetime.
	invPopulation float64
	population    int

	rng      *PartitionedRNG
	streams  map[Process]*VariateStream
	exposure *VariateStream
	fate     *VariateStream

	handlers  handlerTable
	exhausted bool
}

// newEngine validates shared parameters, derives one deterministic variate
// stream per declared process, and returns an engine with an empty queue.
// The variant constructor finishes the job: handler table, initial state,
// initial events.
func newEngine(desc Descriptor, p Params, specs map[Process]DistSpec) (*Engine, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		desc:          desc,
		beta:          p.Beta,
		invPopulation: 1 / float64(p.Population),
		population:    p.Population,
		queue:         NewEventQueue(),
		rng:           NewPartitionedRNG(NewSimulationKey(p.Seed)),
		streams:       make(map[Process]*VariateStream, len(desc.Processes)),
	}

	for _, proc := range desc.Processes {
		spec, ok := specs[proc]
		if !ok {
			return nil, invalidParam(string(proc), "variant %s requires a %s distribution", desc.Name, proc)
		}
		dist, err := spec.Build(e.rng.ForProcess(string(proc)))
		if err != nil {
			return nil, fmt.Errorf("%s distribution: %w", proc, err)
		}
		e.streams[proc] = NewVariateStream(dist)
	}

	e.exposure = NewVariateStream(distuv.Exponential{Rate: 1, Src: e.rng.ForProcess(processExposure)})
	return e, nil
}

// withFate adds the Bernoulli branch stream used by the mortality variants.
func (e *Engine) withFate(probDead float64) error {
	if probDead < 0 || probDead > 1 {
		return invalidParam("prob_dead", "must be a probability in [0, 1], got %v", probDead)
	}
	e.fate = NewVariateStream(distuv.Bernoulli{P: probDead, Src: e.rng.ForProcess(processFate)})
	return nil
}

// Descriptor returns the variant's shape.
func (e *Engine) Descriptor() Descriptor {
	return e.desc
}

// Time returns the current simulation clock.
func (e *Engine) Time() float64 {
	return e.time
}

// Snapshot returns the current compartment counts.
func (e *Engine) Snapshot() State {
	return e.state
}

// Beta returns the current transmission rate (it changes after a
// beta_change event fires).
func (e *Engine) Beta() float64 {
	return e.beta
}

// schedule pushes an event at absolute time t.
func (e *Engine) schedule(t float64, kind EventKind) {
	e.queue.Schedule(t, kind)
}

// draw consumes exactly one variate from the named process stream.
func (e *Engine) draw(proc Process) float64 {
	return e.streams[proc].Next()
}

// Next pops the earliest event, advances the clock, dispatches the
// variant's handler, attempts an exposure insertion, and returns the
// resulting step. The second return is false once the queue is exhausted;
// that is normal termination, not an error, and stays false forever after.
func (e *Engine) Next() (Step, bool) {
	if e.exhausted {
		return Step{}, false
	}
	ev, err := e.queue.PopMin()
	if err != nil {
		e.exhausted = true
		return Step{}, false
	}

	e.time = ev.Time

	handler, ok := e.handlers[ev.Kind]
	if !ok {
		logrus.Panicf("%s: no handler installed for %s event", e.desc.Name, ev.Kind)
	}
	handler()
	e.insertExposure()

	logrus.Debugf("[t=%12.6f] %-18s %v", e.time, ev.Kind, e.state.Counts(e.desc.Compartments))
	return Step{Kind: ev.Kind, Time: e.time, State: e.state}, true
}

// insertExposure schedules the next exposure event if one would fire before
// the earliest already-scheduled event.
//
// The exposure process is Poisson with rate beta*S*I/N, and S and I are
// piecewise-constant between events. By memorylessness it is enough to
// redraw a unit exponential after every event, rescale by the current
// rate, and keep the candidate only if it lands inside the current
// inter-event gap; a later step redraws after S or I change. One stream
// serves the whole run, and no draw is consumed while nobody is
// infectious or nobody is susceptible.
func (e *Engine) insertExposure() {
	if e.state.I == 0 || e.state.S == 0 {
		return
	}

	dt := math.Inf(1)
	if next, err := e.queue.PeekMinTime(); err == nil {
		dt = next - e.time
	}

	rate := e.beta * float64(e.state.S) * float64(e.state.I) * e.invPopulation
	delay := e.exposure.Next() / rate
	if delay < dt {
		e.schedule(e.time+delay, KindExposure)
	}
}

// Run steps until the queue is exhausted and returns every step.
func (e *Engine) Run() []Step {
	var steps []Step
	for {
		step, ok := e.Next()
		if !ok {
			return steps
		}
		steps = append(steps, step)
	}
}

// RunUntil steps until the first event at or after time t and returns the
// steps strictly before it. The bound is a strict upper bound on returned
// event times, not padding: the run ends at the last event under t. As
// with the underlying iteration, the boundary event itself is consumed
// from the queue even though it is not returned.
func (e *Engine) RunUntil(t float64) []Step {
	var steps []Step
	for {
		step, ok := e.Next()
		if !ok {
			return steps
		}
		if step.Time >= t {
			return steps
		}
		steps = append(steps, step)
	}
}
