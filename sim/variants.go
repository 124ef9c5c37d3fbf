package sim

// Variant constructors. Each one validates its parameters, installs a
// complete handler table, seeds the initial compartment counts, and pushes
// the initial transition events. Handlers for the transitions several
// variants share live here as Engine methods; a variant whose delta is a
// one-off (case counting, beta changes) installs a closure instead.

// VaccinationConfig configures the vaccination-campaign variants. Starting
// at BeginVaccine (a day number), a daily determine_vaccines round asks
// VaccineRate how many doses to give that day and spreads them evenly
// across the day. The round re-schedules itself only while at least one
// individual is infectious at firing time; once it stops it never resumes,
// even if infections later resurge through waning immunity.
type VaccinationConfig struct {
	BeginVaccine float64
	VaccineRate  func(t float64) float64
}

func (c VaccinationConfig) validate() error {
	if c.BeginVaccine < 0 {
		return invalidParam("begin_vaccine", "must be >= 0, got %v", c.BeginVaccine)
	}
	if c.VaccineRate == nil {
		return invalidParam("vaccine_rate", "rate function is required")
	}
	return nil
}

// BetaShift configures the one-shot transmission-rate change carried by
// the Ebola, Covid and plague variants: at time At, beta becomes NewBeta.
type BetaShift struct {
	At      float64
	NewBeta float64
}

func (c BetaShift) validate() error {
	if c.At < 0 {
		return invalidParam("beta_change", "change time must be >= 0, got %v", c.At)
	}
	if c.NewBeta < 0 {
		return invalidParam("new_beta", "must be >= 0, got %v", c.NewBeta)
	}
	return nil
}

// === Shared transitions ===

// exposeInfectious moves one susceptible straight into the infectious
// compartment and books their recovery.
func (e *Engine) exposeInfectious() {
	e.state.S--
	e.state.I++
	e.schedule(e.time+e.draw(ProcessRecovery), KindRecovery)
}

// recover moves one infectious individual into the recovered compartment.
func (e *Engine) recover() {
	e.state.I--
	e.state.R++
}

// recoverWaning recovers and books the later loss of immunity.
func (e *Engine) recoverWaning() {
	e.state.I--
	e.state.R++
	e.schedule(e.time+e.draw(ProcessMutation), KindMutation)
}

// mutate returns one recovered individual to the susceptible pool: the
// pathogen drifted past their immunity.
func (e *Engine) mutate() {
	e.state.R--
	e.state.S++
}

// die moves one infectious individual into the dead compartment.
func (e *Engine) die() {
	e.state.I--
	e.state.D++
}

// scheduleFate books either a death or a recovery for a newly infectious
// individual, branching on one Bernoulli(probDead) draw.
func (e *Engine) scheduleFate() {
	if e.fate.Next() != 0 {
		e.schedule(e.time+e.draw(ProcessDeath), KindDeath)
	} else {
		e.schedule(e.time+e.draw(ProcessRecovery), KindRecovery)
	}
}

// determineVaccines runs one daily vaccination round: n doses spread at
// offsets k/(n+1) through the coming day, then the round re-booked one day
// out. Firing with no one infectious ends the campaign for good.
func (e *Engine) determineVaccines(rate func(float64) float64) {
	if e.state.I < 1 {
		return
	}
	n := int(rate(e.time))
	for k := 1; k <= n; k++ {
		e.schedule(e.time+float64(k)/float64(n+1), KindVaccine)
	}
	e.schedule(e.time+1, KindDetermineVaccines)
}

// vaccinate grants one susceptible individual immunity. A dose arriving
// with no susceptibles left is discarded.
func (e *Engine) vaccinate() {
	if e.state.S <= 0 {
		return
	}
	e.state.S--
	e.state.R++
}

// vaccinateWaning is vaccinate for the variants where vaccine-induced
// immunity also wanes: the mutation is booked alongside the dose.
func (e *Engine) vaccinateWaning() {
	if e.state.S <= 0 {
		return
	}
	e.schedule(e.time+e.draw(ProcessMutation), KindMutation)
	e.state.S--
	e.state.R++
}

// === Initial seeding ===

// seedInfectious books one recovery per initially-infected individual.
// Runs at construction, so the draws are absolute event times.
func (e *Engine) seedInfectious(n int) {
	for i := 0; i < n; i++ {
		e.schedule(e.draw(ProcessRecovery), KindRecovery)
	}
}

// seedInfectiousFated books one death-or-recovery per initially-infected
// individual.
func (e *Engine) seedInfectiousFated(n int) {
	for i := 0; i < n; i++ {
		e.scheduleFate()
	}
}

// === SIR ===

var descSIR = Descriptor{
	Name:         "SIR",
	Compartments: []Compartment{Susceptible, Infectious, Recovered},
	Processes:    []Process{ProcessRecovery},
}

// NewSIR builds the basic susceptible-infectious-recovered model.
func NewSIR(p Params, recovery DistSpec) (*Engine, error) {
	e, err := newEngine(descSIR, p, map[Process]DistSpec{
		ProcessRecovery: recovery,
	})
	if err != nil {
		return nil, err
	}
	e.handlers = handlerTable{
		KindExposure: e.exposeInfectious,
		KindRecovery: e.recover,
	}
	e.state = State{S: p.Population - p.InitExposed, I: p.InitExposed}
	e.seedInfectious(p.InitExposed)
	e.insertExposure()
	return e, nil
}

// === SIRS ===

var descSIRS = Descriptor{
	Name:         "SIRS",
	Compartments: []Compartment{Susceptible, Infectious, Recovered},
	Processes:    []Process{ProcessRecovery, ProcessMutation},
}

// NewSIRS builds the SIR model with waning immunity: each recovery books a
// later mutation event that returns the individual to the susceptible
// pool.
func NewSIRS(p Params, recovery, mutation DistSpec) (*Engine, error) {
	e, err := newEngine(descSIRS, p, map[Process]DistSpec{
		ProcessRecovery: recovery,
		ProcessMutation: mutation,
	})
	if err != nil {
		return nil, err
	}
	e.handlers = handlerTable{
		KindExposure: e.exposeInfectious,
		KindRecovery: e.recoverWaning,
		KindMutation: e.mutate,
	}
	e.state = State{S: p.Population - p.InitExposed, I: p.InitExposed}
	e.seedInfectious(p.InitExposed)
	e.insertExposure()
	return e, nil
}

// === SIRD ===

var descSIRD = Descriptor{
	Name:         "SIRD",
	Compartments: []Compartment{Susceptible, Infectious, Recovered, Dead},
	Processes:    []Process{ProcessRecovery, ProcessDeath},
}

// NewSIRD builds the SIR model with mortality: each exposure branches on a
// Bernoulli(probDead) draw into a scheduled death or a scheduled recovery.
func NewSIRD(p Params, recovery, death DistSpec, probDead float64) (*Engine, error) {
	e, err := newEngine(descSIRD, p, map[Process]DistSpec{
		ProcessRecovery: recovery,
		ProcessDeath:    death,
	})
	if err != nil {
		return nil, err
	}
	if err := e.withFate(probDead); err != nil {
		return nil, err
	}
	e.handlers = handlerTable{
		KindExposure: func() {
			e.state.S--
			e.state.I++
			e.scheduleFate()
		},
		KindRecovery: e.recover,
		KindDeath:    e.die,
	}
	e.state = State{S: p.Population - p.InitExposed, I: p.InitExposed}
	e.seedInfectiousFated(p.InitExposed)
	e.insertExposure()
	return e, nil
}

// === SR_SIR ===

var descSRSIR = Descriptor{
	Name:         "SR_SIR",
	Compartments: []Compartment{Susceptible, Infectious, Recovered},
	Processes:    []Process{ProcessRecovery},
}

// NewSRSIR builds the SIR model with a vaccination campaign: from
// vac.BeginVaccine onward, a daily round moves vac.VaccineRate(t)
// susceptibles per day into the recovered compartment.
func NewSRSIR(p Params, recovery DistSpec, vac VaccinationConfig) (*Engine, error) {
	if err := vac.validate(); err != nil {
		return nil, err
	}
	e, err := newEngine(descSRSIR, p, map[Process]DistSpec{
		ProcessRecovery: recovery,
	})
	if err != nil {
		return nil, err
	}
	e.handlers = handlerTable{
		KindExposure: e.exposeInfectious,
		KindRecovery: e.recover,
		KindDetermineVaccines: func() {
			e.determineVaccines(vac.VaccineRate)
		},
		KindVaccine: e.vaccinate,
	}
	e.state = State{S: p.Population - p.InitExposed, I: p.InitExposed}
	e.seedInfectious(p.InitExposed)
	e.schedule(vac.BeginVaccine, KindDetermineVaccines)
	e.insertExposure()
	return e, nil
}
