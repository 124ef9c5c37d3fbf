package sim

// SEIR-family constructors: variants with an exposed (incubating)
// compartment between exposure and infectiousness.

// === Shared transitions ===

// exposeLatent moves one susceptible into the exposed compartment and
// books the end of their incubation.
func (e *Engine) exposeLatent() {
	e.state.S--
	e.state.E++
	e.schedule(e.time+e.draw(ProcessIncubation), KindIncubation)
}

// incubate ends one incubation: the individual turns infectious and their
// recovery is booked.
func (e *Engine) incubate() {
	e.state.E--
	e.state.I++
	e.schedule(e.time+e.draw(ProcessRecovery), KindRecovery)
}

// incubateFated is incubate for the mortality variants: the outcome is a
// Bernoulli branch between death and recovery.
func (e *Engine) incubateFated() {
	e.state.E--
	e.state.I++
	e.scheduleFate()
}

// seedLatent books one incubation per initially-exposed individual. Runs
// at construction, so the draws are absolute event times.
func (e *Engine) seedLatent(n int) {
	for i := 0; i < n; i++ {
		e.schedule(e.draw(ProcessIncubation), KindIncubation)
	}
}

// === SEIR ===

var descSEIR = Descriptor{
	Name:         "SEIR",
	Compartments: []Compartment{Susceptible, Exposed, Infectious, Recovered},
	Processes:    []Process{ProcessIncubation, ProcessRecovery},
}

// NewSEIR builds the susceptible-exposed-infectious-recovered model:
// exposure leads to a latent incubation period before infectiousness.
func NewSEIR(p Params, incubation, recovery DistSpec) (*Engine, error) {
	e, err := newEngine(descSEIR, p, map[Process]DistSpec{
		ProcessIncubation: incubation,
		ProcessRecovery:   recovery,
	})
	if err != nil {
		return nil, err
	}
	e.handlers = handlerTable{
		KindExposure:   e.exposeLatent,
		KindIncubation: e.incubate,
		KindRecovery:   e.recover,
	}
	e.state = State{S: p.Population - p.InitExposed, E: p.InitExposed}
	e.seedLatent(p.InitExposed)
	return e, nil
}

// === SR_SEIRSD ===

var descSRSEIRSD = Descriptor{
	Name:         "SR_SEIRSD",
	Compartments: []Compartment{Susceptible, Exposed, Infectious, Recovered, Dead},
	Processes:    []Process{ProcessIncubation, ProcessRecovery, ProcessDeath, ProcessMutation},
}

// NewSRSEIRSD builds the full SEIR model with mortality, waning immunity,
// and a vaccination campaign. Vaccine-induced immunity wanes too: each
// dose books a mutation alongside the S to R move.
func NewSRSEIRSD(p Params, incubation, recovery, death, mutation DistSpec, probDead float64, vac VaccinationConfig) (*Engine, error) {
	if err := vac.validate(); err != nil {
		return nil, err
	}
	e, err := newEngine(descSRSEIRSD, p, map[Process]DistSpec{
		ProcessIncubation: incubation,
		ProcessRecovery:   recovery,
		ProcessDeath:      death,
		ProcessMutation:   mutation,
	})
	if err != nil {
		return nil, err
	}
	if err := e.withFate(probDead); err != nil {
		return nil, err
	}
	e.handlers = handlerTable{
		KindExposure:   e.exposeLatent,
		KindIncubation: e.incubateFated,
		KindRecovery:   e.recoverWaning,
		KindDeath:      e.die,
		KindMutation:   e.mutate,
		KindDetermineVaccines: func() {
			e.determineVaccines(vac.VaccineRate)
		},
		KindVaccine: e.vaccinateWaning,
	}
	e.state = State{S: p.Population - p.InitExposed, E: p.InitExposed}
	e.seedLatent(p.InitExposed)
	e.schedule(vac.BeginVaccine, KindDetermineVaccines)
	return e, nil
}

// === Ebola_SEIRSD ===

var descEbolaSEIRSD = Descriptor{
	Name:         "Ebola_SEIRSD",
	Compartments: []Compartment{Susceptible, Exposed, Infectious, Recovered, Dead, Cases},
	Processes:    []Process{ProcessIncubation, ProcessRecovery, ProcessDeath, ProcessMutation},
}

// NewEbolaSEIRSD builds the Ebola-calibrated SEIRSD model: mortality,
// waning immunity, a cumulative case counter incremented as each
// incubation completes, and a one-shot transmission-rate change modelling
// the onset of interventions.
func NewEbolaSEIRSD(p Params, incubation, recovery, death, mutation DistSpec, probDead float64, shift BetaShift) (*Engine, error) {
	if err := shift.validate(); err != nil {
		return nil, err
	}
	e, err := newEngine(descEbolaSEIRSD, p, map[Process]DistSpec{
		ProcessIncubation: incubation,
		ProcessRecovery:   recovery,
		ProcessDeath:      death,
		ProcessMutation:   mutation,
	})
	if err != nil {
		return nil, err
	}
	if err := e.withFate(probDead); err != nil {
		return nil, err
	}
	e.handlers = handlerTable{
		KindExposure: e.exposeLatent,
		KindIncubation: func() {
			e.state.E--
			e.state.I++
			e.state.C++
			e.scheduleFate()
		},
		KindRecovery: e.recoverWaning,
		KindDeath:    e.die,
		KindMutation: e.mutate,
		KindBetaChange: func() {
			e.beta = shift.NewBeta
		},
	}
	e.state = State{S: p.Population - p.InitExposed, E: p.InitExposed}
	e.seedLatent(p.InitExposed)
	e.schedule(shift.At, KindBetaChange)
	return e, nil
}

// === Covid_SEIRD ===

var descCovidSEIRD = Descriptor{
	Name:         "Covid_SEIRD",
	Compartments: []Compartment{Susceptible, Exposed, Infectious, Recovered, Dead},
	Processes:    []Process{ProcessIncubation, ProcessRecovery, ProcessDeath},
}

// NewCovidSEIRD builds the Covid-calibrated SEIRD model: mortality and a
// one-shot transmission-rate change, no waning, no vaccination, no case
// counter.
func NewCovidSEIRD(p Params, incubation, recovery, death DistSpec, probDead float64, shift BetaShift) (*Engine, error) {
	if err := shift.validate(); err != nil {
		return nil, err
	}
	e, err := newEngine(descCovidSEIRD, p, map[Process]DistSpec{
		ProcessIncubation: incubation,
		ProcessRecovery:   recovery,
		ProcessDeath:      death,
	})
	if err != nil {
		return nil, err
	}
	if err := e.withFate(probDead); err != nil {
		return nil, err
	}
	e.handlers = handlerTable{
		KindExposure:   e.exposeLatent,
		KindIncubation: e.incubateFated,
		KindRecovery:   e.recover,
		KindDeath:      e.die,
		KindBetaChange: func() {
			e.beta = shift.NewBeta
		},
	}
	e.state = State{S: p.Population - p.InitExposed, E: p.InitExposed}
	e.seedLatent(p.InitExposed)
	e.schedule(shift.At, KindBetaChange)
	return e, nil
}

// === Plague_SEIRD ===

var descPlagueSEIRD = Descriptor{
	Name:         "Plague_SEIRD",
	Compartments: []Compartment{Susceptible, Exposed, Infectious, Recovered, Dead, Cases},
	Processes:    []Process{ProcessIncubation, ProcessRecovery, ProcessDeath},
}

// NewPlagueSEIRD builds the plague-calibrated SEIRD model: the Ebola model
// minus waning immunity. Recovery is terminal; the case counter and the
// beta change remain.
func NewPlagueSEIRD(p Params, incubation, recovery, death DistSpec, probDead float64, shift BetaShift) (*Engine, error) {
	if err := shift.validate(); err != nil {
		return nil, err
	}
	e, err := newEngine(descPlagueSEIRD, p, map[Process]DistSpec{
		ProcessIncubation: incubation,
		ProcessRecovery:   recovery,
		ProcessDeath:      death,
	})
	if err != nil {
		return nil, err
	}
	if err := e.withFate(probDead); err != nil {
		return nil, err
	}
	e.handlers = handlerTable{
		KindExposure: e.exposeLatent,
		KindIncubation: func() {
			e.state.E--
			e.state.I++
			e.state.C++
			e.scheduleFate()
		},
		KindRecovery: e.recover,
		KindDeath:    e.die,
		KindBetaChange: func() {
			e.beta = shift.NewBeta
		},
	}
	e.state = State{S: p.Population - p.InitExposed, E: p.InitExposed}
	e.seedLatent(p.InitExposed)
	e.schedule(shift.At, KindBetaChange)
	return e, nil
}
