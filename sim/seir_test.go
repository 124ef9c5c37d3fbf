package sim

import (
	"testing"
)

func TestSEIR_BetaZero_IncubationThenRecovery(t *testing.T) {
	// GIVEN a non-transmitting SEIR model with 4 initially exposed
	e, err := NewSEIR(Params{Beta: 0, Population: 80, InitExposed: 4, Seed: 31},
		Exponential(0.4), Exponential(0.2))
	if err != nil {
		t.Fatalf("NewSEIR: %v", err)
	}

	// WHEN it runs to exhaustion
	steps := runAll(t, e)
	assertConserved(t, steps, 80)

	// THEN each seeded individual incubates and recovers, nobody else is
	// ever exposed
	counts := countKinds(steps)
	if counts[KindExposure] != 0 {
		t.Errorf("got %d exposures, want 0", counts[KindExposure])
	}
	if counts[KindIncubation] != 4 || counts[KindRecovery] != 4 {
		t.Errorf("got %d incubations and %d recoveries, want 4 and 4",
			counts[KindIncubation], counts[KindRecovery])
	}
	final := steps[len(steps)-1].State
	want := State{S: 76, R: 4}
	if final != want {
		t.Errorf("final state %+v, want %+v", final, want)
	}
}

func TestSEIR_Epidemic_Conserved(t *testing.T) {
	e, err := NewSEIR(Params{Beta: 1.8, Population: 300, InitExposed: 3, Seed: 37},
		Exponential(0.5), Exponential(0.25))
	if err != nil {
		t.Fatalf("NewSEIR: %v", err)
	}
	steps := runAll(t, e)
	assertConserved(t, steps, 300)

	// exposures enter E before I: every exposure has a matching incubation
	counts := countKinds(steps)
	if counts[KindIncubation] != counts[KindExposure]+3 {
		t.Errorf("got %d incubations for %d exposures plus 3 seeded",
			counts[KindIncubation], counts[KindExposure])
	}
}

func TestCovidSEIRD_BetaChange_TakesEffect(t *testing.T) {
	// GIVEN a Covid model that cannot transmit until the rate change at t=1
	e, err := NewCovidSEIRD(Params{Beta: 0, Population: 200, InitExposed: 4, Seed: 41},
		Exponential(0.3), Exponential(0.2), Exponential(0.2),
		0.2, BetaShift{At: 1, NewBeta: 3})
	if err != nil {
		t.Fatalf("NewCovidSEIRD: %v", err)
	}
	if e.Beta() != 0 {
		t.Fatalf("initial beta %v, want 0", e.Beta())
	}

	// WHEN it runs to exhaustion
	steps := runAll(t, e)
	assertConserved(t, steps, 200)

	// THEN beta has been overwritten and every exposure happened after the
	// change
	if e.Beta() != 3 {
		t.Errorf("final beta %v, want 3", e.Beta())
	}
	counts := countKinds(steps)
	if counts[KindBetaChange] != 1 {
		t.Errorf("got %d beta_change events, want 1", counts[KindBetaChange])
	}
	for i, step := range steps {
		if step.Kind == KindExposure && step.Time < 1 {
			t.Errorf("step %d: exposure at %v, before the beta change", i, step.Time)
		}
	}
}

func TestPlagueSEIRD_CaseCounterTracksIncubations(t *testing.T) {
	// GIVEN a plague model with mixed outcomes
	e, err := NewPlagueSEIRD(Params{Beta: 1.6, Population: 250, InitExposed: 5, Seed: 43},
		Exponential(0.4), Exponential(0.25), Exponential(0.25),
		0.4, BetaShift{At: 15, NewBeta: 0.6})
	if err != nil {
		t.Fatalf("NewPlagueSEIRD: %v", err)
	}

	// WHEN it runs to exhaustion
	steps := runAll(t, e)
	assertConserved(t, steps, 250)

	// THEN C never decreases and increments by exactly one per incubation
	prev := 0
	for i, step := range steps {
		delta := step.State.C - prev
		if step.Kind == KindIncubation && delta != 1 {
			t.Fatalf("step %d: incubation changed C by %d, want 1", i, delta)
		}
		if step.Kind != KindIncubation && delta != 0 {
			t.Fatalf("step %d: %s changed C by %d, want 0", i, step.Kind, delta)
		}
		prev = step.State.C
	}
	counts := countKinds(steps)
	if final := steps[len(steps)-1].State; final.C != counts[KindIncubation] {
		t.Errorf("final C = %d, want %d incubations", final.C, counts[KindIncubation])
	}
}

func TestEbolaSEIRSD_BoundedRun_Invariants(t *testing.T) {
	// waning immunity can sustain the epidemic, so bound the run
	e, err := NewEbolaSEIRSD(Params{Beta: 1.4, Population: 300, InitExposed: 6, Seed: 47},
		Exponential(0.35), Exponential(0.2), Exponential(0.2), Exponential(0.05),
		0.5, BetaShift{At: 25, NewBeta: 0.5})
	if err != nil {
		t.Fatalf("NewEbolaSEIRSD: %v", err)
	}

	steps := e.RunUntil(150)
	assertInvariants(t, steps)
	assertConserved(t, steps, 300)

	// C is monotone here too
	prev := 0
	for i, step := range steps {
		if step.State.C < prev {
			t.Fatalf("step %d: C decreased from %d to %d", i, prev, step.State.C)
		}
		prev = step.State.C
	}
}

func TestSRSEIRSD_VaccinationAndWaning(t *testing.T) {
	// GIVEN the full model with a steady campaign from day 2
	e, err := NewSRSEIRSD(Params{Beta: 1.2, Population: 200, InitExposed: 4, Seed: 53},
		Exponential(0.4), Exponential(0.25), Exponential(0.25), Exponential(0.1),
		0.2,
		VaccinationConfig{
			BeginVaccine: 2,
			VaccineRate:  func(float64) float64 { return 5 },
		})
	if err != nil {
		t.Fatalf("NewSRSEIRSD: %v", err)
	}

	// WHEN it runs for a bounded stretch
	steps := e.RunUntil(120)
	assertInvariants(t, steps)
	assertConserved(t, steps, 200)

	// THEN the day-2 round fired (the event itself fires even when the
	// campaign then stops because nobody is infectious)
	counts := countKinds(steps)
	if counts[KindDetermineVaccines] == 0 {
		t.Error("determine_vaccines never fired")
	}
}
