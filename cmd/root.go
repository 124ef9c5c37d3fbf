package cmd

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/outbreak-sim/outbreak-sim/sim"
)

var (
	// CLI flags shared by every variant
	scenarioPath string  // YAML scenario file; flags below fill in when absent
	variant      string  // model variant name (sir, sirs, sird, sr_sir, seir, ...)
	seed         int64   // master seed for all variate streams
	beta         float64 // transmission rate
	population   int     // total population
	initExposed  int     // initially exposed/infected individuals
	until        float64 // stop before the first event at or after this time (0 = run to exhaustion)
	logLevel     string  // log verbosity level
	outputPath   string  // CSV output path for the event series (optional)

	// CLI flags for variant-specific options
	probDead       float64 // probability an infection ends in death
	beginVaccine   float64 // day the vaccination campaign starts
	vaccinesPerDay float64 // constant daily vaccination rate
	betaChange     float64 // time of the one-shot transmission-rate change
	newBeta        float64 // transmission rate after the change

	// CLI flags for the stationary processes (exponential rates; use a
	// scenario file for other families)
	recoveryRate   float64
	incubationRate float64
	deathRate      float64
	mutationRate   float64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "outbreak-sim",
	Short: "Discrete-event simulator for compartmental epidemic models",
}

// flagScenario assembles a ScenarioConfig from the CLI flags, used when no
// scenario file is given. Flag runs stick to exponential durations.
func flagScenario() *ScenarioConfig {
	return &ScenarioConfig{
		Variant:        variant,
		Seed:           seed,
		Beta:           beta,
		Population:     population,
		InitExposed:    initExposed,
		Until:          until,
		ProbDead:       probDead,
		BeginVaccine:   beginVaccine,
		VaccinesPerDay: vaccinesPerDay,
		BetaChange:     betaChange,
		NewBeta:        newBeta,
		Processes: map[string]sim.DistSpec{
			"recovery":   sim.Exponential(recoveryRate),
			"incubation": sim.Exponential(incubationRate),
			"death":      sim.Exponential(deathRate),
			"mutation":   sim.Exponential(mutationRate),
		},
	}
}

// runCmd executes one simulation from a scenario file or from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one epidemic simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := flagScenario()
		if scenarioPath != "" {
			cfg, err = LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Unable to load scenario: %v", err)
			}
		}

		engine, err := cfg.Build()
		if err != nil {
			logrus.Fatalf("Unable to construct %s model: %v", cfg.Variant, err)
		}

		desc := engine.Descriptor()
		logrus.Infof("Starting %s simulation: population=%d, init_exposed=%d, beta=%v, seed=%d",
			desc.Name, cfg.Population, cfg.InitExposed, cfg.Beta, cfg.Seed)

		startTime := time.Now()

		cutoff := cfg.Until
		if cutoff <= 0 {
			cutoff = math.Inf(1)
		}
		steps := engine.RunUntil(cutoff)

		logrus.Infof("Simulated %d events in %v, final time %.4f, final state %v",
			len(steps), time.Since(startTime), engine.Time(), engine.Snapshot().Counts(desc.Compartments))

		if outputPath != "" {
			if err := writeSeries(outputPath, desc, steps); err != nil {
				logrus.Fatalf("Unable to write output: %v", err)
			}
			logrus.Infof("Wrote event series to %s", outputPath)
		}
	},
}

// writeSeries dumps the event series as CSV: one row per step, one column
// per compartment in the variant's declared order.
func writeSeries(path string, desc sim.Descriptor, steps []sim.Step) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"event", "time"}
	for _, c := range desc.Compartments {
		header = append(header, string(c))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, step := range steps {
		row := []string{step.Kind.String(), strconv.FormatFloat(step.Time, 'g', -1, 64)}
		for _, n := range step.State.Counts(desc.Compartments) {
			row = append(row, strconv.Itoa(n))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides the parameter flags)")
	runCmd.Flags().StringVar(&variant, "variant", "sir", "Model variant: sir, sirs, sird, sr_sir, seir, sr_seirsd, ebola_seirsd, covid_seird, plague_seird")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for all variate streams")
	runCmd.Flags().Float64Var(&beta, "beta", 0.3, "Transmission rate")
	runCmd.Flags().IntVar(&population, "population", 10000, "Total population")
	runCmd.Flags().IntVar(&initExposed, "init-exposed", 1, "Initially exposed individuals")
	runCmd.Flags().Float64Var(&until, "until", 0, "Stop before the first event at or after this time (0 = run to exhaustion)")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log verbosity level")
	runCmd.Flags().StringVar(&outputPath, "output", "", "CSV output path for the event series")

	runCmd.Flags().Float64Var(&probDead, "prob-dead", 0, "Probability an infection ends in death (mortality variants)")
	runCmd.Flags().Float64Var(&beginVaccine, "begin-vaccine", 0, "Day the vaccination campaign starts (vaccination variants)")
	runCmd.Flags().Float64Var(&vaccinesPerDay, "vaccines-per-day", 0, "Constant daily vaccination rate (vaccination variants)")
	runCmd.Flags().Float64Var(&betaChange, "beta-change", 0, "Time of the one-shot transmission-rate change (beta-change variants)")
	runCmd.Flags().Float64Var(&newBeta, "new-beta", 0, "Transmission rate after the change")

	runCmd.Flags().Float64Var(&recoveryRate, "recovery-rate", 0.1, "Exponential rate of the recovery process")
	runCmd.Flags().Float64Var(&incubationRate, "incubation-rate", 0.2, "Exponential rate of the incubation process")
	runCmd.Flags().Float64Var(&deathRate, "death-rate", 0.1, "Exponential rate of the death process")
	runCmd.Flags().Float64Var(&mutationRate, "mutation-rate", 0.02, "Exponential rate of the immunity-waning process")

	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
