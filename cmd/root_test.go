package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outbreak-sim/outbreak-sim/sim"
)

func TestFlagScenario_BuildsFromDefaults(t *testing.T) {
	engine, err := flagScenario().Build()
	require.NoError(t, err)
	assert.Equal(t, "SIR", engine.Descriptor().Name)
}

func TestWriteSeries_CSVLayout(t *testing.T) {
	// GIVEN a short deterministic run
	engine, err := sim.NewSIR(sim.Params{Beta: 0, Population: 100, InitExposed: 1, Seed: 42},
		sim.Exponential(0.1))
	require.NoError(t, err)
	steps := engine.Run()
	require.Len(t, steps, 1)

	// WHEN the series is written
	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, writeSeries(path, engine.Descriptor(), steps))

	// THEN the CSV carries a header plus one row per step, columns in the
	// variant's declared compartment order
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"event", "time", "S", "I", "R"}, rows[0])
	assert.Equal(t, "recovery", rows[1][0])
	assert.Equal(t, []string{"99", "0", "1"}, rows[1][2:])
}
