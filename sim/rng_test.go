package sim

import (
	"math"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// GIVEN two RNGs built from the same key
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	// WHEN the same process is derived in each
	src1 := rng1.ForProcess(string(ProcessRecovery))
	src2 := rng2.ForProcess(string(ProcessRecovery))

	// THEN both sources produce the identical sequence
	for i := 0; i < 16; i++ {
		v1, v2 := src1.Uint64(), src2.Uint64()
		if v1 != v2 {
			t.Fatalf("draw %d: got %d and %d, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_ProcessIsolation(t *testing.T) {
	// GIVEN one RNG where the recovery source has been drawn from heavily
	drained := NewPartitionedRNG(NewSimulationKey(42))
	rec := drained.ForProcess(string(ProcessRecovery))
	for i := 0; i < 1000; i++ {
		rec.Uint64()
	}

	// WHEN the death source is derived afterwards
	deathDrained := drained.ForProcess(string(ProcessDeath))

	// THEN its sequence matches a fresh RNG's death source: draws on one
	// process never perturb another
	fresh := NewPartitionedRNG(NewSimulationKey(42))
	deathFresh := fresh.ForProcess(string(ProcessDeath))
	for i := 0; i < 16; i++ {
		v1, v2 := deathDrained.Uint64(), deathFresh.Uint64()
		if v1 != v2 {
			t.Fatalf("draw %d: got %d and %d, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SameProcessReturnsCachedSource(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(7))
	a := rng.ForProcess(string(ProcessMutation))
	b := rng.ForProcess(string(ProcessMutation))
	if a != b {
		t.Error("ForProcess returned distinct sources for the same process name")
	}
}

func TestPartitionedRNG_DifferentKeysDiverge(t *testing.T) {
	rngA := NewPartitionedRNG(NewSimulationKey(1))
	rngB := NewPartitionedRNG(NewSimulationKey(2))
	srcA := rngA.ForProcess(string(ProcessRecovery))
	srcB := rngB.ForProcess(string(ProcessRecovery))

	same := true
	for i := 0; i < 16; i++ {
		if srcA.Uint64() != srcB.Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Error("different keys produced the same 16-draw prefix")
	}
}
