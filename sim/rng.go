package sim

import (
	"hash/fnv"
	"math/rand/v2"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two engines built with the same SimulationKey and identical parameters
// MUST produce identical (kind, time, state) sequences.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated random sources, one per
// stationary process. Each process name derives its own seed as
// masterSeed XOR fnv1a64(name), so the draw order of one process never
// perturbs another: adding a death process to a variant leaves its
// recovery times untouched.
//
// Thread-safety: NOT thread-safe. Each engine owns one exclusively.
type PartitionedRNG struct {
	key     SimulationKey
	sources map[string]rand.Source
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:     key,
		sources: make(map[string]rand.Source),
	}
}

// ForProcess returns a deterministically-seeded source for the named
// process. The same name always returns the same cached source, so a
// process and its VariateStream share one draw sequence. Never returns nil.
func (p *PartitionedRNG) ForProcess(name string) rand.Source {
	if src, ok := p.sources[name]; ok {
		return src
	}
	derived := int64(p.key) ^ fnv1a64(name)
	src := rand.NewPCG(uint64(p.key), uint64(derived))
	p.sources[name] = src
	return src
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
