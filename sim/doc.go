// Package sim provides an exact continuous-time discrete-event simulator
// for compartmental epidemic models.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - queue.go: the min-heap event queue and its deterministic tie-break
//   - engine.go: the step loop and the memoryless exposure insertion
//   - variants.go: how a model variant assembles a handler table
//
// # Architecture
//
// The engine is generic; variants are data. Each variant constructor
// (NewSIR, NewSEIR, NewCovidSEIRD, ...) supplies a Descriptor naming its
// compartments and stationary processes, a complete handler table mapping
// event kinds to transition functions, and the initial queue contents.
// There is no variant inheritance and no dynamic handler lookup: the kind
// set is a closed enumeration and a missing table entry is a wiring bug.
//
// Randomness is layered: PartitionedRNG derives one deterministic source
// per stationary process from the master seed, a gonum distuv distribution
// turns the source into durations, and VariateStream batches the draws for
// efficiency without changing their order. Two engines built from the same
// seed and parameters yield identical event sequences.
//
// # Iteration
//
// Callers drive an engine through Next, one Step at a time, until the
// queue empties (normal termination, not an error), or through RunUntil
// with a wall-clock cutoff. Each Step carries a value-copy State snapshot
// that later steps never touch.
package sim
