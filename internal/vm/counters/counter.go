// Package counters implements the zkEVM Virtual Counter Manager: the
// per-resource bookkeeping a zk-prover needs to know, ahead of proving,
// whether a batch of transactions fits inside the prover's fixed circuit
// budgets. It mirrors the gas meter structurally but tracks a different,
// disjoint set of resources.
package counters

import "fmt"

// Kind identifies one of the zk-prover's resource ledgers. Every opcode
// handler deducts from one or more of these as it executes.
type Kind int

const (
	Steps    Kind = iota // zk-ROM execution steps
	Binary               // binary (comparison/bitwise) SM operations
	Keccak               // Keccak-f permutations
	Poseidon             // Poseidon hash invocations
	Arith                // arithmetic SM operations (256-bit mul/mod)
	MemAlign             // unaligned memory-access SM operations
	Padding              // padding SM operations, consumed by RLP/hash padding
	numKinds
)

func (k Kind) String() string {
	switch k {
	case Steps:
		return "steps"
	case Binary:
		return "binary"
	case Keccak:
		return "keccak"
	case Poseidon:
		return "poseidon"
	case Arith:
		return "arith"
	case MemAlign:
		return "mem-align"
	case Padding:
		return "padding"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Delta is a bundle of per-kind deductions an opcode handler applies in one
// shot, so call sites read as a single named cost rather than a run of
// separate increments.
type Delta [numKinds]int

// WithSteps returns a copy of d with Steps increased by n.
func (d Delta) WithSteps(n int) Delta { d[Steps] += n; return d }

// Add accumulates every kind of other into d.
func (d *Delta) Add(other Delta) {
	for k := range d {
		d[k] += other[k]
	}
}

// Limits caps each resource a single transaction (or batch) may consume
// before the VCM refuses to continue, matching a zk circuit's fixed
// polynomial degree per resource.
type Limits [numKinds]int

// DefaultLimits returns the circuit limits used when no explicit
// configuration overrides them; see internal/vm/config for the
// configurable form the CLI exposes.
func DefaultLimits() Limits {
	return Limits{
		Steps:    1 << 23,
		Binary:   1 << 21,
		Keccak:   1 << 21,
		Poseidon: 1 << 23,
		Arith:    1 << 21,
		MemAlign: 1 << 22,
		Padding:  1 << 21,
	}
}
