// Package vm implements the zkEVM opcode interpreter: a single-threaded,
// cooperative dispatch loop over a dense 256-entry jump table, operating
// on a bounded operand stack, a linear byte-addressable memory, and an
// EIP-2315 subroutine return stack. All state outside the current call
// frame — accounts, storage, logs, block data, and sub-calls — is
// reached exclusively through the EEI interface, so this package never
// assumes anything about how that state is actually stored.
//
// Gas accounting follows the conventional EVM fee schedule; a parallel
// resource ledger (internal/vm/counters) tracks the zk-prover's own
// circuit budgets, which are charged alongside gas but bounded by
// entirely different limits.
package vm
