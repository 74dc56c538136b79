package counters

import "fmt"

// ErrOutOfCounters is returned when a deduction would push a resource
// ledger past its configured limit. The zk-prover cannot build a batch
// that exceeds its circuits' fixed degree, so this is a hard stop rather
// than something the caller can recover from mid-transaction.
type ErrOutOfCounters struct {
	Kind           Kind
	Used, Limit    int
}

func (e *ErrOutOfCounters) Error() string {
	return fmt.Sprintf("out of counters: %s used %d of %d", e.Kind, e.Used, e.Limit)
}

// Collector accumulates resource usage against a fixed set of Limits. A
// Collector is created per transaction (see Transaction) and rolled
// up into a Batch.
type Collector struct {
	used   Delta
	limits Limits

	expByteLen int // last EXP exponent byte length recorded, for diagnostics
}

// NewCollector starts a fresh Collector against the given limits.
func NewCollector(limits Limits) *Collector {
	return &Collector{limits: limits}
}

// Deduct applies d to the running total, failing if any resource would
// cross its limit. On failure, none of d is applied (all-or-nothing), so a
// rejected opcode never leaves partial counter state behind.
func (c *Collector) Deduct(d Delta) error {
	for k := range d {
		if c.used[k]+d[k] > c.limits[k] {
			return &ErrOutOfCounters{Kind: Kind(k), Used: c.used[k] + d[k], Limit: c.limits[k]}
		}
	}
	c.used.Add(d)
	return nil
}

// DeductNamed is the opcode dispatch loop's usual entry point: look up the
// mnemonic's base cost and deduct it in one call.
func (c *Collector) DeductNamed(mnemonic string) error {
	return c.Deduct(NameCost(mnemonic))
}

// RecordExpByteLen charges EXP's Arith cost scaled by the exponent's
// significant byte length. Call it with the exponent's byte length before
// evaluating the zero-exponent short-circuit, so a cheap result doesn't
// hide an expensive exponent.
func (c *Collector) RecordExpByteLen(n int) error {
	c.expByteLen = n
	return c.Deduct(ExpArithCost(n))
}

// RecordKeccakWords charges SHA3's per-word Keccak cost.
func (c *Collector) RecordKeccakWords(inputLen int) error {
	return c.Deduct(KeccakWordCost(inputLen))
}

// RecordMemAlignWords charges a memory-copy opcode's per-word MemAlign
// cost.
func (c *Collector) RecordMemAlignWords(byteLen int) error {
	return c.Deduct(MemAlignCost(byteLen))
}

// Used returns a copy of the running totals, for reporting.
func (c *Collector) Used() Delta { return c.used }

// Limits returns the configured limits this Collector enforces.
func (c *Collector) Limits() Limits { return c.limits }

// Remaining reports how much headroom is left in each resource.
func (c *Collector) Remaining() Delta {
	var rem Delta
	for k := range rem {
		rem[k] = c.limits[k] - c.used[k]
	}
	return rem
}
