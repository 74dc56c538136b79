package counters

// Transaction wraps a Collector with the bookkeeping specific to counting
// one transaction's execution: its own limits (which may be tighter than
// the batch's, to leave headroom for the transactions that follow it) and
// a running opcode tally for diagnostics.
type Transaction struct {
	*Collector
	opcodeCounts map[string]int
}

// NewTransaction starts a Transaction counter against limits, which is
// typically the batch's remaining headroom at the time the transaction
// begins executing.
func NewTransaction(limits Limits) *Transaction {
	return &Transaction{
		Collector:    NewCollector(limits),
		opcodeCounts: make(map[string]int),
	}
}

// DeductNamed overrides Collector's to also track per-mnemonic frequency,
// useful when diagnosing which opcode pushed a transaction out of
// counters.
func (t *Transaction) DeductNamed(mnemonic string) error {
	if err := t.Collector.DeductNamed(mnemonic); err != nil {
		return err
	}
	t.opcodeCounts[mnemonic]++
	return nil
}

// OpcodeCounts returns a copy of the per-mnemonic execution tally.
func (t *Transaction) OpcodeCounts() map[string]int {
	out := make(map[string]int, len(t.opcodeCounts))
	for k, v := range t.opcodeCounts {
		out[k] = v
	}
	return out
}
