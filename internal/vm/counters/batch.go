package counters

// Batch aggregates multiple Transaction counters against a single set of
// batch-wide Limits, the way the zk-prover needs to know whether an entire
// batch of transactions fits one proof before it commits to proving it.
type Batch struct {
	limits Limits
	used   Delta
	txs    []*Transaction
}

// NewBatch starts an empty Batch against limits.
func NewBatch(limits Limits) *Batch {
	return &Batch{limits: limits}
}

// Remaining reports the batch's unused headroom in each resource, the
// value a newly started Transaction should be limited to so it can never
// overrun what the batch has left.
func (b *Batch) Remaining() Limits {
	var rem Limits
	for k := range rem {
		rem[k] = b.limits[k] - b.used[k]
	}
	return rem
}

// BeginTransaction starts a new Transaction counter scoped to the batch's
// current remaining headroom.
func (b *Batch) BeginTransaction() *Transaction {
	tx := NewTransaction(b.Remaining())
	b.txs = append(b.txs, tx)
	return tx
}

// Commit folds a finished Transaction's usage into the batch total. The
// transaction must have already been produced by BeginTransaction.
func (b *Batch) Commit(tx *Transaction) error {
	c := &Collector{used: b.used, limits: b.limits}
	if err := c.Deduct(tx.Used()); err != nil {
		return err
	}
	b.used = c.used
	return nil
}

// Transactions returns the Transaction counters started so far.
func (b *Batch) Transactions() []*Transaction {
	return b.txs
}
