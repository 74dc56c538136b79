package vm

import (
	"github.com/holiman/uint256"
)

// Memory is the byte-addressable, word-expandable scratch space a call
// frame owns. The interpreter grows it in 32-byte words, and it never
// shrinks within a call.
type Memory struct {
	store       []byte
	lastGasCost uint64
}

// NewMemory allocates an empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Len returns the current byte length of the backing store.
func (m *Memory) Len() int {
	return len(m.store)
}

// Resize grows the backing store to at least size bytes, zero-filling the
// new region. Callers are expected to have already charged the memory
// expansion gas for this size via the gas table.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) < size {
		grown := make([]byte, size-uint64(len(m.store)))
		m.store = append(m.store, grown...)
	}
}

// Set writes value into the memory region [offset, offset+len(value)).
// Callers must have resized beforehand.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	if offset+size > uint64(len(m.store)) {
		panic("memory: write out of bounds")
	}
	copy(m.store[offset:offset+size], value)
}

// Set32 writes a single 32-byte word at offset, left-padding with zero if
// val is narrower than 32 bytes.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	if offset+32 > uint64(len(m.store)) {
		panic("memory: write out of bounds")
	}
	b32 := val.Bytes32()
	copy(m.store[offset:offset+32], b32[:])
}

// SetByte writes a single byte at offset, used by MSTORE8.
func (m *Memory) SetByte(offset uint64, b byte) {
	m.store[offset] = b
}

// GetCopy returns a fresh copy of the region [offset, offset+size).
func (m *Memory) GetCopy(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	out := make([]byte, size)
	copy(out, m.store[offset:offset+size])
	return out
}

// GetPtr returns a slice aliasing the backing store directly, for callers
// that only read within the current instruction (e.g. hashing SHA3 input).
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Data exposes the raw backing store, used by RETURN/REVERT to hand off the
// output buffer without copying.
func (m *Memory) Data() []byte {
	return m.store
}

// WordCount returns how many 32-byte words the current length occupies,
// rounding up — the quantity the gas table's quadratic memory-expansion
// term is computed from.
func (m *Memory) WordCount() uint64 {
	return toWordSize(uint64(len(m.store)))
}

// toWordSize rounds a byte length up to the nearest multiple of 32, in
// words, per the Yellow Paper's Cmem formula.
func toWordSize(size uint64) uint64 {
	if size > 0xFFFFFFFFE0 { // guards the (size+31) addition from overflowing
		return 0xFFFFFFFFFFFFFFFF / 32
	}
	return (size + 31) / 32
}

// SetLastGasCost records the cumulative memory-expansion gas cost already
// billed, so the gas table only charges for the incremental growth.
func (m *Memory) SetLastGasCost(cost uint64) { m.lastGasCost = cost }

// LastGasCost returns the most recently billed memory-expansion cost.
func (m *Memory) LastGasCost() uint64 { return m.lastGasCost }
