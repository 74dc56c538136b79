package vm

import "github.com/holiman/uint256"

// BlockContext carries the block-scoped values environment opcodes read;
// it is supplied once per interpreter run rather than re-fetched per
// opcode, keeping block-level state separate from per-call state.
type BlockContext struct {
	Coinbase    Address
	GasLimit    uint64
	BlockNumber uint64
	Time        uint64
	Difficulty  *uint256.Int
	BaseFee     *uint256.Int
	ChainID     *uint256.Int

	GetHash func(blockNumber uint64) [32]byte
}

// TxContext carries the transaction-scoped values environment opcodes
// read.
type TxContext struct {
	Origin   Address
	GasPrice *uint256.Int
}

// EEI is the Ethereum Environment Interface: every side effect an opcode
// handler needs that reaches outside the current Frame. Production
// callers back it with a real state database; tests and cmd/opdump back
// it with an in-memory stub. No vm code outside this file and its
// implementers may assume anything about how state is actually stored.
type EEI interface {
	// Account state.
	GetBalance(addr Address) *uint256.Int
	SetBalance(addr Address, amount *uint256.Int)
	GetNonce(addr Address) uint64
	SetNonce(addr Address, nonce uint64)
	GetCode(addr Address) []byte
	SetCode(addr Address, code []byte)
	GetCodeHash(addr Address) [32]byte
	GetCodeSize(addr Address) int
	Exist(addr Address) bool
	Empty(addr Address) bool
	CreateAccount(addr Address)

	// Storage.
	GetState(addr Address, key [32]byte) []byte
	SetState(addr Address, key [32]byte, value []byte)
	GetCommittedState(addr Address, key [32]byte) []byte

	// Block data.
	GetBlockHash(number uint64) [32]byte

	// Self-destruct / balance transfer.
	SelfDestruct(addr Address, beneficiary Address)
	HasSelfDestructed(addr Address) bool
	Transfer(from, to Address, amount *uint256.Int) error

	// Logs.
	AddLog(addr Address, topics [][32]byte, data []byte)

	// Snapshotting for CALL/CREATE revert semantics.
	Snapshot() int
	RevertToSnapshot(id int)

	// Sub-calls. The EEI owns constructing the nested Frame and re-entering
	// the Interpreter; it returns the sub-call's return data and remaining
	// gas to refund to the caller.
	Call(caller Address, addr Address, input []byte, gas uint64, value *uint256.Int, static bool) (ret []byte, gasLeft uint64, err error)
	CallCode(caller Address, addr Address, input []byte, gas uint64, value *uint256.Int) (ret []byte, gasLeft uint64, err error)
	DelegateCall(caller Address, addr Address, input []byte, gas uint64) (ret []byte, gasLeft uint64, err error)
	StaticCall(caller Address, addr Address, input []byte, gas uint64) (ret []byte, gasLeft uint64, err error)
	Create(caller Address, code []byte, gas uint64, value *uint256.Int) (ret []byte, addr Address, gasLeft uint64, err error)
	Create2(caller Address, code []byte, salt *uint256.Int, gas uint64, value *uint256.Int) (ret []byte, addr Address, gasLeft uint64, err error)
}
