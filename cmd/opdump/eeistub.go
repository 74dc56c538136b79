package main

import (
	"github.com/holiman/uint256"

	vm "github.com/0xPolygonHermez/zkevm-opcodes/internal/vm"
	"github.com/0xPolygonHermez/zkevm-opcodes/internal/vm/hash"
)

func codeHashOf(code []byte) ([32]byte, error) {
	return hash.CodeHash(code)
}

// memoryEEI is a bare in-memory EEI implementation for opdump's standalone
// run command, where there is no real state database to back opcode
// execution against. It keeps just enough state to run a single call
// frame to completion: balances, code, and storage for whatever
// addresses the run populates ahead of time.
type memoryEEI struct {
	balances map[vm.Address]*uint256.Int
	nonces   map[vm.Address]uint64
	code     map[vm.Address][]byte
	storage  map[vm.Address]map[[32]byte][]byte
	logs     []memoryLog
	selfdestructed map[vm.Address]bool
}

type memoryLog struct {
	Address vm.Address
	Topics  [][32]byte
	Data    []byte
}

func newMemoryEEI() *memoryEEI {
	return &memoryEEI{
		balances:       make(map[vm.Address]*uint256.Int),
		nonces:         make(map[vm.Address]uint64),
		code:           make(map[vm.Address][]byte),
		storage:        make(map[vm.Address]map[[32]byte][]byte),
		selfdestructed: make(map[vm.Address]bool),
	}
}

func (m *memoryEEI) GetBalance(addr vm.Address) *uint256.Int {
	if b, ok := m.balances[addr]; ok {
		return new(uint256.Int).Set(b)
	}
	return new(uint256.Int)
}

func (m *memoryEEI) SetBalance(addr vm.Address, amount *uint256.Int) {
	m.balances[addr] = new(uint256.Int).Set(amount)
}

func (m *memoryEEI) GetNonce(addr vm.Address) uint64     { return m.nonces[addr] }
func (m *memoryEEI) SetNonce(addr vm.Address, nonce uint64) { m.nonces[addr] = nonce }

func (m *memoryEEI) GetCode(addr vm.Address) []byte { return m.code[addr] }
func (m *memoryEEI) SetCode(addr vm.Address, code []byte) { m.code[addr] = code }
func (m *memoryEEI) GetCodeSize(addr vm.Address) int { return len(m.code[addr]) }

func (m *memoryEEI) GetCodeHash(addr vm.Address) [32]byte {
	h, err := codeHashOf(m.code[addr])
	if err != nil {
		return [32]byte{}
	}
	return h
}

func (m *memoryEEI) Exist(addr vm.Address) bool {
	_, hasBal := m.balances[addr]
	_, hasCode := m.code[addr]
	return hasBal || hasCode
}

func (m *memoryEEI) Empty(addr vm.Address) bool {
	return !m.Exist(addr) || (m.GetBalance(addr).IsZero() && m.GetNonce(addr) == 0 && len(m.code[addr]) == 0)
}

func (m *memoryEEI) CreateAccount(addr vm.Address) {
	if _, ok := m.balances[addr]; !ok {
		m.balances[addr] = new(uint256.Int)
	}
}

func (m *memoryEEI) GetState(addr vm.Address, key [32]byte) []byte {
	if s, ok := m.storage[addr]; ok {
		return s[key]
	}
	return nil
}

func (m *memoryEEI) SetState(addr vm.Address, key [32]byte, value []byte) {
	if _, ok := m.storage[addr]; !ok {
		m.storage[addr] = make(map[[32]byte][]byte)
	}
	m.storage[addr][key] = value
}

func (m *memoryEEI) GetCommittedState(addr vm.Address, key [32]byte) []byte {
	return m.GetState(addr, key)
}


func (m *memoryEEI) GetBlockHash(number uint64) [32]byte { return [32]byte{} }

func (m *memoryEEI) SelfDestruct(addr, beneficiary vm.Address) {
	bal := m.GetBalance(addr)
	m.SetBalance(beneficiary, new(uint256.Int).Add(m.GetBalance(beneficiary), bal))
	m.SetBalance(addr, new(uint256.Int))
	m.selfdestructed[addr] = true
}

func (m *memoryEEI) HasSelfDestructed(addr vm.Address) bool { return m.selfdestructed[addr] }

func (m *memoryEEI) Transfer(from, to vm.Address, amount *uint256.Int) error {
	bal := m.GetBalance(from)
	if bal.Lt(amount) {
		return &vm.ErrInsufficientBalance{}
	}
	m.SetBalance(from, new(uint256.Int).Sub(bal, amount))
	m.SetBalance(to, new(uint256.Int).Add(m.GetBalance(to), amount))
	return nil
}

func (m *memoryEEI) AddLog(addr vm.Address, topics [][32]byte, data []byte) {
	m.logs = append(m.logs, memoryLog{Address: addr, Topics: topics, Data: data})
}

func (m *memoryEEI) Snapshot() int      { return 0 }
func (m *memoryEEI) RevertToSnapshot(id int) {}

// Sub-calls are not supported by opdump's standalone runner: a CALL
// family opcode against the stub always fails cleanly rather than
// attempting to recurse into a second Interpreter, since opdump has no
// second Frame/Interpreter wiring to hand it.
func (m *memoryEEI) Call(caller, addr vm.Address, input []byte, gas uint64, value *uint256.Int, static bool) ([]byte, uint64, error) {
	return nil, gas, &vm.ErrDepthLimit{Limit: 0}
}
func (m *memoryEEI) CallCode(caller, addr vm.Address, input []byte, gas uint64, value *uint256.Int) ([]byte, uint64, error) {
	return nil, gas, &vm.ErrDepthLimit{Limit: 0}
}
func (m *memoryEEI) DelegateCall(caller, addr vm.Address, input []byte, gas uint64) ([]byte, uint64, error) {
	return nil, gas, &vm.ErrDepthLimit{Limit: 0}
}
func (m *memoryEEI) StaticCall(caller, addr vm.Address, input []byte, gas uint64) ([]byte, uint64, error) {
	return nil, gas, &vm.ErrDepthLimit{Limit: 0}
}
func (m *memoryEEI) Create(caller vm.Address, code []byte, gas uint64, value *uint256.Int) ([]byte, vm.Address, uint64, error) {
	return nil, vm.Address{}, gas, &vm.ErrDepthLimit{Limit: 0}
}
func (m *memoryEEI) Create2(caller vm.Address, code []byte, salt *uint256.Int, gas uint64, value *uint256.Int) ([]byte, vm.Address, uint64, error) {
	return nil, vm.Address{}, gas, &vm.ErrDepthLimit{Limit: 0}
}
