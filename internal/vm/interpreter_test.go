package vm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/0xPolygonHermez/zkevm-opcodes/internal/vm/counters"
)

// stubEEI is a minimal EEI sufficient to drive the interpreter tests in
// this file; it does not support sub-calls.
type stubEEI struct {
	balances map[Address]*uint256.Int
	code     map[Address][]byte
	storage  map[Address]map[[32]byte][]byte
	logs     []struct {
		addr   Address
		topics [][32]byte
		data   []byte
	}
}

func newStubEEI() *stubEEI {
	return &stubEEI{
		balances: make(map[Address]*uint256.Int),
		code:     make(map[Address][]byte),
		storage:  make(map[Address]map[[32]byte][]byte),
	}
}

func (s *stubEEI) GetBalance(addr Address) *uint256.Int {
	if b, ok := s.balances[addr]; ok {
		return b
	}
	return new(uint256.Int)
}
func (s *stubEEI) SetBalance(addr Address, amount *uint256.Int) { s.balances[addr] = amount }
func (s *stubEEI) GetNonce(Address) uint64                      { return 0 }
func (s *stubEEI) SetNonce(Address, uint64)                     {}
func (s *stubEEI) GetCode(addr Address) []byte                  { return s.code[addr] }
func (s *stubEEI) SetCode(addr Address, code []byte)            { s.code[addr] = code }
func (s *stubEEI) GetCodeHash(Address) [32]byte                 { return [32]byte{} }
func (s *stubEEI) GetCodeSize(addr Address) int                 { return len(s.code[addr]) }
func (s *stubEEI) Exist(Address) bool                           { return true }
func (s *stubEEI) Empty(Address) bool                           { return false }
func (s *stubEEI) CreateAccount(Address)                        {}

func (s *stubEEI) GetState(addr Address, key [32]byte) []byte {
	if m, ok := s.storage[addr]; ok {
		return m[key]
	}
	return nil
}
func (s *stubEEI) SetState(addr Address, key [32]byte, value []byte) {
	if _, ok := s.storage[addr]; !ok {
		s.storage[addr] = make(map[[32]byte][]byte)
	}
	s.storage[addr][key] = value
}
func (s *stubEEI) GetCommittedState(addr Address, key [32]byte) []byte { return s.GetState(addr, key) }
func (s *stubEEI) GetBlockHash(uint64) [32]byte                        { return [32]byte{} }
func (s *stubEEI) SelfDestruct(Address, Address)                       {}
func (s *stubEEI) HasSelfDestructed(Address) bool                      { return false }
func (s *stubEEI) Transfer(Address, Address, *uint256.Int) error       { return nil }
func (s *stubEEI) AddLog(addr Address, topics [][32]byte, data []byte) {
	s.logs = append(s.logs, struct {
		addr   Address
		topics [][32]byte
		data   []byte
	}{addr, topics, data})
}
func (s *stubEEI) Snapshot() int          { return 0 }
func (s *stubEEI) RevertToSnapshot(int)   {}

func (s *stubEEI) Call(Address, Address, []byte, uint64, *uint256.Int, bool) ([]byte, uint64, error) {
	return nil, 0, &ErrDepthLimit{Limit: 0}
}
func (s *stubEEI) CallCode(Address, Address, []byte, uint64, *uint256.Int) ([]byte, uint64, error) {
	return nil, 0, &ErrDepthLimit{Limit: 0}
}
func (s *stubEEI) DelegateCall(Address, Address, []byte, uint64) ([]byte, uint64, error) {
	return nil, 0, &ErrDepthLimit{Limit: 0}
}
func (s *stubEEI) StaticCall(Address, Address, []byte, uint64) ([]byte, uint64, error) {
	return nil, 0, &ErrDepthLimit{Limit: 0}
}
func (s *stubEEI) Create(Address, []byte, uint64, *uint256.Int) ([]byte, Address, uint64, error) {
	return nil, Address{}, 0, &ErrDepthLimit{Limit: 0}
}
func (s *stubEEI) Create2(Address, []byte, *uint256.Int, uint64, *uint256.Int) ([]byte, Address, uint64, error) {
	return nil, Address{}, 0, &ErrDepthLimit{Limit: 0}
}

func newTestInterpreter(eei EEI) *Interpreter {
	tx := counters.NewTransaction(counters.DefaultLimits())
	return NewInterpreter(eei, BlockContext{}, TxContext{GasPrice: new(uint256.Int)}, tx, DefaultConfig())
}

func runFrame(t *testing.T, interp *Interpreter, code []byte, gas uint64) ([]byte, error) {
	frame := NewFrame(Address{1}, Address{}, code, [32]byte{}, nil, new(uint256.Int), gas, 0, false, false)
	defer frame.Release()
	return interp.Run(frame)
}

func TestInterpreterAddStop(t *testing.T) {
	// PUSH1 1, PUSH1 2, ADD, PUSH1 0, MSTORE, PUSH1 32, PUSH1 0, RETURN
	code := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 2,
		byte(ADD),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	interp := newTestInterpreter(newStubEEI())
	ret, err := runFrame(t, interp, code, 100000)
	require.NoError(t, err)
	result := new(uint256.Int).SetBytes(ret)
	require.Equal(t, uint64(3), result.Uint64())
}

func TestInterpreterInvalidJump(t *testing.T) {
	code := []byte{byte(PUSH1), 0x05, byte(JUMP), byte(STOP)}
	interp := newTestInterpreter(newStubEEI())
	_, err := runFrame(t, interp, code, 100000)
	require.Error(t, err)
	var invJump *ErrInvalidJump
	require.ErrorAs(t, err, &invJump)
}

func TestInterpreterJumpToJumpdest(t *testing.T) {
	// PUSH1 4, JUMP, (pad), JUMPDEST, STOP
	code := []byte{byte(PUSH1), 4, byte(JUMP), byte(STOP), byte(JUMPDEST), byte(STOP)}
	interp := newTestInterpreter(newStubEEI())
	_, err := runFrame(t, interp, code, 100000)
	require.NoError(t, err)
}

func TestInterpreterOutOfGas(t *testing.T) {
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 2, byte(ADD), byte(STOP)}
	interp := newTestInterpreter(newStubEEI())
	_, err := runFrame(t, interp, code, 1)
	require.Error(t, err)
	var oog *ErrOutOfGas
	require.ErrorAs(t, err, &oog)
}

func TestInterpreterBeginSubFallThroughTraps(t *testing.T) {
	// PUSH1 0, POP, BEGINSUB, RETURNSUB: falls into BEGINSUB without ever
	// having executed JUMPSUB.
	code := []byte{
		byte(PUSH1), 0,
		byte(POP),
		byte(BEGINSUB),
		byte(RETURNSUB),
	}
	interp := newTestInterpreter(newStubEEI())
	_, err := runFrame(t, interp, code, 100000)
	require.Error(t, err)
	var invBeginSub *ErrInvalidBeginSub
	require.ErrorAs(t, err, &invBeginSub)
}

func TestInterpreterSstoreWriteProtection(t *testing.T) {
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 0, byte(SSTORE), byte(STOP)}
	eei := newStubEEI()
	tx := counters.NewTransaction(counters.DefaultLimits())
	interp := NewInterpreter(eei, BlockContext{}, TxContext{GasPrice: new(uint256.Int)}, tx, DefaultConfig())
	frame := NewFrame(Address{1}, Address{}, code, [32]byte{}, nil, new(uint256.Int), 100000, 0, true, false)
	defer frame.Release()
	_, err := interp.Run(frame)
	require.Error(t, err)
	var wp *ErrWriteProtection
	require.ErrorAs(t, err, &wp)
}

func TestInterpreterSelfDestructStaticCheck(t *testing.T) {
	// SELFDESTRUCT inside a static frame must trap with write protection,
	// not silently execute.
	code := []byte{byte(PUSH1), 0, byte(SELFDESTRUCT)}
	eei := newStubEEI()
	tx := counters.NewTransaction(counters.DefaultLimits())
	interp := NewInterpreter(eei, BlockContext{}, TxContext{GasPrice: new(uint256.Int)}, tx, DefaultConfig())
	frame := NewFrame(Address{1}, Address{}, code, [32]byte{}, nil, new(uint256.Int), 100000, 0, true, false)
	defer frame.Release()
	_, err := interp.Run(frame)
	require.Error(t, err)
	var wp *ErrWriteProtection
	require.ErrorAs(t, err, &wp)
}

func TestInterpreterRevertCarriesReturnData(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0xAB,
		byte(PUSH1), 0,
		byte(MSTORE8),
		byte(PUSH1), 1,
		byte(PUSH1), 0,
		byte(REVERT),
	}
	interp := newTestInterpreter(newStubEEI())
	ret, err := runFrame(t, interp, code, 100000)
	require.Error(t, err)
	var reverted *ErrExecutionReverted
	require.ErrorAs(t, err, &reverted)
	require.Equal(t, []byte{0xAB}, ret)
}

func TestInterpreterReturnSubRequiresJumpSub(t *testing.T) {
	code := []byte{byte(RETURNSUB)}
	interp := newTestInterpreter(newStubEEI())
	_, err := runFrame(t, interp, code, 100000)
	require.Error(t, err)
	var underflow *ErrReturnStackUnderflow
	require.ErrorAs(t, err, &underflow)
}

func TestInterpreterJumpSubReturnSub(t *testing.T) {
	// PUSH1 4 (entry of the subroutine), JUMPSUB, STOP, BEGINSUB, RETURNSUB
	code := []byte{
		byte(PUSH1), 4,
		byte(JUMPSUB),
		byte(STOP),
		byte(BEGINSUB),
		byte(RETURNSUB),
	}
	interp := newTestInterpreter(newStubEEI())
	_, err := runFrame(t, interp, code, 100000)
	require.NoError(t, err)
}
