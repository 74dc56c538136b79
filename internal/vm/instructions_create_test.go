package vm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/0xPolygonHermez/zkevm-opcodes/internal/vm/counters"
)

// successfulCreateEEI is a stubEEI whose Create/Create2 succeed and return
// less gas than they were forwarded, mirroring successfulCallEEI but for
// the CREATE family's init-code sub-call.
type successfulCreateEEI struct {
	*stubEEI
	gasLeft uint64
}

func newSuccessfulCreateEEI(gasLeft uint64) *successfulCreateEEI {
	return &successfulCreateEEI{stubEEI: newStubEEI(), gasLeft: gasLeft}
}

func (s *successfulCreateEEI) Create(Address, []byte, uint64, *uint256.Int) ([]byte, Address, uint64, error) {
	return nil, Address{2}, s.gasLeft, nil
}
func (s *successfulCreateEEI) Create2(Address, []byte, *uint256.Int, uint64, *uint256.Int) ([]byte, Address, uint64, error) {
	return nil, Address{2}, s.gasLeft, nil
}

// TestCreateDebitsExactlyWhatTheInitCodeSpent mirrors
// TestCallDebitsExactlyWhatTheSubCallSpent for CREATE: the caller's frame
// must lose callGas and only regain gasLeft, never keep callGas for free.
func TestCreateDebitsExactlyWhatTheInitCodeSpent(t *testing.T) {
	const gasLeftFromInitCode = 5000
	const pushCost = 3 * GasFastestStep // value, offset, size operands
	const startGas = 1_000_000

	eei := newSuccessfulCreateEEI(gasLeftFromInitCode)
	tx := counters.NewTransaction(counters.DefaultLimits())
	interp := NewInterpreter(eei, BlockContext{}, TxContext{GasPrice: new(uint256.Int)}, tx, DefaultConfig())

	// PUSH1 0 (size), PUSH1 0 (offset), PUSH1 0 (value), CREATE
	code := []byte{
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(CREATE),
	}
	frame := NewFrame(Address{1}, Address{}, code, [32]byte{}, nil, new(uint256.Int), startGas, 0, false, false)
	defer frame.Release()

	_, err := interp.Run(frame)
	require.NoError(t, err)

	availableBeforeCreate := uint64(startGas) - pushCost - GasCreate
	callGas := callGasBudget(availableBeforeCreate, availableBeforeCreate)
	want := availableBeforeCreate - callGas + gasLeftFromInitCode

	require.Equal(t, want, frame.Gas)
	require.True(t, frame.IsCreate)
	require.Equal(t, uint64(0), frame.Nonce)
}
