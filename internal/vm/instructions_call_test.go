package vm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/0xPolygonHermez/zkevm-opcodes/internal/vm/counters"
)

// successfulCallEEI is a stubEEI whose Call variants succeed and return
// less gas than they were forwarded, so a test can observe whether the
// caller's frame was actually debited for what the sub-call consumed
// rather than just credited for what it left over.
type successfulCallEEI struct {
	*stubEEI
	gasLeft uint64
}

func newSuccessfulCallEEI(gasLeft uint64) *successfulCallEEI {
	return &successfulCallEEI{stubEEI: newStubEEI(), gasLeft: gasLeft}
}

func (s *successfulCallEEI) Call(Address, Address, []byte, uint64, *uint256.Int, bool) ([]byte, uint64, error) {
	return nil, s.gasLeft, nil
}
func (s *successfulCallEEI) CallCode(Address, Address, []byte, uint64, *uint256.Int) ([]byte, uint64, error) {
	return nil, s.gasLeft, nil
}
func (s *successfulCallEEI) DelegateCall(Address, Address, []byte, uint64) ([]byte, uint64, error) {
	return nil, s.gasLeft, nil
}
func (s *successfulCallEEI) StaticCall(Address, Address, []byte, uint64) ([]byte, uint64, error) {
	return nil, s.gasLeft, nil
}

// TestCallDebitsExactlyWhatTheSubCallSpent guards against CALL manufacturing
// free gas: the frame must lose (callGas - gasLeft) overall, not just gain
// gasLeft back with no matching debit for the gas it forwarded.
func TestCallDebitsExactlyWhatTheSubCallSpent(t *testing.T) {
	const gasLeftFromSubCall = 1000
	const requestedGas = 10000
	const pushCost = 7 * GasFastestStep // 6 PUSH1 operands + PUSH2 gas
	const startGas = 1_000_000

	eei := newSuccessfulCallEEI(gasLeftFromSubCall)
	tx := counters.NewTransaction(counters.DefaultLimits())
	interp := NewInterpreter(eei, BlockContext{}, TxContext{GasPrice: new(uint256.Int)}, tx, DefaultConfig())

	// PUSH1 0 (retSize), PUSH1 0 (retOff), PUSH1 0 (argsSize), PUSH1 0
	// (argsOff), PUSH1 0 (value), PUSH1 0 (addr), PUSH2 10000 (gas), CALL
	code := []byte{
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(PUSH2), 0x27, 0x10, // 10000
		byte(CALL),
	}
	frame := NewFrame(Address{1}, Address{}, code, [32]byte{}, nil, new(uint256.Int), startGas, 0, false, false)
	defer frame.Release()

	_, err := interp.Run(frame)
	require.NoError(t, err)

	availableBeforeCall := uint64(startGas) - pushCost
	callGas := callGasBudget(availableBeforeCall, requestedGas)
	want := availableBeforeCall - callGas + gasLeftFromSubCall

	require.Equal(t, want, frame.Gas)
	require.Less(t, frame.Gas, uint64(startGas), "a missing debit would let the frame end up with more gas than it started")
}
