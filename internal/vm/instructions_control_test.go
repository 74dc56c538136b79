package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJumpiTakenOnNonzeroCondition(t *testing.T) {
	// PUSH1 1 (cond), PUSH1 6 (dest), JUMPI, INVALID, JUMPDEST, STOP
	code := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 6,
		byte(JUMPI),
		0xfe, // undefined opcode; only reached if the jump is skipped
		byte(JUMPDEST),
		byte(STOP),
	}
	interp := newTestInterpreter(newStubEEI())
	_, err := runFrame(t, interp, code, 100000)
	require.NoError(t, err)
}

func TestJumpiNotTakenOnZeroCondition(t *testing.T) {
	// PUSH1 0 (cond), PUSH1 6 (dest), JUMPI, STOP, JUMPDEST, INVALID
	code := []byte{
		byte(PUSH1), 0,
		byte(PUSH1), 6,
		byte(JUMPI),
		byte(STOP),
		byte(JUMPDEST),
		0xfe, // undefined opcode; only reached if the jump is skipped
	}
	interp := newTestInterpreter(newStubEEI())
	_, err := runFrame(t, interp, code, 100000)
	require.NoError(t, err)
}

func TestJumpSubRejectsNonBeginSubTarget(t *testing.T) {
	// PUSH1 3 (lands on STOP, not BEGINSUB), JUMPSUB
	code := []byte{byte(PUSH1), 3, byte(JUMPSUB), byte(STOP)}
	interp := newTestInterpreter(newStubEEI())
	_, err := runFrame(t, interp, code, 100000)
	require.Error(t, err)
	var invSub *ErrInvalidSubEntry
	require.ErrorAs(t, err, &invSub)
}

func TestPcReportsCurrentOffset(t *testing.T) {
	// PC at offset 0, then PUSH1 0 MSTORE PUSH1 32 PUSH1 0 RETURN
	code := []byte{
		byte(PC),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	interp := newTestInterpreter(newStubEEI())
	ret, err := runFrame(t, interp, code, 100000)
	require.NoError(t, err)
	require.True(t, new(Word).SetBytes(ret).IsZero())
}
