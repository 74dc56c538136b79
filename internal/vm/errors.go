package vm

import "fmt"

// ErrStackUnderflow is returned when an operation pops more items than the
// stack currently holds.
type ErrStackUnderflow struct {
	StackLen int
	Required int
}

func (e *ErrStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow (%d <=> %d)", e.StackLen, e.Required)
}

// ErrStackOverflow is returned when an operation would push the stack past
// its 1024-slot bound.
type ErrStackOverflow struct {
	StackLen int
	Limit    int
}

func (e *ErrStackOverflow) Error() string {
	return fmt.Sprintf("stack limit reached %d (%d)", e.StackLen, e.Limit)
}

// ErrReturnStackUnderflow is returned by RETURNSUB when the EIP-2315
// substack is empty.
type ErrReturnStackUnderflow struct{}

func (e *ErrReturnStackUnderflow) Error() string { return "return stack underflow" }

// ErrReturnStackOverflow is returned by JUMPSUB when the EIP-2315 substack
// has reached its 1023-entry bound.
type ErrReturnStackOverflow struct{}

func (e *ErrReturnStackOverflow) Error() string { return "return stack limit reached" }

// ErrInvalidJump is returned when a JUMP/JUMPI target is not a JUMPDEST
// that begins an instruction, or when a JUMP/JUMPI/JUMPSUB destination
// does not fit in 64 bits. A JUMPSUB target that is not a BEGINSUB
// returns ErrInvalidSubEntry instead.
type ErrInvalidJump struct {
	Dest uint64
}

func (e *ErrInvalidJump) Error() string {
	return fmt.Sprintf("invalid jump destination %d", e.Dest)
}

// ErrInvalidSubEntry is returned when JUMPSUB lands on something other than
// a BEGINSUB.
type ErrInvalidSubEntry struct {
	Dest uint64
}

func (e *ErrInvalidSubEntry) Error() string {
	return fmt.Sprintf("invalid subroutine entry %d", e.Dest)
}

// ErrInvalidBeginSub is returned when execution reaches a BEGINSUB by
// ordinary fall-through rather than as a JUMPSUB landing pad.
type ErrInvalidBeginSub struct{}

func (e *ErrInvalidBeginSub) Error() string { return "invalid beginsub entry" }

// ErrOutOfGas is returned when the contract's remaining gas cannot cover an
// operation's static or dynamic cost.
type ErrOutOfGas struct{}

func (e *ErrOutOfGas) Error() string { return "out of gas" }

// ErrGasUintOverflow is returned when gas accounting itself overflows a
// uint64, which the metering layer treats as an unconditional failure.
type ErrGasUintOverflow struct{}

func (e *ErrGasUintOverflow) Error() string { return "gas uint64 overflow" }

// ErrWriteProtection is returned when a state-mutating opcode executes
// inside a STATICCALL frame.
type ErrWriteProtection struct {
	Op OpCode
}

func (e *ErrWriteProtection) Error() string {
	return fmt.Sprintf("write protection: %s not permitted in static context", e.Op)
}

// ErrInvalidOpCode is returned when the dispatch loop reads a byte with no
// registered handler.
type ErrInvalidOpCode struct {
	Op OpCode
}

func (e *ErrInvalidOpCode) Error() string {
	return fmt.Sprintf("invalid opcode: %s", e.Op)
}

// ErrDepthLimit is returned when a CALL/CREATE family opcode would exceed
// the configured call-depth bound.
type ErrDepthLimit struct {
	Limit int
}

func (e *ErrDepthLimit) Error() string {
	return fmt.Sprintf("max call depth exceeded (%d)", e.Limit)
}

// ErrExecutionReverted wraps a REVERT's return data so callers can recover
// it without inspecting the frame directly.
type ErrExecutionReverted struct {
	ReturnData []byte
}

func (e *ErrExecutionReverted) Error() string { return "execution reverted" }

// ErrReturnDataOutOfBounds is returned when RETURNDATACOPY reads past the
// end of the last sub-call's return buffer.
type ErrReturnDataOutOfBounds struct{}

func (e *ErrReturnDataOutOfBounds) Error() string { return "return data out of bounds" }

// ErrMaxCodeSizeExceeded is returned when CREATE/CREATE2 deployment code
// would exceed the configured contract-size ceiling.
type ErrMaxCodeSizeExceeded struct{}

func (e *ErrMaxCodeSizeExceeded) Error() string { return "max code size exceeded" }

// ErrInvalidCodeEntry is returned when deployed code begins with the EOF
// forbidden 0xEF prefix (EIP-3541).
type ErrInvalidCodeEntry struct{}

func (e *ErrInvalidCodeEntry) Error() string { return "invalid code: must not begin with 0xef" }

// ErrContractAddressCollision is returned when CREATE/CREATE2 would deploy
// onto an address that already has code or a nonzero nonce.
type ErrContractAddressCollision struct{}

func (e *ErrContractAddressCollision) Error() string { return "contract address collision" }

// ErrInsufficientBalance is returned when a CALL/CREATE's value transfer
// exceeds the caller's balance.
type ErrInsufficientBalance struct{}

func (e *ErrInsufficientBalance) Error() string { return "insufficient balance for transfer" }

// TrapCode classifies a controlled termination condition so the EEI and the
// VCM can distinguish "this execution stopped on purpose" from "the
// interpreter itself is broken".
type TrapCode int

const (
	TrapNone TrapCode = iota
	TrapOutOfGas
	TrapStackUnderflow
	TrapStackOverflow
	TrapInvalidJump
	TrapInvalidOpCode
	TrapWriteProtection
	TrapDepthLimit
	TrapInsufficientBalance
	TrapContractCollision
	TrapInvalidCodeEntry
	TrapMaxCodeSizeExceeded
	TrapReturnStackUnderflow
	TrapReturnStackOverflow
	TrapInvalidSubEntry
	TrapInvalidBeginSub
)

func (t TrapCode) String() string {
	switch t {
	case TrapNone:
		return "none"
	case TrapOutOfGas:
		return "out-of-gas"
	case TrapStackUnderflow:
		return "stack-underflow"
	case TrapStackOverflow:
		return "stack-overflow"
	case TrapInvalidJump:
		return "invalid-jump"
	case TrapInvalidOpCode:
		return "invalid-opcode"
	case TrapWriteProtection:
		return "write-protection"
	case TrapDepthLimit:
		return "depth-limit"
	case TrapInsufficientBalance:
		return "insufficient-balance"
	case TrapContractCollision:
		return "contract-collision"
	case TrapInvalidCodeEntry:
		return "invalid-code-entry"
	case TrapMaxCodeSizeExceeded:
		return "max-code-size-exceeded"
	case TrapReturnStackUnderflow:
		return "return-stack-underflow"
	case TrapReturnStackOverflow:
		return "return-stack-overflow"
	case TrapInvalidSubEntry:
		return "invalid-sub-entry"
	case TrapInvalidBeginSub:
		return "invalid-beginsub"
	default:
		return "unknown-trap"
	}
}

// classifyTrap maps an error returned by the dispatch loop to the TrapCode
// the EEI reports upward. Errors with no trap mapping (e.g. a propagated
// ErrExecutionReverted) are not traps: they are controlled terminations
// the caller already has full information about.
func classifyTrap(err error) TrapCode {
	switch err.(type) {
	case *ErrOutOfGas, *ErrGasUintOverflow:
		return TrapOutOfGas
	case *ErrStackUnderflow:
		return TrapStackUnderflow
	case *ErrStackOverflow:
		return TrapStackOverflow
	case *ErrInvalidJump:
		return TrapInvalidJump
	case *ErrInvalidOpCode:
		return TrapInvalidOpCode
	case *ErrWriteProtection:
		return TrapWriteProtection
	case *ErrDepthLimit:
		return TrapDepthLimit
	case *ErrInsufficientBalance:
		return TrapInsufficientBalance
	case *ErrContractAddressCollision:
		return TrapContractCollision
	case *ErrInvalidCodeEntry:
		return TrapInvalidCodeEntry
	case *ErrMaxCodeSizeExceeded:
		return TrapMaxCodeSizeExceeded
	case *ErrReturnStackUnderflow:
		return TrapReturnStackUnderflow
	case *ErrReturnStackOverflow:
		return TrapReturnStackOverflow
	case *ErrInvalidSubEntry:
		return TrapInvalidSubEntry
	case *ErrInvalidBeginSub:
		return TrapInvalidBeginSub
	default:
		return TrapNone
	}
}
