package vm

import (
	"github.com/ledgerwatch/log/v3"

	"github.com/0xPolygonHermez/zkevm-opcodes/internal/vm/counters"
)

// Config bundles the interpreter behavior switches that don't belong on
// BlockContext/TxContext: the call-depth ceiling and the maximum
// deployable contract size, both of which a production deployment may
// want to tune per network.
type Config struct {
	CallDepthLimit int
	MaxCodeSize    int
	Logger         log.Logger
}

// DefaultConfig matches mainnet's historical defaults.
func DefaultConfig() Config {
	return Config{
		CallDepthLimit: 1024,
		MaxCodeSize:    24576,
		Logger:         log.New(),
	}
}

// Interpreter drives the fetch-decode-execute loop over a single call
// frame's code, charging gas and VCM counters per instruction and
// delegating every side effect to the EEI. One Interpreter is reused
// across the nested frames of a single top-level call so the jump table
// and counters are only built once.
type Interpreter struct {
	eei       EEI
	jumpTable *JumpTable
	vcm       *counters.Transaction
	blockCtx  BlockContext
	txCtx     TxContext
	cfg       Config
	cache     *jumpdestCache

	refund uint64
	depth  int
}

// NewInterpreter constructs an Interpreter ready to run call frames
// against eei, charging resource usage to vcm.
func NewInterpreter(eei EEI, blockCtx BlockContext, txCtx TxContext, vcm *counters.Transaction, cfg Config) *Interpreter {
	return &Interpreter{
		eei:       eei,
		jumpTable: newZkEVMJumpTable(),
		vcm:       vcm,
		blockCtx:  blockCtx,
		txCtx:     txCtx,
		cfg:       cfg,
		cache:     newJumpdestCache(),
	}
}

// Run executes frame's code from its current PC until it halts, traps, or
// reverts. The returned error is nil on STOP/RETURN and implements the
// trap classification in errors.go on every other outcome; a reverted
// frame returns *ErrExecutionReverted with its return data attached and
// keeps its unused gas, while any other error leaves frame.Gas at zero.
// A frame with a nonzero CodeHash takes its JUMPDEST bitmap from the
// interpreter's per-code-hash cache.
func (in *Interpreter) Run(frame *Frame) (ret []byte, err error) {
	defer func() {
		if err != nil {
			if _, reverted := err.(*ErrExecutionReverted); !reverted {
				frame.Gas = 0
			}
		}
	}()

	if frame.Depth > in.cfg.CallDepthLimit {
		return nil, &ErrDepthLimit{Limit: in.cfg.CallDepthLimit}
	}
	if frame.jumpBits == nil && frame.CodeHash != ([32]byte{}) {
		frame.jumpBits = in.cache.bitmapFor(string(frame.CodeHash[:]), frame.Code)
	}

	pc := frame.PC
	codeLen := uint64(len(frame.Code))

	for {
		if pc >= codeLen {
			return nil, nil
		}

		op := OpCode(frame.Code[pc])
		opInfo := in.jumpTable[op]
		if opInfo == nil || !opInfo.valid {
			return nil, &ErrInvalidOpCode{Op: op}
		}

		pushes := opInfo.maxStack - maxStackDepth + opInfo.minStack
		if err := frame.Stack.requireOperands(opInfo.minStack, pushes); err != nil {
			return nil, err
		}
		if opInfo.writes && frame.ReadOnly {
			return nil, &ErrWriteProtection{Op: op}
		}

		if err := in.vcm.DeductNamed(op.String()); err != nil {
			return nil, err
		}

		var memorySize uint64
		if opInfo.memorySize != nil {
			size, overflow := opInfo.memorySize(frame.Stack)
			if overflow {
				return nil, &ErrGasUintOverflow{}
			}
			memorySize = toWordSize(size) * 32
		}

		if err := frame.UseGas(opInfo.constantGas); err != nil {
			return nil, err
		}
		if opInfo.dynamicGas != nil {
			frame.PC = pc
			dynCost, err := opInfo.dynamicGas(in, frame, frame.Stack, frame.Memory, memorySize)
			if err != nil {
				return nil, err
			}
			if err := frame.UseGas(dynCost); err != nil {
				return nil, err
			}
		}
		if memorySize > 0 {
			frame.Memory.Resize(memorySize)
		}

		frame.PC = pc
		out, err := opInfo.execute(&pc, in, frame)
		if err != nil {
			if revertErr, ok := err.(*ErrExecutionReverted); ok {
				return revertErr.ReturnData, revertErr
			}
			return nil, err
		}
		if opInfo.halts {
			return out, nil
		}
		if !opInfo.jumps {
			pc++
		}
	}
}

// Refund returns the accumulated SSTORE gas refund for the call this
// Interpreter ran, to be applied by the caller against the transaction's
// total gas used.
func (in *Interpreter) Refund() uint64 { return in.refund }
