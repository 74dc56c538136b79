package vm

func opStop(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	return nil, nil
}

func opReturn(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	off, size := frame.Stack.Pop(), frame.Stack.Pop()
	return frame.Memory.GetCopy(off.Uint64(), size.Uint64()), nil
}

func opRevert(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	off, size := frame.Stack.Pop(), frame.Stack.Pop()
	ret := frame.Memory.GetCopy(off.Uint64(), size.Uint64())
	return ret, &ErrExecutionReverted{ReturnData: ret}
}

func opSelfDestruct(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	if frame.ReadOnly {
		return nil, &ErrWriteProtection{Op: SELFDESTRUCT}
	}
	beneficiaryWord := frame.Stack.Pop()
	beneficiary := addressFromWord(&beneficiaryWord)
	interp.eei.SelfDestruct(frame.Address, beneficiary)
	return nil, nil
}

// makeLog returns a LOGn handler: pop the memory window, pop n topics,
// emit a log entry with the EEI.
func makeLog(n int) executionFunc {
	return func(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
		if frame.ReadOnly {
			return nil, &ErrWriteProtection{Op: LOG0 + OpCode(n)}
		}
		off, size := frame.Stack.Pop(), frame.Stack.Pop()
		topics := make([][32]byte, n)
		for i := 0; i < n; i++ {
			t := frame.Stack.Pop()
			topics[i] = t.Bytes32()
		}
		data := frame.Memory.GetCopy(off.Uint64(), size.Uint64())
		interp.eei.AddLog(frame.Address, topics, data)
		return nil, nil
	}
}
