package vm

func opSload(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	loc := frame.Stack.Peek()
	key := loc.Bytes32()
	raw := interp.eei.GetState(frame.Address, key)
	loc.Set(wordFromShortestBigEndian(raw))
	return nil, nil
}

func opSstore(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	if frame.ReadOnly {
		return nil, &ErrWriteProtection{Op: SSTORE}
	}
	loc, val := frame.Stack.Pop(), frame.Stack.Pop()
	key := loc.Bytes32()
	interp.eei.SetState(frame.Address, key, shortestBigEndian(&val))
	return nil, nil
}
