package vm

import "github.com/holiman/uint256"

func opAddress(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(addressToWord(frame.Address))
	return nil, nil
}

func opBalance(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	slot := frame.Stack.Peek()
	addr := addressFromWord(slot)
	slot.Set(interp.eei.GetBalance(addr))
	return nil, nil
}

func opOrigin(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(addressToWord(interp.txCtx.Origin))
	return nil, nil
}

func opCaller(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(addressToWord(frame.Caller))
	return nil, nil
}

func opCallValue(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(frame.Value)
	return nil, nil
}

func opCallDataLoad(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	off := frame.Stack.Peek()
	if !off.IsUint64() {
		off.Clear()
		return nil, nil
	}
	start := off.Uint64()
	var buf [32]byte
	if start < uint64(len(frame.Input)) {
		end := start + 32
		if end > uint64(len(frame.Input)) {
			end = uint64(len(frame.Input))
		}
		copy(buf[:], frame.Input[start:end])
	}
	off.SetBytes(buf[:])
	return nil, nil
}

func opCallDataSize(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(new(uint256.Int).SetUint64(uint64(len(frame.Input))))
	return nil, nil
}

func opCallDataCopy(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	memOff, dataOff, length := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Pop()
	data := paddedSlice(frame.Input, &dataOff, &length)
	frame.Memory.Set(memOff.Uint64(), length.Uint64(), data)
	return nil, nil
}

func opCodeSize(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(new(uint256.Int).SetUint64(uint64(len(frame.Code))))
	return nil, nil
}

func opCodeCopy(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	memOff, codeOff, length := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Pop()
	data := paddedSlice(frame.Code, &codeOff, &length)
	frame.Memory.Set(memOff.Uint64(), length.Uint64(), data)
	return nil, nil
}

func opGasPrice(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(interp.txCtx.GasPrice)
	return nil, nil
}

func opExtCodeSize(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	slot := frame.Stack.Peek()
	addr := addressFromWord(slot)
	slot.SetUint64(uint64(interp.eei.GetCodeSize(addr)))
	return nil, nil
}

func opExtCodeCopy(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	addrWord := frame.Stack.Pop()
	memOff, codeOff, length := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Pop()
	addr := addressFromWord(&addrWord)
	code := interp.eei.GetCode(addr)
	data := paddedSlice(code, &codeOff, &length)
	frame.Memory.Set(memOff.Uint64(), length.Uint64(), data)
	return nil, nil
}

func opReturnDataSize(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(new(uint256.Int).SetUint64(uint64(len(frame.ReturnData))))
	return nil, nil
}

func opReturnDataCopy(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	memOff, dataOff, length := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Pop()
	if !dataOff.IsUint64() || !length.IsUint64() {
		return nil, &ErrReturnDataOutOfBounds{}
	}
	start, size := dataOff.Uint64(), length.Uint64()
	if start+size > uint64(len(frame.ReturnData)) || start+size < start {
		return nil, &ErrReturnDataOutOfBounds{}
	}
	frame.Memory.Set(memOff.Uint64(), size, frame.ReturnData[start:start+size])
	return nil, nil
}

func opExtCodeHash(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	slot := frame.Stack.Peek()
	addr := addressFromWord(slot)
	if !interp.eei.Exist(addr) || interp.eei.Empty(addr) {
		slot.Clear()
		return nil, nil
	}
	hash := interp.eei.GetCodeHash(addr)
	slot.SetBytes(hash[:])
	return nil, nil
}

func opBlockHash(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	num := frame.Stack.Peek()
	if !num.IsUint64() {
		num.Clear()
		return nil, nil
	}
	h := interp.eei.GetBlockHash(num.Uint64())
	num.SetBytes(h[:])
	return nil, nil
}

func opCoinbase(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(addressToWord(interp.blockCtx.Coinbase))
	return nil, nil
}

func opTimestamp(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(new(uint256.Int).SetUint64(interp.blockCtx.Time))
	return nil, nil
}

func opNumber(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(new(uint256.Int).SetUint64(interp.blockCtx.BlockNumber))
	return nil, nil
}

func opDifficulty(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(interp.blockCtx.Difficulty)
	return nil, nil
}

func opGasLimit(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(new(uint256.Int).SetUint64(interp.blockCtx.GasLimit))
	return nil, nil
}

func opChainID(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(interp.blockCtx.ChainID)
	return nil, nil
}

func opSelfBalance(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(interp.eei.GetBalance(frame.Address))
	return nil, nil
}

func opBaseFee(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(interp.blockCtx.BaseFee)
	return nil, nil
}

// addressToWord widens an Address into a Word, used by every opcode that
// pushes an address onto the operand stack.
func addressToWord(addr Address) *uint256.Int {
	return new(uint256.Int).SetBytes(addr[:])
}

// paddedSlice returns src[offset:offset+length], zero-padded on the right
// when the requested window runs past the end of src — the shared
// behavior CALLDATACOPY, CODECOPY and EXTCODECOPY all rely on.
func paddedSlice(src []byte, offset, length *uint256.Int) []byte {
	if !length.IsUint64() {
		panic(&ErrGasUintOverflow{})
	}
	size := length.Uint64()
	out := make([]byte, size)
	if !offset.IsUint64() {
		return out
	}
	start := offset.Uint64()
	if start >= uint64(len(src)) {
		return out
	}
	end := start + size
	if end > uint64(len(src)) {
		end = uint64(len(src))
	}
	copy(out, src[start:end])
	return out
}
