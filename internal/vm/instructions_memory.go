package vm

import "github.com/holiman/uint256"

func opMload(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	offset := frame.Stack.Peek()
	off := offset.Uint64()
	offset.SetBytes(frame.Memory.GetPtr(off, 32))
	return nil, nil
}

func opMstore(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	mStart, val := frame.Stack.Pop(), frame.Stack.Pop()
	frame.Memory.Set32(mStart.Uint64(), &val)
	return nil, nil
}

func opMstore8(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	off, val := frame.Stack.Pop(), frame.Stack.Pop()
	frame.Memory.SetByte(off.Uint64(), byte(val.Uint64()))
	return nil, nil
}

func opMsize(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(new(uint256.Int).SetUint64(uint64(frame.Memory.Len())))
	return nil, nil
}

// memorySizeOnePop32 derives the required memory size for opcodes whose top
// stack item is a byte offset and whose access is always exactly 32 bytes
// (MLOAD, and MSTORE before its value operand is popped).
func memorySizeOnePop32(stack *Stack) (uint64, bool) {
	off := stack.Back(0)
	if !off.IsUint64() {
		return 0, true
	}
	base := off.Uint64()
	if base > 0x1FFFFFFFE0 {
		return 0, true
	}
	return base + 32, false
}

func memorySizeMstore8(stack *Stack) (uint64, bool) {
	off := stack.Back(0)
	if !off.IsUint64() {
		return 0, true
	}
	base := off.Uint64()
	if base > 0x1FFFFFFFE0 {
		return 0, true
	}
	return base + 1, false
}
