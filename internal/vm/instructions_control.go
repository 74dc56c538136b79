package vm

import "github.com/holiman/uint256"

func opJump(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	dest := frame.Stack.Pop()
	if !dest.IsUint64() {
		return nil, &ErrInvalidJump{Dest: dest.Uint64()}
	}
	target := dest.Uint64()
	if !validJumpdest(frame.Code, frame.jumpBitmap(), target) {
		return nil, &ErrInvalidJump{Dest: target}
	}
	*pc = target
	return nil, nil
}

func opJumpi(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	dest, cond := frame.Stack.Pop(), frame.Stack.Pop()
	if cond.IsZero() {
		*pc++
		return nil, nil
	}
	if !dest.IsUint64() {
		return nil, &ErrInvalidJump{Dest: dest.Uint64()}
	}
	target := dest.Uint64()
	if !validJumpdest(frame.Code, frame.jumpBitmap(), target) {
		return nil, &ErrInvalidJump{Dest: target}
	}
	*pc = target
	return nil, nil
}

func opPc(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(new(uint256.Int).SetUint64(*pc))
	return nil, nil
}

func opGas(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Push(new(uint256.Int).SetUint64(frame.Gas))
	return nil, nil
}

func opJumpdest(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	return nil, nil
}

// opBeginSub only validates as a landing pad when reached via JUMPSUB;
// fall-through execution of 0x5c traps, since a BEGINSUB has no meaning
// reached any other way.
func opBeginSub(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	if !frame.enteredViaJumpSub {
		return nil, &ErrInvalidBeginSub{}
	}
	frame.enteredViaJumpSub = false
	return nil, nil
}

// opJumpSub implements EIP-2315: push the instruction after JUMPSUB onto
// the return stack, then jump to dest, which must be a BEGINSUB.
func opJumpSub(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	dest := frame.Stack.Pop()
	if !dest.IsUint64() {
		return nil, &ErrInvalidJump{Dest: dest.Uint64()}
	}
	target := dest.Uint64()
	if !validSubEntry(frame.Code, frame.jumpBitmap(), target) {
		return nil, &ErrInvalidSubEntry{Dest: target}
	}
	if err := frame.ReturnStack.Push(uint32(*pc + 1)); err != nil {
		return nil, err
	}
	frame.enteredViaJumpSub = true
	*pc = target
	return nil, nil
}

// opReturnSub implements EIP-2315: pop the return stack and resume one
// byte past the JUMPSUB that pushed it.
func opReturnSub(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	retPC, err := frame.ReturnStack.Pop()
	if err != nil {
		return nil, err
	}
	*pc = uint64(retPC)
	return nil, nil
}
