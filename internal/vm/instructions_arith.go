package vm

func opAdd(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.Add(&x, y)
	return nil, nil
}

func opSub(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.Sub(&x, y)
	return nil, nil
}

func opMul(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.Mul(&x, y)
	return nil, nil
}

func opDiv(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.Set(opDivWord(&x, y))
	return nil, nil
}

func opSdiv(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.Set(sdivWord(&x, y))
	return nil, nil
}

func opMod(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.Set(opModWord(&x, y))
	return nil, nil
}

func opSmod(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.Set(smodWord(&x, y))
	return nil, nil
}

func opAddmod(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y, z := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Peek()
	z.Set(addModWord(&x, &y, z))
	return nil, nil
}

func opMulmod(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y, z := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Peek()
	z.Set(mulModWord(&x, &y, z))
	return nil, nil
}

func opExp(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	base, exponent := frame.Stack.Pop(), frame.Stack.Peek()
	if err := interp.vcm.RecordExpByteLen(expByteLen(exponent)); err != nil {
		return nil, err
	}
	exponent.Set(expWord(&base, exponent))
	return nil, nil
}

func opSignExtend(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	back, num := frame.Stack.Pop(), frame.Stack.Peek()
	num.Set(signExtendWord(&back, num))
	return nil, nil
}

func opLt(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opGt(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSlt(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSgt(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opEq(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opIszero(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x := frame.Stack.Peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return nil, nil
}

func opAnd(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.And(&x, y)
	return nil, nil
}

func opOr(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.Or(&x, y)
	return nil, nil
}

func opXor(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x, y := frame.Stack.Pop(), frame.Stack.Peek()
	y.Xor(&x, y)
	return nil, nil
}

func opNot(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	x := frame.Stack.Peek()
	x.Not(x)
	return nil, nil
}

func opByte(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	pos, val := frame.Stack.Pop(), frame.Stack.Peek()
	val.Set(byteWord(&pos, val))
	return nil, nil
}

func opShl(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	shift, value := frame.Stack.Pop(), frame.Stack.Peek()
	value.Set(shlWord(&shift, value))
	return nil, nil
}

func opShr(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	shift, value := frame.Stack.Pop(), frame.Stack.Peek()
	value.Set(shrWord(&shift, value))
	return nil, nil
}

func opSar(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	shift, value := frame.Stack.Pop(), frame.Stack.Peek()
	value.Set(sarWord(&shift, value))
	return nil, nil
}
