package vm

import "github.com/holiman/uint256"

func opCreate(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	if frame.ReadOnly {
		return nil, &ErrWriteProtection{Op: CREATE}
	}
	value, off, size := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Pop()
	code := frame.Memory.GetCopy(off.Uint64(), size.Uint64())
	callGas := callGasBudget(frame.Gas, frame.Gas)

	frame.IsCreate = true
	frame.Nonce = interp.eei.GetNonce(frame.Address)
	if err := interp.vcm.DeductNamed("_processContractCall"); err != nil {
		return nil, err
	}
	if err := frame.UseGas(callGas); err != nil {
		return nil, err
	}

	ret, addr, gasLeft, err := interp.eei.Create(frame.Address, code, callGas, &value)
	return finishCreate(frame, ret, addr, gasLeft, err)
}

func opCreate2(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	if frame.ReadOnly {
		return nil, &ErrWriteProtection{Op: CREATE2}
	}
	value, off, size, salt := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Pop()
	code := frame.Memory.GetCopy(off.Uint64(), size.Uint64())
	callGas := callGasBudget(frame.Gas, frame.Gas)

	frame.IsCreate = true
	frame.Nonce = interp.eei.GetNonce(frame.Address)
	if err := interp.vcm.DeductNamed("_processContractCall"); err != nil {
		return nil, err
	}
	if err := frame.UseGas(callGas); err != nil {
		return nil, err
	}

	ret, addr, gasLeft, err := interp.eei.Create2(frame.Address, code, &salt, callGas, &value)
	return finishCreate(frame, ret, addr, gasLeft, err)
}

// finishCreate pushes the deployed address (or zero on failure) and
// credits back the portion of callGas the sub-call left unspent, mirroring
// finishCall's convention but for CREATE's address-or-zero result.
func finishCreate(frame *Frame, ret []byte, addr Address, gasLeft uint64, err error) ([]byte, error) {
	frame.Gas += gasLeft
	frame.ReturnData = ret

	result := new(uint256.Int)
	if err == nil {
		result.SetBytes(addr[:])
	}
	frame.Stack.Push(result)
	return nil, nil
}
