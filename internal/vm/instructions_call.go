package vm

import "github.com/holiman/uint256"

func opCall(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	gas, addrWord, value := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Pop()
	argsOff, argsSize := frame.Stack.Pop(), frame.Stack.Pop()
	retOff, retSize := frame.Stack.Pop(), frame.Stack.Pop()

	if !value.IsZero() && frame.ReadOnly {
		return nil, &ErrWriteProtection{Op: CALL}
	}

	addr := addressFromWord(&addrWord)
	input := frame.Memory.GetCopy(argsOff.Uint64(), argsSize.Uint64())
	callGas := callGasBudget(frame.Gas, gas.Uint64())

	if err := interp.vcm.DeductNamed("_processContractCall"); err != nil {
		return nil, err
	}
	if err := frame.UseGas(callGas); err != nil {
		return nil, err
	}

	ret, gasLeft, err := interp.eei.Call(frame.Address, addr, input, callGas, &value, frame.ReadOnly)
	return finishCall(frame, ret, gasLeft, retOff.Uint64(), retSize.Uint64(), err)
}

func opCallCode(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	gas, addrWord, value := frame.Stack.Pop(), frame.Stack.Pop(), frame.Stack.Pop()
	argsOff, argsSize := frame.Stack.Pop(), frame.Stack.Pop()
	retOff, retSize := frame.Stack.Pop(), frame.Stack.Pop()

	addr := addressFromWord(&addrWord)
	input := frame.Memory.GetCopy(argsOff.Uint64(), argsSize.Uint64())
	callGas := callGasBudget(frame.Gas, gas.Uint64())

	if err := interp.vcm.DeductNamed("_processContractCall"); err != nil {
		return nil, err
	}
	if err := frame.UseGas(callGas); err != nil {
		return nil, err
	}

	ret, gasLeft, err := interp.eei.CallCode(frame.Address, addr, input, callGas, &value)
	return finishCall(frame, ret, gasLeft, retOff.Uint64(), retSize.Uint64(), err)
}

func opDelegateCall(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	gas, addrWord := frame.Stack.Pop(), frame.Stack.Pop()
	argsOff, argsSize := frame.Stack.Pop(), frame.Stack.Pop()
	retOff, retSize := frame.Stack.Pop(), frame.Stack.Pop()

	addr := addressFromWord(&addrWord)
	input := frame.Memory.GetCopy(argsOff.Uint64(), argsSize.Uint64())
	callGas := callGasBudget(frame.Gas, gas.Uint64())

	if err := interp.vcm.DeductNamed("_processContractCall"); err != nil {
		return nil, err
	}
	if err := frame.UseGas(callGas); err != nil {
		return nil, err
	}

	ret, gasLeft, err := interp.eei.DelegateCall(frame.Caller, addr, input, callGas)
	return finishCall(frame, ret, gasLeft, retOff.Uint64(), retSize.Uint64(), err)
}

func opStaticCall(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	gas, addrWord := frame.Stack.Pop(), frame.Stack.Pop()
	argsOff, argsSize := frame.Stack.Pop(), frame.Stack.Pop()
	retOff, retSize := frame.Stack.Pop(), frame.Stack.Pop()

	addr := addressFromWord(&addrWord)
	input := frame.Memory.GetCopy(argsOff.Uint64(), argsSize.Uint64())
	callGas := callGasBudget(frame.Gas, gas.Uint64())

	if err := interp.vcm.DeductNamed("_processContractCall"); err != nil {
		return nil, err
	}
	if err := frame.UseGas(callGas); err != nil {
		return nil, err
	}

	ret, gasLeft, err := interp.eei.StaticCall(frame.Address, addr, input, callGas)
	return finishCall(frame, ret, gasLeft, retOff.Uint64(), retSize.Uint64(), err)
}

// callGasBudget implements EIP-150's 63/64ths rule: a CALL family opcode
// may only forward at most all-but-one-64th of the caller's remaining
// gas, regardless of how much the stack asked for.
func callGasBudget(available, requested uint64) uint64 {
	allowance := available - available/64
	if requested > allowance {
		return allowance
	}
	return requested
}

// finishCall writes a sub-call's return data into the caller's memory
// window, pushes the EVM success/failure flag, credits back whatever
// portion of the callGas already deducted from frame.Gas the sub-call left
// unspent, and records the return buffer for RETURNDATACOPY/
// RETURNDATASIZE. A reverted sub-call is not itself a trap: its return
// data still surfaces normally.
func finishCall(frame *Frame, ret []byte, gasLeft, retOff, retSize uint64, err error) ([]byte, error) {
	frame.ReturnData = ret
	frame.Gas += gasLeft

	success := err == nil
	if retSize > 0 {
		n := retSize
		if uint64(len(ret)) < n {
			n = uint64(len(ret))
		}
		frame.Memory.Set(retOff, n, ret[:n])
	}

	flag := new(uint256.Int)
	if success {
		flag.SetOne()
	}
	frame.Stack.Push(flag)
	return nil, nil
}
