package vm

// JumpTable is a dense array of operation descriptors indexed directly by
// opcode byte value, the dispatch structure the interpreter loop is built
// around.
type JumpTable [256]*operation

// newZkEVMJumpTable builds the single jump table this interpreter uses.
// Unlike a fork-ladder implementation that assembles one table per
// historical hard fork and patches it forward, this instruction set is
// fixed, so a single base table plus the EIP-2315 subroutine overlay is
// sufficient.
func newZkEVMJumpTable() *JumpTable {
	tbl := &JumpTable{}

	tbl[STOP] = &operation{execute: opStop, minStack: minStack(0, 0), maxStack: maxStack(0, 0), halts: true, valid: true}
	tbl[ADD] = &operation{execute: opAdd, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[MUL] = &operation{execute: opMul, constantGas: GasFastStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[SUB] = &operation{execute: opSub, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[DIV] = &operation{execute: opDiv, constantGas: GasFastStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[SDIV] = &operation{execute: opSdiv, constantGas: GasFastStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[MOD] = &operation{execute: opMod, constantGas: GasFastStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[SMOD] = &operation{execute: opSmod, constantGas: GasFastStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[ADDMOD] = &operation{execute: opAddmod, constantGas: GasMidStep, minStack: minStack(3, 1), maxStack: maxStack(3, 1), valid: true}
	tbl[MULMOD] = &operation{execute: opMulmod, constantGas: GasMidStep, minStack: minStack(3, 1), maxStack: maxStack(3, 1), valid: true}
	tbl[EXP] = &operation{execute: opExp, constantGas: GasSlowStep, dynamicGas: gasExp, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[SIGNEXTEND] = &operation{execute: opSignExtend, constantGas: GasFastStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}

	tbl[LT] = &operation{execute: opLt, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[GT] = &operation{execute: opGt, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[SLT] = &operation{execute: opSlt, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[SGT] = &operation{execute: opSgt, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[EQ] = &operation{execute: opEq, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[ISZERO] = &operation{execute: opIszero, constantGas: GasFastestStep, minStack: minStack(1, 1), maxStack: maxStack(1, 1), valid: true}
	tbl[AND] = &operation{execute: opAnd, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[OR] = &operation{execute: opOr, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[XOR] = &operation{execute: opXor, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[NOT] = &operation{execute: opNot, constantGas: GasFastestStep, minStack: minStack(1, 1), maxStack: maxStack(1, 1), valid: true}
	tbl[BYTE] = &operation{execute: opByte, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[SHL] = &operation{execute: opShl, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[SHR] = &operation{execute: opShr, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}
	tbl[SAR] = &operation{execute: opSar, constantGas: GasFastestStep, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}

	tbl[SHA3] = &operation{execute: opSha3, constantGas: 30, dynamicGas: gasSha3, memorySize: memorySizeSha3, minStack: minStack(2, 1), maxStack: maxStack(2, 1), valid: true}

	tbl[ADDRESS] = &operation{execute: opAddress, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[BALANCE] = &operation{execute: opBalance, constantGas: 400, minStack: minStack(1, 1), maxStack: maxStack(1, 1), valid: true}
	tbl[ORIGIN] = &operation{execute: opOrigin, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[CALLER] = &operation{execute: opCaller, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[CALLVALUE] = &operation{execute: opCallValue, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[CALLDATALOAD] = &operation{execute: opCallDataLoad, constantGas: GasFastestStep, minStack: minStack(1, 1), maxStack: maxStack(1, 1), valid: true}
	tbl[CALLDATASIZE] = &operation{execute: opCallDataSize, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[CALLDATACOPY] = &operation{execute: opCallDataCopy, constantGas: GasFastestStep, dynamicGas: gasCopy, memorySize: memorySizeCopy, minStack: minStack(3, 0), maxStack: maxStack(3, 0), valid: true}
	tbl[CODESIZE] = &operation{execute: opCodeSize, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[CODECOPY] = &operation{execute: opCodeCopy, constantGas: GasFastestStep, dynamicGas: gasCopy, memorySize: memorySizeCopy, minStack: minStack(3, 0), maxStack: maxStack(3, 0), valid: true}
	tbl[GASPRICE] = &operation{execute: opGasPrice, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[EXTCODESIZE] = &operation{execute: opExtCodeSize, constantGas: 700, minStack: minStack(1, 1), maxStack: maxStack(1, 1), valid: true}
	tbl[EXTCODECOPY] = &operation{execute: opExtCodeCopy, dynamicGas: gasExtCodeCopy, memorySize: memorySizeExtCodeCopy, minStack: minStack(4, 0), maxStack: maxStack(4, 0), valid: true}
	tbl[RETURNDATASIZE] = &operation{execute: opReturnDataSize, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[RETURNDATACOPY] = &operation{execute: opReturnDataCopy, constantGas: GasFastestStep, dynamicGas: gasCopy, memorySize: memorySizeCopy, minStack: minStack(3, 0), maxStack: maxStack(3, 0), valid: true}
	tbl[EXTCODEHASH] = &operation{execute: opExtCodeHash, constantGas: 700, minStack: minStack(1, 1), maxStack: maxStack(1, 1), valid: true}

	tbl[BLOCKHASH] = &operation{execute: opBlockHash, constantGas: GasExtStep, minStack: minStack(1, 1), maxStack: maxStack(1, 1), valid: true}
	tbl[COINBASE] = &operation{execute: opCoinbase, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[TIMESTAMP] = &operation{execute: opTimestamp, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[NUMBER] = &operation{execute: opNumber, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[DIFFICULTY] = &operation{execute: opDifficulty, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[GASLIMIT] = &operation{execute: opGasLimit, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[CHAINID] = &operation{execute: opChainID, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[SELFBALANCE] = &operation{execute: opSelfBalance, constantGas: GasFastStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[BASEFEE] = &operation{execute: opBaseFee, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}

	tbl[POP] = &operation{execute: opPop, constantGas: GasQuickStep, minStack: minStack(1, 0), maxStack: maxStack(1, 0), valid: true}
	tbl[MLOAD] = &operation{execute: opMload, constantGas: GasFastestStep, dynamicGas: gasMemoryExpansion, memorySize: memorySizeOnePop32, minStack: minStack(1, 1), maxStack: maxStack(1, 1), valid: true}
	tbl[MSTORE] = &operation{execute: opMstore, constantGas: GasFastestStep, dynamicGas: gasMemoryExpansion, memorySize: memorySizeOnePop32, minStack: minStack(2, 0), maxStack: maxStack(2, 0), valid: true}
	tbl[MSTORE8] = &operation{execute: opMstore8, constantGas: GasFastestStep, dynamicGas: gasMemoryExpansion, memorySize: memorySizeMstore8, minStack: minStack(2, 0), maxStack: maxStack(2, 0), valid: true}
	tbl[SLOAD] = &operation{execute: opSload, constantGas: 800, minStack: minStack(1, 1), maxStack: maxStack(1, 1), valid: true}
	tbl[SSTORE] = &operation{execute: opSstore, dynamicGas: gasSstore, minStack: minStack(2, 0), maxStack: maxStack(2, 0), valid: true, writes: true}
	tbl[JUMP] = &operation{execute: opJump, constantGas: GasMidStep, minStack: minStack(1, 0), maxStack: maxStack(1, 0), jumps: true, valid: true}
	tbl[JUMPI] = &operation{execute: opJumpi, constantGas: GasSlowStep, minStack: minStack(2, 0), maxStack: maxStack(2, 0), jumps: true, valid: true}
	tbl[PC] = &operation{execute: opPc, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[MSIZE] = &operation{execute: opMsize, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[GAS] = &operation{execute: opGas, constantGas: GasQuickStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	tbl[JUMPDEST] = &operation{execute: opJumpdest, constantGas: 1, minStack: minStack(0, 0), maxStack: maxStack(0, 0), valid: true}

	// EIP-2315 subroutines.
	tbl[BEGINSUB] = &operation{execute: opBeginSub, constantGas: GasQuickStep, minStack: minStack(0, 0), maxStack: maxStack(0, 0), valid: true}
	tbl[RETURNSUB] = &operation{execute: opReturnSub, constantGas: GasSlowStep, minStack: minStack(0, 0), maxStack: maxStack(0, 0), jumps: true, valid: true}
	tbl[JUMPSUB] = &operation{execute: opJumpSub, constantGas: GasSlowStep, minStack: minStack(1, 0), maxStack: maxStack(1, 0), jumps: true, valid: true}

	for i := 0; i < 32; i++ {
		tbl[PUSH1+OpCode(i)] = &operation{execute: makePush(uint64(i + 1)), constantGas: GasFastestStep, minStack: minStack(0, 1), maxStack: maxStack(0, 1), valid: true}
	}
	for i := 0; i < 16; i++ {
		tbl[DUP1+OpCode(i)] = &operation{execute: makeDup(i + 1), constantGas: GasFastestStep, minStack: minStack(i+1, i+2), maxStack: maxStack(i+1, i+2), valid: true}
		tbl[SWAP1+OpCode(i)] = &operation{execute: makeSwap(i + 1), constantGas: GasFastestStep, minStack: minStack(i+2, i+2), maxStack: maxStack(i+2, i+2), valid: true}
	}
	for i := 0; i < 5; i++ {
		tbl[LOG0+OpCode(i)] = &operation{execute: makeLog(i), dynamicGas: makeGasLog(i), memorySize: memorySizeOffsetSize, minStack: minStack(i+2, 0), maxStack: maxStack(i+2, 0), valid: true, writes: true}
	}

	tbl[CREATE] = &operation{execute: opCreate, constantGas: GasCreate, dynamicGas: gasCreate, memorySize: memorySizeCreate, minStack: minStack(3, 1), maxStack: maxStack(3, 1), valid: true, writes: true}
	tbl[CALL] = &operation{execute: opCall, dynamicGas: gasCall, memorySize: memorySizeCall, minStack: minStack(7, 1), maxStack: maxStack(7, 1), valid: true}
	tbl[CALLCODE] = &operation{execute: opCallCode, dynamicGas: gasCall, memorySize: memorySizeCall, minStack: minStack(7, 1), maxStack: maxStack(7, 1), valid: true}
	tbl[RETURN] = &operation{execute: opReturn, dynamicGas: gasMemoryExpansion, memorySize: memorySizeOffsetSize, minStack: minStack(2, 0), maxStack: maxStack(2, 0), halts: true, valid: true}
	tbl[DELEGATECALL] = &operation{execute: opDelegateCall, dynamicGas: gasCall, memorySize: memorySizeCall, minStack: minStack(6, 1), maxStack: maxStack(6, 1), valid: true}
	tbl[CREATE2] = &operation{execute: opCreate2, dynamicGas: gasCreate2, memorySize: memorySizeCreate, minStack: minStack(4, 1), maxStack: maxStack(4, 1), valid: true, writes: true}
	tbl[STATICCALL] = &operation{execute: opStaticCall, dynamicGas: gasCall, memorySize: memorySizeCall, minStack: minStack(6, 1), maxStack: maxStack(6, 1), valid: true}
	tbl[REVERT] = &operation{execute: opRevert, dynamicGas: gasMemoryExpansion, memorySize: memorySizeOffsetSize, minStack: minStack(2, 0), maxStack: maxStack(2, 0), halts: true, valid: true}
	tbl[SELFDESTRUCT] = &operation{execute: opSelfDestruct, constantGas: GasSelfDestruct, dynamicGas: gasSelfDestruct, minStack: minStack(1, 0), maxStack: maxStack(1, 0), halts: true, writes: true, valid: true}

	return tbl
}
