package vm

import "github.com/holiman/uint256"

func opPop(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	frame.Stack.Pop()
	return nil, nil
}

// makePush returns a PUSHn handler that reads size bytes immediately
// following the opcode in frame.Code and pushes them as a left-padded
// word, advancing pc past the immediate.
func makePush(size uint64) executionFunc {
	return func(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
		codeLen := uint64(len(frame.Code))
		start := *pc + 1
		var buf [32]byte
		if start < codeLen {
			end := start + size
			if end > codeLen {
				end = codeLen
			}
			copy(buf[32-size:], frame.Code[start:end])
		}
		var word uint256.Int
		word.SetBytes(buf[:])
		frame.Stack.Push(&word)
		*pc += size
		return nil, nil
	}
}

// makeDup returns a DUPn handler that duplicates the n-th item from the
// top of the stack (1-indexed, matching the opcode's own numbering).
func makeDup(n int) executionFunc {
	return func(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
		frame.Stack.Dup(n)
		return nil, nil
	}
}

// makeSwap returns a SWAPn handler that exchanges the top of the stack
// with the item n positions below it.
func makeSwap(n int) executionFunc {
	return func(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
		frame.Stack.Swap(n)
		return nil, nil
	}
}
