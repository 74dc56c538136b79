package vm

import "golang.org/x/crypto/sha3"

func opSha3(pc *uint64, interp *Interpreter, frame *Frame) ([]byte, error) {
	off, size := frame.Stack.Pop(), frame.Stack.Peek()
	data := frame.Memory.GetPtr(off.Uint64(), size.Uint64())
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	size.SetBytes(hash.Sum(nil))
	return nil, nil
}
