// Package hash implements the zkEVM's linear-Poseidon bytecode hash, used
// in place of Keccak for EXTCODEHASH so a contract's code commitment can be
// verified inside the same Poseidon-based SMT the rest of zkEVM state
// lives in.
package hash

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
)

// chunkSize is the number of field elements hashed per Poseidon
// permutation round, matching the linear-hash construction's capacity.
const chunkSize = 8

// fieldBytes is the byte width of a single field element in the chunking
// scheme: 4 elements of 7 bytes pack into one 28-byte lane, half of a
// 56-byte double-lane row; see CodeHash below for the exact layout.
const fieldBytes = 7

// CodeHash computes the zkEVM linear-Poseidon hash of a contract's runtime
// bytecode. Code is padded to a multiple of 56 bytes (a 0x01 byte
// immediately after the last code byte to mark the end, then 0x00 bytes
// up to the row boundary; see padCode), split into
// 7-byte lanes, and folded through successive Poseidon permutations
// starting from a zero capacity state.
func CodeHash(code []byte) ([32]byte, error) {
	padded := padCode(code)

	capacity := [4]*big.Int{big.NewInt(0), big.NewInt(0), big.NewInt(0), big.NewInt(0)}
	state := capacity
	for off := 0; off < len(padded); off += chunkSize * fieldBytes {
		chunk := padded[off : off+chunkSize*fieldBytes]
		inputs := make([]*big.Int, 0, chunkSize+4)
		for i := 0; i < chunkSize; i++ {
			lane := chunk[i*fieldBytes : (i+1)*fieldBytes]
			inputs = append(inputs, new(big.Int).SetBytes(lane))
		}
		inputs = append(inputs, state[0], state[1], state[2], state[3])

		out, err := poseidon.Hash(inputs)
		if err != nil {
			return [32]byte{}, err
		}
		state[0] = out
	}

	var digest [32]byte
	state[0].FillBytes(digest[:])
	return digest, nil
}

// padCode right-pads code with zero bytes to a multiple of 56 bytes
// (chunkSize*fieldBytes), then writes a 0x01 terminator into the first
// padding byte, right after the code, so an all-zero trailing chunk can't
// collide with a shorter, differently-padded program.
func padCode(code []byte) []byte {
	rowSize := chunkSize * fieldBytes
	padLen := rowSize - len(code)%rowSize // always in [1, rowSize], reserving room for the terminator byte
	out := make([]byte, len(code)+padLen)
	copy(out, code)
	out[len(code)] = 0x01
	return out
}
