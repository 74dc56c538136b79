package vm

import (
	"github.com/holiman/uint256"
)

// Word is a 256-bit EVM stack value. It is a thin alias over uint256.Int so
// that the arithmetic opcode handlers can read as close to the Yellow Paper
// wording as possible while reusing a battle-tested bignum implementation.
type Word = uint256.Int

// NewWord returns a zero-valued Word.
func NewWord() *Word {
	return new(uint256.Int)
}

// WordFromUint64 builds a Word from a small unsigned value.
func WordFromUint64(v uint64) *Word {
	return new(uint256.Int).SetUint64(v)
}

// opDivWord and opModWord share the EVM's zero-divisor convention: division
// and modulus by zero both yield zero, rather than panicking or propagating
// an error.
func opDivWord(a, b *Word) *Word {
	if b.IsZero() {
		return NewWord()
	}
	return new(uint256.Int).Div(a, b)
}

func opModWord(a, b *Word) *Word {
	if b.IsZero() {
		return NewWord()
	}
	return new(uint256.Int).Mod(a, b)
}

// sdivWord implements signed division with the EVM's MIN_I256/-1 fixed point
// and zero-divisor rule.
func sdivWord(a, b *Word) *Word {
	if b.IsZero() {
		return NewWord()
	}
	return new(uint256.Int).SDiv(a, b)
}

// smodWord implements SMOD: the result takes the sign of the dividend, unlike
// Go's own division-remainder relationship for unsigned words.
func smodWord(a, b *Word) *Word {
	if b.IsZero() {
		return NewWord()
	}
	return new(uint256.Int).SMod(a, b)
}

func addModWord(a, b, n *Word) *Word {
	if n.IsZero() {
		return NewWord()
	}
	return new(uint256.Int).AddMod(a, b, n)
}

func mulModWord(a, b, n *Word) *Word {
	if n.IsZero() {
		return NewWord()
	}
	return new(uint256.Int).MulMod(a, b, n)
}

// expWord computes base**exponent mod 2**256, with the EVM's short-circuits:
// anything to the power zero is one, and zero to any positive power is zero.
func expWord(base, exponent *Word) *Word {
	if exponent.IsZero() {
		return WordFromUint64(1)
	}
	if base.IsZero() {
		return NewWord()
	}
	return new(uint256.Int).Exp(base, exponent)
}

// expByteLen returns the number of significant bytes in the exponent, used
// both for EXP's dynamic gas and for the VCM's exponent-byte-length counter.
// Callers must compute this from the popped exponent before calling
// expWord, since expWord's zero-exponent short-circuit discards it.
func expByteLen(exponent *Word) int {
	return (exponent.BitLen() + 7) / 8
}

// signExtendWord implements SIGNEXTEND(k, v): k selects the byte whose sign
// bit is propagated upward; k >= 31 is a no-op.
func signExtendWord(k, v *Word) *Word {
	if k.GtUint64(31) {
		return new(uint256.Int).Set(v)
	}
	byteIndex := int(k.Uint64())
	bit := byteIndex*8 + 7
	mask := new(uint256.Int).Lsh(WordFromUint64(1), uint(bit))
	mask.Sub(mask, WordFromUint64(1)) // mask of bits [0, bit)
	signBit := new(uint256.Int).And(v, new(uint256.Int).Lsh(WordFromUint64(1), uint(bit)))
	result := new(uint256.Int)
	if signBit.IsZero() {
		result.And(v, mask)
	} else {
		upperOnes := new(uint256.Int).Not(mask)
		result.Or(v, upperOnes)
	}
	return result
}

// shlWord implements SHL: shifting by 256 or more always yields zero.
func shlWord(shift, value *Word) *Word {
	if shift.GtUint64(255) {
		return NewWord()
	}
	return new(uint256.Int).Lsh(value, uint(shift.Uint64()))
}

// shrWord implements SHR: logical right shift, zero beyond 255.
func shrWord(shift, value *Word) *Word {
	if shift.GtUint64(255) {
		return NewWord()
	}
	return new(uint256.Int).Rsh(value, uint(shift.Uint64()))
}

// sarWord implements SAR: arithmetic right shift, sign-extending past 255.
func sarWord(shift, value *Word) *Word {
	if shift.GtUint64(255) {
		if value.Sign() < 0 {
			return new(uint256.Int).SetAllOne()
		}
		return NewWord()
	}
	return new(uint256.Int).SRsh(value, uint(shift.Uint64()))
}

// byteWord implements BYTE(pos, word): byte at pos counting from the most
// significant end; out-of-range positions read as zero.
func byteWord(pos, word *Word) *Word {
	if pos.GtUint64(31) {
		return NewWord()
	}
	idx := pos.Uint64()
	b := new(uint256.Int).Set(word).Byte(new(uint256.Int).SetUint64(idx))
	return WordFromUint64(b.Uint64())
}

// shortestBigEndian renders a storage value the way SSTORE persists it on
// the zkEVM state tree: zero maps to the empty byte string, any nonzero
// value maps to its minimal-length big-endian form (no fixed 32-byte
// left-padding). This is a deliberate zkEVM/Merkle-tree compatibility
// requirement, not an encoding shortcut.
func shortestBigEndian(v *Word) []byte {
	if v.IsZero() {
		return []byte{}
	}
	full := v.Bytes32()
	i := 0
	for i < 32 && full[i] == 0 {
		i++
	}
	out := make([]byte, 32-i)
	copy(out, full[i:])
	return out
}

// wordFromShortestBigEndian is the SLOAD-side inverse: a zero-length result
// from the EEI reads back as zero, any other slice reads back as the
// minimal-length big-endian encoding of a nonzero word.
func wordFromShortestBigEndian(raw []byte) *Word {
	w := NewWord()
	if len(raw) == 0 {
		return w
	}
	return w.SetBytes(raw)
}
