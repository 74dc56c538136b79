package vm

import (
	"sync"

	"github.com/holiman/uint256"
)

// maxStackDepth is the 1024-slot bound the EVM-family instruction set
// enforces.
const maxStackDepth = 1024

// Stack is the 256-bit-word operand stack each call frame owns. Handlers
// manipulate it directly via Pop/Push/Peek rather than through a
// value-returning API.
type Stack struct {
	data []uint256.Int
}

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]uint256.Int, 0, 16)}
	},
}

// NewStack draws a Stack from the shared pool. Callers must return it via
// releaseStack once the frame using it is torn down.
func NewStack() *Stack {
	return stackPool.Get().(*Stack)
}

// releaseStack resets and releases s back to the pool.
func releaseStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

func (s *Stack) Push(v *uint256.Int) {
	s.data = append(s.data, *v)
}

func (s *Stack) Pop() uint256.Int {
	n := len(s.data) - 1
	v := s.data[n]
	s.data = s.data[:n]
	return v
}

func (s *Stack) Len() int {
	return len(s.data)
}

// Peek returns the top of the stack without removing it.
func (s *Stack) Peek() *uint256.Int {
	return &s.data[len(s.data)-1]
}

// Back returns the n-th item from the top without removing it; Back(0) is
// equivalent to Peek.
func (s *Stack) Back(n int) *uint256.Int {
	return &s.data[len(s.data)-1-n]
}

// Swap exchanges the top item with the item n positions below it.
func (s *Stack) Swap(n int) {
	top := len(s.data) - 1
	s.data[top], s.data[top-n] = s.data[top-n], s.data[top]
}

// Dup pushes a copy of the item n positions below the top (Dup(1) duplicates
// the current top).
func (s *Stack) Dup(n int) {
	v := s.data[len(s.data)-n]
	s.data = append(s.data, v)
}

// requireOperands checks the stack carries enough items for an operation
// declaring minStack pops, and enough headroom for maxPush pushes.
func (s *Stack) requireOperands(minStack, maxPush int) error {
	if len(s.data) < minStack {
		return &ErrStackUnderflow{StackLen: len(s.data), Required: minStack}
	}
	if len(s.data)+maxPush-minStack > maxStackDepth {
		return &ErrStackOverflow{StackLen: len(s.data), Limit: maxStackDepth}
	}
	return nil
}

func (s *Stack) Data() []uint256.Int {
	return s.data
}
