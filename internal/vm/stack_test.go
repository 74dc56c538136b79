package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	defer releaseStack(s)

	s.Push(WordFromUint64(1))
	s.Push(WordFromUint64(2))
	require.Equal(t, 2, s.Len())

	top := s.Pop()
	require.Equal(t, uint64(2), top.Uint64())
	require.Equal(t, 1, s.Len())
}

func TestStackDupSwap(t *testing.T) {
	s := NewStack()
	defer releaseStack(s)

	s.Push(WordFromUint64(1))
	s.Push(WordFromUint64(2))
	s.Dup(1)
	require.Equal(t, uint64(2), s.Peek().Uint64())
	require.Equal(t, 3, s.Len())

	s.Swap(2)
	require.Equal(t, uint64(1), s.Peek().Uint64())
}

func TestStackUnderflow(t *testing.T) {
	s := NewStack()
	defer releaseStack(s)
	err := s.requireOperands(1, 0)
	require.Error(t, err)
	var underflow *ErrStackUnderflow
	require.ErrorAs(t, err, &underflow)
}

func TestStackOverflow(t *testing.T) {
	s := NewStack()
	defer releaseStack(s)
	for i := 0; i < maxStackDepth; i++ {
		s.Push(WordFromUint64(uint64(i)))
	}
	err := s.requireOperands(0, 1)
	require.Error(t, err)
	var overflow *ErrStackOverflow
	require.ErrorAs(t, err, &overflow)
}

func TestReturnStackBound(t *testing.T) {
	rs := NewReturnStack()
	for i := 0; i < maxReturnStackDepth; i++ {
		require.NoError(t, rs.Push(uint32(i)))
	}
	require.Error(t, rs.Push(1))
}

func TestReturnStackUnderflow(t *testing.T) {
	rs := NewReturnStack()
	_, err := rs.Pop()
	require.Error(t, err)
}
