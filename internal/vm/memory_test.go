package vm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestMemoryResizeAndSet(t *testing.T) {
	m := NewMemory()
	m.Resize(64)
	require.Equal(t, 64, m.Len())

	m.Set(0, 4, []byte{1, 2, 3, 4})
	require.Equal(t, []byte{1, 2, 3, 4}, m.GetCopy(0, 4))
}

func TestMemorySet32(t *testing.T) {
	m := NewMemory()
	m.Resize(32)
	v := uint256.NewInt(0xdeadbeef)
	m.Set32(0, v)
	got := new(uint256.Int).SetBytes(m.GetCopy(0, 32))
	require.True(t, got.Eq(v))
}

func TestMemoryWordCount(t *testing.T) {
	m := NewMemory()
	m.Resize(33)
	require.Equal(t, uint64(2), m.WordCount())
}

func TestMemoryExpansionCostIncremental(t *testing.T) {
	m := NewMemory()
	cost1, err := memoryExpansionCost(m, 32)
	require.NoError(t, err)
	require.Greater(t, cost1, uint64(0))

	cost2, err := memoryExpansionCost(m, 32)
	require.NoError(t, err)
	require.Equal(t, uint64(0), cost2, "no further growth, no further charge")
}
