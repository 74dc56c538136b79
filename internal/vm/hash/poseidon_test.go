package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeHashDeterministic(t *testing.T) {
	code := []byte{0x60, 0x01, 0x60, 0x02, 0x01, 0x00}
	h1, err := CodeHash(code)
	require.NoError(t, err)
	h2, err := CodeHash(code)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestCodeHashDiffersOnInput(t *testing.T) {
	a, err := CodeHash([]byte{0x00})
	require.NoError(t, err)
	b, err := CodeHash([]byte{0x01})
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestCodeHashEmptyCode(t *testing.T) {
	_, err := CodeHash(nil)
	require.NoError(t, err)
}

func TestCodeHashHandlesRowAlignedInput(t *testing.T) {
	code := make([]byte, 56) // exactly one chunk row, exercises the padLen == rowSize path
	_, err := CodeHash(code)
	require.NoError(t, err)
}
