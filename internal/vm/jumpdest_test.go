package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeBitmapSkipsPushData(t *testing.T) {
	// PUSH1 0x5b (looks like JUMPDEST), then an actual JUMPDEST.
	code := []byte{byte(PUSH1), byte(JUMPDEST), byte(JUMPDEST)}
	bits := codeBitmap(code)
	require.False(t, validJumpdest(code, bits, 1), "push-data byte must not be a valid jump target")
	require.True(t, validJumpdest(code, bits, 2))
}

func TestValidSubEntry(t *testing.T) {
	code := []byte{byte(BEGINSUB), byte(STOP)}
	bits := codeBitmap(code)
	require.True(t, validSubEntry(code, bits, 0))
	require.False(t, validSubEntry(code, bits, 1))
}

func TestValidJumpdestOutOfRange(t *testing.T) {
	code := []byte{byte(STOP)}
	bits := codeBitmap(code)
	require.False(t, validJumpdest(code, bits, 100))
}
