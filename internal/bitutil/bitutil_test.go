package bitutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndianRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		w32 := r.Uint32()
		var buf [4]byte
		StoreLE32(buf[:], w32)
		require.Equal(t, w32, LoadLE32(buf[:]))
		StoreBE32(buf[:], w32)
		require.Equal(t, w32, LoadBE32(buf[:]))

		w64 := r.Uint64()
		var buf8 [8]byte
		StoreLE64(buf8[:], w64)
		require.Equal(t, w64, LoadLE64(buf8[:]))
		StoreBE64(buf8[:], w64)
		require.Equal(t, w64, LoadBE64(buf8[:]))
	}
}

func TestCTSelect(t *testing.T) {
	a, b := uint32(0xDEADBEEF), uint32(0x12345678)
	require.Equal(t, a, CTSelect32(ExpandMask32(1), a, b))
	require.Equal(t, b, CTSelect32(ExpandMask32(0), a, b))

	a64, b64 := uint64(0xDEADBEEFCAFEBABE), uint64(0x1234567890ABCDEF)
	require.Equal(t, a64, CTSelect64(ExpandMask64(1), a64, b64))
	require.Equal(t, b64, CTSelect64(ExpandMask64(0), a64, b64))
}

func TestCTEquality(t *testing.T) {
	require.True(t, CTEq32(5, 5))
	require.False(t, CTEq32(5, 6))
	require.True(t, CTIsZero32(0))
	require.False(t, CTIsZero32(1))
}
