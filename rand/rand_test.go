package rand

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestISAACDeterministicFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5a}, 64)

	a := NewISAAC(seed)
	b := NewISAAC(seed)

	var outA, outB [128]byte
	a.GetBytes(outA[:])
	b.GetBytes(outB[:])

	require.Equal(t, outA, outB)
}

func TestISAACDifferentSeedsDiverge(t *testing.T) {
	a := NewISAAC(bytes.Repeat([]byte{0x01}, 32))
	b := NewISAAC(bytes.Repeat([]byte{0x02}, 32))

	var outA, outB [64]byte
	a.GetBytes(outA[:])
	b.GetBytes(outB[:])

	require.NotEqual(t, outA, outB)
}

func TestISAACRefillsAcrossBatchBoundary(t *testing.T) {
	isc := NewISAAC(bytes.Repeat([]byte{0x33}, 40))
	// iscSize words * 4 bytes is one full batch; drawing well past it
	// exercises the regenerate-on-exhaustion path in Next.
	out := make([]byte, iscSize*4*3+17)
	isc.GetBytes(out)

	zero := true
	for _, b := range out {
		if b != 0 {
			zero = false
			break
		}
	}
	require.False(t, zero, "expected non-zero output across multiple generate() batches")
}

func TestCSPRNGFillsNonZero(t *testing.T) {
	c := NewCSPRNG()
	buf := make([]byte, 64)
	require.NoError(t, c.Fill(buf))
	require.NotEqual(t, make([]byte, 64), buf)
}

func TestCSPRNGNextNWithinBound(t *testing.T) {
	c := NewCSPRNG()
	for i := 0; i < 200; i++ {
		v, err := c.NextN(37)
		require.NoError(t, err)
		require.LessOrEqual(t, v, uint64(37))
	}
}

func TestCSPRNGReseedCheckpoint(t *testing.T) {
	c := NewCSPRNG()
	c.Reset()
	require.Equal(t, uint64(1), c.reseeds)
	require.Equal(t, uint64(0), c.drawn)
}

func TestBytesNeeded(t *testing.T) {
	require.Equal(t, 1, bytesNeeded(200))
	require.Equal(t, 2, bytesNeeded(60000))
	require.Equal(t, 4, bytesNeeded(1<<31))
	require.Equal(t, 8, bytesNeeded(1<<60))
}

func TestFoldToMax(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff}
	require.LessOrEqual(t, foldToMax(data, 100), uint64(100))
}
