package blake2sp

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownAnswer(t *testing.T) {
	// BLAKE2sp of "abcdefgh" repeated 8 times.
	//
	// NOTE: the 64-byte input here is exactly one leaf block (leaf block
	// size 64B), so all of it goes to leaf 0 and leaves 1-3 finalize with
	// no input. This vector does not exercise the multi-stripe residual
	// path; TestMultiStripeSplitsMatch below does.
	input := bytes.Repeat([]byte("abcdefgh"), 8)

	d, err := New(&Config{Size: 32})
	require.NoError(t, err)
	_, err = d.Write(input)
	require.NoError(t, err)

	got := hex.EncodeToString(d.Sum(nil))
	require.Equal(t, "2c20de0cdb62ddc73cfb9c03db3f17b5e7c1b60d39a4d1cbc26bc5edbbf59b12", got)
}

func TestDeterministic(t *testing.T) {
	input := bytes.Repeat([]byte{0x42}, 10000)

	d1, err := New(&Config{Size: 32})
	require.NoError(t, err)
	_, err = d1.Write(input)
	require.NoError(t, err)
	out1 := d1.Sum(nil)

	d2, err := New(&Config{Size: 32})
	require.NoError(t, err)
	_, err = d2.Write(input)
	require.NoError(t, err)
	out2 := d2.Sum(nil)

	require.Equal(t, out1, out2)
}

func TestMultiStripeSplitsMatch(t *testing.T) {
	// Any split of the same input into multiple Write calls must produce
	// the same digest as a single Write, exercising the residual-buffer
	// accumulation across several stripes (a stripe is 4*64 = 256 bytes).
	input := bytes.Repeat([]byte{0x07}, 256*3+17)

	whole, err := New(&Config{Size: 32})
	require.NoError(t, err)
	_, err = whole.Write(input)
	require.NoError(t, err)
	want := whole.Sum(nil)

	for _, split := range []int{0, 1, 63, 64, 65, 255, 256, 257, 700} {
		d, err := New(&Config{Size: 32})
		require.NoError(t, err)
		_, err = d.Write(input[:split])
		require.NoError(t, err)
		_, err = d.Write(input[split:])
		require.NoError(t, err)
		require.Equal(t, want, d.Sum(nil), "split at %d", split)
	}
}

func TestResetRestoresState(t *testing.T) {
	d, err := New(&Config{Size: 32})
	require.NoError(t, err)
	input := bytes.Repeat([]byte{0x09}, 1000)

	_, err = d.Write(input)
	require.NoError(t, err)
	first := d.Sum(nil)

	d.Reset()
	_, err = d.Write(input)
	require.NoError(t, err)
	second := d.Sum(nil)

	require.Equal(t, first, second)
}

func TestFinalizeThenWriteErrors(t *testing.T) {
	d, err := New(&Config{Size: 32})
	require.NoError(t, err)
	out := make([]byte, 32)
	require.NoError(t, d.Finalize(out))

	_, err = d.Write([]byte("more"))
	require.ErrorIs(t, err, ErrUsedAfterFinalize)
}
