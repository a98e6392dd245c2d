package blake2bp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	input := bytes.Repeat([]byte{0x42}, 20000)

	d1, err := New(&Config{Size: 64})
	require.NoError(t, err)
	_, err = d1.Write(input)
	require.NoError(t, err)
	out1 := d1.Sum(nil)

	d2, err := New(&Config{Size: 64})
	require.NoError(t, err)
	_, err = d2.Write(input)
	require.NoError(t, err)
	out2 := d2.Sum(nil)

	require.Equal(t, out1, out2)
	require.Len(t, out1, 64)
}

func TestMultiStripeSplitsMatch(t *testing.T) {
	// A stripe is 4*128 = 512 bytes.
	input := bytes.Repeat([]byte{0x07}, 512*3+53)

	whole, err := New(&Config{Size: 64})
	require.NoError(t, err)
	_, err = whole.Write(input)
	require.NoError(t, err)
	want := whole.Sum(nil)

	for _, split := range []int{0, 1, 127, 128, 129, 511, 512, 513, 1400} {
		d, err := New(&Config{Size: 64})
		require.NoError(t, err)
		_, err = d.Write(input[:split])
		require.NoError(t, err)
		_, err = d.Write(input[split:])
		require.NoError(t, err)
		require.Equal(t, want, d.Sum(nil), "split at %d", split)
	}
}

func TestResetRestoresState(t *testing.T) {
	d, err := New(&Config{Size: 64})
	require.NoError(t, err)
	input := bytes.Repeat([]byte{0x09}, 2000)

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
	d, err := New(&Config{Size: 64})
	require.NoError(t, err)
	out := make([]byte, 64)
	require.NoError(t, d.Finalize(out))

	_, err = d.Write([]byte("more"))
	require.ErrorIs(t, err, ErrUsedAfterFinalize)
}
