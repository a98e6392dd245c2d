package sha256

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func hashHex(t *testing.T, data []byte) string {
	t.Helper()
	d := New()
	_, err := d.Write(data)
	require.NoError(t, err)
	out := make([]byte, Size)
	require.NoError(t, d.Finalize(out))
	return hex.EncodeToString(out)
}

func TestAbc(t *testing.T) {
	got := hashHex(t, []byte("abc"))
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)
}

func TestEmptyInput(t *testing.T) {
	got := hashHex(t, nil)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", got)
}

func TestStreamingSplit(t *testing.T) {
	input := bytes.Repeat([]byte{0xab}, BlockSize*3+17)
	want := hashHex(t, input)

	for _, split := range []int{0, 1, BlockSize - 1, BlockSize, BlockSize + 1, 2 * BlockSize, len(input)} {
		d := New()
		_, err := d.Write(input[:split])
		require.NoError(t, err)
		_, err = d.Write(input[split:])
		require.NoError(t, err)
		out := make([]byte, Size)
		require.NoError(t, d.Finalize(out))
		require.Equal(t, want, hex.EncodeToString(out), "split at %d", split)
	}
}

func TestResetRestoresState(t *testing.T) {
	d := New()
	input := bytes.Repeat([]byte{0x11}, 500)
	_, err := d.Write(input)
	require.NoError(t, err)
	first := d.Sum(nil)

	d.Reset()
	_, err = d.Write(input)
	require.NoError(t, err)
	second := d.Sum(nil)

	require.Equal(t, first, second)
}

func TestFinalizeThenWriteErrors(t *testing.T) {
	d := New()
	out := make([]byte, Size)
	require.NoError(t, d.Finalize(out))

	_, err := d.Write([]byte("more"))
	require.ErrorIs(t, err, ErrUsedAfterFinalize)
}

func TestShortBuffer(t *testing.T) {
	d := New()
	_, err := d.Write([]byte("abc"))
	require.NoError(t, err)
	err = d.Finalize(make([]byte, Size-1))
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestBackendsAgree(t *testing.T) {
	input := bytes.Repeat([]byte{0x5a}, BlockSize*5)
	var hGeneric, hShani [8]uint32
	hGeneric = iv
	hShani = iv
	for i := 0; i < len(input); i += BlockSize {
		compressGeneric(&hGeneric, input[i:i+BlockSize])
		compressSHANI(&hShani, input[i:i+BlockSize])
	}
	require.Equal(t, hGeneric, hShani)
}

func TestCompressBatch(t *testing.T) {
	block := bytes.Repeat([]byte{0x03}, BlockSize)
	states := make([]*[8]uint32, 4)
	blocks := make([][]byte, 4)
	for i := range states {
		h := iv
		states[i] = &h
		blocks[i] = block
	}
	CompressBatch(states, blocks)

	want := iv
	compressGeneric(&want, block)
	for i := range states {
		require.Equal(t, want, *states[i])
	}
}

func BenchmarkHash8Bytes(b *testing.B) {
	data := bytes.Repeat([]byte{0x5a}, 8)
	b.SetBytes(8)
	for i := 0; i < b.N; i++ {
		Sum256(data)
	}
}

func BenchmarkHash8KB(b *testing.B) {
	data := bytes.Repeat([]byte{0x5a}, 8192)
	b.SetBytes(8192)
	for i := 0; i < b.N; i++ {
		Sum256(data)
	}
}
