package blake2b

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// Source: BLAKE2 Section 2.8
	DemoParamBytes = "402001010000000000000000000000000000000000000000000000000000000055555555555555555555555555555555eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"
)

func TestParameterBlockInit(t *testing.T) {
	params := &parameterBlock{
		Tree:       TreeConfig{Fanout: 1, MaxDepth: 1},
		KeyLength:  32,
		DigestSize: 64,
		Salt:       bytes.Repeat([]byte{0x55}, SaltLength),
		Personalization: bytes.Repeat([]byte{0xee}, SeparatorLength),
	}

	packedBytes := params.Marshal()
	expectedBytes, _ := hex.DecodeString(DemoParamBytes)
	require.Equal(t, expectedBytes, packedBytes)

	digest := newFromParams(params)
	require.Equal(t, IV0^uint64(0x01012040), digest.h[0])
}

func hashHex(t *testing.T, key, salt, personal []byte, input string, size int) string {
	t.Helper()
	d, err := New(&Config{Size: size, Key: key, Salt: salt, Personalization: personal})
	require.NoError(t, err)
	decoded, err := hex.DecodeString(input)
	require.NoError(t, err)
	_, err = d.Write(decoded)
	require.NoError(t, err)
	return hex.EncodeToString(d.Sum(nil))
}

func TestAbc(t *testing.T) {
	got := hashHex(t, nil, nil, nil, "616263", 64)
	require.Equal(t,
		"ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d"+
			"17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		got)
}

func TestKeyedEmptyInput(t *testing.T) {
	// RFC 7693 Appendix E.
	key := make([]byte, KeyLength)
	for i := range key {
		key[i] = byte(i)
	}
	got := hashHex(t, key, nil, nil, "", 64)
	require.Equal(t, "10ebb67700b1868efb4417987acf4690", got[:32])
}

func TestStreamingSplit(t *testing.T) {
	input := bytes.Repeat([]byte{0x61}, 300)
	d0, err := New(&Config{Size: 64})
	require.NoError(t, err)
	_, err = d0.Write(input)
	require.NoError(t, err)
	want := d0.Sum(nil)

	for _, split := range []int{0, 1, BlockSize - 1, BlockSize, BlockSize + 1, 2 * BlockSize} {
		if split > len(input) {
			continue
		}
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
	input := []byte("hello, world")

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

func TestInvalidParameters(t *testing.T) {
	_, err := New(&Config{Size: 0})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = New(&Config{Size: MaxOutput + 1})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = New(&Config{Size: 64, Key: make([]byte, KeyLength+1)})
	require.ErrorIs(t, err, ErrInvalidParameter)
}

var emptyBuf = make([]byte, 16384)

func benchmarkHashSize(b *testing.B, size int) {
	b.SetBytes(int64(size))
	sum := make([]byte, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		digest, _ := New(&Config{Size: 64})
		digest.Write(emptyBuf[:size])
		digest.Sum(sum[:0])
	}
}

func BenchmarkHash8Bytes(b *testing.B) { benchmarkHashSize(b, 8) }
func BenchmarkHash1K(b *testing.B)     { benchmarkHashSize(b, 1024) }
func BenchmarkHash8K(b *testing.B)     { benchmarkHashSize(b, 8192) }
