package blake2s

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// Source: BLAKE2 Section 2.8
	SeqNoKeySaltOrPersonal = "2020010100000000000000000000000000000000000000000000000000000000"
)

func TestParameterBlockInit(t *testing.T) {
	params := &parameterBlock{
		Tree:            TreeConfig{Fanout: 1, MaxDepth: 1},
		KeyLength:       32,
		DigestSize:      32,
		Salt:            make([]byte, SaltLength),
		Personalization: make([]byte, SeparatorLength),
	}

	packedBytes := params.Marshal()
	expectedBytes, _ := hex.DecodeString(SeqNoKeySaltOrPersonal)
	require.Equal(t, expectedBytes, packedBytes)

	digest := newFromParams(params)
	require.Equal(t, IV0^uint32(0x01012020), digest.h[0])
}

func TestNewDigest(t *testing.T) {
	_, err := New(&Config{Size: 32})
	require.NoError(t, err)
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

func TestEmptyInput(t *testing.T) {
	got := hashHex(t, nil, nil, nil, "", 32)
	require.Equal(t, "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9", got)
}

func TestFullInputBlock(t *testing.T) {
	input := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f"
	got := hashHex(t, nil, nil, nil, input, 32)
	require.Equal(t, "56f34e8b96557e90c1f24b52d0c89d51086acf1b00f634cf1dde9233b8eaaa3e", got)
}

func TestMultiBlockWrite(t *testing.T) {
	input := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f40"
	got := hashHex(t, nil, nil, nil, input, 32)
	require.Equal(t, "1b53ee94aaf34e4b159d48de352c7f0661d0a40edff95a0b1639b4090e974472", got)
}

func TestKeyedWrite(t *testing.T) {
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	got := hashHex(t, key, nil, nil, "00", 32)
	require.Equal(t, "40d15fee7c328830166ac3f918650f807e7e01e177258cdc0a39b11f598066f1", got)
}

func TestStreamingSplit(t *testing.T) {
	input, _ := hex.DecodeString("00010203")
	want, _ := hex.DecodeString("0cc70e00348b86ba2944d0c32038b25c55584f90df2304f55fa332af5fb01e20")

	// Verify every split point produces the same digest as one-shot.
	for split := 0; split <= len(input); split++ {
		d, err := New(&Config{Size: 32})
		require.NoError(t, err)
		_, err = d.Write(input[:split])
		require.NoError(t, err)
		_, err = d.Write(input[split:])
		require.NoError(t, err)
		require.Equal(t, want, d.Sum(nil), "split at %d", split)
	}
}

var extrasVectors = []struct {
	input, key, salt, personality, output string
}{
	{input: "", key: "", salt: "", personality: "",
		output: "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9"},
	{input: "", key: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", salt: "", personality: "",
		output: "48a8997da407876b3d79c0d92325ad3b89cbb754d86ab71aee047ad345fd2c49"},
	{input: "", key: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", salt: "", personality: "personal",
		output: "25a4ee63b594aed3f88a971e1877ef7099534f9097291f88fb86c79b5e70d022"},
	{input: "", key: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", salt: "", personality: "pers0nal",
		output: "4b25933bf9a95a67d95d104a86b2d31753a1030e22bb55cc85a523d1650484b7"},
}

func TestPersona(t *testing.T) {
	for _, test := range extrasVectors {
		key, _ := hex.DecodeString(test.key)
		salt, _ := hex.DecodeString(test.salt)
		got := hashHex(t, key, salt, []byte(test.personality), test.input, 32)
		require.Equal(t, test.output, got)
	}
}

func TestResetRestoresState(t *testing.T) {
	d, err := New(&Config{Size: 32})
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
	d, err := New(&Config{Size: 32})
	require.NoError(t, err)
	out := make([]byte, 32)
	require.NoError(t, d.Finalize(out))

	_, err = d.Write([]byte("more"))
	require.ErrorIs(t, err, ErrUsedAfterFinalize)
}

func TestShortBuffer(t *testing.T) {
	d, err := New(&Config{Size: 32})
	require.NoError(t, err)
	err = d.Finalize(make([]byte, 4))
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestInvalidParameters(t *testing.T) {
	_, err := New(&Config{Size: 0})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = New(&Config{Size: MaxOutput + 1})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = New(&Config{Size: 32, Key: make([]byte, KeyLength+1)})
	require.ErrorIs(t, err, ErrInvalidParameter)
}

var emptyBuf = make([]byte, 8192)

func benchmarkHashSize(b *testing.B, size int) {
	b.SetBytes(int64(size))
	sum := make([]byte, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		digest, _ := New(&Config{Size: 32})
		digest.Write(emptyBuf[:size])
		digest.Sum(sum[:0])
	}
}

func BenchmarkHash8Bytes(b *testing.B) { benchmarkHashSize(b, 8) }
func BenchmarkHash1K(b *testing.B)     { benchmarkHashSize(b, 1024) }
func BenchmarkHash8K(b *testing.B)     { benchmarkHashSize(b, 8192) }
