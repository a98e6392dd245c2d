package pbkdf2

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/gtank/cryptocore/sha2/sha256"
	"github.com/stretchr/testify/require"
)

func newSHA256() hash.Hash { return sha256.New() }

func TestKnownVectors(t *testing.T) {
	cases := []struct {
		password, salt string
		iter, keyLen   int
		want           string
	}{
		{"password", "salt", 1, 32, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"},
		{"password", "salt", 2, 32, "ae4d0c95af6b46d32d0adff928f06dd02a303f8ef3c251dfd6e2d85a95474c43"},
		{"password", "salt", 4096, 32, "c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a"},
	}

	for _, c := range cases {
		got, err := Key([]byte(c.password), []byte(c.salt), c.iter, c.keyLen, newSHA256)
		require.NoError(t, err)
		require.Equal(t, c.want, hex.EncodeToString(got))
	}
}

func TestLongPasswordAndSalt(t *testing.T) {
	got, err := Key(
		[]byte("passwordPASSWORDpassword"),
		[]byte("saltSALTsaltSALTsaltSALTsaltSALTsalt"),
		4096, 40, newSHA256)
	require.NoError(t, err)
	require.Equal(t, "348c89dbcbd32b2f32d814b8116e84cf2b17347ebc1800181c4e2a1fb8dd53e1c635518c7dac47e9", hex.EncodeToString(got))
}

func TestInvalidParameters(t *testing.T) {
	_, err := Key([]byte("p"), []byte("s"), 0, 32, newSHA256)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Key([]byte("p"), []byte("s"), 1, 0, newSHA256)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDeterministic(t *testing.T) {
	k1, err := Key([]byte("p"), []byte("s"), 10, 32, newSHA256)
	require.NoError(t, err)
	k2, err := Key([]byte("p"), []byte("s"), 10, 32, newSHA256)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
}
