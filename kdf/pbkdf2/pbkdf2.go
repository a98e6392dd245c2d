// Package pbkdf2 implements the PBKDF2 key derivation function (CEX's
// PBKDF2.cpp): an HMAC-based PRF iterated over a salt and a big-endian
// block counter, XOR-folding each iteration's output, run once per
// hashLen-sized output block. It is digest-agnostic — any of this
// module's streaming digests (or the stdlib's) satisfies hash.Hash and
// can be plugged in as the underlying PRF.
package pbkdf2

import (
	"crypto/hmac"
	"encoding/binary"
	"hash"

	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned for a non-positive iteration count or
// key length.
var ErrInvalidParameter = errors.New("pbkdf2: invalid parameter")

// Key derives a keyLen-byte key from password and salt using iter rounds
// of HMAC built from h. This mirrors the shape of golang.org/x/crypto's
// pbkdf2.Key, so it drops in wherever that package's callers expect it.
func Key(password, salt []byte, iter, keyLen int, h func() hash.Hash) ([]byte, error) {
	if iter <= 0 || keyLen <= 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "iter and keyLen must be positive")
	}

	prf := hmac.New(h, password)
	hashLen := prf.Size()
	numBlocks := (keyLen + hashLen - 1) / hashLen

	out := make([]byte, 0, numBlocks*hashLen)
	var buf [4]byte
	u := make([]byte, hashLen)

	for block := 1; block <= numBlocks; block++ {
		prf.Reset()
		binary.BigEndian.PutUint32(buf[:], uint32(block))
		prf.Write(salt)
		prf.Write(buf[:])
		u = prf.Sum(u[:0])

		t := make([]byte, hashLen)
		copy(t, u)

		for n := 1; n < iter; n++ {
			prf.Reset()
			prf.Write(u)
			u = prf.Sum(u[:0])
			for i := range t {
				t[i] ^= u[i]
			}
		}
		out = append(out, t...)
	}

	return out[:keyLen], nil
}
