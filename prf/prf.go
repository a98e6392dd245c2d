// Package prf implements digest-as-PRF output expansion, grounded on
// CEX's Blake2Sp256::Generate: DRBG-style counter-mode output expansion
// built on top of any of this module's streaming digests. Keyed-MAC
// seeding itself lives in blake2s/blake2b's own Config (the key, padded
// to one block, is the first block written); this package covers the
// second pattern, expanding arbitrary-length output from a keyed digest.
package prf

import (
	"github.com/gtank/cryptocore/internal/bitutil"
	"github.com/pkg/errors"
)

// Hash is the subset of the streaming-digest contract the generator
// needs: one full block's worth of input per round, a non-destructive
// Sum, and a Reset back to the seeded (keyed) state.
type Hash interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
	Size() int
	BlockSize() int
}

// ErrInvalidParameter is returned when the underlying hash's block size
// cannot hold a counter plus one full digest.
var ErrInvalidParameter = errors.New("prf: invalid parameter")

// Generator expands a keyed digest into an arbitrary-length output stream
// by repeatedly hashing a block built from an incrementing counter and
// the previous round's digest. The block layout matches CEX's
// Blake2Sp256::Increment: a 4-byte little-endian counter at offset 0,
// zero-padded out to half the block size, followed by the previous
// round's digest in the upper half.
type Generator struct {
	h    Hash
	half int
	ctr  []byte // block-sized scratch buffer, reused every round
}

// NewGenerator wraps an already-keyed Hash (e.g. a blake2s.Digest created
// with a Config.Key) as a DRBG-style expander. h must not be reused by the
// caller afterward; Generate calls h.Reset() between rounds.
func NewGenerator(h Hash) (*Generator, error) {
	half := h.BlockSize() / 2
	if half < 4 || h.Size() > half {
		return nil, errors.Wrap(ErrInvalidParameter, "block size too small for counter + digest")
	}
	return &Generator{h: h, half: half, ctr: make([]byte, h.BlockSize())}, nil
}

// Generate fills out with pseudorandom bytes, truncating the final round
// if len(out) isn't a multiple of the digest size.
func (g *Generator) Generate(out []byte) error {
	produced := 0
	for produced < len(out) {
		g.h.Reset()
		if _, err := g.h.Write(g.ctr); err != nil {
			return errors.Wrap(err, "write counter block")
		}
		digest := g.h.Sum(nil)

		copy(g.ctr[g.half:g.half+len(digest)], digest)
		bitutil.StoreLE32(g.ctr[0:4], bitutil.LoadLE32(g.ctr[0:4])+1)

		n := copy(out[produced:], digest)
		produced += n
	}
	return nil
}
