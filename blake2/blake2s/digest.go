package blake2s

import (
	"github.com/gtank/cryptocore/internal/bitutil"
	"github.com/pkg/errors"
)

// Config carries the caller-visible options for a new BLAKE2s digest:
// output length, an optional MAC key, an optional salt and
// personalization string, and optional tree parameters.
type Config struct {
	Size            int // digest output length in bytes, 1..32
	Key             []byte
	Salt            []byte
	Personalization []byte
	Tree            *TreeConfig // nil => sequential mode
}

// Digest is the internal state of a BLAKE2s hashing session: the
// eight-word chaining value H, the two-word byte counter T, the two
// finalization flag words F, and a one-block residue buffer. It is not
// safe for concurrent use.
type Digest struct {
	h      [8]uint32
	t0, t1 uint32
	f0, f1 uint32

	buf    [BlockBytes]byte
	offset int

	size      int
	params    parameterBlock
	keyBlock  []byte // nil if unkeyed; replayed on every Reset
	finalized bool
}

// New constructs a BLAKE2s digest from cfg. cfg may be nil, in which case
// the default 32-byte, unkeyed, sequential digest is returned.
func New(cfg *Config) (*Digest, error) {
	if cfg == nil {
		cfg = &Config{Size: MaxOutput}
	}
	if err := validateParams(cfg.Size, cfg.Key, cfg.Salt, cfg.Personalization); err != nil {
		return nil, err
	}

	tree := sequential
	if cfg.Tree != nil {
		tree = *cfg.Tree
	}

	params := parameterBlock{
		DigestSize:      byte(cfg.Size),
		Tree:            tree,
		Salt:            make([]byte, SaltLength),
		Personalization: make([]byte, SeparatorLength),
	}
	copy(params.Salt, cfg.Salt)
	copy(params.Personalization, cfg.Personalization)

	var keyBlock []byte
	if len(cfg.Key) > 0 {
		params.KeyLength = byte(len(cfg.Key))
		keyBlock = make([]byte, BlockBytes)
		copy(keyBlock, cfg.Key)
	}

	d := newFromParams(&params)
	d.size = int(cfg.Size)
	d.keyBlock = keyBlock

	if keyBlock != nil {
		// Keyed-MAC seeding: the key, padded to one block, is the first
		// block written; the caller continues normally afterward.
		if _, err := d.Write(keyBlock); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func newFromParams(p *parameterBlock) *Digest {
	paramBytes := p.Marshal()

	d := &Digest{params: *p}
	d.h[0] = IV0 ^ bitutil.LoadLE32(paramBytes[0:4])
	d.h[1] = IV1 ^ bitutil.LoadLE32(paramBytes[4:8])
	d.h[2] = IV2 ^ bitutil.LoadLE32(paramBytes[8:12])
	d.h[3] = IV3 ^ bitutil.LoadLE32(paramBytes[12:16])
	d.h[4] = IV4 ^ bitutil.LoadLE32(paramBytes[16:20])
	d.h[5] = IV5 ^ bitutil.LoadLE32(paramBytes[20:24])
	d.h[6] = IV6 ^ bitutil.LoadLE32(paramBytes[24:28])
	d.h[7] = IV7 ^ bitutil.LoadLE32(paramBytes[28:32])
	return d
}

// Write adds more data to the running hash. It implements io.Writer / the
// hash.Hash interface.
func (d *Digest) Write(input []byte) (n int, err error) {
	if d.finalized {
		return 0, ErrUsedAfterFinalize
	}

	bytesWritten := 0
	for bytesWritten < len(input) {
		freeBytes := BlockBytes - d.offset
		inputLeft := len(input) - bytesWritten

		if inputLeft <= freeBytes {
			// BLAKE2 always keeps the most recently completed block
			// buffered (never compressed eagerly) so that Finalize can
			// flag it as the last block; a block that exactly fills the
			// buffer is deferred here, not compressed.
			newOffset := d.offset + inputLeft
			copy(d.buf[d.offset:newOffset], input[bytesWritten:])
			d.offset = newOffset
			return bytesWritten + inputLeft, nil
		}

		copy(d.buf[d.offset:], input[bytesWritten:bytesWritten+freeBytes])
		d.advanceCounter(BlockBytes)
		d.compress(d.buf[:])

		bytesWritten += freeBytes
		d.offset = 0
	}

	return bytesWritten, nil
}

func (d *Digest) advanceCounter(n uint32) {
	d.t0 += n
	if d.t0 < n {
		d.t1++
	}
}

func (d *Digest) compress(block []byte) {
	var m [16]uint32
	bitutil.LoadLE32Block(&m, block)

	v := [16]uint32{
		d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7],
		IV0, IV1, IV2, IV3,
		IV4 ^ d.t0, IV5 ^ d.t1, IV6 ^ d.f0, IV7 ^ d.f1,
	}

	for round := 0; round < RoundCount; round++ {
		s := &SIGMA[round]
		v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12], m[s[0]], m[s[1]])
		v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13], m[s[2]], m[s[3]])
		v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14], m[s[4]], m[s[5]])
		v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15], m[s[6]], m[s[7]])

		v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15], m[s[8]], m[s[9]])
		v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12], m[s[10]], m[s[11]])
		v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13], m[s[12]], m[s[13]])
		v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14], m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		d.h[i] = d.h[i] ^ v[i] ^ v[i+8]
	}
}

// g is the BLAKE2s mixing primitive, lifted out of the caller's table
// lookups so it has a better chance of inlining.
func g(a, b, c, d, m0, m1 uint32) (uint32, uint32, uint32, uint32) {
	a = a + b + m0
	d = bitutil.RotR32(d^a, 16)
	c = c + d
	b = bitutil.RotR32(b^c, 12)
	a = a + b + m1
	d = bitutil.RotR32(d^a, 8)
	c = c + d
	b = bitutil.RotR32(b^c, 7)
	return a, b, c, d
}

// Finalize destructively consumes the digest: it pads and compresses the
// final block, sets the last-block (and, in tree mode, last-node) flag, and
// writes Size() bytes to out. After Finalize, Write returns
// ErrUsedAfterFinalize until Reset is called. Unlike Sum, this mutates H, T,
// F and the buffer.
func (d *Digest) Finalize(out []byte) error {
	if d.finalized {
		return ErrUsedAfterFinalize
	}
	if len(out) < d.size {
		return ErrShortBuffer
	}

	for i := d.offset; i < BlockBytes; i++ {
		d.buf[i] = 0
	}
	d.advanceCounter(uint32(d.offset))
	d.f0 = 0xFFFFFFFF
	if d.params.Tree.IsLastNode {
		d.f1 = 0xFFFFFFFF
	}
	d.compress(d.buf[:])
	d.finalized = true

	var full [MaxOutput]byte
	for i := 0; i < 8; i++ {
		bitutil.StoreLE32(full[i*4:], d.h[i])
	}
	copy(out, full[:d.size])
	for i := range d.buf {
		d.buf[i] = 0
	}
	return nil
}

// Sum appends the digest of the data written so far to b and returns the
// resulting slice. Per the hash.Hash contract it does not alter the
// underlying state: a copy is finalized instead, so Write may continue
// (and Sum may be called again) afterward.
func (d *Digest) Sum(b []byte) []byte {
	cpy := *d
	out := make([]byte, d.size)
	if err := cpy.Finalize(out); err != nil {
		return b
	}
	return append(b, out...)
}

// Reset restores the digest to the state it had immediately after New,
// replaying the original key block if this is a keyed digest. It is the
// only way to reuse a digest after Finalize.
func (d *Digest) Reset() {
	fresh := newFromParams(&d.params)
	fresh.size = d.size
	fresh.keyBlock = d.keyBlock
	*d = *fresh
	if d.keyBlock != nil {
		_, _ = d.Write(d.keyBlock)
	}
}

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the hash's underlying block size in bytes.
func (d *Digest) BlockSize() int { return BlockBytes }

// Sum256 is a one-shot convenience that hashes data with the default
// 32-byte, unkeyed configuration.
func Sum256(data []byte) ([32]byte, error) {
	d, err := New(&Config{Size: MaxOutput})
	if err != nil {
		return [32]byte{}, err
	}
	if _, err := d.Write(data); err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	if err := d.Finalize(out[:]); err != nil {
		return [32]byte{}, errors.Wrap(err, "finalize")
	}
	return out, nil
}
