package blake2b

import (
	"github.com/gtank/cryptocore/internal/bitutil"
	"github.com/pkg/errors"
)

// Config carries the caller-visible options for a new BLAKE2b digest:
// output length, an optional MAC key, an optional salt and
// personalization string, and optional tree parameters.
type Config struct {
	Size            int // digest output length in bytes, 1..64
	Key             []byte
	Salt            []byte
	Personalization []byte
	Tree            *TreeConfig // nil => sequential mode
}

// Digest represents the internal state of the BLAKE2b algorithm: the
// eight-word chaining value H, the two-word byte counter T, the two
// finalization flag words F, and a one-block residue buffer. Not safe for
// concurrent use.
type Digest struct {
	h      [8]uint64
	t0, t1 uint64
	f0, f1 uint64

	buf    [BlockSize]byte
	offset int

	size      int
	params    parameterBlock
	keyBlock  []byte
	finalized bool
}

// New constructs a BLAKE2b digest from cfg. cfg may be nil, in which case
// the default 64-byte, unkeyed, sequential digest is returned.
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
		keyBlock = make([]byte, BlockSize)
		copy(keyBlock, cfg.Key)
	}

	d := newFromParams(&params)
	d.size = cfg.Size
	d.keyBlock = keyBlock

	if keyBlock != nil {
		if _, err := d.Write(keyBlock); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func newFromParams(p *parameterBlock) *Digest {
	paramBytes := p.Marshal()

	d := &Digest{params: *p}
	d.h[0] = IV0 ^ bitutil.LoadLE64(paramBytes[0:8])
	d.h[1] = IV1 ^ bitutil.LoadLE64(paramBytes[8:16])
	d.h[2] = IV2 ^ bitutil.LoadLE64(paramBytes[16:24])
	d.h[3] = IV3 ^ bitutil.LoadLE64(paramBytes[24:32])
	d.h[4] = IV4 ^ bitutil.LoadLE64(paramBytes[32:40])
	d.h[5] = IV5 ^ bitutil.LoadLE64(paramBytes[40:48])
	d.h[6] = IV6 ^ bitutil.LoadLE64(paramBytes[48:56])
	d.h[7] = IV7 ^ bitutil.LoadLE64(paramBytes[56:64])
	return d
}

// Write adds more data to the running hash.
func (d *Digest) Write(input []byte) (n int, err error) {
	if d.finalized {
		return 0, ErrUsedAfterFinalize
	}

	bytesWritten := 0
	for bytesWritten < len(input) {
		freeBytes := BlockSize - d.offset
		inputLeft := len(input) - bytesWritten

		if inputLeft <= freeBytes {
			// The most recently completed block is always kept buffered,
			// never compressed eagerly, so Finalize can flag it last.
			newOffset := d.offset + inputLeft
			copy(d.buf[d.offset:newOffset], input[bytesWritten:])
			d.offset = newOffset
			return bytesWritten + inputLeft, nil
		}

		copy(d.buf[d.offset:], input[bytesWritten:bytesWritten+freeBytes])
		d.advanceCounter(BlockSize)
		d.compress(d.buf[:])

		bytesWritten += freeBytes
		d.offset = 0
	}

	return bytesWritten, nil
}

func (d *Digest) advanceCounter(n uint64) {
	d.t0 += n
	if d.t0 < n {
		d.t1++
	}
}

// compress is the BLAKE2b compression function. Each round's eight G calls
// are written out in full, with the message words for each call selected
// through that round's SIGMA row.
func (d *Digest) compress(block []byte) {
	v0, v1, v2, v3 := d.h[0], d.h[1], d.h[2], d.h[3]
	v4, v5, v6, v7 := d.h[4], d.h[5], d.h[6], d.h[7]
	v8, v9, v10, v11 := IV0, IV1, IV2, IV3
	v12 := IV4 ^ d.t0
	v13 := IV5 ^ d.t1
	v14 := IV6 ^ d.f0
	v15 := IV7 ^ d.f1

	var m [16]uint64
	bitutil.LoadLE64Block(&m, block)

	for round := 0; round < RoundCount; round++ {
		s := &SIGMA[round]
		v0, v4, v8, v12 = g(v0+v4+m[s[0]], v4, v8, v12, m[s[1]])
		v1, v5, v9, v13 = g(v1+v5+m[s[2]], v5, v9, v13, m[s[3]])
		v2, v6, v10, v14 = g(v2+v6+m[s[4]], v6, v10, v14, m[s[5]])
		v3, v7, v11, v15 = g(v3+v7+m[s[6]], v7, v11, v15, m[s[7]])

		v0, v5, v10, v15 = g(v0+v5+m[s[8]], v5, v10, v15, m[s[9]])
		v1, v6, v11, v12 = g(v1+v6+m[s[10]], v6, v11, v12, m[s[11]])
		v2, v7, v8, v13 = g(v2+v7+m[s[12]], v7, v8, v13, m[s[13]])
		v3, v4, v9, v14 = g(v3+v4+m[s[14]], v4, v9, v14, m[s[15]])
	}

	d.h[0] = d.h[0] ^ v0 ^ v8
	d.h[1] = d.h[1] ^ v1 ^ v9
	d.h[2] = d.h[2] ^ v2 ^ v10
	d.h[3] = d.h[3] ^ v3 ^ v11
	d.h[4] = d.h[4] ^ v4 ^ v12
	d.h[5] = d.h[5] ^ v5 ^ v13
	d.h[6] = d.h[6] ^ v6 ^ v14
	d.h[7] = d.h[7] ^ v7 ^ v15
}

// g is the internal BLAKE2b round function. The table lookups and the
// initial triple addition are lifted into the caller so this function has a
// better chance of inlining.
func g(a, b, c, d uint64, m1 uint64) (uint64, uint64, uint64, uint64) {
	d = bitutil.RotR64(d^a, 32)
	c = c + d
	b = bitutil.RotR64(b^c, 24)
	a = a + b + m1
	d = bitutil.RotR64(d^a, 16)
	c = c + d
	b = bitutil.RotR64(b^c, 63)

	return a, b, c, d
}

// Finalize destructively consumes the digest: it pads and compresses the
// final block, sets the last-block (and, in tree mode, last-node) flag, and
// writes Size() bytes to out. After Finalize, Write returns
// ErrUsedAfterFinalize until Reset is called.
func (d *Digest) Finalize(out []byte) error {
	if d.finalized {
		return ErrUsedAfterFinalize
	}
	if len(out) < d.size {
		return ErrShortBuffer
	}

	for i := d.offset; i < BlockSize; i++ {
		d.buf[i] = 0
	}
	d.advanceCounter(uint64(d.offset))
	d.f0 = 0xFFFFFFFFFFFFFFFF
	if d.params.Tree.IsLastNode {
		d.f1 = 0xFFFFFFFFFFFFFFFF
	}
	d.compress(d.buf[:])
	d.finalized = true

	var full [MaxOutput]byte
	for i := 0; i < 8; i++ {
		bitutil.StoreLE64(full[i*8:], d.h[i])
	}
	copy(out, full[:d.size])
	for i := range d.buf {
		d.buf[i] = 0
	}
	return nil
}

// Sum appends the current hash to b and returns the resulting slice. Per
// the hash.Hash contract, it does not change the underlying state: a copy
// is finalized instead.
func (d *Digest) Sum(b []byte) []byte {
	cpy := *d
	out := make([]byte, d.size)
	if err := cpy.Finalize(out); err != nil {
		return b
	}
	return append(b, out...)
}

// Reset restores the digest to the state it had immediately after New,
// replaying the original key block if this is a keyed digest.
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
func (d *Digest) BlockSize() int { return BlockSize }

// Sum512 is a one-shot convenience that hashes data with the default
// 64-byte, unkeyed configuration.
func Sum512(data []byte) ([64]byte, error) {
	d, err := New(&Config{Size: MaxOutput})
	if err != nil {
		return [64]byte{}, err
	}
	if _, err := d.Write(data); err != nil {
		return [64]byte{}, err
	}
	var out [64]byte
	if err := d.Finalize(out[:]); err != nil {
		return [64]byte{}, errors.Wrap(err, "finalize")
	}
	return out, nil
}
