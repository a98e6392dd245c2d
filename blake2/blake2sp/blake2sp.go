// Package blake2sp implements BLAKE2sp, the 4-way parallel tree-mode
// instantiation of BLAKE2s: fan-out 4, max depth 2, leaf i consuming
// blocks at stream positions i, i+4, i+8, ..., reduced through one root
// node over the concatenated leaf digests.
package blake2sp

import (
	"github.com/gtank/cryptocore/blake2/blake2s"
	"github.com/pkg/errors"
)

// LeafCount is BLAKE2sp's fixed fan-out (P=4).
const LeafCount = 4

// Sentinel errors returned by this package.
var (
	ErrInvalidParameter  = errors.New("blake2sp: invalid parameter")
	ErrUsedAfterFinalize = errors.New("blake2sp: update after finalize without reset")
)

// Config carries the caller-visible options for a new BLAKE2sp digest.
type Config struct {
	Size            int // digest output length in bytes, 1..32
	Key             []byte
	Salt            []byte
	Personalization []byte
}

// Digest is a 4-way parallel BLAKE2s tree hash. It is not safe for
// concurrent use; the leaves are logically independent but this
// implementation drives them sequentially from a single accumulation
// buffer rather than handing each leaf its stripe to a separate worker.
type Digest struct {
	leaves [LeafCount]*blake2s.Digest
	resid  []byte // 0..LeafCount*blake2s.BlockBytes-1 bytes awaiting a full stripe

	size      int
	cfg       Config
	finalized bool
}

// New constructs a BLAKE2sp digest from cfg. cfg may be nil, in which case
// the default 32-byte, unkeyed digest is returned.
func New(cfg *Config) (*Digest, error) {
	if cfg == nil {
		cfg = &Config{Size: blake2s.MaxOutput}
	}
	if cfg.Size <= 0 || cfg.Size > blake2s.MaxOutput {
		return nil, errors.Wrap(ErrInvalidParameter, "digest size out of range")
	}

	d := &Digest{size: cfg.Size, cfg: *cfg}
	if err := d.initLeaves(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Digest) initLeaves() error {
	for i := 0; i < LeafCount; i++ {
		leaf, err := blake2s.New(&blake2s.Config{
			Size:            d.size,
			Key:             d.cfg.Key,
			Salt:            d.cfg.Salt,
			Personalization: d.cfg.Personalization,
			Tree: &blake2s.TreeConfig{
				Fanout:      LeafCount,
				MaxDepth:    2,
				NodeOffset:  uint32(i),
				NodeDepth:   0,
				InnerLength: byte(d.size),
				IsLastNode:  i == LeafCount-1,
			},
		})
		if err != nil {
			return errors.Wrap(err, "init leaf")
		}
		d.leaves[i] = leaf
	}
	d.resid = d.resid[:0]
	return nil
}

// Write adds more data to the running hash, fanning complete stripes of
// LeafCount*BlockBytes bytes across the four leaves as they accumulate.
func (d *Digest) Write(p []byte) (int, error) {
	if d.finalized {
		return 0, ErrUsedAfterFinalize
	}
	n := len(p)
	d.resid = append(d.resid, p...)

	stripe := LeafCount * blake2s.BlockBytes
	for len(d.resid) >= stripe {
		block := d.resid[:stripe]
		for i := 0; i < LeafCount; i++ {
			if _, err := d.leaves[i].Write(block[i*blake2s.BlockBytes : (i+1)*blake2s.BlockBytes]); err != nil {
				return 0, err
			}
		}
		d.resid = d.resid[stripe:]
	}
	// Compact the residual slice so repeated stripe consumption doesn't
	// retain the whole history via re-slicing.
	if len(d.resid) > 0 {
		rest := make([]byte, len(d.resid))
		copy(rest, d.resid)
		d.resid = rest
	} else {
		d.resid = nil
	}

	return n, nil
}

// Finalize distributes whatever remains in the residual buffer to leaves 0
// through 3 in stream order (it always starts at leaf 0, since only
// complete 4-block stripes are ever consumed by Write), finalizes each
// leaf, concatenates the leaf digests, and reduces them through one root
// compression. It writes Size() bytes to out.
func (d *Digest) Finalize(out []byte) error {
	if d.finalized {
		return ErrUsedAfterFinalize
	}
	if len(out) < d.size {
		return errors.Wrap(ErrInvalidParameter, "short output buffer")
	}

	remaining := d.resid
	for i := 0; i < LeafCount && len(remaining) > 0; i++ {
		take := blake2s.BlockBytes
		if take > len(remaining) {
			take = len(remaining)
		}
		if _, err := d.leaves[i].Write(remaining[:take]); err != nil {
			return err
		}
		remaining = remaining[take:]
	}

	leafDigests := make([]byte, LeafCount*d.size)
	for i := 0; i < LeafCount; i++ {
		if err := d.leaves[i].Finalize(leafDigests[i*d.size : (i+1)*d.size]); err != nil {
			return errors.Wrapf(err, "finalize leaf %d", i)
		}
	}

	root, err := blake2s.New(&blake2s.Config{
		Size:            d.size,
		Key:             d.cfg.Key,
		Salt:            d.cfg.Salt,
		Personalization: d.cfg.Personalization,
		Tree: &blake2s.TreeConfig{
			Fanout:      LeafCount,
			MaxDepth:    2,
			NodeOffset:  0,
			NodeDepth:   1,
			InnerLength: byte(d.size),
			IsLastNode:  true,
		},
	})
	if err != nil {
		return errors.Wrap(err, "init root")
	}
	if _, err := root.Write(leafDigests); err != nil {
		return errors.Wrap(err, "write leaf digests to root")
	}
	if err := root.Finalize(out); err != nil {
		return errors.Wrap(err, "finalize root")
	}

	d.finalized = true
	return nil
}

// Sum appends the digest to b without mutating the running state.
func (d *Digest) Sum(b []byte) []byte {
	cpy := *d
	cpy.leaves = d.leaves // replaced below: Finalize mutates the leaves, so each one is copied first
	leafCopies := [LeafCount]*blake2s.Digest{}
	for i, l := range d.leaves {
		lc := *l
		leafCopies[i] = &lc
	}
	cpy.leaves = leafCopies
	cpy.resid = append([]byte(nil), d.resid...)

	out := make([]byte, d.size)
	if err := cpy.Finalize(out); err != nil {
		return b
	}
	return append(b, out...)
}

// Reset restores the digest to the state it had immediately after New.
func (d *Digest) Reset() {
	d.finalized = false
	_ = d.initLeaves()
}

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the size of one stripe: LeafCount independent blocks.
func (d *Digest) BlockSize() int { return LeafCount * blake2s.BlockBytes }
