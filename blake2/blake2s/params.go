package blake2s

import (
	"github.com/gtank/cryptocore/internal/bitutil"
	"github.com/pkg/errors"
)

// TreeConfig carries the BLAKE2 tree-mode parameters for a single node. A
// nil Config.Tree selects sequential (non-tree) mode, fanout=1, maxDepth=1;
// the zero TreeConfig value has fanout=0 and maxDepth=0.
// blake2sp constructs one TreeConfig per leaf plus one for the root; see
// that package for the concrete 4-way instantiation.
type TreeConfig struct {
	Fanout      byte
	MaxDepth    byte
	LeafLength  uint32
	NodeOffset  uint32
	NodeDepth   byte
	InnerLength byte
	// IsLastNode marks this node as the last one compressed at its depth:
	// true for the root, and for the leaf with NodeOffset == Fanout-1. It
	// controls whether F[1] is set during Finalize: the second finalization
	// flag word is set when compressing the final root block (or leaf
	// P-1's last compression).
	IsLastNode bool
}

// sequential is the default TreeConfig for a non-tree digest.
var sequential = TreeConfig{Fanout: 1, MaxDepth: 1}

// parameterBlock is the user-visible configuration of a BLAKE2s hash
// instance. It is XOR'd word-wise with the IV at the start of the hash.
type parameterBlock struct {
	DigestSize      byte
	KeyLength       byte
	Tree            TreeConfig
	Salt            []byte // 0..SaltLength
	Personalization []byte // 0..SeparatorLength
}

// Marshal packs a BLAKE2s parameter block into its canonical 32-byte wire
// form, matching the reference blake2s_param layout byte for byte.
func (p *parameterBlock) Marshal() []byte {
	buf := make([]byte, 32)
	buf[0] = p.DigestSize
	buf[1] = p.KeyLength
	buf[2] = p.Tree.Fanout
	buf[3] = p.Tree.MaxDepth
	bitutil.StoreLE32(buf[4:], p.Tree.LeafLength)
	bitutil.StoreLE32(buf[8:], p.Tree.NodeOffset)
	// xof_length occupies bytes 12-13; this implementation never produces
	// XOF-style unbounded output, so it is always zero.
	buf[14] = p.Tree.NodeDepth
	buf[15] = p.Tree.InnerLength
	copy(buf[16:], p.Salt)
	copy(buf[24:], p.Personalization)
	return buf
}

func validateParams(outputBytes int, key, salt, personalization []byte) error {
	if outputBytes <= 0 {
		return errors.Wrap(ErrInvalidParameter, "asked for zero or negative output length")
	}
	if outputBytes > MaxOutput {
		return errors.Wrap(ErrInvalidParameter, "asked for too much output")
	}
	if len(key) > KeyLength {
		return errors.Wrap(ErrInvalidParameter, "key too large")
	}
	if len(salt) > SaltLength {
		return errors.Wrap(ErrInvalidParameter, "salt too large")
	}
	if len(personalization) > SeparatorLength {
		return errors.Wrap(ErrInvalidParameter, "personalization string too large")
	}
	return nil
}
