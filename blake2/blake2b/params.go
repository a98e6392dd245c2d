package blake2b

import (
	"github.com/gtank/cryptocore/internal/bitutil"
	"github.com/pkg/errors"
)

// TreeConfig carries the BLAKE2 tree-mode parameters for a single node. A
// nil Config.Tree selects sequential (non-tree) mode, fanout=1, maxDepth=1;
// the zero TreeConfig value has fanout=0 and maxDepth=0.
// blake2bp constructs one TreeConfig per leaf plus one for the root; see
// that package for the concrete 4-way instantiation.
type TreeConfig struct {
	Fanout      byte
	MaxDepth    byte
	LeafLength  uint32
	NodeOffset  uint64
	NodeDepth   byte
	InnerLength byte
	// IsLastNode marks this node as the last one compressed at its depth;
	// see blake2s.TreeConfig.IsLastNode for the full rationale.
	IsLastNode bool
}

var sequential = TreeConfig{Fanout: 1, MaxDepth: 1}

// parameterBlock is the user-visible configuration of a BLAKE2b hash
// instance. It is XOR'd word-wise with the IV at the start of the hash.
type parameterBlock struct {
	DigestSize      byte
	KeyLength       byte
	Tree            TreeConfig
	Salt            []byte // 0..SaltLength
	Personalization []byte // 0..SeparatorLength
}

// Marshal packs a BLAKE2b parameter block into its canonical 64-byte wire
// form, matching the reference blake2b_param layout byte for byte:
//
//	0      digest_length   1    byte
//	1      key_length      1    byte
//	2      fanout          1    byte
//	3      depth           1    byte
//	4..7   leaf_length     4    bytes LE
//	8..15  node_offset     8    bytes LE
//	16     node_depth      1    byte
//	17     inner_length    1    byte
//	18..31 reserved        14   bytes
//	32..47 salt            16   bytes
//	48..63 personal        16   bytes
func (p *parameterBlock) Marshal() []byte {
	buf := make([]byte, 64)
	buf[0] = p.DigestSize
	buf[1] = p.KeyLength
	buf[2] = p.Tree.Fanout
	buf[3] = p.Tree.MaxDepth
	bitutil.StoreLE32(buf[4:], p.Tree.LeafLength)
	bitutil.StoreLE64(buf[8:], p.Tree.NodeOffset)
	buf[16] = p.Tree.NodeDepth
	buf[17] = p.Tree.InnerLength
	// 14 bytes of reserved field implicitly zero.
	copy(buf[32:], p.Salt)
	copy(buf[48:], p.Personalization)
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
