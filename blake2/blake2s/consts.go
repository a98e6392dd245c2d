// Package blake2s implements BLAKE2s-256, including keyed MAC mode, salt and
// personalization, and the tree-mode parameter fields consumed by the
// blake2sp 4-way parallel variant. Reference: RFC 7693.
package blake2s

// The constant values will be different for other BLAKE2 variants. These are
// appropriate for BLAKE2s.
const (
	KeyLength = 32
	// MaxOutput is the maximum number of bytes a BLAKE2s digest can produce.
	MaxOutput = 32
	// SaltLength is the size of the salt field, in bytes.
	SaltLength = 8
	// SeparatorLength is the max size of the personalization string, in bytes.
	SeparatorLength = 8
	// RoundCount is the number of G function rounds for BLAKE2s.
	RoundCount = 10
	// BlockBytes is the size of a block buffer in bytes.
	BlockBytes = 64

	// Initialization vector for BLAKE2s (= SHA-256's IV).
	IV0 uint32 = 0x6a09e667
	IV1 uint32 = 0xbb67ae85
	IV2 uint32 = 0x3c6ef372
	IV3 uint32 = 0xa54ff53a
	IV4 uint32 = 0x510e527f
	IV5 uint32 = 0x9b05688c
	IV6 uint32 = 0x1f83d9ab
	IV7 uint32 = 0x5be0cd19
)

// SIGMA is the lookup table of the permutations of 0...15 used by the BLAKE2
// round function, one row per round.
var SIGMA = [10][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}
