// Package blake2b implements BLAKE2b-512 secure hashing with support for
// keying, salting, personalization, and the tree-mode parameter fields
// consumed by the blake2bp 4-way parallel variant. BLAKE2b is optimized for
// 64-bit platforms and produces digests of any size between 1 and 64 bytes.
package blake2b

// The constant values will be different for other BLAKE2 variants. These are
// appropriate for BLAKE2b.
const (
	// KeyLength is the maximum length of the MAC key field.
	KeyLength = 64
	// MaxOutput is the maximum number of bytes to produce.
	MaxOutput = 64
	// SaltLength is the size of the salt, in bytes.
	SaltLength = 16
	// SeparatorLength is the max size of the personalization string, in bytes.
	SeparatorLength = 16
	// RoundCount is the number of G function rounds for BLAKE2b.
	RoundCount = 12
	// BlockSize is the size of a block buffer in bytes.
	BlockSize = 128

	// Initialization vector for BLAKE2b (= SHA-512's IV).
	IV0 uint64 = 0x6a09e667f3bcc908
	IV1 uint64 = 0xbb67ae8584caa73b
	IV2 uint64 = 0x3c6ef372fe94f82b
	IV3 uint64 = 0xa54ff53a5f1d36f1
	IV4 uint64 = 0x510e527fade682d1
	IV5 uint64 = 0x9b05688c2b3e6c1f
	IV6 uint64 = 0x1f83d9abfb41bd6b
	IV7 uint64 = 0x5be0cd19137e2179
)

// SIGMA is the lookup table of the permutations of 0...15 used by the
// BLAKE2 round function, one row per round. BLAKE2b runs 12 rounds, reusing
// the first 2 rows of the schedule for the final 2 rounds (rows 10 and 11
// equal rows 0 and 1).
var SIGMA = [12][16]byte{
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
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
}
