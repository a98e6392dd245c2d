// Package bitutil provides the endian marshalling and constant-time
// primitives shared by the BLAKE2 and SHA-2 digests and the prf package
// in this module. Nothing here
// branches on secret data; see ct.go for the constant-time helpers.
package bitutil

import "encoding/binary"

// LoadLE32 reads a little-endian uint32 from the front of b.
func LoadLE32(b []byte) uint32 {
	_ = b[3] // bounds check hint, see golang.org/issue/14808
	return binary.LittleEndian.Uint32(b)
}

// LoadLE64 reads a little-endian uint64 from the front of b.
func LoadLE64(b []byte) uint64 {
	_ = b[7]
	return binary.LittleEndian.Uint64(b)
}

// LoadBE32 reads a big-endian uint32 from the front of b.
func LoadBE32(b []byte) uint32 {
	_ = b[3]
	return binary.BigEndian.Uint32(b)
}

// LoadBE64 reads a big-endian uint64 from the front of b.
func LoadBE64(b []byte) uint64 {
	_ = b[7]
	return binary.BigEndian.Uint64(b)
}

// StoreLE32 writes n to b in little-endian order.
func StoreLE32(b []byte, n uint32) {
	_ = b[3]
	binary.LittleEndian.PutUint32(b, n)
}

// StoreLE64 writes n to b in little-endian order.
func StoreLE64(b []byte, n uint64) {
	_ = b[7]
	binary.LittleEndian.PutUint64(b, n)
}

// StoreBE32 writes n to b in big-endian order.
func StoreBE32(b []byte, n uint32) {
	_ = b[3]
	binary.BigEndian.PutUint32(b, n)
}

// StoreBE64 writes n to b in big-endian order.
func StoreBE64(b []byte, n uint64) {
	_ = b[7]
	binary.BigEndian.PutUint64(b, n)
}

// LoadLE32Block reads 16 little-endian uint32 words from a 64-byte block,
// as consumed by BLAKE2s's message schedule.
func LoadLE32Block(dst *[16]uint32, block []byte) {
	_ = block[63]
	for i := range dst {
		dst[i] = LoadLE32(block[i*4 : i*4+4])
	}
}

// LoadLE64Block reads 16 little-endian uint64 words from a 128-byte block,
// as consumed by BLAKE2b's message schedule.
func LoadLE64Block(dst *[16]uint64, block []byte) {
	_ = block[127]
	for i := range dst {
		dst[i] = LoadLE64(block[i*8 : i*8+8])
	}
}

// LoadBE32Block reads 16 big-endian uint32 words from a 64-byte block, as
// consumed by SHA-256's message schedule.
func LoadBE32Block(dst *[16]uint32, block []byte) {
	_ = block[63]
	for i := range dst {
		dst[i] = LoadBE32(block[i*4 : i*4+4])
	}
}

// LoadBE64Block reads 16 big-endian uint64 words from a 128-byte block, as
// consumed by SHA-512's message schedule.
func LoadBE64Block(dst *[16]uint64, block []byte) {
	_ = block[127]
	for i := range dst {
		dst[i] = LoadBE64(block[i*8 : i*8+8])
	}
}
