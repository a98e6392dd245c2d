package sha512

import "github.com/gtank/cryptocore/internal/bitutil"

// compressGeneric is the portable scalar SHA-512 compression function: the
// 64-bit-lane sibling of sha256's compressGeneric, 80 rounds over 128-byte
// blocks.
func compressGeneric(h *[8]uint64, block []byte) {
	var w [80]uint64
	bitutil.LoadBE64Block((*[16]uint64)(w[:16]), block)

	for t := 16; t < RoundCount; t++ {
		s0 := bitutil.RotR64(w[t-15], 1) ^ bitutil.RotR64(w[t-15], 8) ^ (w[t-15] >> 7)
		s1 := bitutil.RotR64(w[t-2], 19) ^ bitutil.RotR64(w[t-2], 61) ^ (w[t-2] >> 6)
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for t := 0; t < RoundCount; t++ {
		bigS1 := bitutil.RotR64(e, 14) ^ bitutil.RotR64(e, 18) ^ bitutil.RotR64(e, 41)
		ch := (e & f) ^ (^e & g)
		t1 := hh + bigS1 + ch + K[t] + w[t]
		bigS0 := bitutil.RotR64(a, 28) ^ bitutil.RotR64(a, 34) ^ bitutil.RotR64(a, 39)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := bigS0 + maj

		hh, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// CompressBatch hashes len(blocks) independent (state, block) pairs, the
// N-way batched entrypoint used by callers with many independent digests
// to compute (e.g. tree-mode leaves, KDF block expansion).
func CompressBatch(states []*[8]uint64, blocks [][]byte) {
	for i := range states {
		compressGeneric(states[i], blocks[i])
	}
}
