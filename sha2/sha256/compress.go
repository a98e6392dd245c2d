package sha256

import "github.com/gtank/cryptocore/internal/bitutil"

// compressGeneric is the portable scalar SHA-256 compression function:
// message schedule expansion followed by the 64-round main loop, exactly
// as FIPS 180-4 defines it.
func compressGeneric(h *[8]uint32, block []byte) {
	var w [64]uint32
	bitutil.LoadBE32Block((*[16]uint32)(w[:16]), block)

	for t := 16; t < RoundCount; t++ {
		s0 := bitutil.RotR32(w[t-15], 7) ^ bitutil.RotR32(w[t-15], 18) ^ (w[t-15] >> 3)
		s1 := bitutil.RotR32(w[t-2], 17) ^ bitutil.RotR32(w[t-2], 19) ^ (w[t-2] >> 10)
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for t := 0; t < RoundCount; t++ {
		bigS1 := bitutil.RotR32(e, 6) ^ bitutil.RotR32(e, 11) ^ bitutil.RotR32(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + bigS1 + ch + K[t] + w[t]
		bigS0 := bitutil.RotR32(a, 2) ^ bitutil.RotR32(a, 13) ^ bitutil.RotR32(a, 22)
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

// compressSHANI is the SHA-NI-shaped backend: the Intel SHA extensions
// process four rounds per instruction pair (a "quad round"), interleaving
// message-schedule expansion (msg1/msg2) with the round instructions. This
// portable build expresses that same quad-round grouping in scalar Go,
// without hand-written assembly, producing output bit-identical to
// compressGeneric; a host build with real SHA-NI intrinsics would replace
// only this function's body.
func compressSHANI(h *[8]uint32, block []byte) {
	var w [64]uint32
	bitutil.LoadBE32Block((*[16]uint32)(w[:16]), block)
	for t := 16; t < RoundCount; t++ {
		s0 := bitutil.RotR32(w[t-15], 7) ^ bitutil.RotR32(w[t-15], 18) ^ (w[t-15] >> 3)
		s1 := bitutil.RotR32(w[t-2], 17) ^ bitutil.RotR32(w[t-2], 19) ^ (w[t-2] >> 10)
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for quad := 0; quad < RoundCount; quad += 4 {
		for t := quad; t < quad+4; t++ {
			bigS1 := bitutil.RotR32(e, 6) ^ bitutil.RotR32(e, 11) ^ bitutil.RotR32(e, 25)
			ch := (e & f) ^ (^e & g)
			t1 := hh + bigS1 + ch + K[t] + w[t]
			bigS0 := bitutil.RotR32(a, 2) ^ bitutil.RotR32(a, 13) ^ bitutil.RotR32(a, 22)
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := bigS0 + maj

			hh, g, f, e = g, f, e, d+t1
			d, c, b, a = c, b, a, t1+t2
		}
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

// CompressBatch runs the N-way SIMD-shaped backend: it hashes len(blocks)
// independent (state, block) pairs. On real AVX2/AVX512 hardware this packs
// the same lane position across all N states into one vector register;
// here each state advances through the identical scalar recipe, letting
// callers (tree-mode leaves, KDF block expansion) depend on the batched
// contract regardless of the host's vector width.
func CompressBatch(states []*[8]uint32, blocks [][]byte) {
	for i := range states {
		compressGeneric(states[i], blocks[i])
	}
}
