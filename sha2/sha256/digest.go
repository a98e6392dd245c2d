package sha256

import "github.com/gtank/cryptocore/internal/bitutil"

// Digest is a streaming SHA-256 hash state. Not safe for concurrent use.
type Digest struct {
	h      [8]uint32
	buf    [BlockSize]byte
	offset int
	length uint64 // total bytes written, for the length footer

	finalized bool
}

// New returns a fresh SHA-256 digest.
func New() *Digest {
	d := &Digest{}
	d.Reset()
	return d
}

// Write adds more data to the running hash. It never returns an error
// other than ErrUsedAfterFinalize.
func (d *Digest) Write(p []byte) (int, error) {
	if d.finalized {
		return 0, ErrUsedAfterFinalize
	}
	n := len(p)
	d.length += uint64(n)

	if d.offset > 0 {
		copied := copy(d.buf[d.offset:], p)
		d.offset += copied
		p = p[copied:]
		if d.offset < BlockSize {
			return n, nil
		}
		backend(&d.h, d.buf[:])
		d.offset = 0
	}

	for len(p) >= BlockSize {
		backend(&d.h, p[:BlockSize])
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		d.offset = copy(d.buf[:], p)
	}
	return n, nil
}

// Finalize appends SHA-2 padding (a 0x80 byte, zero fill, and a 64-bit
// big-endian bit-length footer) to whatever remains buffered, compresses
// the closing block(s), and writes Size() bytes to out. The Digest must
// not be reused afterwards except via Reset.
func (d *Digest) Finalize(out []byte) error {
	if d.finalized {
		return ErrUsedAfterFinalize
	}
	if len(out) < Size {
		return ErrShortBuffer
	}

	bitLen := d.length * 8

	pad := make([]byte, 0, BlockSize*2)
	pad = append(pad, d.buf[:d.offset]...)
	pad = append(pad, 0x80)
	for len(pad)%BlockSize != 56 {
		pad = append(pad, 0)
	}
	var lenBytes [8]byte
	bitutil.StoreBE64(lenBytes[:], bitLen)
	pad = append(pad, lenBytes[:]...)

	for len(pad) >= BlockSize {
		backend(&d.h, pad[:BlockSize])
		pad = pad[BlockSize:]
	}

	for i := 0; i < 8; i++ {
		bitutil.StoreBE32(out[i*4:i*4+4], d.h[i])
	}

	d.finalized = true
	return nil
}

// Sum appends the digest of all data written so far to b without
// mutating the running state.
func (d *Digest) Sum(b []byte) []byte {
	cpy := *d
	out := make([]byte, Size)
	_ = cpy.Finalize(out)
	return append(b, out...)
}

// Reset restores the digest to its initial state.
func (d *Digest) Reset() {
	d.h = iv
	d.offset = 0
	d.length = 0
	d.finalized = false
}

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the block size in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// Sum256 computes the SHA-256 digest of data in one call.
func Sum256(data []byte) [Size]byte {
	d := New()
	_, _ = d.Write(data)
	var out [Size]byte
	_ = d.Finalize(out[:])
	return out
}
