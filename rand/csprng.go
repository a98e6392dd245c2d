package rand

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// reseedThreshold is the number of bytes CSPRNG draws before it logs a
// reseed event; crypto/rand.Reader is already reseeded by the OS on every
// read, so this is an observability checkpoint (CEX's CSPPrng.Reset),
// not a correctness requirement.
const reseedThreshold = 1 << 20

// CSPRNG wraps an OS-entropy source (CEX's CSPPrng over CSPRsg) with the
// byte-range sampling CEX exposes via Next/NextLong. Every instance gets a
// UUID purely for log correlation; it is never mixed into entropy output.
type CSPRNG struct {
	source  io.Reader
	id      uuid.UUID
	drawn   uint64
	reseeds uint64
}

// NewCSPRNG constructs a CSPRNG backed by crypto/rand.Reader.
func NewCSPRNG() *CSPRNG {
	c := &CSPRNG{source: rand.Reader, id: uuid.New()}
	logrus.WithField("rng_id", c.id).Debug("csprng: seeded from OS entropy")
	return c
}

// GetBytes returns size fresh random bytes.
func (c *CSPRNG) GetBytes(size int) ([]byte, error) {
	out := make([]byte, size)
	if err := c.Fill(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Fill fills out in place with random bytes, logging a debug reseed event
// each time cumulative draws cross reseedThreshold.
func (c *CSPRNG) Fill(out []byte) error {
	if _, err := io.ReadFull(c.source, out); err != nil {
		return errors.Wrap(err, "csprng: read entropy")
	}
	c.drawn += uint64(len(out))
	if c.drawn >= reseedThreshold {
		c.Reset()
	}
	return nil
}

// Next returns a uniformly distributed 32-bit value.
func (c *CSPRNG) Next() (uint32, error) {
	var b [4]byte
	if err := c.Fill(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// NextLong returns a uniformly distributed 64-bit value.
func (c *CSPRNG) NextLong() (uint64, error) {
	var b [8]byte
	if err := c.Fill(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NextN returns a value in [0, max], using CEX's GetByteRange/GetBits
// scheme: draw only as many bytes as max needs, then fold the drawn value
// down by repeated halving until it fits, rather than rejection-sampling
// whole draws.
func (c *CSPRNG) NextN(max uint64) (uint64, error) {
	if max == 0 {
		return 0, nil
	}
	n := bytesNeeded(max)
	buf := make([]byte, n)
	if err := c.Fill(buf); err != nil {
		return 0, err
	}
	return foldToMax(buf, max), nil
}

// Reset logs a reseed checkpoint and clears the draw counter. The
// underlying crypto/rand.Reader needs no explicit reseeding, but the
// bookkeeping mirrors CEX's CSPPrng.Reset so operators get the same
// observability signal.
func (c *CSPRNG) Reset() {
	c.reseeds++
	c.drawn = 0
	logrus.WithFields(logrus.Fields{
		"rng_id":  c.id,
		"reseeds": c.reseeds,
	}).Debug("csprng: reseed checkpoint")
}

func bytesNeeded(max uint64) int {
	switch {
	case max < 1<<8:
		return 1
	case max < 1<<16:
		return 2
	case max < 1<<24:
		return 3
	case max < 1<<32:
		return 4
	case max < 1<<40:
		return 5
	case max < 1<<48:
		return 6
	case max < 1<<56:
		return 7
	default:
		return 8
	}
}

func foldToMax(data []byte, max uint64) uint64 {
	var val uint64
	for i, b := range data {
		val |= uint64(b) << (8 * uint(i))
	}
	bits := len(data) * 8
	for val > max && bits != 0 {
		val >>= 1
		bits--
	}
	return val
}
