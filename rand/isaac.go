package rand

// ISAAC is a port of CEX's ISCRsg (itself Bob Jenkins' public-domain
// ISAAC generator): a 256-word internal state refilled in batches of 256
// results by generate, consumed one word at a time by Next. It is NOT
// cryptographically secure — use CSPRNG for key/nonce material. ISAAC is
// useful here for deterministic, seed-reproducible sampling in tests and
// non-adversarial simulations.
type ISAAC struct {
	mem    [iscSize]uint32
	result [iscSize]uint32

	acc  uint32
	last uint32
	cc   uint32

	resultCounter int
}

const (
	iscSize   = 256
	iscHalf   = iscSize / 2
	iscMask   = (iscSize - 1) << 2
	iscShift  = 8
	iscGolden = 0x9e3779b9
)

// NewISAAC seeds a generator from seed. Fewer than 1024 bytes of seed
// leaves the remaining state words at zero; more than 1024 bytes is
// truncated. A nil or empty seed produces a fixed, publicly-known initial
// state (matching ISCRsg's behavior when GetSeed is skipped) — callers
// needing unpredictability should seed from CSPRNG.
func NewISAAC(seed []byte) *ISAAC {
	isc := &ISAAC{}
	mixState := len(seed) > 0
	if mixState {
		n := len(seed)
		if n > iscSize*4 {
			n = iscSize * 4
		}
		for i := 0; i*4 < n; i++ {
			var word uint32
			for b := 0; b < 4 && i*4+b < n; b++ {
				word |= uint32(seed[i*4+b]) << (8 * uint(b))
			}
			isc.result[i] = word
		}
	}
	isc.initialize(mixState)
	return isc
}

func (isc *ISAAC) initialize(mixState bool) {
	a, b, c, d, e, f, g, h := uint32(iscGolden), uint32(iscGolden), uint32(iscGolden), uint32(iscGolden), uint32(iscGolden), uint32(iscGolden), uint32(iscGolden), uint32(iscGolden)

	for i := 0; i < 4; i++ {
		a, b, c, d, e, f, g, h = iscMix(a, b, c, d, e, f, g, h)
	}

	for i := 0; i < iscSize; i += 8 {
		if mixState {
			a += isc.result[i]
			b += isc.result[i+1]
			c += isc.result[i+2]
			d += isc.result[i+3]
			e += isc.result[i+4]
			f += isc.result[i+5]
			g += isc.result[i+6]
			h += isc.result[i+7]
		}
		a, b, c, d, e, f, g, h = iscMix(a, b, c, d, e, f, g, h)
		isc.mem[i], isc.mem[i+1], isc.mem[i+2], isc.mem[i+3] = a, b, c, d
		isc.mem[i+4], isc.mem[i+5], isc.mem[i+6], isc.mem[i+7] = e, f, g, h
	}

	if mixState {
		for i := 0; i < iscSize; i += 8 {
			a += isc.mem[i]
			b += isc.mem[i+1]
			c += isc.mem[i+2]
			d += isc.mem[i+3]
			e += isc.mem[i+4]
			f += isc.mem[i+5]
			g += isc.mem[i+6]
			h += isc.mem[i+7]
			a, b, c, d, e, f, g, h = iscMix(a, b, c, d, e, f, g, h)
			isc.mem[i], isc.mem[i+1], isc.mem[i+2], isc.mem[i+3] = a, b, c, d
			isc.mem[i+4], isc.mem[i+5], isc.mem[i+6], isc.mem[i+7] = e, f, g, h
		}
	}

	isc.generate()
	isc.resultCounter = 0
}

// iscMix is ISAAC's seed-mixing round, applied four times before the main
// state array is populated and once per 8-word chunk while populating it.
func iscMix(a, b, c, d, e, f, g, h uint32) (uint32, uint32, uint32, uint32, uint32, uint32, uint32, uint32) {
	a ^= b << 11
	d += a
	b += c
	b ^= c >> 2
	e += b
	c += d
	c ^= d << 8
	f += c
	d += e
	d ^= e >> 16
	g += d
	e += f
	e ^= f << 10
	h += e
	f += g
	f ^= g >> 4
	a += f
	g += h
	g ^= h << 8
	b += g
	h += a
	h ^= a >> 9
	c += h
	a += b
	return a, b, c, d, e, f, g, h
}

func ind(mem *[iscSize]uint32, x uint32) uint32 {
	return mem[(x&iscMask)>>2]
}

// generate refills result with the next 256 pseudorandom words, the
// canonical ISAAC two-pass mixing loop.
func (isc *ISAAC) generate() {
	isc.cc++
	isc.last += isc.cc

	a, b := isc.acc, isc.last
	i, j := 0, iscHalf

	step := func() {
		x := isc.mem[i]
		switch i % 4 {
		case 0:
			a ^= a << 13
		case 1:
			a ^= a >> 6
		case 2:
			a ^= a << 2
		case 3:
			a ^= a >> 16
		}
		a = isc.mem[j] + a
		y := ind(&isc.mem, x) + a + b
		isc.mem[i] = y
		b = ind(&isc.mem, y>>iscShift) + x
		isc.result[i] = b
		i++
		j++
	}

	for i < iscHalf {
		step()
	}
	j = 0
	for j < iscHalf {
		step()
	}

	isc.acc, isc.last = a, b
}

// Next returns the next pseudorandom 32-bit word, regenerating the
// internal state when the result buffer is exhausted.
func (isc *ISAAC) Next() uint32 {
	old := isc.resultCounter
	isc.resultCounter--
	if old == 0 {
		isc.generate()
		isc.resultCounter = iscSize - 1
	}
	return isc.result[isc.resultCounter]
}

// GetBytes fills out with pseudorandom bytes, consuming one word from Next
// for each (up to) four bytes.
func (isc *ISAAC) GetBytes(out []byte) {
	offset := 0
	for offset < len(out) {
		x := isc.Next()
		n := 4
		if len(out)-offset < n {
			n = len(out) - offset
		}
		for k := 0; k < n; k++ {
			out[offset+k] = byte(x >> (8 * uint(k)))
		}
		offset += n
	}
}
