package p384

import (
	"crypto/sha512"
	"math/big"
)

// =====================================================================
// Custom PRNG (based on SHA-512) for reproducible tests.

type prng struct {
	buf [64]byte
	ptr int
}

// Initialize the PRNG with an explicit seed.
func (p *prng) init(seed string) {
	hv := sha512.Sum512([]byte(seed))
	copy(p.buf[:], hv[:])
	p.ptr = 0
}

// Fill the provided slice with pseudorandom bytes from the PRNG.
func (p *prng) generate(d []byte) {
	n := len(d)
	for n > 0 {
		c := 32 - p.ptr
		if c == 0 {
			hv := sha512.Sum512(p.buf[:])
			copy(p.buf[:], hv[:])
			p.ptr = 0
			c = 32
		}
		if c > n {
			c = n
		}
		copy(d, p.buf[p.ptr:p.ptr+c])
		d = d[c:]
		n -= c
		p.ptr += c
	}
}

// Read implements io.Reader, so that the PRNG can seed SetRandom.
func (p *prng) Read(d []byte) (int, error) {
	p.generate(d)
	return len(d), nil
}

// Make a new random scalar from the PRNG, along with its value as a
// big integer.
func (p *prng) mkscalar() (*Scalar, *big.Int) {
	var bb [48]byte
	p.generate(bb[:])
	var z big.Int
	z.SetBytes(bb[:])
	z.Mod(&z, order())
	s := NewScalar().SetBigInt(&z)
	return s, &z
}

// Get the group order n as a big integer.
func order() *big.Int {
	return new(big.Int).SetBytes(orderBytes[:])
}
