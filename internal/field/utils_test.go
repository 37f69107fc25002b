package field

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
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

// Generate a random 384-bit integer from the PRNG.
func (p *prng) mk384(d *[6]uint64) {
	var bb [48]byte
	p.generate(bb[:])
	for i := 0; i < 6; i++ {
		d[i] = binary.LittleEndian.Uint64(bb[8*i:])
	}
}

// Make a new random field element (lower than n) from the PRNG.
func (p *prng) mkgf(d *[6]uint64) {
	var t [6]uint64
	p.mk384(&t)
	x := int384ToBigMod(&t, orderBig())
	bigToLimbs(d, &x)
}

// Get the group order n as a big integer.
func orderBig() *big.Int {
	var x big.Int
	for i := 5; i >= 0; i-- {
		x.Lsh(&x, 64).Add(&x, new(big.Int).SetUint64(Order[i]))
	}
	return &x
}

// Get 2^384 mod n (the Montgomery factor) as a big integer.
func montyFactorBig() *big.Int {
	var x big.Int
	x.Lsh(big.NewInt(1), 384)
	return x.Mod(&x, orderBig())
}

// Create a new big integer by reducing the provided 384-bit integer a[]
// modulo m.
func int384ToBigMod(a *[6]uint64, m *big.Int) big.Int {
	var x, y big.Int
	for i := 5; i >= 0; i-- {
		y.SetUint64(a[i])
		x.Lsh(&x, 64).Add(&x, &y)
	}
	x.Mod(&x, m)
	return x
}

// Fill the limbs d[] from a non-negative big integer lower than 2^384.
func bigToLimbs(d *[6]uint64, x *big.Int) {
	var z big.Int
	z.Set(x)
	for i := 0; i < 6; i++ {
		d[i] = z.Uint64()
		z.Rsh(&z, 64)
	}
}

// Get the string representation of a 384-bit integer (hexadecimal, with
// '0x' prefix).
func int384ToString(a *[6]uint64) string {
	return fmt.Sprintf("0x%016X%016X%016X%016X%016X%016X",
		a[5], a[4], a[3], a[2], a[1], a[0])
}

// Decode a sequence of bytes into a big integer, with unsigned little-endian
// convention.
func decodeToBigLE(src []byte) big.Int {
	n := len(src)
	tt := make([]byte, n)
	for i := 0; i < n; i++ {
		tt[i] = src[n-1-i]
	}
	var x big.Int
	x.SetBytes(tt)
	return x
}
