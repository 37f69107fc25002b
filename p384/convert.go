package p384

import (
	"math/big"
	"math/bits"

	"github.com/p384/go-p384/internal/field"
)

// SetUint384 sets s to the 384-bit integer held in v (six 64-bit limbs
// in little-endian order) reduced modulo n, and returns s. The value
// in v MUST be lower than 2*n; a single conditional subtraction is
// performed, which is not enough for larger inputs.
func (s *Scalar) SetUint384(v *[6]uint64) *Scalar {
	var t, u [6]uint64
	var bb uint64
	for i := 0; i < 6; i++ {
		u[i], bb = bits.Sub64(v[i], field.Order[i], bb)
	}
	// bb == 1 when v < n, in which case v is kept as is.
	m := -bb
	for i := 0; i < 6; i++ {
		t[i] = u[i] ^ (m & (u[i] ^ v[i]))
	}
	field.ToMontgomery((*[6]uint64)(s), &t)
	return s
}

// Uint384 returns the canonical value of s as six 64-bit limbs in
// little-endian order.
func (s *Scalar) Uint384() [6]uint64 {
	var t [6]uint64
	field.FromMontgomery(&t, (*[6]uint64)(s))
	return t
}

// Bits returns the canonical value of s as six 64-bit limbs in
// little-endian order. It is an alias of Uint384, named for callers
// that consume scalars as bit strings (e.g. generic point
// multiplication ladders).
func (s *Scalar) Bits() [6]uint64 {
	return s.Uint384()
}

// OrderBits returns the group order n as six 64-bit limbs in
// little-endian order.
func OrderBits() [6]uint64 {
	return field.Order
}

// SetBigInt sets s to v modulo n, and returns s. The reduction uses
// variable-time big integer arithmetic; this function is not meant for
// secret values.
func (s *Scalar) SetBigInt(v *big.Int) *Scalar {
	var t [6]uint64
	z := new(big.Int).Mod(v, orderBigInt())
	for i := 0; i < 6; i++ {
		t[i] = z.Uint64()
		z.Rsh(z, 64)
	}
	field.ToMontgomery((*[6]uint64)(s), &t)
	return s
}

// BigInt returns the canonical value of s as a big integer.
func (s *Scalar) BigInt() *big.Int {
	b := s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func orderBigInt() *big.Int {
	return new(big.Int).SetBytes(orderBytes[:])
}
