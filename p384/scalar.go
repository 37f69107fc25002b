// Package p384 implements arithmetic in the scalar field of the P-384
// elliptic curve, i.e. integers modulo the prime group order n. This is
// the substrate for signature and key agreement schemes over P-384:
// scalar values are typically private keys, nonces or blinding factors,
// so all operations on them are constant-time unless explicitly
// documented otherwise.
package p384

import (
	"math/bits"

	"github.com/p384/go-p384/internal/field"
)

// ScalarSize is the size of an encoded scalar, in bytes.
const ScalarSize = 48

// Scalar is an integer modulo the P-384 group order n. It is held in
// the Montgomery domain over six 64-bit limbs; any live Scalar is
// strictly lower than n. Scalars are plain values: assignment copies,
// and a copied Scalar is independent of the original. The zero value
// is the canonical zero element.
type Scalar [6]uint64

// The Montgomery representation of 1.
var scalarOne = func() Scalar {
	var s Scalar
	field.SetOne((*[6]uint64)(&s))
	return s
}()

// NewScalar returns a new scalar with value 0.
func NewScalar() *Scalar {
	return new(Scalar)
}

// Zero sets s to 0 and returns s.
func (s *Scalar) Zero() *Scalar {
	for i := range s {
		s[i] = 0
	}
	return s
}

// One sets s to 1 and returns s.
func (s *Scalar) One() *Scalar {
	*s = scalarOne
	return s
}

// Set sets s to the value of a and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	*s = *a
	return s
}

// SetUint64 sets s to the value of the small integer v and returns s.
func (s *Scalar) SetUint64(v uint64) *Scalar {
	t := [6]uint64{v, 0, 0, 0, 0, 0}
	field.ToMontgomery((*[6]uint64)(s), &t)
	return s
}

// Add sets s to a + b mod n and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	field.Add((*[6]uint64)(s), (*[6]uint64)(a), (*[6]uint64)(b))
	return s
}

// Sub sets s to a - b mod n and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	field.Sub((*[6]uint64)(s), (*[6]uint64)(a), (*[6]uint64)(b))
	return s
}

// Neg sets s to -a mod n and returns s.
func (s *Scalar) Neg(a *Scalar) *Scalar {
	field.Neg((*[6]uint64)(s), (*[6]uint64)(a))
	return s
}

// Double sets s to a + a mod n and returns s.
func (s *Scalar) Double(a *Scalar) *Scalar {
	field.Add((*[6]uint64)(s), (*[6]uint64)(a), (*[6]uint64)(a))
	return s
}

// Mul sets s to a*b mod n and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	field.Mul((*[6]uint64)(s), (*[6]uint64)(a), (*[6]uint64)(b))
	return s
}

// Square sets s to a*a mod n and returns s.
func (s *Scalar) Square(a *Scalar) *Scalar {
	field.Sqr((*[6]uint64)(s), (*[6]uint64)(a))
	return s
}

// Select sets s to a if ctl == 1, or to b if ctl == 0, without
// branching on ctl. ctl MUST be 0 or 1.
func (s *Scalar) Select(a, b *Scalar, ctl uint64) *Scalar {
	field.Select((*[6]uint64)(s), (*[6]uint64)(a), (*[6]uint64)(b), ctl)
	return s
}

// CondNeg sets s to -a if ctl == 1, or to a if ctl == 0.
// ctl MUST be 0 or 1.
func (s *Scalar) CondNeg(a *Scalar, ctl uint64) *Scalar {
	var t Scalar
	field.Neg((*[6]uint64)(&t), (*[6]uint64)(a))
	return s.Select(&t, a, ctl)
}

// Equal returns 1 if s == a, or 0 otherwise. All limbs are always
// compared; the Montgomery representation being canonical, limb
// equality is value equality.
func (s *Scalar) Equal(a *Scalar) uint64 {
	return field.Eq((*[6]uint64)(s), (*[6]uint64)(a))
}

// IsZero returns 1 if s == 0, or 0 otherwise.
func (s *Scalar) IsZero() uint64 {
	return field.IsZero((*[6]uint64)(s))
}

// IsOdd returns 1 if the integer value of s is odd, or 0 otherwise.
func (s *Scalar) IsOdd() uint64 {
	var t [6]uint64
	field.FromMontgomery(&t, (*[6]uint64)(s))
	return t[0] & 1
}

// IsHigh returns 1 if the integer value of s is strictly greater than
// floor(n/2), or 0 otherwise. Some signature schemes use this to
// normalize the s component of a signature to the lower half of the
// field. The comparison is a full subtract-and-inspect-borrow over the
// non-Montgomery value; it does not exit early.
func (s *Scalar) IsHigh() uint64 {
	var t [6]uint64
	field.FromMontgomery(&t, (*[6]uint64)(s))
	var bb uint64 = 0
	for i := 0; i < 6; i++ {
		_, bb = bits.Sub64(field.OrderHalf[i], t[i], bb)
	}
	return bb
}

// Zeroize overwrites the scalar with zeros. Scalar values are often
// private keys or blinding factors; call this before discarding one to
// avoid leaving key material in memory.
func (s *Scalar) Zeroize() {
	for i := range s {
		s[i] = 0
	}
}
