package field

import (
	"encoding/binary"
	"math/bits"
)

// This package implements computations in the field of integers modulo
// the prime order n of the P-384 curve group. Values are held in the
// Montgomery domain (an element x is stored as x*2^384 mod n) over six
// 64-bit limbs, little-endian limb order. This implementation is
// portable (no assembly) but should be decently efficient on 64-bit
// architectures. It is safe (constant-time) as long as 64-bit
// operations (especially 64x64->128 multiplication, using
// math/bits.Mul64()) are constant-time, which should be true on most
// modern systems.
//
// This package is also the backend swap surface: everything above it
// relies only on the exported functions below, so a generated or
// assembly backend for the same modulus can replace it without
// touching callers.

// Number of 64-bit limbs in an element.
const Words = 6

// Number of limbs in the saturated representation used by Divstep
// (one extra limb for the sign bit).
const SatWords = Words + 1

// Modulus n, little-endian limb order. Do not modify.
var Order = [6]uint64{
	0xECEC196ACCC52973, 0x581A0DB248B0A77A, 0xC7634D81F4372DDF,
	0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
}

// floor(n/2), little-endian limb order. Do not modify.
var OrderHalf = [6]uint64{
	0x76760CB5666294B9, 0xAC0D06D9245853BD, 0xE3B1A6C0FA1B96EF,
	0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x7FFFFFFFFFFFFFFF,
}

// -1/n mod 2^64, used for Montgomery reduction.
const nInv uint64 = 0x6ED46089E88FDC45

// 2^384 mod n (the Montgomery representation of 1).
var gfOne = [6]uint64{
	0x1313E695333AD68D, 0xA7E5F24DB74F5885, 0x389CB27E0BC8D220,
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
}

// 2^768 mod n, used to enter the Montgomery domain.
var gfRSquare = [6]uint64{
	0x2D319B2419B409A9, 0xFF3D81E5DF1AA419, 0xBC3E483AFCB82947,
	0xD40D49174AAB1CC5, 0x3FB05B7A28266895, 0x0C84EE012B39BF21,
}

// The integer 1 outside the Montgomery domain; multiplying by it with
// gf_montymul() performs the Montgomery reduction step alone, which is
// exactly the conversion out of the domain.
var gfUnit = [6]uint64{1, 0, 0, 0, 0, 0}

// =======================================================================
// Internal functions
// =======================================================================

// Unless otherwise stated, all functions below accept source and
// destination operands to be the same objects. Parameter order is
// destination first ("d = a + b"). All inputs are expected to be
// canonical (strictly lower than n); all outputs are canonical.

// Internal function for the final conditional subtraction: d is set to
// t - n if the 385-bit value carry:t is not lower than n, to t
// otherwise. carry MUST be 0 or 1.
func gf_condsub(d, t *[6]uint64, carry uint64) {
	var s [6]uint64
	var bb uint64 = 0
	for i := 0; i < 6; i++ {
		s[i], bb = bits.Sub64(t[i], Order[i], bb)
	}

	// If carry:t >= n then carry - bb == 0; otherwise carry == 0 and
	// bb == 1, so carry - bb is all-ones.
	m := carry - bb
	for i := 0; i < 6; i++ {
		d[i] = s[i] ^ (m & (s[i] ^ t[i]))
	}
}

// Internal function for field addition.
func gf_add(d, a, b *[6]uint64) {
	var t [6]uint64
	var cc uint64 = 0
	for i := 0; i < 6; i++ {
		t[i], cc = bits.Add64(a[i], b[i], cc)
	}
	gf_condsub(d, &t, cc)
}

// Internal function for field subtraction.
func gf_sub(d, a, b *[6]uint64) {
	var cc uint64 = 0
	for i := 0; i < 6; i++ {
		d[i], cc = bits.Sub64(a[i], b[i], cc)
	}

	// If there is a borrow, add n back. Since both inputs were lower
	// than n, a single addition is enough.
	m := -cc
	cc = 0
	for i := 0; i < 6; i++ {
		d[i], cc = bits.Add64(d[i], m&Order[i], cc)
	}
}

// Internal function for field negation: d <- n - a, with 0 mapping to 0
// (n itself is not a canonical representation of zero).
func gf_neg(d, a *[6]uint64) {
	var t [6]uint64
	var bb uint64 = 0
	for i := 0; i < 6; i++ {
		t[i], bb = bits.Sub64(Order[i], a[i], bb)
	}

	z := a[0] | a[1] | a[2] | a[3] | a[4] | a[5]
	m := -((z | -z) >> 63)
	for i := 0; i < 6; i++ {
		d[i] = t[i] & m
	}
}

// Internal function for constant-time selection. Output d is set to the
// value of a if ctl == 1, or to the value of b if ctl == 0.
// ctl MUST be 0 or 1.
func gf_select(d, a, b *[6]uint64, ctl uint64) {
	ma := -ctl
	mb := ^ma
	for i := 0; i < 6; i++ {
		d[i] = (a[i] & ma) | (b[i] & mb)
	}
}

// Internal function for Montgomery multiplication:
//    d <- a*b/2^384 mod n
// This is the CIOS algorithm over six limbs: each outer iteration
// accumulates one limb of a times b, then folds in one limb of
// Montgomery reduction, keeping the running value t below 2*n.
func gf_montymul(d, a, b *[6]uint64) {
	var t [8]uint64

	for i := 0; i < 6; i++ {
		// t <- t + a[i]*b
		ai := a[i]
		var cc uint64 = 0
		for j := 0; j < 6; j++ {
			hi, lo := bits.Mul64(ai, b[j])
			var c1, c2 uint64
			lo, c1 = bits.Add64(lo, t[j], 0)
			lo, c2 = bits.Add64(lo, cc, 0)
			t[j] = lo
			// hi <= 2^64-2, so this cannot overflow.
			cc = hi + c1 + c2
		}
		t[6], cc = bits.Add64(t[6], cc, 0)
		t[7] = cc

		// m is chosen so that t + m*n is a multiple of 2^64; the
		// division by 2^64 is then a plain limb shift, performed
		// on the fly by writing into t[j-1].
		m := t[0] * nInv
		hi, lo := bits.Mul64(m, Order[0])
		_, c1 := bits.Add64(t[0], lo, 0)
		cc = hi + c1
		for j := 1; j < 6; j++ {
			hi, lo = bits.Mul64(m, Order[j])
			var c2, c3 uint64
			lo, c2 = bits.Add64(lo, t[j], 0)
			lo, c3 = bits.Add64(lo, cc, 0)
			t[j-1] = lo
			cc = hi + c2 + c3
		}
		t[5], cc = bits.Add64(t[6], cc, 0)
		t[6] = t[7] + cc
		t[7] = 0
	}

	// At this point t < 2*n, so t[6] is 0 or 1 and a single
	// conditional subtraction normalizes the result.
	var u [6]uint64
	copy(u[:], t[:6])
	gf_condsub(d, &u, t[6])
}

// Internal function for comparing a value with zero. Returns 1 if the
// value is 0, or 0 otherwise. Representations being canonical, this is
// a plain accumulation over the limbs.
func gf_iszero(a *[6]uint64) uint64 {
	z := a[0] | a[1] | a[2] | a[3] | a[4] | a[5]
	return 1 - ((z | -z) >> 63)
}

// Internal function for comparing two values. Returns 1 if equal,
// 0 otherwise. No short-circuit: every limb is always inspected.
func gf_eq(a, b *[6]uint64) uint64 {
	var z uint64 = 0
	for i := 0; i < 6; i++ {
		z |= a[i] ^ b[i]
	}
	return 1 - ((z | -z) >> 63)
}

// =======================================================================
// Exported backend API
// =======================================================================

// Add sets d to a + b mod n. Operands are in the Montgomery domain.
func Add(d, a, b *[6]uint64) {
	gf_add(d, a, b)
}

// Sub sets d to a - b mod n. Operands are in the Montgomery domain.
func Sub(d, a, b *[6]uint64) {
	gf_sub(d, a, b)
}

// Neg sets d to -a mod n.
func Neg(d, a *[6]uint64) {
	gf_neg(d, a)
}

// Mul sets d to a*b mod n. Operands are in the Montgomery domain.
func Mul(d, a, b *[6]uint64) {
	gf_montymul(d, a, b)
}

// Sqr sets d to a*a mod n.
func Sqr(d, a *[6]uint64) {
	gf_montymul(d, a, a)
}

// Select sets d to a if ctl == 1, or to b if ctl == 0.
// ctl MUST be 0 or 1.
func Select(d, a, b *[6]uint64, ctl uint64) {
	gf_select(d, a, b, ctl)
}

// IsZero returns 1 if a is zero, or 0 otherwise.
func IsZero(a *[6]uint64) uint64 {
	return gf_iszero(a)
}

// Eq returns 1 if a == b, or 0 otherwise.
func Eq(a, b *[6]uint64) uint64 {
	return gf_eq(a, b)
}

// SetOne sets d to 1 (Montgomery domain).
func SetOne(d *[6]uint64) {
	copy(d[:], gfOne[:])
}

// ToMontgomery converts the plain integer a (lower than n) into the
// Montgomery domain.
func ToMontgomery(d, a *[6]uint64) {
	gf_montymul(d, a, &gfRSquare)
}

// FromMontgomery converts a out of the Montgomery domain; the output is
// the plain integer value, lower than n.
func FromMontgomery(d, a *[6]uint64) {
	gf_montymul(d, a, &gfUnit)
}

// ToBytes serializes the plain (non-Montgomery) limbs of a into 48
// bytes, unsigned little-endian convention.
func ToBytes(dst *[48]byte, a *[6]uint64) {
	for i := 0; i < 6; i++ {
		binary.LittleEndian.PutUint64(dst[8*i:], a[i])
	}
}

// FromBytes deserializes 48 bytes (unsigned little-endian convention)
// into plain limbs. No range check is performed; the caller is
// responsible for validating the value against n.
func FromBytes(d *[6]uint64, src *[48]byte) {
	for i := 0; i < 6; i++ {
		d[i] = binary.LittleEndian.Uint64(src[8*i:])
	}
}
