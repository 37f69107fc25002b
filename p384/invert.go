package p384

import (
	"github.com/p384/go-p384/internal/field"
)

// Invert sets s to the multiplicative inverse of a modulo n, and
// returns 1. If a is zero, then s is set to zero and the returned
// value is 0. In all cases, this function runs in constant-time with
// regard to the value of a.
//
// The inverse is computed with a constant number of divstep
// iterations on a signed transition system (Bernstein-Yang); each
// iteration halves g and accumulates the Bezout coefficient for a in
// r, working in the Montgomery domain. After the iterations, f holds
// plus or minus gcd(a, n) and v holds the candidate inverse scaled by
// 2^-iterations; the sign of f selects between v and -v, and a final
// multiplication by a precomputed power of two removes the scaling.
func (s *Scalar) Invert(a *Scalar) uint64 {
	var d uint64 = 1
	var f, g, f2, g2 [7]uint64
	var v, r, v2, r2 [6]uint64
	var t [6]uint64

	field.Msat(&f)
	field.FromMontgomery(&t, (*[6]uint64)(a))
	copy(g[:6], t[:])
	field.SetOne(&r)

	for i := 0; i < field.DivstepIterations; i += 2 {
		field.Divstep(&d, &f2, &g2, &v2, &r2, d, &f, &g, &v, &r)
		field.Divstep(&d, &f, &g, &v, &r, d, &f2, &g2, &v2, &r2)
	}

	// If f ended negative then gcd(a, n) landed in -f and the
	// candidate inverse is -v.
	var nv [6]uint64
	field.Neg(&nv, &v)
	field.Select(&v, &nv, &v, f[6]>>63)

	var pre [6]uint64
	field.DivstepPrecomp(&pre)
	field.Mul((*[6]uint64)(s), &v, &pre)
	return 1 - a.IsZero()
}
