package p384

import (
	"github.com/p384/go-p384/internal/field"
)

// The square root is x^((n+1)/4), since n = 3 mod 4. The exponent is
// reached with a fixed addition chain over a small window of odd
// powers of x. Each step squares the accumulator a number of times,
// then optionally multiplies in a window entry, and optionally saves
// the accumulator back into the window for later reuse.
type sqrtStep struct {
	squares int
	mul     int
	save    int
}

// Window layout: entries 0 to 10 are x^1, x^3, x^5, x^7, x^9, x^11,
// x^13, x^15, x^31, x^124 and x^248; entries 11 to 15 hold saved
// intermediates. The accumulator starts at x^248.
var sqrtChain = [45]sqrtStep{
	{1, -1, 11}, {5, 11, 12}, {10, 12, 13}, {4, 10, -1}, {21, 13, 14},
	{3, 9, -1}, {47, 14, 15}, {95, 15, -1}, {0, 7, -1}, {6, 3, -1},
	{3, 1, -1}, {7, 6, -1}, {6, 6, -1}, {1, 0, -1}, {11, 8, -1},
	{2, 0, -1}, {8, 6, -1}, {2, 1, -1}, {6, 5, -1}, {4, 3, -1},
	{6, 8, -1}, {5, 5, -1}, {10, 6, -1}, {9, 6, -1}, {4, 5, -1},
	{6, 4, -1}, {3, 0, -1}, {7, 5, -1}, {7, 2, -1}, {5, 3, -1},
	{5, 7, -1}, {5, 5, -1}, {4, 5, -1}, {5, 3, -1}, {3, 1, -1},
	{7, 1, -1}, {6, 5, -1}, {4, 2, -1}, {3, 1, -1}, {4, 1, -1},
	{4, 1, -1}, {6, 2, -1}, {5, 2, -1}, {6, 5, -1}, {3, 2, -1},
}

// Sqrt sets s to a square root of a modulo n, and returns 1; if a is
// not a quadratic residue, then s is set to zero and the returned
// value is 0. A zero input is a residue (of itself) and yields 1. Of
// the two roots x and n-x, the one produced is the exponentiation
// result x^((n+1)/4); callers that need a specific parity can
// conditionally negate it. This function runs in constant-time with
// regard to the value of a.
func (s *Scalar) Sqrt(a *Scalar) uint64 {
	var w [16][6]uint64
	var x2 [6]uint64

	w[0] = *(*[6]uint64)(a)
	field.Sqr(&x2, &w[0])
	field.Mul(&w[1], &w[0], &x2)
	for i := 2; i <= 7; i++ {
		field.Mul(&w[i], &w[i-1], &x2)
	}
	field.Sqr(&w[8], &w[7])
	field.Mul(&w[8], &w[8], &w[0])
	field.Sqr(&w[9], &w[8])
	field.Sqr(&w[9], &w[9])
	field.Sqr(&w[10], &w[9])

	y := w[10]
	for _, step := range sqrtChain {
		for i := 0; i < step.squares; i++ {
			field.Sqr(&y, &y)
		}
		if step.mul >= 0 {
			field.Mul(&y, &y, &w[step.mul])
		}
		if step.save >= 0 {
			w[step.save] = y
		}
	}

	// y is a root only if a was a residue; verify and clamp.
	var chk, zero [6]uint64
	field.Sqr(&chk, &y)
	qr := field.Eq(&chk, (*[6]uint64)(a))
	field.Select((*[6]uint64)(s), &y, &zero, qr)
	return qr
}
