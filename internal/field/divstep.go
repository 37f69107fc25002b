package field

import "math/bits"

// This file implements the divstep primitive for the Bernstein-Yang
// constant-time extended GCD (https://eprint.iacr.org/2019/266), as
// used for modular inversion. One divstep maps the state
// (d, f, g, v, r) to:
//
//    if d > 0 and g is odd:
//        (1 - d, g, (g - f)/2, 2*r mod n, (r - v) mod n)
//    else:
//        (1 + d, f, (g + (g mod 2)*f)/2, 2*v mod n, (r + (g mod 2)*v) mod n)
//
// f and g are signed integers in two's complement over SatWords limbs;
// v and r are field elements in the Montgomery domain. Doubling v (resp.
// r) instead of halving its counterpart keeps all cofactor updates free
// of divisions; the accumulated power of two is cancelled at the end of
// the iteration schedule by DivstepPrecomp.

// Fixed divstep count for a full inversion modulo n. This is the
// Bernstein-Yang bound ceil((49*bits + c)/17) with c = 57 for
// bits >= 46 (c = 80 below that), instantiated for bits = 384.
const DivstepIterations = (49*384 + 57) / 17

// 2^(384 - DivstepIterations) mod n: the Montgomery representation of
// 2^-DivstepIterations, cancelling the doublings accumulated by the
// divstep schedule.
var gfDivstepPrecomp = [6]uint64{
	0x49589AE0E6045B6A, 0x3C9A5352870040ED, 0xDACB097E977DC242,
	0xB5AB30A6D1ECBE36, 0x97D7A1081F959973, 0x2BA012F8D27192BC,
}

// Msat sets d to the modulus n in the saturated representation.
func Msat(d *[7]uint64) {
	copy(d[:6], Order[:])
	d[6] = 0
}

// DivstepPrecomp sets d to the final correction constant for a full
// run of DivstepIterations divsteps.
func DivstepPrecomp(d *[6]uint64) {
	copy(d[:], gfDivstepPrecomp[:])
}

// Divstep computes a single divstep. The transition is branchless: the
// condition "d > 0 and g odd" is materialized as a mask and every
// update is applied through masked arithmetic. Output locations MUST
// be distinct from input locations.
func Divstep(outD *uint64, outF, outG *[7]uint64, outV, outR *[6]uint64,
	d uint64, f, g *[7]uint64, v, r *[6]uint64) {

	// d holds a signed value; -d has its top bit set exactly when
	// d > 0, so the condition reduces to two bit extractions.
	cond := ((-d) >> 63) & (g[0] & 1)
	cm := -cond

	// d' = 1 + (cond ? -d : d)
	*outD = ((d ^ cm) + cond) + 1

	// f' = cond ? g : f
	for i := 0; i < 7; i++ {
		outF[i] = f[i] ^ (cm & (f[i] ^ g[i]))
	}

	// g' = (g + t)/2 with t = -f if cond, else (g mod 2)*f. The sum
	// is computed over the full saturated width, then arithmetically
	// shifted right by one bit (the division is exact).
	om := -(g[0] & 1)
	var t, u [7]uint64
	cc := cond
	for i := 0; i < 7; i++ {
		t[i], cc = bits.Add64(f[i]^cm, 0, cc)
	}
	cc = 0
	for i := 0; i < 7; i++ {
		u[i], cc = bits.Add64(g[i], t[i]&om, cc)
	}
	for i := 0; i < 6; i++ {
		outG[i] = (u[i] >> 1) | (u[i+1] << 63)
	}
	outG[6] = uint64(int64(u[6]) >> 1)

	// v' = 2*(cond ? r : v) mod n
	var w [6]uint64
	for i := 0; i < 6; i++ {
		w[i] = v[i] ^ (cm & (v[i] ^ r[i]))
	}
	gf_add(outV, &w, &w)

	// r' = r + (cond ? -v : (g mod 2)*v) mod n. A masked field
	// element is either v (or -v) or the canonical zero, both valid
	// addends.
	var nv [6]uint64
	gf_neg(&nv, v)
	for i := 0; i < 6; i++ {
		w[i] = (v[i] ^ (cm & (v[i] ^ nv[i]))) & om
	}
	gf_add(outR, r, &w)
}
