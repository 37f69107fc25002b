package p384

import (
	"github.com/pkg/errors"

	"github.com/p384/go-p384/internal/field"
)

// ErrNonCanonicalEncoding is returned when a 48-byte buffer encodes an
// integer that is not strictly lower than the group order n. Such input
// is malformed; the caller must not substitute a default value for it.
var ErrNonCanonicalEncoding = errors.New("p384: non-canonical scalar encoding")

// Big-endian encoding of the group order n, the comparand for the
// canonicality check.
var orderBytes = [48]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xc7, 0x63, 0x4d, 0x81, 0xf4, 0x37, 0x2d, 0xdf, 0x58, 0x1a, 0x0d, 0xb2,
	0x48, 0xb0, 0xa7, 0x7a, 0xec, 0xec, 0x19, 0x6a, 0xcc, 0xc5, 0x29, 0x73,
}

// isCanonical returns 1 if the big-endian buffer src encodes an integer
// strictly lower than n, or 0 otherwise. The comparison walks all 48
// bytes from most significant to least significant, maintaining a
// "strictly lower while still equal" flag (c) and a "still equal so
// far" flag (k), combined with bitwise operations only: execution time
// and branch pattern do not depend on where the buffers first differ.
func isCanonical(src *[48]byte) uint64 {
	var c, k byte = 0, 1
	for i := 0; i < 48; i++ {
		v, l := src[i], orderBytes[i]
		c |= byte((uint16(v)-uint16(l))>>8) & k
		k &= byte((uint16(v^l) - 1) >> 8)
	}
	return uint64(c)
}

// reverse48 returns the byte-reversed copy of src, in a single pass.
// The big-endian and little-endian scalar encodings differ only by
// this reversal.
func reverse48(src *[48]byte) [48]byte {
	var dst [48]byte
	for i := 0; i < 48; i++ {
		dst[i] = src[47-i]
	}
	return dst
}

// SetCanonicalBytes sets s to the value encoded by the 48-byte
// big-endian buffer src and returns s. If src encodes an integer not
// strictly lower than n, it returns nil and ErrNonCanonicalEncoding,
// and s is unchanged. The canonicality check is constant-time with
// respect to the contents of src.
func (s *Scalar) SetCanonicalBytes(src *[48]byte) (*Scalar, error) {
	if isCanonical(src) == 0 {
		return nil, errors.WithStack(ErrNonCanonicalEncoding)
	}
	le := reverse48(src)
	var t [6]uint64
	field.FromBytes(&t, &le)
	field.ToMontgomery((*[6]uint64)(s), &t)
	return s, nil
}

// SetCanonicalBytesLE is SetCanonicalBytes for the little-endian
// encoding.
func (s *Scalar) SetCanonicalBytesLE(src *[48]byte) (*Scalar, error) {
	be := reverse48(src)
	return s.SetCanonicalBytes(&be)
}

// Bytes returns the 48-byte big-endian canonical encoding of s. This is
// the inverse of SetCanonicalBytes.
func (s *Scalar) Bytes() [48]byte {
	var t [6]uint64
	var le [48]byte
	field.FromMontgomery(&t, (*[6]uint64)(s))
	field.ToBytes(&le, &t)
	return reverse48(&le)
}

// BytesLE returns the 48-byte little-endian canonical encoding of s.
func (s *Scalar) BytesLE() [48]byte {
	var t [6]uint64
	var le [48]byte
	field.FromMontgomery(&t, (*[6]uint64)(s))
	field.ToBytes(&le, &t)
	return le
}
