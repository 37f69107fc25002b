package p384

import (
	"io"

	"github.com/pkg/errors"
)

// SetRandom sets s to a scalar drawn uniformly from the full range
// [0, n-1] with bytes read from rng, and returns s. Candidates are
// drawn as 48-byte strings and rejected when not canonical; since n is
// close to 2^384, a rejection happens with probability lower than
// 2^-194 and the loop almost always runs exactly once. The number of
// iterations depends only on whether a candidate was rejected, which
// reveals nothing about the accepted value. An error is returned only
// when rng fails, in which case s is unchanged.
func (s *Scalar) SetRandom(rng io.Reader) (*Scalar, error) {
	var buf [48]byte
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return nil, errors.Wrap(err, "p384: reading random scalar bytes")
		}
		if _, err := s.SetCanonicalBytes(&buf); err == nil {
			return s, nil
		}
	}
}

// SecretKey holds a non-zero scalar meant to be kept secret (e.g. an
// ECDH or ECDSA private key). It exists to give key material a
// distinct type from plain scalars and a place for an explicit
// cleanup step.
type SecretKey struct {
	s Scalar
}

// NewSecretKey generates a secret key with bytes read from rng.
// Generation rejects zero in addition to non-canonical candidates, so
// the resulting scalar is uniform over [1, n-1].
func NewSecretKey(rng io.Reader) (*SecretKey, error) {
	sk := new(SecretKey)
	for {
		if _, err := sk.s.SetRandom(rng); err != nil {
			return nil, err
		}
		if sk.s.IsZero() == 0 {
			return sk, nil
		}
	}
}

// Scalar returns the scalar value of the key. The returned pointer
// aliases the key contents; it is invalidated by Zeroize.
func (sk *SecretKey) Scalar() *Scalar {
	return &sk.s
}

// Zeroize clears the key material.
func (sk *SecretKey) Zeroize() {
	sk.s.Zeroize()
}
