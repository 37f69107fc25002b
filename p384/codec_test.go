package p384

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecSmallValue(t *testing.T) {
	var buf [48]byte
	buf[47] = 42
	s, err := NewScalar().SetCanonicalBytes(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Equal(NewScalar().SetUint64(42)))
	assert.Equal(t, buf, s.Bytes())

	var le [48]byte
	le[0] = 42
	s2, err := NewScalar().SetCanonicalBytesLE(&le)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s2.Equal(s))
	assert.Equal(t, le, s2.BytesLE())
}

func TestCodecRoundtrip(t *testing.T) {
	var rng prng
	rng.init("test codec roundtrip")
	for i := 0; i < 1000; i++ {
		a, za := rng.mkscalar()
		bb := a.Bytes()
		var zb big.Int
		zb.SetBytes(bb[:])
		if za.Cmp(&zb) != 0 {
			t.Fatalf("ERR encode: %s -> %x", za, bb)
		}
		d, err := NewScalar().SetCanonicalBytes(&bb)
		if err != nil || d.Equal(a) != 1 {
			t.Fatalf("ERR decode: %x -> %v, %v", bb, d, err)
		}
		lb := a.BytesLE()
		e, err := NewScalar().SetCanonicalBytesLE(&lb)
		if err != nil || e.Equal(a) != 1 {
			t.Fatalf("ERR decode LE: %x -> %v, %v", lb, e, err)
		}
	}
}

func TestCodecNonCanonical(t *testing.T) {
	// The order itself is the lowest non-canonical value.
	_, err := NewScalar().SetCanonicalBytes(&orderBytes)
	require.ErrorIs(t, err, ErrNonCanonicalEncoding)

	// n - 1 is the highest canonical value.
	nm1 := new(big.Int).Sub(order(), big.NewInt(1))
	var buf [48]byte
	nm1.FillBytes(buf[:])
	s, err := NewScalar().SetCanonicalBytes(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), NewScalar().Add(s, NewScalar().One()).IsZero())

	// All-ones is far above n.
	for i := range buf {
		buf[i] = 0xFF
	}
	_, err = NewScalar().SetCanonicalBytes(&buf)
	require.ErrorIs(t, err, ErrNonCanonicalEncoding)

	// Values of the form n + k for small k must be rejected too.
	for k := int64(0); k < 100; k++ {
		z := new(big.Int).Add(order(), big.NewInt(k))
		z.FillBytes(buf[:])
		_, err = NewScalar().SetCanonicalBytes(&buf)
		require.ErrorIs(t, err, ErrNonCanonicalEncoding, "n + %d accepted", k)
	}
}

func TestCodecZero(t *testing.T) {
	var buf [48]byte
	s, err := NewScalar().SetCanonicalBytes(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.IsZero())
	assert.Equal(t, buf, s.Bytes())
}
