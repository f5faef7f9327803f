package curve

import (
	"io"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/taurusgroup/dlog-proof/internal/params"
)

// Scalar is an element of ℤₙ, where n is the prime order of the secp256k1
// group. The zero value is the scalar 0.
type Scalar struct {
	s secp256k1.ModNScalar
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Set sets s = x, and returns s.
func (s *Scalar) Set(x *Scalar) *Scalar {
	s.s.Set(&x.s)
	return s
}

// SetUInt32 sets s = i, and returns s.
func (s *Scalar) SetUInt32(i uint32) *Scalar {
	s.s.SetInt(i)
	return s
}

// SetNat sets s = x mod n, and returns s.
func (s *Scalar) SetNat(x *saferith.Nat) *Scalar {
	buf := make([]byte, params.BytesScalar)
	x.FillBytes(buf)
	s.s.SetByteSlice(buf)
	return s
}

// SetHash interprets digest as a big-endian unsigned integer, reduces it
// mod n, and sets s to the result.
//
// This is the digest reduction used for the Fiat–Shamir challenge. The bias
// introduced by the reduction is negligible because n is close to 2²⁵⁶.
func (s *Scalar) SetHash(digest []byte) *Scalar {
	s.s.SetByteSlice(digest)
	return s
}

// Add sets s = x + y mod n, and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	var r secp256k1.ModNScalar
	r.Set(&x.s)
	r.Add(&y.s)
	s.s.Set(&r)
	return s
}

// Subtract sets s = x - y mod n, and returns s.
func (s *Scalar) Subtract(x, y *Scalar) *Scalar {
	var r secp256k1.ModNScalar
	r.Set(&y.s)
	r.Negate()
	r.Add(&x.s)
	s.s.Set(&r)
	return s
}

// Multiply sets s = x * y mod n, and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	var r secp256k1.ModNScalar
	r.Set(&x.s)
	r.Mul(&y.s)
	s.s.Set(&r)
	return s
}

// MultiplyAdd sets s = x * y + z mod n, and returns s.
func (s *Scalar) MultiplyAdd(x, y, z *Scalar) *Scalar {
	var r secp256k1.ModNScalar
	r.Set(&x.s)
	r.Mul(&y.s)
	r.Add(&z.s)
	s.s.Set(&r)
	return s
}

// Negate sets s = -x mod n, and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	s.s.Set(&x.s)
	s.s.Negate()
	return s
}

// Invert sets s to the inverse of a nonzero scalar x, and returns s.
func (s *Scalar) Invert(x *Scalar) *Scalar {
	s.s.InverseValNonConst(&x.s)
	return s
}

// Equal returns true if s and t represent the same element of ℤₙ.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.s.Equals(&t.s)
}

// IsZero returns true if s is 0.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	buf := make([]byte, params.BytesScalar)
	s.s.PutBytesUnchecked(buf)
	return buf
}

// WriteTo implements io.WriterTo. It writes the canonical encoding of s.
func (s *Scalar) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}
