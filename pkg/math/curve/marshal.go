package curve

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/taurusgroup/dlog-proof/internal/params"
)

var (
	// ErrInvalidPoint indicates bytes that do not encode a finite point on
	// the curve.
	ErrInvalidPoint = errors.New("curve: invalid point encoding")

	// ErrInvalidScalar indicates bytes that do not encode a canonical
	// element of ℤₙ.
	ErrInvalidScalar = errors.New("curve: invalid scalar encoding")
)

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is the fixed-width big-endian value of s.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// It requires exactly 32 bytes holding a value < n.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesScalar {
		return fmt.Errorf("%w: unexpected length %d", ErrInvalidScalar, len(data))
	}
	var exact [params.BytesScalar]byte
	copy(exact[:], data)
	var scalar secp256k1.ModNScalar
	if scalar.SetBytes(&exact) != 0 {
		return fmt.Errorf("%w: value is not reduced mod n", ErrInvalidScalar)
	}
	s.s.Set(&scalar)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Scalar) MarshalJSON() ([]byte, error) {
	data, _ := s.MarshalBinary()
	return json.Marshal(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(bytes []byte) error {
	var data []byte
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("curve.Scalar: %w", err)
	}
	return s.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is the 65-byte uncompressed affine form 0x04 ∥ x ∥ y. The
// identity has no affine encoding and fails explicitly.
func (v *Point) MarshalBinary() ([]byte, error) {
	if v == nil || v.IsIdentity() {
		return nil, fmt.Errorf("%w: the identity has no affine encoding", ErrInvalidPoint)
	}
	v.toAffine()
	data := make([]byte, params.BytesPoint)
	data[0] = secp256k1.PubKeyFormatUncompressed
	v.p.X.PutBytesUnchecked(data[1 : 1+params.BytesCoordinate])
	v.p.Y.PutBytesUnchecked(data[1+params.BytesCoordinate:])
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// It requires the 65-byte uncompressed form with reduced coordinates that
// satisfy the curve equation.
func (v *Point) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesPoint {
		return fmt.Errorf("%w: unexpected length %d", ErrInvalidPoint, len(data))
	}
	if data[0] != secp256k1.PubKeyFormatUncompressed {
		return fmt.Errorf("%w: unexpected format byte %#x", ErrInvalidPoint, data[0])
	}

	var x, y secp256k1.FieldVal
	if x.SetByteSlice(data[1 : 1+params.BytesCoordinate]) {
		return fmt.Errorf("%w: x coordinate is not reduced", ErrInvalidPoint)
	}
	if y.SetByteSlice(data[1+params.BytesCoordinate:]) {
		return fmt.Errorf("%w: y coordinate is not reduced", ErrInvalidPoint)
	}

	// y² = x³ + 7
	var lhs, rhs secp256k1.FieldVal
	lhs.SquareVal(&y).Normalize()
	rhs.SquareVal(&x).Mul(&x).AddInt(7).Normalize()
	if !lhs.Equals(&rhs) {
		return fmt.Errorf("%w: coordinates are not on the curve", ErrInvalidPoint)
	}

	v.p.X.Set(&x)
	v.p.Y.Set(&y)
	v.p.Z.SetInt(1)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v *Point) MarshalJSON() ([]byte, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Point) UnmarshalJSON(bytes []byte) error {
	var data []byte
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("curve.Point: %w", err)
	}
	return v.UnmarshalBinary(data)
}
