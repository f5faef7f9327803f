package dlog

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
)

// proofMarshal is the wire container: a map with exactly two byte-string
// fields holding the canonical encodings of the commitment and the response.
type proofMarshal struct {
	T []byte `cbor:"t"`
	S []byte `cbor:"s"`
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The output length is fixed: one 65-byte uncompressed point under "t" and
// one 32-byte big-endian scalar under "s".
func (p *Proof) MarshalBinary() ([]byte, error) {
	if p.T == nil || p.S == nil {
		return nil, errors.New("dlog: cannot marshal incomplete proof")
	}
	t, err := p.T.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("dlog: commitment: %w", err)
	}
	s, err := p.S.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("dlog: response: %w", err)
	}
	return cbor.Marshal(&proofMarshal{T: t, S: s})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Decoding is byte-exact: a reconstructed proof re-encodes to the identical
// bytes. Malformed fields fail with an error wrapping curve.ErrInvalidPoint
// or curve.ErrInvalidScalar; nothing is ever coerced.
func (p *Proof) UnmarshalBinary(data []byte) error {
	var pm proofMarshal
	if err := cbor.Unmarshal(data, &pm); err != nil {
		return fmt.Errorf("dlog: %w", err)
	}

	t := curve.NewIdentityPoint()
	if err := t.UnmarshalBinary(pm.T); err != nil {
		return fmt.Errorf("dlog: commitment: %w", err)
	}
	s := curve.NewScalar()
	if err := s.UnmarshalBinary(pm.S); err != nil {
		return fmt.Errorf("dlog: response: %w", err)
	}

	p.T = t
	p.S = s
	return nil
}
