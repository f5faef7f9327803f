// Package hash accumulates the bytes of a Fiat–Shamir transcript.
package hash

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
)

// DigestLengthBytes is the length of the output of Sum.
const DigestLengthBytes = sha256.Size

// Hash wraps SHA-256 for use as the random oracle of the proof transcript.
//
// Components are written as raw bytes, in order, with no framing: the
// caller's write order is the contract, and two transcripts are equal exactly
// when their concatenated bytes are equal.
type Hash struct {
	h hash.Hash
}

// New creates a Hash with an empty transcript.
func New() *Hash {
	return &Hash{h: sha256.New()}
}

// Write writes data to the hash state. Implements io.Writer.
func (hash *Hash) Write(data []byte) (int, error) {
	// the underlying hash function never returns an error
	return hash.h.Write(data)
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte, string: raw bytes
//   - uint32: 4 bytes, big-endian
//   - io.WriterTo, []*curve.Point: the type's own canonical encoding
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			_, _ = hash.h.Write(t)
		case string:
			_, _ = io.WriteString(hash.h, t)
		case uint32:
			var buf [4]byte
			binary.BigEndian.PutUint32(buf[:], t)
			_, _ = hash.h.Write(buf[:])
		case []*curve.Point:
			for _, p := range t {
				if _, err := p.WriteTo(hash.h); err != nil {
					return fmt.Errorf("hash.Hash: write []*curve.Point: %w", err)
				}
			}
		case io.WriterTo:
			if _, err := t.WriteTo(hash.h); err != nil {
				return fmt.Errorf("hash.Hash: write io.WriterTo: %w", err)
			}
		default:
			panic("hash.Hash: unsupported type")
		}
	}
	return nil
}

// Sum returns the digest of everything written so far, without disturbing the
// current state.
func (hash *Hash) Sum() []byte {
	return hash.h.Sum(nil)
}
