// Package sample draws uniform scalars from an explicit randomness source.
package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"

	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	// a randomness source that keeps failing is fatal, not retryable
	panic(ErrMaxIterations)
}

// ModN samples an element of ℤₙ by rejection, so the result carries no
// modulo bias.
func ModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	out := new(saferith.Nat)
	buf := make([]byte, (n.BitLen()+7)/8)
	for {
		mustReadBits(rand, buf)
		out.SetBytes(buf)
		_, _, lt := out.CmpMod(n)
		if lt == 1 {
			break
		}
	}
	return out
}

// Scalar samples a uniform element of [1, n-1].
//
// Zero is rejected: a zero nonce would commit to the identity, which has no
// affine encoding in the transcript.
func Scalar(rand io.Reader) *curve.Scalar {
	var s curve.Scalar
	for {
		s.SetNat(ModN(rand, curve.Order()))
		if !s.IsZero() {
			return &s
		}
	}
}

// ScalarPointPair samples a scalar x and returns it together with x⋅G.
func ScalarPointPair(rand io.Reader) (*curve.Scalar, *curve.Point) {
	s := Scalar(rand)
	p := curve.NewIdentityPoint().ScalarBaseMult(s)
	return s, p
}
