// Package dlog implements a non-interactive Schnorr proof of knowledge of the
// discrete logarithm x of a public point y = x⋅G over secp256k1.
//
// The interactive protocol is made non-interactive with the Fiat–Shamir
// transform: the challenge is the digest of the session identifier, the
// prover identifier, and the points [G, y, t], bound in that order. The
// identifiers are opaque context; a proof only verifies under the exact
// (sid, pid, y) it was produced for.
package dlog

import (
	"fmt"
	"io"

	"github.com/taurusgroup/dlog-proof/pkg/hash"
	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
	"github.com/taurusgroup/dlog-proof/pkg/math/sample"
)

// Proof is the artifact of one proving session.
//
// A Proof carries no reference to the sid, pid or statement it was produced
// for; the verifier must supply the same values out-of-band. Both fields are
// immutable once the proof is constructed.
type Proof struct {
	// T = r⋅G is the prover's commitment.
	T *curve.Point
	// S = r + c⋅x is the prover's response.
	S *curve.Scalar
}

// HashPoints derives the challenge scalar from the session identifier, the
// 4-byte big-endian prover identifier, and the given points in order.
// Identical inputs yield an identical scalar; swapping two points changes the
// result.
//
// HashPoints panics if asked to bind the identity, which has no affine
// encoding. Finite points never fail.
func HashPoints(sid string, pid uint32, points ...*curve.Point) *curve.Scalar {
	h := hash.New()
	if err := h.WriteAny(sid, pid, points); err != nil {
		panic(fmt.Sprintf("dlog.HashPoints: %v", err))
	}
	return curve.NewScalar().SetHash(h.Sum())
}

// Prove proves knowledge of x such that y = x⋅G.
//
// The commitment nonce is drawn from rand, which must be a cryptographically
// secure source such as crypto/rand.Reader. A fresh nonce is drawn on every
// call: reusing one across two proofs for the same x leaks x.
//
// The caller guarantees y = x⋅G. Violating that precondition with a finite y
// yields a proof that fails verification rather than an error here; a zero x
// makes y the identity, which cannot be bound into the transcript and panics.
func Prove(rand io.Reader, sid string, pid uint32, x *curve.Scalar, y *curve.Point) *Proof {
	r := sample.Scalar(rand)
	t := curve.NewIdentityPoint().ScalarBaseMult(r)
	c := HashPoints(sid, pid, curve.NewBasePoint(), y, t)

	// s = r + c⋅x
	s := curve.NewScalar().MultiplyAdd(c, x, r)

	return &Proof{T: t, S: s}
}

// Verify checks the proof against the statement y under (sid, pid).
//
// It returns false, never an error: a forged proof, a mismatched context and
// a structurally broken proof are the same non-result to the verifier.
func (p *Proof) Verify(sid string, pid uint32, y *curve.Point) bool {
	if p == nil || p.T == nil || p.S == nil || y == nil {
		return false
	}
	if p.T.IsIdentity() || y.IsIdentity() {
		return false
	}

	c := HashPoints(sid, pid, curve.NewBasePoint(), y, p.T)

	// s⋅G = t + c⋅y
	var lhs, rhs curve.Point
	lhs.ScalarBaseMult(p.S)
	rhs.ScalarMult(c, y)
	rhs.Add(&rhs, p.T)

	return lhs.Equal(&rhs)
}
