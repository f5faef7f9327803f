// Package curve wraps the secp256k1 group behind value types for scalars and
// points, with the canonical encodings the proof transcript relies on.
package curve

import (
	"encoding/hex"

	"github.com/cronokirby/saferith"
)

// q is the prime order n of the group generated by G.
var q *saferith.Modulus

// Order returns the prime order n of the group generated by G.
func Order() *saferith.Modulus {
	return q
}

func init() {
	n, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	q = saferith.ModulusFromBytes(n)
}
