package hash

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
)

func TestWriteAnyMatchesRawTranscript(t *testing.T) {
	g := curve.NewBasePoint()
	gBytes, err := g.MarshalBinary()
	require.NoError(t, err)

	h := New()
	require.NoError(t, h.WriteAny("sid", uint32(1), []*curve.Point{g}))

	var transcript []byte
	transcript = append(transcript, []byte("sid")...)
	transcript = append(transcript, 0, 0, 0, 1)
	transcript = append(transcript, gBytes...)
	expected := sha256.Sum256(transcript)

	assert.Equal(t, expected[:], h.Sum())
}

func TestWriteAnyDeterministic(t *testing.T) {
	write := func(sid string, pid uint32) []byte {
		h := New()
		require.NoError(t, h.WriteAny(sid, pid, curve.NewBasePoint()))
		return h.Sum()
	}

	assert.Equal(t, write("sid", 1), write("sid", 1))
	assert.NotEqual(t, write("sid", 1), write("sid", 2))
	assert.NotEqual(t, write("sid", 1), write("dis", 1))
}

func TestSumDoesNotFinalize(t *testing.T) {
	h := New()
	require.NoError(t, h.WriteAny([]byte("a")))
	first := h.Sum()
	assert.Equal(t, first, h.Sum(), "Sum must not disturb the state")

	require.NoError(t, h.WriteAny([]byte("b")))
	assert.NotEqual(t, first, h.Sum())
}

func TestWriteAnyIdentityPoint(t *testing.T) {
	err := New().WriteAny([]*curve.Point{curve.NewIdentityPoint()})
	assert.Error(t, err, "the identity has no canonical encoding")
}

func TestWriteAnyUnsupportedType(t *testing.T) {
	assert.Panics(t, func() {
		_ = New().WriteAny(struct{}{})
	})
}
