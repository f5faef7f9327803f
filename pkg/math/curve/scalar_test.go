package curve

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taurusgroup/dlog-proof/internal/params"
)

func randomScalarForTest(t *testing.T) *Scalar {
	t.Helper()
	buf := make([]byte, params.BytesScalar)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return NewScalar().SetHash(buf)
}

func TestScalarArithmetic(t *testing.T) {
	one := NewScalar().SetUInt32(1)
	two := NewScalar().SetUInt32(2)
	three := NewScalar().SetUInt32(3)

	assert.True(t, NewScalar().Add(one, one).Equal(two), "1+1")
	assert.True(t, NewScalar().Subtract(three, one).Equal(two), "3-1")
	assert.True(t, NewScalar().Multiply(two, three).Equal(NewScalar().SetUInt32(6)), "2*3")
	assert.True(t, NewScalar().MultiplyAdd(two, three, one).Equal(NewScalar().SetUInt32(7)), "2*3+1")

	x := randomScalarForTest(t)
	assert.True(t, NewScalar().Add(x, NewScalar().Negate(x)).IsZero(), "x + (-x)")
	assert.True(t, NewScalar().Subtract(x, x).IsZero(), "x - x")
	assert.True(t, NewScalar().Multiply(x, NewScalar().Invert(x)).Equal(one), "x * x⁻¹")
}

func TestScalarSetHashReduces(t *testing.T) {
	// 2²⁵⁶ - 1 is above n and must come back reduced.
	digest := bytes.Repeat([]byte{0xff}, params.BytesScalar)
	s := NewScalar().SetHash(digest)
	assert.False(t, bytes.Equal(digest, s.Bytes()), "value above n must be reduced")

	// a digest below n is taken as-is
	small := make([]byte, params.BytesScalar)
	small[params.BytesScalar-1] = 42
	assert.Equal(t, small, NewScalar().SetHash(small).Bytes())

	// same digest, same scalar
	assert.True(t, NewScalar().SetHash(digest).Equal(s))
}

func TestScalarMarshalRoundTrip(t *testing.T) {
	x := randomScalarForTest(t)

	data, err := x.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, params.BytesScalar)

	decoded := NewScalar()
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.True(t, x.Equal(decoded))
}

func TestScalarUnmarshalRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", make([]byte, params.BytesScalar-1)},
		{"long", make([]byte, params.BytesScalar+1)},
		{"order n", mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")},
		{"all ones", bytes.Repeat([]byte{0xff}, params.BytesScalar)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewScalar().UnmarshalBinary(tc.data)
			assert.ErrorIs(t, err, ErrInvalidScalar)
		})
	}
}

func TestScalarWriteTo(t *testing.T) {
	x := randomScalarForTest(t)

	var buf bytes.Buffer
	n, err := x.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, params.BytesScalar, n)
	assert.Equal(t, x.Bytes(), buf.Bytes())
}
