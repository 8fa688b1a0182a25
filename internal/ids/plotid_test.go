package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	c, err := NewCodec("feedback-salt")
	require.NoError(t, err)

	seen := map[string]bool{}
	for n := 1; n <= 50; n++ {
		id, err := c.Encode(n)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(id), minLength)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		got, err := c.Decode(id)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestCodecSaltMatters(t *testing.T) {
	a, err := NewCodec("one")
	require.NoError(t, err)
	b, err := NewCodec("two")
	require.NoError(t, err)

	idA, err := a.Encode(7)
	require.NoError(t, err)
	idB, err := b.Encode(7)
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)
}

func TestDecodeInvalid(t *testing.T) {
	c, err := NewCodec("feedback-salt")
	require.NoError(t, err)

	_, err = c.Decode("!!!")
	assert.ErrorIs(t, err, ErrInvalidID)
}
