package bitcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yyyoichi/golay"
)

func TestShuffledGolay(t *testing.T) {
	t.Run("encoded length matches golay expansion", func(t *testing.T) {
		payload := []byte("Hi")
		bits, err := New(WithGolay(DefaultShuffleSeed)).Pack(payload)
		assert.NoError(t, err)
		assert.Len(t, bits, golay.EncodedBits((len(payload)+1)*8))
	})

	t.Run("round trip", func(t *testing.T) {
		for _, payload := range [][]byte{
			[]byte("Hi"),
			[]byte("hello world!"),
			[]byte("こんにちは"),
		} {
			c := New(WithGolay(DefaultShuffleSeed))
			bits, err := c.Pack(payload)
			assert.NoError(t, err)
			assert.Equal(t, payload, c.Unpack(bits))
		}
	})

	t.Run("corrects a flipped bit", func(t *testing.T) {
		c := New(WithGolay(DefaultShuffleSeed))
		bits, err := c.Pack([]byte("Hi"))
		assert.NoError(t, err)
		bits[0] = !bits[0]
		assert.Equal(t, []byte("Hi"), c.Unpack(bits))
	})

	t.Run("deterministic per seed", func(t *testing.T) {
		a, err := New(WithGolay(42)).Pack([]byte("Hi"))
		assert.NoError(t, err)
		b, err := New(WithGolay(42)).Pack([]byte("Hi"))
		assert.NoError(t, err)
		assert.Equal(t, a, b)

		other, err := New(WithGolay(43)).Pack([]byte("Hi"))
		assert.NoError(t, err)
		assert.NotEqual(t, a, other)
	})

	t.Run("empty stream decodes to nothing", func(t *testing.T) {
		c := New(WithGolay(DefaultShuffleSeed))
		assert.Nil(t, c.Unpack(nil))
	})

	t.Run("WithoutECC keeps the raw stream", func(t *testing.T) {
		raw, err := Pack([]byte("Hi"))
		assert.NoError(t, err)
		bits, err := New(WithoutECC()).Pack([]byte("Hi"))
		assert.NoError(t, err)
		assert.Equal(t, raw, bits)
	})
}
