package invisitext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohammadd13579/invisitext"
	"github.com/mohammadd13579/invisitext/weaver"
)

// carrier25 has 25 space-separated tokens, i.e. 24 inter-word gaps: exactly
// enough for a two-byte secret plus the terminator byte.
const carrier25 = "the quick brown fox jumps over the lazy dog while counting all of its many secret words one by one across the wide open field"

func stripMarkers(s string) string {
	return strings.Map(func(r rune) rune {
		if r == weaver.ZeroMarker || r == weaver.OneMarker {
			return -1
		}
		return r
	}, s)
}

func TestEncode(t *testing.T) {
	t.Run("empty inputs", func(t *testing.T) {
		_, err := invisitext.Encode("", "secret")
		assert.ErrorIs(t, err, invisitext.ErrEmptyCarrier)

		_, err = invisitext.Encode("some carrier text", "")
		assert.ErrorIs(t, err, invisitext.ErrEmptySecret)
	})

	t.Run("ten tokens cannot hold two secret bytes", func(t *testing.T) {
		_, err := invisitext.Encode("a b c d e f g h i j", "Hi")
		assert.ErrorIs(t, err, weaver.ErrInsufficientCapacity)

		var capErr *weaver.CapacityError
		assert.ErrorAs(t, err, &capErr)
		assert.Equal(t, 9, capErr.Capacity)
		assert.Equal(t, 24, capErr.Required)
	})

	t.Run("stego text is visually the carrier", func(t *testing.T) {
		stego, err := invisitext.Encode(carrier25, "Hi")
		assert.NoError(t, err)
		assert.NotEqual(t, carrier25, stego)
		assert.Equal(t, carrier25, stripMarkers(stego))
		assert.Equal(t, strings.Fields(carrier25), strings.Fields(stripMarkers(stego)))
	})
}

func TestDecode(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := invisitext.Decode("")
		assert.ErrorIs(t, err, invisitext.ErrEmptyInput)
	})

	t.Run("plain text has no message", func(t *testing.T) {
		_, err := invisitext.Decode("nothing hidden in this sentence at all")
		assert.ErrorIs(t, err, invisitext.ErrNoMessage)
	})

	t.Run("fewer markers than a byte has no message", func(t *testing.T) {
		_, err := invisitext.Decode("x​ y‌ z")
		assert.ErrorIs(t, err, invisitext.ErrNoMessage)
	})
}

func TestRoundTrip(t *testing.T) {
	longCarrier := strings.TrimSpace(strings.Repeat("lorem ipsum dolor sit amet ", 40))

	test := []struct {
		name    string
		carrier string
		secret  string
	}{
		{"two ascii bytes", carrier25, "Hi"},
		{"single byte", carrier25, "a"},
		{"sentence", longCarrier, "meet me at dawn"},
		{"multibyte utf-8", longCarrier, "こんにちは"},
		{"double spaces in carrier", "a  b  c  d  e  f  g  h  i  j  k  l  m", "!"},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			stego, err := invisitext.Encode(tt.carrier, tt.secret)
			assert.NoError(t, err)

			got, err := invisitext.Decode(stego)
			assert.NoError(t, err)
			assert.Equal(t, tt.secret, got)
		})
	}
}

func TestOptions(t *testing.T) {
	longCarrier := strings.TrimSpace(strings.Repeat("pack my box with five dozen liquor jugs ", 15))

	t.Run("substituted marker pair round trips", func(t *testing.T) {
		opts := []invisitext.Option{invisitext.WithMarkers('⁠', '᠎')}
		stego, err := invisitext.Encode(carrier25, "Hi", opts...)
		assert.NoError(t, err)

		got, err := invisitext.Decode(stego, opts...)
		assert.NoError(t, err)
		assert.Equal(t, "Hi", got)

		// without the matching pair there is nothing to find
		_, err = invisitext.Decode(stego)
		assert.ErrorIs(t, err, invisitext.ErrNoMessage)
	})

	t.Run("golay protected round trip", func(t *testing.T) {
		opts := []invisitext.Option{invisitext.WithGolay(12345)}
		stego, err := invisitext.Encode(longCarrier, "Hi", opts...)
		assert.NoError(t, err)

		got, err := invisitext.Decode(stego, opts...)
		assert.NoError(t, err)
		assert.Equal(t, "Hi", got)
	})

	t.Run("golay survives one damaged marker", func(t *testing.T) {
		opts := []invisitext.Option{invisitext.WithGolay(12345)}
		stego, err := invisitext.Encode(longCarrier, "Hi", opts...)
		assert.NoError(t, err)

		// flip the first marker in the text
		damaged := strings.Replace(
			strings.Replace(stego, string(weaver.ZeroMarker), "\x00", 1),
			"\x00", string(weaver.OneMarker), 1)
		got, err := invisitext.Decode(damaged, opts...)
		assert.NoError(t, err)
		assert.Equal(t, "Hi", got)
	})
}
