package invisitext

import (
	"github.com/mohammadd13579/invisitext/bitcodec"
	"github.com/mohammadd13579/invisitext/weaver"
)

type (
	// Option configures both pipeline stages for one Encode or Decode call.
	Option func(*config)
	config struct {
		codec []bitcodec.Option
		weave []weaver.Option
	}
)

// WithMarkers substitutes the zero/one marker pair used for weaving and
// extraction. Both sides of a round trip must use the same pair.
func WithMarkers(zero, one rune) Option {
	return func(c *config) {
		c.weave = append(c.weave, weaver.WithMarkers(zero, one))
	}
}

// WithGolay protects the packed bit-stream with Golay error correction,
// shuffled deterministically by seed. Decoding requires the same seed.
func WithGolay(seed int64) Option {
	return func(c *config) {
		c.codec = append(c.codec, bitcodec.WithGolay(seed))
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
