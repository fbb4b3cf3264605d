package bitcodec

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option selects the stream format used by a Codec.
	Option       func(*codecFactory)
	codecFactory struct {
		f factory
	}
	factory interface {
		encode(bits []bool) []bool
		decode(bits []bool) []bool
	}
)

// WithoutECC is an option that does not use error correction codes.
// The packed stream is used as-is. This is the default.
func WithoutECC() Option {
	return func(cf *codecFactory) {
		cf.f = rawstream{}
	}
}

// WithGolay is an option that protects the packed stream with Golay error
// correction. seed drives a deterministic shuffle of the encoded bits so
// that a localized run of damaged markers is spread across codewords.
// Unpacking requires a codec built with the same seed.
func WithGolay(seed int64) Option {
	return func(cf *codecFactory) {
		cf.f = shuffledgolay(seed)
	}
}
