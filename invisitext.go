// Package invisitext hides secret text inside an unmodified-looking carrier
// text by interleaving zero-width Unicode marker characters between words.
//
// Encode packs the secret into a bit-stream (see bitcodec) and weaves one
// invisible marker per inter-word gap into the carrier (see weaver). Decode
// is the exact inverse. The hidden stream is recoverable by anyone who knows
// the marker pair; this is steganography, not encryption.
package invisitext

import (
	"errors"

	"github.com/mohammadd13579/invisitext/bitcodec"
	"github.com/mohammadd13579/invisitext/weaver"
)

var (
	ErrEmptyCarrier = errors.New("carrier text is empty")
	ErrEmptySecret  = errors.New("secret message is empty")
	ErrEmptyInput   = errors.New("input text is empty")

	// ErrNoMessage reports that decoding finished without finding a hidden
	// message: the input held no marker characters, or not enough for one
	// complete byte. Like io.EOF it marks a normal outcome, not a failure.
	ErrNoMessage = errors.New("no hidden message found")
)

// Encode hides secret inside carrier and returns the woven stego text.
// It fails with ErrEmptyCarrier or ErrEmptySecret on blank inputs and with
// a *weaver.CapacityError when the carrier has fewer inter-word gaps than
// the packed secret has bits.
func Encode(carrier, secret string, opts ...Option) (string, error) {
	if carrier == "" {
		return "", ErrEmptyCarrier
	}
	if secret == "" {
		return "", ErrEmptySecret
	}
	cfg := newConfig(opts)
	bits, err := bitcodec.New(cfg.codec...).Pack([]byte(secret))
	if err != nil {
		return "", err
	}
	return weaver.New(cfg.weave...).Weave(carrier, bits)
}

// Decode recovers the secret hidden in stego. It fails with ErrEmptyInput
// on an empty string and with ErrNoMessage when no hidden stream is found;
// any other text decodes without error. Options must match the ones used
// to encode.
func Decode(stego string, opts ...Option) (string, error) {
	if stego == "" {
		return "", ErrEmptyInput
	}
	cfg := newConfig(opts)
	bits := weaver.New(cfg.weave...).Extract(stego)
	if len(bits) == 0 {
		return "", ErrNoMessage
	}
	payload := bitcodec.New(cfg.codec...).Unpack(bits)
	if len(payload) == 0 {
		return "", ErrNoMessage
	}
	return bitcodec.DecodeText(payload), nil
}
