// Package bitcodec converts message payloads to and from bit-streams.
//
// A bit-stream is an ordered []bool, most-significant bit first within each
// byte. Pack appends a one-byte end-of-transmission sentinel so that Unpack
// knows where the message stops once the stream comes back from a carrier.
package bitcodec

import (
	"errors"
	"strings"

	"github.com/yyyoichi/bitstream-go"
)

// EOT is the sentinel byte appended to every payload before packing.
// Its first appearance on an 8-bit boundary terminates unpacking.
//
// A legitimate payload byte equal to EOT at an aligned position truncates
// the message there. This is a known limitation of the stream format and is
// kept for compatibility; callers that need to carry arbitrary binary data
// must escape it themselves.
const EOT byte = 0x04

var ErrEmptyPayload = errors.New("empty payload")

// Codec packs and unpacks bit-streams. The zero-configuration codec obtained
// from New() uses the raw stream format; WithGolay adds an error correction
// layer on top of it.
type Codec struct {
	f factory
}

// New returns a Codec configured by the given options.
// Without options the stream is packed as-is, with no error correction.
func New(opts ...Option) *Codec {
	var cf codecFactory
	for _, opt := range opts {
		opt(&cf)
	}
	if cf.f == nil {
		cf.f = rawstream{}
	}
	return &Codec{f: cf.f}
}

// Pack converts payload into a bit-stream: the payload bytes followed by the
// EOT sentinel, each emitted as 8 bits MSB-first. The raw stream length is
// always a multiple of 8; an error correction layer may expand it further.
// Packing an empty payload fails with ErrEmptyPayload: an empty stream could
// not carry a terminator.
func (c *Codec) Pack(payload []byte) ([]bool, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range payload {
		w.Write8(0, 8, v)
	}
	w.Write8(0, 8, EOT)
	return c.f.encode(readBits(w.Data(), w.Bits())), nil
}

// Unpack reverses Pack. It reads 8-bit groups in order, discards an
// incomplete trailing group, and stops at the first EOT byte (excluded from
// the result). A stream with no sentinel decodes best-effort to all complete
// bytes; an empty or sub-byte stream yields an empty result. Unpack never
// fails: truncated or corrupted streams degrade, they do not error.
func (c *Codec) Unpack(bits []bool) []byte {
	bits = c.f.decode(bits)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	var out []byte
	for i := 0; (i+1)*8 <= r.Bits(); i++ {
		b := r.Read8R(8, i)
		if b == EOT {
			break
		}
		out = append(out, b)
	}
	return out
}

// Pack converts payload into a raw (no error correction) bit-stream.
func Pack(payload []byte) ([]bool, error) {
	return New().Pack(payload)
}

// Unpack reverses Pack with the raw stream format.
func Unpack(bits []bool) []byte {
	return New().Unpack(bits)
}

// DecodeText interprets payload as UTF-8 text under an explicit lenient
// policy: invalid byte sequences are dropped. It never fails, whatever the
// bytes are.
func DecodeText(payload []byte) string {
	return strings.ToValidUTF8(string(payload), "")
}

func readBits(data []uint64, n int) []bool {
	r := bitstream.NewBitReader(data, 0, 0)
	bits := make([]bool, n)
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}
