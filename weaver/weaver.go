// Package weaver interleaves a bit-stream into carrier text as zero-width
// marker characters, one bit per inter-word gap, and extracts it back.
package weaver

import (
	"errors"
	"fmt"
	"strings"
)

// The two marker code points, one per bit value. Both render as zero-width,
// so a woven text is visually identical to its carrier.
const (
	// ZeroMarker is U+200B ZERO WIDTH SPACE and represents bit 0.
	ZeroMarker rune = '​'
	// OneMarker is U+200C ZERO WIDTH NON-JOINER and represents bit 1.
	OneMarker rune = '‌'
)

var ErrInsufficientCapacity = errors.New("insufficient carrier capacity")

// CapacityError reports a carrier too short for the bit-stream it should
// hide. It carries both sizes so a caller can choose a longer carrier.
// errors.Is(err, ErrInsufficientCapacity) matches it.
type CapacityError struct {
	Capacity int // bits the carrier can hold
	Required int // bits the stream needs
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient carrier capacity: %d bits available, %d bits required", e.Capacity, e.Required)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}

// Weaver embeds and extracts marker characters. The zero value is not
// usable; construct with New.
type Weaver struct {
	zero, one rune
}

// New returns a Weaver with the default marker pair, or the pair supplied
// via WithMarkers.
func New(opts ...Option) *Weaver {
	w := &Weaver{zero: ZeroMarker, one: OneMarker}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Capacity returns the number of bits carrier can hide: one per inter-token
// gap, splitting on the single literal space character only. Tabs, newlines
// and consecutive spaces are token content, not separators; an empty string
// has capacity 0.
func Capacity(carrier string) int {
	return strings.Count(carrier, " ")
}

// Weave hides bits inside carrier. Each token is emitted followed by the
// marker for its bit while bits remain, and tokens are rejoined with single
// spaces, so the visible text is exactly the carrier's tokens. Fails with a
// *CapacityError when the stream does not fit.
func (w *Weaver) Weave(carrier string, bits []bool) (string, error) {
	tokens := strings.Split(carrier, " ")
	capacity := len(tokens) - 1
	if len(bits) > capacity {
		return "", &CapacityError{Capacity: capacity, Required: len(bits)}
	}
	var sb strings.Builder
	sb.Grow(len(carrier) + len(bits)*3)
	for i, token := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(token)
		if i < len(bits) {
			if bits[i] {
				sb.WriteRune(w.one)
			} else {
				sb.WriteRune(w.zero)
			}
		}
	}
	return sb.String(), nil
}

// Extract scans stego rune by rune and collects the marker characters into
// a bit-stream, in the order they appear. Every other character is inert.
// Extract is pure and total: any input yields a well-defined, possibly
// empty, stream.
func (w *Weaver) Extract(stego string) []bool {
	var bits []bool
	for _, r := range stego {
		switch r {
		case w.zero:
			bits = append(bits, false)
		case w.one:
			bits = append(bits, true)
		}
	}
	return bits
}

// Weave hides bits inside carrier using the default marker pair.
func Weave(carrier string, bits []bool) (string, error) {
	return New().Weave(carrier, bits)
}

// Extract collects default-marker bits from stego.
func Extract(stego string) []bool {
	return New().Extract(stego)
}
