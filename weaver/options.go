package weaver

// Option configures a Weaver.
type Option func(*Weaver)

// WithMarkers substitutes the marker pair used for weaving and extraction.
// The two runes must be distinct; they should be zero-width code points or
// the weaving stops being invisible, but the algorithm does not care.
func WithMarkers(zero, one rune) Option {
	return func(w *Weaver) {
		w.zero, w.one = zero, one
	}
}
