// Package analysis reports what a carrier can hold and what a stego text
// actually holds: capacity, token statistics, marker distribution, and
// whether the hidden stream survives Unicode normalization.
package analysis

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gonum.org/v1/gonum/stat"

	"github.com/mohammadd13579/invisitext/internal/bitconv"
	"github.com/mohammadd13579/invisitext/weaver"
)

// CarrierReport describes the hiding capacity of a carrier text.
type CarrierReport struct {
	Tokens        int
	CapacityBits  int
	CapacityBytes int // payload bytes that fit, terminator included
	MeanTokenLen  float64
	StdevTokenLen float64
}

// Report measures carrier with the same single-space token split the weaver
// uses, so CapacityBits is exactly what Weave will enforce.
func Report(carrier string) CarrierReport {
	tokens := strings.Split(carrier, " ")
	lens := make([]float64, len(tokens))
	for i, token := range tokens {
		lens[i] = float64(len([]rune(token)))
	}
	r := CarrierReport{
		Tokens:        len(tokens),
		CapacityBits:  len(tokens) - 1,
		MeanTokenLen:  stat.Mean(lens, nil),
		StdevTokenLen: stat.StdDev(lens, nil),
	}
	if n := r.CapacityBits / 8; n > 0 {
		r.CapacityBytes = n
	}
	return r
}

// StegoReport describes the marker content of a stego text.
type StegoReport struct {
	Markers    int
	Zeros      int
	Ones       int
	BitEntropy float64 // Shannon entropy of the zero/one split, in nats
	Density    float64 // markers per inter-token gap
	Stream     string  // the extracted stream as '0'/'1' digits
}

// Inspect extracts the default-marker stream from stego and summarizes it.
// Plain text with no markers yields the zero report.
func Inspect(stego string) StegoReport {
	bits := weaver.Extract(stego)
	rep := StegoReport{
		Markers: len(bits),
		Stream:  bitconv.BitsToString(bits),
	}
	for _, b := range bits {
		if b {
			rep.Ones++
		}
	}
	rep.Zeros = rep.Markers - rep.Ones
	if gaps := strings.Count(stego, " "); gaps > 0 {
		rep.Density = float64(rep.Markers) / float64(gaps)
	}
	if rep.Markers > 0 {
		n := float64(rep.Markers)
		rep.BitEntropy = stat.Entropy([]float64{float64(rep.Zeros) / n, float64(rep.Ones) / n})
	}
	return rep
}

// SurvivesNormalization reports whether applying form leaves the hidden
// stream intact. Weaving makes no attempt to resist text normalization;
// this check only makes the damage visible before a stego text is sent
// through a pipeline that normalizes.
func SurvivesNormalization(stego string, form norm.Form) bool {
	return slices.Equal(weaver.Extract(stego), weaver.Extract(form.String(stego)))
}
