package bitcodec

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

var _ factory = (*rawstream)(nil)

type rawstream struct{}

func (rawstream) encode(bits []bool) []bool { return bits }
func (rawstream) decode(bits []bool) []bool { return bits }

var _ factory = (*shuffledgolay)(nil)

type shuffledgolay int64

func (sg shuffledgolay) encode(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), w.Bits())
	encodedLen := enc.Bits()

	// shuffle
	index := sg.generatePermutation(encodedLen)
	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, encodedLen)
	for i := range out {
		out[i], _ = r.ReadBitAt(index[i])
	}
	return out
}

func (sg shuffledgolay) decode(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	// reverse shuffle: create same permutation then apply inverse
	index := sg.generatePermutation(len(bits))
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		w.WriteBitAt(index[i], bits[i])
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	_ = dec.Decode(&decoded)

	// Codeword padding can append filler bits past the original stream.
	// They decode to trailing bytes after the EOT sentinel and are ignored
	// by the 8-bit group scan.
	return readBits(decoded, len(decoded)*64)
}

func (sg shuffledgolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	seed := int64(sg)
	rd := rand.New(rand.NewSource(seed))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
