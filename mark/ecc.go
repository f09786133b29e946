package mark

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

var _ codec = shuffledgolay(0)

// shuffledgolay protects every 12 payload bits with a Golay(24,12) codeword
// and scatters the codeword bits with a permutation seeded by its value.
type shuffledgolay int64

func (sg shuffledgolay) encode(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	data, n := pack(bits)
	var codewords []uint64
	enc := golay.NewEncoder(&codewords)
	_ = enc.Encode(data, n)
	plain := unpack(codewords, enc.Bits())

	perm := sg.permutation(len(plain))
	out := make([]bool, len(plain))
	for i, from := range perm {
		out[i] = plain[from]
	}
	return out
}

func (sg shuffledgolay) decode(bits []bool, size int) []bool {
	perm := sg.permutation(len(bits))
	plain := make([]bool, len(bits))
	for i, from := range perm {
		plain[from] = bits[i]
	}

	data, n := pack(plain)
	var decoded []uint64
	dec := golay.NewDecoder(data, n)
	_ = dec.Decode(&decoded)
	return unpack(decoded, size)
}

func (sg shuffledgolay) encodedLen(size int) int {
	return golay.EncodedBits(size)
}

// permutation lists, for every output position, the input position it reads.
func (sg shuffledgolay) permutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(sg)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}

var _ codec = withoutecc{}

// withoutecc embeds the payload bits as they are.
type withoutecc struct{}

func (withoutecc) encode(bits []bool) []bool {
	return append([]bool(nil), bits...)
}

func (withoutecc) decode(bits []bool, size int) []bool {
	out := make([]bool, size)
	_ = copy(out, bits)
	return out
}

func (withoutecc) encodedLen(size int) int {
	return size
}

func pack(bits []bool) ([]uint64, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	return w.Data(), w.Bits()
}

// unpack reads n bits; positions past the end of data read as false.
func unpack(data []uint64, n int) []bool {
	r := bitstream.NewBitReader(data, 0, 0)
	bits := make([]bool, n)
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}
