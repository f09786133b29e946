// Package bitconv packs bits into bytes and back, most significant bit first.
package bitconv

func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, ((bb>>uint(i))&1) == 1)
		}
	}
	return bits
}

// BoolsToBytes packs bits, padding the last byte with zero bits.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	pack(bits, out)
	return out
}

// WholeBytes packs only the len(bits)/8 complete bytes and drops any
// trailing partial byte.
func WholeBytes(bits []bool) []byte {
	out := make([]byte, len(bits)/8)
	pack(bits[:len(out)*8], out)
	return out
}

func pack(bits []bool, out []byte) {
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
}
