package watermark

import "math"

// Locate returns the row-major index of the coefficient that carries the bit:
// the largest magnitude in the block, ignoring index 0. Ties resolve to the
// first index.
func Locate(block []float64) int {
	pos := 1
	best := math.Abs(block[1])
	for i := 2; i < len(block); i++ {
		if v := math.Abs(block[i]); v > best {
			pos, best = i, v
		}
	}
	return pos
}

// EmbedBit quantizes the located coefficient so that its magnitude sits a
// quarter (bit 0) or three quarters (bit 1) into its quantization step.
// The sign is kept. scale must be positive.
func EmbedBit(block []float64, bit bool, scale float64) {
	pos := Locate(block)
	v := block[pos]
	q := math.Floor(math.Abs(v) / scale)
	offset := 0.25
	if bit {
		offset += 0.5
	}
	m := (q + offset) * scale
	if v < 0 {
		m = -m
	}
	block[pos] = m
}

// InferBit reads back the bit EmbedBit wrote, from the residue of the
// located coefficient's magnitude within its quantization step.
func InferBit(block []float64, scale float64) bool {
	v := block[Locate(block)]
	return math.Mod(math.Abs(v), scale) > 0.5*scale
}
