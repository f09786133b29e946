package watermark

// BlockSize is the edge of the square tiles cut from the approximation plane.
type BlockSize int

func (s BlockSize) blockArea() int {
	return int(s) * int(s)
}

// span returns how many of n pixels go through the wavelet stage: the
// largest multiple of 2*s, so the half-resolution plane tiles without
// remainder. Pixels past the span are never read or written.
func (s BlockSize) span(n int) int {
	step := 2 * int(s)
	if step <= 0 {
		return 0
	}
	return n / step * step
}

// TotalBlocks reports how many blocks one channel of a rows x cols image holds.
func (s BlockSize) TotalBlocks(rows, cols int) int {
	b := int(s)
	if b <= 0 {
		return 0
	}
	return (s.span(rows) / 2 / b) * (s.span(cols) / 2 / b)
}

func (s BlockSize) IsZero() bool {
	return s < 2
}

// Scales holds the quantization step of each Y, U, V channel. A zero step
// leaves the channel untouched.
type Scales [3]float64

func (s Scales) IsZero() bool {
	return s[0] <= 0 && s[1] <= 0 && s[2] <= 0
}

// Channels lists the channels that carry the mark.
func (s Scales) Channels() []int {
	var chs []int
	for ch, v := range s {
		if v > 0 {
			chs = append(chs, ch)
		}
	}
	return chs
}
