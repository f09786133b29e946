package strmark

import (
	"unicode/utf8"

	"github.com/yyyoichi/watermark_maxdwt/internal/bitconv"
	"golang.org/x/text/transform"
)

// Encode encodes the input string into a slice of booleans representing bits.
func Encode(src string) []bool {
	return bitconv.BytesToBools([]byte(src))
}

// Decode packs the whole bytes of mark and reads them as UTF-8, replacing
// every maximal invalid subsequence with U+FFFD. A trailing partial byte is
// dropped.
func Decode(mark []bool) string {
	return Lossy(bitconv.WholeBytes(mark))
}

// Lossy reads b as UTF-8 the way Decode does.
func Lossy(b []byte) string {
	out, _, err := transform.Bytes(Replacer(), b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

var _ Mark = (*StrMark)(nil)

// StrMark embeds the UTF-8 bytes of the payload without framing.
type StrMark struct{}

func New() *StrMark {
	return &StrMark{}
}

func (*StrMark) Encode(src string) []bool {
	return Encode(src)
}

func (*StrMark) Len(size int) int {
	return size
}

// Decode reads the first size bits as text.
func (*StrMark) Decode(bits []bool, size int) string {
	if size < len(bits) {
		bits = bits[:size]
	}
	return Decode(bits)
}

// Replacer returns a transformer that keeps valid UTF-8 and writes one
// U+FFFD for every maximal subpart of an ill-formed sequence: a lead byte
// followed by the continuation bytes it accepts, cut short by a byte it does
// not accept or by the end of input.
func Replacer() transform.Transformer {
	return replacer{}
}

type replacer struct{ transform.NopResetter }

const replacement = "\uFFFD"

func (replacer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r != utf8.RuneError || size > 1 {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst+len(replacement) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], replacement)
		nSrc += invalidSpan(src[nSrc:])
	}
	return nDst, nSrc, nil
}

// invalidSpan returns the length of the ill-formed subpart that starts p.
func invalidSpan(p []byte) int {
	lo, hi, need := byte(0x80), byte(0xBF), 0
	switch b := p[0]; {
	case b >= 0xC2 && b <= 0xDF:
		need = 1
	case b == 0xE0:
		lo, need = 0xA0, 2
	case b == 0xED:
		hi, need = 0x9F, 2
	case b >= 0xE1 && b <= 0xEF:
		need = 2
	case b == 0xF0:
		lo, need = 0x90, 3
	case b == 0xF4:
		hi, need = 0x8F, 3
	case b >= 0xF1 && b <= 0xF3:
		need = 3
	default:
		return 1
	}
	n := 1
	for n <= need && n < len(p) {
		if c := p[n]; c < lo || c > hi {
			break
		}
		lo, hi = 0x80, 0xBF
		n++
	}
	return n
}
