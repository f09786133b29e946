package yuv

import "math"

// Analog YUV with both chroma channels shifted into the 8-bit range.
// https://en.wikipedia.org/wiki/Y%E2%80%B2UV#SDTV_with_BT.470

const delta = 127.5

const (
	yr, yg, yb = 0.29900, 0.58700, 0.11400
	ur, ug, ub = -0.14713, -0.28886, 0.436
	vr, vg, vb = 0.615, -0.51499, -0.10001
)

const (
	rv = 1.13983
	gu = -0.39465
	gv = -0.58060
	bu = 2.03211
)

// ToChromaBatch converts interleaved RGB samples in src into interleaved
// Y, U, V samples in dst. Both slices hold 3 samples per pixel.
func ToChromaBatch(src, dst []uint8) {
	for i := 0; i+2 < len(src); i += 3 {
		r := float64(src[i])
		g := float64(src[i+1])
		b := float64(src[i+2])

		dst[i] = Clip8(yr*r + yg*g + yb*b)
		dst[i+1] = Clip8(ur*r + ug*g + ub*b + delta)
		dst[i+2] = Clip8(vr*r + vg*g + vb*b + delta)
	}
}

// ToRGBBatch is the inverse of ToChromaBatch.
func ToRGBBatch(src, dst []uint8) {
	for i := 0; i+2 < len(src); i += 3 {
		y := float64(src[i])
		u := float64(src[i+1]) - delta
		v := float64(src[i+2]) - delta

		dst[i] = Clip8(y + rv*v)
		dst[i+1] = Clip8(y + gu*u + gv*v)
		dst[i+2] = Clip8(y + bu*u)
	}
}

// Clip8 clips v to [0, 255] and rounds half to even.
func Clip8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// Forward returns the RGB -> YUV matrix, rows are output channels.
func Forward() [3][3]float64 {
	return [3][3]float64{
		{yr, yg, yb},
		{ur, ug, ub},
		{vr, vg, vb},
	}
}

// Inverse returns the YUV -> RGB matrix, rows are output channels.
func Inverse() [3][3]float64 {
	return [3][3]float64{
		{1, 0, rv},
		{1, gu, gv},
		{1, bu, 0},
	}
}
