package dwt

import (
	"math"
)

// HaarDWT performs a single-level 2D Haar analysis of the w-pixel-wide plane
// and returns the approximation and the horizontal, vertical and diagonal
// detail sub-bands, each (w+1)/2 by (h+1)/2.
//
// Sub-band samples are written through indexMap, so the caller decides the
// memory layout of the half-resolution planes. A nil map keeps row-major order.
func HaarDWT(data []float64, w int, indexMap []int) [][]float64 {
	h := len(data) / w

	hw, hh := (w+1)/2, (h+1)/2
	l := hw * hh
	cA := make([]float64, l)
	cH := make([]float64, l)
	cV := make([]float64, l)
	cD := make([]float64, l)

	if len(indexMap) != l {
		indexMap = identity(l)
	}

	for y0 := 0; y0 < h; y0 += 2 {
		y1 := y0
		if y0+1 < h {
			y1 = y0 + 1
		}
		for x0 := 0; x0 < w; x0 += 2 {
			x1 := x0
			if x0+1 < w {
				x1 = x0 + 1
			}
			// rows first, then columns
			a1, d1 := cacd(data[y0*w+x0], data[y0*w+x1])
			a2, d2 := cacd(data[y1*w+x0], data[y1*w+x1])

			idx := indexMap[(y0/2)*hw+(x0/2)]
			cA[idx], cH[idx] = cacd(a1, a2)
			cV[idx], cD[idx] = cacd(d1, d2)
		}
	}

	return [][]float64{cA, cH, cV, cD}
}

// HaarIDWT is the exact inverse of HaarDWT for a w by h plane laid out with
// the same indexMap.
func HaarIDWT(result [][]float64, w, h int, indexMap []int) []float64 {
	data := make([]float64, w*h)
	var (
		cA = result[0]
		cH = result[1]
		cV = result[2]
		cD = result[3]
	)
	hw, hh := (w+1)/2, (h+1)/2
	if len(indexMap) != hw*hh {
		indexMap = identity(hw * hh)
	}
	for y0 := 0; y0 < h; y0 += 2 {
		for x0 := 0; x0 < w; x0 += 2 {
			idx := indexMap[(y0/2)*hw+(x0/2)]

			a1, a2 := icacd(cA[idx], cH[idx])
			d1, d2 := icacd(cV[idx], cD[idx])

			v1, v2 := icacd(a1, d1)
			v3, v4 := icacd(a2, d2)

			data[y0*w+x0] = v1
			if x0+1 < w {
				data[y0*w+(x0+1)] = v2
			}
			if y0+1 < h {
				data[(y0+1)*w+x0] = v3
			}
			if y0+1 < h && x0+1 < w {
				data[(y0+1)*w+(x0+1)] = v4
			}
		}
	}
	return data
}

func cacd(v1, v2 float64) (float64, float64) {
	return (v1 + v2) / math.Sqrt2, (v1 - v2) / math.Sqrt2
}

func icacd(a, d float64) (float64, float64) {
	return (a + d) / math.Sqrt2, (a - d) / math.Sqrt2
}

func identity(l int) []int {
	m := make([]int, l)
	for i := range m {
		m[i] = i
	}
	return m
}
