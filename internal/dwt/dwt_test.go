package dwt

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaarDWT(t *testing.T) {
	test := []struct {
		name           string
		data           []float64
		w              int
		cA, cH, cV, cD []float64
	}{
		{
			name: "2x2",
			data: []float64{1, 2, 3, 4},
			w:    2,
			cA:   []float64{5}, cH: []float64{-2}, cV: []float64{-1}, cD: []float64{0},
		},
		{
			name: "constant_4x2",
			data: []float64{7, 7, 7, 7, 7, 7, 7, 7},
			w:    4,
			cA:   []float64{14, 14}, cH: []float64{0, 0}, cV: []float64{0, 0}, cD: []float64{0, 0},
		},
		{
			name: "checker_2x2",
			data: []float64{1, 0, 0, 1},
			w:    2,
			cA:   []float64{1}, cH: []float64{0}, cV: []float64{0}, cD: []float64{1},
		},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got := HaarDWT(tt.data, tt.w, nil)
			require.Len(t, got, 4)
			assert.InDeltaSlice(t, tt.cA, got[0], 1e-12, "cA")
			assert.InDeltaSlice(t, tt.cH, got[1], 1e-12, "cH")
			assert.InDeltaSlice(t, tt.cV, got[2], 1e-12, "cV")
			assert.InDeltaSlice(t, tt.cD, got[3], 1e-12, "cD")
		})
	}
}

func TestHaarRoundTrip(t *testing.T) {
	rd := rand.New(rand.NewSource(1))
	for _, size := range [][2]int{{2, 2}, {8, 8}, {16, 6}, {7, 5}, {1, 3}, {64, 48}} {
		w, h := size[0], size[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			data := make([]float64, w*h)
			for i := range data {
				data[i] = rd.Float64() * 255
			}
			for _, b := range []int{1, 2, 4} {
				hw, hh := (w+1)/2, (h+1)/2
				indexMap := NewBlockMap(hw, hh, b, b).GetMap()
				bands := HaarDWT(data, w, indexMap)
				got := HaarIDWT(bands, w, h, indexMap)
				assert.InDeltaSlice(t, data, got, 1e-9, "block %d", b)
			}
		})
	}
}

func TestHaarDWT_BlockLayout(t *testing.T) {
	rd := rand.New(rand.NewSource(2))
	w, h := 20, 12
	data := make([]float64, w*h)
	for i := range data {
		data[i] = rd.Float64() * 255
	}
	plain := HaarDWT(data, w, nil)
	indexMap := NewBlockMap(w/2, h/2, 4, 4).GetMap()
	blocked := HaarDWT(data, w, indexMap)
	for band := range plain {
		for i, v := range plain[band] {
			assert.Equal(t, v, blocked[band][indexMap[i]], "band %d index %d", band, i)
		}
	}
}

func TestBlockMap(t *testing.T) {
	tests := []struct {
		name                                   string
		width, height, blockWidth, blockHeight int
		blocks                                 int
		expected                               []int
	}{
		{
			name:  "11x11_2x2",
			width: 11, height: 11, blockWidth: 2, blockHeight: 2,
			blocks: 25,
			expected: []int{
				0, 1, 4, 5, 8, 9, 12, 13, 16, 17, 100,
				2, 3, 6, 7, 10, 11, 14, 15, 18, 19, 101,
				20, 21, 24, 25, 28, 29, 32, 33, 36, 37, 102,
				22, 23, 26, 27, 30, 31, 34, 35, 38, 39, 103,
				40, 41, 44, 45, 48, 49, 52, 53, 56, 57, 104,
				42, 43, 46, 47, 50, 51, 54, 55, 58, 59, 105,
				60, 61, 64, 65, 68, 69, 72, 73, 76, 77, 106,
				62, 63, 66, 67, 70, 71, 74, 75, 78, 79, 107,
				80, 81, 84, 85, 88, 89, 92, 93, 96, 97, 108,
				82, 83, 86, 87, 90, 91, 94, 95, 98, 99, 109,
				110, 111, 112, 113, 114, 115, 116, 117, 118, 119, 120,
			},
		},
		{
			name:  "8x8_4x4",
			width: 8, height: 8, blockWidth: 4, blockHeight: 4,
			blocks: 4,
			expected: []int{
				0, 1, 2, 3, 16, 17, 18, 19,
				4, 5, 6, 7, 20, 21, 22, 23,
				8, 9, 10, 11, 24, 25, 26, 27,
				12, 13, 14, 15, 28, 29, 30, 31,
				32, 33, 34, 35, 48, 49, 50, 51,
				36, 37, 38, 39, 52, 53, 54, 55,
				40, 41, 42, 43, 56, 57, 58, 59,
				44, 45, 46, 47, 60, 61, 62, 63,
			},
		},
		{
			name:  "12x10_3x3",
			width: 12, height: 10, blockWidth: 3, blockHeight: 3,
			blocks: 12,
			expected: []int{
				0, 1, 2, 9, 10, 11, 18, 19, 20, 27, 28, 29,
				3, 4, 5, 12, 13, 14, 21, 22, 23, 30, 31, 32,
				6, 7, 8, 15, 16, 17, 24, 25, 26, 33, 34, 35,
				36, 37, 38, 45, 46, 47, 54, 55, 56, 63, 64, 65,
				39, 40, 41, 48, 49, 50, 57, 58, 59, 66, 67, 68,
				42, 43, 44, 51, 52, 53, 60, 61, 62, 69, 70, 71,
				72, 73, 74, 81, 82, 83, 90, 91, 92, 99, 100, 101,
				75, 76, 77, 84, 85, 86, 93, 94, 95, 102, 103, 104,
				78, 79, 80, 87, 88, 89, 96, 97, 98, 105, 106, 107,
				108, 109, 110, 111, 112, 113, 114, 115, 116, 117, 118, 119,
			},
		},
		{
			name:  "4x4_4x4",
			width: 4, height: 4, blockWidth: 4, blockHeight: 4,
			blocks: 1,
			expected: []int{
				0, 1, 2, 3,
				4, 5, 6, 7,
				8, 9, 10, 11,
				12, 13, 14, 15,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBlockMap(tt.width, tt.height, tt.blockWidth, tt.blockHeight)
			assert.Equal(t, tt.expected, m.GetMap())
			assert.Equal(t, tt.blocks, m.Blocks())
		})
	}
}

func TestCache(t *testing.T) {
	var calls int
	analyze := func() [][]float64 {
		calls++
		return HaarDWT([]float64{1, 2, 3, 4}, 2, nil)
	}
	c := NewCache()
	first := c.Get(1, 4, analyze)
	first[0][0] = 999
	second := c.Get(1, 4, analyze)
	assert.Equal(t, 1, calls)
	assert.InDelta(t, 5, second[0][0], 1e-12, "cached bands must not alias returned copies")

	_ = c.Get(2, 4, analyze)
	_ = c.Get(1, 8, analyze)
	assert.Equal(t, 3, calls)
}
