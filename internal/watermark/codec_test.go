package watermark

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	test := []struct {
		name  string
		block []float64
		want  int
	}{
		{name: "last", block: []float64{1, 2, 3, 4}, want: 3},
		{name: "ignore_dc", block: []float64{100, 2, -3, 1}, want: 2},
		{name: "negative", block: []float64{0, 5, -9, 8}, want: 2},
		{name: "tie_first", block: []float64{0, 7, -7, 7}, want: 1},
		{name: "all_zero", block: []float64{0, 0, 0, 0}, want: 1},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Locate(tt.block))
		})
	}
}

func TestEmbedBit(t *testing.T) {
	seq := func(negLast bool) []float64 {
		b := make([]float64, 16)
		for i := range b {
			b[i] = float64(i + 1)
		}
		if negLast {
			b[15] = -16
		}
		return b
	}
	test := []struct {
		name  string
		block []float64
		bit   bool
		scale float64
		want  float64
	}{
		{name: "bit1", block: seq(false), bit: true, scale: 4, want: 19},
		{name: "bit0", block: seq(false), bit: false, scale: 4, want: 17},
		{name: "negative_bit1", block: seq(true), bit: true, scale: 4, want: -19},
		{name: "negative_bit0", block: seq(true), bit: false, scale: 4, want: -17},
		{name: "below_one_step", block: append([]float64{50, 10}, make([]float64, 14)...), bit: true, scale: 36, want: 27},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]float64(nil), tt.block...)
			EmbedBit(tt.block, tt.bit, tt.scale)
			pos := Locate(before)
			assert.Equal(t, tt.want, tt.block[pos])
			for i := range before {
				if i != pos {
					assert.Equal(t, before[i], tt.block[i], "index %d changed", i)
				}
			}
			assert.Equal(t, tt.bit, InferBit(tt.block, tt.scale))
		})
	}
}

func TestEmbedBit_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	checked := 0
	for i := range 2000 {
		block := make([]float64, 16)
		for j := range block {
			block[j] = (r.Float64()*2 - 1) * 400
		}
		bit := i%2 == 0
		scale := 4 + r.Float64()*60
		pos := Locate(block)
		EmbedBit(block, bit, scale)
		if Locate(block) != pos {
			// the embedded coefficient lost its rank; covered by TestEmbedBit_RankFlip
			continue
		}
		checked++
		assert.Equal(t, bit, InferBit(block, scale), "case %d", i)
		res := math.Mod(math.Abs(block[pos]), scale) / scale
		if bit {
			assert.InDelta(t, 0.75, res, 1e-9)
		} else {
			assert.InDelta(t, 0.25, res, 1e-9)
		}
	}
	assert.Greater(t, checked, 1000)
}

func TestEmbedBit_RankFlip(t *testing.T) {
	// Lowering the strongest coefficient can hand the rank to another one,
	// whose residue then decides the bit.
	block := make([]float64, 16)
	block[1], block[2] = 35.9, 35
	EmbedBit(block, false, 36)
	assert.Equal(t, 9., block[1])
	assert.Equal(t, 2, Locate(block))
	assert.True(t, InferBit(block, 36))
}
