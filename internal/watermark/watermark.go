package watermark

import (
	"context"
	"fmt"

	"github.com/yyyoichi/watermark_maxdwt/internal/dwt"
	"github.com/yyyoichi/watermark_maxdwt/internal/score"
	"github.com/yyyoichi/watermark_maxdwt/internal/subsample"
)

// Params are the settings encode and decode must agree on. Subsample is
// only used when embedding, KMeans only when extracting.
type Params struct {
	Scales    Scales
	Block     BlockSize
	Subsample subsample.Mode
	KMeans    bool
}

// Enable reports whether every embedding channel of src holds at least one
// block per mark bit.
func Enable(src Pixels, markLen int, block BlockSize) error {
	if markLen < 1 {
		return fmt.Errorf("mark length %d < 1", markLen)
	}
	if total := block.TotalBlocks(src.rows, src.cols); total < markLen {
		return fmt.Errorf("total blocks %d < mark length %d", total, markLen)
	}
	return nil
}

// Embed converts src to YUV, embeds mark and converts back to RGB.
// src is left untouched.
func Embed(ctx context.Context, src Pixels, mark []bool, p Params) (Pixels, error) {
	chroma := src.ToChroma()
	if err := EmbedChroma(ctx, chroma, mark, p, nil); err != nil {
		return Pixels{}, err
	}
	return chroma.ToRGB(), nil
}

// EmbedChroma embeds mark into the YUV buffer chroma in place.
//
// Every channel with a positive scale is analysed on its largest window that
// tiles exactly, the n-th block of the approximation plane receives
// mark[n % len(mark)] with n restarting at 0 per channel, and the window is
// synthesized back. cache may be nil; it is bypassed when subsampling.
func EmbedChroma(ctx context.Context, chroma Pixels, mark []bool, p Params, cache *dwt.Cache) error {
	if len(mark) == 0 {
		return fmt.Errorf("empty mark")
	}
	if p.Subsample != subsample.None {
		chroma.Subsample(p.Subsample)
		cache = nil
	}

	var (
		h, w        = p.Block.span(chroma.rows), p.Block.span(chroma.cols)
		b           = int(p.Block)
		blockArea   = p.Block.blockArea()
		totalBlocks = p.Block.TotalBlocks(chroma.rows, chroma.cols)
	)
	if totalBlocks == 0 {
		return fmt.Errorf("%dx%d holds no block of size %d", chroma.cols, chroma.rows, b)
	}
	// The wavelet transform rearranges the approximation plane so that every
	// block is a contiguous slice.
	indexMap := dwt.NewBlockMap(w/2, h/2, b, b).GetMap()
	for _, ch := range p.Scales.Channels() {
		if err := ctx.Err(); err != nil {
			return err
		}
		scale := p.Scales[ch]
		bands := analyze(chroma, ch, h, w, b, indexMap, cache)
		cA := bands[0]
		for at := range totalBlocks {
			block := cA[at*blockArea : (at+1)*blockArea : (at+1)*blockArea]
			EmbedBit(block, mark[at%len(mark)], scale)
		}
		chroma.setPlane(ch, h, w, dwt.HaarIDWT(bands, w, h, indexMap))
	}
	return nil
}

// Extract recovers markLen bits from an RGB buffer.
func Extract(ctx context.Context, src Pixels, markLen int, p Params) ([]bool, error) {
	return ExtractChroma(ctx, src.ToChroma(), markLen, p, nil)
}

// ExtractChroma votes every block of every embedding channel into the
// position it was embedded at, then thresholds the mean vote per position.
// chroma is only read. Mismatched parameters yield wrong bits, not errors.
func ExtractChroma(ctx context.Context, chroma Pixels, markLen int, p Params, cache *dwt.Cache) ([]bool, error) {
	if markLen < 1 {
		return nil, fmt.Errorf("mark length %d < 1", markLen)
	}
	var (
		h, w        = p.Block.span(chroma.rows), p.Block.span(chroma.cols)
		b           = int(p.Block)
		blockArea   = p.Block.blockArea()
		totalBlocks = p.Block.TotalBlocks(chroma.rows, chroma.cols)
		table       = score.NewTable(markLen)
	)
	if totalBlocks == 0 {
		return nil, fmt.Errorf("%dx%d holds no block of size %d", chroma.cols, chroma.rows, b)
	}
	indexMap := dwt.NewBlockMap(w/2, h/2, b, b).GetMap()
	for _, ch := range p.Scales.Channels() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scale := p.Scales[ch]
		cA := analyze(chroma, ch, h, w, b, indexMap, cache)[0]
		for at := range totalBlocks {
			block := cA[at*blockArea : (at+1)*blockArea : (at+1)*blockArea]
			var v float64
			if InferBit(block, scale) {
				v = 1
			}
			table.Add(at, v)
		}
	}
	if p.KMeans {
		return score.OneDimKmeans(table.Means()), nil
	}
	return score.Midpoint(table.Means()), nil
}

func analyze(chroma Pixels, ch, h, w, block int, indexMap []int, cache *dwt.Cache) [][]float64 {
	run := func() [][]float64 {
		return dwt.HaarDWT(chroma.plane(ch, h, w), w, indexMap)
	}
	if cache == nil {
		return run()
	}
	return cache.Get(ch, block, run)
}
