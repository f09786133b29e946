package watermark

import (
	"fmt"

	"github.com/yyyoichi/watermark_maxdwt/internal/subsample"
	"github.com/yyyoichi/watermark_maxdwt/internal/watermark"
)

type Option func(*Watermark) error

// Subsampling selects how chroma is averaged before embedding.
type Subsampling = subsample.Mode

const (
	SubsampleNone = subsample.None
	Subsample422  = subsample.Mode422
	Subsample420  = subsample.Mode420
)

// WithScales sets the quantization step of the Y, U and V channels.
// A channel with step 0 carries no mark. Larger steps are more robust
// and more visible.
//
// Negative steps, or all three set to 0, are rejected.
func WithScales(y, u, v float64) Option {
	return func(w *Watermark) error {
		s := watermark.Scales{y, u, v}
		for _, c := range s {
			if c < 0 {
				return fmt.Errorf("%w: negative scale %v", ErrInvalidOption, s)
			}
		}
		if s.IsZero() {
			return fmt.Errorf("%w: every scale is zero", ErrInvalidOption)
		}
		w.params.Scales = s
		return nil
	}
}

// WithBlock sets the edge of the square blocks cut from the half-resolution
// approximation plane. For example, block 4 on a 600x480 image yields
// 75x60 blocks per channel. The minimum is 2.
func WithBlock(size int) Option {
	return func(w *Watermark) error {
		b := watermark.BlockSize(size)
		if b.IsZero() {
			return fmt.Errorf("%w: block size %d < 2", ErrInvalidOption, size)
		}
		w.params.Block = b
		return nil
	}
}

// WithSubsampling averages the chroma channels before embedding, so that a
// later encoder doing the same subsampling disturbs the mark less.
// It has no effect on extraction.
func WithSubsampling(mode Subsampling) Option {
	return func(w *Watermark) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidOption, mode)
		}
		w.params.Subsample = mode
		return nil
	}
}

// WithKMeans decides extracted bits by splitting the per-position means into
// two clusters instead of thresholding at the midpoint. Only use it for marks
// known to contain both bit values.
func WithKMeans() Option {
	return func(w *Watermark) error {
		w.params.KMeans = true
		return nil
	}
}
