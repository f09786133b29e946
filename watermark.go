package watermark

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/yyyoichi/watermark_maxdwt/internal/dwt"
	"github.com/yyyoichi/watermark_maxdwt/internal/watermark"
)

var (
	ErrTooSmallImage = errors.New("image is too small for embedding or extracting")
	ErrTooLargeImage = errors.New("image is too large for embedding or extracting")
	ErrInvalidOption = errors.New("invalid option")
	ErrEmptyMark     = errors.New("mark is empty")
)

const (
	// MinPixels and MaxPixels bound the pixel count of an accepted image.
	MinPixels = 256 * 256
	MaxPixels = 4096 * 4096
)

// Embed embeds a bit sequence into an image with the specified options.
// This is a convenience function that creates a Watermark instance and calls its Embed method.
func Embed(ctx context.Context, src image.Image, mark []bool, opts ...Option) (image.Image, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return w.Embed(ctx, src, mark)
}

// Extract extracts a bit sequence from an image with the specified options.
// This is a convenience function that creates a Watermark instance and calls its Extract method.
func Extract(ctx context.Context, src image.Image, markLen int, opts ...Option) ([]bool, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return w.Extract(ctx, src, markLen)
}

type Watermark struct {
	params watermark.Params
}

// New initializes a watermark processing structure.
// For default values, refer to the init function.
func New(opts ...Option) (*Watermark, error) {
	w := new(Watermark)
	if err := w.init(opts...); err != nil {
		return nil, err
	}
	return w, nil
}

// Embed embeds a bit sequence into an image.
//
// Process:
//  1. Converts the image to Y, U, V channels.
//  2. Applies the Haar wavelet transform to each channel with a non-zero scale.
//  3. Divides the low-frequency region (cA) of the channel into blocks.
//  4. Quantizes the strongest coefficient of each block to carry one bit.
//  5. Applies the inverse transform and converts back to RGB.
//
// The mark repeats across all blocks. Returns an error if the image is out of
// bounds or holds fewer blocks than mark bits.
func (w *Watermark) Embed(ctx context.Context, src image.Image, mark []bool) (image.Image, error) {
	if len(mark) == 0 {
		return nil, ErrEmptyMark
	}
	img := watermark.NewImageCore(src)
	if err := w.enable(img, len(mark)); err != nil {
		return nil, err
	}
	marked, err := watermark.Embed(ctx, img, mark, w.params)
	if err != nil {
		return nil, err
	}
	return marked.Image(), nil
}

// Extract extracts a bit sequence from an image.
//
// Every block votes for the bit at its position in the repeated mark. Each
// position then averages its votes and decides by threshold, or by k-means
// when WithKMeans is set.
//
// The options must match the ones used to embed. Mismatched options do not
// fail, they yield unrelated bits.
func (w *Watermark) Extract(ctx context.Context, src image.Image, markLen int) ([]bool, error) {
	img := watermark.NewImageCore(src)
	if err := w.enable(img, markLen); err != nil {
		return nil, err
	}
	return watermark.Extract(ctx, img, markLen, w.params)
}

// Scales returns the quantization step of the Y, U and V channels.
func (w *Watermark) Scales() [3]float64 {
	return w.params.Scales
}

func (w *Watermark) Block() int {
	return int(w.params.Block)
}

// Capacity reports how many blocks each marked channel of a width x height
// image holds, which bounds the mark length.
func (w *Watermark) Capacity(width, height int) int {
	return w.params.Block.TotalBlocks(height, width)
}

func (w *Watermark) enable(img watermark.Pixels, markLen int) error {
	if markLen < 1 {
		return fmt.Errorf("%w: length %d", ErrEmptyMark, markLen)
	}
	if err := CheckBounds(img.Cols(), img.Rows()); err != nil {
		return err
	}
	if err := watermark.Enable(img, markLen, w.params.Block); err != nil {
		return fmt.Errorf("%w:%w", ErrTooSmallImage, err)
	}
	return nil
}

// CheckBounds reports whether a width x height image holds between
// MinPixels and MaxPixels pixels.
func CheckBounds(width, height int) error {
	switch area := width * height; {
	case area < MinPixels:
		return fmt.Errorf("%w: %dx%d has fewer than %d pixels", ErrTooSmallImage, width, height, MinPixels)
	case area > MaxPixels:
		return fmt.Errorf("%w: %dx%d has more than %d pixels", ErrTooLargeImage, width, height, MaxPixels)
	}
	return nil
}

func (w *Watermark) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return err
		}
	}
	if w.params.Scales.IsZero() {
		w.params.Scales = watermark.Scales{0, 36, 36}
	}
	if w.params.Block.IsZero() {
		w.params.Block = 4
	}
	return nil
}

// Batch enables efficient multiple watermark operations on a single image
// by caching intermediate computation results (colour conversion and wavelets).
type Batch struct {
	original watermark.Pixels
	chroma   watermark.Pixels
	cache    *dwt.Cache
}

// NewBatch creates a new Batch instance and converts the image to Y, U, V
// once. Wavelets are computed on first use per channel and block size.
func NewBatch(src image.Image) *Batch {
	b := &Batch{
		original: watermark.NewImageCore(src),
		cache:    dwt.NewCache(),
	}
	b.chroma = b.original.ToChroma()
	return b
}

// Embed embeds a bit sequence into the cached image with specified options.
func (b *Batch) Embed(ctx context.Context, mark []bool, opts ...Option) (image.Image, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if len(mark) == 0 {
		return nil, ErrEmptyMark
	}
	if err := w.enable(b.original, len(mark)); err != nil {
		return nil, err
	}
	chroma := b.chroma.Copy()
	// Uses the cached wavelets for improved performance.
	if err := watermark.EmbedChroma(ctx, chroma, mark, w.params, b.cache); err != nil {
		return nil, err
	}
	return chroma.ToRGB().Image(), nil
}

// Extract extracts a bit sequence from the cached image with specified options.
func (b *Batch) Extract(ctx context.Context, markLen int, opts ...Option) ([]bool, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := w.enable(b.original, markLen); err != nil {
		return nil, err
	}
	return watermark.ExtractChroma(ctx, b.chroma, markLen, w.params, b.cache)
}
