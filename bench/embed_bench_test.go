package bench_test

import (
	"image"
	"image/color"
	"testing"

	watermark "github.com/yyyoichi/watermark_maxdwt"
	"github.com/yyyoichi/watermark_maxdwt/strmark"
)

func BenchmarkEmbed_FHD(b *testing.B) {
	test := []struct {
		name string
		opts []watermark.Option
	}{
		{name: "4_UV", opts: []watermark.Option{
			watermark.WithBlock(4),
			watermark.WithScales(0, 36, 36),
		}},
		{name: "4_YUV", opts: []watermark.Option{
			watermark.WithBlock(4),
			watermark.WithScales(20, 36, 36),
		}},
		{name: "8_UV", opts: []watermark.Option{
			watermark.WithBlock(8),
			watermark.WithScales(0, 36, 36),
		}},
		{name: "4_UV_420", opts: []watermark.Option{
			watermark.WithBlock(4),
			watermark.WithSubsampling(watermark.Subsample420),
		}},
	}

	img := createImage(1920, 1080)
	mark := strmark.Encode("SDV2")
	ctx := b.Context()

	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			w, err := watermark.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Watermark instance (%s): %v", tt.name, err)
			}
			for b.Loop() {
				dist, err := w.Embed(ctx, img, mark)
				if err != nil {
					b.Fatalf("Failed to embed watermark (%s): %v", tt.name, err)
				}
				_ = dist
			}
		})
	}
}

func BenchmarkBatch_FHD(b *testing.B) {
	img := createImage(1920, 1080)
	mark := strmark.Encode("SDV2")
	ctx := b.Context()

	b.Run("Embed", func(b *testing.B) {
		for b.Loop() {
			if _, err := watermark.Embed(ctx, img, mark); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("BatchEmbed", func(b *testing.B) {
		batch := watermark.NewBatch(img)
		for b.Loop() {
			if _, err := batch.Embed(ctx, mark); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// createImage creates a widthxheight test image with gradient pattern
func createImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			// Create gradient effect to simulate realistic image data
			r := uint8((x * 255) / width)
			g := uint8((y * 255) / height)
			b := uint8(((x + y) * 255) / (width + height))
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}
