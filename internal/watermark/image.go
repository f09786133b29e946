package watermark

import (
	"fmt"
	"image"
	"image/color"

	"github.com/yyyoichi/watermark_maxdwt/internal/subsample"
	"github.com/yyyoichi/watermark_maxdwt/internal/yuv"
)

// Pixels is a rows x cols buffer of interleaved 8-bit samples, three per
// pixel. Whether the triple is RGB or YUV depends on the processing stage.
type Pixels struct {
	rows, cols int
	pix        []uint8
}

func NewPixels(rows, cols int) Pixels {
	return Pixels{rows: rows, cols: cols, pix: make([]uint8, rows*cols*3)}
}

// PixelsFrom copies pix, which must hold rows*cols*3 samples.
func PixelsFrom(rows, cols int, pix []uint8) (Pixels, error) {
	if rows < 0 || cols < 0 || len(pix) != rows*cols*3 {
		return Pixels{}, fmt.Errorf("pixel buffer of %d samples does not match %dx%dx3", len(pix), rows, cols)
	}
	p := NewPixels(rows, cols)
	_ = copy(p.pix, pix)
	return p, nil
}

// NewImageCore reads src into an RGB buffer, dropping alpha.
func NewImageCore(src image.Image) Pixels {
	bounds := src.Bounds()
	p := NewPixels(bounds.Dy(), bounds.Dx())
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			p.pix[idx], p.pix[idx+1], p.pix[idx+2] = c.R, c.G, c.B
			idx += 3
		}
	}
	return p
}

func (p Pixels) Rows() int { return p.rows }

func (p Pixels) Cols() int { return p.cols }

func (p Pixels) Area() int { return p.rows * p.cols }

// Pix exposes the underlying samples.
func (p Pixels) Pix() []uint8 { return p.pix }

func (p Pixels) Copy() Pixels {
	tmp := make([]uint8, len(p.pix))
	_ = copy(tmp, p.pix)
	p.pix = tmp
	return p
}

func (p Pixels) ToChroma() Pixels {
	dst := NewPixels(p.rows, p.cols)
	yuv.ToChromaBatch(p.pix, dst.pix)
	return dst
}

func (p Pixels) ToRGB() Pixels {
	dst := NewPixels(p.rows, p.cols)
	yuv.ToRGBBatch(p.pix, dst.pix)
	return dst
}

// Image builds an opaque RGBA image from an RGB buffer.
func (p Pixels) Image() *image.RGBA {
	dist := image.NewRGBA(image.Rect(0, 0, p.cols, p.rows))
	for i, j := 0, 0; i < len(p.pix); i, j = i+3, j+4 {
		dist.Pix[j] = p.pix[i]
		dist.Pix[j+1] = p.pix[i+1]
		dist.Pix[j+2] = p.pix[i+2]
		dist.Pix[j+3] = 0xff
	}
	return dist
}

// plane copies the top-left h x w window of channel into a new row-major
// slice, so transforms never alias the buffer.
func (p Pixels) plane(channel, h, w int) []float64 {
	data := make([]float64, w*h)
	for y := range h {
		row := y * p.cols * 3
		for x := range w {
			data[y*w+x] = float64(p.pix[row+x*3+channel])
		}
	}
	return data
}

// setPlane writes a h x w window back into channel, clipping to [0, 255]
// and rounding to the nearest integer.
func (p Pixels) setPlane(channel, h, w int, data []float64) {
	for y := range h {
		row := y * p.cols * 3
		for x := range w {
			p.pix[row+x*3+channel] = yuv.Clip8(data[y*w+x])
		}
	}
}

// Subsample applies mode to both chroma channels of a YUV buffer in place.
func (p Pixels) Subsample(mode subsample.Mode) {
	if mode == subsample.None {
		return
	}
	for channel := 1; channel < 3; channel++ {
		data := p.plane(channel, p.rows, p.cols)
		subsample.Apply(data, p.cols, mode)
		p.setPlane(channel, p.rows, p.cols, data)
	}
}
