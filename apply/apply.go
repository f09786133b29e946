// Package apply is the file boundary of the watermark: it reads an encoded
// image, optionally fits it for social media, embeds a text payload and
// encodes the result as both JPEG and PNG.
//
// The payload length is not stored in the image. Decode must be given the
// payload size in bits and the Mark the payload was encoded with.
package apply

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	// Registered input formats.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	watermark "github.com/yyyoichi/watermark_maxdwt"
	"github.com/yyyoichi/watermark_maxdwt/parallel"
	"github.com/yyyoichi/watermark_maxdwt/strmark"
)

var (
	ErrQualityOutOfRange = errors.New("jpeg quality must be between 0 and 100")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrEmptyImage        = errors.New("image data is empty")
)

const (
	DefaultQuality = 75
	DefaultPayload = "SDV2"
	// DefaultPayloadBits is the bit length of DefaultPayload.
	DefaultPayloadBits = 32
)

type Options struct {
	// Filetype selects what Result.Bytes returns. Both encodings are
	// produced regardless.
	Filetype Filetype
	// Quality of the JPEG output, 0 to 100.
	Quality int
	// Payload is encoded by Mark.
	Payload string
	// Mark encodes the payload; nil embeds the plain UTF-8 bytes.
	// mark.NewText adds error correction.
	Mark            strmark.Mark
	ResizeForSocial bool
	// Embed configures the watermark; extraction must use the same options.
	Embed []watermark.Option
}

// DefaultOptions returns PNG output, quality 75 and payload "SDV2".
func DefaultOptions() Options {
	return Options{
		Filetype: PNG,
		Quality:  DefaultQuality,
		Payload:  DefaultPayload,
	}
}

// Codec returns the Mark the payload is encoded with.
func (o Options) Codec() strmark.Mark {
	if o.Mark == nil {
		return strmark.New()
	}
	return o.Mark
}

// PayloadBits is the size Decode must be given for this payload.
func (o Options) PayloadBits() int {
	return len(o.Payload) * 8
}

// Result holds the watermarked image in both encodings.
type Result struct {
	JPEG, PNG     []byte
	Filetype      Filetype
	Width, Height int
}

// Bytes returns the encoding matching the requested Filetype, PNG unless
// JPEG was asked for.
func (r *Result) Bytes() []byte {
	if r.Filetype == JPEG {
		return r.JPEG
	}
	return r.PNG
}

// Apply reads contentLength bytes from r and watermarks the image they hold.
// A negative contentLength reads r to the end.
//
// The pixel bounds of the watermark package are checked on the decoded image,
// before the optional social media resize.
func Apply(ctx context.Context, r io.Reader, contentLength int64, opts Options) (*Result, error) {
	if opts.Quality < 0 || opts.Quality > 100 {
		return nil, fmt.Errorf("%w: %d", ErrQualityOutOfRange, opts.Quality)
	}
	if contentLength >= 0 {
		r = io.LimitReader(r, contentLength)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := watermark.CheckBounds(img.Bounds().Dx(), img.Bounds().Dy()); err != nil {
		return nil, err
	}
	if opts.ResizeForSocial {
		img = ResizeForSocial(img)
	}

	marked, err := watermark.Embed(ctx, img, opts.Codec().Encode(opts.Payload), opts.Embed...)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Filetype: opts.Filetype,
		Width:    marked.Bounds().Dx(),
		Height:   marked.Bounds().Dy(),
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, marked, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, err
	}
	res.JPEG = bytes.Clone(buf.Bytes())
	buf.Reset()
	if err := png.Encode(&buf, marked); err != nil {
		return nil, err
	}
	res.PNG = bytes.Clone(buf.Bytes())
	return res, nil
}

// Decode extracts a size-bit payload encoded with m from an encoded image and
// returns it as text. A nil m reads plain UTF-8 bytes. Only whole bytes are
// kept and invalid UTF-8 is replaced by U+FFFD.
func Decode(ctx context.Context, data []byte, size int, m strmark.Mark, opts ...watermark.Option) (string, error) {
	if m == nil {
		m = strmark.New()
	}
	img, err := decode(data)
	if err != nil {
		return "", err
	}
	bits, err := watermark.Extract(ctx, img, m.Len(size), opts...)
	if err != nil {
		return "", err
	}
	return m.Decode(bits, size), nil
}

// Job is one input of ApplyAll.
type Job struct {
	Data    []byte
	Options Options
}

// ApplyAll applies every job on a bounded worker pool. Results arrive in
// completion order unless parallel.WithOrder says otherwise.
func ApplyAll(ctx context.Context, jobs []Job, opts ...parallel.Option) []parallel.Result[*Result] {
	return parallel.Run(ctx, jobs, func(ctx context.Context, j Job) (*Result, error) {
		return Apply(ctx, bytes.NewReader(j.Data), int64(len(j.Data)), j.Options)
	}, opts...)
}

func decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, err
	}
	return img, nil
}
