// Command wmark embeds a text watermark into an image file or reads it back.
//
//	wmark embed -in photo.jpg -out marked.png -mark SDV2
//	wmark decode -in marked.png -len 32
//
// With -ecc the payload is protected by a shuffled Golay code; decode needs
// the same -ecc and -seed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	watermark "github.com/yyyoichi/watermark_maxdwt"
	"github.com/yyyoichi/watermark_maxdwt/apply"
	"github.com/yyyoichi/watermark_maxdwt/mark"
	"github.com/yyyoichi/watermark_maxdwt/strmark"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "embed":
		err = embedMain(ctx, os.Args[2:])
	case "decode":
		err = decodeMain(ctx, os.Args[2:], os.Stdout)
	case "-h", "-help", "help":
		usage(os.Stdout)
		return
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("[FAIL] %v", err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: wmark embed -in FILE -out FILE [-mark TEXT] [-quality N] [-social] [-ecc] [flags]")
	fmt.Fprintln(w, "       wmark decode -in FILE [-len BITS] [-ecc] [flags]")
}

// embedFlags are shared by both subcommands so decode can match the embed.
type embedFlags struct {
	scaleY, scaleU, scaleV float64
	block                  int
	ecc                    bool
	seed                   int64
}

func (f *embedFlags) register(fs *flag.FlagSet) {
	fs.Float64Var(&f.scaleY, "scale-y", 0, "quantization step of the Y channel, 0 to skip")
	fs.Float64Var(&f.scaleU, "scale-u", 36, "quantization step of the U channel, 0 to skip")
	fs.Float64Var(&f.scaleV, "scale-v", 36, "quantization step of the V channel, 0 to skip")
	fs.IntVar(&f.block, "block", 4, "block edge on the half-resolution plane")
	fs.BoolVar(&f.ecc, "ecc", false, "protect the payload with Golay error correction")
	fs.Int64Var(&f.seed, "seed", mark.DefaultShuffleSeed, "shuffle seed of -ecc")
}

func (f *embedFlags) codec() strmark.Mark {
	if f.ecc {
		return mark.NewText(mark.WithGolay(f.seed))
	}
	return strmark.New()
}

func (f *embedFlags) options() []watermark.Option {
	return []watermark.Option{
		watermark.WithScales(f.scaleY, f.scaleU, f.scaleV),
		watermark.WithBlock(f.block),
	}
}

func embedMain(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("embed", flag.ContinueOnError)
	var (
		ef      embedFlags
		in      = fs.String("in", "", "input image")
		out     = fs.String("out", "", "output image; .jpg or .jpeg writes JPEG, anything else PNG")
		payload = fs.String("mark", apply.DefaultPayload, "text to embed")
		quality = fs.Int("quality", apply.DefaultQuality, "JPEG quality 0-100")
		social  = fs.Bool("social", false, "crop and resize for social media first")
		sub     = fs.String("subsample", "none", "pre-subsample chroma: none, 422 or 420")
	)
	ef.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("-in and -out are required")
	}

	opts := apply.DefaultOptions()
	opts.Filetype = apply.ParseFiletype(filepath.Ext(*out))
	opts.Quality = *quality
	opts.Payload = *payload
	opts.Mark = ef.codec()
	opts.ResizeForSocial = *social
	opts.Embed = ef.options()
	mode, err := parseSubsampling(*sub)
	if err != nil {
		return err
	}
	opts.Embed = append(opts.Embed, watermark.WithSubsampling(mode))

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}

	res, err := apply.Apply(ctx, f, info.Size(), opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, res.Bytes(), 0o644); err != nil {
		return err
	}
	log.Printf("[OK] %s -> %s (%dx%d, %d payload bits, %d embedded)", *in, *out, res.Width, res.Height,
		opts.PayloadBits(), opts.Mark.Len(opts.PayloadBits()))
	return nil
}

func decodeMain(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	var (
		ef     embedFlags
		in     = fs.String("in", "", "watermarked image")
		bits   = fs.Int("len", apply.DefaultPayloadBits, "payload length in bits")
		kmeans = fs.Bool("kmeans", false, "decide bits by two-cluster k-means")
	)
	ef.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}
	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	opts := ef.options()
	if *kmeans {
		opts = append(opts, watermark.WithKMeans())
	}
	text, err := apply.Decode(ctx, data, *bits, ef.codec(), opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, text)
	return nil
}

func parseSubsampling(s string) (watermark.Subsampling, error) {
	switch s {
	case "", "none":
		return watermark.SubsampleNone, nil
	case "422", "4:2:2":
		return watermark.Subsample422, nil
	case "420", "4:2:0":
		return watermark.Subsample420, nil
	}
	return 0, fmt.Errorf("unknown subsampling %q", s)
}
