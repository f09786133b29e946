// Command benchmark times the watermark over a ladder of square image sizes
// and stores the results in SQLite with an HTML chart.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yyyoichi/watermark_maxdwt/apply"
	"github.com/yyyoichi/watermark_maxdwt/internal/benchdb"
	"github.com/yyyoichi/watermark_maxdwt/mark"
	"github.com/yyyoichi/watermark_maxdwt/parallel"
	"golang.org/x/image/draw"
)

// Sizes is the default ladder of square edges.
var Sizes = []int{700, 960, 1080, 1200, 1440, 1920, 2048, 2880, 3840, 4096}

func main() {
	src := flag.String("src", "", "source image path or http(s) URL; a synthetic texture when empty")
	dbPath := flag.String("db", "benchmark.db", "SQLite database for results")
	out := flag.String("out", "benchmark.html", "HTML chart output")
	workers := flag.Int("workers", parallel.DefaultWorkers, "images processed at once")
	sizesFlag := flag.String("sizes", "", "comma separated square sizes; the default ladder when empty")
	cacheDir := flag.String("cache", filepath.Join(os.TempDir(), "watermark_benchmark_cache"), "HTTP cache directory")
	ecc := flag.Bool("ecc", false, "embed the payload with Golay error correction")
	flag.Parse()

	sizes := Sizes
	if *sizesFlag != "" {
		var err error
		if sizes, err = parseSizes(*sizesFlag); err != nil {
			log.Fatalf("Invalid sizes: %v", err)
		}
	}

	source, err := loadSource(*src, *cacheDir)
	if err != nil {
		log.Fatalf("Failed to load source image: %v", err)
	}
	name := *src
	if name == "" {
		name = "synthetic"
	}

	db, err := benchdb.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	opts := apply.DefaultOptions()
	if *ecc {
		opts.Mark = mark.NewText()
	}
	runID, err := db.InsertRun(benchdb.Run{
		Source:    name,
		Scales:    "0,36,36",
		Block:     4,
		Workers:   *workers,
		StartedAt: time.Now(),
	})
	if err != nil {
		log.Fatalf("Failed to record run: %v", err)
	}

	log.Printf("Starting benchmark run %d: %d sizes from %s with %d workers\n", runID, len(sizes), name, *workers)

	ctx := context.Background()
	results := parallel.Run(ctx, sizes, func(ctx context.Context, size int) (benchdb.Timing, error) {
		return measure(ctx, source, size, opts), nil
	}, parallel.WithWorkers(*workers))

	for _, res := range results {
		t := res.Value
		t.RunID = runID
		if _, err := db.InsertTiming(t); err != nil {
			log.Printf("Failed to record size %d: %v\n", t.Size, err)
		}
		if t.Error != "" || !t.Recovered {
			log.Printf("  [FAIL] Size=%dx%d Apply=%.0fms Decode=%.0fms Error=%s\n", t.Size, t.Size, t.ApplyMs, t.DecodeMs, t.Error)
			continue
		}
		log.Printf("  [OK] Size=%dx%d Apply=%.0fms Decode=%.0fms JPEG=%dB PNG=%dB\n", t.Size, t.Size, t.ApplyMs, t.DecodeMs, t.JPEGBytes, t.PNGBytes)
	}

	timings, err := db.Timings(runID)
	if err != nil {
		log.Fatalf("Failed to read timings: %v", err)
	}
	if err := renderChart(name, timings, *out); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}
	log.Printf("Generated: %s\n", *out)
}

// measure resizes source to a size x size square, watermarks it and decodes
// the PNG output again.
func measure(ctx context.Context, source image.Image, size int, opts apply.Options) benchdb.Timing {
	t := benchdb.Timing{
		Size:    size,
		Pixels:  size * size,
		MarkLen: opts.Codec().Len(opts.PayloadBits()),
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), source, source.Bounds(), draw.Src, nil)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		t.Error = err.Error()
		return t
	}

	start := time.Now()
	res, err := apply.Apply(ctx, &buf, int64(buf.Len()), opts)
	t.ApplyMs = float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		t.Error = err.Error()
		return t
	}
	t.JPEGBytes, t.PNGBytes = len(res.JPEG), len(res.PNG)

	start = time.Now()
	decoded, err := apply.Decode(ctx, res.PNG, opts.PayloadBits(), opts.Mark, opts.Embed...)
	t.DecodeMs = float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		t.Error = err.Error()
		return t
	}
	t.Recovered = decoded == opts.Payload
	return t
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("size %d must be positive", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
