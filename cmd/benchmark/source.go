package main

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"net/http"
	"os"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/yyyoichi/httpcache-go"
)

// loadSource reads the benchmark source from a URL, through an on-disk HTTP
// cache, or from a local file. An empty src yields a synthetic texture.
func loadSource(src, cacheDir string) (image.Image, error) {
	switch {
	case src == "":
		return texture(1024), nil
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return fetch(src, cacheDir)
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func fetch(url, cacheDir string) (image.Image, error) {
	client := httpcache.Client{
		Client:  http.DefaultClient,
		Cache:   httpcache.NewStorageCache(cacheDir),
		Handler: httpcache.NewDefaultHandler(),
	}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %d", resp.StatusCode)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// texture is a seeded noise image used when no source is given.
func texture(size int) image.Image {
	r := rand.New(rand.NewSource(1))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.SetRGBA(x, y, color.RGBA{
				uint8(48 + r.Intn(160)),
				uint8(48 + r.Intn(160)),
				uint8(48 + r.Intn(160)),
				255,
			})
		}
	}
	return img
}
