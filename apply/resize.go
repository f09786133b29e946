package apply

import (
	"image"

	"golang.org/x/image/draw"
)

// Aspect ratio and width limits of the social media target.
const (
	MinAspect = 4. / 5.
	MaxAspect = 1.91
	MinWidth  = 320
	MaxWidth  = 1080
)

// cropRect returns the centred region of a w x h image whose aspect ratio
// lies within [MinAspect, MaxAspect].
func cropRect(w, h int) image.Rectangle {
	aspect := float64(w) / float64(h)
	switch {
	case aspect < MinAspect:
		nh := int(float64(w) / MinAspect)
		top := (h - nh) / 2
		return image.Rect(0, top, w, (h+nh)/2)
	case aspect > MaxAspect:
		nw := int(float64(h) * MaxAspect)
		left := (w - nw) / 2
		return image.Rect(left, 0, (w+nw)/2, h)
	}
	return image.Rect(0, 0, w, h)
}

// scaledSize clamps the width to [MinWidth, MaxWidth], deriving the height
// from the aspect ratio and truncating it.
func scaledSize(w, h int) (int, int) {
	switch {
	case w < MinWidth:
		return MinWidth, int(float64(MinWidth) / float64(w) * float64(h))
	case w > MaxWidth:
		return MaxWidth, int(float64(h) / (float64(w) / MaxWidth))
	}
	return w, h
}

// SocialSize returns the size ResizeForSocial produces for a w x h image.
func SocialSize(w, h int) (int, int) {
	r := cropRect(w, h)
	sw, sh := scaledSize(r.Dx(), r.Dy())
	r = cropRect(sw, sh)
	return r.Dx(), r.Dy()
}

// ResizeForSocial crops src to the allowed aspect ratio, scales it into the
// allowed width range, and crops again in case truncating the height moved
// the ratio out of range.
func ResizeForSocial(src image.Image) image.Image {
	img := crop(src, cropRect(src.Bounds().Dx(), src.Bounds().Dy()))
	w, h := scaledSize(img.Bounds().Dx(), img.Bounds().Dy())
	if w != img.Bounds().Dx() || h != img.Bounds().Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	return crop(img, cropRect(w, h))
}

// crop copies the region r, given relative to the bounds of src, into a new
// image anchored at the origin.
func crop(src image.Image, r image.Rectangle) image.Image {
	b := src.Bounds()
	if r.Eq(image.Rect(0, 0, b.Dx(), b.Dy())) {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min.Add(r.Min), draw.Src)
	return dst
}
