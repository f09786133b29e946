package apply

import (
	"bytes"
	"image"
	"strings"
)

// Filetype is an image container format.
type Filetype int

const (
	Unknown Filetype = iota
	JPEG
	PNG
	GIF
)

func (f Filetype) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case PNG:
		return "png"
	case GIF:
		return "gif"
	}
	return "unknown"
}

// ParseFiletype maps a format name or file extension to a Filetype.
// Anything not recognised is Unknown.
func ParseFiletype(s string) Filetype {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	s = strings.TrimPrefix(s, "image/")
	switch s {
	case "jpeg", "jpg":
		return JPEG
	case "png":
		return PNG
	case "gif":
		return GIF
	}
	return Unknown
}

// DetectFiletype sniffs the container of data. Formats that can be read but
// are not a Filetype, such as BMP, report Unknown.
func DetectFiletype(data []byte) Filetype {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Unknown
	}
	return ParseFiletype(format)
}
