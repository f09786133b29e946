// Package mark frames a payload for embedding, optionally protected by a
// shuffled Golay code, and recovers it from extracted bits.
package mark

import (
	"github.com/yyyoichi/watermark_maxdwt/internal/bitconv"
	"github.com/yyyoichi/watermark_maxdwt/strmark"
)

// Mark holds the encoded bits of a payload.
type Mark struct {
	size int
	bits []bool
	cfg  config
}

// NewBools encodes data. By default, it uses the Golay code with shuffle
// error correction algorithm.
func NewBools(data []bool, opts ...Option) *Mark {
	cfg := newConfig(opts...)
	return &Mark{
		size: len(data),
		bits: cfg.codec.encode(data),
		cfg:  cfg,
	}
}

func NewBytes(data []byte, opts ...Option) *Mark {
	return NewBools(bitconv.BytesToBools(data), opts...)
}

func NewString(data string, opts ...Option) *Mark {
	return NewBytes([]byte(data), opts...)
}

// Bits returns the encoded bits to embed.
func (m *Mark) Bits() []bool {
	return append([]bool(nil), m.bits...)
}

// Len returns the number of encoded bits, which is the mark length the
// extractor must be given.
func (m *Mark) Len() int {
	return len(m.bits)
}

// Size returns the number of payload bits.
func (m *Mark) Size() int {
	return m.size
}

// Extract returns the matching extractor for this mark.
func (m *Mark) Extract() *Extract {
	return &Extract{size: m.size, cfg: m.cfg}
}

// Decode decodes the mark's own encoded bits.
func (m *Mark) Decode() *Decoded {
	return m.Extract().Decode(m.bits)
}

// Extract decodes extracted bits of a payload of known size.
type Extract struct {
	size int
	cfg  config
}

// NewExtract prepares decoding of a size-bit payload; opts must match the
// ones the mark was created with.
func NewExtract(size int, opts ...Option) *Extract {
	return &Extract{size: size, cfg: newConfig(opts...)}
}

// Len returns how many bits must be extracted from the image.
func (e *Extract) Len() int {
	return e.cfg.codec.encodedLen(e.size)
}

func (e *Extract) Size() int {
	return e.size
}

// Decode recovers the payload. bits shorter than Len are padded with false,
// longer ones are cut.
func (e *Extract) Decode(bits []bool) *Decoded {
	if e.size == 0 {
		return &Decoded{}
	}
	data := make([]bool, e.Len())
	_ = copy(data, bits)
	return &Decoded{bits: e.cfg.codec.decode(data, e.size)}
}

// Decoded is a recovered payload.
type Decoded struct {
	bits []bool
}

func (d *Decoded) Bools() []bool {
	return append([]bool(nil), d.bits...)
}

// Bytes packs the payload, padding a trailing partial byte with zero bits.
func (d *Decoded) Bytes() []byte {
	return bitconv.BoolsToBytes(d.bits)
}

// String reads the whole bytes of the payload as UTF-8, replacing invalid
// sequences with U+FFFD.
func (d *Decoded) String() string {
	return strmark.Decode(d.bits)
}

var _ strmark.Mark = (*Text)(nil)

// Text is a text payload codec that frames the payload bytes with opts.
type Text struct {
	opts []Option
}

func NewText(opts ...Option) *Text {
	return &Text{opts: opts}
}

func (t *Text) Encode(src string) []bool {
	return NewString(src, t.opts...).Bits()
}

// Len returns how many bits carry a size-bit payload.
func (t *Text) Len(size int) int {
	return NewExtract(size, t.opts...).Len()
}

func (t *Text) Decode(bits []bool, size int) string {
	return NewExtract(size, t.opts...).Decode(bits).String()
}
