package mark

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option selects how payload bits are protected before embedding.
	Option func(*config)
	config struct {
		codec codec
	}
	// codec maps payload bits to embedded bits and back. decode accepts
	// exactly encodedLen(size) bits.
	codec interface {
		encode(bits []bool) []bool
		decode(bits []bool, size int) []bool
		encodedLen(size int) int
	}
)

// WithoutECC embeds the payload bits as they are.
func WithoutECC() Option {
	return func(c *config) {
		c.codec = withoutecc{}
	}
}

// WithGolay protects the payload with a Golay(24,12) code, correcting up to
// three flipped bits per 24-bit codeword. The codeword bits are shuffled with
// seed so that a damaged image region spreads its errors over many codewords.
func WithGolay(seed int64) Option {
	return func(c *config) {
		c.codec = shuffledgolay(seed)
	}
}

func newConfig(opts ...Option) config {
	c := config{codec: shuffledgolay(DefaultShuffleSeed)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
