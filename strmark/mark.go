package strmark

// Mark converts a text payload to the bits embedded in an image and back.
// size is the payload length in bits, the value that must be known out of
// band when extracting.
type Mark interface {
	Encode(src string) []bool
	// Len returns how many embedded bits carry a size-bit payload.
	Len(size int) int
	Decode(bits []bool, size int) string
}
