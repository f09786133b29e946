package mark

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBits(n int, seed int64) []bool {
	r := rand.New(rand.NewSource(seed))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.Intn(2) == 1
	}
	return bits
}

func TestShuffledGolay(t *testing.T) {
	var sg shuffledgolay = 12345
	t.Run("encode length", func(t *testing.T) {
		for size := range 64 * 4 {
			encoded := sg.encode(randomBits(size, int64(size)))
			assert.Len(t, encoded, sg.encodedLen(size), "size %d", size)
		}
	})

	const size = 128
	want := randomBits(size, 1)

	t.Run("encode/decode", func(t *testing.T) {
		encoded := sg.encode(want)
		assert.Equal(t, want, sg.decode(encoded, size))
	})

	t.Run("corrects errors", func(t *testing.T) {
		encoded := sg.encode(want)
		n := len(encoded)
		for _, i := range []int{0, n / 2, n - 1} {
			encoded[i] = !encoded[i]
		}
		assert.Equal(t, want, sg.decode(encoded, size))
	})

	t.Run("uneven size", func(t *testing.T) {
		for _, size := range []int{1, 11, 13, 32, 33} {
			bits := randomBits(size, int64(size))
			assert.Equal(t, bits, sg.decode(sg.encode(bits), size), "size %d", size)
		}
	})

	t.Run("seed permutes", func(t *testing.T) {
		a := sg.permutation(48)
		b := shuffledgolay(54321).permutation(48)
		assert.ElementsMatch(t, a, b)
		assert.NotEqual(t, a, b)
		assert.Equal(t, a, sg.permutation(48))
	})

	t.Run("wrong seed", func(t *testing.T) {
		encoded := sg.encode(want)
		assert.NotEqual(t, want, shuffledgolay(54321).decode(encoded, size))
	})
}

func TestWithoutECC(t *testing.T) {
	var we withoutecc
	bits := randomBits(20, 2)
	encoded := we.encode(bits)
	require.Equal(t, bits, encoded)
	encoded[0] = !encoded[0]
	assert.NotEqual(t, bits[0], encoded[0], "encode returns a copy")

	assert.Equal(t, bits[:8], we.decode(bits, 8))
	assert.Equal(t, append(bits, false, false), we.decode(bits, 22))
	assert.Equal(t, 20, we.encodedLen(20))
}

func TestPackUnpack(t *testing.T) {
	bits := randomBits(70, 3)
	data, n := pack(bits)
	assert.Equal(t, 70, n)
	assert.Len(t, data, 2)
	assert.Equal(t, bits, unpack(data, n))
	assert.Equal(t, append(bits, false, false), unpack(data, 72))
}
