package mark_test

import (
	"fmt"

	"github.com/yyyoichi/watermark_maxdwt/mark"
)

// ExampleNewString demonstrates how to create a mark from a string and decode it back.
func ExampleNewString() {
	m := mark.NewString("Hello", mark.WithoutECC())

	fmt.Printf("Size: %d bits (= %d bytes * 8)\n", m.Size(), len([]byte("Hello")))
	fmt.Println(m.Decode().String())
	// Output:
	// Size: 40 bits (= 5 bytes * 8)
	// Hello
}

// ExampleNewBools demonstrates how to create a mark from boolean slice.
func ExampleNewBools() {
	m := mark.NewBools([]bool{true, false, true, true})

	fmt.Printf("Size: %d bits\n", m.Size())
	fmt.Printf("%08b\n", m.Decode().Bytes()[0])
	// Output:
	// Size: 4 bits
	// 10110000
}

// ExampleNewExtract demonstrates how to decode extracted bits.
func ExampleNewExtract() {
	embedded := mark.NewString("Test")

	// In a real scenario these bits come from the watermarked image.
	extracted := embedded.Bits()
	extracted[3] = !extracted[3]

	decoded := mark.NewExtract(embedded.Size()).Decode(extracted)
	fmt.Println(decoded.String())
	// Output:
	// Test
}
