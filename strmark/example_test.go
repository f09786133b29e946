package strmark_test

import (
	"fmt"

	"github.com/yyyoichi/watermark_maxdwt/strmark"
)

func ExampleDecode() {
	bits := strmark.Encode("SDV2")
	fmt.Println(len(bits))
	fmt.Println(strmark.Decode(bits))

	// Flip the top bit of the first byte.
	bits[0] = !bits[0]
	fmt.Printf("%q\n", strmark.Decode(bits))
	// Output:
	// 32
	// SDV2
	// "�DV2"
}
