// Package subsample imitates the chroma subsampling a lossy codec applies,
// so that embedding sees the chroma plane the codec will later reconstruct.
//
// Both modes average every sample group and replicate the average back into
// the group, which is what an encoder downsampling followed by a
// nearest-neighbour upsampling decoder produces.
package subsample

import "fmt"

type Mode int

const (
	None Mode = iota
	// Mode422 halves horizontal chroma resolution.
	Mode422
	// Mode420 halves horizontal and vertical chroma resolution.
	Mode420
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Mode422:
		return "4:2:2"
	case Mode420:
		return "4:2:0"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == None || m == Mode422 || m == Mode420
}

// Apply subsamples the w-wide plane in place.
func Apply(plane []float64, w int, mode Mode) {
	switch mode {
	case Mode422:
		apply(plane, w, 2, 1)
	case Mode420:
		apply(plane, w, 2, 2)
	}
}

// apply averages every gw by gh group; groups cut by the plane edge average
// only the samples they hold.
func apply(plane []float64, w, gw, gh int) {
	if w <= 0 {
		return
	}
	h := len(plane) / w
	for y0 := 0; y0 < h; y0 += gh {
		y1 := min(y0+gh, h)
		for x0 := 0; x0 < w; x0 += gw {
			x1 := min(x0+gw, w)
			var sum float64
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					sum += plane[y*w+x]
				}
			}
			avr := sum / float64((y1-y0)*(x1-x0))
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					plane[y*w+x] = avr
				}
			}
		}
	}
}
