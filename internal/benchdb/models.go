package benchdb

import "time"

type (
	// Run describes one invocation of the benchmark.
	Run struct {
		ID        int64
		Source    string
		Scales    string // "y,u,v"
		Block     int
		Workers   int
		StartedAt time.Time
	}

	// Timing is the outcome of one size of a run.
	Timing struct {
		ID      int64
		RunID   int64
		Size    int // square edge in pixels
		Pixels  int
		MarkLen int

		ApplyMs   float64
		DecodeMs  float64
		JPEGBytes int
		PNGBytes  int
		// Recovered reports whether the PNG output decoded to the payload.
		Recovered bool
		Error     string

		// Unique constraint on (RunID, Size)
	}
)
