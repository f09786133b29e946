package score

import "gonum.org/v1/gonum/stat"

// Store collects the per-block scores voted for one bit position,
// in the order the blocks were visited.
type Store struct {
	scores []float64
}

func (s *Store) Add(value float64) {
	s.scores = append(s.scores, value)
}

// Mean returns the average score, or 0 when nothing was voted.
func (s *Store) Mean() float64 {
	if len(s.scores) == 0 {
		return 0
	}
	return stat.Mean(s.scores, nil)
}

func (s *Store) Count() int { return len(s.scores) }

func (s *Store) Scores() []float64 { return s.scores }

// Table maps every bit position of a mark to its Store.
type Table []Store

func NewTable(markLen int) Table {
	return make(Table, markLen)
}

// Add records v for the block visited at position at; positions wrap
// around the mark length.
func (t Table) Add(at int, v float64) {
	t[at%len(t)].Add(v)
}

func (t Table) Means() []float64 {
	means := make([]float64, len(t))
	for i := range t {
		means[i] = t[i].Mean()
	}
	return means
}

// Midpoint decides every bit by rescaling its mean score to [0, 255] and
// comparing against the centre of that range.
func Midpoint(means []float64) []bool {
	bits := make([]bool, len(means))
	for i, m := range means {
		bits[i] = m*255 > 127
	}
	return bits
}
