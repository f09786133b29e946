package dwt

import (
	"fmt"
	"sync"
)

// Cache keeps analysed sub-bands of one image so that several embeds or
// extracts with the same channel and block size skip the forward transform.
type Cache struct {
	data sync.Map
}

func NewCache() *Cache {
	var c Cache
	return &c
}

// Get returns a private copy of the sub-bands stored for (channel, block),
// running analyze on the first request.
func (c *Cache) Get(channel, block int, analyze func() [][]float64) [][]float64 {
	key := fmt.Sprintf("%d-%d", channel, block)
	if v, ok := c.data.Load(key); ok {
		return clone(v.([][]float64))
	}
	bands := analyze()
	actual, _ := c.data.LoadOrStore(key, bands)
	return clone(actual.([][]float64))
}

func clone(bands [][]float64) [][]float64 {
	result := make([][]float64, len(bands))
	for i, b := range bands {
		result[i] = make([]float64, len(b))
		_ = copy(result[i], b)
	}
	return result
}
