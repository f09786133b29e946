package dwt

// BlockMap maps row-major plane positions to a layout where every bw by bh
// tile is contiguous and tiles follow each other in row-major order.
// Samples outside the tiled area (right and bottom remainders) are stored
// after the last tile, so the mapping stays a permutation of the plane.
type BlockMap struct {
	width, height           int // plane dimensions
	blockWidth, blockHeight int

	tiledWidth, tiledHeight int // largest multiples of the block dimensions
	rightMargin             int // columns right of the tiled area
	blockArea               int
	tiledArea               int // tiledWidth * tiledHeight
	blockRowArea            int // tiledWidth * blockHeight
}

func NewBlockMap(w, h, bw, bh int) BlockMap {
	var m = BlockMap{
		width:       w,
		height:      h,
		blockWidth:  bw,
		blockHeight: bh,
	}
	m.tiledWidth, m.tiledHeight = w/bw*bw, h/bh*bh
	m.rightMargin = w - m.tiledWidth
	m.blockArea = bw * bh
	m.tiledArea = m.tiledWidth * m.tiledHeight
	m.blockRowArea = m.tiledWidth * bh
	return m
}

// Blocks reports how many whole tiles the plane holds.
func (m BlockMap) Blocks() int {
	return m.tiledArea / m.blockArea
}

func (m BlockMap) GetMap() []int {
	result := make([]int, m.width*m.height)
	for i := range result {
		result[i] = m.get(i)
	}
	return result
}

func (m BlockMap) get(i int) int {
	x, y := i%m.width, i/m.width
	if m.tiledHeight <= y {
		// bottom remainder keeps its row-major position
		return i
	}
	if mx := x - m.tiledWidth; mx >= 0 {
		// right remainder
		return m.tiledArea + y*m.rightMargin + mx
	}
	brow, bcol := y/m.blockHeight, x/m.blockWidth
	start := brow*m.blockRowArea + bcol*m.blockArea
	bx, by := x%m.blockWidth, y%m.blockHeight
	return start + by*m.blockWidth + bx
}
