package board

// The eight directions are expressed as bit shifts over the
// column-major index(x,y) = x*8+y layout: a column is 8 contiguous
// bits, so moving to the next column shifts by 8; moving to the next
// row within a column shifts by 1.
type direction struct {
	shiftLeft bool // true: bit <<= amount; false: bit >>= amount
	amount    uint
	// steps returns how many cells are available in this direction
	// from (x, y) before running off the board.
	steps func(x, y int) int
}

var directions = [8]direction{
	{true, 1, func(x, y int) int { return NumCell - 1 - y }},                         // down       (x,   y+1)
	{false, 1, func(x, y int) int { return y }},                                      // up         (x,   y-1)
	{true, NumCell, func(x, y int) int { return NumCell - 1 - x }},                   // right      (x+1, y)
	{false, NumCell, func(x, y int) int { return x }},                                // left       (x-1, y)
	{true, NumCell + 1, func(x, y int) int { return min(NumCell-1-x, NumCell-1-y) }}, // down-right (x+1, y+1)
	{true, NumCell - 1, func(x, y int) int { return min(NumCell-1-x, y) }},           // up-right   (x+1, y-1)
	{false, NumCell + 1, func(x, y int) int { return min(x, y) }},                    // up-left    (x-1, y-1)
	{false, NumCell - 1, func(x, y int) int { return min(x, NumCell-1-y) }},          // down-left  (x-1, y+1)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// flipMask walks all 8 directions from the placement bit and returns
// the union of opponent bits that would be captured by placing the
// mover's stone at (x, y) on top of (mine, oppo).
func flipMask(mine, oppo uint64, x, y int) uint64 {
	pos := uint64(1) << index(x, y)
	var all uint64
	for _, d := range directions {
		n := d.steps(x, y)
		bit := pos
		var rev uint64
		for i := 0; i < n; i++ {
			if d.shiftLeft {
				bit <<= d.amount
			} else {
				bit >>= d.amount
			}
			if oppo&bit == 0 {
				break
			}
			rev |= bit
		}
		if rev != 0 && mine&bit != 0 {
			all |= rev
		}
	}
	return all
}

// CheckReverse reports whether placing the side-to-move's stone at
// (x, y) (0-indexed) would flip at least one opposing stone.
func (b Board) CheckReverse(x, y int) bool {
	mine, oppo := b.sides()
	return flipMask(mine, oppo, x, y) != 0
}

func (b Board) sides() (mine, oppo uint64) {
	if b.Teban == Black {
		return b.Black, b.White
	}
	return b.White, b.Black
}
