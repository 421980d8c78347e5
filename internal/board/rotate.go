package board

import "math/bits"

// Rotate180 returns the board rotated a half turn. Under the
// column-major index(x,y)=x*8+y layout this is exactly reversing the
// bit order of each mask.
func (b Board) Rotate180() Board {
	return Board{
		Black: bits.Reverse64(b.Black),
		White: bits.Reverse64(b.White),
		Teban: b.Teban,
		Pass:  b.Pass,
	}
}

// Rotate90 returns the board rotated a quarter turn counterclockwise
// (as drawn with row 0 at the top): (x, y) -> (y, 7-x).
func (b Board) Rotate90() Board {
	var black, white uint64
	for x := 0; x < NumCell; x++ {
		newY := NumCell - 1 - x
		for y := 0; y < NumCell; y++ {
			newX := y
			from := index(x, y)
			to := index(newX, newY)
			bit := uint64(1) << from
			if to >= from {
				black |= (bit & b.Black) << uint(to-from)
				white |= (bit & b.White) << uint(to-from)
			} else {
				black |= (bit & b.Black) >> uint(from-to)
				white |= (bit & b.White) >> uint(from-to)
			}
		}
	}
	return Board{Black: black, White: white, Teban: b.Teban, Pass: b.Pass}
}
