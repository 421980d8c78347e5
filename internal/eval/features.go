package eval

import "github.com/o-jill/ruversi-go/internal/board"

// Features is the flattened network input: 64 signed cell values
// (+1 black, -1 white, 0 blank) in column-major order, the side to
// move (+1/-1), and the black/white fixed-stone counts.
type Features struct {
	Cells [board.NumCell * board.NumCell]float32
	Teban float32
	FixedBlack float32
	FixedWhite float32
}

// Extract reads b into a Features vector.
func Extract(b board.Board) Features {
	var f Features
	for x := 0; x < board.NumCell; x++ {
		for y := 0; y < board.NumCell; y++ {
			idx := x*board.NumCell + y
			switch b.At(x, y) {
			case board.Black:
				f.Cells[idx] = 1
			case board.White:
				f.Cells[idx] = -1
			}
		}
	}
	f.Teban = float32(b.Teban)
	fb, fw := b.FixedStones()
	f.FixedBlack = float32(fb)
	f.FixedWhite = float32(fw)
	return f
}

// extractLanes derives the 64 signed cell values directly from the
// bitboard masks, 8 cells (one column) at a time, without building an
// intermediate per-cell byte array. The vectorized forward passes use
// this to mimic expanding one bitboard byte lane to sign-extended
// floats.
func extractLanes(b board.Board) (cells [64]float32) {
	for col := 0; col < board.NumCell; col++ {
		blackByte := byte(b.Black >> (col * 8))
		whiteByte := byte(b.White >> (col * 8))
		for row := 0; row < board.NumCell; row++ {
			bit := byte(1) << uint(row)
			idx := col*board.NumCell + row
			switch {
			case blackByte&bit != 0:
				cells[idx] = 1
			case whiteByte&bit != 0:
				cells[idx] = -1
			}
		}
	}
	return cells
}
