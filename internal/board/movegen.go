package board

// GenMoves enumerates legal placement moves for the side to move, in
// deterministic column-major order (x=0..8, y=0..8).
//
// Returns (nil, false) when the board has no blank cells at all (the
// game can only end by a full board or pass-pass). Returns ([], true)
// when there are blanks but no legal placement (the caller must
// pass). Otherwise returns the non-empty move list with ok=true.
func (b Board) GenMoves() ([]Move, bool) {
	if b.IsFull() {
		return nil, false
	}

	var moves []Move
	for x := 0; x < NumCell; x++ {
		for y := 0; y < NumCell; y++ {
			if b.IsFilled(x, y) {
				continue
			}
			if b.CheckReverse(x, y) {
				moves = append(moves, Move{uint8(x + 1), uint8(y + 1)})
			}
		}
	}
	return moves, true
}
