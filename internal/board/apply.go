package board

// ApplyMove returns a new Board with m applied. For a placement move
// (1-indexed X, Y), the target cell must be blank; all flips
// implied by the 8-direction walk are applied atomically, side to
// move toggles, and the pass counter resets to 0. For the reserved
// Pass move, side to move toggles and the pass counter increments.
// The receiver is never mutated.
func ApplyMove(b Board, m Move) (Board, error) {
	if m.IsPass() {
		return Board{Black: b.Black, White: b.White, Teban: -b.Teban, Pass: b.Pass + 1}, nil
	}

	x, y := int(m.X)-1, int(m.Y)-1
	if b.IsFilled(x, y) {
		return Board{}, ErrOccupied
	}

	mine, oppo := b.sides()
	flips := flipMask(mine, oppo, x, y)
	pos := uint64(1) << index(x, y)

	mine = mine | flips | pos
	oppo = oppo &^ flips

	next := Board{Teban: -b.Teban}
	if b.Teban == Black {
		next.Black, next.White = mine, oppo
	} else {
		next.White, next.Black = mine, oppo
	}
	return next, nil
}
