package board

import "fmt"

// Move is a stone placement (X, Y in 1..=8) or, as the reserved
// (0, 0) value, a pass. Moves are only produced by GenMoves and only
// consumed by ApplyMove.
type Move struct {
	X, Y uint8
}

// Pass is the reserved pass move.
var Pass = Move{0, 0}

// IsPass reports whether m is the pass move.
func (m Move) IsPass() bool {
	return m.X == 0 && m.Y == 0
}

// String renders the move in algebraic form, e.g. "d3", or "pass".
func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%c%d", 'a'+m.X-1, m.Y)
}
