// Package board implements the 8x8 Othello bitboard model: placement,
// flipping, legality, rotation, fixed-stone counting and the RFEN/OBF
// text forms.
package board

import (
	"errors"
	"math/bits"
)

// Side identifies whose turn it is, or that the game has ended.
type Side int8

const (
	Black   Side = 1
	None    Side = 0
	White   Side = -1
)

// NumCell is the board edge length; Othello is fixed at 8x8 (non-goal:
// other sizes).
const NumCell = 8

// ErrOccupied is returned by ApplyMove when the target cell is not
// blank. The search path never produces it (the generator is the sole
// source of moves); the interactive strategy checks input against
// GenMoves before applying it, so it does not see it either.
var ErrOccupied = errors.New("board: stone exists")

// Board is an immutable snapshot: black/white bitboards (disjoint),
// side to move, and the pass counter. Every mutator below returns a
// new Board; the receiver is never modified.
type Board struct {
	Black uint64
	White uint64
	Teban Side
	Pass  int8
}

// index maps column x (0..7), row y (0..7) to a bit position, column
// major: the low byte of the mask is column 0, matching
// original_source/src/bitboard.rs.
func index(x, y int) int {
	return x*NumCell + y
}

// New returns the standard Othello starting position.
func New() Board {
	return Board{
		Black: (1 << index(3, 3)) | (1 << index(4, 4)),
		White: (1 << index(4, 3)) | (1 << index(3, 4)),
		Teban: Black,
	}
}

// At returns the stone at column x, row y (0-indexed).
func (b Board) At(x, y int) Side {
	bit := uint64(1) << index(x, y)
	switch {
	case b.Black&bit != 0:
		return Black
	case b.White&bit != 0:
		return White
	default:
		return None
	}
}

// IsFilled reports whether any stone occupies (x, y).
func (b Board) IsFilled(x, y int) bool {
	bit := uint64(1) << index(x, y)
	return (b.Black|b.White)&bit != 0
}

// IsFull reports whether every cell holds a stone.
func (b Board) IsFull() bool {
	return (b.Black | b.White) == ^uint64(0)
}

// Blanks returns the number of empty cells.
func (b Board) Blanks() int {
	return NumCell*NumCell - bits.OnesCount64(b.Black) - bits.OnesCount64(b.White)
}

// Count returns popcount(black) - popcount(white), the signed stone
// difference from black's perspective.
func (b Board) Count() int8 {
	return int8(bits.OnesCount64(b.Black)) - int8(bits.OnesCount64(b.White))
}

// IsPassPass reports whether both sides passed consecutively, ending
// the game regardless of remaining blanks.
func (b Board) IsPassPass() bool {
	return b.Pass >= 2
}
