// Package game drives a full Othello game between two strategies,
// recording every ply for the trainer.
package game

import (
	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/storage"
)

// Strategy chooses a move for a position, or declines by returning
// ok=false. A decline is always recorded and applied as a pass, even
// on a position that does have legal moves; the driver trusts a
// strategy's decline rather than re-deriving legality itself.
type Strategy func(b board.Board) (m board.Move, ok bool)

// Play drives a full game from start, asking black's Strategy on
// black's turns and white's on white's, until the game ends by
// pass-pass or a full board. Each ply is recorded against the RFEN of
// the position it was played from; the finished kifu is labeled with
// the sign of the final stone count.
func Play(start board.Board, black, white Strategy) storage.Kifu {
	b := start
	var plies []storage.Ply

	for {
		strategy := black
		if b.Teban == board.White {
			strategy = white
		}

		rfen := b.ToRFEN()
		teban := b.Teban

		m, ok := strategy(b)
		if !ok {
			m = board.Pass
		}
		next, err := board.ApplyMove(b, m)
		if err != nil {
			m = board.Pass
			next, _ = board.ApplyMove(b, board.Pass)
		}

		plies = append(plies, storage.Ply{
			Move: storage.Move{X: m.X, Y: m.Y},
			Side: int8(teban),
			RFEN: rfen,
		})
		b = next

		if b.IsPassPass() || b.IsFull() {
			break
		}
	}

	return storage.Kifu{Plies: plies, Outcome: sign(b.Count())}
}

func sign(n int8) int8 {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
