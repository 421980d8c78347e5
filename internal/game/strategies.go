package game

import (
	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/eval"
	"github.com/o-jill/ruversi-go/internal/search"
	"github.com/o-jill/ruversi-go/internal/storage"
)

// NewSearchStrategy wraps a serial Searcher: think to depth, then
// play the PV's first move. Declines when the search declines (the
// position is pass-pass) or yields an empty PV (a full board).
func NewSearchStrategy(s *search.Searcher, depth int) Strategy {
	return func(b board.Board) (board.Move, bool) {
		_, arena, rootIdx, ok := s.Search(b, depth)
		if !ok {
			return board.Move{}, false
		}
		pv := arena.PV(rootIdx)
		if len(pv) == 0 {
			return board.Move{}, false
		}
		return pv[0], true
	}
}

// NewParallelSearchStrategy is the two-way-root-split analog of
// NewSearchStrategy.
func NewParallelSearchStrategy(p *search.ParallelSearcher, depth int) Strategy {
	return func(b board.Board) (board.Move, bool) {
		_, pv, ok := p.Search(b, depth)
		if !ok || len(pv) == 0 {
			return board.Move{}, false
		}
		return pv[0], true
	}
}

// PlaySelfPlay runs one game with netBlack searching for black and
// netWhite for white, each through its own Searcher; neither Searcher
// uses a transposition table. Swapping netBlack and netWhite between two calls is the
// "weight sets swapped between sides" variant: running both orderings
// of a matched pair of games cancels the first-move advantage when
// comparing two weight sets.
func PlaySelfPlay(start board.Board, netBlack, netWhite *eval.Network, depth int) storage.Kifu {
	black := NewSearchStrategy(&search.Searcher{Net: netBlack}, depth)
	white := NewSearchStrategy(&search.Searcher{Net: netWhite}, depth)
	return Play(start, black, white)
}
