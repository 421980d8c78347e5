package search

import (
	"sync"

	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/eval"
	"github.com/o-jill/ruversi-go/internal/tt"
)

// sharedWindow is the mutex-protected (alpha, beta) pair the two root
// workers read-then-maybe-update after each top-level child (§4.5).
// Holding the lock is limited to these two O(1) operations; it is
// never held across recursion.
type sharedWindow struct {
	mu          sync.Mutex
	alpha, beta float32
}

func (w *sharedWindow) read() (alpha, beta float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.alpha, w.beta
}

func (w *sharedWindow) raise(val float32) {
	w.mu.Lock()
	if val > w.alpha {
		w.alpha = val
	}
	w.mu.Unlock()
}

// ParallelSearcher is the optional two-way root split: the root's
// legal moves are divided into two halves, each explored by its own
// goroutine against a shared (alpha, beta) window. Without the mutex
// update the worst case is redundant work, never a wrong score; the
// mutex only tightens the window the other worker searches with.
// Each worker owns a disjoint sub-arena and its own transposition
// table, since a Table is single-writer (§4.4); results are merged
// into a single best move/score/PV afterward. Moves beyond the
// two-way split are out of scope (non-goal: parallel root search
// beyond two symmetric halves).
type ParallelSearcher struct {
	Net      *eval.Network
	TT1, TT2 *tt.Table
}

// Search mirrors Searcher.Search (score from the side-to-move's
// perspective, ok=false on depth 0 or pass-pass) but splits the root
// and returns the principal variation directly. Positions with fewer than two legal moves (including a forced pass)
// fall back to a single-worker Searcher, since there is nothing to
// split.
func (p *ParallelSearcher) Search(root board.Board, depth int) (score float32, pv []board.Move, ok bool) {
	if depth == 0 || root.IsPassPass() {
		return 0, nil, false
	}

	moves, hasBlanks := root.GenMoves()
	if !hasBlanks {
		return float32(root.Count()) * terminalScale * float32(root.Teban), nil, true
	}
	if len(moves) < 2 {
		s := &Searcher{Net: p.Net, TT: p.TT1}
		sc, arena, rootIdx, ok := s.Search(root, depth)
		if !ok {
			return 0, nil, false
		}
		return sc, arena.PV(rootIdx), true
	}

	effective := EffectiveDepth(root.Blanks(), depth)
	half := len(moves) / 2
	left, right := moves[:half], moves[half:]

	shared := &sharedWindow{alpha: -Infinity, beta: Infinity}

	var leftResults, rightResults []rootResult
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		leftResults = p.searchHalf(root, left, effective, shared, p.TT1)
	}()
	rightResults = p.searchHalf(root, right, effective, shared, p.TT2)
	wg.Wait()

	best := rootResult{score: -Infinity}
	for _, r := range leftResults {
		if r.score > best.score {
			best = r
		}
	}
	for _, r := range rightResults {
		if r.score > best.score {
			best = r
		}
	}
	return best.score, best.pv, true
}

type rootResult struct {
	move  board.Move
	score float32
	pv    []board.Move
}

// searchHalf explores one half of the root's moves against a
// dedicated sub-arena and table, tightening shared on every top-level
// child.
func (p *ParallelSearcher) searchHalf(root board.Board, moves []board.Move, depth int, shared *sharedWindow, t *tt.Table) []rootResult {
	s := &Searcher{Net: p.Net, TT: t}
	out := make([]rootResult, 0, len(moves))
	for _, m := range moves {
		child, err := board.ApplyMove(root, m)
		if err != nil {
			continue
		}
		alpha, beta := shared.read()
		arena := NewArena(1024)
		val, idx := s.negamax(arena, child, depth-1, -beta, -alpha)
		val = -val
		shared.raise(val)

		pv := append([]board.Move{m}, arena.PV(idx)...)
		out = append(out, rootResult{move: m, score: val, pv: pv})
	}
	return out
}
