package search

import (
	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/eval"
	"github.com/o-jill/ruversi-go/internal/tt"
)

// Infinity bounds the alpha-beta window; it is comfortably larger
// than any reachable score (terminalScale * 64 stones).
const Infinity = float32(1 << 20)

// terminalScale multiplies the signed stone count at a resolved leaf.
// It must exceed the evaluator's output magnitude so an endgame win
// always outranks a heuristic estimate.
const terminalScale = 10

// Endgame depth policy thresholds (§4.5): within fullSolveBlanks of
// the end, search to fullSolveDepth (exact game-theoretic value);
// within extendBlanks, add extendPly to the nominal depth.
const (
	fullSolveBlanks = 12
	fullSolveDepth  = 12
	extendBlanks    = 18
	extendPly       = 2
)

// EffectiveDepth applies the endgame depth policy to a nominal depth.
func EffectiveDepth(blanks, nominal int) int {
	switch {
	case blanks <= fullSolveBlanks:
		return fullSolveDepth
	case blanks <= extendBlanks:
		return nominal + extendPly
	default:
		return nominal
	}
}

// Searcher runs negamax alpha-beta search against a shared evaluator
// and an optional transposition table (nil disables it). The table
// memoizes leaf static evaluations only, never an interior node's
// search result: a fail-soft negamax score is a bound, not an exact
// value, unless the window happened to not cut, so caching it at
// interior nodes would make the reported score depend on probe order.
type Searcher struct {
	Net *eval.Network
	TT  *tt.Table

	Nodes uint64
}

// Search explores root to nominal depth D (after the endgame depth
// policy is applied) and returns the score from the side-to-move's
// perspective, the arena it populated, and the root node's index.
// Returns ok=false if depth==0 or the position is already pass-pass.
func (s *Searcher) Search(root board.Board, depth int) (score float32, arena *Arena, rootIdx int, ok bool) {
	if depth == 0 || root.IsPassPass() {
		return 0, nil, 0, false
	}
	effective := EffectiveDepth(root.Blanks(), depth)
	arena = NewArena(4096)
	s.Nodes = 0
	score, rootIdx = s.negamax(arena, root, effective, -Infinity, Infinity)
	return score, arena, rootIdx, true
}

// negamax returns the score from b's side-to-move's perspective and
// the arena index of the node allocated for b. The node's Move field
// is left zero; the caller (the parent frame) fills it in with the
// move that produced b, since negamax itself only knows b.
func (s *Searcher) negamax(arena *Arena, b board.Board, depth int, alpha, beta float32) (float32, int) {
	s.Nodes++
	idx := arena.Alloc(board.Move{}, depth, b.Teban)
	node := arena.At(idx)
	node.Kyokumen = 1

	if b.IsPassPass() {
		score := float32(b.Count()) * terminalScale * float32(b.Teban)
		node.Score, node.BestScore = score, score
		return score, idx
	}

	if depth <= 0 {
		if s.TT != nil {
			if ttScore, found := s.TT.Probe(b); found {
				score := ttFromFixed(ttScore)
				node.Score, node.BestScore = score, score
				return score, idx
			}
		}
		score := eval.Forward(s.Net, b) * float32(b.Teban)
		if s.TT != nil {
			s.TT.Store(b, ttToFixed(score))
		}
		node.Score, node.BestScore = score, score
		return score, idx
	}

	moves, hasBlanks := b.GenMoves()
	if !hasBlanks {
		score := float32(b.Count()) * terminalScale * float32(b.Teban)
		node.Score, node.BestScore = score, score
		return score, idx
	}

	passForced := len(moves) == 0
	if passForced {
		moves = []board.Move{board.Pass}
	} else {
		moves = orderMoves(s.Net, b, depth, moves)
	}

	newAlpha := alpha
	bestScore := -Infinity
	bestChild := noChild

	for _, m := range moves {
		child, err := board.ApplyMove(b, m)
		if err != nil {
			continue
		}
		nextDepth := depth - 1
		if m.IsPass() {
			// A forced pass doesn't spend a ply: the opponent is searched
			// at the same depth rather than depth-1.
			nextDepth = depth
		}

		childScore, childIdx := s.negamax(arena, child, nextDepth, -beta, -newAlpha)
		childScore = -childScore
		arena.At(childIdx).Move = m
		arena.AddChild(idx, childIdx)

		node = arena.At(idx)
		node.Kyokumen += arena.At(childIdx).Kyokumen

		if childScore > bestScore {
			bestScore = childScore
			bestChild = childIdx
		}
		if bestScore > newAlpha {
			newAlpha = bestScore
		}
		if newAlpha >= beta {
			break
		}
	}

	node = arena.At(idx)
	node.Score, node.BestScore, node.BestChild = bestScore, bestScore, bestChild

	return bestScore, idx
}

// ttFixedScale converts between the search's float32 scores and the
// transposition table's fixed-point int16 storage.
const ttFixedScale = 32

func ttToFixed(score float32) int16 {
	v := score * ttFixedScale
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	default:
		return int16(v)
	}
}

func ttFromFixed(v int16) float32 {
	return float32(v) / ttFixedScale
}
