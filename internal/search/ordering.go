package search

import (
	"sort"

	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/eval"
)

// shallowOrderingDepth is the depth threshold below which move
// ordering uses a 1-ply static eval of each child instead of the
// minimum evaluation across grandchildren.
const shallowOrderingDepth = 6

// orderMoves sorts moves descending by a shallow lookahead estimate
// from the mover's (teban's) perspective: for depth < 6, a 1-ply
// static eval of the child; otherwise the minimum evaluation across
// the child's own replies (its worst case, since the opponent moves
// next). Ties keep their original generation order (stable sort).
func orderMoves(n *eval.Network, b board.Board, depth int, moves []board.Move) []board.Move {
	if len(moves) < 2 {
		return moves
	}

	fteban := float32(b.Teban)
	scores := make([]float32, len(moves))
	for i, m := range moves {
		child, err := board.ApplyMove(b, m)
		if err != nil {
			continue
		}
		if depth < shallowOrderingDepth {
			scores[i] = eval.Forward(n, child) * fteban
			continue
		}
		grandMoves, ok := child.GenMoves()
		if !ok || len(grandMoves) == 0 {
			scores[i] = float32(child.Count()) * fteban
			continue
		}
		worst := float32(0)
		for gi, gm := range grandMoves {
			grandchild, err := board.ApplyMove(child, gm)
			if err != nil {
				continue
			}
			v := eval.Forward(n, grandchild) * fteban
			if gi == 0 || v < worst {
				worst = v
			}
		}
		scores[i] = worst
	}

	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})

	ordered := make([]board.Move, len(moves))
	for i, mi := range idx {
		ordered[i] = moves[mi]
	}
	return ordered
}

// cellPriority gives the static corner/edge/interior/X-square
// priority of a 1-indexed move, for use where a shallow evaluator
// lookahead is too slow. Corners are best, the diagonal neighbor of a
// corner (the X-square) is worst, edges beat interior cells.
func cellPriority(m board.Move) int {
	if m.IsPass() {
		return 0
	}
	x, y := int(m.X)-1, int(m.Y)-1
	return staticPriority[x][y]
}

var staticPriority = buildStaticPriority()

func buildStaticPriority() [board.NumCell][board.NumCell]int {
	var t [board.NumCell][board.NumCell]int
	last := board.NumCell - 1
	isCorner := func(x, y int) bool {
		return (x == 0 || x == last) && (y == 0 || y == last)
	}
	isXSquare := func(x, y int) bool {
		return (x == 1 || x == last-1) && (y == 1 || y == last-1)
	}
	isEdge := func(x, y int) bool {
		return x == 0 || x == last || y == 0 || y == last
	}
	for x := 0; x < board.NumCell; x++ {
		for y := 0; y < board.NumCell; y++ {
			switch {
			case isCorner(x, y):
				t[x][y] = 4
			case isXSquare(x, y):
				t[x][y] = 1
			case isEdge(x, y):
				t[x][y] = 3
			default:
				t[x][y] = 2
			}
		}
	}
	return t
}

// staticOrder sorts moves descending by cellPriority, for very shallow
// ordering where invoking the evaluator is too slow. Both this and
// orderMoves are legal move-ordering strategies: they change search
// efficiency only, never the returned score.
func staticOrder(moves []board.Move) []board.Move {
	ordered := make([]board.Move, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return cellPriority(ordered[i]) > cellPriority(ordered[j])
	})
	return ordered
}
