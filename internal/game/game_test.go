package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/eval"
	"github.com/o-jill/ruversi-go/internal/search"
	"github.com/o-jill/ruversi-go/internal/storage"
)

// firstMoveStrategy always plays the first move GenMoves reports, for
// a fast, deterministic opponent in tests that don't need real search
// strength.
func firstMoveStrategy(b board.Board) (board.Move, bool) {
	moves, ok := b.GenMoves()
	if !ok || len(moves) == 0 {
		return board.Move{}, false
	}
	return moves[0], true
}

func TestPlayTerminatesAndLabelsOutcome(t *testing.T) {
	k := Play(board.New(), firstMoveStrategy, firstMoveStrategy)

	if len(k.Plies) == 0 {
		t.Fatalf("Play recorded no plies")
	}

	b := board.New()
	for _, p := range k.Plies {
		next, err := board.ApplyMove(b, board.Move{X: p.Move.X, Y: p.Move.Y})
		if err != nil {
			t.Fatalf("recorded ply %+v does not replay: %v", p, err)
		}
		b = next
	}
	if !b.IsPassPass() && !b.IsFull() {
		t.Errorf("replayed game did not reach a terminal position")
	}

	switch sign(b.Count()) {
	case k.Outcome:
	default:
		t.Errorf("Outcome = %d, want sign(%d)", k.Outcome, b.Count())
	}
}

func TestPlaySelfPlaySwappedWeightsBothTerminate(t *testing.T) {
	n1 := eval.New()
	n1.Init(rand.New(rand.NewSource(1)))
	n2 := eval.New()
	n2.Init(rand.New(rand.NewSource(2)))

	k1 := PlaySelfPlay(board.New(), n1, n2, 2)
	k2 := PlaySelfPlay(board.New(), n2, n1, 2)

	if len(k1.Plies) == 0 || len(k2.Plies) == 0 {
		t.Fatalf("self-play games recorded no plies")
	}
}

func TestSearchStrategyDeclinesOnPassPass(t *testing.T) {
	n := eval.New()
	n.Init(rand.New(rand.NewSource(1)))
	strat := NewSearchStrategy(&search.Searcher{Net: n}, 4)

	b := board.New()
	b.Pass = 2
	if _, ok := strat(b); ok {
		t.Errorf("search strategy should decline a pass-pass position")
	}
}

func TestHumanStrategyRePromptsOnIllegalMove(t *testing.T) {
	// Black(d4,e5) vs White(e4,d5): black to move, whose only legal
	// placements are e3, f4, c5, d6.
	b, err := board.ParseRFEN("8/8/8/3Aa3/3aA3/8/8/8 b")
	if err != nil {
		t.Fatalf("ParseRFEN: %v", err)
	}

	in := strings.NewReader("z9\nd3\nf4\n")
	var out strings.Builder
	strat := HumanStrategy(in, &out)

	m, ok := strat(b)
	if !ok {
		t.Fatalf("HumanStrategy declined unexpectedly")
	}
	if want := (board.Move{X: 6, Y: 4}); m != want {
		t.Errorf("move = %v, want %v", m, want)
	}
	if !strings.Contains(out.String(), "not allowed") {
		t.Errorf("expected a rejection message for the illegal d3 attempt")
	}
}

func TestHumanStrategyAutoPassesWithNoMoves(t *testing.T) {
	full, err := board.ParseRFEN("H/H/H/H/H/H/H/H b")
	if err != nil {
		t.Fatalf("ParseRFEN: %v", err)
	}
	strat := HumanStrategy(strings.NewReader(""), &strings.Builder{})
	if _, ok := strat(full); ok {
		t.Errorf("HumanStrategy should decline when there are no legal moves")
	}
}

func TestToTextFormat(t *testing.T) {
	k := storage.Kifu{
		Plies: []storage.Ply{
			{Move: storage.Move{X: 4, Y: 3}, Side: 1, RFEN: "8/8/8/3Aa3/3aA3/8/8/8 b"},
			{Move: storage.Move{}, Side: -1, RFEN: "8/8/8/3AA3/3aA3/8/8/8 w"},
		},
		Outcome: 1,
	}
	text := ToText(k)
	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("ToText produced %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "0 @@ d3 ") {
		t.Errorf("line 0 = %q, want prefix %q", lines[0], "0 @@ d3 ")
	}
	if !strings.HasPrefix(lines[1], "1 [] -- ") {
		t.Errorf("line 1 = %q, want prefix %q", lines[1], "1 [] -- ")
	}
	if lines[2] != "# outcome 1" {
		t.Errorf("line 2 = %q, want %q", lines[2], "# outcome 1")
	}
}
