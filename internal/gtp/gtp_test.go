package gtp

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/eval"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	n := eval.New()
	n.Init(rand.New(rand.NewSource(1)))
	return New(n, 2)
}

func run(e *Engine, commands string) string {
	var out strings.Builder
	e.Run(strings.NewReader(commands), &out)
	return out.String()
}

func TestProtocolBasics(t *testing.T) {
	e := newTestEngine(t)
	out := run(e, "protocol_version\nname\nversion\nlist_games\n")
	if !strings.Contains(out, "= 2\n\n") {
		t.Errorf("protocol_version reply missing: %q", out)
	}
	if !strings.Contains(out, "= "+engineName+"\n\n") {
		t.Errorf("name reply missing: %q", out)
	}
	if !strings.Contains(out, "= Othello\n\n") {
		t.Errorf("list_games reply missing: %q", out)
	}
}

func TestBoardsizeRejectsNonEight(t *testing.T) {
	e := newTestEngine(t)
	out := run(e, "boardsize 19\n")
	if !strings.HasPrefix(out, "?") {
		t.Errorf("boardsize 19 should be rejected: %q", out)
	}
	out = run(e, "boardsize 8\n")
	if !strings.HasPrefix(out, "=") {
		t.Errorf("boardsize 8 should be accepted: %q", out)
	}
}

func TestPlayAndGenmove(t *testing.T) {
	e := newTestEngine(t)
	// f4 is one of black's four legal opening moves.
	out := run(e, "clear_board\nplay black f4\ngenmove white\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 || lines[2] != "= " {
		t.Fatalf("play reply malformed: %q", out)
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "= ") || last == "= " {
		t.Errorf("genmove should return a coordinate or pass: %q", last)
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	e := newTestEngine(t)
	out := run(e, "play black a1\n")
	if !strings.HasPrefix(out, "?") {
		t.Errorf("a1 is not a legal opening move, want rejection: %q", out)
	}
}

func TestParseCoordRoundTrip(t *testing.T) {
	m, err := parseCoord("d3")
	if err != nil {
		t.Fatalf("parseCoord: %v", err)
	}
	want := board.Move{X: 4, Y: 3}
	if m != want {
		t.Errorf("parseCoord(d3) = %v, want %v", m, want)
	}
	if got := coordString(want); got != "d3" {
		t.Errorf("coordString round trip = %q, want d3", got)
	}
}

func TestQuitEndsSession(t *testing.T) {
	e := newTestEngine(t)
	out := run(e, "quit\nname\n")
	if strings.Contains(out, engineName) {
		t.Errorf("commands after quit should not run: %q", out)
	}
}
