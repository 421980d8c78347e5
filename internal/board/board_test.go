package board

import "testing"

func TestNewStandardOpening(t *testing.T) {
	got := New()
	want, err := ParseRFEN("8/8/8/3Aa3/3aA3/8/8/8 b")
	if err != nil {
		t.Fatalf("ParseRFEN: %v", err)
	}
	if got.Black != want.Black || got.White != want.White || got.Teban != want.Teban {
		t.Fatalf("New() = %+v, want %+v", got, want)
	}
}

func TestGenMovesOpening(t *testing.T) {
	b, err := ParseRFEN("8/8/8/3Aa3/3aA3/8/8/8 b")
	if err != nil {
		t.Fatalf("ParseRFEN: %v", err)
	}
	moves, ok := b.GenMoves()
	if !ok {
		t.Fatalf("GenMoves: board unexpectedly full")
	}
	want := []Move{{3, 5}, {4, 6}, {5, 3}, {6, 4}}
	if len(moves) != len(want) {
		t.Fatalf("GenMoves = %v, want %v", moves, want)
	}
	for i, m := range want {
		if moves[i] != m {
			t.Errorf("GenMoves[%d] = %v, want %v", i, moves[i], m)
		}
	}
}

func TestFullBoardFixedAndCount(t *testing.T) {
	b, err := ParseRFEN("H/H/H/H/H/H/H/H b")
	if err != nil {
		t.Fatalf("ParseRFEN: %v", err)
	}
	if got := b.Count(); got != 64 {
		t.Errorf("Count() = %d, want 64", got)
	}
	if !b.IsFull() {
		t.Errorf("IsFull() = false, want true")
	}
	if _, ok := b.GenMoves(); ok {
		t.Errorf("GenMoves ok = true on a full board, want false")
	}
	bl, wh := b.FixedStones()
	if bl != 64 || wh != 0 {
		t.Errorf("FixedStones() = (%d, %d), want (64, 0)", bl, wh)
	}
}

func TestApplyMoveCornerFlipsWholeBoard(t *testing.T) {
	b, err := ParseRFEN("1Fa/Bf/AaAe/AbAd/AcAc/AdAb/AeAa/h w")
	if err != nil {
		t.Fatalf("ParseRFEN: %v", err)
	}
	next, err := ApplyMove(b, Move{1, 1})
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if got, want := next.ToRFEN(), "h/h/h/h/h/h/h/h b"; got != want {
		t.Errorf("ToRFEN() = %q, want %q", got, want)
	}
}

func TestApplyMoveOccupiedCell(t *testing.T) {
	b := New()
	if _, err := ApplyMove(b, Move{4, 4}); err != ErrOccupied {
		t.Errorf("ApplyMove on occupied cell = %v, want ErrOccupied", err)
	}
}

func TestApplyMovePassTogglesTeban(t *testing.T) {
	b := New()
	next, err := ApplyMove(b, Pass)
	if err != nil {
		t.Fatalf("ApplyMove(Pass): %v", err)
	}
	if next.Teban != -b.Teban {
		t.Errorf("Teban after pass = %v, want %v", next.Teban, -b.Teban)
	}
	if next.Pass != 1 {
		t.Errorf("Pass counter = %d, want 1", next.Pass)
	}
	if next.Black != b.Black || next.White != b.White {
		t.Errorf("pass must not change the stones")
	}
}

func TestRotate90(t *testing.T) {
	b, err := ParseRFEN("H/G1/F2/E3/D4/C5/B6/A7 w")
	if err != nil {
		t.Fatalf("ParseRFEN: %v", err)
	}
	got := b.Rotate90().ToRFEN()
	if want := "A7/B6/C5/D4/E3/F2/G1/H w"; got != want {
		t.Errorf("Rotate90().ToRFEN() = %q, want %q", got, want)
	}
}

func TestRotate180Involution(t *testing.T) {
	b := New()
	twice := b.Rotate180().Rotate180()
	if twice.Black != b.Black || twice.White != b.White {
		t.Errorf("Rotate180 applied twice must be the identity")
	}
}

func TestFixedStonesSplitColumns(t *testing.T) {
	b, err := ParseRFEN("dD/dD/dD/dD/dD/dD/dD/dD b")
	if err != nil {
		t.Fatalf("ParseRFEN: %v", err)
	}
	bl, wh := b.FixedStones()
	if bl != 32 || wh != 32 {
		t.Errorf("FixedStones() = (%d, %d), want (32, 32)", bl, wh)
	}
}

func TestFixedStonesNoCornersIsZero(t *testing.T) {
	b := New()
	bl, wh := b.FixedStones()
	if bl != 0 || wh != 0 {
		t.Errorf("FixedStones() on the opening position = (%d, %d), want (0, 0)", bl, wh)
	}
}

func TestRFENRoundTrip(t *testing.T) {
	cases := []string{
		"8/8/8/3Aa3/3aA3/8/8/8 b",
		"H/H/H/H/H/H/H/H b",
		"dD/dD/dD/dD/dD/dD/dD/dD b",
	}
	for _, rfen := range cases {
		b, err := ParseRFEN(rfen)
		if err != nil {
			t.Fatalf("ParseRFEN(%q): %v", rfen, err)
		}
		if got := b.ToRFEN(); got != rfen {
			t.Errorf("round trip %q -> %q", rfen, got)
		}
	}
}

func TestParseRFENRejectsMalformedRankCounts(t *testing.T) {
	cases := []string{
		"8/8/8 b",             // too few ranks
		"7/8/8/8/8/8/8/8 b",   // first rank short a column
		"8/8/8/8/8/8/8/72 b",  // last rank overflows a column
		"8/8/8/8/8/8/8/8/8 b", // too many ranks
	}
	for _, rfen := range cases {
		if _, err := ParseRFEN(rfen); err == nil {
			t.Errorf("ParseRFEN(%q) should have failed on a malformed rank count", rfen)
		}
	}
}

func TestOBFRoundTrip(t *testing.T) {
	b := New()
	obf := b.ToOBF()
	back, err := ParseOBF(obf)
	if err != nil {
		t.Fatalf("ParseOBF: %v", err)
	}
	if back.Black != b.Black || back.White != b.White || back.Teban != b.Teban {
		t.Errorf("OBF round trip mismatch: got %+v, want %+v", back, b)
	}
}

func TestHashStableAndDistinguishesSides(t *testing.T) {
	b := New()
	if b.Hash() != b.Hash() {
		t.Errorf("Hash() must be deterministic")
	}
	flipped := b
	flipped.Teban = -b.Teban
	if b.Hash() == flipped.Hash() {
		t.Errorf("Hash() must depend on side to move")
	}
}
