package storage

import (
	"testing"

	"github.com/o-jill/ruversi-go/internal/eval"
)

// We can't easily test with the real GetDatabaseDir, so every test
// opens a store rooted at a temp directory instead.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCheckpointRoundTrip(t *testing.T) {
	s := openTestStore(t)

	var cp Checkpoint
	cp.Epoch = 3
	cp.Eta = 0.001
	cp.Mid = 8
	cp.Weight[0] = 1.5
	cp.Weight[eval.NWeights-1] = -2.5

	if err := s.SaveCheckpoint(cp); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	got, err := s.LoadLatestCheckpoint()
	if err != nil {
		t.Fatalf("LoadLatestCheckpoint: %v", err)
	}
	if got == nil {
		t.Fatalf("LoadLatestCheckpoint returned nil")
	}
	if got.Epoch != cp.Epoch || got.Weight != cp.Weight {
		t.Errorf("round trip mismatch: got %+v", got)
	}

	byEpoch, err := s.LoadCheckpoint(3)
	if err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}
	if byEpoch == nil || byEpoch.Weight != cp.Weight {
		t.Errorf("LoadCheckpoint(3) mismatch: got %+v", byEpoch)
	}
}

func TestCheckpointEpochsAreIndependent(t *testing.T) {
	s := openTestStore(t)

	var cp1, cp2 Checkpoint
	cp1.Epoch, cp1.Eta = 1, 0.1
	cp2.Epoch, cp2.Eta = 2, 0.2

	if err := s.SaveCheckpoint(cp1); err != nil {
		t.Fatalf("SaveCheckpoint cp1: %v", err)
	}
	if err := s.SaveCheckpoint(cp2); err != nil {
		t.Fatalf("SaveCheckpoint cp2: %v", err)
	}

	got1, err := s.LoadCheckpoint(1)
	if err != nil {
		t.Fatalf("LoadCheckpoint(1): %v", err)
	}
	if got1 == nil || got1.Eta != 0.1 {
		t.Errorf("LoadCheckpoint(1) = %+v, want Eta=0.1", got1)
	}

	latest, err := s.LoadLatestCheckpoint()
	if err != nil {
		t.Fatalf("LoadLatestCheckpoint: %v", err)
	}
	if latest == nil || latest.Epoch != 2 {
		t.Errorf("LoadLatestCheckpoint = %+v, want epoch 2", latest)
	}
}

func TestLoadLatestCheckpointMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.LoadLatestCheckpoint()
	if err != nil {
		t.Fatalf("LoadLatestCheckpoint: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil checkpoint before any save, got %+v", got)
	}
}

func TestLoadCheckpointMissingEpoch(t *testing.T) {
	s := openTestStore(t)

	got, err := s.LoadCheckpoint(99)
	if err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil checkpoint for unsaved epoch, got %+v", got)
	}
}

func TestKifuRoundTripAndList(t *testing.T) {
	s := openTestStore(t)

	k := Kifu{
		ID: "game-1",
		Plies: []Ply{
			{Move: Move{X: 3, Y: 5}, Side: 1, RFEN: "8/8/8/3Aa3/3aA3/8/8/8 b"},
			{Move: Move{X: 2, Y: 4}, Side: -1, RFEN: "8/8/8/3Aa3/2aaA3/8/8/8 w"},
		},
		Outcome: 1,
	}
	if err := s.SaveKifu(k); err != nil {
		t.Fatalf("SaveKifu: %v", err)
	}

	got, err := s.LoadKifu("game-1")
	if err != nil {
		t.Fatalf("LoadKifu: %v", err)
	}
	if len(got.Plies) != 2 || got.Plies[0].RFEN != k.Plies[0].RFEN {
		t.Errorf("kifu round trip mismatch: got %+v", got)
	}
	if got.Outcome != 1 {
		t.Errorf("Outcome = %d, want 1", got.Outcome)
	}

	if err := s.SaveKifu(Kifu{ID: "game-2"}); err != nil {
		t.Fatalf("SaveKifu game-2: %v", err)
	}

	ids, err := s.ListKifuIDs()
	if err != nil {
		t.Fatalf("ListKifuIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("ListKifuIDs = %v, want 2 entries", ids)
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen["game-1"] || !seen["game-2"] {
		t.Errorf("ListKifuIDs = %v, want both game-1 and game-2", ids)
	}
}

func TestLoadKifuMissing(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.LoadKifu("nonexistent"); err == nil {
		t.Errorf("LoadKifu(nonexistent) should have returned an error")
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if dbDir == "" {
		t.Error("GetDatabaseDir returned empty path")
	}
}
