package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/o-jill/ruversi-go/internal/eval"
)

const (
	keyCheckpointLatest = "checkpoint:latest"
	keyCheckpointPrefix = "checkpoint:epoch:"
	keyKifuPrefix       = "kifu:"
)

// Checkpoint is a trainer snapshot: the weight vector plus the
// hyperparameters and epoch count it was produced under.
type Checkpoint struct {
	Epoch   int                  `json:"epoch"`
	Eta     float32              `json:"eta"`
	Mid     int                  `json:"mid"`
	Weight  [eval.NWeights]float32 `json:"weight"`
	SavedAt time.Time            `json:"saved_at"`
}

// Ply is one recorded move of a game.
type Ply struct {
	Move Move      `json:"move"`
	Side int8      `json:"side"`
	RFEN string    `json:"rfen"`
}

// Move mirrors board.Move for JSON encoding (board.Move has no tags
// of its own, and storage should not impose a wire format on C1).
type Move struct {
	X, Y uint8
}

// Kifu is a recorded game: every ply plus the final outcome, the sign
// of the final stone count from black's perspective.
type Kifu struct {
	ID        string    `json:"id"`
	Plies     []Ply     `json:"plies"`
	Outcome   int8      `json:"outcome"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Store wraps a BadgerDB database of checkpoints and kifu records.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the on-disk store at the
// platform's standard data directory.
func Open() (*Store, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens (creating if necessary) the on-disk store at an
// explicit directory, bypassing the platform default. Tests use this
// to point at a temp directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveCheckpoint writes cp under both a per-epoch key and the
// "latest" key, so training can resume from either a specific epoch
// or the most recent one.
func (s *Store) SaveCheckpoint(cp Checkpoint) error {
	cp.SavedAt = time.Now()
	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("storage: marshal checkpoint: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyCheckpointLatest), data); err != nil {
			return err
		}
		return txn.Set([]byte(fmt.Sprintf("%s%08d", keyCheckpointPrefix, cp.Epoch)), data)
	})
}

// LoadLatestCheckpoint returns the most recently saved checkpoint, or
// (nil, nil) if none has been saved yet.
func (s *Store) LoadLatestCheckpoint() (*Checkpoint, error) {
	return s.loadCheckpoint(keyCheckpointLatest)
}

// LoadCheckpoint returns the checkpoint saved at the given epoch.
func (s *Store) LoadCheckpoint(epoch int) (*Checkpoint, error) {
	return s.loadCheckpoint(fmt.Sprintf("%s%08d", keyCheckpointPrefix, epoch))
}

func (s *Store) loadCheckpoint(key string) (*Checkpoint, error) {
	var cp Checkpoint
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cp)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("storage: load checkpoint %s: %w", key, err)
	}
	if !found {
		return nil, nil
	}
	return &cp, nil
}

// SaveKifu records a completed game under its ID.
func (s *Store) SaveKifu(k Kifu) error {
	k.RecordedAt = time.Now()
	data, err := json.Marshal(k)
	if err != nil {
		return fmt.Errorf("storage: marshal kifu: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyKifuPrefix+k.ID), data)
	})
}

// LoadKifu returns the game recorded under id.
func (s *Store) LoadKifu(id string) (*Kifu, error) {
	var k Kifu
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyKifuPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &k)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("storage: load kifu %s: %w", id, err)
	}
	return &k, nil
}

// ListKifuIDs returns every recorded game's ID.
func (s *Store) ListKifuIDs() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(keyKifuPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ids = append(ids, key[len(keyKifuPrefix):])
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list kifu: %w", err)
	}
	return ids, nil
}
