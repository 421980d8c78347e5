// Package tt implements a direct-mapped, power-of-two-capacity cache
// keyed by the board hash and verified against the full position to
// rule out collisions. The search package uses it only to memoize leaf
// static evaluations: an interior alpha-beta node's fail-soft score is
// a bound, not an exact value, so the table never stores those.
package tt

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/o-jill/ruversi-go/internal/board"
)

// DefaultCapacity is 2^20 entries, the capacity fixed unless a caller
// asks for something else.
const DefaultCapacity = 1 << 20

// entry is empty (never written) when valid is false.
type entry struct {
	black, white uint64
	teban        int8
	score        int16
	valid        bool
}

// Table is a single-writer transposition table: safe to probe and
// store from one search goroutine at a time. The root-split searcher
// gives each half its own Table.
type Table struct {
	entries []entry
	mask    uint64

	probes, hits, stores uint64
}

// New returns a table sized to the next power of two at or above
// capacity (minimum 1).
func New(capacity int) *Table {
	n := nextPow2(capacity)
	return &Table{entries: make([]entry, n), mask: uint64(n - 1)}
}

func nextPow2(n int) int {
	if n < 1 {
		n = 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Probe returns the stored static evaluation for b if the table holds
// an exact-position match.
func (t *Table) Probe(b board.Board) (score int16, ok bool) {
	t.probes++
	idx := b.Hash() & t.mask
	e := &t.entries[idx]
	if !e.valid || e.black != b.Black || e.white != b.White || e.teban != int8(b.Teban) {
		return 0, false
	}
	t.hits++
	return e.score, true
}

// Store records b's static evaluation, overwriting whatever previously
// hashed to the same slot.
func (t *Table) Store(b board.Board, score int16) {
	idx := b.Hash() & t.mask
	t.stores++
	t.entries[idx] = entry{black: b.Black, white: b.White, teban: int8(b.Teban), score: score, valid: true}
}

// Clear resets every entry. Required between top-level searches from
// independent positions; stale entries from a prior game would
// otherwise alias onto unrelated boards.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
	t.probes, t.hits, t.stores = 0, 0, 0
}

// Stats renders a human-readable diagnostic line: table size, entries
// written, and hit rate.
func (t *Table) Stats() string {
	hitRate := 0.0
	if t.probes > 0 {
		hitRate = float64(t.hits) / float64(t.probes) * 100
	}
	return fmt.Sprintf("tt: %s entries, %s stores, %s probes, %.1f%% hit rate",
		humanize.Comma(int64(len(t.entries))),
		humanize.Comma(int64(t.stores)),
		humanize.Comma(int64(t.probes)),
		hitRate)
}
