package board

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit digest of the position (stone masks and side
// to move) suitable as a transposition table key. Two boards that
// compare equal under ==, aside from the pass counter, hash equal.
func (b Board) Hash() uint64 {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:8], b.Black)
	binary.LittleEndian.PutUint64(buf[8:16], b.White)
	buf[16] = byte(b.Teban)
	return xxhash.Sum64(buf[:])
}
