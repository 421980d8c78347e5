package board

import (
	"fmt"
	"strings"
)

// ParseRFEN parses a run-length board text: one char per column group
// per row ('A'..'H' black run, 'a'..'h' white run, '1'..'8' blank
// run), rows separated by '/', top to bottom, followed by a side to
// move token ('b', 'w', or 'f' for no-side/terminal positions).
func ParseRFEN(s string) (Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Board{}, fmt.Errorf("board: invalid rfen %q", s)
	}

	var teban Side
	switch fields[1] {
	case "b":
		teban = Black
	case "w":
		teban = White
	case "f":
		teban = None
	default:
		return Board{}, fmt.Errorf("board: invalid rfen side %q", fields[1])
	}

	var b Board
	b.Teban = teban
	x, y := 0, 0
	for _, ch := range fields[0] {
		switch {
		case ch >= 'A' && ch <= 'H':
			n := int(ch-'A') + 1
			if x+n > NumCell || y >= NumCell {
				return Board{}, fmt.Errorf("board: rfen overflow at %q", s)
			}
			for i := 0; i < n; i++ {
				b.Black |= 1 << index(x+i, y)
			}
			x += n
		case ch >= 'a' && ch <= 'h':
			n := int(ch-'a') + 1
			if x+n > NumCell || y >= NumCell {
				return Board{}, fmt.Errorf("board: rfen overflow at %q", s)
			}
			for i := 0; i < n; i++ {
				b.White |= 1 << index(x+i, y)
			}
			x += n
		case ch >= '1' && ch <= '8':
			n := int(ch - '0')
			if x+n > NumCell || y >= NumCell {
				return Board{}, fmt.Errorf("board: rfen overflow at %q", s)
			}
			x += n
		case ch == '/':
			if x != NumCell {
				return Board{}, fmt.Errorf("board: rfen rank %d has %d columns, want %d: %q", y, x, NumCell, s)
			}
			x = 0
			y++
		default:
			return Board{}, fmt.Errorf("board: unexpected rfen char %q", ch)
		}
	}
	if x != NumCell {
		return Board{}, fmt.Errorf("board: rfen rank %d has %d columns, want %d: %q", y, x, NumCell, s)
	}
	if y != NumCell-1 {
		return Board{}, fmt.Errorf("board: rfen has %d ranks, want %d: %q", y+1, NumCell, s)
	}
	return b, nil
}

// ToRFEN renders the board using run-length encoding per row.
func (b Board) ToRFEN() string {
	var rows []string
	for y := 0; y < NumCell; y++ {
		var line strings.Builder
		old := None
		count := 0
		flush := func() {
			if count == 0 {
				return
			}
			switch old {
			case None:
				line.WriteByte('0' + byte(count))
			case Black:
				line.WriteByte('A' + byte(count-1))
			case White:
				line.WriteByte('a' + byte(count-1))
			}
		}
		for x := 0; x < NumCell; x++ {
			c := b.At(x, y)
			if c == old {
				count++
				continue
			}
			flush()
			old = c
			count = 1
		}
		flush()
		rows = append(rows, line.String())
	}

	suffix := " f"
	switch b.Teban {
	case Black:
		suffix = " b"
	case White:
		suffix = " w"
	}
	return strings.Join(rows, "/") + suffix
}
