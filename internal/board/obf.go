package board

import (
	"fmt"
	"strings"
)

// ParseOBF parses the 64-character-per-cell "othello board file"
// format: 64 chars ('X' black, 'O' white, '-' blank) in row-major
// order followed by a side-to-move token ('X' or 'O').
func ParseOBF(s string) (Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 || len(fields[0]) != NumCell*NumCell {
		return Board{}, fmt.Errorf("board: invalid obf %q", s)
	}

	var b Board
	x, y := 0, 0
	for _, ch := range fields[0] {
		switch ch {
		case 'X':
			b.Black |= 1 << index(x, y)
		case 'O':
			b.White |= 1 << index(x, y)
		}
		x++
		if x >= NumCell {
			x = 0
			y++
		}
	}

	switch fields[1] {
	case "X":
		b.Teban = Black
	case "O":
		b.Teban = White
	default:
		b.Teban = None
	}
	return b, nil
}

// ToOBF renders the board in the 64-char-per-cell format.
func (b Board) ToOBF() string {
	var sb strings.Builder
	for y := 0; y < NumCell; y++ {
		for x := 0; x < NumCell; x++ {
			switch b.At(x, y) {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('-')
			}
		}
	}
	switch b.Teban {
	case Black:
		sb.WriteString(" X")
	case White:
		sb.WriteString(" O")
	default:
		sb.WriteString(" -")
	}
	return sb.String()
}
