package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/o-jill/ruversi-go/internal/board"
)

// HumanStrategy reads algebraic coordinates ("d3") from r, prompting
// and echoing feedback on w, re-prompting until the input is both
// well-formed and present in the position's own GenMoves. A position
// with no legal moves declines automatically without prompting.
func HumanStrategy(r io.Reader, w io.Writer) Strategy {
	scanner := bufio.NewScanner(r)
	return func(b board.Board) (board.Move, bool) {
		moves, _ := b.GenMoves()
		if len(moves) == 0 {
			fmt.Fprintln(w, "auto pass.")
			return board.Move{}, false
		}

		for {
			fmt.Fprint(w, "your turn [a1-h8]: ")
			if !scanner.Scan() {
				return board.Move{}, false
			}

			m, err := parseCoord(scanner.Text())
			if err != nil {
				fmt.Fprintln(w, err)
				continue
			}
			if !containsMove(moves, m) {
				fmt.Fprintf(w, "%s is not allowed.\n", m)
				continue
			}
			return m, true
		}
	}
}

func containsMove(moves []board.Move, m board.Move) bool {
	for _, mv := range moves {
		if mv == m {
			return true
		}
	}
	return false
}

// parseCoord parses a single algebraic coordinate like "d3" into a
// 1-indexed Move.
func parseCoord(s string) (board.Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) != 2 {
		return board.Move{}, fmt.Errorf("game: invalid position %q", s)
	}
	col := strings.IndexByte("abcdefgh", s[0])
	if col < 0 {
		return board.Move{}, fmt.Errorf("game: invalid position %q", s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 || row > board.NumCell {
		return board.Move{}, fmt.Errorf("game: invalid position %q", s)
	}
	return board.Move{X: uint8(col + 1), Y: uint8(row)}, nil
}
