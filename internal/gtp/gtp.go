// Package gtp implements a Go Text Protocol bridge over the search
// and board packages, translated to Othello (§4.7): the engine side
// never sees stdin directly, only the commands the Engine dispatches.
package gtp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/eval"
	"github.com/o-jill/ruversi-go/internal/search"
)

const (
	engineName    = "ruversi-go"
	engineVersion = "1.0"
	protocolVer   = "2"
)

// letters is the GTP column alphabet: 'i' is skipped so board columns
// never collide with the row-numeral reading of a coordinate.
const letters = "abcdefghjklmnopqrst"

// Engine holds the GTP session's board state and search configuration.
// It calls only search.Searcher.Search, board.GenMoves and
// board.ApplyMove (§4.7's
// "never see engine internals" boundary).
type Engine struct {
	b        board.Board
	searcher *search.Searcher
	depth    int
}

// New returns a fresh Engine over the standard starting position.
func New(net *eval.Network, depth int) *Engine {
	return &Engine{
		b:        board.New(),
		searcher: &search.Searcher{Net: net},
		depth:    depth,
	}
}

// Run reads one command per line from r and writes GTP responses to w
// until "quit" or r is exhausted.
func (e *Engine) Run(r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		if cmd == "quit" {
			fmt.Fprint(w, "= \n\n")
			return
		}

		text, err := e.dispatch(cmd, args)
		if err != nil {
			fmt.Fprintf(w, "? %s\n\n", err)
			continue
		}
		if text == "" {
			fmt.Fprint(w, "= \n\n")
		} else {
			fmt.Fprintf(w, "= %s\n\n", text)
		}
	}
}

func (e *Engine) dispatch(cmd string, args []string) (string, error) {
	switch cmd {
	case "protocol_version":
		return protocolVer, nil
	case "name":
		return engineName, nil
	case "version":
		return engineVersion, nil
	case "list_games":
		return "Othello", nil
	case "set_game":
		if len(args) != 1 || args[0] != "Othello" {
			return "", fmt.Errorf("unsupported game")
		}
		return "", nil
	case "list_commands":
		return strings.Join([]string{
			"boardsize", "clear_board", "play", "genmove", "set_game",
			"list_commands", "list_games", "name", "version",
			"protocol_version", "komi", "quit",
		}, "\n"), nil
	case "boardsize":
		if len(args) != 1 {
			return "", fmt.Errorf("boardsize needs a size")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n != board.NumCell {
			return "", fmt.Errorf("unacceptable size")
		}
		return "", nil
	case "komi":
		if len(args) != 1 {
			return "", fmt.Errorf("komi needs a value")
		}
		return "", nil
	case "clear_board":
		e.b = board.New()
		return "", nil
	case "play":
		return "", e.handlePlay(args)
	case "genmove":
		return e.handleGenmove(args)
	default:
		return "", fmt.Errorf("unknown command")
	}
}

func (e *Engine) handlePlay(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("play needs a color and a coordinate")
	}
	side, err := parseColor(args[0])
	if err != nil {
		return err
	}
	m, err := parseCoord(args[1])
	if err != nil {
		return err
	}
	e.b.Teban = side
	if m.IsPass() {
		next, _ := board.ApplyMove(e.b, board.Pass)
		e.b = next
		return nil
	}

	moves, _ := e.b.GenMoves()
	if !containsMove(moves, m) {
		return fmt.Errorf("illegal move")
	}
	next, err := board.ApplyMove(e.b, m)
	if err != nil {
		return err
	}
	e.b = next
	return nil
}

func containsMove(moves []board.Move, m board.Move) bool {
	for _, mv := range moves {
		if mv == m {
			return true
		}
	}
	return false
}

func (e *Engine) handleGenmove(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("genmove needs a color")
	}
	side, err := parseColor(args[0])
	if err != nil {
		return "", err
	}
	e.b.Teban = side

	moves, hasBlanks := e.b.GenMoves()
	if !hasBlanks || len(moves) == 0 {
		next, _ := board.ApplyMove(e.b, board.Pass)
		e.b = next
		return "pass", nil
	}

	_, arena, rootIdx, ok := e.searcher.Search(e.b, e.depth)
	if !ok {
		return "", fmt.Errorf("search declined")
	}
	pv := arena.PV(rootIdx)
	if len(pv) == 0 {
		return "", fmt.Errorf("search produced no move")
	}
	best := pv[0]
	next, err := board.ApplyMove(e.b, best)
	if err != nil {
		return "", err
	}
	e.b = next
	return coordString(best), nil
}

func parseColor(s string) (board.Side, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return board.Black, nil
	case "w", "white":
		return board.White, nil
	default:
		return board.None, fmt.Errorf("unknown color %q", s)
	}
}

// parseCoord parses a GTP coordinate ("d3", case-insensitive) or
// "pass" into a board.Move.
func parseCoord(s string) (board.Move, error) {
	s = strings.ToLower(s)
	if s == "pass" {
		return board.Pass, nil
	}
	if len(s) < 2 {
		return board.Move{}, fmt.Errorf("invalid coordinate %q", s)
	}
	col := strings.IndexByte(letters[:board.NumCell], s[0])
	if col < 0 {
		return board.Move{}, fmt.Errorf("invalid coordinate %q", s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 || row > board.NumCell {
		return board.Move{}, fmt.Errorf("invalid coordinate %q", s)
	}
	return board.Move{X: uint8(col + 1), Y: uint8(row)}, nil
}

// coordString renders a Move in GTP form.
func coordString(m board.Move) string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%c%d", letters[m.X-1], m.Y)
}
