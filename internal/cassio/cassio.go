// Package cassio implements the Cassio ENGINE-PROTOCOL text bridge
// (§4.7), grounded on original_source/src/cassio.rs's header-dispatch
// shape. Every recognized command is answered with a final "ready."
// line; midgame-search additionally prints one result line first.
package cassio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/o-jill/ruversi-go/internal/board"
	"github.com/o-jill/ruversi-go/internal/eval"
	"github.com/o-jill/ruversi-go/internal/search"
)

const (
	header  = "ENGINE-PROTOCOL "
	version = "1.0"
)

// Engine runs one Cassio session: search.Search and board.ApplyMove
// only, never the package internals (§4.7's adapter boundary).
type Engine struct {
	searcher *search.Searcher
}

// New returns an Engine backed by net.
func New(net *eval.Network) *Engine {
	return &Engine{searcher: &search.Searcher{Net: net}}
}

// Run reads one command per line from r, writing responses to w,
// until "quit" or r is exhausted.
func (e *Engine) Run(r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if e.process(line, w) {
			return
		}
	}
}

// process handles one command line, returning true if the session
// should end.
func (e *Engine) process(line string, w io.Writer) bool {
	if line == "" {
		fmt.Fprintln(w, "ready.")
		return false
	}
	if !strings.HasPrefix(line, header) {
		return false
	}
	body := strings.TrimPrefix(line, header)

	switch {
	case strings.HasPrefix(body, "midgame-search"):
		e.midgameSearch(body, w)
		return false
	case strings.HasPrefix(body, "endgame-search"):
		fmt.Fprintln(w, "ready.")
		return false
	case strings.HasPrefix(body, "stop"):
		fmt.Fprintln(w, "ready.")
		return false
	case strings.HasPrefix(body, "get-search-infos"):
		fmt.Fprintln(w, "ready.")
		return false
	case strings.HasPrefix(body, "new-position"):
		fmt.Fprintln(w, "ready.")
		return false
	case strings.HasPrefix(body, "init"):
		fmt.Fprintln(w, "ready.")
		return false
	case strings.HasPrefix(body, "get-version"):
		fmt.Fprintf(w, "version: ruversi %s\n", version)
		fmt.Fprintln(w, "ready.")
		return false
	case strings.HasPrefix(body, "empty-hash"):
		fmt.Fprintln(w, "ready.")
		return false
	case strings.HasPrefix(body, "quit"):
		fmt.Fprintln(w, "ready.")
		return true
	default:
		return false
	}
}

// midgameSearch implements "midgame-search <obf> alpha beta depth
// precision": alpha, beta and precision are accepted for protocol
// compatibility but do not bound this engine's search, which always
// runs a full negamax window to depth.
func (e *Engine) midgameSearch(body string, w io.Writer) {
	// "midgame-search <obf-board> <obf-side> alpha beta depth
	// precision": the obf itself is "64chars side" (two fields), so
	// the trailing four numeric fields are peeled off the end and
	// everything between the command name and them is rejoined as
	// the obf string.
	fields := strings.Fields(body)
	if len(fields) < 6 {
		fmt.Fprintln(w, "ready.")
		return
	}
	obf := strings.Join(fields[1:len(fields)-4], " ")
	depth, err := strconv.Atoi(fields[len(fields)-2])
	if err != nil {
		fmt.Fprintln(w, "ready.")
		return
	}

	b, err := board.ParseOBF(obf)
	if err != nil {
		fmt.Fprintln(w, "ready.")
		return
	}

	start := time.Now()
	score, arena, rootIdx, ok := e.searcher.Search(b, depth)
	elapsed := time.Since(start)

	var moveStr string
	var nodes uint64
	if ok {
		pv := arena.PV(rootIdx)
		switch {
		case len(pv) == 0:
			moveStr = "--"
		case pv[0].IsPass():
			moveStr = "Pa"
		default:
			moveStr = strings.ToUpper(pv[0].String())
		}
		nodes = arena.At(rootIdx).Kyokumen
	} else {
		moveStr = "--"
	}

	// The printed value is from black's absolute perspective; Search
	// returns it relative to the side to move, so undo that rotation.
	absolute := score * float32(b.Teban)
	var rng string
	if absolute < 0 {
		rng = fmt.Sprintf("W:%.1f <= v <= W:%.1f", absolute, absolute)
	} else {
		rng = fmt.Sprintf("B:%.1f <= v <= B:%.1f", absolute, absolute)
	}

	fmt.Fprintf(w, "%s, move %s, depth %d, @0%%, %s, node %d, time %.3f\n",
		obf, moveStr, depth, rng, nodes, elapsed.Seconds())
	fmt.Fprintln(w, "ready.")
}
