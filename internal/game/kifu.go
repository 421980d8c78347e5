package game

import (
	"fmt"
	"strings"

	"github.com/o-jill/ruversi-go/internal/storage"
)

// ToText renders a recorded game as the kifu text format: one line
// per ply, "<n> <sideglyph> <moveglyph> <RFEN>", trailed by the
// signed outcome. The trainer consumes only the RFEN and the outcome;
// everything else here is for human inspection.
func ToText(k storage.Kifu) string {
	lines := make([]string, 0, len(k.Plies)+1)
	for i, p := range k.Plies {
		lines = append(lines, fmt.Sprintf("%d %s %s %s", i, sideGlyph(p.Side), moveGlyph(p.Move), p.RFEN))
	}
	lines = append(lines, fmt.Sprintf("# outcome %d", k.Outcome))
	return strings.Join(lines, "\n")
}

// sideGlyph is "@@" for black, "[]" for white, blank for the
// terminal no-side record.
func sideGlyph(side int8) string {
	switch side {
	case 1:
		return "@@"
	case -1:
		return "[]"
	default:
		return "  "
	}
}

// moveGlyph renders a ply's move in algebraic form, or "--" for a pass.
func moveGlyph(m storage.Move) string {
	if m.X == 0 && m.Y == 0 {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+m.X-1, m.Y)
}
