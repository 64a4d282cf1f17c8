package aheui

import (
	"strings"

	"github.com/golang/glog"
)

// Parse decodes Aheui source text into a Field. W is the maximum line
// length in runes, not the sum across lines (spec.md §9 Open Question (a));
// shorter lines are padded with empty cells. Non-Hangul characters decode
// to empty cells per Decode.
//
// Parse panics if every line of source is empty (zero runes): the one
// precondition a program grid must satisfy is W*H >= 1, and an empty source
// cannot satisfy it honestly. Callers at the process boundary should recover this.
func Parse(source string) *Field {
	lines := strings.Split(source, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		panic("aheui: empty program: source grid must be at least 1x1")
	}
	w := 0
	runeLines := make([][]rune, len(lines))
	for i, line := range lines {
		runeLines[i] = []rune(line)
		if len(runeLines[i]) > w {
			w = len(runeLines[i])
		}
	}
	h := len(lines)
	for i, rl := range runeLines {
		if len(rl) != 0 && len(rl) != w {
			glog.Infof("line %d has length %d, padding to field width %d", i, len(rl), w)
		}
	}
	cells := make([]Syllable, w*h)
	for r, rl := range runeLines {
		for c, ch := range rl {
			cells[r*w+c] = Decode(ch)
		}
	}
	return &Field{W: w, H: h, Cells: cells}
}
