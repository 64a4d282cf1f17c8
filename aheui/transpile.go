package aheui

import "strings"

// Transpile compiles Aheui source into a complete, freestanding C program.
// It panics if source fails the one precondition Parse enforces (a
// non-empty program grid); callers at a process boundary should recover
// that into a clean diagnostic.
func Transpile(source string) string {
	field := Parse(source)
	l := NewLinearizer(field)
	blocks := l.Linearize()

	var out strings.Builder
	out.WriteString(header)
	for _, b := range blocks {
		out.WriteString(b)
	}
	out.WriteString(footer)
	return out.String()
}
