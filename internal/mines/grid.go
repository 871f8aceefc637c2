package mines

import (
	"strings"
)

// Symbol is the single-character display value of one cell as seen by the
// player. The engine only projects state into symbols; layout and coloring
// belong to the frontends.
type Symbol rune

const (
	Mine   Symbol = '*'
	Flag   Symbol = 'F'
	Hidden Symbol = '#'
	Blank  Symbol = ' '
	// Clue cells render as their digit, see [Clue].
)

// Clue returns the symbol for an open cell with n adjacent mines.
func Clue(n int) Symbol {
	if n == 0 {
		return Blank
	}
	return Symbol('0' + n)
}

func (s Symbol) String() string {
	return string(rune(s))
}

// Grid is a row-major projection of a board's display symbols.
type Grid []Symbol

func (g Grid) ToString(cols int) string {
	var b strings.Builder
	for i, s := range g {
		b.WriteString(s.String())
		if (i+1)%cols == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}
